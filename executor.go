package statewalk

import (
	"context"
	"fmt"

	"github.com/goliatone/go-errors"
)

// Executor is a per-transition callback invoked with the live state during
// path replay.
type Executor interface {
	Exec(ctx context.Context, state State) error
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(ctx context.Context, state State) error

// Exec calls the underlying function.
func (f ExecutorFunc) Exec(ctx context.Context, state State) error {
	return f(ctx, state)
}

// ChainExecutor runs multiple executors in registration order, each
// completing before the next starts. The first failure stops the chain.
type ChainExecutor struct {
	executors []Executor
}

// Chain combines executors into one sequential executor.
func Chain(executors ...Executor) *ChainExecutor {
	combined := make([]Executor, 0, len(executors))
	for _, exec := range executors {
		if exec != nil {
			combined = append(combined, exec)
		}
	}
	return &ChainExecutor{executors: combined}
}

func (c *ChainExecutor) Exec(ctx context.Context, state State) error {
	for i, exec := range c.executors {
		if ctx.Err() != nil {
			return errors.Wrap(ctx.Err(), errors.CategoryExternal, "context canceled or deadline exceeded").
				WithTextCode("WALK_CONTEXT_CANCELLED").
				WithMetadata(map[string]any{
					"total_executors":     len(c.executors),
					"completed_executors": i,
				})
		}
		if err := exec.Exec(ctx, state); err != nil {
			return errors.Wrap(err, errors.CategoryHandler, "executor failed in chain").
				WithTextCode(ErrCodeExecutorFailed).
				WithMetadata(map[string]any{
					"executor_index":  i,
					"executor_type":   fmt.Sprintf("%T", exec),
					"total_executors": len(c.executors),
					"state":           StateDescription(state),
				})
		}
	}
	return nil
}

type eventExecutor struct {
	byType map[string]Executor
}

// OnEvent dispatches to the executor keyed by the event type that caused
// the transition. Unmatched types are no-ops.
func OnEvent(handlers map[string]Executor) Executor {
	byType := make(map[string]Executor, len(handlers))
	for eventType, exec := range handlers {
		if exec != nil {
			byType[eventType] = exec
		}
	}
	return &eventExecutor{byType: byType}
}

func (e *eventExecutor) Exec(ctx context.Context, state State) error {
	exec, ok := e.byType[state.Event().Type]
	if !ok {
		return nil
	}
	return exec.Exec(ctx, state)
}

type stateExecutor struct {
	byState map[string]Executor
}

// OnState dispatches to the executors keyed by the hierarchical state
// strings the resulting state occupies; every match fires, in the state's
// string order. Unmatched keys are no-ops.
func OnState(handlers map[string]Executor) Executor {
	byState := make(map[string]Executor, len(handlers))
	for stateString, exec := range handlers {
		if exec != nil {
			byState[stateString] = exec
		}
	}
	return &stateExecutor{byState: byState}
}

func (e *stateExecutor) Exec(ctx context.Context, state State) error {
	for _, stateString := range state.Strings() {
		exec, ok := e.byState[stateString]
		if !ok {
			continue
		}
		if err := exec.Exec(ctx, state); err != nil {
			return err
		}
	}
	return nil
}
