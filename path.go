package statewalk

import (
	"context"
	"iter"
	"strings"
)

// descriptionSeparator joins segment descriptions into a path description.
const descriptionSeparator = " -> "

// Path is an ordered, non-empty walk of segments from the machine's
// initial state. Segment 0 is always the synthetic init segment. Paths are
// immutable: extension produces a new Path, the parent is never touched.
type Path struct {
	machine  Machine
	segments []*Segment

	// description is computed once on first read and reused.
	description string
}

// New creates a path seeded with the machine's initial segment.
func New(machine Machine) *Path {
	return &Path{
		machine:  machine,
		segments: []*Segment{newInitialSegment(machine.InitialState())},
	}
}

func (p *Path) append(segment *Segment) *Path {
	segments := make([]*Segment, len(p.segments)+1)
	copy(segments, p.segments)
	segments[len(p.segments)] = segment
	return &Path{machine: p.machine, segments: segments}
}

// Len returns the number of segments, initial segment included.
func (p *Path) Len() int { return len(p.segments) }

// Segments returns a copy of the segment sequence in transition order.
func (p *Path) Segments() []*Segment {
	out := make([]*Segment, len(p.segments))
	copy(out, p.segments)
	return out
}

// Last returns the most recent segment.
func (p *Path) Last() *Segment {
	return p.segments[len(p.segments)-1]
}

// Target returns the state reached by the last segment.
func (p *Path) Target() State {
	return p.Last().Target()
}

// IsFinal reports whether the path ends in a final segment.
func (p *Path) IsFinal() bool {
	return p.Last().IsFinal()
}

// Description joins the segment descriptions in order. This string is the
// path's sole identity for matching and containment.
func (p *Path) Description() string {
	if p.description == "" {
		parts := make([]string, len(p.segments))
		for i, segment := range p.segments {
			parts[i] = segment.Description()
		}
		p.description = strings.Join(parts, descriptionSeparator)
	}
	return p.description
}

// CountSimilar counts segments in the path similar to the candidate: same
// event type and same target state, payloads ignored.
func (p *Path) CountSimilar(candidate *Segment) int {
	count := 0
	for _, segment := range p.segments {
		if segment.IsSimilar(candidate) {
			count++
		}
	}
	return count
}

// NextPaths lazily produces every path extending this one, depth-first,
// pre-order, left-to-right in event-source order: each accepted path is
// yielded before its own extensions are explored. The sequence always
// terminates: every branch either reaches a final state, hits the length
// ceiling, or is cut by the segment filter's revisit cap.
func (p *Path) NextPaths(opts ...Option) iter.Seq2[*Path, error] {
	return func(yield func(*Path, error) bool) {
		o, err := resolveOptions(opts...)
		if err != nil {
			yield(nil, err)
			return
		}
		p.nextPaths(o)(yield)
	}
}

func (p *Path) nextPaths(o *Options) iter.Seq2[*Path, error] {
	return func(yield func(*Path, error) bool) {
		for segment, err := range p.Last().NextSegments(p.machine, o.eventSource) {
			if err != nil {
				yield(nil, err)
				return
			}
			if !o.filterSegment(segment, p) {
				continue
			}
			next := p.append(segment)
			if o.filterPath(next) {
				if !yield(next, nil) {
					return
				}
			}
			if !segment.IsFinal() && next.Len() < o.maxLength {
				for extended, err := range next.nextPaths(o) {
					if !yield(extended, err) {
						return
					}
					if err != nil {
						return
					}
				}
			}
		}
	}
}

// Paths lazily produces every accepted path reachable from the machine's
// initial state. Consumers may stop early; re-ranging restarts generation
// from scratch. Deduplication never applies here since it needs the
// finished set.
func Paths(machine Machine, opts ...Option) iter.Seq2[*Path, error] {
	return func(yield func(*Path, error) bool) {
		o, err := resolveOptions(opts...)
		if err != nil {
			yield(nil, err)
			return
		}
		New(machine).nextPaths(o)(yield)
	}
}

// MakePaths materializes the full path set for a machine and, unless
// disabled, collapses it to its maximal members. A transition error aborts
// generation and surfaces unmodified.
func MakePaths(machine Machine, opts ...Option) ([]*Path, error) {
	o, err := resolveOptions(opts...)
	if err != nil {
		return nil, err
	}
	logger := o.logger

	var paths []*Path
	for path, err := range New(machine).nextPaths(o) {
		if err != nil {
			logger.Error("path generation aborted: %v", err)
			return nil, err
		}
		withLoggerFields(logger, map[string]any{
			"length": path.Len(),
			"target": StateDescription(path.Target()),
		}).Debug("path generated")
		paths = append(paths, path)
	}
	if o.deduplicate {
		before := len(paths)
		paths = Deduplicate(paths)
		withLoggerFields(logger, map[string]any{
			"generated": before,
			"kept":      len(paths),
		}).Debug("path set deduplicated")
	}
	return paths, nil
}

// Run replays the path against a live machine from a fresh initial state.
// Segments execute strictly in path order; each transition is verified
// against the recorded target, the resulting state's actions run
// sequentially, and exec (when non-nil) is invoked with the live state,
// the initial state included. Any failure aborts the run and propagates.
func (p *Path) Run(ctx context.Context, machine Machine, exec Executor, opts ...Option) error {
	o, err := resolveOptions(opts...)
	if err != nil {
		return err
	}
	logger := withLoggerFields(o.logger.WithContext(ctx), map[string]any{
		"path_length": p.Len(),
	})

	state := machine.InitialState()
	if got := StateDescription(state); got != p.segments[0].StateDescription() {
		return cloneRuntimeError(ErrReplayMismatch, "initial state diverged", nil, map[string]any{
			"expected": p.segments[0].StateDescription(),
			"actual":   got,
		})
	}
	if exec != nil {
		if err := exec.Exec(ctx, state); err != nil {
			return err
		}
	}
	for i, segment := range p.segments[1:] {
		state, err = segment.Run(ctx, machine, state)
		if err != nil {
			logger.Error("segment %d failed: %v", i+1, err)
			return err
		}
		if exec != nil {
			if err := exec.Exec(ctx, state); err != nil {
				return err
			}
		}
	}
	logger.Debug("path run complete")
	return nil
}
