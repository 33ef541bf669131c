package statewalk

import (
	stderrors "errors"
	"strings"

	apperrors "github.com/goliatone/go-errors"
)

const (
	ErrCodeReplayMismatch = "WALK_REPLAY_MISMATCH"
	ErrCodeBadEventSource = "WALK_BAD_EVENT_SOURCE"
	ErrCodeInvalidConfig  = "WALK_INVALID_CONFIG"
	ErrCodeExecutorFailed = "WALK_EXECUTOR_FAILED"
)

var (
	// ErrReplayMismatch signals that replaying a recorded segment against a
	// live machine produced a state other than the one recorded at
	// generation time.
	ErrReplayMismatch = apperrors.New("replay produced unexpected state", apperrors.CategoryConflict).
				WithTextCode(ErrCodeReplayMismatch)
	// ErrBadEventSource signals a malformed event source entry.
	ErrBadEventSource = apperrors.New("unsupported event source shape", apperrors.CategoryBadInput).
				WithTextCode(ErrCodeBadEventSource)
	// ErrInvalidConfig signals malformed generation or execution options.
	ErrInvalidConfig = apperrors.New("invalid configuration", apperrors.CategoryBadInput).
				WithTextCode(ErrCodeInvalidConfig)
)

func cloneRuntimeError(base *apperrors.Error, message string, source error, metadata map[string]any) *apperrors.Error {
	if base == nil {
		base = ErrInvalidConfig
	}
	err := base.Clone()
	if text := strings.TrimSpace(message); text != "" {
		err.Message = text
	}
	if source != nil {
		err.Source = source
	}
	if len(metadata) > 0 {
		err = err.WithMetadata(metadata)
	}
	return err
}

func runtimeErrorCode(err error) string {
	var ge *apperrors.Error
	if stderrors.As(err, &ge) {
		return ge.TextCode
	}
	return ""
}

// IsReplayMismatch reports whether err carries the replay mismatch code.
func IsReplayMismatch(err error) bool {
	return runtimeErrorCode(err) == ErrCodeReplayMismatch
}
