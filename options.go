package statewalk

import "fmt"

// SegmentFilter decides whether a candidate segment may extend the parent
// path. Rejected segments prune the whole branch: no path is produced for
// them and no recursion happens below them.
type SegmentFilter func(candidate *Segment, parent *Path) bool

// PathFilter decides whether a candidate path is yielded. Rejected paths
// are still recursed into.
type PathFilter func(candidate *Path) bool

// DefaultMaxLength is the hard ceiling on path length, initial segment
// included.
const DefaultMaxLength = 10

// similarSegmentCap bounds how often a (event type, target state) pair may
// repeat within one path under the default segment filter. Two occurrences
// allow toggling a value exactly once more before the branch is cut.
const similarSegmentCap = 2

// Options carries the resolved generation and execution configuration.
type Options struct {
	eventSource   *EventSource
	maxLength     int
	filterSegment SegmentFilter
	filterPath    PathFilter
	deduplicate   bool
	logger        Logger
}

// Option customizes path generation.
type Option func(*Options)

// WithEventSource supplies candidate events per event type. Without one,
// every enabled event type produces a single payload-less event.
func WithEventSource(source *EventSource) Option {
	return func(o *Options) {
		o.eventSource = source
	}
}

// WithMaxLength overrides the hard path length ceiling.
func WithMaxLength(n int) Option {
	return func(o *Options) {
		o.maxLength = n
	}
}

// WithSegmentFilter replaces the default cycle guard. The default rejects a
// candidate once a similar segment already occurs twice in the parent path;
// a replacement that drops that bound makes the caller responsible for
// termination (max length still caps every branch).
func WithSegmentFilter(filter SegmentFilter) Option {
	return func(o *Options) {
		o.filterSegment = filter
	}
}

// WithPathFilter replaces the default path filter, which accepts only paths
// ending in a final segment.
func WithPathFilter(filter PathFilter) Option {
	return func(o *Options) {
		o.filterPath = filter
	}
}

// WithoutDeduplication keeps redundant paths in the MakePaths result.
func WithoutDeduplication() Option {
	return func(o *Options) {
		o.deduplicate = false
	}
}

// WithLogger enables structured logging during generation and replay.
func WithLogger(logger Logger) Option {
	return func(o *Options) {
		o.logger = logger
	}
}

func resolveOptions(opts ...Option) (*Options, error) {
	o := &Options{
		maxLength:   DefaultMaxLength,
		deduplicate: true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	if o.maxLength < 1 {
		return nil, cloneRuntimeError(
			ErrInvalidConfig,
			fmt.Sprintf("max length must be positive, got %d", o.maxLength),
			nil,
			map[string]any{"max_length": o.maxLength},
		)
	}
	if o.eventSource == nil {
		o.eventSource = NewEventSource()
	}
	if o.filterSegment == nil {
		o.filterSegment = defaultSegmentFilter
	}
	if o.filterPath == nil {
		o.filterPath = defaultPathFilter
	}
	o.logger = normalizeLogger(o.logger)
	return o, nil
}

func defaultSegmentFilter(candidate *Segment, parent *Path) bool {
	return parent.CountSimilar(candidate) < similarSegmentCap
}

func defaultPathFilter(candidate *Path) bool {
	return candidate.Last().IsFinal()
}
