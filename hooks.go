package wface

import "time"

// Kinds of trace events.
type EventKind uint8
const (
	EventPreload EventKind = iota // glyph bitmaps preloaded
	EventStyleApplied // a style change took effect
	EventModeChange   // ambient/interactive/headless change
	EventFrameSkipped // degenerate bounds
	EventError        // an element couldn't be drawn
)

func (self EventKind) String() string {
	switch self {
	case EventPreload: return "preload"
	case EventStyleApplied: return "style_applied"
	case EventModeChange: return "mode_change"
	case EventFrameSkipped: return "frame_skipped"
	case EventError: return "error"
	default: return "unknown"
	}
}

// A trace event. Only the fields relevant to the event kind are set.
type Event struct {
	Kind EventKind
	Frame uint64 // frame counter at the time of the event
	Detail string
	Err error
	Duration time.Duration
}

// Observability hooks. Faces never log on their own; hosts that want
// diagnostics install a trace function here. Trace functions are
// called from the render goroutine and must not block.
type Hooks struct {
	Trace func(Event)
}

// Face counters. See [Face.Stats]().
type Stats struct {
	Frames uint64
	SkippedFrames uint64
	Preloads uint64
	StyleRecomputes uint64
	Errors uint64
	CacheHits uint64
	CacheMisses uint64
	CacheRenders uint64
	CacheEntries int
	CacheBytes int
}

func (self *Face) trace(kind EventKind, detail string, err error, duration time.Duration) {
	if kind == EventError { self.stats.Errors += 1 }
	if self.hooks.Trace == nil { return }
	self.hooks.Trace(Event{
		Kind: kind,
		Frame: self.frameCounter,
		Detail: detail,
		Err: err,
		Duration: duration,
	})
}
