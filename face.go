package wface

import "sync"
import "time"
import "image"

import "github.com/tinne26/wface/anim"
import "github.com/tinne26/wface/mode"
import "github.com/tinne26/wface/font"
import "github.com/tinne26/wface/mask"
import "github.com/tinne26/wface/sizer"
import "github.com/tinne26/wface/cache"
import "github.com/tinne26/wface/style"
import "github.com/tinne26/wface/typeset"
import "github.com/tinne26/wface/complication"

// The default duration of ambient transitions, used when
// [Options.TransitionDuration] is zero.
const DefaultTransitionDuration = 500*time.Millisecond

// Construction options for a [Face].
type Options struct {
	Loader font.Loader // nil means font.Default()
	Style *style.Config // initial style, nil means style.Default()
	Ambient bool       // start in (settled) ambient mode
	Headless bool      // static snapshot rendering, nothing animates
	TransitionDuration time.Duration
	Hooks Hooks
}

// The [Face] is the heart of wface: it keeps the render state of a
// watch face and draws its frames.
//
// Faces have three groups of functions:
//  - Notification functions ([Face.NotifyStyle](), [Face.NotifyAmbient](),
//    [Face.SetHeadless](), [Face.SetSlots](), [Face.SetHighlight]()).
//    These can be called from any goroutine; the changes are queued
//    and applied at the start of the next frame.
//  - Drawing functions ([Face.Render](), [Face.RenderHighlightLayer]()).
//  - Scheduling functions ([Face.ShouldAnimate](), [Face.NextInterval]()).
//
// Except for the notification functions, faces must only be used from
// a single goroutine, the render goroutine.
type Face struct {
	loader font.Loader
	hooks Hooks
	transitionDuration time.Duration

	// queued notifications
	eventsMutex sync.Mutex
	pending pendingEvents

	// render goroutine state
	config style.Config
	palette style.Palette
	roles style.TextStyles
	machine mode.Machine
	animator anim.Animator
	slots []complication.Slot
	highlight Highlight
	frameCounter uint64
	stats Stats

	// glyph bitmaps
	renderScale float64
	preloaded bool
	glyphCache *cache.Cache
	hasher *cache.Hasher
	typesetter *typeset.Typesetter
	textSizer *sizer.DefaultSizer
	labelSizer *sizer.PaddedAdvanceSizer
	filledRasterizer *mask.DefaultRasterizer
	outlineRasterizer *mask.OutlineRasterizer
	boldOutlineRasterizer *mask.OutlineRasterizer

	// offscreen surfaces, reused across frames
	composite *image.RGBA
}

// Creates a new [Face].
func New(opts Options) *Face {
	loader := opts.Loader
	if loader == nil { loader = font.Default() }
	config := style.Default()
	if opts.Style != nil { config = *opts.Style }
	duration := opts.TransitionDuration
	if duration <= 0 { duration = DefaultTransitionDuration }

	face := &Face{
		loader: loader,
		hooks: opts.Hooks,
		transitionDuration: duration,
		glyphCache: cache.New(),
		hasher: cache.NewHasher(),
		typesetter: typeset.New(),
		textSizer: &sizer.DefaultSizer{},
		labelSizer: &sizer.PaddedAdvanceSizer{},
		filledRasterizer: &mask.DefaultRasterizer{},
		outlineRasterizer: mask.NewOutlineRasterizer(style.ThicknessOutline),
		boldOutlineRasterizer: mask.NewBoldOutlineRasterizer(style.ThicknessBoldOutline),
	}
	face.typesetter.SetSizer(face.textSizer)
	face.applyStyle(config)

	face.animator = *anim.New(1)
	if opts.Headless { face.machine.SetHeadless(true) }
	if opts.Ambient {
		face.machine.SettleAmbient(true)
		_ = face.animator.Snap(0)
	}
	return face
}

// Returns the current style configuration.
func (self *Face) Config() style.Config { return self.config }

// Returns the current palette.
func (self *Face) Palette() style.Palette { return self.palette }

// Returns the current mode state.
func (self *Face) State() mode.State { return self.machine.State() }

// Returns the time-scale at the given time, in [0, 1]. 0 is the
// ambient look and 1 the interactive one.
func (self *Face) TimeScale(now time.Time) float64 {
	return self.animator.Sample(now)
}

// Returns the number of frames rendered so far.
func (self *Face) FrameCount() uint64 { return self.frameCounter }

// Returns the face counters.
func (self *Face) Stats() Stats {
	stats := self.stats
	cacheStats := self.glyphCache.Stats()
	stats.CacheHits = cacheStats.Hits
	stats.CacheMisses = cacheStats.Misses
	stats.CacheRenders = cacheStats.Renders
	stats.CacheEntries = cacheStats.Entries
	stats.CacheBytes = self.glyphCache.ByteSize()
	return stats
}

// Returns the glyph bitmap cache. Mostly useful for diagnostics.
func (self *Face) Cache() *cache.Cache { return self.glyphCache }
