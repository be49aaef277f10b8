package slicer

import (
	"fmt"
	"sync/atomic"
	"time"
)

// TimerLabel identifies one of the named timers a Context accumulates.
type TimerLabel int

const (
	// TimerTotal is the total wall-clock time of a Slice call.
	TimerTotal TimerLabel = iota
	// TimerAABBBuild is the time spent building the AABB hierarchy.
	TimerAABBBuild
	// TimerPlaneQuery is the cumulative time spent walking the AABB tree for
	// candidate triangles and extracting their segments, across all planes.
	TimerPlaneQuery
	// TimerSegmentExtract is a slot for the time spent classifying
	// triangle/plane intersections; Slice does not accumulate it, since
	// that work is timed under TimerPlaneQuery.
	TimerSegmentExtract
	// TimerStitch is the cumulative time spent in the three-phase ring
	// stitcher.
	TimerStitch
	// TimerOrient is the cumulative time spent computing ring orientation
	// and the hole-containment tree.
	TimerOrient
	// maxTimers is the number of timer slots a Context allocates.
	maxTimers
)

const maxLogMessages = 1000

// Context carries logging and performance-timer state through a build or
// slice operation, and a cooperative cancellation signal. A
// nil *Context is valid everywhere a *Context is accepted: all methods are
// nil-receiver safe and become no-ops, so callers that don't care about
// diagnostics or cancellation can pass nil.
type Context struct {
	enabled bool

	startTime [maxTimers]time.Time
	accTime   [maxTimers]time.Duration

	messages     [maxLogMessages]string
	messageCount int

	cancelled int32 // accessed atomically
}

// NewContext returns a Context with logging and timers enabled or disabled
// as requested.
func NewContext(enabled bool) *Context {
	return &Context{enabled: enabled}
}

func (ctx *Context) logCategory(prefix, format string, args ...interface{}) {
	if ctx == nil || !ctx.enabled || ctx.messageCount >= maxLogMessages {
		return
	}
	ctx.messages[ctx.messageCount] = prefix + fmt.Sprintf(format, args...)
	ctx.messageCount++
}

// Progressf logs a progress message.
func (ctx *Context) Progressf(format string, args ...interface{}) {
	ctx.logCategory("PROG ", format, args...)
}

// Warningf logs a warning message.
func (ctx *Context) Warningf(format string, args ...interface{}) {
	ctx.logCategory("WARN ", format, args...)
}

// Errorf logs an error message. It does not itself construct a *Error; it
// only records a line for later inspection via DumpLog.
func (ctx *Context) Errorf(format string, args ...interface{}) {
	ctx.logCategory("ERR ", format, args...)
}

// ResetLog clears all accumulated log messages.
func (ctx *Context) ResetLog() {
	if ctx == nil {
		return
	}
	ctx.messageCount = 0
}

// DumpLog prints format (as a header) followed by every accumulated log
// message to stdout.
func (ctx *Context) DumpLog(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
	if ctx == nil {
		return
	}
	for i := 0; i < ctx.messageCount; i++ {
		fmt.Println(ctx.messages[i])
	}
}

// ResetTimers zeroes every accumulated timer.
func (ctx *Context) ResetTimers() {
	if ctx == nil {
		return
	}
	for i := range ctx.accTime {
		ctx.accTime[i] = 0
	}
}

// StartTimer starts (or restarts) the named timer.
func (ctx *Context) StartTimer(label TimerLabel) {
	if ctx == nil || !ctx.enabled {
		return
	}
	ctx.startTime[label] = time.Now()
}

// StopTimer accumulates the elapsed time since the last StartTimer call for
// label.
func (ctx *Context) StopTimer(label TimerLabel) {
	if ctx == nil || !ctx.enabled {
		return
	}
	ctx.accTime[label] += time.Since(ctx.startTime[label])
}

// AccumulatedTime returns the total accumulated duration for label.
func (ctx *Context) AccumulatedTime(label TimerLabel) time.Duration {
	if ctx == nil {
		return 0
	}
	return ctx.accTime[label]
}

// Cancel requests that any in-progress AABB build or slice operation using
// this Context stop at its next checkpoint and fail with KindCancelled.
// It is safe to call from any goroutine.
func (ctx *Context) Cancel() {
	if ctx == nil {
		return
	}
	atomic.StoreInt32(&ctx.cancelled, 1)
}

// Cancelled reports whether Cancel has been called. Long operations check
// this at coarse checkpoints: per recursion level during AABB build, per
// layer during slicing.
func (ctx *Context) Cancelled() bool {
	return ctx != nil && atomic.LoadInt32(&ctx.cancelled) != 0
}
