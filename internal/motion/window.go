package motion

// Window is the frame span an animation runs over.
type Window struct {
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Easing Easing `json:"easing"`
}

// NewWindow builds a window. An end before start collapses to a zero-length
// window at start.
func NewWindow(start, end int, easing Easing) Window {
	if end < start {
		end = start
	}
	if !easing.Valid() {
		easing = EasingLinear
	}
	return Window{Start: start, End: end, Easing: easing}
}

// WindowFor builds the window for an animation starting after delay frames and
// lasting duration frames. A negative duration is treated as zero.
func WindowFor(delay, duration int, easing Easing) Window {
	if duration < 0 {
		duration = 0
	}
	return NewWindow(delay, delay+duration, easing)
}

// Duration is the window length in frames.
func (w Window) Duration() int {
	if w.End < w.Start {
		return 0
	}
	return w.End - w.Start
}

// Shift returns the window moved by n frames.
func (w Window) Shift(n int) Window {
	return Window{Start: w.Start + n, End: w.End + n, Easing: w.Easing}
}

// Progress is ComputeProgress bound to w.
func (w Window) Progress(frame int) float64 {
	return ComputeProgress(frame, w)
}

// ComputeProgress maps frame into [0,1] across w and applies the window's
// easing. Frames before Start give 0 and frames at or after End give 1. A
// zero-length window is a step at Start.
func ComputeProgress(frame int, w Window) float64 {
	if frame < w.Start {
		return 0
	}
	if w.End <= w.Start || frame >= w.End {
		return 1
	}
	linear := float64(frame-w.Start) / float64(w.End-w.Start)
	return ApplyEasing(linear, w.Easing)
}
