package schedule

// Window is the visible range of a room timeline plus the horizontal
// margin reserved on each side of the rendering surface.
type Window struct {
	Start  TimeOfDay
	End    TimeOfDay
	Margin float64
}

// DefaultWindow is the 06:00-22:00 range with a 10px-equivalent margin the
// room timeline has always rendered with.
func DefaultWindow() Window {
	return Window{Start: 6 * 60, End: 22 * 60, Margin: 10}
}

// Box is a horizontal placement on the timeline, in the same pixel units
// as the render width passed to Position.
type Box struct {
	Left  float64
	Width float64
}

// Position maps a time-of-day interval onto the timeline. left is clamped
// to the margin and width to zero, so intervals spilling out of the window
// are truncated at the edge rather than hidden. Filtering events that lie
// entirely outside the window is the caller's job (see VisibleIn); Position
// itself always yields a drawable box and never fails.
func (w Window) Position(start, end TimeOfDay, renderWidth float64) Box {
	windowMinutes := float64(w.End - w.Start)
	minuteWidth := (renderWidth - 2*w.Margin) / windowMinutes

	left := w.Margin + float64(start-w.Start)*minuteWidth
	width := float64(end-start) * minuteWidth

	if left < w.Margin {
		left = w.Margin
	}
	if width < 0 {
		width = 0
	}
	return Box{Left: left, Width: width}
}

// VisibleIn reports whether any part of the interval falls inside the
// window. Callers filter with this before Position; fully out-of-window
// events are dropped upstream, not drawn as zero-width slivers.
func (w Window) VisibleIn(start, end TimeOfDay) bool {
	return start < w.End && end > w.Start
}

// DefaultPalette is the set of block colors the timeline cycles through.
var DefaultPalette = []string{
	"rgba(50, 193, 255, 0.7)",
	"rgba(50, 67, 255, 0.7)",
	"rgba(50, 122, 255, 0.7)",
	"rgba(42, 200, 71, 0.7)",
}

// ColorAt returns the palette color for the i-th event on a timeline. It
// is a pure function of the index, so concurrent renders of the same list
// always color it the same way.
func ColorAt(i int) string {
	if i < 0 {
		i = -i
	}
	return DefaultPalette[i%len(DefaultPalette)]
}
