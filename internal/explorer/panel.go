package explorer

// Default pixel bounds of the navigation panel.
const (
	DefaultPanelMin   = 180
	DefaultPanelMax   = 500
	DefaultPanelWidth = 260
)

// Panel is the resizable navigation panel. Width only changes while a drag
// is active and is always kept within [Min, Max].
type Panel struct {
	Min      int
	Max      int
	width    int
	dragging bool
}

// NewPanel returns a panel with the given bounds and initial width.
func NewPanel(lo, hi, width int) *Panel {
	if hi < lo {
		hi = lo
	}
	p := &Panel{Min: lo, Max: hi}
	p.width = p.clamp(width)
	return p
}

// DefaultPanel returns the default pixel panel.
func DefaultPanel() *Panel {
	return NewPanel(DefaultPanelMin, DefaultPanelMax, DefaultPanelWidth)
}

func (p *Panel) clamp(w int) int {
	if w < p.Min {
		return p.Min
	}
	if w > p.Max {
		return p.Max
	}
	return w
}

func (p *Panel) Width() int { return p.width }

func (p *Panel) Dragging() bool { return p.dragging }

// BeginDrag starts a resize gesture, normally on press over the handle.
func (p *Panel) BeginDrag() { p.dragging = true }

// DragTo sets the width to x while dragging. It reports whether the width
// was updated; motion outside a drag is ignored.
func (p *Panel) DragTo(x int) bool {
	if !p.dragging {
		return false
	}
	p.width = p.clamp(x)
	return true
}

// EndDrag finishes the gesture wherever the pointer was released.
func (p *Panel) EndDrag() { p.dragging = false }

// Resize performs a whole drag gesture ending at w and returns the clamped
// width. It is the path for widths reported after the pointer was released
// and for keyboard steps. A drag already in progress stays active.
func (p *Panel) Resize(w int) int {
	inGesture := p.dragging
	p.BeginDrag()
	p.DragTo(w)
	if !inGesture {
		p.EndDrag()
	}
	return p.width
}
