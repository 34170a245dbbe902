package command

// Horizontal tells which popover edge is pinned to the cursor's x.
type Horizontal uint8

const (
	// AnchorLeft pins the popover's left edge at X.
	AnchorLeft Horizontal = iota
	// AnchorRight pins the popover's right edge at X; used when the popover
	// would overflow the container's right edge.
	AnchorRight
)

// Vertical tells how Y is measured.
type Vertical uint8

const (
	// Below places the popover's top at Y, just under the cursor line.
	Below Vertical = iota
	// Above pins the popover's bottom Y units above the container bottom,
	// used when dropping below the cursor would overflow.
	Above
)

// CursorCoords is the caret position relative to the scroll container.
type CursorCoords struct {
	Left float64
	Top  float64
}

// ContainerMetrics are read fresh from the host for every placement.
type ContainerMetrics struct {
	ClientWidth  float64
	ClientHeight float64
	ScrollTop    float64
	LineHeight   float64
}

// Footprint is the popover's fixed size plus the bottom inset used when it
// is pinned to the container bottom.
type Footprint struct {
	Width        float64
	Height       float64
	BottomOffset float64
}

func DefaultFootprint() Footprint {
	return Footprint{Width: 341, Height: 173, BottomOffset: 64}
}

type PopoverPlacement struct {
	Horizontal Horizontal
	Vertical   Vertical
	X          float64
	Y          float64
}

// Rect is a box in container coordinates.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// PlacePopover decides where the link popover goes for the cursor at c.
func PlacePopover(c CursorCoords, m ContainerMetrics, f Footprint) PopoverPlacement {
	p := PopoverPlacement{X: c.Left}
	if c.Left > m.ClientWidth-f.Width {
		p.Horizontal = AnchorRight
	}

	top := m.ScrollTop + c.Top + m.LineHeight/2 + 1
	if top+f.Height > m.ClientHeight {
		p.Vertical = Above
		p.Y = f.BottomOffset
	} else {
		p.Vertical = Below
		p.Y = top
	}
	return p
}

// Bounds returns the box the popover occupies for the same metrics and
// footprint that produced p.
func (p PopoverPlacement) Bounds(m ContainerMetrics, f Footprint) Rect {
	var r Rect
	switch p.Horizontal {
	case AnchorRight:
		r.Left, r.Right = p.X-f.Width, p.X
	default:
		r.Left, r.Right = p.X, p.X+f.Width
	}
	switch p.Vertical {
	case Above:
		r.Bottom = m.ClientHeight - p.Y
		r.Top = r.Bottom - f.Height
	default:
		r.Top, r.Bottom = p.Y, p.Y+f.Height
	}
	return r
}
