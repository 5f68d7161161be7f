package geom

// Handle names one of the eight resize grips on a selection border.
type Handle int

const (
	HandleNone Handle = iota
	HandleTopLeft
	HandleTopMid
	HandleTopRight
	HandleMidLeft
	HandleMidRight
	HandleBottomLeft
	HandleBottomMid
	HandleBottomRight
)

var handleNames = [...]string{
	HandleNone:        "none",
	HandleTopLeft:     "top_left",
	HandleTopMid:      "top_mid",
	HandleTopRight:    "top_right",
	HandleMidLeft:     "mid_left",
	HandleMidRight:    "mid_right",
	HandleBottomLeft:  "bottom_left",
	HandleBottomMid:   "bottom_mid",
	HandleBottomRight: "bottom_right",
}

func (h Handle) String() string {
	if h < 0 || int(h) >= len(handleNames) {
		return "unknown"
	}
	return handleNames[h]
}

// Left reports whether dragging h moves the left edge.
func (h Handle) Left() bool {
	return h == HandleTopLeft || h == HandleMidLeft || h == HandleBottomLeft
}

// Right reports whether dragging h moves the right edge.
func (h Handle) Right() bool {
	return h == HandleTopRight || h == HandleMidRight || h == HandleBottomRight
}

// Top reports whether dragging h moves the top edge.
func (h Handle) Top() bool {
	return h == HandleTopLeft || h == HandleTopMid || h == HandleTopRight
}

// Bottom reports whether dragging h moves the bottom edge.
func (h Handle) Bottom() bool {
	return h == HandleBottomLeft || h == HandleBottomMid || h == HandleBottomRight
}

// HandleBox pairs a handle with its square.
type HandleBox struct {
	Handle Handle
	Rect   Rect
}

// ResizeHandles returns the size x size squares centred on the corners and
// edge midpoints of r, in a fixed order.
func ResizeHandles(r Rect, size int) []HandleBox {
	hs := size / 2
	cx := r.X + r.W/2
	cy := r.Y + r.H/2
	box := func(x, y int) Rect { return Rect{X: x - hs, Y: y - hs, W: size, H: size} }
	return []HandleBox{
		{HandleTopLeft, box(r.X, r.Y)},
		{HandleTopMid, box(cx, r.Y)},
		{HandleTopRight, box(r.Right(), r.Y)},
		{HandleMidLeft, box(r.X, cy)},
		{HandleMidRight, box(r.Right(), cy)},
		{HandleBottomLeft, box(r.X, r.Bottom())},
		{HandleBottomMid, box(cx, r.Bottom())},
		{HandleBottomRight, box(r.Right(), r.Bottom())},
	}
}

// HandleAt returns the first handle of r whose box, grown to 1.5 times
// size around the same centre, contains p. The test is done in quarter
// pixels so odd sizes keep the exact ratio.
func HandleAt(p Point, r Rect, size int) Handle {
	for _, hb := range ResizeHandles(r, size) {
		cx, cy := hb.Rect.X+size/2, hb.Rect.Y+size/2
		if 4*abs(p.X-cx) <= 3*size && 4*abs(p.Y-cy) <= 3*size {
			return hb.Handle
		}
	}
	return HandleNone
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Resize moves the edges of r implied by h towards p. p is clamped to the
// screen first, the opposite edge stays put and neither extent drops below
// min. The result is normalized to the screen.
func Resize(r Rect, h Handle, p Point, screen Size, min int) Rect {
	p = ClampPoint(p, screen)
	right, bottom := r.Right(), r.Bottom()
	switch {
	case h.Left():
		x := p.X
		if x > right-min {
			x = right - min
		}
		r.X, r.W = x, right-x
	case h.Right():
		r.W = p.X - r.X
		if r.W < min {
			r.W = min
		}
	}
	switch {
	case h.Top():
		y := p.Y
		if y > bottom-min {
			y = bottom - min
		}
		r.Y, r.H = y, bottom-y
	case h.Bottom():
		r.H = p.Y - r.Y
		if r.H < min {
			r.H = min
		}
	}
	return Normalize(r, screen)
}

// Drag places r so that its origin is p-offset, keeping it fully on screen.
func Drag(r Rect, p, offset Point, screen Size) Rect {
	r.X = Clamp(p.X-offset.X, 0, screen.W-r.W)
	r.Y = Clamp(p.Y-offset.Y, 0, screen.H-r.H)
	return r
}
