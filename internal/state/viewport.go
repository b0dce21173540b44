package state

// ViewportState is the scroll window over a document. All fields are
// zero-based line or column indexes except the two counts.
type ViewportState struct {
	TopLine     int
	LeftCol     int
	CursorLine  int
	TotalLines  int
	VisibleRows int
}

// NewViewport returns a viewport at the top of a document with total lines
// shown through rows content rows.
func NewViewport(total, rows int) *ViewportState {
	vp := &ViewportState{TotalLines: max(total, 0), VisibleRows: rows}
	vp.reflow()
	return vp
}

// LastIndex is the highest valid cursor line.
func (vp *ViewportState) LastIndex() int {
	return max(vp.TotalLines-1, 0)
}

func (vp *ViewportState) rows() int {
	return max(vp.VisibleRows, 1)
}

// HalfPage is the cursor distance of a half-page move.
func (vp *ViewportState) HalfPage() int {
	return max(vp.rows()/2, 1)
}

// BottomLine is the index of the last row inside the window, which may lie
// past the end of a short document.
func (vp *ViewportState) BottomLine() int {
	return vp.TopLine + vp.rows() - 1
}

// moveCursor shifts the cursor by delta, clamped to the document.
func (vp *ViewportState) moveCursor(delta int) {
	vp.setCursor(vp.CursorLine + delta)
}

func (vp *ViewportState) setCursor(line int) {
	if line < 0 {
		line = 0
	}
	if last := vp.LastIndex(); line > last {
		line = last
	}
	vp.CursorLine = line
}

// reflow moves TopLine by the smallest amount that brings the cursor back
// into the window.
func (vp *ViewportState) reflow() {
	vp.setCursor(vp.CursorLine)

	if vp.CursorLine < vp.TopLine {
		vp.TopLine = vp.CursorLine
	} else if vp.CursorLine > vp.BottomLine() {
		vp.TopLine = vp.CursorLine - (vp.rows() - 1)
	}
	if vp.TopLine < 0 {
		vp.TopLine = 0
	}
}

// ViewportReducer applies navigation actions to a ViewportState.
type ViewportReducer struct{}

// NewViewportReducer creates a new reducer
func NewViewportReducer() *ViewportReducer {
	return &ViewportReducer{}
}

// Reduce applies action to vp in place and returns it. Unknown actions leave
// the position untouched apart from the clamp step.
func (r *ViewportReducer) Reduce(vp *ViewportState, action Action) *ViewportState {
	switch a := action.(type) {

	// ===== CURSOR =====

	case CursorDownAction:
		vp.moveCursor(1)

	case CursorUpAction:
		vp.moveCursor(-1)

	case HalfPageDownAction:
		vp.moveCursor(vp.HalfPage())

	case HalfPageUpAction:
		vp.moveCursor(-vp.HalfPage())

	case FirstLineAction:
		vp.CursorLine = 0
		vp.LeftCol = 0

	case LastLineAction:
		vp.CursorLine = vp.LastIndex()

	// ===== HORIZONTAL =====

	case ScrollRightAction:
		vp.LeftCol++

	case ScrollLeftAction:
		if vp.LeftCol > 0 {
			vp.LeftCol--
		}

	// ===== VIEW =====

	case ResizeAction:
		vp.VisibleRows = a.Rows
	}

	vp.reflow()
	return vp
}
