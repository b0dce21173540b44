package state

// Action is the base interface for all viewport mutations
type Action interface{}

// ===== CURSOR ACTIONS =====

type CursorDownAction struct{}
type CursorUpAction struct{}
type HalfPageDownAction struct{}
type HalfPageUpAction struct{}
type FirstLineAction struct{} // also resets the horizontal offset
type LastLineAction struct{}

// ===== HORIZONTAL SCROLL ACTIONS =====

type ScrollRightAction struct{}
type ScrollLeftAction struct{}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Rows int // rows available for document content
}

// ===== APPLICATION ACTIONS =====

type QuitAction struct{} // handled by the pager loop, ignored by the reducer
