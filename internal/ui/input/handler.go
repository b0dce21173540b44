package input

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/peek/internal/state"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan statepkg.Action
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// ProcessEvent converts a tcell event into an Action. It returns false once
// the user asked to quit.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		action, ok := Translate(ev)
		if !ok {
			return true
		}
		ih.actionChan <- action
		_, quit := action.(statepkg.QuitAction)
		return !quit
	case *tcell.EventResize:
		_, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Rows: ContentRows(h)}
		return true
	default:
		return true
	}
}

// ContentRows is the number of document rows left once the status bar takes
// the last screen row.
func ContentRows(height int) int {
	return max(height-1, 1)
}

// Translate maps one key press to a navigation action. Keys without a
// binding report false.
func Translate(ev *tcell.EventKey) (statepkg.Action, bool) {
	// Handle special keys first
	switch ev.Key() {
	case tcell.KeyDown:
		return statepkg.CursorDownAction{}, true
	case tcell.KeyUp:
		return statepkg.CursorUpAction{}, true
	case tcell.KeyCtrlD, tcell.KeyPgDn:
		return statepkg.HalfPageDownAction{}, true
	case tcell.KeyCtrlU, tcell.KeyPgUp:
		return statepkg.HalfPageUpAction{}, true
	case tcell.KeyHome:
		return statepkg.FirstLineAction{}, true
	case tcell.KeyEnd:
		return statepkg.LastLineAction{}, true
	case tcell.KeyRight:
		return statepkg.ScrollRightAction{}, true
	case tcell.KeyLeft:
		return statepkg.ScrollLeftAction{}, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return statepkg.QuitAction{}, true
	case tcell.KeyRune:
		return translateRune(ev.Rune())
	default:
		return nil, false
	}
}

func translateRune(r rune) (statepkg.Action, bool) {
	switch r {
	case 'j':
		return statepkg.CursorDownAction{}, true
	case 'k':
		return statepkg.CursorUpAction{}, true
	case 'd':
		return statepkg.HalfPageDownAction{}, true
	case 'u':
		return statepkg.HalfPageUpAction{}, true
	case 'g':
		return statepkg.FirstLineAction{}, true
	case 'G':
		return statepkg.LastLineAction{}, true
	case 'l':
		return statepkg.ScrollRightAction{}, true
	case 'h':
		return statepkg.ScrollLeftAction{}, true
	case 'q', 'Q':
		return statepkg.QuitAction{}, true
	default:
		return nil, false
	}
}
