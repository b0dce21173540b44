// Package pager runs the interactive document viewer on a tcell screen.
package pager

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/peek/internal/document"
	statepkg "github.com/kk-code-lab/peek/internal/state"
	"github.com/kk-code-lab/peek/internal/ui/input"
	renderui "github.com/kk-code-lab/peek/internal/ui/render"
)

// Options configures the pager.
type Options struct {
	Theme    renderui.ColorTheme
	TabWidth int
}

// DefaultOptions returns the built-in theme and tab width.
func DefaultOptions() Options {
	return Options{Theme: renderui.GetColorTheme()}
}

// Pager shows one document. The caller owns the screen: it must be
// initialized before Run and finalized afterwards.
type Pager struct {
	screen   tcell.Screen
	doc      *document.Document
	name     string
	vp       *statepkg.ViewportState
	reducer  *statepkg.ViewportReducer
	renderer *renderui.Renderer
	input    *input.InputHandler
	actionCh chan statepkg.Action

	shouldQuit bool
}

// New prepares a pager for doc labelled name.
func New(screen tcell.Screen, doc *document.Document, name string, opts Options) (*Pager, error) {
	if screen == nil {
		return nil, errors.New("pager: no screen")
	}
	if doc == nil {
		doc = &document.Document{}
	}

	renderer := renderui.NewRenderer(screen)
	renderer.SetTheme(opts.Theme)
	renderer.SetTabWidth(opts.TabWidth)

	actionCh := make(chan statepkg.Action, 10)
	_, h := screen.Size()

	return &Pager{
		screen:   screen,
		doc:      doc,
		name:     name,
		vp:       statepkg.NewViewport(doc.Len(), input.ContentRows(h)),
		reducer:  statepkg.NewViewportReducer(),
		renderer: renderer,
		input:    input.NewInputHandler(actionCh),
		actionCh: actionCh,
	}, nil
}

// Viewport exposes the current scroll position.
func (p *Pager) Viewport() statepkg.ViewportState {
	return *p.vp
}

// Run draws the document and processes key and resize events until the user
// quits or ctx is cancelled.
func (p *Pager) Run(ctx context.Context) error {
	p.renderer.Render(p.doc, p.vp, p.name)
	renderPending := false

	done := make(chan struct{})
	defer close(done)

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			ev := p.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	for !p.shouldQuit {
		if renderPending {
			p.renderer.Render(p.doc, p.vp, p.name)
			renderPending = false
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-eventChan:
			if p.handleEvent(ev) {
				renderPending = true
			}
		case <-sigContCh:
			if p.resumeAfterStop() {
				renderPending = true
			}
		}

		if p.processActions() {
			renderPending = true
		}
	}
	return nil
}

func (p *Pager) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlZ {
			p.suspendToShell()
			return false
		}
		if !p.input.ProcessEvent(ev) {
			p.shouldQuit = true
		}
		return false
	case *tcell.EventResize:
		p.screen.Sync()
		p.input.ProcessEvent(ev)
		return true
	default:
		return false
	}
}

// processActions drains queued actions into the viewport.
func (p *Pager) processActions() bool {
	changed := false
	for {
		select {
		case action := <-p.actionCh:
			if _, ok := action.(statepkg.QuitAction); ok {
				p.shouldQuit = true
				continue
			}
			p.reducer.Reduce(p.vp, action)
			changed = true
		default:
			return changed
		}
	}
}
