//go:build !windows

package pager

import (
	"os"
	"syscall"

	statepkg "github.com/kk-code-lab/peek/internal/state"
	"github.com/kk-code-lab/peek/internal/ui/input"
)

func contSignals() []os.Signal {
	return []os.Signal{syscall.SIGCONT}
}

func (p *Pager) suspendToShell() {
	// Return terminal control to the shell before stopping the process.
	_ = p.screen.Suspend()
	// Stop only this process so job control in the parent shell keeps working.
	_ = syscall.Kill(syscall.Getpid(), syscall.SIGTSTP)
}

func (p *Pager) resumeAfterStop() bool {
	if err := p.screen.Resume(); err != nil {
		return false
	}
	p.screen.Sync()
	if _, h := p.screen.Size(); h > 0 {
		p.actionCh <- statepkg.ResizeAction{Rows: input.ContentRows(h)}
	}
	return true
}
