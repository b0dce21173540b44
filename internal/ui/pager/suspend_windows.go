//go:build windows

package pager

import "os"

func contSignals() []os.Signal {
	return nil
}

// On Windows there is no SIGTSTP/SIGCONT; treat suspend as no-op.
func (p *Pager) suspendToShell() {
}

func (p *Pager) resumeAfterStop() bool {
	return false
}
