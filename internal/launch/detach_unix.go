//go:build !windows

package launch

import "syscall"

// detachAttr puts the child in its own session so it keeps running after
// gdrun exits and never receives the launching terminal's signals.
func detachAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}
