//go:build windows

package launch

import (
	"syscall"

	"golang.org/x/sys/windows"
)

// detachAttr detaches the child from gdrun's console and process group so
// it keeps running after gdrun exits.
func detachAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		CreationFlags: windows.DETACHED_PROCESS | windows.CREATE_NEW_PROCESS_GROUP,
	}
}
