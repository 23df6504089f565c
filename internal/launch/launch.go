// Package launch spawns the selected Godot executable as a process that
// outlives gdrun.
package launch

import (
	"fmt"
	"os/exec"

	"github.com/1273l/Godot-Launcher/internal/messages"
)

// Spawn starts path detached, forwarding args verbatim as the child's
// argument list, and returns once the OS has accepted the spawn. The child's
// stdio is not inherited and its exit is never waited on; gdrun exits right
// after a successful Spawn.
func Spawn(path string, args []string) error {
	cmd := exec.Command(path, args...)
	cmd.SysProcAttr = detachAttr()
	if err := cmd.Start(); err != nil {
		return fmt.Errorf(messages.SpawnFmt, path, err)
	}
	// Drop the process handle; there will be no Wait.
	return cmd.Process.Release()
}
