//go:build darwin

package notify

import (
	"fmt"
	"os/exec"
)

// platformSend uses Notification Center through osascript.
func platformSend(m message) error {
	script := fmt.Sprintf("display notification %q with title %q", m.Body, m.Title)
	return exec.Command("osascript", "-e", script).Run()
}
