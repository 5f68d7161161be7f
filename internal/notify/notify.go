// Package notify reports session outcomes as desktop notifications.
package notify

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Event identifies a notification trigger.
type Event string

const (
	// EventSave fires when a capture was written to disk.
	EventSave Event = "save"
	// EventCopy fires when a capture was placed on the clipboard.
	EventCopy Event = "copy"
	// EventError fires when the session fails.
	EventError Event = "error"
)

// message is what a platform backend displays.
type message struct {
	Title    string
	Body     string
	IconPath string
	Urgent   bool
}

// send is swapped out in tests.
var send = platformSend

// Notifier sends OS-level notifications for the events it has enabled.
type Notifier struct {
	Title   string
	enabled map[Event]bool
}

// New creates a Notifier with every event disabled.
func New() *Notifier {
	return &Notifier{Title: "snipshot", enabled: make(map[Event]bool)}
}

// Enable toggles the notifier for the provided event.
func (n *Notifier) Enable(event Event, enabled bool) {
	if n == nil {
		return
	}
	if n.enabled == nil {
		n.enabled = make(map[Event]bool)
	}
	n.enabled[event] = enabled
}

// Save announces the written file and uses it as the icon when possible.
func (n *Notifier) Save(path string) {
	msg := message{Body: "Saved screenshot"}
	if p := strings.TrimSpace(path); p != "" {
		if abs, err := filepath.Abs(p); err == nil {
			p = abs
			if _, err := os.Stat(abs); err == nil {
				msg.IconPath = abs
			}
		}
		msg.Body = "Saved " + p
	}
	n.dispatch(EventSave, msg)
}

// Copy announces a clipboard copy.
func (n *Notifier) Copy() {
	n.dispatch(EventCopy, message{Body: "Screenshot copied to clipboard"})
}

// Error announces a failure that ended the session.
func (n *Notifier) Error(err error) {
	if err == nil {
		return
	}
	n.dispatch(EventError, message{Body: fmt.Sprintf("Screenshot failed: %v", err), Urgent: true})
}

func (n *Notifier) dispatch(event Event, msg message) {
	if n == nil || !n.enabled[event] {
		return
	}
	msg.Title = n.Title
	if err := send(msg); err != nil {
		log.Printf("notification %s: %v", event, err)
	}
}
