//go:build linux

package notify

import (
	"github.com/godbus/dbus/v5"
)

// platformSend uses the Freedesktop.org notification service.
func platformSend(m message) error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return err
	}
	defer conn.Close()

	urgency := byte(1)
	if m.Urgent {
		urgency = 2
	}
	hints := map[string]dbus.Variant{"urgency": dbus.MakeVariant(urgency)}
	obj := conn.Object("org.freedesktop.Notifications", "/org/freedesktop/Notifications")
	call := obj.Call("org.freedesktop.Notifications.Notify", 0,
		m.Title, uint32(0), m.IconPath, m.Title, m.Body, []string{}, hints, int32(5000))
	return call.Err
}
