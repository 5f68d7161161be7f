//go:build linux || freebsd || openbsd || netbsd || dragonfly

package capture

import (
	"errors"
	"testing"

	"github.com/godbus/dbus/v5"
)

func TestRunningOnWayland(t *testing.T) {
	t.Setenv("XDG_SESSION_TYPE", "wayland")
	t.Setenv("WAYLAND_DISPLAY", "")
	if !runningOnWayland() {
		t.Fatalf("expected wayland session when XDG_SESSION_TYPE=wayland")
	}

	t.Setenv("XDG_SESSION_TYPE", "x11")
	t.Setenv("WAYLAND_DISPLAY", "wayland-0")
	if !runningOnWayland() {
		t.Fatalf("expected wayland session when WAYLAND_DISPLAY is set")
	}

	t.Setenv("XDG_SESSION_TYPE", "x11")
	t.Setenv("WAYLAND_DISPLAY", "")
	if runningOnWayland() {
		t.Fatalf("did not expect wayland session when indicators are absent")
	}
}

func TestPortalScreenshotOptions(t *testing.T) {
	prevToken := portalHandleToken
	portalHandleToken = func() string { return "test-token" }
	t.Cleanup(func() { portalHandleToken = prevToken })

	values := portalScreenshotOptions()
	if v, _ := values["interactive"].Value().(bool); v {
		t.Fatal("portal asked for an interactive capture")
	}
	if v, _ := values["handle_token"].Value().(string); v != "test-token" {
		t.Fatalf("handle_token = %q", v)
	}
}

func TestPortalResult(t *testing.T) {
	uri := func(s string) map[string]dbus.Variant {
		return map[string]dbus.Variant{"uri": dbus.MakeVariant(s)}
	}
	tests := []struct {
		name    string
		body    []interface{}
		want    string
		wantErr bool
	}{
		{"ok", []interface{}{uint32(0), uri("file:///tmp/Screenshot%20one.png")}, "/tmp/Screenshot one.png", false},
		{"not a file", []interface{}{uint32(0), uri("https://example.com/a.png")}, "", true},
		{"no uri", []interface{}{uint32(0), map[string]dbus.Variant{}}, "", true},
		{"failed", []interface{}{uint32(2), uri("file:///tmp/a.png")}, "", true},
		{"short", []interface{}{uint32(0)}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := portalResult(tt.body)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("path = %q, want %q", got, tt.want)
			}
		})
	}
	if _, err := portalResult([]interface{}{uint32(1), uri("file:///tmp/a.png")}); !errors.Is(err, errPortalCancelled) {
		t.Fatalf("cancelled err = %v", err)
	}
}
