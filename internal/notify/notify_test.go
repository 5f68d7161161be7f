package notify

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func capture(t *testing.T) *[]message {
	t.Helper()
	var got []message
	prev := send
	send = func(m message) error {
		got = append(got, m)
		return nil
	}
	t.Cleanup(func() { send = prev })
	return &got
}

func TestDisabledEventsAreSilent(t *testing.T) {
	got := capture(t)
	n := New()
	n.Save("/tmp/a.png")
	n.Copy()
	n.Error(errors.New("boom"))
	if len(*got) != 0 {
		t.Fatalf("sent %d notifications", len(*got))
	}
	var nilNotifier *Notifier
	nilNotifier.Copy()
}

func TestSaveUsesFileAsIcon(t *testing.T) {
	got := capture(t)
	path := filepath.Join(t.TempDir(), "shot.png")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	n := New()
	n.Enable(EventSave, true)
	n.Save(path)
	if len(*got) != 1 {
		t.Fatalf("sent %d notifications", len(*got))
	}
	m := (*got)[0]
	if m.Title != "snipshot" || m.IconPath != path || !strings.HasSuffix(m.Body, path) {
		t.Fatalf("message = %+v", m)
	}
}

func TestErrorIsUrgent(t *testing.T) {
	got := capture(t)
	n := New()
	n.Enable(EventError, true)
	n.Enable(EventCopy, true)
	n.Error(nil)
	n.Error(errors.New("no display"))
	n.Copy()
	if len(*got) != 2 {
		t.Fatalf("sent %d notifications", len(*got))
	}
	if !(*got)[0].Urgent || !strings.Contains((*got)[0].Body, "no display") {
		t.Fatalf("error message = %+v", (*got)[0])
	}
	if (*got)[1].Urgent {
		t.Fatal("copy notification marked urgent")
	}
}
