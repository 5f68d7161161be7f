//go:build linux || freebsd || openbsd || netbsd || dragonfly

package clipboard

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

var errNoDisplay = errors.New("clipboard initialization requires DISPLAY or WAYLAND_DISPLAY")

func hasDisplay() bool {
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

// writeSelection makes a hidden window own CLIPBOARD and answers requests
// for image/png until released or until another client takes ownership.
func writeSelection(data []byte) (<-chan struct{}, func(), error) {
	if os.Getenv("DISPLAY") == "" {
		return nil, nil, errNoDisplay
	}
	o, err := newSelectionOwner(data)
	if err != nil {
		return nil, nil, fmt.Errorf("selection owner: %w", err)
	}
	if err := xproto.SetSelectionOwnerChecked(o.conn, o.window, o.atoms.clipboard, xproto.TimeCurrentTime).Check(); err != nil {
		o.close()
		return nil, nil, fmt.Errorf("set selection owner: %w", err)
	}
	go o.serve()
	return o.lost, o.close, nil
}

type selectionOwner struct {
	conn   *xgb.Conn
	window xproto.Window
	atoms  atomSet
	data   []byte

	lost      chan struct{}
	lostOnce  sync.Once
	closeOnce sync.Once
}

type atomSet struct {
	clipboard xproto.Atom
	targets   xproto.Atom
	png       xproto.Atom
}

func newSelectionOwner(data []byte) (*selectionOwner, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, err
	}
	screen := xproto.Setup(conn).DefaultScreen(conn)
	window, err := xproto.NewWindowId(conn)
	if err != nil {
		conn.Close()
		return nil, err
	}
	if err := xproto.CreateWindowChecked(conn, screen.RootDepth, window, screen.Root, 0, 0, 1, 1, 0,
		xproto.WindowClassInputOutput, screen.RootVisual, xproto.CwEventMask,
		[]uint32{xproto.EventMaskPropertyChange}).Check(); err != nil {
		conn.Close()
		return nil, err
	}
	atoms, err := internAtoms(conn)
	if err != nil {
		xproto.DestroyWindow(conn, window)
		conn.Close()
		return nil, err
	}
	return &selectionOwner{
		conn:   conn,
		window: window,
		atoms:  atoms,
		data:   append([]byte(nil), data...),
		lost:   make(chan struct{}),
	}, nil
}

func internAtoms(conn *xgb.Conn) (atomSet, error) {
	get := func(name string) (xproto.Atom, error) {
		reply, err := xproto.InternAtom(conn, false, uint16(len(name)), name).Reply()
		if err != nil {
			return 0, fmt.Errorf("intern %s: %w", name, err)
		}
		return reply.Atom, nil
	}
	var (
		set atomSet
		err error
	)
	if set.clipboard, err = get("CLIPBOARD"); err != nil {
		return atomSet{}, err
	}
	if set.targets, err = get("TARGETS"); err != nil {
		return atomSet{}, err
	}
	if set.png, err = get("image/png"); err != nil {
		return atomSet{}, err
	}
	return set, nil
}

func (o *selectionOwner) serve() {
	defer o.markLost()
	for {
		ev, err := o.conn.WaitForEvent()
		if ev == nil && err == nil {
			return
		}
		switch e := ev.(type) {
		case xproto.SelectionRequestEvent:
			o.answer(e)
		case xproto.SelectionClearEvent:
			o.close()
			return
		}
	}
}

func (o *selectionOwner) answer(e xproto.SelectionRequestEvent) {
	property := e.Property
	if property == xproto.AtomNone {
		property = e.Target
	}
	switch e.Target {
	case o.atoms.targets:
		payload := atomsToBytes([]xproto.Atom{o.atoms.targets, o.atoms.png})
		xproto.ChangeProperty(o.conn, xproto.PropModeReplace, e.Requestor, property, xproto.AtomAtom, 32, uint32(len(payload)/4), payload)
	case o.atoms.png:
		xproto.ChangeProperty(o.conn, xproto.PropModeReplace, e.Requestor, property, o.atoms.png, 8, uint32(len(o.data)), o.data)
	default:
		property = xproto.AtomNone
	}
	notify := xproto.SelectionNotifyEvent{
		Time:      e.Time,
		Requestor: e.Requestor,
		Selection: e.Selection,
		Target:    e.Target,
		Property:  property,
	}
	xproto.SendEvent(o.conn, false, e.Requestor, 0, string(notify.Bytes()))
}

func (o *selectionOwner) markLost() {
	o.lostOnce.Do(func() { close(o.lost) })
}

func (o *selectionOwner) close() {
	o.closeOnce.Do(func() {
		xproto.DestroyWindow(o.conn, o.window)
		o.conn.Close()
	})
}

func atomsToBytes(atoms []xproto.Atom) []byte {
	buf := make([]byte, len(atoms)*4)
	for i, atom := range atoms {
		xgb.Put32(buf[i*4:], uint32(atom))
	}
	return buf
}
