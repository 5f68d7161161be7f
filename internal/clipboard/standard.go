//go:build cgo || windows

package clipboard

import (
	"sync"

	"golang.design/x/clipboard"
)

var (
	initOnce sync.Once
	initErr  error
)

func ensureInit() error {
	initOnce.Do(func() {
		if !hasDisplay() {
			initErr = errNoDisplay
			return
		}
		initErr = clipboard.Init()
	})
	return initErr
}

func writeStandard(data []byte) (<-chan struct{}, func(), error) {
	if err := ensureInit(); err != nil {
		return nil, nil, err
	}
	return clipboard.Write(clipboard.FmtImage, data), nil, nil
}
