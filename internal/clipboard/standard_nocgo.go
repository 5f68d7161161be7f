//go:build !cgo && !windows

package clipboard

import (
	"errors"
	"sync"
)

var (
	initOnce       sync.Once
	initErr        error
	errCGODisabled = errors.New("clipboard operations require cgo support")
)

func ensureInit() error {
	initOnce.Do(func() {
		if hasDisplay() {
			initErr = errCGODisabled
			return
		}
		initErr = errNoDisplay
	})
	return initErr
}

func writeStandard([]byte) (<-chan struct{}, func(), error) {
	return nil, nil, ensureInit()
}
