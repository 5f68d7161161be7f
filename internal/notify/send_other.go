//go:build !linux && !darwin && !windows

package notify

func platformSend(message) error { return nil }
