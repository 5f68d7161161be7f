// Package clipboard places finished captures on the system clipboard.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"sync"
	"time"

	"github.com/example/snipshot/internal/output"
)

// ErrUnavailable is returned when no clipboard path accepted the image.
var ErrUnavailable = errors.New("clipboard unavailable")

// DefaultHold is how long a published image stays available after the
// process would otherwise exit.
const DefaultHold = 30 * time.Second

// writeFunc offers PNG data on the clipboard. changed is closed once
// another client takes the clipboard over; release stops serving.
type writeFunc func(data []byte) (changed <-chan struct{}, release func(), err error)

var (
	writeStandardFn  writeFunc = writeStandard
	writeSelectionFn writeFunc = writeSelection
)

// Publisher writes images to the clipboard. On X11 the content lives in
// this process, so Wait keeps it served for Hold after publishing.
type Publisher struct {
	Hold time.Duration

	wg sync.WaitGroup
}

// Publish encodes img as PNG and offers it through the platform clipboard,
// falling back to owning the X11 selection directly.
func (p *Publisher) Publish(ctx context.Context, img image.Image) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := output.EncodeBytes(img, output.PNG)
	if err != nil {
		return err
	}
	changed, release, err := writeStandardFn(data)
	if err == nil {
		p.hold(changed, release)
		return nil
	}
	log.Printf("clipboard: standard write failed, taking selection: %v", err)
	changed, release, serr := writeSelectionFn(data)
	if serr == nil {
		p.hold(changed, release)
		return nil
	}
	return fmt.Errorf("%w: %w", ErrUnavailable, errors.Join(err, serr))
}

func (p *Publisher) hold(changed <-chan struct{}, release func()) {
	hold := p.Hold
	if hold <= 0 {
		hold = DefaultHold
	}
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		t := time.NewTimer(hold)
		defer t.Stop()
		select {
		case <-changed:
		case <-t.C:
		}
		if release != nil {
			release()
		}
	}()
}

// Wait blocks until every published image has been taken over or its hold
// time has passed.
func (p *Publisher) Wait() {
	p.wg.Wait()
}
