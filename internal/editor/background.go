package editor

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sync"

	_ "golang.org/x/image/webp"
)

// BackgroundLoader produces the map image drawn behind the sketch.
type BackgroundLoader func() (image.Image, error)

// FileBackground loads and decodes the image at path.
func FileBackground(path string) BackgroundLoader {
	return func() (image.Image, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open background: %w", err)
		}
		defer f.Close()

		img, _, err := image.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("decode background %s: %w", path, err)
		}
		return img, nil
	}
}

type backgroundState int

const (
	backgroundNone backgroundState = iota
	backgroundLoading
	backgroundReady
	backgroundFailed
)

// background holds one session's map image. It is written by the loader
// goroutine and read by renders, hence the lock.
type background struct {
	mu    sync.Mutex
	state backgroundState
	img   image.Image
	done  chan struct{}
}

func (b *background) begin() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state != backgroundNone {
		return false
	}
	b.state = backgroundLoading
	b.done = make(chan struct{})
	return true
}

func (b *background) finish(img image.Image, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.done != nil {
		close(b.done)
		b.done = nil
	}
	if b.state != backgroundLoading {
		return
	}
	if err != nil {
		b.state = backgroundFailed
		return
	}
	b.state, b.img = backgroundReady, img
}

// wait returns a channel closed once the running load finishes, or nil when
// no load is running.
func (b *background) wait() <-chan struct{} {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.done
}

func (b *background) image() image.Image {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.img
}

func (b *background) pending() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state == backgroundLoading
}

// reset forgets the image so a later load starts over. A load still
// running finishes into the void.
func (b *background) reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state, b.img = backgroundNone, nil
}
