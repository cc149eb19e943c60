package ai

import (
	"context"
	"strings"
	"time"
)

// Streamer paces an already generated text into word chunks, giving the
// appearance of live generation over a plain byte stream. Chunks are emitted
// strictly left to right; concatenating them reconstructs the text with
// whitespace normalized to single spaces.
type Streamer struct {
	delay time.Duration
}

// NewStreamer creates a streamer with a fixed inter-chunk delay.
func NewStreamer(delay time.Duration) *Streamer {
	return &Streamer{delay: delay}
}

// Pace emits each word of text as "word " on out, sleeping between
// emissions. Returns the context error if the consumer goes away.
func (s *Streamer) Pace(ctx context.Context, text string, out chan<- string) error {
	for _, word := range strings.Fields(text) {
		select {
		case out <- word + " ":
		case <-ctx.Done():
			return ctx.Err()
		}

		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// Chunks returns a finite, single-pass channel of paced word chunks.
// The channel is closed when the text is exhausted or ctx is canceled.
func (s *Streamer) Chunks(ctx context.Context, text string) <-chan string {
	out := make(chan string)
	go func() {
		defer close(out)
		_ = s.Pace(ctx, text, out)
	}()
	return out
}
