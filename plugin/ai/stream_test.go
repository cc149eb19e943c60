package ai

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(ch <-chan string) []string {
	var chunks []string
	for chunk := range ch {
		chunks = append(chunks, chunk)
	}
	return chunks
}

func TestStreamerReconstruction(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"simple sentence", "Vata governs movement in the body", "Vata governs movement in the body"},
		{"extra whitespace normalized", "warm  water\n\tbalances   Vata", "warm water balances Vata"},
		{"single word", "Agni", "Agni"},
		{"empty text", "", ""},
		{"only whitespace", "  \n\t ", ""},
	}

	streamer := NewStreamer(0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := collect(streamer.Chunks(context.Background(), tt.text))

			joined := strings.TrimSuffix(strings.Join(chunks, ""), " ")
			assert.Equal(t, tt.want, joined)

			for _, chunk := range chunks {
				assert.True(t, strings.HasSuffix(chunk, " "), "every chunk carries a trailing space")
			}
		})
	}
}

func TestStreamerOrder(t *testing.T) {
	streamer := NewStreamer(0)
	chunks := collect(streamer.Chunks(context.Background(), "one two three four"))
	assert.Equal(t, []string{"one ", "two ", "three ", "four "}, chunks)
}

func TestStreamerCancellationStopsEmission(t *testing.T) {
	streamer := NewStreamer(5 * time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	ch := streamer.Chunks(ctx, strings.Repeat("word ", 100))

	// Consume a couple of chunks, then walk away.
	<-ch
	<-ch
	cancel()

	var rest int
	for range ch {
		rest++
	}
	assert.Less(t, rest, 100, "emission must stop after cancellation")
}

func TestStreamerPacing(t *testing.T) {
	const delay = 15 * time.Millisecond
	streamer := NewStreamer(delay)

	start := time.Now()
	chunks := collect(streamer.Chunks(context.Background(), "a b c d"))
	elapsed := time.Since(start)

	require.Len(t, chunks, 4)
	assert.GreaterOrEqual(t, elapsed, 4*delay, "delay bounds the stream throughput")
}

// Stream and Chat must agree: the concatenated chunks equal the full text the
// engine returns for the same prompt via the synchronous path.
func TestChatServiceStreamMatchesChat(t *testing.T) {
	svc := &chatService{
		engine: NewEngine(func() (Generator, error) {
			return echoGenerator("Vata is the dosha of movement, "), nil
		}, 0),
		streamer: NewStreamer(0),
	}

	full, err := svc.Chat(context.Background(), "tell me about Vata")
	require.NoError(t, err)

	chunks, errs := svc.Stream(context.Background(), "tell me about Vata")
	var b strings.Builder
	for chunk := range chunks {
		b.WriteString(chunk)
	}
	require.NoError(t, <-errs)

	assert.Equal(t, strings.Join(strings.Fields(full), " "), strings.TrimSuffix(b.String(), " "))
}

func TestChatServiceStreamGenerationFailure(t *testing.T) {
	svc := &chatService{
		engine: NewEngine(func() (Generator, error) {
			return &stubGenerator{generate: func(context.Context, string) (string, error) {
				return "", context.DeadlineExceeded
			}}, nil
		}, 0),
		streamer: NewStreamer(0),
	}

	chunks, errs := svc.Stream(context.Background(), "hi")
	assert.Empty(t, collect(chunks), "no chunks before the failure")
	require.Error(t, <-errs)
}
