package ai

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	aierrors "github.com/rasalabs/rasa/internal/errors"
)

// Generator produces a complete text for a single prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Engine owns a lazily constructed Generator. Construction is assumed
// expensive (model load) and happens at most once per process; a failed
// construction is not cached, so a later call retries it.
type Engine struct {
	construct func() (Generator, error)
	timeout   time.Duration

	mu  sync.Mutex
	gen atomic.Value // Generator
}

// NewEngine creates an engine around the given constructor. The timeout
// bounds every generation call; zero disables the bound.
func NewEngine(construct func() (Generator, error), timeout time.Duration) *Engine {
	return &Engine{
		construct: construct,
		timeout:   timeout,
	}
}

// Generate performs one blocking generation, constructing the underlying
// generator on first use.
func (e *Engine) Generate(ctx context.Context, prompt string) (string, error) {
	gen, err := e.acquire()
	if err != nil {
		return "", aierrors.EngineInitFailed("engine construction failed", err)
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	text, err := gen.Generate(ctx, prompt)
	if err != nil {
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			return "", aierrors.Timeout("generation timed out")
		case errors.Is(err, context.Canceled):
			return "", aierrors.ContextCanceled(err)
		}
		return "", aierrors.GenerationFailed("generation failed", err)
	}
	return text, nil
}

// acquire returns the generator, constructing it under the lock on first
// call. The atomic load keeps the steady-state path lock-free.
func (e *Engine) acquire() (Generator, error) {
	if gen, ok := e.gen.Load().(Generator); ok {
		return gen, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if gen, ok := e.gen.Load().(Generator); ok {
		return gen, nil
	}

	gen, err := e.construct()
	if err != nil {
		return nil, err
	}
	e.gen.Store(gen)
	return gen, nil
}
