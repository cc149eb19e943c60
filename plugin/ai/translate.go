package ai

import (
	"context"
	"fmt"

	aierrors "github.com/rasalabs/rasa/internal/errors"
)

// TranslationService translates free text between supported languages.
type TranslationService interface {
	Translate(ctx context.Context, text, target string) (string, error)
}

// languageNames maps supported language tags to prompt-facing names.
var languageNames = map[string]string{
	"en": "English",
	"hi": "Hindi",
}

type translationService struct {
	engine *Engine
}

// NewTranslationService creates a TranslationService sharing the lazy engine
// pattern with chat: the translation model is loaded on first call.
func NewTranslationService(cfg *TranslationConfig) TranslationService {
	construct := func() (Generator, error) {
		return newCompletionGenerator(cfg.BaseURL, cfg.APIKey, cfg.Model, 0, 0)
	}
	return &translationService{
		engine: NewEngine(construct, cfg.Timeout),
	}
}

func (s *translationService) Translate(ctx context.Context, text, target string) (string, error) {
	name, ok := languageNames[target]
	if !ok {
		return "", aierrors.InvalidArgument(fmt.Sprintf("unsupported target language: %s", target))
	}

	prompt := fmt.Sprintf("Translate the following text to %s. Reply with the translation only.\n\n%s", name, text)
	return s.engine.Generate(ctx, prompt)
}
