package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/disintegration/imaging"
	"github.com/sashabaranov/go-openai"
	"golang.org/x/sync/semaphore"

	aierrors "github.com/rasalabs/rasa/internal/errors"
)

const captionPrompt = "Describe this image in one short sentence."

// VisionService produces a caption for an uploaded image.
type VisionService interface {
	Analyze(ctx context.Context, image []byte, mimeType string) (string, error)
}

type visionService struct {
	cfg *VisionConfig
	sem *semaphore.Weighted

	mu     sync.Mutex
	client atomic.Value // *openai.Client
}

// NewVisionService creates a VisionService. The captioning client is
// constructed on first call; concurrent captioning is bounded to keep
// memory use predictable with large uploads.
func NewVisionService(cfg *VisionConfig) VisionService {
	workers := cfg.MaxWorkers
	if workers <= 0 {
		workers = 3
	}
	return &visionService{
		cfg: cfg,
		sem: semaphore.NewWeighted(workers),
	}
}

func (s *visionService) Analyze(ctx context.Context, image []byte, mimeType string) (string, error) {
	if len(image) == 0 {
		return "", aierrors.InvalidArgument("image is required")
	}

	image, mimeType, err := s.normalizeImage(image, mimeType)
	if err != nil {
		return "", err
	}

	if err := s.sem.Acquire(ctx, 1); err != nil {
		return "", aierrors.ContextCanceled(err)
	}
	defer s.sem.Release(1)

	client, err := s.acquire()
	if err != nil {
		return "", aierrors.EngineInitFailed("vision engine construction failed", err)
	}

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	dataURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(image))
	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     s.cfg.Model,
		MaxTokens: 80,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: captionPrompt},
					{
						Type:     openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{URL: dataURL},
					},
				},
			},
		},
	})
	if err != nil {
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			return "", aierrors.Timeout("captioning timed out")
		case errors.Is(err, context.Canceled):
			return "", aierrors.ContextCanceled(err)
		}
		return "", aierrors.GenerationFailed("captioning failed", err)
	}
	if len(resp.Choices) == 0 {
		return "", aierrors.GenerationFailed("empty caption response", nil)
	}
	return resp.Choices[0].Message.Content, nil
}

// normalizeImage validates the upload and downscales oversized images so a
// huge photo does not get shipped to the model verbatim.
func (s *visionService) normalizeImage(data []byte, mimeType string) ([]byte, string, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", aierrors.InvalidArgument("unsupported or corrupt image")
	}

	maxDim := s.cfg.MaxImageDim
	if maxDim <= 0 {
		maxDim = 1024
	}
	bounds := img.Bounds()
	if bounds.Dx() <= maxDim && bounds.Dy() <= maxDim {
		return data, mimeType, nil
	}

	resized := imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, imaging.JPEG); err != nil {
		return nil, "", aierrors.GenerationFailed("failed to re-encode image", err)
	}
	return buf.Bytes(), "image/jpeg", nil
}

func (s *visionService) acquire() (*openai.Client, error) {
	if client, ok := s.client.Load().(*openai.Client); ok {
		return client, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if client, ok := s.client.Load().(*openai.Client); ok {
		return client, nil
	}

	if s.cfg.Model == "" {
		return nil, fmt.Errorf("vision model is required")
	}
	clientConfig := openai.DefaultConfig(s.cfg.APIKey)
	if s.cfg.BaseURL != "" {
		clientConfig.BaseURL = s.cfg.BaseURL
	}
	client := openai.NewClientWithConfig(clientConfig)
	s.client.Store(client)
	return client, nil
}
