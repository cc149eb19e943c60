package v1

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	aierrors "github.com/rasalabs/rasa/internal/errors"
	"github.com/rasalabs/rasa/server/internal/observability"
	"github.com/rasalabs/rasa/store"
)

// Message is the transport shape of one conversation entry.
type Message struct {
	ID      *int   `json:"id,omitempty"`
	Role    string `json:"role"`
	Content string `json:"content"`
	Lang    string `json:"lang"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

type SaveMessageRequest struct {
	UserID  string  `json:"userId"`
	Message Message `json:"message"`
}

type CompleteMessageRequest struct {
	UserID    string `json:"userId"`
	MessageID int    `json:"messageId"`
	Text      string `json:"text"`
	Lang      string `json:"lang"`
}

func toMessage(m *store.ChatMessage) Message {
	return Message{
		ID:      m.ID,
		Role:    string(m.Role),
		Content: m.Content,
		Lang:    m.Lang,
	}
}

// Chat handles the synchronous generation path.
// POST /chat
func (s *APIV1Service) Chat(c echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, aierrors.InvalidArgument("invalid request body"))
	}
	if strings.TrimSpace(req.Message) == "" {
		return errorResponse(c, aierrors.InvalidArgument("message is required"))
	}

	logger := observability.NewRequestContext(slog.Default(), "chat", c.RealIP())
	logger.Info("chat started", slog.Int(observability.LogFieldMessageLen, len(req.Message)))

	text, err := s.ChatService.Chat(c.Request().Context(), req.Message)
	if err != nil {
		logger.Error("chat failed", err, slog.String(observability.LogFieldErrorCode, string(aierrors.GetCodeFromError(err, aierrors.ErrCodeServiceUnavailable))))
		return errorResponse(c, err)
	}

	logger.Info("chat completed", slog.Int64(observability.LogFieldDuration, logger.DurationMs()))
	return c.JSON(http.StatusOK, ChatResponse{Response: text})
}

// StreamChat generates the full reply, then delivers it as paced word
// chunks over a plain text body. Nothing is persisted here; the client
// reconciles the assembled text through CompleteMessage.
// POST /chat/stream
func (s *APIV1Service) StreamChat(c echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, aierrors.InvalidArgument("invalid request body"))
	}
	if strings.TrimSpace(req.Message) == "" {
		return errorResponse(c, aierrors.InvalidArgument("message is required"))
	}

	logger := observability.NewRequestContext(slog.Default(), "chat_stream", c.RealIP())
	logger.Info("chat stream started", slog.Int(observability.LogFieldMessageLen, len(req.Message)))

	ctx := c.Request().Context()
	chunks, errs := s.ChatService.Stream(ctx, req.Message)

	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, echo.MIMETextPlainCharsetUTF8)

	wrote := 0
	for chunk := range chunks {
		if _, err := io.WriteString(resp, chunk); err != nil {
			// Peer is gone; let the producer observe the cancellation.
			for range chunks {
			}
			<-errs
			logger.Info("chat stream disconnected", slog.Int(observability.LogFieldChunks, wrote))
			return nil
		}
		resp.Flush()
		wrote++
	}

	if err := <-errs; err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("chat stream canceled", slog.Int(observability.LogFieldChunks, wrote))
			return nil
		}
		if wrote == 0 {
			logger.Error("chat stream failed", err)
			return errorResponse(c, err)
		}
		logger.Warn("chat stream truncated", slog.String("error", err.Error()), slog.Int(observability.LogFieldChunks, wrote))
		return nil
	}

	logger.Info("chat stream completed",
		slog.Int(observability.LogFieldChunks, wrote),
		slog.Int64(observability.LogFieldDuration, logger.DurationMs()),
	)
	return nil
}

// GetChatHistory returns the full conversation in append order. Unknown
// users get an empty array, not an error.
// GET /chat/history/:userId
func (s *APIV1Service) GetChatHistory(c echo.Context) error {
	userID := c.Param("userId")
	if userID == "" {
		return errorResponse(c, aierrors.InvalidArgument("userId is required"))
	}

	history := s.Store.ListChatMessages(userID)
	messages := make([]Message, 0, len(history))
	for _, m := range history {
		messages = append(messages, toMessage(m))
	}
	return c.JSON(http.StatusOK, messages)
}

// SaveMessage persists a user-authored turn.
// POST /chat/message
func (s *APIV1Service) SaveMessage(c echo.Context) error {
	var req SaveMessageRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, aierrors.InvalidArgument("invalid request body"))
	}
	if req.UserID == "" {
		return errorResponse(c, aierrors.InvalidArgument("userId is required"))
	}
	if req.Message.Content == "" {
		return errorResponse(c, aierrors.InvalidArgument("message content is required"))
	}

	role := store.ChatRole(req.Message.Role)
	if req.Message.Role == "" {
		role = store.ChatRoleUser
	}
	if !role.IsValid() {
		return errorResponse(c, aierrors.InvalidArgument("unknown message role"))
	}

	s.Store.AppendChatMessage(req.UserID, &store.ChatMessage{
		ID:      req.Message.ID,
		Role:    role,
		Content: req.Message.Content,
		Lang:    req.Message.Lang,
	})
	return c.JSON(http.StatusOK, map[string]string{"status": "saved"})
}

// CompleteMessage persists the assistant turn the client assembled from the
// streamed chunks. The text is stored verbatim; the server has no record of
// what was actually streamed to compare against.
// POST /chat/message/complete
func (s *APIV1Service) CompleteMessage(c echo.Context) error {
	var req CompleteMessageRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, aierrors.InvalidArgument("invalid request body"))
	}
	if req.UserID == "" {
		return errorResponse(c, aierrors.InvalidArgument("userId is required"))
	}
	if req.Text == "" {
		return errorResponse(c, aierrors.InvalidArgument("text is required"))
	}

	id := req.MessageID
	s.Store.AppendChatMessage(req.UserID, &store.ChatMessage{
		ID:      &id,
		Role:    store.ChatRoleAssistant,
		Content: req.Text,
		Lang:    req.Lang,
	})
	return c.JSON(http.StatusOK, map[string]string{"status": "completed"})
}
