package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/harshit2786/pdf-chat-be/internal/llm"
	"github.com/harshit2786/pdf-chat-be/internal/vector"
	"github.com/harshit2786/pdf-chat-be/pkg/logger"
)

// QueryRequest is the single client-to-server frame: one question scoped to
// one folder, tagged with a client-chosen correlation id.
type QueryRequest struct {
	Query     string `json:"query"`
	FolderID  string `json:"folderId"`
	MessageID string `json:"message_id"`
}

// Frame is the server-to-client message. Type is "token", "end" or "error".
type Frame struct {
	Type      string `json:"type"`
	Data      string `json:"data"`
	MessageID string `json:"message_id,omitempty"`
}

// ContextRetriever fetches folder-scoped context for a query.
type ContextRetriever interface {
	Retrieve(ctx context.Context, folderID, query string) ([]vector.Chunk, error)
}

// Handler serves the streaming query endpoint. Each connection handles one
// query to completion and is then closed; errors are always terminal.
type Handler struct {
	retriever ContextRetriever
	generator llm.Generator
	upgrader  websocket.Upgrader
	log       *logger.Logger
}

// NewHandler creates a new chat Handler.
func NewHandler(retriever ContextRetriever, generator llm.Generator, log *logger.Logger) *Handler {
	return &Handler{
		retriever: retriever,
		generator: generator,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // In production, implement a proper origin check.
			},
		},
		log: log,
	}
}

// Serve upgrades the request and runs the per-connection loop.
func (h *Handler) Serve(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.WithError(err).Error("Failed to upgrade WebSocket connection")
		return
	}
	defer conn.Close()
	h.log.Info("WebSocket connection established")

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var req QueryRequest
		if err := json.Unmarshal(msg, &req); err != nil || req.Query == "" {
			h.writeFrame(conn, Frame{Type: "error", Data: "Not a valid query"})
			return
		}

		h.handleQuery(c.Request.Context(), conn, req)
		return
	}
}

// handleQuery runs retrieval and generation for one query, forwarding tokens
// in generation order. The generation context is cancelled as soon as the
// client stops accepting frames.
func (h *Handler) handleQuery(parent context.Context, conn *websocket.Conn, req QueryRequest) {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	respID := nextMessageID(req.MessageID)

	chunks, err := h.retriever.Retrieve(ctx, req.FolderID, req.Query)
	if err != nil {
		h.log.WithError(err).Error("Retrieval failed")
		h.writeFrame(conn, Frame{Type: "error", Data: "An error occurred while processing your request"})
		return
	}

	events, err := h.generator.StreamCompletion(ctx, BuildPrompt(chunks, req.Query))
	if err != nil {
		h.log.WithError(err).Error("Failed to start generation stream")
		h.writeFrame(conn, Frame{Type: "error", Data: "An error occurred while processing your request"})
		return
	}

	for ev := range events {
		if ev.Err != nil {
			h.log.WithError(ev.Err).Error("Generation stream failed")
			h.writeFrame(conn, Frame{Type: "error", Data: ev.Err.Error(), MessageID: respID})
			return
		}
		if err := h.writeFrame(conn, Frame{Type: "token", Data: ev.Token, MessageID: respID}); err != nil {
			// Client is gone; stop the producer.
			return
		}
	}

	h.writeFrame(conn, Frame{Type: "end", Data: "", MessageID: respID})
}

func (h *Handler) writeFrame(conn *websocket.Conn, frame Frame) error {
	payload, err := json.Marshal(frame)
	if err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, payload)
}

// nextMessageID derives the response correlation id: the client id plus one.
// Non-numeric ids have no successor and come back as "NaN".
func nextMessageID(id string) string {
	n, err := strconv.Atoi(id)
	if err != nil {
		return "NaN"
	}
	return strconv.Itoa(n + 1)
}
