package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/web3hub/hub-engine/internal/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ChatSocketMessage is the bidirectional chat frame. The client sends
// {"type":"message","text":...}; the server answers with the transcript
// turn, including any parsed actions.
type ChatSocketMessage struct {
	Type    string              `json:"type"`
	Text    string              `json:"text,omitempty"`
	Message *models.ChatMessage `json:"message,omitempty"`
}

func (s *Server) handleChatWS(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	sess, err := s.sessions.Get(r.Context(), sessionID)
	if err != nil {
		respondSessionError(w, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("failed to upgrade to websocket", "error", err)
		return
	}
	defer conn.Close()

	slog.Info("chat websocket connected", "session_id", sessionID)

	// Replay the transcript so a reconnecting client catches up.
	for i := range sess.Chat {
		if err := s.sendChatMessage(conn, ChatSocketMessage{
			Type:    "history",
			Message: &sess.Chat[i],
		}); err != nil {
			return
		}
	}

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Debug("websocket read error", "error", err)
			}
			break
		}

		var msg ChatSocketMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			slog.Debug("invalid chat frame", "error", err)
			continue
		}

		if msg.Type != "message" || msg.Text == "" {
			continue
		}

		_, reply, err := s.sessions.Chat(r.Context(), sessionID, msg.Text)
		if err != nil {
			s.sendChatError(conn, err.Error())
			continue
		}

		if err := s.sendChatMessage(conn, ChatSocketMessage{
			Type:    "reply",
			Message: &reply,
		}); err != nil {
			break
		}
	}

	slog.Info("chat websocket disconnected", "session_id", sessionID)
}

func (s *Server) sendChatMessage(conn *websocket.Conn, msg ChatSocketMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		slog.Error("failed to marshal chat frame", "error", err)
		return err
	}
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		slog.Debug("failed to send chat frame", "error", err)
		return err
	}
	return nil
}

func (s *Server) sendChatError(conn *websocket.Conn, message string) {
	_ = s.sendChatMessage(conn, ChatSocketMessage{
		Type: "error",
		Text: message,
	})
}
