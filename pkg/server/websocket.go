package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	herrors "github.com/vango-dev/htmlconv/internal/errors"
	"github.com/vango-dev/htmlconv/pkg/service"
)

// wsReply is the JSON envelope of a WebSocket reply.
type wsReply struct {
	Result *service.Response `json:"result,omitempty"`
	Error  *errorBody        `json:"error,omitempty"`
}

// handleWebSocket serves GET /ws. Messages are handled in order; the
// connection closes on the first read or write error.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the error response.
		s.logger.Debug("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(s.config.MaxBodyBytes)
	logger := s.logger.With("remote", r.RemoteAddr)
	logger.Debug("websocket connected")

	for {
		msgType, msg, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Debug("websocket read ended", "error", err)
			}
			return
		}

		var reply wsReply
		if msgType != websocket.TextMessage {
			body := toErrorBody(herrors.New("H001").WithDetail("binary messages are not supported"))
			reply.Error = &body
		} else if resp, err := s.converter.Convert(r.Context(), s.messageRequest(msg)); err != nil {
			body := toErrorBody(err)
			reply.Error = &body
		} else {
			reply.Result = resp
		}

		outcome := "ok"
		if reply.Error != nil {
			outcome = "error"
		}
		s.metrics.RecordWebSocketMessage(outcome)

		conn.SetWriteDeadline(time.Now().Add(s.config.WSWriteTimeout))
		if err := conn.WriteJSON(reply); err != nil {
			if !errors.Is(err, websocket.ErrCloseSent) {
				logger.Debug("websocket write failed", "error", err)
			}
			return
		}
	}
}

// messageRequest builds the request for one text message. A JSON object with
// a "markup" field is a full request; anything else is markup.
func (s *Server) messageRequest(msg []byte) service.Request {
	req := s.config.Defaults
	if trimmed := bytes.TrimSpace(msg); len(trimmed) > 0 && trimmed[0] == '{' {
		var probe struct {
			Markup *string `json:"markup"`
		}
		if json.Unmarshal(trimmed, &probe) == nil && probe.Markup != nil {
			if json.Unmarshal(trimmed, &req) == nil {
				return req
			}
			req = s.config.Defaults
		}
	}
	req.Markup = string(msg)
	return req
}
