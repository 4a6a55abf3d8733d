package playground

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/rata-lang/rata/ast"
	rataerror "github.com/rata-lang/rata/core/error"
	ratalog "github.com/rata-lang/rata/core/log"
	"github.com/rata-lang/rata/parser"
	ratastringx "github.com/rata-lang/rata/utils/stringx"
)

const (
	// pongWait bounds how long a connection may sit idle before the read
	// loop gives up on it.
	pongWait = 120 * time.Second

	// maxMessageSize caps a single websocket frame, matching the parser's
	// default input limit.
	maxMessageSize = 1 << 20
)

// WebSocket upgrader with permissive settings for local development
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for local development
	},
}

// WebSocketHandler serves the playground protocol: JSON request envelopes
// carrying Rata source, answered with AST documents or token lists.
type WebSocketHandler struct {
	parser *parser.Parser
	logger *ratalog.Logger
}

// NewWebSocketHandler creates a new websocket handler.
func NewWebSocketHandler(p *parser.Parser, logger *ratalog.Logger) *WebSocketHandler {
	if logger == nil {
		logger = ratalog.GetDefault()
	}
	return &WebSocketHandler{
		parser: p,
		logger: logger,
	}
}

// WSMessage is a playground request envelope.
type WSMessage struct {
	Type    string          `json:"type"`              // "parse", "tokens", "ping"
	ID      string          `json:"id,omitempty"`      // client correlation token, echoed back
	Payload json.RawMessage `json:"payload,omitempty"` // request-specific payload
}

// WSSourcePayload carries the source text of parse and tokens requests.
type WSSourcePayload struct {
	Source string `json:"source"`
}

// WSResponse is a playground response envelope.
type WSResponse struct {
	Type    string          `json:"type"` // "result", "pong", "error"
	ID      string          `json:"id,omitempty"`
	OK      bool            `json:"ok"`
	Payload interface{}     `json:"payload,omitempty"`
	Error   *WSErrorPayload `json:"error,omitempty"`
}

// WSParsePayload is the result payload of a parse request.
type WSParsePayload struct {
	AST       json.RawMessage `json:"ast"`
	Canonical string          `json:"canonical"`
}

// WSToken is one entry of a tokens result payload.
type WSToken struct {
	Type   string `json:"type"`
	Value  string `json:"value"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// WSTokensPayload is the result payload of a tokens request.
type WSTokensPayload struct {
	Tokens []WSToken `json:"tokens"`
}

// WSErrorPayload describes a failed request.
type WSErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
}

// ServeHTTP handles the websocket upgrade and serves the connection.
func (h *WebSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.ErrorWithErr("WebSocket upgrade failed", err)
		return
	}
	h.handleConnection(conn)
}

// handleConnection serves a single websocket connection until it closes.
func (h *WebSocketHandler) handleConnection(conn *websocket.Conn) {
	defer conn.Close()

	logger := h.logger.WithField("connection_id", uuid.NewString())
	logger.Info("Playground connection established", ratalog.Fields{
		"remote": conn.RemoteAddr().String(),
	})

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var msg WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.ErrorWithErr("Playground read error", err)
			} else {
				logger.Info("Playground connection closed")
			}
			return
		}
		// Any complete request counts as activity.
		conn.SetReadDeadline(time.Now().Add(pongWait))

		switch msg.Type {
		case "ping":
			h.sendResponse(logger, conn, WSResponse{Type: "pong", ID: msg.ID, OK: true})

		case "parse":
			h.handleParse(logger.WithRequestID(uuid.NewString()), conn, msg)

		case "tokens":
			h.handleTokens(logger.WithRequestID(uuid.NewString()), conn, msg)

		default:
			h.sendError(logger, conn, msg.ID, WSErrorPayload{
				Code:    "unknown_type",
				Message: "Unknown message type: " + msg.Type,
			})
		}
	}
}

// handleParse parses the request source and answers with the AST document
// and the canonical source form.
func (h *WebSocketHandler) handleParse(logger *ratalog.Logger, conn *websocket.Conn, msg WSMessage) {
	var payload WSSourcePayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		h.sendError(logger, conn, msg.ID, WSErrorPayload{
			Code:    "invalid_payload",
			Message: "Invalid parse payload",
		})
		return
	}

	node, err := h.parser.ParseLine(payload.Source)
	if err != nil {
		logger.LogError(rataerror.Wrap(err, "parse request failed").
			WithCode(errorCode(err)).
			WithOperation("playground.parse").
			WithDetail("source", ratastringx.Truncate(payload.Source, 120, "...")))
		h.sendError(logger, conn, msg.ID, errorPayload(err))
		return
	}

	data, err := ast.Marshal(node)
	if err != nil {
		logger.ErrorWithErr("AST encoding failed", err)
		h.sendError(logger, conn, msg.ID, WSErrorPayload{
			Code:    string(rataerror.CodeInternal),
			Message: "Failed to encode syntax tree",
		})
		return
	}

	h.sendResponse(logger, conn, WSResponse{
		Type: "result",
		ID:   msg.ID,
		OK:   true,
		Payload: WSParsePayload{
			AST:       data,
			Canonical: node.String(),
		},
	})
}

// handleTokens tokenizes the request source and answers with the token list.
func (h *WebSocketHandler) handleTokens(logger *ratalog.Logger, conn *websocket.Conn, msg WSMessage) {
	var payload WSSourcePayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		h.sendError(logger, conn, msg.ID, WSErrorPayload{
			Code:    "invalid_payload",
			Message: "Invalid tokens payload",
		})
		return
	}

	tokens, err := parser.TokenizeInput(payload.Source)
	if err != nil {
		logger.LogError(rataerror.Wrap(err, "tokens request failed").
			WithCode(errorCode(err)).
			WithOperation("playground.tokens").
			WithDetail("source", ratastringx.Truncate(payload.Source, 120, "...")))
		h.sendError(logger, conn, msg.ID, errorPayload(err))
		return
	}

	out := make([]WSToken, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, WSToken{
			Type:   tok.Type.String(),
			Value:  tok.Value,
			Line:   tok.Line,
			Column: tok.Column,
		})
	}

	h.sendResponse(logger, conn, WSResponse{
		Type:    "result",
		ID:      msg.ID,
		OK:      true,
		Payload: WSTokensPayload{Tokens: out},
	})
}

// sendResponse sends a response envelope via the websocket.
func (h *WebSocketHandler) sendResponse(logger *ratalog.Logger, conn *websocket.Conn, resp WSResponse) {
	if err := conn.WriteJSON(resp); err != nil {
		logger.ErrorWithErr("Playground send error", err)
	}
}

// sendError sends an error envelope via the websocket.
func (h *WebSocketHandler) sendError(logger *ratalog.Logger, conn *websocket.Conn, id string, payload WSErrorPayload) {
	h.sendResponse(logger, conn, WSResponse{
		Type:  "error",
		ID:    id,
		OK:    false,
		Error: &payload,
	})
}

// errorPayload maps a parser failure to its wire form, including the fault
// position when the error carries one.
func errorPayload(err error) WSErrorPayload {
	payload := WSErrorPayload{
		Code:    string(errorCode(err)),
		Message: err.Error(),
	}

	var lexErr *parser.LexError
	var parseErr *parser.ParseError
	switch {
	case errors.As(err, &lexErr):
		payload.Line, payload.Column = lexErr.Line, lexErr.Column
	case errors.As(err, &parseErr):
		payload.Line, payload.Column = parseErr.Line, parseErr.Column
	}
	return payload
}

// errorCode classifies a parser failure for the response envelope.
func errorCode(err error) rataerror.Code {
	var lexErr *parser.LexError
	var parseErr *parser.ParseError
	switch {
	case parser.IsIncomplete(err):
		return rataerror.CodeIncomplete
	case errors.As(err, &lexErr):
		return rataerror.CodeLexError
	case errors.As(err, &parseErr):
		if strings.Contains(parseErr.Message, "nesting depth") {
			return rataerror.CodeDepthExceeded
		}
		return rataerror.CodeParseError
	case strings.Contains(err.Error(), "exceeds maximum length"):
		return rataerror.CodeInputTooLarge
	default:
		return rataerror.CodeInternal
	}
}
