package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/gofiber/contrib/websocket"

	"reversi/internal/bot"
	"reversi/internal/models"
	"reversi/internal/repository"
	"reversi/internal/services"
)

const resultSaveTimeout = 2 * time.Second

type Handler struct {
	services *services.Services
	ws       *websocket.Conn
}

// NewHandler creates a new Handler.
func NewHandler(ws *websocket.Conn, services *services.Services) *Handler {
	return &Handler{services: services, ws: ws}
}

func (h *Handler) readMessage() (*Incoming, error) {
	var req Incoming

	msgType, msg, err := h.ws.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("ws read error: %w", err)
	}

	slog.Debug("read ws message", "msgType", msgType, "msg", msg)

	if msgType != websocket.TextMessage {
		return nil, fmt.Errorf("unexpected message type: %d", msgType)
	}

	if err = json.Unmarshal(msg, &req); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return &req, nil
}

func (h *Handler) writeMessage(outgoing *Outgoing) error {
	msg, err := json.Marshal(outgoing)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	slog.Debug("write ws message", "msg", string(msg))

	if err = h.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
		return fmt.Errorf("write error: %w", err)
	}

	return nil
}

func (h *Handler) handleMessage(req *Incoming) (*Outgoing, error) {
	if req.Event == "" {
		return nil, errors.New("event field is either empty or missing")
	}

	switch req.Event {
	case "create_game":
		return h.handleCreateGame(req)
	case "move":
		return h.handleMove(req)
	default:
		return nil, fmt.Errorf("unknown event: %s", req.Event)
	}
}

// Handle handles the websocket connection.
func (h *Handler) Handle() error {
	for {
		req, err := h.readMessage()
		if err != nil {
			return fmt.Errorf("ws read error: %w", err)
		}

		respData, err := h.handleMessage(req)
		if err != nil {
			return fmt.Errorf("ws handle error: %w", err)
		}

		if err = h.writeMessage(respData); err != nil {
			return fmt.Errorf("ws write error: %w", err)
		}
	}
}

func (h *Handler) handleCreateGame(req *Incoming) (*Outgoing, error) {
	var reqData CreateGameData
	if err := json.Unmarshal(req.Data, &reqData); err != nil {
		return nil, fmt.Errorf("ws create game unmarshal error: %w", err)
	}

	difficulty, err := bot.ParseDifficulty(reqData.Difficulty)
	if err != nil {
		return nil, err
	}

	humanColor := models.Black
	if reqData.HumanColor != "" {
		humanColor, err = models.ParseColor(reqData.HumanColor)
		if err != nil {
			return nil, err
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	session := h.services.Games.Create(humanColor, difficulty, bot.NewStrategy(difficulty, rng))

	session.Lock()
	defer session.Unlock()

	steps := session.Advance()

	return &Outgoing{ID: req.ID, Data: session.Response(steps)}, nil
}

func (h *Handler) handleMove(req *Incoming) (*Outgoing, error) {
	var reqData MoveData
	if err := json.Unmarshal(req.Data, &reqData); err != nil {
		return nil, fmt.Errorf("ws move unmarshal error: %w", err)
	}

	session, err := h.services.Games.Get(reqData.GameID)
	if err != nil {
		return nil, err
	}

	session.Lock()
	defer session.Unlock()

	steps, err := session.PlayHuman(reqData.Field)
	if err != nil {
		return nil, err
	}

	if session.Game.Over() {
		ctx, cancel := context.WithTimeout(context.Background(), resultSaveTimeout)
		defer cancel()

		repo := repository.NewResultRepositoryFromServices(h.services)
		if err := repo.SaveSession(ctx, session); err != nil {
			slog.Error("Failed to store game result", "game_id", session.ID, "error", err)
		}
		h.services.Games.Delete(session.ID)
	}

	return &Outgoing{ID: req.ID, Data: session.Response(steps)}, nil
}
