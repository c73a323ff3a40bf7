package services

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"reversi/internal/bot"
	"reversi/internal/models"
)

const sessionTTL = 30 * time.Minute

var (
	ErrSessionNotFound = errors.New("game session not found")
	ErrGameOver        = errors.New("game is already over")
	ErrNotYourTurn     = errors.New("not the human's turn")
	ErrIllegalMove     = errors.New("illegal move")
)

// Session is one human-vs-bot game in progress.
type Session struct {
	ID         string
	Game       *models.Game
	HumanColor models.Cell
	Difficulty bot.Difficulty
	Strategy   bot.Strategy
	LastActive time.Time

	mu sync.Mutex
}

// Lock takes the session's lock. HTTP and websocket handlers may touch the
// same session concurrently, the store's lock only guards the map.
func (s *Session) Lock() { s.mu.Lock() }

func (s *Session) Unlock() { s.mu.Unlock() }

// Step is one half-move of a server reply: a bot move, or a forced pass by
// either color when Move is nil.
type Step struct {
	Color models.Cell
	Move  *models.Coord
}

// Advance plays bot moves and forced passes until it is the human's turn or
// the game is over, returning the steps taken in order.
func (s *Session) Advance() []Step {
	var steps []Step
	game := s.Game

	for !game.Over() {
		moves := game.LegalMoves()

		if game.Turn() == s.HumanColor {
			if len(moves) > 0 {
				break
			}
			game.Pass()
			steps = append(steps, Step{Color: s.HumanColor})
			continue
		}

		if len(moves) == 0 {
			steps = append(steps, Step{Color: game.Turn()})
			game.Pass()
			continue
		}

		move := s.Strategy.Choose(game.Board(), game.Turn(), moves)
		coord := move.Coord
		steps = append(steps, Step{Color: game.Turn(), Move: &coord})
		game.Apply(move)
	}

	return steps
}

// PlayHuman validates and applies a human move given in field notation and
// then lets the bot respond. The validation here is the server's boundary
// check; the game itself trusts its input.
func (s *Session) PlayHuman(field string) ([]Step, error) {
	game := s.Game

	if game.Over() {
		return nil, ErrGameOver
	}
	if game.Turn() != s.HumanColor {
		return nil, ErrNotYourTurn
	}

	coord, err := models.FieldToCoord(field)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrIllegalMove, err)
	}

	captures := game.Board().CaptureSet(coord.Row, coord.Col, s.HumanColor)
	if len(captures) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrIllegalMove, field)
	}

	game.Apply(models.Move{Coord: coord, Captures: captures})

	return s.Advance(), nil
}

// Response renders the session state for API clients, including the steps
// the server played since the client's last action.
func (s *Session) Response(steps []Step) models.GameResponse {
	game := s.Game

	resp := models.GameResponse{
		ID:        s.ID,
		Board:     game.Board().String(),
		Turn:      game.Turn().String(),
		MoveCount: game.MoveCount(),
		Over:      game.Over(),
	}

	if game.Over() {
		resp.Result = game.Result().String()
	} else {
		legal := make([]string, 0)
		for coord := range game.LegalMoves() {
			legal = append(legal, coord.Field())
		}
		sort.Strings(legal)
		resp.LegalMoves = legal
	}

	for _, step := range steps {
		gameStep := models.GameStep{Color: step.Color.String()}
		if step.Move != nil {
			field := step.Move.Field()
			gameStep.Field = &field
		}
		resp.Steps = append(resp.Steps, gameStep)
	}

	return resp
}

// GameStore keeps active sessions in memory. Sessions are deliberately not
// persisted across restarts; only finished results reach Postgres.
type GameStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewGameStore() *GameStore {
	return &GameStore{sessions: make(map[string]*Session)}
}

// Create registers a new session with Black to move on the starting board.
func (s *GameStore) Create(humanColor models.Cell, difficulty bot.Difficulty, strategy bot.Strategy) *Session {
	session := &Session{
		ID:         uuid.New().String(),
		Game:       models.NewGame(models.Black),
		HumanColor: humanColor,
		Difficulty: difficulty,
		Strategy:   strategy,
		LastActive: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.prune()
	s.sessions[session.ID] = session

	return session
}

// Get returns the session with the given ID and refreshes its idle timer.
func (s *GameStore) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	if time.Since(session.LastActive) > sessionTTL {
		delete(s.sessions, id)
		return nil, ErrSessionNotFound
	}

	session.LastActive = time.Now()
	return session, nil
}

// Delete removes a session, typically once its game is over.
func (s *GameStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
}

// prune drops sessions idle beyond the TTL. Callers must hold mu.
func (s *GameStore) prune() {
	for id, session := range s.sessions {
		if time.Since(session.LastActive) > sessionTTL {
			delete(s.sessions, id)
		}
	}
}
