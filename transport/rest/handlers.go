package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

type gamePlayService interface {
	CreateGame(ctx context.Context, playerMark tictactoe.Mark) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	DeleteGame(ctx context.Context, gameID string) error

	MakeTurn(ctx context.Context, gameID string, action tictactoe.Action) (*entity.Game, error)

	Solve(board tictactoe.Board) (tictactoe.Result, error)
}

type solveRequest struct {
	Board tictactoe.Board `json:"board"`
}

type solveResponse struct {
	Mover   tictactoe.Mark    `json:"mover,omitempty"`
	Action  *tictactoe.Action `json:"action,omitempty"`
	Cell    *int              `json:"cell,omitempty"`
	Value   int               `json:"value"`
	Outcome string            `json:"outcome"`
}

// turnRequest addresses the target either by row and col or by flat cell index.
type turnRequest struct {
	Row  int  `json:"row"`
	Col  int  `json:"col"`
	Cell *int `json:"cell,omitempty"`
}

func (that turnRequest) action() tictactoe.Action {
	if that.Cell != nil {
		return tictactoe.ActionFromIndex(*that.Cell)
	}

	return tictactoe.Action{Row: that.Row, Col: that.Col}
}

type createGameRequest struct {
	Mark tictactoe.Mark `json:"mark"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type handlers struct {
	logger   *slog.Logger
	gamePlay gamePlayService
}

func newHandlers(logger *slog.Logger, gamePlay gamePlayService) *handlers {
	return &handlers{
		logger:   logger.With("component", "rest"),
		gamePlay: gamePlay,
	}
}

func (that *handlers) ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		that.logger.Error("failed to write pong", "error", err)
	}
}

func (that *handlers) solve(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	result, err := that.gamePlay.Solve(req.Board)
	if err != nil {
		that.writeError(w, "solve", err)
		return
	}

	resp := solveResponse{
		Value:   result.Value,
		Outcome: tictactoe.Outcome(req.Board).String(),
	}
	if result.Found {
		resp.Mover = tictactoe.Mover(req.Board)
		cell := result.Action.Index()
		resp.Action = &result.Action
		resp.Cell = &cell
	}

	that.writeJSON(w, http.StatusOK, resp)
}

func (that *handlers) createGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	game, err := that.gamePlay.CreateGame(r.Context(), req.Mark)
	if err != nil {
		that.writeError(w, "createGame", err)
		return
	}

	that.writeJSON(w, http.StatusCreated, game)
}

func (that *handlers) getGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.gamePlay.GetGame(r.Context(), r.PathValue("id"))
	if err != nil {
		that.writeError(w, "getGame", err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *handlers) deleteGame(w http.ResponseWriter, r *http.Request) {
	if err := that.gamePlay.DeleteGame(r.Context(), r.PathValue("id")); err != nil {
		that.writeError(w, "deleteGame", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *handlers) makeTurn(w http.ResponseWriter, r *http.Request) {
	var req turnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	game, err := that.gamePlay.MakeTurn(r.Context(), r.PathValue("id"), req.action())
	if err != nil {
		that.writeError(w, "makeTurn", err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *handlers) writeError(w http.ResponseWriter, method string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", method, "error", err)
	}

	that.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrInvalidCell),
		errors.Is(err, apperror.ErrInvalidMark),
		errors.Is(err, apperror.ErrMalformedBoard):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrIllegalMove),
		errors.Is(err, apperror.ErrGameFinished),
		errors.Is(err, apperror.ErrNotYourTurn):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}
