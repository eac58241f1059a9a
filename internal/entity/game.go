package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerTie = "-"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game is a human-versus-engine session. Status, Winner and Turn are derived
// from Board after every move.
type Game struct {
	ID         string          `json:"id"`
	Board      tictactoe.Board `json:"board"`
	Winner     string          `json:"winner"`
	Status     string          `json:"status"`
	Turn       tictactoe.Mark  `json:"player_turn"`
	PlayerMark tictactoe.Mark  `json:"player_mark"`
	BotMark    tictactoe.Mark  `json:"bot_mark"`
}

func NewGame(id string, playerMark tictactoe.Mark) *Game {
	return &Game{
		ID:         id,
		Board:      tictactoe.InitialState(),
		Turn:       tictactoe.MarkX,
		Status:     StatusOngoing,
		PlayerMark: playerMark,
		BotMark:    playerMark.Opponent(),
	}
}

func (that *Game) UpdateGameState() {
	switch tictactoe.Outcome(that.Board) {
	case tictactoe.XWins, tictactoe.OWins:
		that.Winner = string(tictactoe.Winner(that.Board))
		that.Status = StatusFinished
		that.Turn = tictactoe.Empty
	case tictactoe.Draw:
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = tictactoe.Empty
	default:
		that.Winner = ""
		that.Status = StatusOngoing
		that.Turn = tictactoe.Mover(that.Board)
	}
}

func (that *Game) MakeTurn(mark tictactoe.Mark, action tictactoe.Action) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if !action.InBounds() {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidCell, action)
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	next, err := tictactoe.Apply(that.Board, action)
	if err != nil {
		return fmt.Errorf("failed to apply %s: %w", action, err)
	}

	that.Board = next
	that.UpdateGameState()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsBotTurn() bool {
	return that.IsOngoing() && that.Turn == that.BotMark
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}
