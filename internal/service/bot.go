package service

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

var ErrNoAvailableMoves = errors.New("no available moves")

type BotService interface {
	MakeTurn(game *entity.Game) (tictactoe.Action, error)
}

type botService struct{}

// NewBotService returns a bot that always plays the minimax move.
func NewBotService() BotService {
	return &botService{}
}

func (that *botService) MakeTurn(game *entity.Game) (tictactoe.Action, error) {
	action, ok := tictactoe.BestAction(game.Board)
	if !ok {
		return tictactoe.Action{}, ErrNoAvailableMoves
	}

	if err := game.MakeTurn(game.BotMark, action); err != nil {
		return tictactoe.Action{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return action, nil
}
