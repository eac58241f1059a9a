package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

type GamePlayService interface {
	CreateGame(ctx context.Context, playerMark tictactoe.Mark) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	DeleteGame(ctx context.Context, gameID string) error

	MakeTurn(ctx context.Context, gameID string, action tictactoe.Action) (*entity.Game, error)

	Solve(board tictactoe.Board) (tictactoe.Result, error)
}

type gamePlayService struct {
	logger *slog.Logger

	gameService GameService
	botService  BotService

	validateBoards bool
}

// NewGamePlayService wires a game store and the engine. When validateBoards
// is set, Solve rejects boards that cannot arise from legal play.
func NewGamePlayService(logger *slog.Logger, gameService GameService, botService BotService, validateBoards bool) GamePlayService {
	return &gamePlayService{
		logger:         logger,
		gameService:    gameService,
		botService:     botService,
		validateBoards: validateBoards,
	}
}

func (that *gamePlayService) CreateGame(ctx context.Context, playerMark tictactoe.Mark) (*entity.Game, error) {
	if playerMark != tictactoe.MarkX && playerMark != tictactoe.MarkO {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, playerMark)
	}

	game, err := that.gameService.CreateGame(ctx, playerMark)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	if game.IsBotTurn() {
		if err = that.botTurn(ctx, game); err != nil {
			return nil, err
		}
	}

	return game, nil
}

func (that *gamePlayService) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

func (that *gamePlayService) DeleteGame(ctx context.Context, gameID string) error {
	if err := that.gameService.DeleteGame(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game by id: %w", err)
	}

	return nil
}

func (that *gamePlayService) MakeTurn(ctx context.Context, gameID string, action tictactoe.Action) (*entity.Game, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if err = game.ConfirmOngoingState(); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if err = game.MakeTurn(game.PlayerMark, action); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsBotTurn() {
		if err = that.botTurn(ctx, game); err != nil {
			return game, err
		}

		return game, nil
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

// botTurn plays the engine's reply and persists the game.
func (that *gamePlayService) botTurn(ctx context.Context, game *entity.Game) error {
	log := that.logger.With("method", "botTurn", "gameID", game.ID)

	action, err := that.botService.MakeTurn(game)
	if err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	log.Debug("bot played", "mark", game.BotMark, "cell", action.Index(), "status", game.Status)

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

func (that *gamePlayService) Solve(board tictactoe.Board) (tictactoe.Result, error) {
	if that.validateBoards {
		if err := tictactoe.Validate(board); err != nil {
			return tictactoe.Result{}, fmt.Errorf("failed to solve board: %w", err)
		}
	}

	return tictactoe.Search(board), nil
}
