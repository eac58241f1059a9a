package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
	mockedService "github.com/rocketscienceinc/tictactoe-minimax/mocks/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errRedisDown = errors.New("redis down")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newGamePlay(t *testing.T, validate bool) (GamePlayService, *mockedService.MockgameRepo) {
	t.Helper()

	repo := mockedService.NewMockgameRepo(t)
	gamePlay := NewGamePlayService(discardLogger(), NewGameService(repo), NewBotService(), validate)

	return gamePlay, repo
}

func TestGamePlayService_CreateGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Player X moves first", func(t *testing.T) {
		// Given: a repository accepting a single write
		gamePlay, repo := newGamePlay(t, true)
		repo.EXPECT().CreateOrUpdate(ctx, mock.AnythingOfType("*entity.Game")).Return(nil).Once()

		// When: creating a game as X
		game, err := gamePlay.CreateGame(ctx, tictactoe.MarkX)

		// Then: the board is empty and it is the player's turn
		require.NoError(t, err)
		assert.NotEmpty(t, game.ID)
		assert.Equal(t, tictactoe.InitialState(), game.Board)
		assert.Equal(t, tictactoe.MarkX, game.Turn)
		assert.Equal(t, tictactoe.MarkO, game.BotMark)
	})

	t.Run("Bot opens when the player picks O", func(t *testing.T) {
		// Given: a repository accepting the create and the bot update
		gamePlay, repo := newGamePlay(t, true)
		repo.EXPECT().CreateOrUpdate(ctx, mock.AnythingOfType("*entity.Game")).Return(nil).Twice()

		// When: creating a game as O
		game, err := gamePlay.CreateGame(ctx, tictactoe.MarkO)

		// Then: the bot has already played X and it is O's turn
		require.NoError(t, err)
		assert.Equal(t, tictactoe.MarkX, game.Board[0][0])
		assert.Equal(t, tictactoe.MarkO, game.Turn)
	})

	t.Run("Error on unknown mark", func(t *testing.T) {
		gamePlay, _ := newGamePlay(t, true)

		game, err := gamePlay.CreateGame(ctx, tictactoe.Mark("Z"))

		require.ErrorIs(t, err, apperror.ErrInvalidMark)
		assert.Nil(t, game)
	})

	t.Run("Error when storage fails", func(t *testing.T) {
		gamePlay, repo := newGamePlay(t, true)
		repo.EXPECT().CreateOrUpdate(ctx, mock.AnythingOfType("*entity.Game")).Return(errRedisDown).Once()

		game, err := gamePlay.CreateGame(ctx, tictactoe.MarkX)

		require.ErrorIs(t, err, errRedisDown)
		assert.Nil(t, game)
	})
}

func TestGamePlayService_MakeTurn(t *testing.T) {
	ctx := context.Background()

	t.Run("Bot replies to the player's move", func(t *testing.T) {
		// Given: a stored fresh game where the player is X
		gamePlay, repo := newGamePlay(t, true)
		repo.EXPECT().GetByID(ctx, "g1").Return(entity.NewGame("g1", tictactoe.MarkX), nil).Once()
		repo.EXPECT().CreateOrUpdate(ctx, mock.AnythingOfType("*entity.Game")).Return(nil).Once()

		// When: the player takes the center
		game, err := gamePlay.MakeTurn(ctx, "g1", tictactoe.Action{Row: 1, Col: 1})

		// Then: the bot answered in the corner and it is X's turn again
		require.NoError(t, err)
		assert.Equal(t, tictactoe.MarkX, game.Board[1][1])
		assert.Equal(t, tictactoe.MarkO, game.Board[0][0])
		assert.Equal(t, tictactoe.MarkX, game.Turn)
		assert.True(t, game.IsOngoing())
	})

	t.Run("Winning move finishes the game without a bot reply", func(t *testing.T) {
		// Given: the player X can complete the top row
		stored := &entity.Game{
			ID: "g2",
			Board: tictactoe.Board{
				{tictactoe.MarkX, tictactoe.MarkX, tictactoe.Empty},
				{tictactoe.MarkO, tictactoe.MarkO, tictactoe.Empty},
				{tictactoe.Empty, tictactoe.Empty, tictactoe.Empty},
			},
			Status:     entity.StatusOngoing,
			Turn:       tictactoe.MarkX,
			PlayerMark: tictactoe.MarkX,
			BotMark:    tictactoe.MarkO,
		}
		gamePlay, repo := newGamePlay(t, true)
		repo.EXPECT().GetByID(ctx, "g2").Return(stored, nil).Once()
		repo.EXPECT().CreateOrUpdate(ctx, mock.AnythingOfType("*entity.Game")).Return(nil).Once()

		// When: the player completes the row
		game, err := gamePlay.MakeTurn(ctx, "g2", tictactoe.Action{Row: 0, Col: 2})

		// Then: the game is won by X and the bot did not move
		require.NoError(t, err)
		assert.True(t, game.IsFinished())
		assert.Equal(t, "X", game.Winner)
		assert.Equal(t, tictactoe.Empty, game.Board[1][2])
	})

	t.Run("Error on occupied cell", func(t *testing.T) {
		// Given: a game with X in the center
		stored := entity.NewGame("g3", tictactoe.MarkO)
		require.NoError(t, stored.MakeTurn(tictactoe.MarkX, tictactoe.Action{Row: 1, Col: 1}))

		gamePlay, repo := newGamePlay(t, true)
		repo.EXPECT().GetByID(ctx, "g3").Return(stored, nil).Once()

		// When: the player targets the center
		_, err := gamePlay.MakeTurn(ctx, "g3", tictactoe.Action{Row: 1, Col: 1})

		// Then: ErrIllegalMove is returned and nothing is saved
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
	})

	t.Run("Error on finished game", func(t *testing.T) {
		stored := &entity.Game{ID: "g4", Status: entity.StatusFinished, PlayerMark: tictactoe.MarkX}

		gamePlay, repo := newGamePlay(t, true)
		repo.EXPECT().GetByID(ctx, "g4").Return(stored, nil).Once()

		_, err := gamePlay.MakeTurn(ctx, "g4", tictactoe.Action{Row: 0, Col: 0})

		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Game is returned when saving the bot reply fails", func(t *testing.T) {
		// Given: a stored fresh game and a repository that rejects the write
		gamePlay, repo := newGamePlay(t, true)
		repo.EXPECT().GetByID(ctx, "g7").Return(entity.NewGame("g7", tictactoe.MarkX), nil).Once()
		repo.EXPECT().CreateOrUpdate(ctx, mock.AnythingOfType("*entity.Game")).Return(errRedisDown).Once()

		// When: the player takes the center
		game, err := gamePlay.MakeTurn(ctx, "g7", tictactoe.Action{Row: 1, Col: 1})

		// Then: the error is reported and the game still carries both moves
		require.ErrorIs(t, err, errRedisDown)
		require.NotNil(t, game)
		assert.Equal(t, tictactoe.MarkX, game.Board[1][1])
		assert.Equal(t, tictactoe.MarkO, game.Board[0][0])
	})

	t.Run("Error when game is missing", func(t *testing.T) {
		gamePlay, repo := newGamePlay(t, true)
		repo.EXPECT().GetByID(ctx, "nope").Return(nil, apperror.ErrGameNotFound).Once()

		game, err := gamePlay.MakeTurn(ctx, "nope", tictactoe.Action{Row: 0, Col: 0})

		require.ErrorIs(t, err, apperror.ErrGameNotFound)
		assert.Nil(t, game)
	})
}

func TestGamePlayService_GetAndDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("GetGame returns the stored game", func(t *testing.T) {
		stored := entity.NewGame("g5", tictactoe.MarkX)

		gamePlay, repo := newGamePlay(t, true)
		repo.EXPECT().GetByID(ctx, "g5").Return(stored, nil).Once()

		game, err := gamePlay.GetGame(ctx, "g5")

		require.NoError(t, err)
		assert.Equal(t, stored, game)
	})

	t.Run("DeleteGame wraps storage errors", func(t *testing.T) {
		gamePlay, repo := newGamePlay(t, true)
		repo.EXPECT().DeleteByID(ctx, "g6").Return(apperror.ErrGameNotFound).Once()

		err := gamePlay.DeleteGame(ctx, "g6")

		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})
}

func TestGamePlayService_Solve(t *testing.T) {
	malformed := tictactoe.Board{
		{tictactoe.MarkO, tictactoe.MarkO, tictactoe.Empty},
	}

	t.Run("Rejects malformed boards when validation is on", func(t *testing.T) {
		gamePlay, _ := newGamePlay(t, true)

		_, err := gamePlay.Solve(malformed)

		require.ErrorIs(t, err, apperror.ErrMalformedBoard)
	})

	t.Run("Searches malformed boards when validation is off", func(t *testing.T) {
		gamePlay, _ := newGamePlay(t, false)

		result, err := gamePlay.Solve(malformed)

		require.NoError(t, err)
		assert.True(t, result.Found)
	})

	t.Run("Finds the winning move", func(t *testing.T) {
		gamePlay, _ := newGamePlay(t, true)
		board := tictactoe.Board{
			{tictactoe.MarkX, tictactoe.MarkX, tictactoe.Empty},
			{tictactoe.MarkO, tictactoe.MarkO, tictactoe.Empty},
			{tictactoe.Empty, tictactoe.Empty, tictactoe.Empty},
		}

		result, err := gamePlay.Solve(board)

		require.NoError(t, err)
		assert.Equal(t, tictactoe.Action{Row: 0, Col: 2}, result.Action)
		assert.Equal(t, 1, result.Value)
	})
}
