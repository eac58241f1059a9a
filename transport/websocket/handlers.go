package websocket

import (
	"context"
	"encoding/json"
	"fmt"
)

func (that *Server) handleNewGame(ctx context.Context, msg *Message) (ResponsePayload, error) {
	var payload newGamePayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return ResponsePayload{}, fmt.Errorf("failed to unmarshal new game payload: %w", err)
	}

	game, err := that.gamePlay.CreateGame(ctx, payload.Mark)
	if err != nil {
		return ResponsePayload{}, fmt.Errorf("failed to create game: %w", err)
	}

	return ResponsePayload{Game: game}, nil
}

func (that *Server) handleGetGame(ctx context.Context, msg *Message) (ResponsePayload, error) {
	var payload gamePayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return ResponsePayload{}, fmt.Errorf("failed to unmarshal game payload: %w", err)
	}

	game, err := that.gamePlay.GetGame(ctx, payload.Game.ID)
	if err != nil {
		return ResponsePayload{}, fmt.Errorf("failed to get game: %w", err)
	}

	return ResponsePayload{Game: game}, nil
}

func (that *Server) handleGameTurn(ctx context.Context, msg *Message) (ResponsePayload, error) {
	var payload turnPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return ResponsePayload{}, fmt.Errorf("failed to unmarshal turn payload: %w", err)
	}

	game, err := that.gamePlay.MakeTurn(ctx, payload.Game.ID, payload.action())
	if err != nil {
		// the game is still sent back so the client can redraw the board
		return ResponsePayload{Game: game}, fmt.Errorf("failed to make turn: %w", err)
	}

	return ResponsePayload{Game: game}, nil
}

func (that *Server) handleHint(_ context.Context, msg *Message) (ResponsePayload, error) {
	var payload hintPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return ResponsePayload{}, fmt.Errorf("failed to unmarshal hint payload: %w", err)
	}

	result, err := that.gamePlay.Solve(payload.Board)
	if err != nil {
		return ResponsePayload{}, fmt.Errorf("failed to solve board: %w", err)
	}

	resp := ResponsePayload{Value: &result.Value}
	if result.Found {
		resp.Action = &result.Action
	}

	return resp, nil
}
