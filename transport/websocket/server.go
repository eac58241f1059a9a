package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

const (
	idlePingInterval = 30 * time.Second
	maxMessageSize   = 4096
	sendBufferSize   = 16
	shutdownTimeout  = 5 * time.Second
)

var ErrUnknownAction = errors.New("unknown action")

type gamePlayService interface {
	CreateGame(ctx context.Context, playerMark tictactoe.Mark) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)

	MakeTurn(ctx context.Context, gameID string, action tictactoe.Action) (*entity.Game, error)

	Solve(board tictactoe.Board) (tictactoe.Result, error)
}

type handlerFunc func(ctx context.Context, msg *Message) (ResponsePayload, error)

type Server struct {
	logger   *slog.Logger
	gamePlay gamePlayService
	upgrader websocket.Upgrader

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, gamePlay gamePlayService) *Server {
	server := &Server{
		logger:   logger.With("component", "websocket"),
		gamePlay: gamePlay,
		upgrader: websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }},
		handlers: make(map[string]handlerFunc),
	}

	server.handlers["game:new"] = server.handleNewGame
	server.handlers["game:get"] = server.handleGetGame
	server.handlers["game:turn"] = server.handleGameTurn
	server.handlers["game:hint"] = server.handleHint

	return server
}

// Start - starts WebSocket server and stops it when ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.ServeHTTP)

	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     mux,
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
		BaseContext: func(_ net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}

		return nil
	}
}

// ServeHTTP upgrades the connection and processes messages until the client leaves.
func (that *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "ServeHTTP", "remote", r.RemoteAddr)

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(maxMessageSize)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	send := make(chan []byte, sendBufferSize)
	done := make(chan struct{})
	go func() {
		defer close(done)
		if writeErr := writeWithHeartbeat(conn, send); writeErr != nil {
			log.Debug("writer stopped", "error", writeErr)
			cancel()
			// unblocks ReadMessage in the read loop
			_ = conn.Close()
		}
	}()

	log.Info("WebSocket connection established")

	that.readLoop(ctx, conn, send)

	close(send)
	<-done
}

func (that *Server) readLoop(ctx context.Context, conn *websocket.Conn, send chan<- []byte) {
	log := that.logger.With("method", "readLoop")

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Error("error reading message", "error", err)
			}
			return
		}

		var msg Message
		if err = json.Unmarshal(data, &msg); err != nil {
			log.Error("failed to unmarshal message", "error", err)
			continue
		}

		reply := that.processMessage(ctx, &msg)

		select {
		case send <- mustMarshal(reply):
		case <-ctx.Done():
			return
		}
	}
}

// processMessage - runs the handler for msg and wraps its outcome in a reply.
func (that *Server) processMessage(ctx context.Context, msg *Message) Message {
	var (
		payload ResponsePayload
		err     error
	)

	handler, ok := that.handlers[msg.Action]
	if ok {
		payload, err = handler(ctx, msg)
	} else {
		err = fmt.Errorf("%w: %s", ErrUnknownAction, msg.Action)
	}

	if err != nil {
		that.logger.Debug("error processing message", "action", msg.Action, "error", err)
		payload.Error = err.Error()
	}

	return Message{
		Action:  msg.Action,
		Payload: mustMarshal(payload),
	}
}

// writeWithHeartbeat owns every write on conn. It pings when the connection
// has been idle for idlePingInterval and returns once send is closed.
func writeWithHeartbeat(conn *websocket.Conn, send <-chan []byte) error {
	ticker := time.NewTicker(idlePingInterval)
	defer ticker.Stop()

	lastWrite := time.Now()

	for {
		select {
		case msg, ok := <-send:
			if !ok {
				return conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return fmt.Errorf("failed to write message: %w", err)
			}
			lastWrite = time.Now()
		case <-ticker.C:
			if time.Since(lastWrite) < idlePingInterval {
				continue
			}
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return fmt.Errorf("failed to write ping: %w", err)
			}
			lastWrite = time.Now()
		}
	}
}
