package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sandevgo/lexibot/internal/config"
	"github.com/sandevgo/lexibot/internal/core"
	"github.com/sandevgo/lexibot/pkg/log"
)

// defaultSessionID keeps single-visitor web widgets working when the client
// does not manage its own session ids.
const defaultSessionID = "default_user"

// TurnHandler is the slice of the intake processor the HTTP shell needs.
type TurnHandler interface {
	HandleTurn(ctx context.Context, sessionID, userText string) (string, error)
}

type Server struct {
	cfg     *config.ServerConfig
	handler TurnHandler
	srv     *http.Server
}

func NewServer(cfg *config.ServerConfig, handler TurnHandler) *Server {
	s := &Server{
		cfg:     cfg,
		handler: handler,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/chat", s.handleChat)
	mux.HandleFunc("/healthz", s.handleHealthz)

	s.srv = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.cors(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Str("addr", s.cfg.Addr).Msg("starting http api")
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.srv.Shutdown(shutdownCtx)
}

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

type chatResponse struct {
	Response string `json:"response"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var req chatRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "Invalid request format")
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = defaultSessionID
	}

	reply, err := s.handler.HandleTurn(r.Context(), sessionID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrEmptyMessage):
			badRequest(w, "No message provided")
		default:
			log.FromCtx(r.Context()).Error().Err(err).Str("session_id", sessionID).Msg("turn failed")
			internalError(w)
		}
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Response: reply})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": core.LexiVersion,
	})
}
