package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

const maxBodyBytes = 1 << 10

type Handlers interface {
	PingHandler(w http.ResponseWriter, _ *http.Request)

	BestMove(w http.ResponseWriter, r *http.Request)
	Analyze(w http.ResponseWriter, r *http.Request)
}

type analysisService interface {
	BestMove(rows []string) (*tictactoe.Move, tictactoe.Mark, error)
	Analyze(rows []string) (*entity.Analysis, error)
}

type boardRequest struct {
	Board []string `json:"board"`
}

type bestMoveResponse struct {
	Move *tictactoe.Move `json:"move"`
	Turn tictactoe.Mark  `json:"turn,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type handlers struct {
	logger          *slog.Logger
	analysisService analysisService
}

func NewHandlers(logger *slog.Logger, analysisService analysisService) Handlers {
	return &handlers{
		logger:          logger.With("component", "rest"),
		analysisService: analysisService,
	}
}

func (that *handlers) PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

func (that *handlers) BestMove(w http.ResponseWriter, r *http.Request) {
	req, ok := that.decodeBoard(w, r)
	if !ok {
		return
	}

	move, turn, err := that.analysisService.BestMove(req.Board)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, r, http.StatusOK, bestMoveResponse{Move: move, Turn: turn})
}

func (that *handlers) Analyze(w http.ResponseWriter, r *http.Request) {
	req, ok := that.decodeBoard(w, r)
	if !ok {
		return
	}

	analysis, err := that.analysisService.Analyze(req.Board)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, r, http.StatusOK, analysis)
}

func (that *handlers) decodeBoard(w http.ResponseWriter, r *http.Request) (*boardRequest, bool) {
	var req boardRequest

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&req); err != nil {
		that.writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return nil, false
	}

	return &req, true
}

func (that *handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, apperror.ErrInvalidBoard) {
		that.writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	that.logger.Error("request failed", "error", err, "request_id", middleware.GetReqID(r.Context()))
	that.writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}

func (that *handlers) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err, "request_id", middleware.GetReqID(r.Context()))
	}
}
