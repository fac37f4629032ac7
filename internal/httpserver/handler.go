package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/honeycarbs/urban-match/internal/domain"
	"github.com/honeycarbs/urban-match/internal/domain/recommend"
	"github.com/honeycarbs/urban-match/pkg/logging"
)

// Recommender runs the aggregation pipeline for one profile.
type Recommender interface {
	Recommend(ctx context.Context, raw domain.RawProfile) (*domain.Recommendation, error)
}

// Handler holds the route handlers and their dependencies.
type Handler struct {
	service Recommender
	logger  *logging.Logger
}

// NewHandler constructs the route handlers
func NewHandler(service Recommender, log *logging.Logger) *Handler {
	if log == nil {
		log = logging.NewNop()
	}
	return &Handler{
		service: service,
		logger:  log,
	}
}

// Routes assembles the router with the standard middleware chain.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(requestLogger(h.logger))
	r.Use(recoverer(h.logger))

	r.Get("/healthz", h.handleHealthz)
	r.Post("/api/recommend", h.handleRecommend)

	return r
}

func (h *Handler) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

type recommendRequest struct {
	Profile *domain.RawProfile `json:"profile"`
}

func (h *Handler) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Profile == nil {
		writeError(w, http.StatusBadRequest, "Missing profile payload")
		return
	}

	out, err := h.service.Recommend(r.Context(), *req.Profile)
	if err != nil {
		var upstream *recommend.UpstreamError
		if errors.As(err, &upstream) {
			writeError(w, upstream.Status, upstream.Message)
			return
		}

		h.logger.Error("recommendation pipeline failed", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, out)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
