// Package handler exposes the StrategyProfile HTTP endpoints.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"growthsphere/internal/platform/middleware"
	"growthsphere/internal/strategy/models"
	"growthsphere/internal/strategy/store"
	"growthsphere/internal/transport/http/shared"
	"growthsphere/pkg/domain"
	dErrors "growthsphere/pkg/domain-errors"
)

// Service defines the interface for strategy operations.
type Service interface {
	Create(ctx context.Context, strategy *models.StrategyProfile) (domain.StrategyID, error)
	List(ctx context.Context, filter store.ListFilter, limit int64) ([]*models.StrategyProfile, error)
}

type Handler struct {
	logger     *slog.Logger
	strategies Service
}

func New(strategies Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, strategies: strategies}
}

// Register registers the strategy routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/strategies", h.handleCreateStrategy)
	r.Get("/api/strategies", h.handleListStrategies)
}

type createdResponse struct {
	ID string `json:"id"`
}

type listResponse struct {
	Items []*models.StrategyProfile `json:"items"`
}

func (h *Handler) handleCreateStrategy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var strategy models.StrategyProfile
	if err := json.NewDecoder(r.Body).Decode(&strategy); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	id, err := h.strategies.Create(ctx, &strategy)
	if err != nil {
		switch {
		case dErrors.Is(err, dErrors.CodeValidation),
			dErrors.Is(err, dErrors.CodeInvalidInput),
			dErrors.Is(err, dErrors.CodeNotFound):
			h.logger.WarnContext(ctx, "strategy creation rejected",
				"request_id", middleware.GetRequestID(ctx),
				"error", err.Error(),
			)
		default:
			h.logger.ErrorContext(ctx, "failed to create strategy",
				"request_id", middleware.GetRequestID(ctx),
				"error", err.Error(),
			)
		}
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, createdResponse{ID: id.String()})
}

func (h *Handler) handleListStrategies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, err := shared.ParseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	filter := store.ListFilter{ProgramID: r.URL.Query().Get("program_id")}

	strategies, err := h.strategies.List(ctx, filter, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list strategies",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		shared.WriteError(w, err)
		return
	}

	if strategies == nil {
		strategies = []*models.StrategyProfile{}
	}
	shared.WriteJSON(w, http.StatusOK, listResponse{Items: strategies})
}
