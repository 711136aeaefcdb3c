// Package handler exposes the OrganizationProgram HTTP endpoints.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"growthsphere/internal/platform/middleware"
	"growthsphere/internal/program/models"
	"growthsphere/internal/transport/http/shared"
	"growthsphere/pkg/domain"
	dErrors "growthsphere/pkg/domain-errors"
)

// Service defines the interface for program operations.
type Service interface {
	Create(ctx context.Context, program *models.OrganizationProgram) (domain.ProgramID, error)
	Get(ctx context.Context, id domain.ProgramID) (*models.OrganizationProgram, error)
	List(ctx context.Context, limit int64) ([]*models.OrganizationProgram, error)
}

type Handler struct {
	logger   *slog.Logger
	programs Service
}

func New(programs Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, programs: programs}
}

// Register registers the program routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/programs", h.handleCreateProgram)
	r.Get("/api/programs", h.handleListPrograms)
	r.Get("/api/programs/{id}", h.handleGetProgram)
}

type createdResponse struct {
	ID string `json:"id"`
}

type listResponse struct {
	Items []*models.OrganizationProgram `json:"items"`
}

func (h *Handler) handleCreateProgram(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var program models.OrganizationProgram
	if err := json.NewDecoder(r.Body).Decode(&program); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	id, err := h.programs.Create(ctx, &program)
	if err != nil {
		if dErrors.Is(err, dErrors.CodeValidation) {
			h.logger.WarnContext(ctx, "invalid program payload",
				"request_id", middleware.GetRequestID(ctx),
				"error", err.Error(),
			)
			shared.WriteError(w, err)
			return
		}
		h.logger.ErrorContext(ctx, "failed to create program",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, createdResponse{ID: id.String()})
}

func (h *Handler) handleListPrograms(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, err := shared.ParseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	programs, err := h.programs.List(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list programs",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		shared.WriteError(w, err)
		return
	}

	if programs == nil {
		programs = []*models.OrganizationProgram{}
	}
	shared.WriteJSON(w, http.StatusOK, listResponse{Items: programs})
}

func (h *Handler) handleGetProgram(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := domain.ParseProgramID(chi.URLParam(r, "id"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	program, err := h.programs.Get(ctx, id)
	if err != nil {
		if !dErrors.Is(err, dErrors.CodeNotFound) {
			h.logger.ErrorContext(ctx, "failed to fetch program",
				"request_id", middleware.GetRequestID(ctx),
				"error", err.Error(),
			)
		}
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, program)
}
