package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Eyabennessib/rooma/internal/models"
	"github.com/Eyabennessib/rooma/internal/repository"
	"github.com/go-chi/chi/v5"
)

type ChoreHandler struct {
	householdRepo repository.HouseholdRepository
	choreRepo     repository.ChoreRepository
}

func NewChoreHandler(
	householdRepo repository.HouseholdRepository,
	choreRepo repository.ChoreRepository,
) *ChoreHandler {
	return &ChoreHandler{
		householdRepo: householdRepo,
		choreRepo:     choreRepo,
	}
}

func (handler *ChoreHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	householdID := chi.URLParam(r, "id")

	var payload struct {
		Title   string `json:"title"`
		Cadence string `json:"cadence"`
	}
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	if _, err := handler.householdRepo.FindByID(ctx, householdID); err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	chore, err := handler.choreRepo.Create(ctx, models.Chore{
		HouseholdID: householdID,
		Title:       payload.Title,
		Cadence:     models.Cadence(payload.Cadence),
	})
	if err != nil {
		slog.Error("creating chore", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create chore")
		return
	}
	writeJSON(w, http.StatusOK, chore)
}
