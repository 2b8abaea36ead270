package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Eyabennessib/rooma/internal/models"
	"github.com/Eyabennessib/rooma/internal/repository"
	"github.com/go-chi/chi/v5"
)

type HouseholdHandler struct {
	householdRepo repository.HouseholdRepository
	memberRepo    repository.MemberRepository
	choreRepo     repository.ChoreRepository
}

func NewHouseholdHandler(
	householdRepo repository.HouseholdRepository,
	memberRepo repository.MemberRepository,
	choreRepo repository.ChoreRepository,
) *HouseholdHandler {
	return &HouseholdHandler{
		householdRepo: householdRepo,
		memberRepo:    memberRepo,
		choreRepo:     choreRepo,
	}
}

func (handler *HouseholdHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var payload struct {
		Name string `json:"name"`
	}
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	household, err := handler.householdRepo.Create(ctx, models.Household{Name: payload.Name})
	if err != nil {
		slog.Error("creating household", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create household")
		return
	}
	writeJSON(w, http.StatusOK, household)
}

func (handler *HouseholdHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	householdID := chi.URLParam(r, "id")

	household, err := handler.householdRepo.FindByID(ctx, householdID)
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	members, err := handler.memberRepo.FindByHousehold(ctx, householdID)
	if err != nil {
		slog.Error("finding members", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load household")
		return
	}

	chores, err := handler.choreRepo.FindByHousehold(ctx, householdID)
	if err != nil {
		slog.Error("finding chores", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load household")
		return
	}
	// Newest chores first in the household view; rotation order stays
	// creation-ascending.
	for i, j := 0, len(chores)-1; i < j; i, j = i+1, j-1 {
		chores[i], chores[j] = chores[j], chores[i]
	}

	if members == nil {
		members = []models.Member{}
	}
	if chores == nil {
		chores = []models.Chore{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"household": household,
		"members":   members,
		"chores":    chores,
	})
}

func (handler *HouseholdHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	householdID := chi.URLParam(r, "id")

	if _, err := handler.householdRepo.FindByID(ctx, householdID); err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	if err := handler.householdRepo.Delete(ctx, householdID); err != nil {
		slog.Error("deleting household", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete household")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": householdID})
}
