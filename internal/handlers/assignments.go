package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Eyabennessib/rooma/internal/models"
	"github.com/Eyabennessib/rooma/internal/repository"
	"github.com/Eyabennessib/rooma/internal/services"
	"github.com/go-chi/chi/v5"
)

type AssignmentHandler struct {
	assignmentRepo  repository.AssignmentRepository
	rotationService *services.RotationService
}

func NewAssignmentHandler(
	assignmentRepo repository.AssignmentRepository,
	rotationService *services.RotationService,
) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentRepo:  assignmentRepo,
		rotationService: rotationService,
	}
}

type weekResponse struct {
	WeekStart   string                    `json:"week_start"`
	Assignments []models.AssignmentDetail `json:"assignments"`
}

// Current returns the assignment set for the requested week without
// generating anything.
func (handler *AssignmentHandler) Current(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	householdID := chi.URLParam(r, "id")

	weekStart, ok := handler.resolveWeekStart(w, r.URL.Query().Get("week_start"))
	if !ok {
		return
	}

	assignments, err := handler.assignmentRepo.FindByWeek(ctx, householdID, weekStart)
	if err != nil {
		slog.Error("finding assignments", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load assignments")
		return
	}
	if assignments == nil {
		assignments = []models.AssignmentDetail{}
	}
	writeJSON(w, http.StatusOK, weekResponse{WeekStart: weekStart, Assignments: assignments})
}

// Rotate generates the week's assignments. Repeated calls for the same
// week return the existing set unchanged.
func (handler *AssignmentHandler) Rotate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	householdID := chi.URLParam(r, "id")

	var payload struct {
		WeekStart string `json:"week_start"`
	}
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	weekStart, ok := handler.resolveWeekStart(w, payload.WeekStart)
	if !ok {
		return
	}

	assignments, err := handler.rotationService.Generate(ctx, householdID, weekStart)
	if errors.Is(err, services.ErrInsufficientResources) {
		writeError(w, http.StatusBadRequest, "need at least 1 chore and 1 member")
		return
	}
	if err != nil {
		slog.Error("generating rotation", "household", householdID, "week", weekStart, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to generate assignments")
		return
	}
	if assignments == nil {
		assignments = []models.AssignmentDetail{}
	}
	writeJSON(w, http.StatusOK, weekResponse{WeekStart: weekStart, Assignments: assignments})
}

func (handler *AssignmentHandler) Complete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	assignmentID := chi.URLParam(r, "id")

	var payload struct {
		ProofURL *string `json:"proof_url"`
	}
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	assignment, err := handler.rotationService.Complete(ctx, assignmentID, payload.ProofURL)
	if errors.Is(err, services.ErrAssignmentNotFound) {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	if err != nil {
		slog.Error("completing assignment", "assignment", assignmentID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to complete assignment")
		return
	}
	writeJSON(w, http.StatusOK, assignment)
}

// resolveWeekStart normalizes a supplied week to its Monday, defaulting
// to the current week. Writes a 400 and returns false on a bad date.
func (handler *AssignmentHandler) resolveWeekStart(w http.ResponseWriter, value string) (string, bool) {
	if value == "" {
		return services.CurrentWeekStart(), true
	}
	weekStart, err := services.NormalizeWeekStart(value)
	if err != nil {
		writeError(w, http.StatusBadRequest, "week_start must be a YYYY-MM-DD date")
		return "", false
	}
	return weekStart, true
}
