package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Eyabennessib/rooma/internal/models"
	"github.com/Eyabennessib/rooma/internal/repository"
	"github.com/go-chi/chi/v5"
)

type MemberHandler struct {
	householdRepo repository.HouseholdRepository
	memberRepo    repository.MemberRepository
}

func NewMemberHandler(
	householdRepo repository.HouseholdRepository,
	memberRepo repository.MemberRepository,
) *MemberHandler {
	return &MemberHandler{
		householdRepo: householdRepo,
		memberRepo:    memberRepo,
	}
}

func (handler *MemberHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	householdID := chi.URLParam(r, "id")

	var payload struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	if _, err := handler.householdRepo.FindByID(ctx, householdID); err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	member, err := handler.memberRepo.Create(ctx, models.Member{
		HouseholdID: householdID,
		Name:        payload.Name,
		Email:       payload.Email,
	})
	if err != nil {
		slog.Error("creating member", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create member")
		return
	}
	writeJSON(w, http.StatusOK, member)
}
