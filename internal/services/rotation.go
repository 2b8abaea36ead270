package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Eyabennessib/rooma/internal/models"
	"github.com/Eyabennessib/rooma/internal/repository"
)

var (
	ErrInsufficientResources = errors.New("need at least one chore and one member")
	ErrAssignmentNotFound    = errors.New("assignment not found")
)

// RotationService generates each week's chore assignments and tracks
// them through completion.
type RotationService struct {
	memberRepo     repository.MemberRepository
	choreRepo      repository.ChoreRepository
	assignmentRepo repository.AssignmentRepository
}

func NewRotationService(
	memberRepo repository.MemberRepository,
	choreRepo repository.ChoreRepository,
	assignmentRepo repository.AssignmentRepository,
) *RotationService {
	return &RotationService{
		memberRepo:     memberRepo,
		choreRepo:      choreRepo,
		assignmentRepo: assignmentRepo,
	}
}

// Generate creates the assignment set for (householdID, weekStart), or
// returns the existing set unchanged if the week was already rotated.
// Chores are walked in creation order and dealt out cyclically over the
// fair order, so when chores outnumber members the members most owed a
// turn carry the extra load that week.
func (service *RotationService) Generate(ctx context.Context, householdID string, weekStart string) ([]models.AssignmentDetail, error) {
	existing, err := service.assignmentRepo.FindByWeek(ctx, householdID, weekStart)
	if err != nil {
		return nil, fmt.Errorf("checking existing assignments: %w", err)
	}
	if len(existing) > 0 {
		return existing, nil
	}

	chores, err := service.choreRepo.FindByHousehold(ctx, householdID)
	if err != nil {
		return nil, fmt.Errorf("finding chores: %w", err)
	}
	members, err := service.memberRepo.FindByHousehold(ctx, householdID)
	if err != nil {
		return nil, fmt.Errorf("finding members: %w", err)
	}
	if len(chores) == 0 || len(members) == 0 {
		return nil, ErrInsufficientResources
	}

	counts, err := service.assignmentRepo.CountBeforeWeek(ctx, householdID, weekStart)
	if err != nil {
		return nil, fmt.Errorf("counting past assignments: %w", err)
	}
	fairOrder := FairOrder(members, counts)

	assignments := make([]models.Assignment, 0, len(chores))
	for i, chore := range chores {
		assignments = append(assignments, models.Assignment{
			HouseholdID: householdID,
			WeekStart:   weekStart,
			ChoreID:     chore.ID,
			MemberID:    fairOrder[i%len(fairOrder)],
			Status:      models.AssignmentStatusAssigned,
		})
	}

	err = service.assignmentRepo.InsertWeek(ctx, assignments)
	if err != nil && !errors.Is(err, repository.ErrDuplicateAssignment) {
		return nil, fmt.Errorf("inserting assignments: %w", err)
	}
	// On ErrDuplicateAssignment a concurrent call committed this week
	// first; the read below returns that committed set.

	return service.assignmentRepo.FindByWeek(ctx, householdID, weekStart)
}

// Complete marks the assignment done and stores the proof reference.
// Completing an already-done assignment succeeds and overwrites the
// proof; there is deliberately no prior-status check.
func (service *RotationService) Complete(ctx context.Context, assignmentID string, proofURL *string) (models.Assignment, error) {
	affected, err := service.assignmentRepo.UpdateStatus(ctx, assignmentID, models.AssignmentStatusDone, proofURL)
	if err != nil {
		return models.Assignment{}, fmt.Errorf("completing assignment: %w", err)
	}
	if affected == 0 {
		return models.Assignment{}, ErrAssignmentNotFound
	}

	assignment, err := service.assignmentRepo.FindByID(ctx, assignmentID)
	if err != nil {
		return models.Assignment{}, fmt.Errorf("reading completed assignment: %w", err)
	}
	return assignment, nil
}
