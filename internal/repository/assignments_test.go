package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Eyabennessib/rooma/internal/models"
	"github.com/Eyabennessib/rooma/internal/repository"
	"github.com/Eyabennessib/rooma/internal/testutil"
)

type assignmentFixture struct {
	householdRepo  repository.HouseholdRepository
	memberRepo     repository.MemberRepository
	choreRepo      repository.ChoreRepository
	assignmentRepo repository.AssignmentRepository
	household      models.Household
	member         models.Member
	chore          models.Chore
}

func newAssignmentFixture(t *testing.T) *assignmentFixture {
	t.Helper()
	db := testutil.NewTestDatabase(t)
	ctx := context.Background()

	fixture := &assignmentFixture{
		householdRepo:  repository.NewHouseholdRepository(db),
		memberRepo:     repository.NewMemberRepository(db),
		choreRepo:      repository.NewChoreRepository(db),
		assignmentRepo: repository.NewAssignmentRepository(db),
	}

	fixture.household = createHousehold(t, fixture.householdRepo, "Flat 12")

	member, err := fixture.memberRepo.Create(ctx, models.Member{HouseholdID: fixture.household.ID, Name: "Ana"})
	if err != nil {
		t.Fatalf("creating member: %v", err)
	}
	fixture.member = member

	chore, err := fixture.choreRepo.Create(ctx, models.Chore{HouseholdID: fixture.household.ID, Title: "Dishes"})
	if err != nil {
		t.Fatalf("creating chore: %v", err)
	}
	fixture.chore = chore

	return fixture
}

func (fixture *assignmentFixture) insert(t *testing.T, weekStart string, choreID string) models.Assignment {
	t.Helper()
	assignment, err := fixture.assignmentRepo.Insert(context.Background(), models.Assignment{
		HouseholdID: fixture.household.ID,
		WeekStart:   weekStart,
		ChoreID:     choreID,
		MemberID:    fixture.member.ID,
	})
	if err != nil {
		t.Fatalf("inserting assignment: %v", err)
	}
	return assignment
}

func TestAssignmentRepository_DuplicateWeekChoreRejected(t *testing.T) {
	fixture := newAssignmentFixture(t)
	ctx := context.Background()

	fixture.insert(t, "2024-06-03", fixture.chore.ID)

	_, err := fixture.assignmentRepo.Insert(ctx, models.Assignment{
		HouseholdID: fixture.household.ID,
		WeekStart:   "2024-06-03",
		ChoreID:     fixture.chore.ID,
		MemberID:    fixture.member.ID,
	})
	if !errors.Is(err, repository.ErrDuplicateAssignment) {
		t.Fatalf("expected ErrDuplicateAssignment, got %v", err)
	}
}

func TestAssignmentRepository_SameChoreDifferentWeeksAllowed(t *testing.T) {
	fixture := newAssignmentFixture(t)

	fixture.insert(t, "2024-06-03", fixture.chore.ID)
	fixture.insert(t, "2024-06-10", fixture.chore.ID)
}

func TestAssignmentRepository_InsertWeekRollsBackOnConflict(t *testing.T) {
	fixture := newAssignmentFixture(t)
	ctx := context.Background()

	second, err := fixture.choreRepo.Create(ctx, models.Chore{HouseholdID: fixture.household.ID, Title: "Trash"})
	if err != nil {
		t.Fatalf("creating chore: %v", err)
	}

	// Pre-existing row for the second chore forces a mid-batch conflict.
	fixture.insert(t, "2024-06-03", second.ID)

	err = fixture.assignmentRepo.InsertWeek(ctx, []models.Assignment{
		{HouseholdID: fixture.household.ID, WeekStart: "2024-06-03", ChoreID: fixture.chore.ID, MemberID: fixture.member.ID},
		{HouseholdID: fixture.household.ID, WeekStart: "2024-06-03", ChoreID: second.ID, MemberID: fixture.member.ID},
	})
	if !errors.Is(err, repository.ErrDuplicateAssignment) {
		t.Fatalf("expected ErrDuplicateAssignment, got %v", err)
	}

	rows, err := fixture.assignmentRepo.FindByWeek(ctx, fixture.household.ID, "2024-06-03")
	if err != nil {
		t.Fatalf("finding assignments: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("expected only the pre-existing row after rollback, got %d rows", len(rows))
	}
}

func TestAssignmentRepository_CountBeforeWeekIsStrict(t *testing.T) {
	fixture := newAssignmentFixture(t)
	ctx := context.Background()

	trash, err := fixture.choreRepo.Create(ctx, models.Chore{HouseholdID: fixture.household.ID, Title: "Trash"})
	if err != nil {
		t.Fatalf("creating chore: %v", err)
	}

	fixture.insert(t, "2024-05-27", fixture.chore.ID)
	fixture.insert(t, "2024-06-03", trash.ID)
	fixture.insert(t, "2024-06-10", fixture.chore.ID)

	counts, err := fixture.assignmentRepo.CountBeforeWeek(ctx, fixture.household.ID, "2024-06-03")
	if err != nil {
		t.Fatalf("counting: %v", err)
	}
	// Only the 2024-05-27 row counts: the target week itself and later
	// weeks are excluded.
	if counts[fixture.member.ID] != 1 {
		t.Errorf("expected count 1, got %d", counts[fixture.member.ID])
	}
}

func TestAssignmentRepository_FindByWeekJoinsDetails(t *testing.T) {
	fixture := newAssignmentFixture(t)
	ctx := context.Background()

	fixture.insert(t, "2024-06-03", fixture.chore.ID)

	rows, err := fixture.assignmentRepo.FindByWeek(ctx, fixture.household.ID, "2024-06-03")
	if err != nil {
		t.Fatalf("finding assignments: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].ChoreTitle != "Dishes" {
		t.Errorf("expected chore title Dishes, got %s", rows[0].ChoreTitle)
	}
	if rows[0].MemberName != "Ana" {
		t.Errorf("expected member name Ana, got %s", rows[0].MemberName)
	}
}

func TestAssignmentRepository_UpdateStatus(t *testing.T) {
	fixture := newAssignmentFixture(t)
	ctx := context.Background()

	assignment := fixture.insert(t, "2024-06-03", fixture.chore.ID)

	proof := "https://example.com/proof.jpg"
	affected, err := fixture.assignmentRepo.UpdateStatus(ctx, assignment.ID, models.AssignmentStatusDone, &proof)
	if err != nil {
		t.Fatalf("updating status: %v", err)
	}
	if affected != 1 {
		t.Errorf("expected 1 row affected, got %d", affected)
	}

	updated, err := fixture.assignmentRepo.FindByID(ctx, assignment.ID)
	if err != nil {
		t.Fatalf("finding assignment: %v", err)
	}
	if updated.Status != models.AssignmentStatusDone {
		t.Errorf("expected status done, got %s", updated.Status)
	}
	if updated.ProofURL == nil || *updated.ProofURL != proof {
		t.Errorf("expected proof url %q, got %v", proof, updated.ProofURL)
	}
}

func TestAssignmentRepository_UpdateStatusUnknownID(t *testing.T) {
	fixture := newAssignmentFixture(t)

	affected, err := fixture.assignmentRepo.UpdateStatus(context.Background(), "no-such-id", models.AssignmentStatusDone, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if affected != 0 {
		t.Errorf("expected 0 rows affected, got %d", affected)
	}
}

func TestHouseholdRepository_DeleteCascades(t *testing.T) {
	fixture := newAssignmentFixture(t)
	ctx := context.Background()

	fixture.insert(t, "2024-06-03", fixture.chore.ID)

	if err := fixture.householdRepo.Delete(ctx, fixture.household.ID); err != nil {
		t.Fatalf("deleting household: %v", err)
	}

	members, err := fixture.memberRepo.FindByHousehold(ctx, fixture.household.ID)
	if err != nil {
		t.Fatalf("finding members: %v", err)
	}
	if len(members) != 0 {
		t.Errorf("expected members cascade-deleted, got %d", len(members))
	}

	rows, err := fixture.assignmentRepo.FindByWeek(ctx, fixture.household.ID, "2024-06-03")
	if err != nil {
		t.Fatalf("finding assignments: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected assignments cascade-deleted, got %d", len(rows))
	}
}
