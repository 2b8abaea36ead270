package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Eyabennessib/rooma/internal/models"
	"github.com/google/uuid"
)

// ErrDuplicateAssignment signals that an assignment already exists for
// the same (household, week_start, chore). The UNIQUE constraint behind
// it is what makes concurrent rotation safe.
var ErrDuplicateAssignment = errors.New("assignment already exists for week and chore")

type AssignmentRepository interface {
	Insert(ctx context.Context, assignment models.Assignment) (models.Assignment, error)
	InsertWeek(ctx context.Context, assignments []models.Assignment) error
	FindByID(ctx context.Context, id string) (models.Assignment, error)
	FindByWeek(ctx context.Context, householdID string, weekStart string) ([]models.AssignmentDetail, error)
	CountBeforeWeek(ctx context.Context, householdID string, weekStart string) (map[string]int, error)
	UpdateStatus(ctx context.Context, id string, status models.AssignmentStatus, proofURL *string) (int64, error)
}

type SQLiteAssignmentRepository struct {
	database *sql.DB
}

func NewAssignmentRepository(database *sql.DB) *SQLiteAssignmentRepository {
	return &SQLiteAssignmentRepository{database: database}
}

func (repository *SQLiteAssignmentRepository) Insert(ctx context.Context, assignment models.Assignment) (models.Assignment, error) {
	assignment = withDefaults(assignment)

	_, err := repository.database.ExecContext(ctx,
		`INSERT INTO assignments (id, household_id, week_start, chore_id, member_id, status, proof_url, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		assignment.ID, assignment.HouseholdID, assignment.WeekStart, assignment.ChoreID,
		assignment.MemberID, assignment.Status, assignment.ProofURL, assignment.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Assignment{}, ErrDuplicateAssignment
		}
		return models.Assignment{}, fmt.Errorf("creating assignment: %w", err)
	}
	return assignment, nil
}

// InsertWeek writes a week's rows in a single transaction: either the
// whole set commits or none of it does. A unique violation means a
// concurrent writer committed the week first; the transaction rolls
// back and ErrDuplicateAssignment is returned.
func (repository *SQLiteAssignmentRepository) InsertWeek(ctx context.Context, assignments []models.Assignment) error {
	transaction, err := repository.database.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer transaction.Rollback()

	for _, assignment := range assignments {
		assignment = withDefaults(assignment)
		_, err := transaction.ExecContext(ctx,
			`INSERT INTO assignments (id, household_id, week_start, chore_id, member_id, status, proof_url, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			assignment.ID, assignment.HouseholdID, assignment.WeekStart, assignment.ChoreID,
			assignment.MemberID, assignment.Status, assignment.ProofURL, assignment.CreatedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicateAssignment
			}
			return fmt.Errorf("creating assignment: %w", err)
		}
	}

	if err := transaction.Commit(); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateAssignment
		}
		return fmt.Errorf("committing assignments: %w", err)
	}
	return nil
}

func withDefaults(assignment models.Assignment) models.Assignment {
	if assignment.ID == "" {
		assignment.ID = uuid.New().String()
	}
	if assignment.Status == "" {
		assignment.Status = models.AssignmentStatusAssigned
	}
	assignment.CreatedAt = time.Now()
	return assignment
}

func (repository *SQLiteAssignmentRepository) FindByID(ctx context.Context, id string) (models.Assignment, error) {
	var assignment models.Assignment
	err := repository.database.QueryRowContext(ctx,
		`SELECT id, household_id, week_start, chore_id, member_id, status, proof_url, created_at
		FROM assignments WHERE id = ?`, id,
	).Scan(&assignment.ID, &assignment.HouseholdID, &assignment.WeekStart, &assignment.ChoreID,
		&assignment.MemberID, &assignment.Status, &assignment.ProofURL, &assignment.CreatedAt)
	if err != nil {
		return models.Assignment{}, fmt.Errorf("finding assignment by id: %w", err)
	}
	return assignment, nil
}

// FindByWeek returns the week's assignments joined with chore titles and
// member names, in chore creation order.
func (repository *SQLiteAssignmentRepository) FindByWeek(ctx context.Context, householdID string, weekStart string) ([]models.AssignmentDetail, error) {
	rows, err := repository.database.QueryContext(ctx,
		`SELECT a.id, a.household_id, a.week_start, a.chore_id, a.member_id, a.status, a.proof_url, a.created_at,
			c.title, m.name
		FROM assignments a
		JOIN chores c ON c.id = a.chore_id
		JOIN members m ON m.id = a.member_id
		WHERE a.household_id = ? AND a.week_start = ?
		ORDER BY c.seq ASC`, householdID, weekStart,
	)
	if err != nil {
		return nil, fmt.Errorf("finding assignments for week: %w", err)
	}
	defer rows.Close()

	var assignments []models.AssignmentDetail
	for rows.Next() {
		var detail models.AssignmentDetail
		if err := rows.Scan(&detail.ID, &detail.HouseholdID, &detail.WeekStart, &detail.ChoreID,
			&detail.MemberID, &detail.Status, &detail.ProofURL, &detail.CreatedAt,
			&detail.ChoreTitle, &detail.MemberName); err != nil {
			return nil, fmt.Errorf("scanning assignment: %w", err)
		}
		assignments = append(assignments, detail)
	}
	return assignments, rows.Err()
}

// CountBeforeWeek returns per-member totals of assignments with a
// week_start strictly before weekStart. Rows at or after weekStart are
// excluded so repeated rotation of the same week sees identical counts.
func (repository *SQLiteAssignmentRepository) CountBeforeWeek(ctx context.Context, householdID string, weekStart string) (map[string]int, error) {
	rows, err := repository.database.QueryContext(ctx,
		`SELECT member_id, COUNT(*)
		FROM assignments
		WHERE household_id = ? AND week_start < ?
		GROUP BY member_id`, householdID, weekStart,
	)
	if err != nil {
		return nil, fmt.Errorf("counting past assignments: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var memberID string
		var count int
		if err := rows.Scan(&memberID, &count); err != nil {
			return nil, fmt.Errorf("scanning assignment count: %w", err)
		}
		counts[memberID] = count
	}
	return counts, rows.Err()
}

func (repository *SQLiteAssignmentRepository) UpdateStatus(ctx context.Context, id string, status models.AssignmentStatus, proofURL *string) (int64, error) {
	result, err := repository.database.ExecContext(ctx,
		"UPDATE assignments SET status = ?, proof_url = ? WHERE id = ?",
		status, proofURL, id,
	)
	if err != nil {
		return 0, fmt.Errorf("updating assignment status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reading rows affected: %w", err)
	}
	return affected, nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
