package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Eyabennessib/rooma/internal/models"
	"github.com/google/uuid"
)

type ChoreRepository interface {
	Create(ctx context.Context, chore models.Chore) (models.Chore, error)
	FindByHousehold(ctx context.Context, householdID string) ([]models.Chore, error)
}

type SQLiteChoreRepository struct {
	database *sql.DB
}

func NewChoreRepository(database *sql.DB) *SQLiteChoreRepository {
	return &SQLiteChoreRepository{database: database}
}

// Create inserts the chore with the next seq for its household. Rotation
// walks chores in seq order, so seq must reflect creation order exactly.
func (repository *SQLiteChoreRepository) Create(ctx context.Context, chore models.Chore) (models.Chore, error) {
	if chore.ID == "" {
		chore.ID = uuid.New().String()
	}
	if chore.Cadence == "" {
		chore.Cadence = models.CadenceWeekly
	}
	chore.CreatedAt = time.Now()

	transaction, err := repository.database.BeginTx(ctx, nil)
	if err != nil {
		return models.Chore{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer transaction.Rollback()

	err = transaction.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(seq), 0) + 1 FROM chores WHERE household_id = ?",
		chore.HouseholdID,
	).Scan(&chore.Seq)
	if err != nil {
		return models.Chore{}, fmt.Errorf("computing chore seq: %w", err)
	}

	_, err = transaction.ExecContext(ctx,
		`INSERT INTO chores (id, household_id, title, cadence, seq, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		chore.ID, chore.HouseholdID, chore.Title, chore.Cadence, chore.Seq, chore.CreatedAt,
	)
	if err != nil {
		return models.Chore{}, fmt.Errorf("creating chore: %w", err)
	}

	if err := transaction.Commit(); err != nil {
		return models.Chore{}, fmt.Errorf("committing chore: %w", err)
	}
	return chore, nil
}

func (repository *SQLiteChoreRepository) FindByHousehold(ctx context.Context, householdID string) ([]models.Chore, error) {
	rows, err := repository.database.QueryContext(ctx,
		`SELECT id, household_id, title, cadence, seq, created_at
		FROM chores WHERE household_id = ?
		ORDER BY seq ASC`, householdID,
	)
	if err != nil {
		return nil, fmt.Errorf("finding chores: %w", err)
	}
	defer rows.Close()

	var chores []models.Chore
	for rows.Next() {
		var chore models.Chore
		if err := rows.Scan(&chore.ID, &chore.HouseholdID, &chore.Title, &chore.Cadence,
			&chore.Seq, &chore.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning chore: %w", err)
		}
		chores = append(chores, chore)
	}
	return chores, rows.Err()
}
