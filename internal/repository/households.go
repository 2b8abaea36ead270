package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Eyabennessib/rooma/internal/models"
	"github.com/google/uuid"
)

type HouseholdRepository interface {
	Create(ctx context.Context, household models.Household) (models.Household, error)
	FindByID(ctx context.Context, id string) (models.Household, error)
	Delete(ctx context.Context, id string) error
}

type SQLiteHouseholdRepository struct {
	database *sql.DB
}

func NewHouseholdRepository(database *sql.DB) *SQLiteHouseholdRepository {
	return &SQLiteHouseholdRepository{database: database}
}

func (repository *SQLiteHouseholdRepository) Create(ctx context.Context, household models.Household) (models.Household, error) {
	if household.ID == "" {
		household.ID = uuid.New().String()
	}
	household.CreatedAt = time.Now()

	_, err := repository.database.ExecContext(ctx,
		"INSERT INTO households (id, name, created_at) VALUES (?, ?, ?)",
		household.ID, household.Name, household.CreatedAt,
	)
	if err != nil {
		return models.Household{}, fmt.Errorf("creating household: %w", err)
	}
	return household, nil
}

func (repository *SQLiteHouseholdRepository) FindByID(ctx context.Context, id string) (models.Household, error) {
	var household models.Household
	err := repository.database.QueryRowContext(ctx,
		"SELECT id, name, created_at FROM households WHERE id = ?", id,
	).Scan(&household.ID, &household.Name, &household.CreatedAt)
	if err != nil {
		return models.Household{}, fmt.Errorf("finding household by id: %w", err)
	}
	return household, nil
}

// Delete removes the household; members, chores and assignments go with
// it via the ON DELETE CASCADE foreign keys.
func (repository *SQLiteHouseholdRepository) Delete(ctx context.Context, id string) error {
	_, err := repository.database.ExecContext(ctx, "DELETE FROM households WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting household: %w", err)
	}
	return nil
}
