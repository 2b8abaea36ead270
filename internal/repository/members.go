package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Eyabennessib/rooma/internal/models"
	"github.com/google/uuid"
)

type MemberRepository interface {
	Create(ctx context.Context, member models.Member) (models.Member, error)
	FindByHousehold(ctx context.Context, householdID string) ([]models.Member, error)
	Count(ctx context.Context, householdID string) (int, error)
}

type SQLiteMemberRepository struct {
	database *sql.DB
}

func NewMemberRepository(database *sql.DB) *SQLiteMemberRepository {
	return &SQLiteMemberRepository{database: database}
}

// Create inserts the member with the next join_order for its household.
// The join order is assigned inside a transaction so it is never reused,
// and it only ever grows: max(join_order)+1, starting at 1.
func (repository *SQLiteMemberRepository) Create(ctx context.Context, member models.Member) (models.Member, error) {
	if member.ID == "" {
		member.ID = uuid.New().String()
	}
	member.CreatedAt = time.Now()

	transaction, err := repository.database.BeginTx(ctx, nil)
	if err != nil {
		return models.Member{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer transaction.Rollback()

	err = transaction.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(join_order), 0) + 1 FROM members WHERE household_id = ?",
		member.HouseholdID,
	).Scan(&member.JoinOrder)
	if err != nil {
		return models.Member{}, fmt.Errorf("computing join order: %w", err)
	}

	_, err = transaction.ExecContext(ctx,
		`INSERT INTO members (id, household_id, name, email, join_order, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		member.ID, member.HouseholdID, member.Name, member.Email, member.JoinOrder, member.CreatedAt,
	)
	if err != nil {
		return models.Member{}, fmt.Errorf("creating member: %w", err)
	}

	if err := transaction.Commit(); err != nil {
		return models.Member{}, fmt.Errorf("committing member: %w", err)
	}
	return member, nil
}

func (repository *SQLiteMemberRepository) FindByHousehold(ctx context.Context, householdID string) ([]models.Member, error) {
	rows, err := repository.database.QueryContext(ctx,
		`SELECT id, household_id, name, email, join_order, created_at
		FROM members WHERE household_id = ?
		ORDER BY join_order ASC, id ASC`, householdID,
	)
	if err != nil {
		return nil, fmt.Errorf("finding members: %w", err)
	}
	defer rows.Close()

	var members []models.Member
	for rows.Next() {
		var member models.Member
		if err := rows.Scan(&member.ID, &member.HouseholdID, &member.Name, &member.Email,
			&member.JoinOrder, &member.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning member: %w", err)
		}
		members = append(members, member)
	}
	return members, rows.Err()
}

func (repository *SQLiteMemberRepository) Count(ctx context.Context, householdID string) (int, error) {
	var count int
	err := repository.database.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM members WHERE household_id = ?", householdID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting members: %w", err)
	}
	return count, nil
}
