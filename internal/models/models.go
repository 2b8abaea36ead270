package models

import "time"

type AssignmentStatus string

const (
	AssignmentStatusAssigned AssignmentStatus = "assigned"
	AssignmentStatusDone     AssignmentStatus = "done"
)

type Cadence string

const (
	// CadenceWeekly is the only cadence with rotation behavior today.
	// Other values are stored as-is.
	CadenceWeekly Cadence = "weekly"
)

type Household struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Member struct {
	ID          string    `json:"id"`
	HouseholdID string    `json:"household_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email,omitempty"`
	JoinOrder   int       `json:"join_order"`
	CreatedAt   time.Time `json:"created_at"`
}

type Chore struct {
	ID          string    `json:"id"`
	HouseholdID string    `json:"household_id"`
	Title       string    `json:"title"`
	Cadence     Cadence   `json:"cadence"`
	Seq         int       `json:"seq"`
	CreatedAt   time.Time `json:"created_at"`
}

// Assignment binds one chore to one member for one rotation week.
// WeekStart is the Monday of that week in YYYY-MM-DD form.
type Assignment struct {
	ID          string           `json:"id"`
	HouseholdID string           `json:"household_id"`
	WeekStart   string           `json:"week_start"`
	ChoreID     string           `json:"chore_id"`
	MemberID    string           `json:"member_id"`
	Status      AssignmentStatus `json:"status"`
	ProofURL    *string          `json:"proof_url"`
	CreatedAt   time.Time        `json:"created_at"`
}

// AssignmentDetail is the read-side shape of an assignment, annotated
// with the chore title and member name for presentation.
type AssignmentDetail struct {
	Assignment
	ChoreTitle string `json:"chore_title"`
	MemberName string `json:"member_name"`
}
