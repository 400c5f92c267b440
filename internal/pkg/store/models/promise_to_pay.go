package models

import (
	"encoding/json"
	"math"
	"time"
)

type PromiseToPay struct {
	ID             string        `bson:"_id" json:"id"`
	LoanID         string        `bson:"loan_id" json:"loan_id"`
	MemberID       string        `bson:"member_id" json:"member_id"`
	CallID         string        `bson:"call_id" json:"call_id"`
	PromisedAmount float64       `bson:"promised_amount" json:"promised_amount"`
	PromisedDate   time.Time     `bson:"promised_date" json:"promised_date"`
	Status         PromiseStatus `bson:"status" json:"status"`
	Notes          string        `bson:"notes" json:"notes"`
	AgentID        string        `bson:"agent_id" json:"agent_id"`
	AgentName      string        `bson:"agent_name" json:"agent_name"`
	CreatedAt      time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time     `bson:"updated_at" json:"updated_at"`
}

// IsOverdue holds for pending promises whose date has passed.
func (p PromiseToPay) IsOverdue(now time.Time) bool {
	return p.Status == PromiseStatusPending && p.PromisedDate.Before(now)
}

// DaysUntilDue counts whole days to the promised date, flooring so that
// anything already past due is negative.
func (p PromiseToPay) DaysUntilDue(now time.Time) int {
	return int(math.Floor(p.PromisedDate.Sub(now).Hours() / 24))
}

func (p PromiseToPay) MarshalJSON() ([]byte, error) {
	type promise PromiseToPay
	now := time.Now().UTC()
	return json.Marshal(struct {
		promise
		IsOverdue    bool `json:"is_overdue"`
		DaysUntilDue int  `json:"days_until_due"`
	}{promise(p), p.IsOverdue(now), p.DaysUntilDue(now)})
}

type PromiseToPayCreate struct {
	LoanID         string    `json:"loan_id" binding:"required"`
	MemberID       string    `json:"member_id" binding:"required"`
	CallID         string    `json:"call_id" binding:"required"`
	PromisedAmount float64   `json:"promised_amount" binding:"gt=0"`
	PromisedDate   time.Time `json:"promised_date" binding:"required"`
	Notes          string    `json:"notes"`
	AgentID        string    `json:"agent_id"`
	AgentName      string    `json:"agent_name"`
}

// NewPromiseToPay always starts a promise as pending.
func NewPromiseToPay(in PromiseToPayCreate, id string, agent Agent, now time.Time) PromiseToPay {
	return PromiseToPay{
		ID:             id,
		LoanID:         in.LoanID,
		MemberID:       in.MemberID,
		CallID:         in.CallID,
		PromisedAmount: in.PromisedAmount,
		PromisedDate:   in.PromisedDate.UTC(),
		Status:         PromiseStatusPending,
		Notes:          in.Notes,
		AgentID:        firstNonEmpty(in.AgentID, agent.ID),
		AgentName:      firstNonEmpty(in.AgentName, agent.Name),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

type PromiseFilter struct {
	Status string
	LoanID string
	Skip   int64
	Limit  int64
}
