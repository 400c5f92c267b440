package models

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

type PartnerAssignment struct {
	ID                     string           `bson:"_id" json:"id"`
	LoanID                 string           `bson:"loan_id" json:"loan_id"`
	PartnerID              string           `bson:"partner_id" json:"partner_id"`
	AssignedDate           time.Time        `bson:"assigned_date" json:"assigned_date"`
	ExpectedRecoveryAmount float64          `bson:"expected_recovery_amount" json:"expected_recovery_amount"`
	ActualRecoveryAmount   float64          `bson:"actual_recovery_amount" json:"actual_recovery_amount"`
	CommissionAmount       float64          `bson:"commission_amount" json:"commission_amount"`
	Status                 AssignmentStatus `bson:"status" json:"status"`
	Notes                  string           `bson:"notes" json:"notes"`
	CreatedAt              time.Time        `bson:"created_at" json:"created_at"`
	UpdatedAt              *time.Time       `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

func (a PartnerAssignment) RecoveryPercentage() float64 {
	if a.ExpectedRecoveryAmount == 0 {
		return 0
	}
	return a.ActualRecoveryAmount / a.ExpectedRecoveryAmount * 100
}

func (a PartnerAssignment) IsCompleted() bool {
	return a.Status == AssignmentStatusCompleted
}

func (a PartnerAssignment) MarshalJSON() ([]byte, error) {
	type assignment PartnerAssignment
	return json.Marshal(struct {
		assignment
		RecoveryPercentage float64 `json:"recovery_percentage"`
		IsCompleted        bool    `json:"is_completed"`
	}{assignment(a), a.RecoveryPercentage(), a.IsCompleted()})
}

type PartnerAssignmentCreate struct {
	LoanID                 string  `json:"loan_id" binding:"required"`
	PartnerID              string  `json:"partner_id" binding:"required"`
	ExpectedRecoveryAmount float64 `json:"expected_recovery_amount" binding:"gte=0"`
	Notes                  string  `json:"notes"`
}

func NewPartnerAssignment(in PartnerAssignmentCreate, id string, now time.Time) PartnerAssignment {
	return PartnerAssignment{
		ID:                     id,
		LoanID:                 in.LoanID,
		PartnerID:              in.PartnerID,
		AssignedDate:           now,
		ExpectedRecoveryAmount: in.ExpectedRecoveryAmount,
		Status:                 AssignmentStatusAssigned,
		Notes:                  in.Notes,
		CreatedAt:              now,
	}
}

type PartnerAssignmentUpdate struct {
	Status               *AssignmentStatus `json:"status" binding:"omitempty,oneof=assigned in_progress completed failed"`
	ActualRecoveryAmount *float64          `json:"actual_recovery_amount" binding:"omitempty,gte=0"`
	Notes                *string           `json:"notes"`
}

// Fields builds the $set document. The commission is recomputed against the
// partner's rate whenever the recovered amount changes.
func (u PartnerAssignmentUpdate) Fields(partner ExternalPartner) bson.M {
	set := bson.M{}
	if u.Status != nil {
		set["status"] = *u.Status
	}
	if u.ActualRecoveryAmount != nil {
		set["actual_recovery_amount"] = *u.ActualRecoveryAmount
		set["commission_amount"] = partner.Commission(*u.ActualRecoveryAmount)
	}
	putString(set, "notes", u.Notes)
	return set
}

type PartnerAssignmentFilter struct {
	Status    string
	PartnerID string
	LoanID    string
	Skip      int64
	Limit     int64
}
