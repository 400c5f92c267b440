package models

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

type LoanAccount struct {
	ID                 string     `bson:"_id" json:"id"`
	LoanNumber         string     `bson:"loan_number" json:"loan_number"`
	MemberID           string     `bson:"member_id" json:"member_id"`
	MemberNumber       string     `bson:"member_number" json:"member_number"`
	LoanType           LoanType   `bson:"loan_type" json:"loan_type"`
	PrincipalAmount    float64    `bson:"principal_amount" json:"principal_amount"`
	OutstandingBalance float64    `bson:"outstanding_balance" json:"outstanding_balance"`
	MonthlyPayment     float64    `bson:"monthly_payment" json:"monthly_payment"`
	InterestRate       float64    `bson:"interest_rate" json:"interest_rate"`
	LoanTermMonths     int        `bson:"loan_term_months" json:"loan_term_months"`
	DisbursementDate   time.Time  `bson:"disbursement_date" json:"disbursement_date"`
	MaturityDate       time.Time  `bson:"maturity_date" json:"maturity_date"`
	LastPaymentDate    *time.Time `bson:"last_payment_date,omitempty" json:"last_payment_date"`
	DaysInArrears      int        `bson:"days_in_arrears" json:"days_in_arrears"`
	ArrearsAmount      float64    `bson:"arrears_amount" json:"arrears_amount"`
	Status             LoanStatus `bson:"status" json:"status"`
	BranchCode         string     `bson:"branch_code" json:"branch_code"`
	CreatedAt          time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt          *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

func (l LoanAccount) IsNonPerforming() bool {
	return l.Status == LoanStatusNonPerforming
}

// ArrearsPercentage is arrears as a share of the outstanding balance, 0 when nothing is outstanding.
func (l LoanAccount) ArrearsPercentage() float64 {
	if l.OutstandingBalance == 0 {
		return 0
	}
	return l.ArrearsAmount / l.OutstandingBalance * 100
}

func (l LoanAccount) MarshalJSON() ([]byte, error) {
	type loan LoanAccount
	return json.Marshal(struct {
		loan
		IsNonPerforming   bool    `json:"is_non_performing"`
		ArrearsPercentage float64 `json:"arrears_percentage"`
	}{loan(l), l.IsNonPerforming(), l.ArrearsPercentage()})
}

// MaturityDate is disbursement plus termMonths of 30 days each.
func MaturityDate(disbursed time.Time, termMonths int) time.Time {
	return disbursed.Add(time.Duration(termMonths) * 30 * 24 * time.Hour)
}

type LoanAccountCreate struct {
	LoanNumber         string    `json:"loan_number" binding:"required"`
	MemberID           string    `json:"member_id" binding:"required"`
	MemberNumber       string    `json:"member_number" binding:"required"`
	LoanType           LoanType  `json:"loan_type" binding:"required,oneof=branch mobile"`
	PrincipalAmount    float64   `json:"principal_amount" binding:"gt=0"`
	OutstandingBalance float64   `json:"outstanding_balance" binding:"gte=0"`
	MonthlyPayment     float64   `json:"monthly_payment" binding:"gte=0"`
	InterestRate       float64   `json:"interest_rate" binding:"gte=0"`
	LoanTermMonths     int       `json:"loan_term_months" binding:"required,gt=0"`
	DisbursementDate   time.Time `json:"disbursement_date" binding:"required"`
	BranchCode         string    `json:"branch_code" binding:"required"`
}

// NewLoanAccount builds a performing loan with its maturity date derived from the term.
func NewLoanAccount(in LoanAccountCreate, id string, now time.Time) LoanAccount {
	return LoanAccount{
		ID:                 id,
		LoanNumber:         in.LoanNumber,
		MemberID:           in.MemberID,
		MemberNumber:       in.MemberNumber,
		LoanType:           in.LoanType,
		PrincipalAmount:    in.PrincipalAmount,
		OutstandingBalance: in.OutstandingBalance,
		MonthlyPayment:     in.MonthlyPayment,
		InterestRate:       in.InterestRate,
		LoanTermMonths:     in.LoanTermMonths,
		DisbursementDate:   in.DisbursementDate,
		MaturityDate:       MaturityDate(in.DisbursementDate, in.LoanTermMonths),
		Status:             LoanStatusPerforming,
		BranchCode:         in.BranchCode,
		CreatedAt:          now,
	}
}

type LoanAccountUpdate struct {
	OutstandingBalance *float64    `json:"outstanding_balance" binding:"omitempty,gte=0"`
	ArrearsAmount      *float64    `json:"arrears_amount" binding:"omitempty,gte=0"`
	DaysInArrears      *int        `json:"days_in_arrears" binding:"omitempty,gte=0"`
	MonthlyPayment     *float64    `json:"monthly_payment" binding:"omitempty,gte=0"`
	InterestRate       *float64    `json:"interest_rate" binding:"omitempty,gte=0"`
	LastPaymentDate    *time.Time  `json:"last_payment_date"`
	Status             *LoanStatus `json:"status" binding:"omitempty,oneof=performing non_performing defaulted closed"`
	BranchCode         *string     `json:"branch_code" binding:"omitempty,min=1"`
}

func (u LoanAccountUpdate) Fields() bson.M {
	set := bson.M{}
	putFloat(set, "outstanding_balance", u.OutstandingBalance)
	putFloat(set, "arrears_amount", u.ArrearsAmount)
	putFloat(set, "monthly_payment", u.MonthlyPayment)
	putFloat(set, "interest_rate", u.InterestRate)
	putString(set, "branch_code", u.BranchCode)
	if u.DaysInArrears != nil {
		set["days_in_arrears"] = *u.DaysInArrears
	}
	if u.LastPaymentDate != nil {
		set["last_payment_date"] = u.LastPaymentDate.UTC()
	}
	if u.Status != nil {
		set["status"] = *u.Status
	}
	return set
}

type LoanFilter struct {
	Status       string
	MemberSearch string
	Skip         int64
	Limit        int64
}

type PortfolioTotals struct {
	TotalOutstanding float64 `bson:"total_outstanding" json:"total_outstanding"`
	TotalArrears     float64 `bson:"total_arrears" json:"total_arrears"`
}
