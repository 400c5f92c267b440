package models

import "time"

type NPLSummaryRow struct {
	BranchCode       string  `bson:"_id" json:"_id"`
	TotalLoans       int64   `bson:"total_loans" json:"total_loans"`
	TotalOutstanding float64 `bson:"total_outstanding" json:"total_outstanding"`
	TotalArrears     float64 `bson:"total_arrears" json:"total_arrears"`
	AvgDaysArrears   float64 `bson:"avg_days_arrears" json:"avg_days_arrears"`
}

type CollectionPerformanceRow struct {
	Status      PromiseStatus `bson:"_id" json:"_id"`
	Count       int64         `bson:"count" json:"count"`
	TotalAmount float64       `bson:"total_amount" json:"total_amount"`
}

type ReportExport struct {
	Bucket     string    `json:"bucket"`
	Object     string    `json:"object"`
	Rows       int       `json:"rows"`
	ExportedAt time.Time `json:"exported_at"`
}

type AutoDialCandidate struct {
	Loan        LoanAccount `json:"loan"`
	Member      Member      `json:"member"`
	PhoneNumber string      `json:"phone_number"`
	Message     string      `json:"message"`
}

type ProfixSyncResult struct {
	Success         bool      `json:"success"`
	Message         string    `json:"message"`
	LoanID          string    `json:"loan_id"`
	PreviousBalance float64   `json:"previous_balance"`
	UpdatedBalance  float64   `json:"updated_balance"`
	SyncTime        time.Time `json:"sync_time"`
}

// CollectionEvent is the envelope published on the collection event stream.
type CollectionEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	EntityID   string    `json:"entity_id"`
	LoanID     string    `json:"loan_id,omitempty"`
	AgentID    string    `json:"agent_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload,omitempty"`
}
