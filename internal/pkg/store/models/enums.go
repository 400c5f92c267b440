package models

type LoanStatus string

const (
	LoanStatusPerforming    LoanStatus = "performing"
	LoanStatusNonPerforming LoanStatus = "non_performing"
	LoanStatusDefaulted     LoanStatus = "defaulted"
	LoanStatusClosed        LoanStatus = "closed"
)

func (s LoanStatus) Valid() bool {
	switch s {
	case LoanStatusPerforming, LoanStatusNonPerforming, LoanStatusDefaulted, LoanStatusClosed:
		return true
	}
	return false
}

type LoanType string

const (
	LoanTypeBranch LoanType = "branch"
	LoanTypeMobile LoanType = "mobile"
)

type CallStatus string

const (
	CallStatusSuccessful   CallStatus = "successful"
	CallStatusNoAnswer     CallStatus = "no_answer"
	CallStatusBusy         CallStatus = "busy"
	CallStatusDisconnected CallStatus = "disconnected"
)

type CallType string

const (
	CallTypeOutbound CallType = "outbound"
	CallTypeInbound  CallType = "inbound"
)

type PromiseStatus string

const (
	PromiseStatusPending PromiseStatus = "pending"
	PromiseStatusKept    PromiseStatus = "kept"
	PromiseStatusBroken  PromiseStatus = "broken"
	PromiseStatusExpired PromiseStatus = "expired"
)

func (s PromiseStatus) Valid() bool {
	switch s {
	case PromiseStatusPending, PromiseStatusKept, PromiseStatusBroken, PromiseStatusExpired:
		return true
	}
	return false
}

type PartnerType string

const (
	PartnerTypeDebtCollector PartnerType = "debt_collector"
	PartnerTypeAuctioneer    PartnerType = "auctioneer"
	PartnerTypeLegalFirm     PartnerType = "legal_firm"
)

type AssignmentStatus string

const (
	AssignmentStatusAssigned   AssignmentStatus = "assigned"
	AssignmentStatusInProgress AssignmentStatus = "in_progress"
	AssignmentStatusCompleted  AssignmentStatus = "completed"
	AssignmentStatusFailed     AssignmentStatus = "failed"
)

func (s AssignmentStatus) Valid() bool {
	switch s {
	case AssignmentStatusAssigned, AssignmentStatusInProgress, AssignmentStatusCompleted, AssignmentStatusFailed:
		return true
	}
	return false
}
