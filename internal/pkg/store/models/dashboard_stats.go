package models

import "encoding/json"

type DashboardStats struct {
	TotalMembers           int64   `json:"total_members"`
	TotalLoans             int64   `json:"total_loans"`
	TotalNPLLoans          int64   `json:"total_npl_loans"`
	TotalOutstandingAmount float64 `json:"total_outstanding_amount"`
	TotalArrearsAmount     float64 `json:"total_arrears_amount"`
	RecoveryRatePercent    float64 `json:"recovery_rate_percent"`
	CallsToday             int64   `json:"calls_today"`
	PromisesDueToday       int64   `json:"promises_due_today"`
	EscalationsPending     int64   `json:"escalations_pending"`
}

func (s DashboardStats) NPLPercentage() float64 {
	if s.TotalLoans <= 0 {
		return 0
	}
	return float64(s.TotalNPLLoans) / float64(s.TotalLoans) * 100
}

func (s DashboardStats) ArrearsPercentage() float64 {
	if s.TotalOutstandingAmount <= 0 {
		return 0
	}
	return s.TotalArrearsAmount / s.TotalOutstandingAmount * 100
}

func (s DashboardStats) MarshalJSON() ([]byte, error) {
	type stats DashboardStats
	return json.Marshal(struct {
		stats
		NPLPercentage     float64 `json:"npl_percentage"`
		ArrearsPercentage float64 `json:"arrears_percentage"`
	}{stats(s), s.NPLPercentage(), s.ArrearsPercentage()})
}
