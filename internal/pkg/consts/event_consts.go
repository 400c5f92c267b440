package consts

type EventType string

const (
	EventCallLogged           EventType = "call_logged"
	EventPromiseCreated       EventType = "promise_created"
	EventPromiseStatusChanged EventType = "promise_status_changed"
	EventPartnerAssigned      EventType = "partner_assigned"
	EventAssignmentUpdated    EventType = "partner_assignment_updated"
	EventLoanSynced           EventType = "loan_synced"
)

const (
	ServiceName      = "sacco-collections"
	ServiceVersion   = "1.0.0"
	ServiceTitle     = "Stima Sacco Debt Management System"
	DefaultAPIPrefix = "/api"
	GCSReportFolder  = "reports"
)
