package consts

import "time"

// Mongo collection names.
const (
	MembersCollection            = "members"
	LoanAccountsCollection       = "loan_accounts"
	CallLogsCollection           = "call_logs"
	PromisesToPayCollection      = "promises_to_pay"
	ExternalPartnersCollection   = "external_partners"
	PartnerAssignmentsCollection = "partner_assignments"
	NotificationsCollection      = "notifications"
)

const (
	DefaultSkip  = 0
	DefaultLimit = 50
	MaxLimit     = 1000

	// RecoveryRatePercent is reported on the dashboard until recoveries are tracked.
	RecoveryRatePercent = 65.5

	AutoDialCooldown          = 24 * time.Hour
	CollectionPerformanceDays = 30
	LoanTermDaysPerMonth      = 30

	DefaultMemberSearchCap = 1000
)

// Cache keys.
const (
	ProfixSyncKeyPrefix = "profix:sync:"
)

func ProfixSyncKey(loanID string) string {
	return ProfixSyncKeyPrefix + loanID
}
