package models

import (
	"encoding/json"
	"fmt"
	"time"
)

const RecordingURLFormat = "https://recordings.stimasacco.co.ke/%s.mp3"

type CallLog struct {
	ID                  string     `bson:"_id" json:"id"`
	LoanID              string     `bson:"loan_id" json:"loan_id"`
	MemberID            string     `bson:"member_id" json:"member_id"`
	CallType            CallType   `bson:"call_type" json:"call_type"`
	PhoneNumber         string     `bson:"phone_number" json:"phone_number"`
	CallStartTime       time.Time  `bson:"call_start_time" json:"call_start_time"`
	CallEndTime         *time.Time `bson:"call_end_time,omitempty" json:"call_end_time"`
	CallDurationSeconds *int       `bson:"call_duration_seconds,omitempty" json:"call_duration_seconds"`
	CallStatus          CallStatus `bson:"call_status" json:"call_status"`
	Notes               string     `bson:"notes" json:"notes"`
	AgentID             string     `bson:"agent_id" json:"agent_id"`
	AgentName           string     `bson:"agent_name" json:"agent_name"`
	RecordingURL        *string    `bson:"recording_url,omitempty" json:"recording_url"`
	FollowUpRequired    bool       `bson:"follow_up_required" json:"follow_up_required"`
	FollowUpDate        *time.Time `bson:"follow_up_date,omitempty" json:"follow_up_date"`
	CreatedAt           time.Time  `bson:"created_at" json:"created_at"`
}

func (c CallLog) WasSuccessful() bool {
	return c.CallStatus == CallStatusSuccessful
}

// CallDurationMinutes is nil when the call has no recorded duration.
func (c CallLog) CallDurationMinutes() *float64 {
	if c.CallDurationSeconds == nil {
		return nil
	}
	minutes := float64(*c.CallDurationSeconds) / 60
	return &minutes
}

func (c CallLog) MarshalJSON() ([]byte, error) {
	type callLog CallLog
	return json.Marshal(struct {
		callLog
		CallDurationMinutes *float64 `json:"call_duration_minutes"`
		WasSuccessful       bool     `json:"was_successful"`
	}{callLog(c), c.CallDurationMinutes(), c.WasSuccessful()})
}

type CallLogCreate struct {
	LoanID           string     `json:"loan_id" binding:"required"`
	MemberID         string     `json:"member_id" binding:"required"`
	CallType         CallType   `json:"call_type" binding:"required,oneof=outbound inbound"`
	PhoneNumber      string     `json:"phone_number" binding:"required"`
	CallStatus       CallStatus `json:"call_status" binding:"required,oneof=successful no_answer busy disconnected"`
	CallStartTime    *time.Time `json:"call_start_time"`
	CallEndTime      *time.Time `json:"call_end_time"`
	Notes            string     `json:"notes"`
	AgentID          string     `json:"agent_id"`
	AgentName        string     `json:"agent_name"`
	FollowUpRequired bool       `json:"follow_up_required"`
	FollowUpDate     *time.Time `json:"follow_up_date"`
}

// EndsBeforeStart reports an end time earlier than the effective start time.
func (in CallLogCreate) EndsBeforeStart(now time.Time) bool {
	if in.CallEndTime == nil {
		return false
	}
	start := now
	if in.CallStartTime != nil {
		start = *in.CallStartTime
	}
	return in.CallEndTime.Before(start)
}

// NewCallLog starts the call at now unless the request carries a start time,
// derives the duration from an end time, and links a recording for successful calls.
func NewCallLog(in CallLogCreate, id string, agent Agent, now time.Time) CallLog {
	start := now
	if in.CallStartTime != nil {
		start = in.CallStartTime.UTC()
	}

	call := CallLog{
		ID:               id,
		LoanID:           in.LoanID,
		MemberID:         in.MemberID,
		CallType:         in.CallType,
		PhoneNumber:      in.PhoneNumber,
		CallStartTime:    start,
		CallStatus:       in.CallStatus,
		Notes:            in.Notes,
		AgentID:          firstNonEmpty(in.AgentID, agent.ID),
		AgentName:        firstNonEmpty(in.AgentName, agent.Name),
		FollowUpRequired: in.FollowUpRequired,
		FollowUpDate:     in.FollowUpDate,
		CreatedAt:        now,
	}

	if in.CallEndTime != nil {
		end := in.CallEndTime.UTC()
		seconds := int(end.Sub(start).Seconds())
		call.CallEndTime = &end
		call.CallDurationSeconds = &seconds
	}

	if call.WasSuccessful() {
		url := fmt.Sprintf(RecordingURLFormat, id)
		call.RecordingURL = &url
	}

	return call
}

type CallLogFilter struct {
	LoanID string
	Skip   int64
	Limit  int64
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
