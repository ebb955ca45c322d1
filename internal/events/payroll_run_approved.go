package events

import "time"

const PayrollRunApprovedTopic = "hr.payroll.run.approved.v1"

// PayrollRunApprovedEvent asks the consumer to render payslip documents for
// every payslip in the approved run.
type PayrollRunApprovedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	RunID      string    `json:"run_id"`
	OrgID      string    `json:"org_id"`
	ApprovedBy string    `json:"approved_by"`
	OccurredAt time.Time `json:"occurred_at"`
}
