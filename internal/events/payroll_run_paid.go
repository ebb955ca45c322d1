package events

import "time"

const PayrollRunPaidTopic = "hr.payroll.run.paid.v1"

type PayrollRunPaidEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	RunID         string    `json:"run_id"`
	OrgID         string    `json:"org_id"`
	PaidBy        string    `json:"paid_by"`
	TotalNetPay   string    `json:"total_net_pay"`
	EmployeeCount int       `json:"employee_count"`
	OccurredAt    time.Time `json:"occurred_at"`
}
