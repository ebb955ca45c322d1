package payroll

import (
	"time"

	payrollerrors "github.com/Ashishbhardwajofficial/TalentX-HRMS-sub003/internal/payroll/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	StatusDraft      = "DRAFT"
	StatusCalculated = "CALCULATED"
	StatusApproved   = "APPROVED"
	StatusPaid       = "PAID"
	StatusError      = "ERROR"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusCalculated, StatusApproved, StatusPaid, StatusError:
		return true
	}
	return false
}

// PayrollRun is a batch of payslips for one organization and pay period.
// Status changes go through the transition methods below; there are no
// free-form setters that could bypass the lifecycle guards.
type PayrollRun struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrgID       uuid.UUID `gorm:"type:uuid;not null;index:idx_run_org_status"`
	RunNumber   string    `gorm:"type:varchar(20);not null;uniqueIndex"`
	Name        string    `gorm:"type:varchar(120);not null"`
	Description string    `gorm:"type:text"`

	PeriodStart time.Time `gorm:"type:date;not null"`
	PeriodEnd   time.Time `gorm:"type:date;not null"`
	PayDate     time.Time `gorm:"type:date;not null"`

	Status string `gorm:"type:varchar(20);not null;default:'DRAFT';index:idx_run_org_status"`

	TotalGrossPay   decimal.Decimal `gorm:"type:numeric(16,2);not null;default:0"`
	TotalDeductions decimal.Decimal `gorm:"type:numeric(16,2);not null;default:0"`
	TotalTaxes      decimal.Decimal `gorm:"type:numeric(16,2);not null;default:0"`
	TotalNetPay     decimal.Decimal `gorm:"type:numeric(16,2);not null;default:0"`
	EmployeeCount   int             `gorm:"not null;default:0"`

	ProcessedBy *uuid.UUID `gorm:"type:uuid"`
	ProcessedAt *time.Time
	ApprovedBy  *uuid.UUID `gorm:"type:uuid"`
	ApprovedAt  *time.Time
	PaidBy      *uuid.UUID `gorm:"type:uuid"`
	PaidAt      *time.Time

	Notes     *string   `gorm:"type:text"`
	CreatedBy uuid.UUID `gorm:"type:uuid;not null"`

	Version   int64 `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Payslips []Payslip `gorm:"foreignKey:RunID"`
}

// Editable reports whether the payslip set may still be modified.
func (r *PayrollRun) Editable() bool {
	return r.Status == StatusDraft || r.Status == StatusError
}

// Deletable mirrors Editable: once a run is CALCULATED it is part of the
// audit trail, and a PAID run is an archival record.
func (r *PayrollRun) Deletable() bool {
	return r.Status == StatusDraft || r.Status == StatusError
}

// CalculateTotals folds the current payslip totals into the run totals and
// sets the employee count. It must run before any transition out of DRAFT.
func (r *PayrollRun) CalculateTotals() {
	gross := decimal.Zero
	deductions := decimal.Zero
	taxes := decimal.Zero
	net := decimal.Zero

	for _, slip := range r.Payslips {
		gross = gross.Add(slip.GrossPay)
		deductions = deductions.Add(slip.TotalDeductions)
		taxes = taxes.Add(slip.TotalTaxes)
		net = net.Add(slip.NetPay)
	}

	r.TotalGrossPay = gross
	r.TotalDeductions = deductions
	r.TotalTaxes = taxes
	r.TotalNetPay = net
	r.EmployeeCount = len(r.Payslips)
}

// MarkCalculated performs DRAFT|ERROR -> CALCULATED, recomputing run totals
// from the payslips as part of the transition.
func (r *PayrollRun) MarkCalculated(actorID uuid.UUID, now time.Time) error {
	if !r.Editable() {
		return payrollerrors.ErrCalculateRequiresEditable
	}

	r.CalculateTotals()
	r.Status = StatusCalculated
	r.ProcessedBy = &actorID
	r.ProcessedAt = &now
	return nil
}

// Approve performs CALCULATED -> APPROVED and records the approver.
func (r *PayrollRun) Approve(actorID uuid.UUID, now time.Time) error {
	if r.Status != StatusCalculated {
		return payrollerrors.ErrApproveRequiresCalculated
	}

	r.Status = StatusApproved
	r.ApprovedBy = &actorID
	r.ApprovedAt = &now
	return nil
}

// MarkPaid performs APPROVED -> PAID and records the payer. PAID is
// terminal: a second MarkPaid fails the same guard.
func (r *PayrollRun) MarkPaid(actorID uuid.UUID, now time.Time) error {
	if r.Status != StatusApproved {
		return payrollerrors.ErrPayRequiresApproved
	}

	r.Status = StatusPaid
	r.PaidBy = &actorID
	r.PaidAt = &now
	return nil
}

// MarkError moves an in-progress run to ERROR, from which it can be edited
// and recalculated. A PAID run never leaves PAID.
func (r *PayrollRun) MarkError(note string) error {
	if r.Status == StatusPaid {
		return payrollerrors.ErrPaidRunImmutable
	}

	r.Status = StatusError
	if note != "" {
		r.Notes = &note
	}
	return nil
}
