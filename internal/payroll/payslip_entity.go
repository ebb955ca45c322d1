package payroll

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payslip is one employee's pay statement inside a run. Exactly one payslip
// exists per (employee, pay period); the unique index backs that invariant.
type Payslip struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RunID      uuid.UUID `gorm:"type:uuid;not null;index"`
	OrgID      uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_payslip_employee_period,unique"`

	// PayPeriod is the YYYY-MM label derived from the run period start.
	PayPeriod string `gorm:"type:varchar(7);not null;index:idx_payslip_employee_period,unique"`

	Items []PayrollItem `gorm:"foreignKey:PayslipID"`

	GrossPay        decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	TotalTaxes      decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	TotalDeductions decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	NetPay          decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`

	Finalized   bool
	GeneratedAt time.Time
	DocumentURL *string

	Version   int64 `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderedItems returns the items in deterministic calculation order.
func (p *Payslip) OrderedItems() []PayrollItem {
	items := make([]PayrollItem, len(p.Items))
	copy(items, p.Items)
	sort.SliceStable(items, func(a, b int) bool {
		return items[a].CalcOrder < items[b].CalcOrder
	})
	return items
}

// CalculateTotals derives the four payslip totals from the current items.
// Each category is summed at full precision and rounded half-up to cents
// exactly once, so 10.005 + 10.005 + 10.00 yields 30.01, not the 30.02 that
// per-item rounding would produce. TotalDeductions and NetPay are then built
// from the already-rounded figures, keeping
//
//	totalDeductions = totalTaxes + non-tax deductions
//	netPay          = grossPay - totalDeductions
//
// exact to the cent. Idempotent: absent components count as zero, nothing
// else is mutated, and repeated calls produce identical values.
func (p *Payslip) CalculateTotals() {
	gross := decimal.Zero
	taxes := decimal.Zero
	deductions := decimal.Zero

	for _, item := range p.OrderedItems() {
		amount := item.ResolvedAmount()
		switch {
		case item.IsEarning():
			gross = gross.Add(amount)
		case item.IsTax():
			taxes = taxes.Add(amount)
		case item.IsDeduction():
			deductions = deductions.Add(amount)
		}
	}

	p.GrossPay = gross.Round(2)
	p.TotalTaxes = taxes.Round(2)
	p.TotalDeductions = deductions.Round(2).Add(p.TotalTaxes)
	p.NetPay = p.GrossPay.Sub(p.TotalDeductions)
}
