package payroll

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	ItemTypeEarning   = "EARNING"
	ItemTypeDeduction = "DEDUCTION"
	ItemTypeTax       = "TAX"
)

// PayrollItem is one pay component on a payslip: an earning, a deduction or
// a tax. It is owned exclusively by its payslip and becomes immutable once
// the payslip is finalized.
type PayrollItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PayslipID uuid.UUID `gorm:"type:uuid;not null;index"`
	OrgID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ItemType  string    `gorm:"type:varchar(20);not null;index"`
	Code      string    `gorm:"type:varchar(40);not null"`
	Name      string    `gorm:"type:varchar(120);not null"`

	// Amount is authoritative unless both Rate and Quantity are present,
	// in which case amount = rate * quantity.
	Amount   decimal.Decimal  `gorm:"type:numeric(18,6);not null;default:0"`
	Rate     *decimal.Decimal `gorm:"type:numeric(18,6)"`
	Quantity *decimal.Decimal `gorm:"type:numeric(18,6)"`

	Taxable   bool
	Statutory bool
	CalcOrder int    `gorm:"not null;default:0"`
	Unit      string `gorm:"type:varchar(20)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ResolvedAmount is the single source of truth for an item's value: rate
// times quantity when both are present, the direct amount otherwise. An
// unset amount resolves to zero. Aggregation must go through this method,
// never read Amount directly.
func (i PayrollItem) ResolvedAmount() decimal.Decimal {
	if i.Rate != nil && i.Quantity != nil {
		return i.Rate.Mul(*i.Quantity)
	}
	return i.Amount
}

// Classification is case-insensitive. An item with an unrecognized type is
// none of the three and therefore excluded from every total; the service
// rejects unknown types at the input boundary so such rows only appear via
// direct database writes.
func (i PayrollItem) IsEarning() bool {
	return strings.EqualFold(i.ItemType, ItemTypeEarning)
}

func (i PayrollItem) IsDeduction() bool {
	return strings.EqualFold(i.ItemType, ItemTypeDeduction)
}

func (i PayrollItem) IsTax() bool {
	return strings.EqualFold(i.ItemType, ItemTypeTax)
}

func KnownItemType(t string) bool {
	return strings.EqualFold(t, ItemTypeEarning) ||
		strings.EqualFold(t, ItemTypeDeduction) ||
		strings.EqualFold(t, ItemTypeTax)
}
