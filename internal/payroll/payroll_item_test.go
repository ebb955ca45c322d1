package payroll_test

import (
	"testing"

	"github.com/Ashishbhardwajofficial/TalentX-HRMS-sub003/internal/payroll"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestPayrollItem_ResolvedAmount(t *testing.T) {
	t.Run("rate times quantity wins over amount", func(t *testing.T) {
		item := payroll.PayrollItem{
			Amount:   dec("999"),
			Rate:     decPtr("25.50"),
			Quantity: decPtr("3"),
		}
		assert.True(t, dec("76.50").Equal(item.ResolvedAmount()))
	})

	t.Run("falls back to amount without rate", func(t *testing.T) {
		item := payroll.PayrollItem{Amount: dec("5000"), Quantity: decPtr("3")}
		assert.True(t, dec("5000").Equal(item.ResolvedAmount()))
	})

	t.Run("keeps fractional precision", func(t *testing.T) {
		item := payroll.PayrollItem{Rate: decPtr("0.001"), Quantity: decPtr("10.5")}
		assert.True(t, dec("0.0105").Equal(item.ResolvedAmount()))
	})
}

func TestPayrollItem_TypePredicates(t *testing.T) {
	assert.True(t, payroll.PayrollItem{ItemType: "earning"}.IsEarning())
	assert.True(t, payroll.PayrollItem{ItemType: "EARNING"}.IsEarning())
	assert.True(t, payroll.PayrollItem{ItemType: payroll.ItemTypeDeduction}.IsDeduction())
	assert.True(t, payroll.PayrollItem{ItemType: "Tax"}.IsTax())
	assert.False(t, payroll.PayrollItem{ItemType: "bonus"}.IsEarning())
}

func TestKnownItemType(t *testing.T) {
	assert.True(t, payroll.KnownItemType("earning"))
	assert.True(t, payroll.KnownItemType("DEDUCTION"))
	assert.True(t, payroll.KnownItemType("tax"))
	assert.False(t, payroll.KnownItemType("reimbursement"))
	assert.False(t, payroll.KnownItemType(""))
}
