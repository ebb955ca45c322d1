package payroll_test

import (
	"testing"

	"github.com/Ashishbhardwajofficial/TalentX-HRMS-sub003/internal/payroll"

	"github.com/stretchr/testify/assert"
)

func TestPayslip_CalculateTotals(t *testing.T) {
	t.Run("aggregates by item type", func(t *testing.T) {
		slip := payroll.Payslip{
			Items: []payroll.PayrollItem{
				{ItemType: payroll.ItemTypeEarning, Code: "BASIC", Amount: dec("5000.00"), CalcOrder: 1},
				{ItemType: payroll.ItemTypeEarning, Code: "BONUS", Amount: dec("250.00"), CalcOrder: 2},
				{ItemType: payroll.ItemTypeTax, Code: "INCOME_TAX", Amount: dec("800.00"), CalcOrder: 3},
				{ItemType: payroll.ItemTypeDeduction, Code: "INSURANCE", Amount: dec("150.00"), CalcOrder: 4},
			},
		}

		slip.CalculateTotals()

		assert.Equal(t, "5250.00", slip.GrossPay.StringFixed(2))
		assert.Equal(t, "800.00", slip.TotalTaxes.StringFixed(2))
		assert.Equal(t, "950.00", slip.TotalDeductions.StringFixed(2))
		assert.Equal(t, "4300.00", slip.NetPay.StringFixed(2))
	})

	t.Run("rounds the category sum once", func(t *testing.T) {
		// Three earnings of 10.004 sum to 30.012 and round to 30.01.
		// Rounding each item first would give 3 x 10.00 = 30.00.
		slip := payroll.Payslip{
			Items: []payroll.PayrollItem{
				{ItemType: payroll.ItemTypeEarning, Amount: dec("10.004"), CalcOrder: 1},
				{ItemType: payroll.ItemTypeEarning, Amount: dec("10.004"), CalcOrder: 2},
				{ItemType: payroll.ItemTypeEarning, Amount: dec("10.004"), CalcOrder: 3},
			},
		}

		slip.CalculateTotals()

		assert.Equal(t, "30.01", slip.GrossPay.StringFixed(2))
		assert.Equal(t, "30.01", slip.NetPay.StringFixed(2))
	})

	t.Run("half values round away from zero", func(t *testing.T) {
		slip := payroll.Payslip{
			Items: []payroll.PayrollItem{
				{ItemType: payroll.ItemTypeEarning, Amount: dec("100.005"), CalcOrder: 1},
			},
		}

		slip.CalculateTotals()

		assert.Equal(t, "100.01", slip.GrossPay.StringFixed(2))
	})

	t.Run("net pay stays consistent with rounded totals", func(t *testing.T) {
		slip := payroll.Payslip{
			Items: []payroll.PayrollItem{
				{ItemType: payroll.ItemTypeEarning, Amount: dec("3333.333"), CalcOrder: 1},
				{ItemType: payroll.ItemTypeTax, Amount: dec("666.666"), CalcOrder: 2},
				{ItemType: payroll.ItemTypeDeduction, Amount: dec("111.111"), CalcOrder: 3},
			},
		}

		slip.CalculateTotals()

		assert.Equal(t, slip.NetPay.StringFixed(2),
			slip.GrossPay.Sub(slip.TotalDeductions).StringFixed(2))
		assert.Equal(t, slip.TotalDeductions.StringFixed(2),
			dec("111.11").Add(slip.TotalTaxes).StringFixed(2))
	})

	t.Run("rate and quantity items contribute resolved amounts", func(t *testing.T) {
		slip := payroll.Payslip{
			Items: []payroll.PayrollItem{
				{ItemType: payroll.ItemTypeEarning, Rate: decPtr("25.00"), Quantity: decPtr("10"), CalcOrder: 1},
			},
		}

		slip.CalculateTotals()

		assert.Equal(t, "250.00", slip.GrossPay.StringFixed(2))
	})

	t.Run("recalculating unchanged items reproduces the totals", func(t *testing.T) {
		slip := payroll.Payslip{
			Items: []payroll.PayrollItem{
				{ItemType: payroll.ItemTypeEarning, Amount: dec("3333.333"), CalcOrder: 1},
				{ItemType: payroll.ItemTypeEarning, Rate: decPtr("25.00"), Quantity: decPtr("1.5"), CalcOrder: 2},
				{ItemType: payroll.ItemTypeTax, Amount: dec("666.666"), CalcOrder: 3},
				{ItemType: payroll.ItemTypeDeduction, Amount: dec("100.005"), CalcOrder: 4},
			},
		}

		slip.CalculateTotals()
		gross, taxes, deductions, net := slip.GrossPay, slip.TotalTaxes, slip.TotalDeductions, slip.NetPay

		slip.CalculateTotals()

		assert.Equal(t, gross, slip.GrossPay)
		assert.Equal(t, taxes, slip.TotalTaxes)
		assert.Equal(t, deductions, slip.TotalDeductions)
		assert.Equal(t, net, slip.NetPay)
	})

	t.Run("empty payslip keeps zero totals", func(t *testing.T) {
		slip := payroll.Payslip{}

		slip.CalculateTotals()

		assert.True(t, slip.GrossPay.IsZero())
		assert.True(t, slip.NetPay.IsZero())
	})
}

func TestPayslip_OrderedItems(t *testing.T) {
	slip := payroll.Payslip{
		Items: []payroll.PayrollItem{
			{Code: "TAX", CalcOrder: 3},
			{Code: "BASIC", CalcOrder: 1},
			{Code: "ALLOWANCE", CalcOrder: 2},
		},
	}

	ordered := slip.OrderedItems()

	assert.Equal(t, "BASIC", ordered[0].Code)
	assert.Equal(t, "ALLOWANCE", ordered[1].Code)
	assert.Equal(t, "TAX", ordered[2].Code)
	// Source slice is left untouched.
	assert.Equal(t, "TAX", slip.Items[0].Code)
}
