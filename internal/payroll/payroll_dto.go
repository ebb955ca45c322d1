package payroll

import "github.com/shopspring/decimal"

type CreateRunRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	PeriodStart string `json:"period_start" binding:"required"`
	PeriodEnd   string `json:"period_end" binding:"required"`
	PayDate     string `json:"pay_date" binding:"required"`
	Notes       string `json:"notes"`
}

type PayslipItemInput struct {
	ItemType  string           `json:"item_type" binding:"required"`
	Code      string           `json:"code" binding:"required"`
	Name      string           `json:"name" binding:"required"`
	Amount    decimal.Decimal  `json:"amount"`
	Rate      *decimal.Decimal `json:"rate"`
	Quantity  *decimal.Decimal `json:"quantity"`
	Taxable   bool             `json:"taxable"`
	Statutory bool             `json:"statutory"`
	CalcOrder int              `json:"calc_order"`
	Unit      string           `json:"unit"`
}

type UpsertPayslipRequest struct {
	EmployeeID string             `json:"employee_id" binding:"required,uuid"`
	Items      []PayslipItemInput `json:"items" binding:"required,dive"`
}

type GetRunsFilterRequest struct {
	Status string `form:"status"`
}

type RunResponse struct {
	ID              string          `json:"id"`
	OrgID           string          `json:"org_id"`
	RunNumber       string          `json:"run_number"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	PeriodStart     string          `json:"period_start"`
	PeriodEnd       string          `json:"period_end"`
	PayDate         string          `json:"pay_date"`
	Status          string          `json:"status"`
	TotalGrossPay   decimal.Decimal `json:"total_gross_pay"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TotalTaxes      decimal.Decimal `json:"total_taxes"`
	TotalNetPay     decimal.Decimal `json:"total_net_pay"`
	EmployeeCount   int             `json:"employee_count"`
	ProcessedBy     *string         `json:"processed_by,omitempty"`
	ProcessedAt     *string         `json:"processed_at,omitempty"`
	ApprovedBy      *string         `json:"approved_by,omitempty"`
	ApprovedAt      *string         `json:"approved_at,omitempty"`
	PaidBy          *string         `json:"paid_by,omitempty"`
	PaidAt          *string         `json:"paid_at,omitempty"`
	Notes           *string         `json:"notes,omitempty"`
	CreatedBy       string          `json:"created_by"`
	Version         int64           `json:"version"`
}

type PayslipItemResponse struct {
	ID        string           `json:"id"`
	ItemType  string           `json:"item_type"`
	Code      string           `json:"code"`
	Name      string           `json:"name"`
	Amount    decimal.Decimal  `json:"amount"`
	Rate      *decimal.Decimal `json:"rate,omitempty"`
	Quantity  *decimal.Decimal `json:"quantity,omitempty"`
	Taxable   bool             `json:"taxable"`
	Statutory bool             `json:"statutory"`
	CalcOrder int              `json:"calc_order"`
	Unit      string           `json:"unit,omitempty"`
}

type PayslipResponse struct {
	ID              string                `json:"id"`
	RunID           string                `json:"run_id"`
	EmployeeID      string                `json:"employee_id"`
	PayPeriod       string                `json:"pay_period"`
	GrossPay        decimal.Decimal       `json:"gross_pay"`
	TotalTaxes      decimal.Decimal       `json:"total_taxes"`
	TotalDeductions decimal.Decimal       `json:"total_deductions"`
	NetPay          decimal.Decimal       `json:"net_pay"`
	Finalized       bool                  `json:"finalized"`
	GeneratedAt     string                `json:"generated_at"`
	DocumentURL     *string               `json:"document_url,omitempty"`
	Items           []PayslipItemResponse `json:"items,omitempty"`
}

type RunBreakdownResponse struct {
	Run      RunResponse       `json:"run"`
	Payslips []PayslipResponse `json:"payslips"`
}
