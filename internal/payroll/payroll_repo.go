package payroll

import (
	"context"
	"database/sql"

	payrollerrors "github.com/Ashishbhardwajofficial/TalentX-HRMS-sub003/internal/payroll/errors"
	"github.com/Ashishbhardwajofficial/TalentX-HRMS-sub003/internal/tenant"

	"gorm.io/gorm"
)

type RunQueryFilter struct {
	Status string
}

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreateRun(ctx context.Context, run *PayrollRun) error
	FindRunsByOrg(ctx context.Context, orgID string, filter RunQueryFilter) ([]PayrollRun, error)
	FindRunByIDAndOrg(ctx context.Context, orgID string, id string) (*PayrollRun, error)
	UpdateRun(ctx context.Context, run *PayrollRun) error
	DeleteRun(ctx context.Context, orgID string, id string) error

	CreatePayslip(ctx context.Context, slip *Payslip) error
	UpdatePayslip(ctx context.Context, slip *Payslip) error
	ReplaceItems(ctx context.Context, orgID string, payslipID string, items []PayrollItem) error
	FindPayslipByRunAndEmployee(ctx context.Context, orgID, runID, employeeID string) (*Payslip, error)
	FindPayslipByIDAndRun(ctx context.Context, orgID, runID, payslipID string) (*Payslip, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx returns a repository whose statements run on the caller's
// transaction, so run and payslip writes commit atomically with the
// outbox rows queued on the same tx.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	session := r.db.Session(&gorm.Session{NewDB: true})
	session.Statement.ConnPool = tx
	return &repository{db: session}
}

func (r *repository) CreateRun(ctx context.Context, run *PayrollRun) error {
	return r.db.WithContext(ctx).Create(run).Error
}

func (r *repository) FindRunsByOrg(ctx context.Context, orgID string, filter RunQueryFilter) ([]PayrollRun, error) {
	db := r.db.WithContext(ctx).
		Scopes(tenant.Scope(orgID)).
		Order("period_start DESC")

	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}

	var runs []PayrollRun
	err := db.Find(&runs).Error
	return runs, err
}

func (r *repository) FindRunByIDAndOrg(ctx context.Context, orgID string, id string) (*PayrollRun, error) {
	var run PayrollRun
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(orgID)).
		Preload("Payslips", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Payslips.Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("calc_order ASC, created_at ASC")
		}).
		First(&run, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// UpdateRun persists the run with optimistic concurrency: the row is only
// written when the stored version matches the one the caller read. A stale
// version surfaces as ErrConcurrentModification and the caller must re-read.
func (r *repository) UpdateRun(ctx context.Context, run *PayrollRun) error {
	res := r.db.WithContext(ctx).
		Model(&PayrollRun{}).
		Where("id = ? AND org_id = ? AND version = ?", run.ID, run.OrgID, run.Version).
		Updates(map[string]any{
			"name":             run.Name,
			"description":      run.Description,
			"period_start":     run.PeriodStart,
			"period_end":       run.PeriodEnd,
			"pay_date":         run.PayDate,
			"status":           run.Status,
			"total_gross_pay":  run.TotalGrossPay,
			"total_deductions": run.TotalDeductions,
			"total_taxes":      run.TotalTaxes,
			"total_net_pay":    run.TotalNetPay,
			"employee_count":   run.EmployeeCount,
			"processed_by":     run.ProcessedBy,
			"processed_at":     run.ProcessedAt,
			"approved_by":      run.ApprovedBy,
			"approved_at":      run.ApprovedAt,
			"paid_by":          run.PaidBy,
			"paid_at":          run.PaidAt,
			"notes":            run.Notes,
			"version":          run.Version + 1,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return payrollerrors.ErrConcurrentModification
	}

	run.Version++
	return nil
}

// DeleteRun removes the run and everything it owns. Lifecycle guards live in
// the service; the repo only performs the cascade.
func (r *repository) DeleteRun(ctx context.Context, orgID string, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("payslip_id IN (?)",
				tx.Model(&Payslip{}).Select("id").Where("run_id = ? AND org_id = ?", id, orgID),
			).
			Delete(&PayrollItem{}).Error; err != nil {
			return err
		}

		if err := tx.
			Where("run_id = ? AND org_id = ?", id, orgID).
			Delete(&Payslip{}).Error; err != nil {
			return err
		}

		return tx.
			Scopes(tenant.Scope(orgID)).
			Delete(&PayrollRun{}, "id = ?", id).Error
	})
}

func (r *repository) CreatePayslip(ctx context.Context, slip *Payslip) error {
	return r.db.WithContext(ctx).Create(slip).Error
}

func (r *repository) UpdatePayslip(ctx context.Context, slip *Payslip) error {
	res := r.db.WithContext(ctx).
		Model(&Payslip{}).
		Where("id = ? AND org_id = ? AND version = ?", slip.ID, slip.OrgID, slip.Version).
		Updates(map[string]any{
			"gross_pay":        slip.GrossPay,
			"total_taxes":      slip.TotalTaxes,
			"total_deductions": slip.TotalDeductions,
			"net_pay":          slip.NetPay,
			"finalized":        slip.Finalized,
			"generated_at":     slip.GeneratedAt,
			"document_url":     slip.DocumentURL,
			"version":          slip.Version + 1,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return payrollerrors.ErrConcurrentModification
	}

	slip.Version++
	return nil
}

func (r *repository) ReplaceItems(ctx context.Context, orgID string, payslipID string, items []PayrollItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("payslip_id = ? AND org_id = ?", payslipID, orgID).
			Delete(&PayrollItem{}).Error; err != nil {
			return err
		}

		if len(items) == 0 {
			return nil
		}

		return tx.Create(&items).Error
	})
}

func (r *repository) FindPayslipByRunAndEmployee(ctx context.Context, orgID, runID, employeeID string) (*Payslip, error) {
	var slip Payslip
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(orgID)).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("calc_order ASC, created_at ASC")
		}).
		Where("run_id = ?", runID).
		First(&slip, "employee_id = ?", employeeID).Error
	if err != nil {
		return nil, err
	}
	return &slip, nil
}

func (r *repository) FindPayslipByIDAndRun(ctx context.Context, orgID, runID, payslipID string) (*Payslip, error) {
	var slip Payslip
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(orgID)).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("calc_order ASC, created_at ASC")
		}).
		Where("run_id = ?", runID).
		First(&slip, "id = ?", payslipID).Error
	if err != nil {
		return nil, err
	}
	return &slip, nil
}
