package directory

import (
	"context"

	"github.com/Ashishbhardwajofficial/TalentX-HRMS-sub003/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=directory_repo.go -destination=mock/directory_repo_mock.go -package=mock
type Repository interface {
	ExistsInOrg(ctx context.Context, orgID string, employeeID string) (bool, error)
	FindActiveByOrg(ctx context.Context, orgID string) ([]Employee, error)
	FindCurrentCompensation(ctx context.Context, orgID string, employeeID string) (*Compensation, error)
	FindCurrentCompensationsByOrg(ctx context.Context, orgID string) ([]Compensation, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ExistsInOrg(ctx context.Context, orgID string, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Scopes(tenant.Scope(orgID)).
		Where("id = ?", employeeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindActiveByOrg(ctx context.Context, orgID string) ([]Employee, error) {
	var employees []Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(orgID)).
		Where("employment_status = ?", EmploymentStatusActive).
		Order("full_name ASC").
		Find(&employees).Error
	return employees, err
}

func (r *repository) FindCurrentCompensation(ctx context.Context, orgID string, employeeID string) (*Compensation, error) {
	var comp Compensation
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(orgID)).
		Where("employee_id = ?", employeeID).
		Where("effective_date <= NOW()").
		Order("effective_date DESC").
		First(&comp).Error
	if err != nil {
		return nil, err
	}
	return &comp, nil
}

func (r *repository) FindCurrentCompensationsByOrg(ctx context.Context, orgID string) ([]Compensation, error) {
	var comps []Compensation
	// Latest effective row per employee.
	err := r.db.WithContext(ctx).
		Raw(`
			SELECT DISTINCT ON (employee_id) *
			FROM employee_compensations
			WHERE org_id = ? AND effective_date <= NOW()
			ORDER BY employee_id, effective_date DESC
		`, orgID).
		Scan(&comps).Error
	return comps, err
}
