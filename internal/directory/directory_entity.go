package directory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models over the HR master data tables. The payroll service never
// writes these; employee administration lives in another deployment.

type Employee struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrgID            uuid.UUID `gorm:"type:uuid;index"`
	FullName         string
	Email            string
	EmploymentStatus string `gorm:"type:varchar(20)"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (Employee) TableName() string {
	return "employees"
}

type Compensation struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrgID         uuid.UUID       `gorm:"type:uuid;index"`
	EmployeeID    uuid.UUID       `gorm:"type:uuid;index"`
	BaseSalary    decimal.Decimal `gorm:"type:numeric(14,2)"`
	Allowance     decimal.Decimal `gorm:"type:numeric(14,2)"`
	EffectiveDate time.Time       `gorm:"type:date"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Compensation) TableName() string {
	return "employee_compensations"
}

const EmploymentStatusActive = "ACTIVE"
