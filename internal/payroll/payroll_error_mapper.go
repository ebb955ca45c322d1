package payroll

import (
	"errors"
	"strings"

	payrollerrors "github.com/Ashishbhardwajofficial/TalentX-HRMS-sub003/internal/payroll/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRunError translates storage errors from run lookups and writes.
func mapRunError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payrollerrors.ErrRunNotFound
	}

	return mapConstraintError(err)
}

// mapPayslipError does the same for payslip lookups and writes.
func mapPayslipError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payrollerrors.ErrPayslipNotFound
	}

	return mapConstraintError(err)
}

func mapConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			if pgErr.ConstraintName == "idx_payslip_employee_period" {
				return payrollerrors.ErrDuplicatePayslip
			}
		}
	}

	// Drivers that do not expose pgconn errors still report the constraint
	// in the message.
	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "idx_payslip_employee_period") {
		return payrollerrors.ErrDuplicatePayslip
	}

	return err
}
