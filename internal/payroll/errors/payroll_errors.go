package payrollerrors

import (
	"net/http"

	"github.com/Ashishbhardwajofficial/TalentX-HRMS-sub003/internal/shared/apperror"
)

var (
	ErrInvalidOrgID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid organization id",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"period_start must be before or equal period_end",
		http.StatusBadRequest,
	)
	ErrInvalidPayDate = apperror.New(
		apperror.CodeInvalidInput,
		"pay_date must not be before period_end",
		http.StatusBadRequest,
	)
	ErrUnknownItemType = apperror.New(
		apperror.CodeInvalidInput,
		"item_type must be EARNING, DEDUCTION or TAX",
		http.StatusBadRequest,
	)
	ErrInvalidStatusFilter = apperror.New(
		apperror.CodeInvalidInput,
		"invalid payroll run status filter",
		http.StatusBadRequest,
	)
	ErrRunNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll run not found",
		http.StatusNotFound,
	)
	ErrPayslipNotFound = apperror.New(
		apperror.CodeNotFound,
		"payslip not found",
		http.StatusNotFound,
	)
	ErrCalculateRequiresEditable = apperror.New(
		apperror.CodeInvalidState,
		"run can only be calculated while status is DRAFT or ERROR",
		http.StatusBadRequest,
	)
	ErrApproveRequiresCalculated = apperror.New(
		apperror.CodeInvalidState,
		"cannot approve a run not in CALCULATED",
		http.StatusBadRequest,
	)
	ErrPayRequiresApproved = apperror.New(
		apperror.CodeInvalidState,
		"cannot pay a run not in APPROVED",
		http.StatusBadRequest,
	)
	ErrRunNotEditable = apperror.New(
		apperror.CodeInvalidState,
		"payslips can only be modified while the run is DRAFT or ERROR",
		http.StatusBadRequest,
	)
	ErrRunNotDeletable = apperror.New(
		apperror.CodeInvalidState,
		"run can only be deleted while status is DRAFT or ERROR",
		http.StatusBadRequest,
	)
	ErrPaidRunImmutable = apperror.New(
		apperror.CodeInvalidState,
		"a PAID run is an immutable archival record",
		http.StatusBadRequest,
	)
	ErrDuplicatePayslip = apperror.New(
		apperror.CodeConflict,
		"a payslip already exists for this employee and pay period",
		http.StatusConflict,
	)
	ErrConcurrentModification = apperror.New(
		apperror.CodeConflict,
		"the run was modified concurrently, re-read and retry",
		http.StatusConflict,
	)
	ErrDocumentsRequireApproval = apperror.New(
		apperror.CodeInvalidState,
		"payslip documents can only be rendered for APPROVED or PAID runs",
		http.StatusBadRequest,
	)
	ErrDocumentNotGenerated = apperror.New(
		apperror.CodeNotFound,
		"payslip document is not generated yet",
		http.StatusNotFound,
	)
)
