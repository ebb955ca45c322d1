package directoryerrors

import (
	"net/http"

	"github.com/Ashishbhardwajofficial/TalentX-HRMS-sub003/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found in this organization",
		http.StatusNotFound,
	)
	ErrCompensationNotFound = apperror.New(
		apperror.CodeNotFound,
		"no effective compensation for this employee",
		http.StatusNotFound,
	)
)
