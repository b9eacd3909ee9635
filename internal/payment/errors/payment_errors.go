package paymenterrors

import (
	"net/http"

	"github.com/louiscollinsjr/miere-app/internal/pkg/apperror"
)

var (
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid amount specified",
		http.StatusBadRequest,
	)

	ErrNotConfigured = apperror.New(
		apperror.CodeNotConfigured,
		"Payment service is not configured",
		http.StatusInternalServerError,
	)
)
