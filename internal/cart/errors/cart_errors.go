package carterrors

import (
	"net/http"

	"github.com/louiscollinsjr/miere-app/internal/pkg/apperror"
)

var (
	ErrInvalidItem = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid cart item",
		http.StatusBadRequest,
	)

	ErrMissingSession = apperror.New(
		apperror.CodeInvalidInput,
		"Missing cart session",
		http.StatusBadRequest,
	)
)
