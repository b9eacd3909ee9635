package producterrors

import (
	"net/http"

	"github.com/louiscollinsjr/miere-app/internal/pkg/apperror"
)

var (
	ErrProductNotFound = apperror.New(
		apperror.CodeNotFound,
		"Product not found",
		http.StatusNotFound,
	)
)
