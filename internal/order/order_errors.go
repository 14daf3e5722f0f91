package order

import (
	"net/http"

	"github.com/aman52kwah/kaynetartsphere/internal/pkg/apperror"
)

var (
	ErrOrderNotFound           = apperror.New(apperror.CodeNotFound, "Order not found", http.StatusNotFound)
	ErrInvalidOrderID          = apperror.New(apperror.CodeInvalidInput, "Invalid order id", http.StatusBadRequest)
	ErrInvalidStatusTransition = apperror.New(apperror.CodeConflict, "Order cannot move to that status", http.StatusConflict)
	ErrUnknownStatus           = apperror.New(apperror.CodeInvalidInput, "Unknown order status", http.StatusBadRequest)
	ErrOrderFailed             = apperror.New(apperror.CodeInternalError, "Failed to process order", http.StatusInternalServerError)
	ErrNotOrderOwner           = apperror.New(apperror.CodeForbidden, "Order belongs to another customer", http.StatusForbidden)
)
