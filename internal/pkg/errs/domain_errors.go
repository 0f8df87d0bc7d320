package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Material errors
	ErrMaterialNotFound    = errors.New("material not found")
	ErrMaterialUnavailable = errors.New("material not available")
	ErrInsufficientStock   = errors.New("insufficient stock")

	// Solicitud errors
	ErrSolicitudNotFound   = errors.New("solicitud not found")
	ErrSolicitudNotPending = errors.New("solicitud is not pending")
	ErrEmptySolicitud      = errors.New("solicitud has no items")
	ErrDueDateNotFuture    = errors.New("due date must be in the future")

	// Prestamo errors
	ErrPrestamoNotFound  = errors.New("prestamo not found")
	ErrPrestamoNotActive = errors.New("prestamo is not active")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
