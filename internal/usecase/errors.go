package usecase

import "loandesk/internal/pkg/errs"

// Markers shared across usecases for error categorization. Concrete causes
// stay attached via errs.Mark so logs keep the original failure.
var (
	ErrDomainValidation        = errs.ErrDomainValidation
	ErrDatabaseOperationFailed = errs.ErrDatabaseOperationFailed
)
