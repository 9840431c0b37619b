package domain

import "errors"

// Domain errors
var (
	ErrDescriptionRequired    = errors.New("description is required")
	ErrDescriptionTooLong     = errors.New("description exceeds maximum length")
	ErrInvalidAmount          = errors.New("amount must be a positive number")
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidCategory        = errors.New("category is not valid for the transaction type")
	ErrGoalNameRequired       = errors.New("goal name is required")
	ErrGoalNameTooLong        = errors.New("goal name exceeds maximum length")
	ErrInvalidTarget          = errors.New("target must be a positive number")
	ErrGoalNotFound           = errors.New("goal not found")
	ErrKeyNotFound            = errors.New("snapshot key not found")
	ErrInternalError          = errors.New("internal error")
)

// IsValidationError reports whether err is one of the input validation
// errors, as opposed to a not-found or storage failure.
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrDescriptionRequired,
		ErrDescriptionTooLong,
		ErrInvalidAmount,
		ErrInvalidTransactionType,
		ErrInvalidCategory,
		ErrGoalNameRequired,
		ErrGoalNameTooLong,
		ErrInvalidTarget,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
