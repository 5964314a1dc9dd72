package apierror

// Short machine-readable error codes carried in the "error" field of every
// error envelope. Clients branch on these, never on the message text.
const (
	// CodeValidation indicates request validation failed (400)
	CodeValidation = "validation_error"

	// CodeDuplicateCheckin indicates a second check-in for the same day (400).
	// Clients treat this as a normal, recoverable condition.
	CodeDuplicateCheckin = "duplicate_checkin"

	// CodeDuplicateSummary indicates a weekly-summary write race that could
	// not be resolved by the retry (500)
	CodeDuplicateSummary = "duplicate_summary"

	// CodeNotFound indicates the requested resource does not exist (404)
	CodeNotFound = "not_found"

	// CodeInternal indicates an unexpected server error (500)
	CodeInternal = "internal_error"
)
