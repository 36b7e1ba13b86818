package inputvalidation

import validation "github.com/go-ozzo/ozzo-validation/v4"

// ValidationErrors maps config field names to their validation errors.
// NewReader and NewMenu return it (wrapped) for a bad config; use
// errors.As to inspect individual fields.
type ValidationErrors = validation.Errors
