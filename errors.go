package inputvalidation

import (
	"github.com/cockroachdb/errors"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// ErrMalformedInput marks an attempt whose token did not parse as the
	// reader's type. It is only observed through Attempt.Err; Read retries.
	ErrMalformedInput = errors.New("malformed input")

	// ErrOutOfPolicy marks an attempt whose token parsed but failed the
	// bound, a check, or the menu range. Read retries.
	ErrOutOfPolicy = errors.New("input out of policy")

	// ErrInputClosed is returned by Read when the input ends before a value
	// is accepted.
	ErrInputClosed = errors.New("input closed")

	// ErrAttemptsExhausted is returned by Read when Policy.MaxAttempts
	// attempts were rejected.
	ErrAttemptsExhausted = errors.New("attempts exhausted")
)

// Outcome classifies a single attempt.
type Outcome int

const (
	Accepted Outcome = iota
	Malformed
	OutOfPolicy
)

func (o Outcome) String() string {
	switch o {
	case Accepted:
		return "accepted"
	case Malformed:
		return "malformed"
	case OutOfPolicy:
		return "out of policy"
	}
	return "unknown"
}

// Attempt is reported to the attempt hook after every read, accepted or not.
type Attempt struct {
	Number  int
	Raw     string
	Outcome Outcome
	Err     error
}

func outOfPolicy(err error) error {
	return errors.Mark(err, ErrOutOfPolicy)
}

func outcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return Accepted
	case errors.Is(err, ErrMalformedInput):
		return Malformed
	default:
		return OutOfPolicy
	}
}

// isInternal reports whether err comes from a check that could not be
// applied, such as a rule given a value of a type it does not handle.
func isInternal(err error) bool {
	var ie validation.InternalError
	return err != nil && errors.As(err, &ie) && ie.InternalError() != nil
}
