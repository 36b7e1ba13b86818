package inputvalidation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/cockroachdb/errors"
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const creditCardNumberLength = 16

var (
	alphabeticRegexp = regexp.MustCompile(`[^[:alpha:]]`)
	numberRegexp     = regexp.MustCompile(`\D`)
)

// textRule rejects free text that is all digits and punctuation. With
// cardCheck set it only rejects text that looks like a card number.
type textRule struct {
	cardCheck bool
}

// HasAlphabetic returns a rule that checks text contains at least one letter.
func HasAlphabetic() Rule {
	return textRule{}
}

// NonCreditCardNumber returns a rule that rejects text that is a 16 digit
// card number (issuer prefix and Luhn checksum included), so card data typed
// into a free-text prompt is never accepted.
func NonCreditCardNumber() Rule {
	return textRule{cardCheck: true}
}

func (r textRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if r.cardCheck {
		appendDescription(ref, "not a card number")
		return nil
	}
	appendDescription(ref, "at least one letter")
	return nil
}

func (r textRule) Validate(value any) error {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.String {
		return validation.NewInternalError(errors.Newf("expected string, got %T", value))
	}

	v := strings.TrimSpace(rv.String())
	if v == "" || alphabeticRegexp.ReplaceAllString(v, "") != "" {
		return nil
	}
	if !r.cardCheck {
		return validation.NewError("validation_has_alphabetic", "must contain at least one alphabetic character")
	}
	if len(numberRegexp.ReplaceAllString(v, "")) != creditCardNumberLength || !govalidator.IsCreditCard(v) {
		return nil
	}
	return validation.NewError("validation_credit_card_number", "must not be a credit card number")
}
