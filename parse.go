package inputvalidation

import (
	"cmp"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// parseToken converts one raw token into T. The whole token has to parse:
// "12abc" is malformed rather than 12 followed by "abc". NaN and infinities
// are malformed too, since they have no useful ordering against a bound.
// Surrounding blanks are ignored for numbers, which matters for whole-line
// reads; text is kept as is.
func parseToken[T cmp.Ordered](raw string) (T, error) {
	var v T
	rv := reflect.ValueOf(&v).Elem()
	num := strings.TrimSpace(raw)

	switch rv.Kind() {
	case reflect.String:
		rv.SetString(raw)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(num, 10, rv.Type().Bits())
		if err != nil {
			return v, malformed(raw, rv.Type(), err)
		}
		rv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := strconv.ParseUint(num, 10, rv.Type().Bits())
		if err != nil {
			return v, malformed(raw, rv.Type(), err)
		}
		rv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(num, rv.Type().Bits())
		if err != nil {
			return v, malformed(raw, rv.Type(), err)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return v, malformed(raw, rv.Type(), errors.New("not a finite number"))
		}
		rv.SetFloat(f)
	default:
		return v, validation.NewInternalError(errors.Newf("unsupported input type %s", rv.Type()))
	}
	return v, nil
}

func malformed(raw string, t reflect.Type, cause error) error {
	var numErr *strconv.NumError
	if errors.As(cause, &numErr) {
		cause = numErr.Err
	}
	return errors.Mark(errors.Wrapf(cause, "%q is not a valid %s", raw, t), ErrMalformedInput)
}
