package inputvalidation

import (
	"cmp"
	"context"

	"github.com/cockroachdb/errors"
	"github.com/getkin/kin-openapi/openapi3"
)

// Reader prompts for a value of type T until one is accepted.
type Reader[T cmp.Ordered] struct {
	cfg   Config[T]
	rules []Rule
	hint  string
	s     *session
}

// NewReader validates cfg and returns a Reader taking tokens from src and
// writing prompts to out.
func NewReader[T cmp.Ordered](src TokenSource, out Display, cfg Config[T], opts ...Option) (*Reader[T], error) {
	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid reader config")
	}
	s, err := newSession(src, out, cfg.Policy, opts)
	if err != nil {
		return nil, err
	}
	s.wholeLine = cfg.WholeLine

	r := &Reader[T]{cfg: cfg, rules: cfg.rules(), s: s}
	if r.hint, err = Hint("value", r.rules...); err != nil {
		return nil, errors.Wrap(err, "describing rules")
	}
	return r, nil
}

// Read prompts until a value is accepted and returns it. Malformed and
// out-of-policy input is answered with the invalid message and another
// prompt; it never surfaces as an error. Read fails only when the input
// ends (ErrInputClosed), Policy.MaxAttempts is reached
// (ErrAttemptsExhausted), ctx is done, or a collaborator fails.
func (r *Reader[T]) Read(ctx context.Context) (T, error) {
	return run(ctx, r.s, r.show, r.classify)
}

func (r *Reader[T]) show() error {
	prompt := r.cfg.Prompt
	if r.cfg.ShowHint && r.hint != "" {
		prompt += " [" + r.hint + "]"
	}
	return r.s.out.WriteLine(prompt)
}

func (r *Reader[T]) classify(raw string) (T, error) {
	v, err := parseToken[T](raw)
	if err != nil {
		return v, err
	}
	for _, rule := range r.rules {
		if err := rule.Validate(v); err != nil {
			return v, outOfPolicy(err)
		}
	}
	return v, nil
}

// Hint returns the summary of the bound and checks, or "" for an
// unrestricted reader.
func (r *Reader[T]) Hint() string {
	return r.hint
}

// Config returns the reader's configuration.
func (r *Reader[T]) Config() Config[T] {
	return r.cfg
}

// Schema describes the values the reader accepts.
func (r *Reader[T]) Schema() (*openapi3.SchemaRef, error) {
	var zero T
	ref := &openapi3.SchemaRef{Value: scalarSchema(zero)}
	ref.Value.Description = r.cfg.Prompt

	parent := openapi3.NewObjectSchema()
	for _, rule := range r.rules {
		if err := rule.Describe("value", parent, ref); err != nil {
			return nil, err
		}
	}
	return ref, nil
}
