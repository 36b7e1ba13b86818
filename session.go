package inputvalidation

import (
	"context"
	"io"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// TokenSource is where readers take their input from.
type TokenSource interface {
	// Token returns the next whitespace-delimited token, crossing line
	// breaks as needed.
	Token() (string, error)
	// Line returns the rest of the current line without its line ending.
	Line() (string, error)
	// DiscardLine drops everything up to and including the next line break.
	DiscardLine() error
}

// Display is where readers write prompts and messages.
type Display interface {
	WriteLine(s string) error
	Clear() error
	// Pause blocks until the user acknowledges, e.g. by pressing Enter.
	Pause() error
}

// Option configures the loop shared by Reader and Menu.
type Option func(*session)

// WithLogger sets the logger attempts are reported to. The default discards.
func WithLogger(l *zap.Logger) Option {
	return func(s *session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithAttemptHook registers f to be called after every attempt.
func WithAttemptHook(f func(Attempt)) Option {
	return func(s *session) {
		s.hook = f
	}
}

// WithSanitizers applies fns, in order, to each raw token before it is
// parsed. See the transform package for common ones.
func WithSanitizers(fns ...func(string) string) Option {
	return func(s *session) {
		s.sanitizers = append(s.sanitizers, fns...)
	}
}

// session is the prompt, read, classify, accept-or-reject loop.
type session struct {
	src        TokenSource
	out        Display
	policy     Policy
	wholeLine  bool
	log        *zap.Logger
	hook       func(Attempt)
	sanitizers []func(string) string
}

func newSession(src TokenSource, out Display, policy Policy, opts []Option) (*session, error) {
	if src == nil {
		return nil, errors.New("nil token source")
	}
	if out == nil {
		return nil, errors.New("nil display")
	}
	s := &session{
		src:    src,
		out:    out,
		policy: policy,
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// run loops until classify accepts a token. show writes the prompt; classify
// turns a raw token into a value or an error marked ErrMalformedInput or
// ErrOutOfPolicy. A validation.InternalError means a check cannot judge the
// value at all; retrying would never succeed, so it ends the loop.
func run[T any](ctx context.Context, s *session, show func() error, classify func(raw string) (T, error)) (T, error) {
	var zero T
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		if limit := s.policy.MaxAttempts; limit > 0 && attempt > limit {
			s.log.Warn("giving up on input", zap.Int("attempts", limit))
			return zero, errors.WithHint(
				errors.Mark(errors.Newf("no acceptable input after %d attempts", limit), ErrAttemptsExhausted),
				"set MaxAttempts to 0 to retry without limit")
		}

		if s.policy.Clear {
			if err := s.out.Clear(); err != nil {
				return zero, errors.Wrap(err, "clearing display")
			}
		}
		if err := show(); err != nil {
			return zero, errors.Wrap(err, "writing prompt")
		}

		raw, err := s.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return zero, errors.Mark(errors.Wrapf(err, "reading attempt %d", attempt), ErrInputClosed)
			}
			return zero, errors.Wrapf(err, "reading attempt %d", attempt)
		}

		value, verr := classify(raw)
		if isInternal(verr) {
			s.log.Error("input check failed", zap.Int("attempt", attempt), zap.String("raw", raw), zap.Error(verr))
			return zero, errors.Wrapf(verr, "checking attempt %d", attempt)
		}
		a := Attempt{Number: attempt, Raw: raw, Outcome: outcomeOf(verr), Err: verr}
		s.report(a)
		if verr == nil {
			return value, nil
		}

		if a.Outcome == Malformed && !s.wholeLine {
			if err := s.src.DiscardLine(); err != nil && !errors.Is(err, io.EOF) {
				return zero, errors.Wrap(err, "discarding input")
			}
		}
		if err := s.reject(); err != nil {
			return zero, err
		}
	}
}

func (s *session) next() (string, error) {
	var (
		raw string
		err error
	)
	if s.wholeLine {
		raw, err = s.src.Line()
	} else {
		raw, err = s.src.Token()
	}
	if err != nil {
		return "", err
	}
	for _, f := range s.sanitizers {
		raw = f(raw)
	}
	return raw, nil
}

func (s *session) reject() error {
	if err := s.out.WriteLine(s.policy.Invalid); err != nil {
		return errors.Wrap(err, "writing invalid message")
	}
	if s.policy.Pause {
		if err := s.out.Pause(); err != nil {
			if errors.Is(err, io.EOF) {
				return errors.Mark(errors.Wrap(err, "pausing"), ErrInputClosed)
			}
			return errors.Wrap(err, "pausing")
		}
	}
	return nil
}

func (s *session) report(a Attempt) {
	if a.Outcome == Accepted {
		s.log.Info("input accepted", zap.Int("attempt", a.Number), zap.String("raw", a.Raw))
	} else {
		s.log.Debug("input rejected",
			zap.Int("attempt", a.Number),
			zap.String("raw", a.Raw),
			zap.Stringer("outcome", a.Outcome),
			zap.Error(a.Err))
	}
	if s.hook != nil {
		s.hook(a)
	}
}
