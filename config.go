package inputvalidation

import (
	"cmp"
)

// Policy holds the reject-path settings shared by Reader and Menu.
type Policy struct {
	// Invalid is written after every rejected attempt.
	Invalid string `json:"invalid" mapstructure:"invalid" transform:"-"`
	// Pause waits for acknowledgment after the invalid message.
	Pause bool `json:"pause" mapstructure:"pause"`
	// Clear clears the display before every prompt.
	Clear bool `json:"clear" mapstructure:"clear"`
	// MaxAttempts bounds the number of attempts per Read. Zero retries
	// until a value is accepted or the input ends.
	MaxAttempts int `json:"max_attempts" mapstructure:"max_attempts"`
}

// DefaultPolicy returns a policy that pauses after invalid input and clears
// the display before each prompt, retrying without limit.
func DefaultPolicy(invalid string) Policy {
	return Policy{
		Invalid: invalid,
		Pause:   true,
		Clear:   true,
	}
}

func (p *Policy) Rules() []*FieldRules {
	return []*FieldRules{
		Field(&p.Invalid, Describe("shown after every rejected attempt")),
		Field(&p.Pause),
		Field(&p.Clear),
		Field(&p.MaxAttempts, Min(0)),
	}
}

// Config configures a Reader.
type Config[T cmp.Ordered] struct {
	// Prompt is written before every attempt.
	Prompt string `json:"prompt"`
	// Bound, when set, gates acceptance on a comparison with its reference.
	Bound *Bound[T] `json:"bound,omitempty"`
	// Checks are extra acceptance rules applied after the bound.
	Checks []Rule `json:"-"`
	// WholeLine reads a full line per attempt instead of one
	// whitespace-delimited token. Numeric readers ignore blanks around the
	// number; text readers get the line verbatim (see WithSanitizers).
	WholeLine bool `json:"whole_line"`
	// ShowHint appends a summary of the bound and checks to the prompt.
	ShowHint bool `json:"show_hint"`
	Policy
}

func (c *Config[T]) Rules() []*FieldRules {
	return []*FieldRules{
		Field(&c.Prompt, Required),
		Field(&c.Bound),
		Field(&c.WholeLine),
		Field(&c.ShowHint),
		Field(&c.Policy),
	}
}

// rules returns the bound rule followed by the checks.
func (c *Config[T]) rules() []Rule {
	var rules []Rule
	if c.Bound != nil {
		rules = append(rules, c.Bound.Rule())
	}
	return append(rules, c.Checks...)
}

// MenuConfig configures a Menu. Options[0] is the header line; Options[1:]
// are the selectable items, numbered from 1.
type MenuConfig struct {
	Options []string `json:"options" mapstructure:"options"`
	Policy  `mapstructure:",squash"`
}

func (m *MenuConfig) Rules() []*FieldRules {
	return []*FieldRules{
		Field(&m.Options, Required, Length(2, 0), Each(Required)),
		Field(&m.Policy),
	}
}
