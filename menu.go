package inputvalidation

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/Gobd/inputvalidation/transform"
)

// Menu prompts for a numbered selection and returns its 1-based index.
//
//	Pick one
//	1) Apple
//	2) Orange
type Menu struct {
	cfg MenuConfig
	s   *session
}

// NewMenu trims the option labels, validates cfg and returns a Menu.
func NewMenu(src TokenSource, out Display, cfg MenuConfig, opts ...Option) (*Menu, error) {
	cfg.Options = append([]string(nil), cfg.Options...)
	transform.StructTrimSpace(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid menu config")
	}
	s, err := newSession(src, out, cfg.Policy, opts)
	if err != nil {
		return nil, err
	}
	return &Menu{cfg: cfg, s: s}, nil
}

// Read shows the menu until a selection in [1, Items()] is entered and
// returns it. Errors are as for Reader.Read.
func (m *Menu) Read(ctx context.Context) (int, error) {
	return run(ctx, m.s, m.show, m.classify)
}

func (m *Menu) show() error {
	for i, opt := range m.cfg.Options {
		line := opt
		if i > 0 {
			line = fmt.Sprintf("%d) %s", i, opt)
		}
		if err := m.s.out.WriteLine(line); err != nil {
			return err
		}
	}
	return nil
}

func (m *Menu) classify(raw string) (int, error) {
	n, err := parseToken[int](raw)
	if err != nil {
		return 0, err
	}
	if n < 1 || n > m.Items() {
		return n, outOfPolicy(validation.NewError("validation_menu_range",
			fmt.Sprintf("must be between 1 and %d", m.Items())))
	}
	return n, nil
}

// Items returns the number of selectable items.
func (m *Menu) Items() int {
	return len(m.cfg.Options) - 1
}

// Label returns the text of item i (1-based), or "" when i is out of range.
func (m *Menu) Label(i int) string {
	if i < 1 || i > m.Items() {
		return ""
	}
	return m.cfg.Options[i]
}

// Header returns the line shown above the items.
func (m *Menu) Header() string {
	return m.cfg.Options[0]
}

// Schema describes the selections the menu accepts.
func (m *Menu) Schema() *openapi3.SchemaRef {
	s := openapi3.NewIntegerSchema().WithMin(1).WithMax(float64(m.Items()))
	s.Description = m.Header()
	enum := make([]any, m.Items())
	for i := range enum {
		enum[i] = i + 1
	}
	s.Enum = enum
	s.Extensions = map[string]any{"x-labels": m.cfg.Options[1:]}
	return &openapi3.SchemaRef{Value: s}
}
