package inputvalidation_test

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v "github.com/Gobd/inputvalidation"
)

func fruitMenu(policy v.Policy) v.MenuConfig {
	return v.MenuConfig{
		Options: []string{"Pick one", "Apple", "Orange", "Steak", "Fried Chicken"},
		Policy:  policy,
	}
}

func TestMenu_RetriesUntilInRange(t *testing.T) {
	var attempts []v.Attempt
	m, err := v.NewMenu(source("0\n5\n2\n"), &recorder{}, fruitMenu(quiet("Invalid")),
		v.WithAttemptHook(func(a v.Attempt) { attempts = append(attempts, a) }))
	require.NoError(t, err)

	choice, err := m.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, choice)
	assert.Equal(t, "Orange", m.Label(choice))
	assert.Equal(t, []v.Outcome{v.OutOfPolicy, v.OutOfPolicy, v.Accepted}, outcomes(attempts))
	assert.EqualError(t, attempts[0].Err, "must be between 1 and 4")
}

func TestMenu_RejectsNegative(t *testing.T) {
	var attempts []v.Attempt
	m, err := v.NewMenu(source("-1\n1\n"), &recorder{}, fruitMenu(quiet("Invalid")),
		v.WithAttemptHook(func(a v.Attempt) { attempts = append(attempts, a) }))
	require.NoError(t, err)

	choice, err := m.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, choice)
	assert.Equal(t, []v.Outcome{v.OutOfPolicy, v.Accepted}, outcomes(attempts))
}

func TestMenu_Rendering(t *testing.T) {
	display := &recorder{}
	m, err := v.NewMenu(source("x 3\n4\n"), display,
		fruitMenu(v.Policy{Invalid: "Invalid", Pause: true, Clear: true}))
	require.NoError(t, err)

	choice, err := m.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, choice, "a malformed token drops the rest of its line")

	screen := []string{
		"clear", "line:Pick one", "line:1) Apple", "line:2) Orange", "line:3) Steak", "line:4) Fried Chicken",
	}
	want := append(append([]string{}, screen...), "line:Invalid", "pause")
	want = append(want, screen...)
	assert.Equal(t, want, display.events)
}

func TestMenu_TrimsLabels(t *testing.T) {
	options := []string{"  Pick one ", " Apple", "Orange  "}
	m, err := v.NewMenu(source(""), &recorder{}, v.MenuConfig{
		Options: options,
		Policy:  quiet("\n\t**Invalid Input**\n"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Pick one", m.Header())
	assert.Equal(t, "Apple", m.Label(1))
	assert.Equal(t, "Orange", m.Label(2))
	assert.Equal(t, "", m.Label(3))
	assert.Equal(t, 2, m.Items())
	assert.Equal(t, " Apple", options[1], "caller's options are not modified")
}

func TestMenu_KeepsInvalidMessage(t *testing.T) {
	display := &recorder{}
	m, err := v.NewMenu(source("9\n1\n"), display, fruitMenu(quiet("\n\t**Invalid Input**\n")))
	require.NoError(t, err)

	_, err = m.Read(context.Background())
	require.NoError(t, err)
	assert.Contains(t, display.events, "line:\n\t**Invalid Input**\n")
}

func TestMenu_InputClosed(t *testing.T) {
	m, err := v.NewMenu(source("7\n"), &recorder{}, fruitMenu(quiet("Invalid")))
	require.NoError(t, err)

	_, err = m.Read(context.Background())
	assert.True(t, errors.Is(err, v.ErrInputClosed))
}

func TestNewMenu_InvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		options []string
		want    string
	}{
		{name: "no options", options: nil, want: "options: cannot be blank"},
		{name: "header only", options: []string{"Pick one"}, want: "options: the length must be no less than 2"},
		{name: "blank label", options: []string{"Pick one", "  "}, want: "cannot be blank"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.NewMenu(source(""), &recorder{}, v.MenuConfig{Options: tt.options})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestMenu_Schema(t *testing.T) {
	m, err := v.NewMenu(source(""), &recorder{}, fruitMenu(quiet("Invalid")))
	require.NoError(t, err)

	s := m.Schema().Value
	require.NotNil(t, s.Min)
	require.NotNil(t, s.Max)
	assert.Equal(t, 1.0, *s.Min)
	assert.Equal(t, 4.0, *s.Max)
	assert.Equal(t, []any{1, 2, 3, 4}, s.Enum)
	assert.Equal(t, "Pick one", s.Description)
	assert.Equal(t, []string{"Apple", "Orange", "Steak", "Fried Chicken"}, s.Extensions["x-labels"])
}
