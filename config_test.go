package inputvalidation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingRules(t *testing.T) {
	assert.Empty(t, MissingRules(&Config[int]{}))
	assert.Empty(t, MissingRules(&Config[string]{}))
	assert.Empty(t, MissingRules(&MenuConfig{}))
	assert.Empty(t, MissingRules(&Policy{}))
}

type partialConfig struct {
	Name    string `json:"name"`
	Comment string `json:"comment"`
	Secret  string `json:"-"`
	Policy
}

func (p *partialConfig) Rules() []*FieldRules {
	return []*FieldRules{
		Field(&p.Name, Required),
		Field(&p.Policy),
	}
}

func TestMissingRules_ReportsUncovered(t *testing.T) {
	assert.Equal(t, []string{"comment"}, MissingRules(&partialConfig{}))
	assert.Empty(t, MissingRules(&partialConfig{}, "comment"))
	assert.Nil(t, MissingRules(&struct{ A int }{}))
}

func TestValidate_EmbeddedPolicy(t *testing.T) {
	err := Validate(&partialConfig{Name: "x", Policy: Policy{MaxAttempts: -2}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_attempts: must be no less than 0")

	require.NoError(t, Validate(&partialConfig{Name: "x"}))
}

func TestValidate_Slices(t *testing.T) {
	menus := []MenuConfig{
		{Options: []string{"a", "b"}},
		{Options: []string{"a"}},
	}
	err := Validate(menus)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1: (options: the length must be no less than 2.)")

	require.NoError(t, Validate(nil))
	require.NoError(t, Validate("not a ruler"))
}

func TestDefaultPolicy(t *testing.T) {
	p := DefaultPolicy("Try again")
	assert.Equal(t, Policy{Invalid: "Try again", Pause: true, Clear: true}, p)
	require.NoError(t, Validate(&p))
}

func TestConfigSchema(t *testing.T) {
	ref, err := ConfigSchema(MenuConfig{})
	require.NoError(t, err)

	s := ref.Value
	require.Contains(t, s.Properties, "options")
	assert.Contains(t, s.Required, "options")
	assert.Equal(t, uint64(2), s.Properties["options"].Value.MinItems)

	require.Contains(t, s.Properties, "max_attempts")
	require.NotNil(t, s.Properties["max_attempts"].Value.Min)
	assert.Equal(t, 0.0, *s.Properties["max_attempts"].Value.Min)
	assert.Equal(t, "shown after every rejected attempt", s.Properties["invalid"].Value.Description)
}

func TestConfigSchema_Reader(t *testing.T) {
	ref, err := ConfigSchema(Config[int]{})
	require.NoError(t, err)

	s := ref.Value
	assert.Contains(t, s.Required, "prompt")
	assert.NotContains(t, s.Properties, "Checks")
}
