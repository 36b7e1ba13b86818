package inputvalidation

import (
	"cmp"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var allComparisons = []Comparison{
	CompareNone, LessThan, LessOrEqual, GreaterThan, GreaterOrEqual, Equal, NotEqual,
}

// relation is the reference truth table for "v kind ref".
func relation[T cmp.Ordered](kind Comparison, v, ref T) bool {
	switch kind {
	case CompareNone:
		return true
	case LessThan:
		return v < ref
	case LessOrEqual:
		return v <= ref
	case GreaterThan:
		return v > ref
	case GreaterOrEqual:
		return v >= ref
	case Equal:
		return v == ref
	case NotEqual:
		return v != ref
	}
	return false
}

func TestCompare_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		kind := rapid.SampledFrom(allComparisons).Draw(t, "kind")
		ref := rapid.IntRange(-50, 50).Draw(t, "ref")
		v := rapid.IntRange(-50, 50).Draw(t, "v")

		err := Compare(kind, ref).Validate(v)
		if relation(kind, v, ref) != (err == nil) {
			t.Fatalf("%d %s %d: got err %v", v, kind, ref, err)
		}
	})
}

func TestCompare_PropertyText(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		kind := rapid.SampledFrom(allComparisons).Draw(t, "kind")
		ref := rapid.StringMatching(`[a-c]{0,3}`).Draw(t, "ref")
		v := rapid.StringMatching(`[a-c]{0,3}`).Draw(t, "v")

		err := Compare(kind, ref).Validate(v)
		if relation(kind, v, ref) != (err == nil) {
			t.Fatalf("%q %s %q: got err %v", v, kind, ref, err)
		}
	})
}

func TestCompare_ZeroIsChecked(t *testing.T) {
	require.Error(t, Compare(GreaterOrEqual, 18).Validate(0))
	require.NoError(t, Compare(Equal, 0).Validate(0))
	require.Error(t, Compare(NotEqual, "").Validate(""))
}

func TestCompare_Errors(t *testing.T) {
	err := Compare(GreaterOrEqual, 18).Validate(10)
	require.EqualError(t, err, "must be greater than or equal to 18")

	err = Compare(LessThan, 2.5).Validate(3)
	require.EqualError(t, err, "expected float64, got int")
}

func TestComparison_String(t *testing.T) {
	tests := map[Comparison]string{
		CompareNone:    "none",
		LessThan:       "less than",
		LessOrEqual:    "less than or equal to",
		GreaterThan:    "greater than",
		GreaterOrEqual: "greater than or equal to",
		Equal:          "equal to",
		NotEqual:       "not equal to",
		Comparison(42): "Comparison(42)",
	}
	for c, want := range tests {
		assert.Equal(t, want, c.String())
	}
}

func TestBound_Validate(t *testing.T) {
	require.NoError(t, Validate(Bounded(LessThan, 0)))
	require.NoError(t, Validate(Bounded(Equal, "yes")))

	err := Validate(Bounded(CompareNone, 5))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kind: cannot be blank")

	err = Validate(Bounded(Comparison(42), 5))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kind: must be one of")

	assert.Empty(t, MissingRules(&Bound[int]{}))
}

func TestCompare_Describe(t *testing.T) {
	tests := []struct {
		name  string
		rule  Rule
		check func(t *testing.T, s *openapi3.Schema)
	}{
		{
			name: "greater than",
			rule: Compare(GreaterThan, 3),
			check: func(t *testing.T, s *openapi3.Schema) {
				require.NotNil(t, s.Min)
				assert.Equal(t, 3.0, *s.Min)
				assert.True(t, s.ExclusiveMin)
			},
		},
		{
			name: "less or equal",
			rule: Compare(LessOrEqual, 9.5),
			check: func(t *testing.T, s *openapi3.Schema) {
				require.NotNil(t, s.Max)
				assert.Equal(t, 9.5, *s.Max)
				assert.False(t, s.ExclusiveMax)
			},
		},
		{
			name: "equal",
			rule: Compare(Equal, 7),
			check: func(t *testing.T, s *openapi3.Schema) {
				assert.Equal(t, []any{7}, s.Enum)
			},
		},
		{
			name: "not equal",
			rule: Compare(NotEqual, 0),
			check: func(t *testing.T, s *openapi3.Schema) {
				require.NotNil(t, s.Not)
				assert.Equal(t, []any{0}, s.Not.Value.Enum)
			},
		},
		{
			name: "text",
			rule: Compare(LessThan, "m"),
			check: func(t *testing.T, s *openapi3.Schema) {
				assert.Equal(t, `less than "m"`, s.Description)
				assert.Nil(t, s.Max)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema, ref := newTestSchemaRef()
			require.NoError(t, tt.rule.Describe("value", schema, ref))
			tt.check(t, ref.Value)
		})
	}
}
