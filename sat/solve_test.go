package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecker_Solve(t *testing.T) {
	type tc struct {
		name      string
		variables []Variable
		selected  []Identifier
		errs      bool
	}

	for _, tt := range []tc{
		{
			name: "no variables",
		},
		{
			name:      "single mandatory variable",
			variables: []Variable{NewVariable("a", Mandatory())},
			selected:  []Identifier{"a"},
		},
		{
			name: "mandatory dependency pulled in",
			variables: []Variable{
				NewVariable("a", Mandatory(), Dependency("b")),
				NewVariable("b"),
			},
			selected: []Identifier{"a", "b"},
		},
		{
			name: "mandatory and prohibited together",
			variables: []Variable{
				NewVariable("a", Mandatory(), Prohibited()),
			},
			errs: true,
		},
		{
			name: "conflict excludes one side",
			variables: []Variable{
				NewVariable("a", Mandatory(), Conflict("b")),
				NewVariable("b"),
			},
			selected: []Identifier{"a"},
		},
		{
			name: "conflicting mandatory pair",
			variables: []Variable{
				NewVariable("a", Mandatory(), Conflict("b")),
				NewVariable("b", Mandatory()),
			},
			errs: true,
		},
		{
			name: "dependency with no candidates",
			variables: []Variable{
				NewVariable("a", Mandatory(), Dependency()),
			},
			errs: true,
		},
		{
			name: "at most bounds the selection",
			variables: []Variable{
				NewVariable("a", Mandatory()),
				NewVariable("b", Mandatory()),
				NewVariable("lim", AtMost(2, "a", "b", "c")),
				NewVariable("c"),
			},
			selected: []Identifier{"a", "b"},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			ch, err := NewChecker(tt.variables)
			assert.NoError(t, err)

			selected, err := ch.Solve()
			if tt.errs {
				assert.Error(t, err)
				assert.IsType(t, NotSatisfiable{}, err)
				return
			}
			assert.NoError(t, err)
			ids := make([]Identifier, 0, len(selected))
			for _, v := range selected {
				ids = append(ids, v.Identifier())
			}
			for _, want := range tt.selected {
				assert.Contains(t, ids, want)
			}
		})
	}
}

func TestChecker_Check(t *testing.T) {
	ch, err := NewChecker([]Variable{
		NewVariable("a", Conflict("b")),
		NewVariable("b"),
		NewVariable("c"),
	})
	assert.NoError(t, err)

	t.Run("repeated queries with different assumptions", func(t *testing.T) {
		ok, err := ch.Check("a")
		assert.NoError(t, err)
		assert.True(t, ok)

		ok, err = ch.Check("a", "b")
		assert.NoError(t, err)
		assert.False(t, ok)

		ok, err = ch.Check("b", "c")
		assert.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestNewChecker_duplicate(t *testing.T) {
	_, err := NewChecker([]Variable{
		NewVariable("a"),
		NewVariable("a"),
	})
	assert.Error(t, err)
	assert.IsType(t, DuplicateIdentifier(""), err)
}

func TestNotSatisfiable_Error(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "constraints not satisfiable", NotSatisfiable{}.Error())
	})

	t.Run("lists conflicts", func(t *testing.T) {
		ns := NotSatisfiable{
			{Variable: NewVariable("a"), Constraint: Mandatory()},
		}
		assert.Contains(t, ns.Error(), "a is mandatory")
	})
}
