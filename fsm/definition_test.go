package fsm

import (
	"testing"

	apperrors "github.com/goliatone/go-errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDefinition() Definition {
	return Definition{
		ID: "door",
		States: []StateDef{
			{Name: "closed", Initial: true},
			{Name: "open"},
			{Name: "locked", Final: true},
		},
		Transitions: []TransitionDef{
			{Event: "OPEN", From: "closed", To: "open"},
			{Event: "CLOSE", From: "open", To: "closed"},
			{Event: "LOCK", From: "closed", To: "locked"},
		},
	}
}

func TestDefinitionValidate(t *testing.T) {
	require.NoError(t, validDefinition().Validate())
}

func TestDefinitionValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Definition)
	}{
		{"missing id", func(d *Definition) { d.ID = "" }},
		{"no states", func(d *Definition) { d.States = nil }},
		{"blank state name", func(d *Definition) { d.States[1].Name = " " }},
		{"duplicate state", func(d *Definition) { d.States[1].Name = "closed" }},
		{"multiple initials", func(d *Definition) { d.States[1].Initial = true }},
		{"blank event", func(d *Definition) { d.Transitions[0].Event = "" }},
		{"unknown from", func(d *Definition) { d.Transitions[0].From = "nowhere" }},
		{"unknown target", func(d *Definition) { d.Transitions[0].To = "nowhere" }},
		{"duplicate transition", func(d *Definition) { d.Transitions[1] = d.Transitions[0] }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			def := validDefinition()
			tc.mutate(&def)
			err := def.Validate()
			require.Error(t, err)
			var ge *apperrors.Error
			require.ErrorAs(t, err, &ge)
			assert.Equal(t, ErrCodeInvalidDefinition, ge.TextCode)
		})
	}
}

func TestNewRejectsInvalidDefinition(t *testing.T) {
	def := validDefinition()
	def.ID = ""
	_, err := New(def)
	require.Error(t, err)
}
