package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/linebatch/internal/domain"
)

func TestNewCommandTemplate_Errors(t *testing.T) {
	_, err := NewCommandTemplate(nil, "{}")
	assert.ErrorIs(t, err, domain.ErrMissingCommand)
	assert.EqualError(t, err, "Missing command.")

	_, err = NewCommandTemplate([]string{}, "{}")
	assert.ErrorIs(t, err, domain.ErrMissingCommand)

	_, err = NewCommandTemplate([]string{"", "x"}, "{}")
	assert.ErrorIs(t, err, domain.ErrInvalidCommand)
	assert.EqualError(t, err, "Invalid command.")
}

func TestCommandTemplate_Render(t *testing.T) {
	tests := []struct {
		name    string
		tokens  []string
		tag     string
		payload string
		want    []string
	}{
		{
			name:    "embedded tag",
			tokens:  []string{"cmd", "val={}"},
			tag:     "{}",
			payload: "A,B",
			want:    []string{"val=A,B"},
		},
		{
			name:    "tag only argument",
			tokens:  []string{"cmd", "{}"},
			tag:     "{}",
			payload: "A,B",
			want:    []string{"A,B"},
		},
		{
			name:    "argument without tag unchanged",
			tokens:  []string{"cmd", "-n", "{}"},
			tag:     "{}",
			payload: "x",
			want:    []string{"-n", "x"},
		},
		{
			name:    "every occurrence replaced",
			tokens:  []string{"cmd", "{}-{}"},
			tag:     "{}",
			payload: "x",
			want:    []string{"x-x"},
		},
		{
			name:    "custom tag",
			tokens:  []string{"cmd", "@@", "{}"},
			tag:     "@@",
			payload: "p",
			want:    []string{"p", "{}"},
		},
		{
			name:    "no arguments",
			tokens:  []string{"cmd"},
			tag:     "{}",
			payload: "p",
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := NewCommandTemplate(tt.tokens, tt.tag)
			require.NoError(t, err)
			assert.Equal(t, "cmd", tmpl.Program())
			assert.Equal(t, tt.want, tmpl.Render(tt.payload))
		})
	}
}

func TestCommandTemplate_RenderDoesNotMutateTemplate(t *testing.T) {
	tokens := []string{"cmd", "{}"}
	tmpl, err := NewCommandTemplate(tokens, "{}")
	require.NoError(t, err)

	assert.Equal(t, []string{"first"}, tmpl.Render("first"))
	assert.Equal(t, []string{"second"}, tmpl.Render("second"))
	assert.Equal(t, []string{"cmd", "{}"}, tokens)
}
