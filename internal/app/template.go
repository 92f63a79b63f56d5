package app

import (
	"strings"

	"github.com/bft-labs/linebatch/internal/domain"
)

// CommandTemplate is a program name and an argument list in which every
// occurrence of a tag is replaced by the batch payload.
type CommandTemplate struct {
	program string
	args    []string
	tag     string
}

// NewCommandTemplate builds a template from command tokens: the first token is
// the program, the rest are argument templates.
func NewCommandTemplate(tokens []string, tag string) (*CommandTemplate, error) {
	if len(tokens) == 0 {
		return nil, domain.ErrMissingCommand
	}
	if tokens[0] == "" {
		return nil, domain.ErrInvalidCommand
	}

	args := make([]string, len(tokens)-1)
	copy(args, tokens[1:])

	return &CommandTemplate{
		program: tokens[0],
		args:    args,
		tag:     tag,
	}, nil
}

// Program returns the program name.
func (t *CommandTemplate) Program() string {
	return t.program
}

// Render returns a fresh argument list with the tag replaced by payload.
func (t *CommandTemplate) Render(payload string) []string {
	out := make([]string, len(t.args))
	for i, arg := range t.args {
		out[i] = strings.ReplaceAll(arg, t.tag, payload)
	}
	return out
}
