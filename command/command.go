// Package command exposes the registered component expectations as a
// Dragonfly command.
package command

import (
	"sort"
	"strings"

	"github.com/df-mc/dragonfly/server/cmd"
	"github.com/df-mc/dragonfly/server/world"

	"github.com/oriumgames/expects"
)

// New returns the /expectations command. Register it with cmd.Register.
func New() cmd.Command {
	return cmd.New("expectations", "Lists component expectations.", []string{"expects"}, List{})
}

// List prints every declaring component and the components it expects.
type List struct{}

// Run implements cmd.Runnable.
func (List) Run(src cmd.Source, o *cmd.Output, tx *world.Tx) {
	lines := Lines(expects.Registrations())
	if len(lines) == 0 {
		o.Print("No component expectations are declared.")
		return
	}
	for _, line := range lines {
		o.Print(line)
	}
}

// Lines formats registrations as "<type> expects <a>, <b>", sorted by type
// name.
func Lines(regs []expects.Registration) []string {
	lines := make([]string, 0, len(regs))
	for _, r := range regs {
		lines = append(lines, r.Name()+" expects "+strings.Join(r.ExpectedNames(), ", "))
	}
	sort.Strings(lines)
	return lines
}
