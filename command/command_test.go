package command

import (
	"testing"

	"github.com/df-mc/dragonfly/server/cmd"
	"github.com/stretchr/testify/require"

	"github.com/oriumgames/expects"
	_ "github.com/oriumgames/expects/example/vehicle"
)

func TestLines(t *testing.T) {
	lines := Lines(expects.Registrations())

	require.Equal(t, []string{
		"github.com/oriumgames/expects/example/physics.Anchor expects github.com/oriumgames/expects/example/physics.Position",
		"github.com/oriumgames/expects/example/physics.Body expects github.com/oriumgames/expects/example/physics.Position, github.com/oriumgames/expects/example/physics.Velocity",
		"github.com/oriumgames/expects/example/vehicle.Car expects github.com/oriumgames/expects/example/physics.Body, github.com/oriumgames/expects/example/physics.Position, github.com/oriumgames/expects/example/vehicle.Wheel",
	}, lines)
}

func TestLinesEmpty(t *testing.T) {
	require.Empty(t, Lines(nil))
}

func TestListRun(t *testing.T) {
	var o cmd.Output
	List{}.Run(nil, &o, nil)

	require.Equal(t, 3, o.MessageCount())
	require.Zero(t, o.ErrorCount())
}

func TestNew(t *testing.T) {
	c := New()

	require.Equal(t, "expectations", c.Name())
	require.Equal(t, []string{"expects"}, c.Aliases())
}
