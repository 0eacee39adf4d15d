package expects

import (
	"fmt"

	"github.com/oriumgames/expects/ecs"
)

// Plugin enables validation of component expectations in a World.
//
// Building the plugin binds an on-add hook for every registered declaring
// type. When such a component is inserted, the hook panics if any expected
// component is missing from the entity:
//
//	github.com/acme/game.RoadNode expects github.com/acme/game.Transform but it was not found on entity 42v3
//
// Validation costs a lookup per expected component on every insertion of a
// declaring component. Leave the plugin out of production assemblies to
// disable it entirely.
//
// Add the plugin at most once per World; adding it twice binds every hook
// twice.
type Plugin struct{}

var _ ecs.Plugin = Plugin{}

// Name implements ecs.Plugin.
func (Plugin) Name() string {
	return "expects"
}

// Build implements ecs.Plugin.
func (Plugin) Build(w *ecs.World) {
	n := install(w, Registrations())
	w.Logger().Debug("expects: validation hooks installed", "contracts", n)
}

func install(w *ecs.World, regs []Registration) int {
	for _, r := range regs {
		r.Install(w)
	}
	return len(regs)
}

// validate is the on-add hook of a declaring component. It checks the
// expected components in declaration order and panics on the first one
// missing from the entity.
func (r Registration) validate(w ecs.DeferredWorld, ctx ecs.HookContext) {
	entity := w.Entity(ctx.Entity)
	for i, t := range r.expected {
		id, ok := w.Components().ID(t)
		if ok && entity.Contains(id) {
			continue
		}
		panic(fmt.Sprintf("%s expects %s but it was not found on entity %v", r.name, r.names[i], ctx.Entity))
	}
}
