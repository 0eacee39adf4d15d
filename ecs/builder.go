package ecs

import (
	"log/slog"
)

// Plugin extends a World during assembly. Build receives the World being
// configured and runs once per time the plugin is added.
type Plugin interface {
	Name() string
	Build(w *World)
}

// Builder configures a World before it is used.
// Use NewBuilder() to create a builder and chain configuration methods.
type Builder struct {
	logger        *slog.Logger
	plugins       []Plugin
	postInitHooks []func(*World)
}

// NewBuilder creates a new World builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Logger sets the logger the World and its plugins log through.
// Defaults to slog.Default().
func (b *Builder) Logger(l *slog.Logger) *Builder {
	b.logger = l
	return b
}

// Plugin adds a plugin. Plugins are built in the order they were added.
func (b *Builder) Plugin(p Plugin) *Builder {
	if p != nil {
		b.plugins = append(b.plugins, p)
	}
	return b
}

// PostInit registers a callback run after every plugin has been built.
func (b *Builder) PostInit(hook func(*World)) *Builder {
	if hook != nil {
		b.postInitHooks = append(b.postInitHooks, hook)
	}
	return b
}

// Init creates the World, builds all plugins into it and runs post-init
// callbacks. The returned World is ready for entity traffic.
func (b *Builder) Init() *World {
	w := newWorld(b.logger)

	for _, p := range b.plugins {
		w.AddPlugin(p)
	}

	for _, hook := range b.postInitHooks {
		hook(w)
	}

	w.logger.Debug("ecs: world initialized", "plugins", len(b.plugins))
	return w
}

// AddPlugin builds p into the World. It must run before concurrent entity
// traffic begins. Adding the same plugin twice builds it twice.
func (w *World) AddPlugin(p Plugin) {
	if p == nil {
		return
	}

	w.pluginsMu.Lock()
	w.plugins = append(w.plugins, p.Name())
	w.pluginsMu.Unlock()

	p.Build(w)
	w.logger.Debug("ecs: plugin built", "plugin", p.Name())
}

// Plugins returns the names of plugins built into the World, in build order.
func (w *World) Plugins() []string {
	w.pluginsMu.Lock()
	defer w.pluginsMu.Unlock()

	out := make([]string, len(w.plugins))
	copy(out, w.plugins)
	return out
}
