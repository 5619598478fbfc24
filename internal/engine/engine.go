// Package engine compiles utility tokens into CSS declaration strings against
// the active theme.
package engine

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/stylekit/internal/cache"
	"github.com/alexisbeaulieu97/stylekit/internal/logger"
	"github.com/alexisbeaulieu97/stylekit/internal/ports"
	"github.com/alexisbeaulieu97/stylekit/internal/style"
	"github.com/alexisbeaulieu97/stylekit/internal/theme"
)

// ThemeDefinition is a custom theme registered at startup.
type ThemeDefinition struct {
	Name   string
	Config style.Config
}

// Options configures an Engine.
type Options struct {
	// Store persists the active theme name. Nil keeps it in memory only.
	Store  ports.Store
	Logger *logger.Logger
	// Themes are registered before the persisted theme is restored, so a
	// persisted custom theme survives a restart.
	Themes []ThemeDefinition
	// DefaultTheme is activated when nothing usable is persisted.
	DefaultTheme string
}

// Engine owns a theme registry and the tiered cache in front of the rule
// dispatcher. It is safe for concurrent use.
type Engine struct {
	registry *theme.Registry
	cache    *cache.Tiered
	log      *logger.Logger
}

// Resolution describes how a single token was resolved.
type Resolution struct {
	Token string `json:"token"`
	Rule  string `json:"rule"`
	CSS   string `json:"css"`
}

// New builds an Engine, registers opts.Themes and restores the persisted theme.
func New(opts Options) (*Engine, error) {
	e := &Engine{
		cache: cache.New(),
		log:   opts.Logger,
	}
	e.registry = theme.NewRegistry(theme.Options{
		Store:        opts.Store,
		Logger:       opts.Logger,
		OnInvalidate: e.clearCache,
	})

	for _, def := range opts.Themes {
		if err := e.registry.Register(def.Name, def.Config); err != nil {
			return nil, fmt.Errorf("register theme %q: %w", def.Name, err)
		}
	}

	fallback := opts.DefaultTheme
	if fallback == "" {
		fallback = style.ThemeLight
	}
	e.registry.Restore(fallback)

	return e, nil
}

// Parse resolves each input and concatenates the fragments in order. Inputs
// containing ':' are literal declaration lists; all others are space
// separated tokens. Unresolvable tokens contribute nothing.
func (e *Engine) Parse(inputs ...string) string {
	name, active := e.registry.Active()
	identity := active.Identity()

	callKey := cache.Key{Theme: identity, Input: cache.JoinInputs(inputs)}
	if out, ok := e.cache.Get(cache.TierCall, callKey); ok {
		return out
	}

	var b strings.Builder
	for _, input := range inputs {
		if isLiteralCSS(input) {
			b.WriteString(parseLiteralCSS(input))
			continue
		}
		b.WriteString(e.parseClass(input, name, active))
	}

	out := b.String()
	e.cache.Put(cache.TierCall, callKey, out)
	return out
}

func (e *Engine) parseClass(input, name string, active *style.Theme) string {
	key := cache.Key{Theme: active.Identity(), Input: input}
	if out, ok := e.cache.Get(cache.TierClass, key); ok {
		return out
	}

	var b strings.Builder
	for _, token := range strings.Fields(input) {
		b.WriteString(e.resolveToken(token, name, active))
	}

	out := b.String()
	e.cache.Put(cache.TierClass, key, out)
	return out
}

func (e *Engine) resolveToken(token, name string, active *style.Theme) string {
	key := cache.Key{Theme: active.Identity(), Input: token}
	if out, ok := e.cache.Get(cache.TierToken, key); ok {
		return out
	}

	out := resolve(token, active).CSS
	if out == "" {
		e.log.WithFields(map[string]any{"token": token, "theme": name}).Warn("unresolvable style")
	}

	e.cache.Put(cache.TierToken, key, out)
	return out
}

func resolve(token string, active *style.Theme) Resolution {
	token = strings.TrimSpace(token)
	if token == "" || strings.HasSuffix(token, "-") {
		return Resolution{Token: token}
	}

	r := matchRule(token)
	return Resolution{Token: token, Rule: r.name, CSS: r.resolve(token, active)}
}

// Explain resolves every token in input without touching the cache and
// reports which rule handled each one.
func (e *Engine) Explain(input string) []Resolution {
	_, active := e.registry.Active()

	fields := strings.Fields(input)
	out := make([]Resolution, 0, len(fields))
	for _, token := range fields {
		out = append(out, resolve(token, active))
	}
	return out
}

// RegisterTheme builds a theme from the style modules and cfg.
func (e *Engine) RegisterTheme(name string, cfg style.Config) error {
	return e.registry.Register(name, cfg)
}

// UnregisterTheme removes a custom theme.
func (e *Engine) UnregisterTheme(name string) error {
	return e.registry.Unregister(name)
}

// Theme returns the registered theme called name.
func (e *Engine) Theme(name string) (*style.Theme, bool) {
	return e.registry.Theme(name)
}

// ThemeNames returns registered theme names in registration order.
func (e *Engine) ThemeNames() []string {
	return e.registry.Names()
}

// Themes returns a copy of every registered theme by name.
func (e *Engine) Themes() map[string]*style.Theme {
	return e.registry.Themes()
}

// SetCurrentTheme activates and persists name.
func (e *Engine) SetCurrentTheme(name string) error {
	return e.registry.SetCurrent(name)
}

// CurrentTheme returns the active theme name.
func (e *Engine) CurrentTheme() string {
	return e.registry.Current()
}

// CurrentThemeObj returns the active theme.
func (e *Engine) CurrentThemeObj() *style.Theme {
	return e.registry.CurrentTheme()
}

// ClearCache drops every cached fragment.
func (e *Engine) ClearCache() {
	e.clearCache()
}

// CacheStats reports per tier cache usage.
func (e *Engine) CacheStats() []cache.Stats {
	return e.cache.Stats()
}

func (e *Engine) clearCache() {
	e.cache.Clear()
	e.log.Debug("style cache cleared")
}
