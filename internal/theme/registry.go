package theme

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/alexisbeaulieu97/stylekit/internal/logger"
	"github.com/alexisbeaulieu97/stylekit/internal/ports"
	"github.com/alexisbeaulieu97/stylekit/internal/style"
	apperrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

// PersistKey is the store key holding the active theme name.
const PersistKey = "__now_theme__"

// Options configures a Registry.
type Options struct {
	// Store remembers the active theme across restarts. Nil disables persistence.
	Store  ports.Store
	Logger *logger.Logger
	// OnInvalidate runs whenever cached output may no longer be valid. It is
	// called while the registry write lock is held and must not call back
	// into the Registry.
	OnInvalidate func()
}

type snapshot struct {
	themes map[string]*style.Theme
	order  []string
	active string
}

func (s *snapshot) clone() *snapshot {
	themes := make(map[string]*style.Theme, len(s.themes))
	for name, t := range s.themes {
		themes[name] = t
	}
	order := make([]string, len(s.order))
	copy(order, s.order)
	return &snapshot{themes: themes, order: order, active: s.active}
}

// Registry owns the named themes and the active theme pointer. Reads are
// served from an immutable snapshot; writers serialize on mu and publish a
// new snapshot.
type Registry struct {
	mu         sync.Mutex
	current    atomic.Pointer[snapshot]
	store      ports.Store
	log        *logger.Logger
	invalidate func()
}

// NewRegistry returns a Registry holding the built-in themes with light active.
func NewRegistry(opts Options) *Registry {
	r := &Registry{
		store:      opts.Store,
		log:        opts.Logger,
		invalidate: opts.OnInvalidate,
	}

	palettes := style.BuiltinPalettes()
	snap := &snapshot{themes: make(map[string]*style.Theme), active: style.ThemeLight}
	for _, name := range []string{style.ThemeLight, style.ThemeDark} {
		snap.themes[name] = style.NewTheme(name, palettes[name])
		snap.order = append(snap.order, name)
	}
	r.current.Store(snap)
	return r
}

// IsBuiltin reports whether name is one of the protected built-in themes.
func IsBuiltin(name string) bool {
	return name == style.ThemeLight || name == style.ThemeDark
}

// Restore activates the persisted theme. When nothing usable is persisted the
// fallback is activated, or light when fallback is not registered either.
// Restore never writes to the store.
func (r *Registry) Restore(fallback string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := r.current.Load()
	target := fallback

	if r.store != nil {
		if persisted, ok := r.store.Get(PersistKey); ok && persisted != "" {
			if _, registered := snap.themes[persisted]; registered {
				target = persisted
			} else {
				r.log.WithFields(map[string]any{"theme": persisted, "fallback": fallback}).
					Warn("persisted theme unavailable")
			}
		}
	}

	if _, ok := snap.themes[target]; !ok {
		target = style.ThemeLight
	}
	if target == snap.active {
		return
	}

	next := snap.clone()
	next.active = target
	r.current.Store(next)
	r.invalidateLocked()
}

// Register builds a theme from the style modules and cfg and stores it under
// name, replacing any theme of the same name.
func (r *Registry) Register(name string, cfg style.Config) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.NewValidationError("name", "theme name must be a non-empty string", nil)
	}
	if cfg == nil {
		return apperrors.NewValidationError("config", "theme config must be an object", nil)
	}

	built := style.NewTheme(name, cfg)

	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.current.Load().clone()
	if _, exists := next.themes[name]; !exists {
		next.order = append(next.order, name)
	}
	next.themes[name] = built
	r.current.Store(next)

	if next.active == name {
		r.invalidateLocked()
	}

	r.log.WithFields(map[string]any{"theme": name, "identity": built.Identity()}).Info("theme registered")
	return nil
}

// Unregister removes a custom theme. Unknown names are reported and ignored.
// Removing the active theme falls back to light.
func (r *Registry) Unregister(name string) error {
	if IsBuiltin(name) {
		return apperrors.NewProtectedResourceError("theme", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	snap := r.current.Load()
	if _, ok := snap.themes[name]; !ok {
		r.log.With("theme", name).Warn("theme not registered")
		return nil
	}

	next := snap.clone()
	delete(next.themes, name)
	for i, n := range next.order {
		if n == name {
			next.order = append(next.order[:i], next.order[i+1:]...)
			break
		}
	}

	if next.active == name {
		next.active = style.ThemeLight
		if err := r.persistLocked(style.ThemeLight); err != nil {
			r.log.With("theme", style.ThemeLight).Error(err, "persist current theme")
		}
	}

	r.current.Store(next)
	r.invalidateLocked()

	r.log.With("theme", name).Info("theme unregistered")
	return nil
}

// SetCurrent activates name and persists it. The store write completes before
// the switch; on failure the active theme is unchanged.
func (r *Registry) SetCurrent(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := r.current.Load()
	if _, ok := snap.themes[name]; !ok {
		return apperrors.NewNotFoundError("theme", name)
	}

	if err := r.persistLocked(name); err != nil {
		return fmt.Errorf("persist current theme %q: %w", name, err)
	}

	previous := snap.active
	next := snap.clone()
	next.active = name
	r.current.Store(next)
	r.invalidateLocked()

	r.log.WithFields(map[string]any{"from": previous, "to": name}).Info("current theme changed")
	return nil
}

// Theme returns the registered theme called name.
func (r *Registry) Theme(name string) (*style.Theme, bool) {
	t, ok := r.current.Load().themes[name]
	return t, ok
}

// Names returns registered theme names in registration order.
func (r *Registry) Names() []string {
	order := r.current.Load().order
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// Themes returns a copy of the name to theme mapping.
func (r *Registry) Themes() map[string]*style.Theme {
	themes := r.current.Load().themes
	out := make(map[string]*style.Theme, len(themes))
	for name, t := range themes {
		out[name] = t
	}
	return out
}

// Current returns the active theme name.
func (r *Registry) Current() string {
	return r.current.Load().active
}

// CurrentTheme returns the active theme, falling back to light.
func (r *Registry) CurrentTheme() *style.Theme {
	_, t := r.Active()
	return t
}

// Active returns the active name and theme from a single snapshot.
func (r *Registry) Active() (string, *style.Theme) {
	snap := r.current.Load()
	if t, ok := snap.themes[snap.active]; ok {
		return snap.active, t
	}
	return style.ThemeLight, snap.themes[style.ThemeLight]
}

func (r *Registry) persistLocked(name string) error {
	if r.store == nil {
		return nil
	}
	return r.store.Set(PersistKey, name, 0)
}

func (r *Registry) invalidateLocked() {
	if r.invalidate != nil {
		r.invalidate()
	}
}
