package style

import "sync"

var (
	modulesOnce sync.Once
	modules     Config
)

// Modules returns the merged layout, box-model, typography and visual tables,
// in that order, so later modules win on shared keys. The result is built once
// and must be treated as read-only.
func Modules() Config {
	modulesOnce.Do(func() {
		modules = Merge(layoutModule(), boxModelModule(), typographyModule(), visualModule())
	})
	return modules
}

// ModuleNames lists the style modules in merge order.
func ModuleNames() []string {
	return []string{"layout", "box-model", "typography", "visual"}
}

// Module returns one style module by name.
func Module(name string) (Config, bool) {
	switch name {
	case "layout":
		return layoutModule(), true
	case "box-model":
		return boxModelModule(), true
	case "typography":
		return typographyModule(), true
	case "visual":
		return visualModule(), true
	default:
		return nil, false
	}
}
