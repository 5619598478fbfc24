package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeOverwritesAndRecurses(t *testing.T) {
	t.Parallel()

	base := Config{
		"primary": Literal("#000000"),
		"w-":      Func(PropertyHandler("width", "w-")),
		"palette": Group(Config{
			"brand":  Literal("#111111"),
			"accent": Literal("#222222"),
		}),
	}
	override := Config{
		"primary": Literal("#FFFFFF"),
		"palette": Group(Config{"accent": Literal("#333333")}),
		"w-":      Literal("width: 1px;"),
	}

	merged := Merge(base, override)

	primary, ok := merged["primary"].AsLiteral()
	require.True(t, ok)
	assert.Equal(t, "#FFFFFF", primary)

	w, ok := merged["w-"].AsLiteral()
	require.True(t, ok, "a literal replaces a handler")
	assert.Equal(t, "width: 1px;", w)

	palette, ok := merged["palette"].AsGroup()
	require.True(t, ok)
	brand, _ := palette["brand"].AsLiteral()
	accent, _ := palette["accent"].AsLiteral()
	assert.Equal(t, "#111111", brand)
	assert.Equal(t, "#333333", accent)

	// inputs stay untouched
	original, _ := base["palette"].AsGroup()
	accent, _ = original["accent"].AsLiteral()
	assert.Equal(t, "#222222", accent)
}

func TestMergeGroupReplacesScalar(t *testing.T) {
	t.Parallel()

	merged := Merge(Config{"k": Literal("x")}, Config{"k": Group(Config{"a": Literal("b")})})
	assert.Equal(t, KindGroup, merged["k"].Kind())

	merged = Merge(Config{"k": Group(Config{"a": Literal("b")})}, Config{"k": Literal("x")})
	assert.Equal(t, KindLiteral, merged["k"].Kind())
}

func TestModulesContainEveryPrefix(t *testing.T) {
	t.Parallel()

	all := Modules()
	for _, name := range ModuleNames() {
		module, ok := Module(name)
		require.True(t, ok, name)
		for key := range module {
			_, present := all[key]
			assert.True(t, present, "%s key %q missing from merged modules", name, key)
		}
	}

	_, ok := Module("unknown")
	assert.False(t, ok)
}

func TestVisualTextHandlerWinsOverTypography(t *testing.T) {
	t.Parallel()

	h, ok := Modules()["text-"].AsHandler()
	require.True(t, ok)
	assert.Equal(t, "color: #fff;", h("text-#fff"))
}

func TestNewThemeInheritsModules(t *testing.T) {
	t.Parallel()

	theme := NewTheme(ThemeLight, LightPalette())
	assert.Equal(t, ThemeLight, theme.Name())

	for key := range Modules() {
		_, ok := theme.Lookup(key)
		assert.True(t, ok, "theme is missing module key %q", key)
	}

	primary, ok := theme.Literal("primary")
	require.True(t, ok)
	assert.Equal(t, "#1677FF", primary)

	_, ok = theme.Handler("p-")
	assert.True(t, ok)
	_, ok = theme.Handler("primary")
	assert.False(t, ok)
	assert.Equal(t, len(theme.Keys()), theme.Len())
}

func TestThemeIdentityIsPerBuild(t *testing.T) {
	t.Parallel()

	first := NewTheme("custom", nil)
	second := NewTheme("custom", nil)
	assert.NotEqual(t, first.Identity(), second.Identity())
	assert.Contains(t, first.Identity(), "custom@")
}

func TestDarkPaletteDiffers(t *testing.T) {
	t.Parallel()

	light := NewTheme(ThemeLight, LightPalette())
	dark := NewTheme(ThemeDark, DarkPalette())

	lp, _ := light.Literal("primary")
	dp, _ := dark.Literal("primary")
	assert.Equal(t, "#1677FF", lp)
	assert.Equal(t, "#1668DC", dp)

	_, ok := dark.Literal("border")
	assert.False(t, ok, "dark theme defines border-dark instead of border")
}

func TestValueString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#fff", Literal("#fff").String())
	assert.Equal(t, "[handler]", Func(SimpleHandler("a", "a-")).String())
	assert.Equal(t, "{a: 1, b: 2}", Group(Literals(map[string]string{"b": "2", "a": "1"})).String())
}
