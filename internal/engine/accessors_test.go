package engine

import (
	"testing"

	"github.com/alexisbeaulieu97/stylekit/internal/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSize(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)

	assert.Equal(t, "24rpx", e.GetSizeNumber(24))
	assert.Equal(t, "1.5rpx", e.GetSizeNumber(1.5))
	assert.Equal(t, "24rpx", e.GetSize("24"))
	assert.Equal(t, "10px", e.GetSize("10px"))
	assert.Equal(t, "28rpx", e.GetSize("text-md"))
	assert.Equal(t, "50%", e.GetSize("50%"))
	assert.Equal(t, "gutter", e.GetSize("gutter"))
}

func TestGetColor(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)

	assert.Equal(t, "#abcdef", e.GetColor("#abcdef"))
	assert.Equal(t, "rgb(1, 2, 3)", e.GetColor("rgb(1, 2, 3)"))
	assert.Equal(t, "#1677FF", e.GetColor("primary"))
	assert.Equal(t, "chartreuse", e.GetColor("chartreuse"))

	require.NoError(t, e.SetCurrentTheme("dark"))
	assert.Equal(t, "#1668DC", e.GetColor("primary"))
}

func TestGetThemeStr(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)

	assert.Equal(t, "2rpx solid #EEEEEE", e.GetThemeStr("border"))
	assert.Equal(t, "[handler]", e.GetThemeStr("p-"))
	assert.Equal(t, "missing", e.GetThemeStr("missing"))

	require.NoError(t, e.RegisterTheme("grouped", style.Config{
		"spacing": style.Group(style.Literals(map[string]string{"sm": "8rpx", "lg": "32rpx"})),
	}))
	require.NoError(t, e.SetCurrentTheme("grouped"))
	assert.Equal(t, "{lg: 32rpx, sm: 8rpx}", e.GetThemeStr("spacing"))
}

func TestColorConversion(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)

	tests := []struct {
		name  string
		color string
		alpha float64
		rgb   string
		rgba  string
	}{
		{name: "hex", color: "#1677FF", alpha: 0.5, rgb: "rgb(22, 119, 255)", rgba: "rgba(22, 119, 255, 0.5)"},
		{name: "lower hex", color: "#ff0000", alpha: 1, rgb: "rgb(255, 0, 0)", rgba: "rgba(255, 0, 0, 1)"},
		{name: "theme key", color: "primary", alpha: 0.25, rgb: "rgb(22, 119, 255)", rgba: "rgba(22, 119, 255, 0.25)"},
		{name: "rgb", color: "rgb(1,2,3)", alpha: 0.3, rgb: "rgb(1, 2, 3)", rgba: "rgba(1, 2, 3, 0.3)"},
		{name: "rgba", color: "rgba(0,0,0,0.45)", alpha: 0.8, rgb: "rgb(0, 0, 0)", rgba: "rgba(0, 0, 0, 0.8)"},
		{name: "theme rgba", color: "bg-mask", alpha: 0.1, rgb: "rgb(0, 0, 0)", rgba: "rgba(0, 0, 0, 0.1)"},
		{name: "short hex", color: "#fff", alpha: 0.5, rgb: "#fff", rgba: "#fff"},
		{name: "named color", color: "red", alpha: 0.5, rgb: "red", rgba: "red"},
		{name: "bad hex", color: "#zzzzzz", alpha: 0.5, rgb: "#zzzzzz", rgba: "#zzzzzz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.rgb, e.Color2RGB(tt.color))
			assert.Equal(t, tt.rgba, e.Color2RGBA(tt.color, tt.alpha))
		})
	}
}
