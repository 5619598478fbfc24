package style

// Built-in theme names. Both are always registered and cannot be removed.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

var sharedScale = map[string]string{
	"text-xs":  "20rpx",
	"text-sm":  "24rpx",
	"text-md":  "28rpx",
	"text-lg":  "32rpx",
	"text-xl":  "36rpx",
	"text-xxl": "40rpx",
	"text-2xl": "40rpx",

	"rounded-xs":     "4rpx",
	"rounded-sm":     "8rpx",
	"rounded-md":     "12rpx",
	"rounded-lg":     "16rpx",
	"rounded-circle": "9999rpx",
}

// LightPalette returns the overrides that define the light theme.
func LightPalette() Config {
	return Merge(Literals(sharedScale), Literals(map[string]string{
		"primary": "#1677FF",
		"success": "#52C41A",
		"warning": "#FAAD14",
		"danger":  "#FF4D4F",
		"info":    "#13C2C2",
		"error":   "#FF4D4F",

		"text-base":      "#333333",
		"text-secondary": "#666666",
		"text-disabled":  "#999999",
		"text-inverse":   "#FFFFFF",

		"bg-base":  "#FFFFFF",
		"bg-light": "#FAFAFA",
		"bg-card":  "#FFFFFF",
		"bg-mask":  "rgba(0,0,0,0.45)",

		"border":       "2rpx solid #EEEEEE",
		"border-light": "2rpx solid #F5F5F5",

		"shadow-sm": "0 4rpx 8rpx rgba(0,0,0,0.08)",
		"shadow-md": "0 8rpx 16rpx rgba(0,0,0,0.12)",
		"shadow-lg": "0 12rpx 24rpx rgba(0,0,0,0.16)",
	}))
}

// DarkPalette returns the overrides that define the dark theme.
func DarkPalette() Config {
	return Merge(Literals(sharedScale), Literals(map[string]string{
		"primary": "#1668DC",
		"success": "#49AA19",
		"warning": "#D89614",
		"danger":  "#A61D24",
		"info":    "#08979C",
		"error":   "#A61D24",

		"text-base":      "rgba(255,255,255,0.85)",
		"text-secondary": "rgba(255,255,255,0.65)",
		"text-disabled":  "rgba(255,255,255,0.35)",
		"text-inverse":   "#141414",

		"bg-base":  "#111111",
		"bg-light": "#1A1A1A",
		"bg-card":  "#1E1E1E",
		"bg-mask":  "rgba(0,0,0,0.65)",

		"border-dark":  "2rpx solid #333333",
		"border-light": "2rpx solid #444444",

		"shadow-sm": "0 4rpx 8rpx rgba(0,0,0,0.32)",
		"shadow-md": "0 8rpx 16rpx rgba(0,0,0,0.48)",
		"shadow-lg": "0 12rpx 24rpx rgba(0,0,0,0.64)",
	}))
}

// BuiltinPalettes maps each built-in theme name to its overrides.
func BuiltinPalettes() map[string]Config {
	return map[string]Config{
		ThemeLight: LightPalette(),
		ThemeDark:  DarkPalette(),
	}
}
