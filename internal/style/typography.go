package style

const ellipsis = "overflow: hidden; text-overflow: ellipsis; white-space: nowrap;"

// typographyModule covers font weight, alignment, decoration, display and
// truncation. Font size lives in the visual module's text- handler.
func typographyModule() Config {
	return Config{
		"font-":         Func(SimpleHandler("font-weight", "font-")),
		"font-bold":     Literal("font-weight: bold;"),
		"font-normal":   Literal("font-weight: normal;"),
		"font-light":    Literal("font-weight: 300;"),
		"font-medium":   Literal("font-weight: 500;"),
		"font-semibold": Literal("font-weight: 600;"),

		"text-align-":      Func(SimpleHandler("text-align", "text-align-")),
		"text-left":        Literal("text-align: left;"),
		"text-center":      Literal("text-align: center;"),
		"text-right":       Literal("text-align: right;"),
		"text-decoration-": Func(SimpleHandler("text-decoration", "text-decoration-")),

		"block":        Literal("display: block;"),
		"inline":       Literal("display: inline;"),
		"inline-block": Literal("display: inline-block;"),
		"none":         Literal("display: none;"),

		"w-elips":  Literal(ellipsis),
		"w-elips-": Func(ComplexHandler(ellipsis, "w-elips-", "-webkit-line-clamp")),
	}
}
