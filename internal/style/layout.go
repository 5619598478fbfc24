package style

import "fmt"

// layoutModule covers positioning, flexbox, gaps, overflow and scrollbars.
func layoutModule() Config {
	cfg := Config{
		"static":   Literal("position: static;"),
		"relative": Literal("position: relative;"),
		"absolute": Literal("position: absolute;"),
		"fixed":    Literal("position: fixed;"),
		"sticky":   Literal("position: sticky;"),

		"z-": Func(SimpleHandler("z-index", "z-")),

		"top-":    Func(PropertyHandler("top", "top-")),
		"right-":  Func(PropertyHandler("right", "right-")),
		"bottom-": Func(PropertyHandler("bottom", "bottom-")),
		"left-":   Func(PropertyHandler("left", "left-")),

		"hflex":            Literal("display: flex; flex-direction: row;"),
		"hflex-hleft":      Literal("justify-content: flex-start;"),
		"hflex-hcenter":    Literal("justify-content: center;"),
		"hflex-hright":     Literal("justify-content: flex-end;"),
		"hflex-hbetween":   Literal("justify-content: space-between;"),
		"hflex-haround":    Literal("justify-content: space-around;"),
		"hflex-hevenly":    Literal("justify-content: space-evenly;"),
		"hflex-vtop":       Literal("align-items: flex-start;"),
		"hflex-vcenter":    Literal("align-items: center;"),
		"hflex-vbottom":    Literal("align-items: flex-end;"),
		"hflex-vstretch":   Literal("align-items: stretch;"),
		"hflex-vbaseline":  Literal("align-items: baseline;"),
		"hflex-hvcenter":   Literal("justify-content: center; align-items: center;"),
		"vflex":            Literal("display: flex; flex-direction: column;"),
		"vflex-hleft":      Literal("align-items: flex-start;"),
		"vflex-hcenter":    Literal("align-items: center;"),
		"vflex-hright":     Literal("align-items: flex-end;"),
		"vflex-hbetween":   Literal("align-items: space-between;"),
		"vflex-haround":    Literal("align-items: space-around;"),
		"vflex-hevenly":    Literal("align-items: space-evenly;"),
		"vflex-vtop":       Literal("justify-content: flex-start;"),
		"vflex-vcenter":    Literal("justify-content: center;"),
		"vflex-vbottom":    Literal("justify-content: flex-end;"),
		"vflex-vstretch":   Literal("justify-content: stretch;"),
		"vflex-vbaseline":  Literal("justify-content: baseline;"),
		"vflex-hvcenter":   Literal("justify-content: center; align-items: center;"),
		"flex-wrap":        Literal("flex-wrap: wrap;"),
		"flex-nowrap":      Literal("flex-wrap: nowrap;"),
		"flex-":            Func(SimpleHandler("flex", "flex-")),
		"gap-":             Func(PropertyHandler("gap", "gap-")),
		"overflow-hidden":  Literal("overflow: hidden;"),
		"overflow-scroll":  Literal("overflow: scroll;"),
		"overflow-auto":    Literal("overflow: auto;"),
		"scrollbar":        Literal("scrollbar-width: thin;"),
		"scrollbar-none":   Literal("scrollbar-width: none;"),
		"scrollbar-thin":   Literal("scrollbar-width: thin;"),
		"scrollbar-thick":  Literal("scrollbar-width: thick;"),
		"scrollbar-auto":   Literal("scrollbar-width: auto;"),
		"scrollbar-hidden": Literal("scrollbar-width: none; -ms-overflow-style: none;"),
	}

	for i := 1; i <= 5; i++ {
		cfg[fmt.Sprintf("flex-%d", i)] = Literal(fmt.Sprintf("flex: %d;", i))
	}

	for _, axis := range []string{"x", "y"} {
		for _, mode := range []string{"hidden", "scroll", "auto"} {
			cfg[fmt.Sprintf("overflow-%s-%s", axis, mode)] = Literal(fmt.Sprintf("overflow-%s: %s;", axis, mode))
		}
	}

	return cfg
}
