package style

// boxModelModule covers sizing, padding, margin, borders and corner radii.
func boxModelModule() Config {
	return Config{
		"w-":     Func(PropertyHandler("width", "w-")),
		"min-w-": Func(PropertyHandler("min-width", "min-w-")),
		"max-w-": Func(PropertyHandler("max-width", "max-w-")),
		"wv-":    Func(UnitHandler("width", "wv-", "vw")),
		"wp-":    Func(UnitHandler("width", "wp-", "%")),
		"h-":     Func(PropertyHandler("height", "h-")),
		"min-h-": Func(PropertyHandler("min-height", "min-h-")),
		"max-h-": Func(PropertyHandler("max-height", "max-h-")),
		"hv-":    Func(UnitHandler("height", "hv-", "vh")),
		"hp-":    Func(UnitHandler("height", "hp-", "%")),

		"p-":  Func(PropertyHandler("padding", "p-")),
		"pt-": Func(PropertyHandler("padding-top", "pt-")),
		"pb-": Func(PropertyHandler("padding-bottom", "pb-")),
		"pl-": Func(PropertyHandler("padding-left", "pl-")),
		"pr-": Func(PropertyHandler("padding-right", "pr-")),
		"px-": Func(DualPropertyHandler("padding-left", "padding-right", "px-")),
		"py-": Func(DualPropertyHandler("padding-top", "padding-bottom", "py-")),

		"m-":  Func(PropertyHandler("margin", "m-")),
		"mt-": Func(PropertyHandler("margin-top", "mt-")),
		"mb-": Func(PropertyHandler("margin-bottom", "mb-")),
		"ml-": Func(PropertyHandler("margin-left", "ml-")),
		"mr-": Func(PropertyHandler("margin-right", "mr-")),
		"mx-": Func(DualPropertyHandler("margin-left", "margin-right", "mx-")),
		"my-": Func(DualPropertyHandler("margin-top", "margin-bottom", "my-")),

		"border-":   Func(PropertyHandler("border", "border-")),
		"border-t-": Func(PropertyHandler("border-top", "border-t-")),
		"border-b-": Func(PropertyHandler("border-bottom", "border-b-")),
		"border-l-": Func(PropertyHandler("border-left", "border-l-")),
		"border-r-": Func(PropertyHandler("border-right", "border-r-")),
		"border-x-": Func(DualPropertyHandler("border-left", "border-right", "border-x-")),
		"border-y-": Func(DualPropertyHandler("border-top", "border-bottom", "border-y-")),

		"rounded-":    Func(PropertyHandler("border-radius", "rounded-")),
		"rounded-t-":  Func(DualPropertyHandler("border-top-left-radius", "border-top-right-radius", "rounded-t-")),
		"rounded-b-":  Func(DualPropertyHandler("border-bottom-left-radius", "border-bottom-right-radius", "rounded-b-")),
		"rounded-l-":  Func(DualPropertyHandler("border-top-left-radius", "border-bottom-left-radius", "rounded-l-")),
		"rounded-r-":  Func(DualPropertyHandler("border-top-right-radius", "border-bottom-right-radius", "rounded-r-")),
		"rounded-tl-": Func(PropertyHandler("border-top-left-radius", "rounded-tl-")),
		"rounded-tr-": Func(PropertyHandler("border-top-right-radius", "rounded-tr-")),
		"rounded-bl-": Func(PropertyHandler("border-bottom-left-radius", "rounded-bl-")),
		"rounded-br-": Func(PropertyHandler("border-bottom-right-radius", "rounded-br-")),

		"min-h-100vh": Literal("min-height: 100vh;"),
		"h-100vh":     Literal("height: 100vh;"),
		"max-h-100vh": Literal("max-height: 100vh;"),
		"w-100vw":     Literal("width: 100vw;"),
		"min-w-100vw": Literal("min-width: 100vw;"),
		"max-w-100vw": Literal("max-width: 100vw;"),
		"w-full":      Literal("width: 100%;"),
		"h-full":      Literal("height: 100%;"),
		"w-screen":    Literal("width: 100vw;"),
		"h-screen":    Literal("height: 100vh;"),
	}
}
