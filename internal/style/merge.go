package style

// Merge deep-merges configs left to right into a new Config. When both sides
// hold a group the groups merge recursively; any other later value replaces
// the earlier one. Inputs are never modified.
func Merge(configs ...Config) Config {
	size := 0
	for _, cfg := range configs {
		size += len(cfg)
	}

	result := make(Config, size)
	for _, cfg := range configs {
		for key, incoming := range cfg {
			existing, ok := result[key]
			if ok {
				dst, dstGroup := existing.AsGroup()
				src, srcGroup := incoming.AsGroup()
				if dstGroup && srcGroup {
					result[key] = Group(Merge(dst, src))
					continue
				}
			}
			if group, isGroup := incoming.AsGroup(); isGroup {
				result[key] = Group(Merge(group))
				continue
			}
			result[key] = incoming
		}
	}

	return result
}
