package htn

// deepCopyValue recursively copies an arbitrary domain value so that two
// states never share mutable substructure. Domain-defined values are
// typically strings, numbers, booleans, tuples (Go arrays/structs passed by
// value), or maps/slices of those. Maps and slices are the only shapes that
// alias storage in Go, so those are the only ones that need recursive
// copying; everything else already has value semantics.
func deepCopyValue(v any) any {
	switch x := v.(type) {
	case map[string]any:
		if x == nil {
			return nil
		}
		out := make(map[string]any, len(x))
		for k, val := range x {
			out[k] = deepCopyValue(val)
		}
		return out
	case map[any]any:
		if x == nil {
			return nil
		}
		out := make(map[any]any, len(x))
		for k, val := range x {
			out[deepCopyValue(k)] = deepCopyValue(val)
		}
		return out
	case []any:
		if x == nil {
			return nil
		}
		out := make([]any, len(x))
		for i, val := range x {
			out[i] = deepCopyValue(val)
		}
		return out
	case map[string]bool:
		if x == nil {
			return nil
		}
		out := make(map[string]bool, len(x))
		for k, val := range x {
			out[k] = val
		}
		return out
	case map[string]int:
		if x == nil {
			return nil
		}
		out := make(map[string]int, len(x))
		for k, val := range x {
			out[k] = val
		}
		return out
	case map[string]string:
		if x == nil {
			return nil
		}
		out := make(map[string]string, len(x))
		for k, val := range x {
			out[k] = val
		}
		return out
	case []string:
		if x == nil {
			return nil
		}
		out := make([]string, len(x))
		copy(out, x)
		return out
	default:
		// Strings, numbers, bools, and domain-defined structs/arrays
		// ("tuples") already have Go value semantics; nothing to copy.
		return v
	}
}
