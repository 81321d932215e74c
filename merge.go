// File: strata/merge.go
package strata

// mergeTables folds src into dst. Keys whose values are tables on both sides
// merge recursively, key by key, at every depth. Every other collision is
// resolved by replacing the existing value wholesale: scalars and arrays from
// a later source win outright, and arrays are never concatenated.
//
// The fold is left-to-right over the source list and is not commutative;
// whenever two sources define the same leaf key, the later one wins.
func mergeTables(dst, src map[string]any) {
	for key, incoming := range src {
		if existing, ok := dst[key]; ok {
			dstTable, dstOK := existing.(map[string]any)
			srcTable, srcOK := incoming.(map[string]any)
			if dstOK && srcOK {
				mergeTables(dstTable, srcTable)
				continue
			}
		}
		dst[key] = incoming
	}
}

// copyTable returns a detached copy of a nested table. Array values are
// shared, not cloned; the merged table treats them as opaque leaves.
func copyTable(t map[string]any) map[string]any {
	out := make(map[string]any, len(t))
	for key, value := range t {
		if nested, ok := value.(map[string]any); ok {
			out[key] = copyTable(nested)
		} else {
			out[key] = value
		}
	}
	return out
}
