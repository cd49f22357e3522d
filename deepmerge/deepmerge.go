// Package deepmerge implements recursive merging of decoded JSON values
// (map[string]interface{}, []interface{}, scalars, nil). The array strategy is
// injectable so callers can choose between snapshot (overwrite) and append
// semantics for array-valued fields.
package deepmerge

// ArrayStrategy decides how two array values at the same key are combined.
type ArrayStrategy func(dst, src []interface{}) []interface{}

// Overwrite replaces the existing array with the incoming one wholesale.
// Array-valued fields in API payloads are treated as current snapshots, not
// logs, so element-wise merging would fabricate states no response ever had.
func Overwrite(_, src []interface{}) []interface{} {
	return src
}

// Append concatenates the incoming array onto the existing one.
func Append(dst, src []interface{}) []interface{} {
	out := make([]interface{}, 0, len(dst)+len(src))
	out = append(out, dst...)
	out = append(out, src...)
	return out
}

// Merge returns the deep merge of src into dst. Neither input is mutated;
// maps shared between the result and the inputs are copied on write. For
// conflicting scalar values at the same key, src wins (last-write-wins per
// key). Merging anything into nil yields src.
func Merge(dst, src interface{}, arrays ArrayStrategy) interface{} {
	if dst == nil {
		return src
	}
	if src == nil {
		// An explicit null does not erase structure we already saw.
		return dst
	}

	switch srcVal := src.(type) {
	case map[string]interface{}:
		dstMap, ok := dst.(map[string]interface{})
		if !ok {
			return src
		}
		out := make(map[string]interface{}, len(dstMap)+len(srcVal))
		for k, v := range dstMap {
			out[k] = v
		}
		for k, v := range srcVal {
			if existing, ok := out[k]; ok {
				out[k] = Merge(existing, v, arrays)
			} else {
				out[k] = v
			}
		}
		return out

	case []interface{}:
		dstArr, ok := dst.([]interface{})
		if !ok {
			return src
		}
		return arrays(dstArr, srcVal)

	default:
		return src
	}
}
