package postgres

// The attribute store keeps values as JSONB. Two quirks are hidden
// behind this boundary so callers only ever see native types:
// empty strings are stored as a single-space sentinel, and numbers
// come back from JSON decoding as float64 and must be normalized to
// int on read.

// Sanitize prepares an attribute value for storage: empty strings
// become a single space and float values are coerced to int,
// recursively through nested maps and lists.
func Sanitize(v any) any {
	switch val := v.(type) {
	case string:
		if val == "" {
			return " "
		}
		return val
	case float64:
		return int(val)
	case float32:
		return int(val)
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = Sanitize(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = Sanitize(item)
		}
		return out
	}
	return v
}

// Restore is the inverse of Sanitize, applied on every read: space
// sentinels become empty strings and decoded numbers become ints.
func Restore(v any) any {
	switch val := v.(type) {
	case string:
		if val == " " {
			return ""
		}
		return val
	case float64:
		return int(val)
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = Restore(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = Restore(item)
		}
		return out
	}
	return v
}
