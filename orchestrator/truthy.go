package orchestrator

import "math"

// IsTruthy reports whether value would count as true in a JavaScript
// condition. Workspace files are written for JavaScript tooling, so the
// build flag is read with the same rules.
func IsTruthy(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case int:
		return v != 0
	case int64:
		return v != 0
	case uint64:
		return v != 0
	case float64:
		return v != 0 && !math.IsNaN(v)
	default:
		return true
	}
}
