package components

import "kinetic/internal/vmath"

// Record readers tolerant of both JSON (float64) and YAML (int) decodings.

func recordFloat(data map[string]any, key string, fallback float32) float32 {
	v, ok := data[key]
	if !ok {
		return fallback
	}
	if f, ok := toFloat(v); ok {
		return f
	}
	return fallback
}

func recordBool(data map[string]any, key string, fallback bool) bool {
	if b, ok := data[key].(bool); ok {
		return b
	}
	return fallback
}

func recordVec2(data map[string]any, key string, fallback vmath.Vector2) vmath.Vector2 {
	coords, ok := toFloats(data[key])
	if !ok || len(coords) < 2 {
		return fallback
	}
	return vmath.Vector2{X: coords[0], Y: coords[1]}
}

func recordVec3(data map[string]any, key string, fallback vmath.Vector3) vmath.Vector3 {
	coords, ok := toFloats(data[key])
	if !ok || len(coords) < 3 {
		return fallback
	}
	return vmath.Vector3{X: coords[0], Y: coords[1], Z: coords[2]}
}

func recordSubRecord(data map[string]any, key string) map[string]any {
	switch sub := data[key].(type) {
	case map[string]any:
		return sub
	default:
		return nil
	}
}

func toFloat(v any) (float32, bool) {
	switch n := v.(type) {
	case float64:
		return float32(n), true
	case float32:
		return n, true
	case int:
		return float32(n), true
	case int64:
		return float32(n), true
	}
	return 0, false
}

func toFloats(v any) ([]float32, bool) {
	switch list := v.(type) {
	case []float32:
		return list, true
	case []any:
		out := make([]float32, 0, len(list))
		for _, item := range list {
			f, ok := toFloat(item)
			if !ok {
				return nil, false
			}
			out = append(out, f)
		}
		return out, true
	}
	return nil, false
}
