package usecase

// Helpers de conversión documento <-> entidad. El cuerpo jsonb regresa como
// map[string]any con números en float64; las cantidades no numéricas o
// ausentes se tratan como cero.

func asString(data map[string]any, key string) string {
	if v, ok := data[key].(string); ok {
		return v
	}
	return ""
}

func asInt(data map[string]any, key string) int {
	switch v := data[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	default:
		return 0
	}
}
