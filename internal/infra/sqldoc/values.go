package sqldoc

import (
	"fmt"
	"time"
)

// normalize maps driver values and decoded JSON values onto one comparable form:
// every number becomes float64, blobs become strings, times become RFC 3339.
func normalize(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case int64:
		return float64(t)
	case int:
		return float64(t)
	case float32:
		return float64(t)
	case float64:
		return t
	case []byte:
		return string(t)
	case time.Time:
		return t.UTC().Format(time.RFC3339Nano)
	case bool:
		return t
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}

func normalizeRows(rows [][]any) [][]any {
	out := make([][]any, len(rows))
	for i, row := range rows {
		nr := make([]any, len(row))
		for j, v := range row {
			nr[j] = normalize(v)
		}
		out[i] = nr
	}
	return out
}

func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "NULL"
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprint(t)
	default:
		return fmt.Sprint(t)
	}
}
