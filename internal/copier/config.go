package copier

import "strconv"

// Config is the option bag handed unchanged to every step of a copy chain.
// Keys are interpreted by the concrete steps.
type Config map[string]any

// String returns the string value stored under key, or "".
func (c Config) String(key string) string {
	switch v := c[key].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	}
	return ""
}

// Int returns the integer value stored under key, or 0.
// Strings and JSON numbers are converted.
func (c Config) Int(key string) int {
	switch v := c[key].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0
		}
		return n
	}
	return 0
}
