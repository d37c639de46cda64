package utils

import "strconv"

const (
	Reset  = "\033[0m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
)

func ColorText(text, color string) string {
	return color + text + Reset
}

// ColorStatus renders an HTTP status code with a severity color.
func ColorStatus(statusCode int) string {
	code := strconv.Itoa(statusCode)
	switch {
	case statusCode >= 500:
		return ColorText(code, Red)
	case statusCode >= 400:
		return ColorText(code, Yellow)
	default:
		return ColorText(code, Green)
	}
}
