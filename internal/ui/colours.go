package ui

const (
	// Standard colors
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	Gray    = "\033[90m" // Bright black, often appears as gray

	ResetColor = "\033[0m" // Reset to default color
)

var MethodColors = map[string]string{
	"GET":    Green,
	"POST":   Blue,
	"PUT":    Cyan,
	"DELETE": Yellow,
	"PATCH":  Magenta,
}

// StatusColor picks a colour for an HTTP status code
func StatusColor(status int) string {
	switch {
	case status == 200 || status == 201:
		return Green
	case status >= 500:
		return Red
	case status >= 400:
		return Yellow
	default:
		return Gray
	}
}

// Colorize wraps text in colour, padded to width
func Colorize(colour, text string, width int) string {
	if colour == "" {
		colour = Gray
	}
	for len(text) < width {
		text += " "
	}
	return colour + text + ResetColor
}
