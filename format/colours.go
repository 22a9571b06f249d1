package format

const (
	Red        = "\033[31m"
	Green      = "\033[32m"
	Yellow     = "\033[33m"
	Cyan       = "\033[36m"
	Gray       = "\033[90m"
	Orange     = "\033[38;5;208m" // 256-colour palette
	ResetColor = "\033[0m"
)

// Colorize wraps text in the score colour
func Colorize(text string, score float64) string {
	return ANSI(score) + text + ResetColor
}
