package output

import (
	"fmt"
	"io"
	"os"
)

// Color modes accepted by the --color flag.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ParseColorMode validates a --color value. Empty means auto.
func ParseColorMode(value string) (string, error) {
	switch value {
	case "", ColorAuto:
		return ColorAuto, nil
	case ColorAlways, ColorNever:
		return value, nil
	default:
		return "", NewUserError(fmt.Sprintf("--color must be one of auto, always, never (got %q)", value))
	}
}

// ResolveColorMode determines the effective isTTY value from the --color
// mode and the detected TTY state. Unknown modes behave like auto.
func ResolveColorMode(colorMode string, isTTY bool) bool {
	switch colorMode {
	case ColorNever:
		return false
	case ColorAlways:
		return true
	default:
		return isTTY
	}
}

// IsTTY checks if a writer is a terminal.
// Returns true only for an *os.File attached to a character device.
func IsTTY(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	stat, err := file.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
