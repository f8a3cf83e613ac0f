package logging

import (
	"fmt"
	"strings"
)

// LoggerType is a type of logger output.
// Possible types:
//   - LoggerText: The standard slog.TextHandler.
//   - LoggerJSON: The standard slog.JSONHandler.
//   - LoggerPretty: The logger outputs pretty messages, colored on terminals.
//   - LoggerPrettyNoColor: The logger outputs pretty messages without colors.
type LoggerType int

const (
	LoggerText LoggerType = iota
	LoggerJSON
	LoggerPretty
	LoggerPrettyNoColor
)

var loggerTypeNames = map[LoggerType]string{
	LoggerText:          "text",
	LoggerJSON:          "json",
	LoggerPretty:        "pretty",
	LoggerPrettyNoColor: "prettynocolor",
}

func (t LoggerType) String() string {
	if name, ok := loggerTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("LoggerType(%d)", int(t))
}

func (t LoggerType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *LoggerType) UnmarshalText(text []byte) error {
	s := strings.ToLower(string(text))
	for lt, name := range loggerTypeNames {
		if name == s {
			*t = lt
			return nil
		}
	}
	return fmt.Errorf("%q does not belong to LoggerType values", s)
}
