package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// NewLogger - Returns a text logger writing to w at the given level, one of debug, info, warn or error.
// An unknown level selects info.
func NewLogger(w io.Writer, level string) *slog.Logger {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel}))
}

// ReadTexts - Reads every named file as text, in the order given
func ReadTexts(fileNames ...string) (texts []string, err error) {
	texts = make([]string, len(fileNames))
	for i, fileName := range fileNames {
		if fileName == "" {
			err = fmt.Errorf("file name #%d can not be empty", i+1)
			return
		}

		var data []byte
		data, err = os.ReadFile(fileName)
		if err != nil {
			err = fmt.Errorf("error while reading %s: %w", fileName, err)
			return
		}
		texts[i] = string(data)
	}

	return
}
