// Package commands contains CLI command implementations for the application.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/allisson/hashcipher/internal/app"
	"github.com/allisson/hashcipher/internal/transform/http/dto"
)

// stdinMarker makes a command read its input from the reader instead of the flag value.
const stdinMarker = "-"

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// closeContainer closes all resources in the container and logs any errors.
func closeContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}

// resolveInput returns the flag value, or the reader's content when the value is "-".
// A single trailing line break is dropped from piped content.
func resolveInput(input string, r io.Reader) (string, error) {
	if input != stdinMarker {
		return input, nil
	}
	if r == nil {
		return "", fmt.Errorf("no reader available for stdin input")
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	s := string(b)
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	return s, nil
}

// outputResult writes the transform result as a bare line or as a JSON document.
func outputResult(w io.Writer, result string, format string) error {
	if format == "json" {
		return writeJSON(w, dto.TransformResponse{Result: result})
	}

	_, err := fmt.Fprintln(w, result)
	return err
}

// writeJSON writes v as indented JSON for machine consumption.
func writeJSON(w io.Writer, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	_, err = fmt.Fprintln(w, string(jsonBytes))
	return err
}
