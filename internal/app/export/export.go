package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"logdeck/internal/app/bus"
	"logdeck/internal/app/entry"
	"logdeck/internal/app/errors"
	"logdeck/internal/config"
	"logdeck/internal/config/logger"
)

// Result describes a finished export
type Result struct {
	Path  string
	Count int
}

// Exporter writes entries to a file in the configured format
type Exporter interface {
	Export(entries []entry.Entry) (Result, error)
	Format() string
}

type exporter struct {
	format string
	path   string
	bus    bus.Bus
	log    logger.Logger
}

// New creates an exporter from the export config section
func New(cfg *config.Config, b bus.Bus, log logger.Logger) Exporter {
	if b == nil {
		b = bus.NoOp()
	}

	return &exporter{
		format: cfg.Export.Format,
		path:   cfg.Export.Path,
		bus:    b,
		log:    log,
	}
}

// Format returns the configured output format
func (e *exporter) Format() string {
	return e.format
}

// Export writes entries in the given order and publishes the outcome
func (e *exporter) Export(entries []entry.Entry) (Result, error) {
	result, err := e.write(entries)

	e.bus.Publish(bus.Message{
		Type: bus.EventExportFinished,
		Data: bus.ExportFinished{Path: result.Path, Count: result.Count, Error: err},
	})

	if err != nil {
		e.log.Error().Err(err).Msgf("Export to '%s' failed", result.Path)
		return result, err
	}

	e.log.Info().Msgf("Exported %d entries to '%s'", result.Count, result.Path)

	return result, nil
}

func (e *exporter) write(entries []entry.Entry) (Result, error) {
	path, err := FileName(e.path, e.format)
	if err != nil {
		return Result{}, err
	}

	result := Result{Path: path}

	file, err := os.Create(path)
	if err != nil {
		return result, fmt.Errorf("failed to create export file: %w", err)
	}

	w := bufio.NewWriter(file)

	if err := Encode(w, e.format, entries); err != nil {
		_ = file.Close()
		return result, err
	}

	if err := w.Flush(); err != nil {
		_ = file.Close()
		return result, fmt.Errorf("failed to flush export file: %w", err)
	}

	if err := file.Close(); err != nil {
		return result, fmt.Errorf("failed to close export file: %w", err)
	}

	result.Count = len(entries)

	return result, nil
}

// FileName appends the format extension to base unless it is already present
func FileName(base, format string) (string, error) {
	ext, err := extension(format)
	if err != nil {
		return "", err
	}

	if strings.HasSuffix(base, ext) {
		return base, nil
	}

	return base + ext, nil
}

func extension(format string) (string, error) {
	switch format {
	case config.ExportJSON:
		return ".jsonl", nil
	case config.ExportYAML:
		return ".yaml", nil
	default:
		return "", fmt.Errorf("%w: '%s'", errors.ErrUnknownExportFormat, format)
	}
}

// Encode writes entries as JSON Lines or as a single YAML sequence
func Encode(w io.Writer, format string, entries []entry.Entry) error {
	switch format {
	case config.ExportJSON:
		return encodeJSONLines(w, entries)
	case config.ExportYAML:
		return encodeYAML(w, entries)
	default:
		return fmt.Errorf("%w: '%s'", errors.ErrUnknownExportFormat, format)
	}
}

func encodeJSONLines(w io.Writer, entries []entry.Entry) error {
	enc := json.NewEncoder(w)

	for _, e := range entries {
		if err := enc.Encode(e); err != nil {
			return fmt.Errorf("failed to encode entry %s: %w", e.ID, err)
		}
	}

	return nil
}

func encodeYAML(w io.Writer, entries []entry.Entry) error {
	if entries == nil {
		entries = []entry.Entry{}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("failed to encode entries: %w", err)
	}

	return enc.Close()
}
