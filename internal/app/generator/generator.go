//go:generate mockgen -source=generator.go -destination=generator_mock.go -package=generator
package generator

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"text/template"
	"time"

	"logdeck/internal/app/errors"
	"logdeck/internal/config"
	"logdeck/internal/config/logger"
)

const templatePath = "templates/logdeck.yaml.tmpl"

//go:embed templates/logdeck.yaml.tmpl
var templateFS embed.FS

// Options contains the values rendered into logdeck.yaml
type Options struct {
	LogLevel     string
	Capacity     int
	Interval     time.Duration
	Autostart    bool
	Theme        string
	ExportFormat string
}

// DefaultOptions mirrors the built-in configuration
func DefaultOptions() Options {
	return Options{
		LogLevel:     config.DefaultLogLevel,
		Capacity:     config.DefaultStoreCapacity,
		Interval:     config.DefaultStreamInterval,
		Autostart:    false,
		Theme:        config.DefaultTheme,
		ExportFormat: config.DefaultExportFormat,
	}
}

// Generator defines the interface for generating logdeck.yaml
type Generator interface {
	Generate(opts Options, force bool, dryRun bool) error
}

type generator struct {
	out io.Writer
	log logger.Logger
}

// NewGenerator creates a generator that prints dry runs to stdout
func NewGenerator(log logger.Logger) Generator {
	return NewGeneratorWithOutput(os.Stdout, log)
}

// NewGeneratorWithOutput creates a generator that prints dry runs to out
func NewGeneratorWithOutput(out io.Writer, log logger.Logger) Generator {
	return &generator{
		out: out,
		log: log,
	}
}

// Generate renders the template into logdeck.yaml, or to the output on dry run
func (g *generator) Generate(opts Options, force bool, dryRun bool) error {
	if !dryRun && !force {
		if _, err := os.Stat(config.ConfigFile); err == nil {
			return fmt.Errorf("%w: %s, use --force to overwrite", errors.ErrFileExists, config.ConfigFile)
		}
	}

	tmplContent, err := templateFS.ReadFile(templatePath)
	if err != nil {
		return fmt.Errorf("failed to read template: %w", err)
	}

	tmpl, err := template.New(config.ConfigFile).Parse(string(tmplContent))
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, opts); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	if dryRun {
		_, err := g.out.Write(buf.Bytes())
		return err
	}

	if err := os.WriteFile(config.ConfigFile, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	g.log.Info().Msgf("Generated %s", config.ConfigFile)

	return nil
}
