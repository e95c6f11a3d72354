//go:generate mockgen -source=cli.go -destination=cli_mock.go -package=cli
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/x/term"
	"go.uber.org/fx"

	"logdeck/internal/app/bus"
	"logdeck/internal/app/errors"
	"logdeck/internal/app/generator"
	"logdeck/internal/app/store"
	"logdeck/internal/app/stream"
	"logdeck/internal/app/ui/wire"
	"logdeck/internal/config"
	"logdeck/internal/config/logger"
)

// CLI defines the interface for cli operations
type CLI interface {
	Execute() (int, error)
}

// Params contains dependencies for creating the CLI
type Params struct {
	fx.In

	Config    *config.Config
	UI        wire.UI
	Bus       bus.Bus
	Store     store.Store
	Streamer  stream.Streamer
	Generator generator.Generator
	Logger    logger.Logger
}

// cli represents the command-line interface for the application
type cli struct {
	cfg        *config.Config
	args       []string
	ui         wire.UI
	bus        bus.Bus
	store      store.Store
	streamer   stream.Streamer
	generator  generator.Generator
	out        io.Writer
	errOut     io.Writer
	isTerminal func() bool
	log        logger.Logger
}

// NewCLI creates a new cli instance reading os.Args
func NewCLI(p Params) CLI {
	return &cli{
		cfg:        p.Config,
		args:       os.Args[1:],
		ui:         p.UI,
		bus:        p.Bus,
		store:      p.Store,
		streamer:   p.Streamer,
		generator:  p.Generator,
		out:        os.Stdout,
		errOut:     os.Stderr,
		isTerminal: stdoutIsTerminal,
		log:        p.Logger.WithComponent("CLI"),
	}
}

func stdoutIsTerminal() bool {
	return term.IsTerminal(os.Stdout.Fd())
}

// Execute parses the arguments, runs the selected command and returns the exit code
func (c *cli) Execute() (int, error) {
	opts, err := Parse(c.args)
	if err != nil {
		c.log.Debug().Err(err).Msg("Failed to parse arguments")
		fmt.Fprint(c.errOut, RenderError(err))

		return 1, err
	}

	switch opts.Type {
	case CommandVersion:
		return c.handleVersion()
	case CommandHelp:
		return c.handleHelp()
	case CommandInit:
		return c.handleInit(opts)
	case CommandRun:
		return c.handleRun(opts)
	default:
		fmt.Fprint(c.errOut, RenderError(errors.ErrUnknownCommand))
		return 1, errors.ErrUnknownCommand
	}
}

// handleRun opens the console, or streams to stdout when there is no terminal or --no-ui is set
func (c *cli) handleRun(opts *Options) (int, error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.Stream || c.cfg.Stream.Autostart {
		if err := c.streamer.Start(ctx); err != nil {
			c.log.Error().Err(err).Msg("Failed to start stream")
			fmt.Fprint(c.errOut, RenderError(err))

			return 1, err
		}
	}

	defer func() {
		if err := c.streamer.Stop(context.Background()); err != nil {
			c.log.Warn().Err(err).Msg("Failed to stop stream")
		}
	}()

	if opts.NoUI || !c.isTerminal() {
		c.log.Debug().Msgf("Running headless (no-ui=%t)", opts.NoUI)
		return c.runHeadless(ctx)
	}

	return c.runTUI(ctx)
}

func (c *cli) runTUI(ctx context.Context) (int, error) {
	p, err := c.ui(ctx)
	if err != nil {
		c.log.Error().Err(err).Msg("Failed to create UI")
		fmt.Fprint(c.errOut, RenderError(err))

		return 1, err
	}

	if _, err := p.Run(); err != nil {
		c.log.Error().Err(err).Msg("UI exited with error")
		fmt.Fprint(c.errOut, RenderError(err))

		return 1, err
	}

	return 0, nil
}

// runHeadless prints the current snapshot oldest first, then follows new entries until ctx is done
func (c *cli) runHeadless(ctx context.Context) (int, error) {
	msgChan := c.bus.Subscribe(ctx)
	p := newPrinter(c.out, c.cfg.UI.Theme)

	snapshot := c.store.Snapshot()
	printed := make(map[string]struct{}, len(snapshot))

	for i := len(snapshot) - 1; i >= 0; i-- {
		p.Print(snapshot[i])
		printed[snapshot[i].ID] = struct{}{}
	}

	for {
		select {
		case <-ctx.Done():
			return 0, nil
		case msg, ok := <-msgChan:
			if !ok {
				return 0, nil
			}

			appended, isEntry := msg.Data.(bus.EntryAppended)
			if msg.Type != bus.EventEntryAppended || !isEntry {
				continue
			}

			if _, seen := printed[appended.Entry.ID]; seen {
				delete(printed, appended.Entry.ID)
				continue
			}

			p.Print(appended.Entry)
		}
	}
}

// handleInit writes the config template
func (c *cli) handleInit(opts *Options) (int, error) {
	if err := c.generator.Generate(generator.DefaultOptions(), opts.Force, opts.DryRun); err != nil {
		c.log.Error().Err(err).Msg("Failed to generate config")
		fmt.Fprint(c.errOut, RenderError(err))

		return 1, err
	}

	if !opts.DryRun {
		fmt.Fprintf(c.out, "Created %s\n", config.ConfigFile)
	}

	return 0, nil
}

// handleHelp displays help information
func (c *cli) handleHelp() (int, error) {
	c.log.Debug().Msg("Displaying help information")
	fmt.Fprint(c.out, RenderUsage())

	return 0, nil
}

// handleVersion displays version information
func (c *cli) handleVersion() (int, error) {
	c.log.Debug().Msg("Displaying version information")
	fmt.Fprintln(c.out, RenderTitle())

	return 0, nil
}
