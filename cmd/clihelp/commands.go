package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/r3d91ll/clihelp/pkg/config"
	"github.com/r3d91ll/clihelp/pkg/errors"
	"github.com/r3d91ll/clihelp/pkg/help"
	"github.com/r3d91ll/clihelp/pkg/layout"
	"github.com/r3d91ll/clihelp/pkg/shell"
)

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           help.CLIName,
		Short:         "Fixed-width help pages for command line tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if a.verbose {
				a.log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to the configuration file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug output to stderr")

	root.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		a.printBuiltinHelp(cmd)
	})

	root.AddCommand(
		newRenderCommand(a),
		newShellCommand(a),
		newInitCommand(a),
		newVersionCommand(a),
	)
	return root
}

// printBuiltinHelp renders the help page of cmd from the built-in entries.
func (a *app) printBuiltinHelp(cmd *cobra.Command) {
	path := strings.TrimSpace(strings.TrimPrefix(cmd.CommandPath(), cmd.Root().Name()))
	r := help.NewRenderer(help.BuiltinRegistry(), help.Options{
		Title: help.CLITitle,
		Name:  help.CLIName,
		Color: a.isTTY(),
	})
	lines, err := r.Render(path, r.MaxWidthFor(a.termWidth()))
	if err != nil {
		fmt.Fprintln(a.errOut, errors.Sprint(err))
		return
	}
	if err := a.writeLines(lines); err != nil {
		fmt.Fprintln(a.errOut, errors.Sprint(err))
	}
}

func (a *app) writeLines(lines []string) error {
	w := layout.NewWriter()
	w.Write(lines...)
	if _, err := w.WriteTo(a.out); err != nil {
		return errors.IOWrap(err, errors.ErrIOWriteFailed, "failed to write output")
	}
	return nil
}

func (a *app) resolveConfigPath() string {
	if a.configPath != "" {
		return a.configPath
	}
	return config.DefaultConfigPath()
}

func (a *app) loadConfig() (*config.Config, error) {
	path := a.resolveConfigPath()
	a.log.WithField("path", path).Debug("loading configuration")
	return config.LoadOrDefault(path, config.WithLogger(a.log))
}

// pageFlags are the flags shared by commands that render pages.
type pageFlags struct {
	width int
	color string
}

func (f *pageFlags) register(fs *pflag.FlagSet) {
	fs.IntVarP(&f.width, "width", "w", 0, "page width, defaults to the terminal width")
	fs.StringVar(&f.color, "color", "", "colorize output: auto, always or never")
}

// renderer builds a renderer from cfg, applying the --color override.
func (a *app) renderer(cfg *config.Config, flags *pageFlags) (*help.Renderer, error) {
	if flags.color != "" {
		cfg.Help.Color = flags.color
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	reg, err := cfg.Registry()
	if err != nil {
		return nil, err
	}
	return help.NewRenderer(reg, cfg.Help.RendererOptions(a.isTTY())), nil
}

func (a *app) pageWidth(r *help.Renderer, flags *pageFlags) int {
	if flags.width != 0 {
		return flags.width
	}
	return r.MaxWidthFor(a.termWidth())
}

func newRenderCommand(a *app) *cobra.Command {
	flags := &pageFlags{}
	cmd := &cobra.Command{
		Use:     "render [path...]",
		Aliases: []string{"r"},
		Short:   "Print the help page for a command path",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			r, err := a.renderer(cfg, flags)
			if err != nil {
				return err
			}

			path := strings.Join(args, " ")
			width := a.pageWidth(r, flags)
			a.log.WithFields(logrus.Fields{"path": path, "width": width}).Debug("rendering help")

			lines, err := r.Render(path, width)
			if err != nil {
				return err
			}
			return a.writeLines(lines)
		},
	}
	flags.register(cmd.Flags())
	return cmd
}

func newShellCommand(a *app) *cobra.Command {
	flags := &pageFlags{}
	cmd := &cobra.Command{
		Use:     "shell",
		Aliases: []string{"sh"},
		Short:   "Browse help pages interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			r, err := a.renderer(cfg, flags)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			homeDir, _ := os.UserHomeDir()
			sh := shell.New(r.Registry(), r, shell.Config{
				HistoryFile: filepath.Join(homeDir, ".clihelp_history"),
				Width:       a.pageWidth(r, flags),
				Stdout:      a.out,
				Color:       r.Options().Color,
				Logger:      a.log,
			})
			if err := sh.Run(ctx); err != nil && err != context.Canceled {
				return err
			}
			return nil
		},
	}
	flags.register(cmd.Flags())
	return cmd
}

func newInitCommand(a *app) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.resolveConfigPath()
			if _, err := os.Stat(path); os.IsNotExist(err) {
				if err := config.InitConfig(path); err != nil {
					return err
				}
			} else {
				if !force {
					ok, err := shell.ConfirmOverwrite(shell.NewInteractivePrompterWithIO(a.in, a.out), path)
					if err != nil {
						return err
					}
					if !ok {
						fmt.Fprintln(a.out, "Aborted.")
						return nil
					}
				}
				if err := config.Default().Save(path); err != nil {
					return err
				}
			}
			a.log.WithField("path", path).Info("configuration written")
			fmt.Fprintf(a.out, "Config initialized at: %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file without asking")
	return cmd
}

func newVersionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the clihelp version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.out, "clihelp %s\n", version)
		},
	}
}
