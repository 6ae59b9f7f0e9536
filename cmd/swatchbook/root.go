package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/swatchbook/internal/tui/gallery"
)

type rootFlags struct {
	configPath string
	sourceType string
	path       string
	url        string
	ref        string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "swatchbook",
		Short:         "Browse, preview and apply theme style variations",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a terminal there is nothing to drive the gallery.
			if !isTerminal(cmd.OutOrStdout()) {
				return runList(cmd, flags, &listOptions{})
			}
			return runGallery(cmd, flags)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Path to a swatchbook.yaml configuration file")
	pf.StringVar(&flags.sourceType, "source", "", "Variation source: dir, git or rest")
	pf.StringVar(&flags.path, "path", "", "Theme directory (dir) or clone destination (git)")
	pf.StringVar(&flags.url, "url", "", "Repository URL (git) or endpoint base URL (rest)")
	pf.StringVar(&flags.ref, "ref", "", "Branch to clone for git sources")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level: trace, debug, info, warn or error")

	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newApplyCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runGallery(cmd *cobra.Command, flags *rootFlags) error {
	app, err := newApp(cmd, flags, true)
	if err != nil {
		return err
	}
	defer app.Close()

	app.log.Info("launching gallery")
	m := gallery.NewModel(cmd.Context(), app.session, gallery.Options{
		CardBackground: app.cfg.Render.CardBackground,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		app.log.Error(err, "gallery execution failed")
		return fmt.Errorf("failed to run gallery: %w", err)
	}

	app.log.Info("gallery closed")
	return nil
}

func isTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
