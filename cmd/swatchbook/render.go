package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatchbook/internal/render/htmlview"
)

type renderOptions struct {
	output string
	title  string
}

func newRenderCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the variation gallery as an HTML page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "out", "o", "", "Write the page to a file instead of stdout")
	cmd.Flags().StringVar(&opts.title, "title", "", "Page title")

	return cmd
}

func runRender(cmd *cobra.Command, flags *rootFlags, opts *renderOptions) error {
	app, err := newApp(cmd, flags, false)
	if err != nil {
		return err
	}
	defer app.Close()

	snap, err := loadSnapshot(cmd, app)
	if err != nil {
		return err
	}

	w, closeOut, err := openOutput(cmd, opts.output)
	if err != nil {
		return err
	}

	err = htmlview.RenderGallery(w, snap, htmlview.Options{
		Title:          opts.title,
		CardBackground: app.cfg.Render.CardBackground,
		Notices:        app.session.Notices(),
	})
	if closeErr := closeOut(); err == nil && closeErr != nil {
		err = fmt.Errorf("close output: %w", closeErr)
	}
	if err != nil {
		app.log.Error(err, "gallery render failed")
		return err
	}

	app.log.Info(fmt.Sprintf("rendered %d variation(s)", len(snap.Variations)))
	return nil
}
