package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatchbook/internal/preview"
	"github.com/alexisbeaulieu97/swatchbook/internal/render/htmlview"
	"github.com/alexisbeaulieu97/swatchbook/internal/resolve"
)

type previewOptions struct {
	output string
	mode   string
}

func newPreviewCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview <slug>",
		Short: "Render the preview page of one variation as HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, rootFlags, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.output, "out", "o", "", "Write the page to a file instead of stdout")
	cmd.Flags().StringVar(&opts.mode, "mode", "", "Preview mode: light or dark (defaults to render.mode)")

	return cmd
}

func runPreview(cmd *cobra.Command, flags *rootFlags, opts *previewOptions, slug string) error {
	mode := opts.mode
	switch mode {
	case "", resolve.Light.String(), resolve.Dark.String():
	default:
		return fmt.Errorf("invalid mode %q: expected light or dark", mode)
	}

	app, err := newApp(cmd, flags, false)
	if err != nil {
		return err
	}
	defer app.Close()

	if mode == "" {
		mode = app.cfg.Render.Mode
	}

	snap, err := loadSnapshot(cmd, app)
	if err != nil {
		return err
	}
	_, index, ok := snap.Find(slug)
	if !ok {
		return newCommandError("preview", fmt.Sprintf("looking up %q", slug), errors.New("variation not found"),
			"Run 'swatchbook list' to see the available slugs.")
	}

	controller := preview.New(snap.Variations, preview.NewBus())
	controller.Open(index)
	defer controller.Close(preview.CloseButton)
	if resolve.ParseMode(mode) == resolve.Dark {
		controller.ToggleMode()
	}

	view, _ := controller.View()
	w, closeOut, err := openOutput(cmd, opts.output)
	if err != nil {
		return err
	}
	err = htmlview.RenderPreview(w, view)
	if closeErr := closeOut(); err == nil && closeErr != nil {
		err = fmt.Errorf("close output: %w", closeErr)
	}
	return err
}
