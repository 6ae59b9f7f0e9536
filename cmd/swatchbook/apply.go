package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatchbook/internal/session"
	"github.com/alexisbeaulieu97/swatchbook/internal/variation"
	"github.com/alexisbeaulieu97/swatchbook/pkg/diff"
)

type applyOptions struct {
	dryRun bool
}

func newApplyCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &applyOptions{}

	cmd := &cobra.Command{
		Use:   "apply <slug>",
		Short: "Apply a style variation to the configured target",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, rootFlags, opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Show how the active configuration would change without applying")

	return cmd
}

func runApply(cmd *cobra.Command, flags *rootFlags, opts *applyOptions, slug string) error {
	app, err := newApp(cmd, flags, false)
	if err != nil {
		return err
	}
	defer app.Close()

	snap, err := loadSnapshot(cmd, app)
	if err != nil {
		return err
	}

	if opts.dryRun {
		return renderApplyDiff(cmd, snap, slug)
	}

	before := len(app.session.Notices())
	notice := app.session.Apply(cmd.Context(), slug)
	if raised := app.session.Notices(); len(raised) > before+1 {
		printNotices(cmd.ErrOrStderr(), raised[before:len(raised)-1])
	}
	if notice.Level == session.LevelError {
		return newCommandError("apply", fmt.Sprintf("applying %q", slug), errors.New(notice.Message),
			"Run 'swatchbook list' to check the slug and verify the apply target is writable.")
	}

	fmt.Fprintln(cmd.OutOrStdout(), notice.Message)
	return nil
}

// renderApplyDiff prints the difference between the active variation's
// configuration and the one slug would send.
func renderApplyDiff(cmd *cobra.Command, snap session.Snapshot, slug string) error {
	target, _, ok := snap.Find(slug)
	if !ok {
		return newCommandError("apply", fmt.Sprintf("looking up %q", slug), fmt.Errorf("variation %q not found", slug),
			"Run 'swatchbook list' to see the available slugs.")
	}

	var before []byte
	beforeLabel := "(none)"
	if active, _, ok := snap.Find(snap.ActiveSlug); ok && snap.ActiveSlug != "" {
		encoded, err := configJSON(active)
		if err != nil {
			return err
		}
		before, beforeLabel = encoded, active.Key()
	}
	after, err := configJSON(target)
	if err != nil {
		return err
	}

	out := diff.Unified(before, after, beforeLabel, target.Key())
	if out == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Variation %q is already active.\n", target.DisplayTitle())
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

func configJSON(v variation.Variation) ([]byte, error) {
	raw := v.Config.Raw
	if raw == nil {
		raw = map[string]any{}
	}
	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", v.Key(), err)
	}
	return append(data, '\n'), nil
}
