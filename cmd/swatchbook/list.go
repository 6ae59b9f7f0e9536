package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatchbook/internal/session"
	"github.com/alexisbeaulieu97/swatchbook/internal/variation"
)

type listOptions struct {
	jsonOutput bool
}

func newListCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the available style variations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runList(cmd *cobra.Command, flags *rootFlags, opts *listOptions) error {
	app, err := newApp(cmd, flags, false)
	if err != nil {
		return err
	}
	defer app.Close()

	snap, err := loadSnapshot(cmd, app)
	if err != nil {
		return err
	}

	if opts.jsonOutput {
		return renderListJSON(cmd, snap)
	}
	if len(snap.Variations) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No style variations found.")
		return nil
	}
	return renderListTable(cmd, snap)
}

func renderListTable(cmd *cobra.Command, snap session.Snapshot) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "SLUG\tTITLE\tSOURCE\tCOLOURS\tCURRENT")
	for _, v := range snap.Variations {
		current := ""
		if v.Key() == snap.ActiveSlug {
			current = "*"
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%d\t%s\n",
			v.Key(),
			valueOrFallback(v.Title, "(untitled)"),
			v.Source,
			len(v.Config.Settings.Color.Palette),
			current,
		)
	}

	return writer.Flush()
}

type listJSONVariation struct {
	Slug    string           `json:"slug"`
	Title   string           `json:"title"`
	Source  variation.Source `json:"source"`
	Path    string           `json:"path,omitempty"`
	Colours []string         `json:"colours"`
	Current bool             `json:"current"`
	Issues  int              `json:"issues"`
}

type listJSONPayload struct {
	Version    string              `json:"version"`
	Count      int                 `json:"count"`
	Active     string              `json:"active,omitempty"`
	Variations []listJSONVariation `json:"variations"`
}

func renderListJSON(cmd *cobra.Command, snap session.Snapshot) error {
	payload := listJSONPayload{
		Version:    "1.0",
		Count:      len(snap.Variations),
		Active:     snap.ActiveSlug,
		Variations: make([]listJSONVariation, len(snap.Variations)),
	}

	for i, v := range snap.Variations {
		colours := make([]string, 0, len(v.Config.Settings.Color.Palette))
		for _, entry := range v.Config.Settings.Color.Palette {
			colours = append(colours, entry.Color)
		}
		payload.Variations[i] = listJSONVariation{
			Slug:    v.Key(),
			Title:   v.DisplayTitle(),
			Source:  v.Source,
			Path:    v.SourcePath,
			Colours: colours,
			Current: v.Key() == snap.ActiveSlug,
			Issues:  len(v.Repairs) + len(v.Issues),
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func valueOrFallback(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
