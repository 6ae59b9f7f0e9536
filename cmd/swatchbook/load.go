package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatchbook/internal/session"
)

// loadSnapshot loads the session once. An error notice fails the command;
// other notices are echoed to stderr.
func loadSnapshot(cmd *cobra.Command, app *appContext) (session.Snapshot, error) {
	snap := app.session.Load(cmd.Context())
	notices := app.session.Notices()
	for _, n := range notices {
		if n.Level == session.LevelError {
			return snap, newCommandError("load variations", describeSource(app), errors.New(n.Message),
				"Check the --source, --path and --url settings and try again.")
		}
	}
	printNotices(cmd.ErrOrStderr(), notices)
	return snap, nil
}

func describeSource(app *appContext) string {
	src := app.cfg.Source
	if src.URL != "" {
		return fmt.Sprintf("%s source %s", src.Type, src.URL)
	}
	return fmt.Sprintf("%s source %s", src.Type, src.Path)
}

func printNotices(w io.Writer, notices []session.Notice) {
	for _, n := range notices {
		fmt.Fprintf(w, "%s: %s\n", n.Level, n.Message)
	}
}
