package gallery

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/swatchbook/internal/session"
)

// Service is the slice of session.Session the gallery drives.
type Service interface {
	Load(ctx context.Context) session.Snapshot
	Apply(ctx context.Context, slug string) session.Notice
	Snapshot() session.Snapshot
	Notices() []session.Notice
}

// loadCmd loads the session snapshot asynchronously
func loadCmd(ctx context.Context, svc Service) tea.Cmd {
	return func() tea.Msg {
		snap := svc.Load(ctx)
		return LoadedMsg{Snapshot: snap, Notices: svc.Notices()}
	}
}

// applyCmd applies a variation asynchronously
func applyCmd(ctx context.Context, svc Service, slug string) tea.Cmd {
	return func() tea.Msg {
		notice := svc.Apply(ctx, slug)
		return AppliedMsg{Slug: slug, Notice: notice, Snapshot: svc.Snapshot()}
	}
}
