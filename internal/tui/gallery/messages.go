package gallery

import (
	"github.com/alexisbeaulieu97/swatchbook/internal/session"
)

// ViewMode determines which screen to render
type ViewMode int

const (
	ViewGallery ViewMode = iota
	ViewPreview
)

// LoadedMsg carries the snapshot produced by the first session load.
type LoadedMsg struct {
	Snapshot session.Snapshot
	Notices  []session.Notice
}

// AppliedMsg reports the outcome of an apply and the snapshot after it.
type AppliedMsg struct {
	Slug     string
	Notice   session.Notice
	Snapshot session.Snapshot
}

// ClearNoticeMsg dismisses the notice banner if it is still the one numbered
// Seq. A newer notice stays up.
type ClearNoticeMsg struct {
	Seq int
}
