// Package gallery is the terminal rendering backend: a grid of variation
// cards and a full-screen preview driven by the preview controller.
package gallery

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/swatchbook/internal/card"
	"github.com/alexisbeaulieu97/swatchbook/internal/colour"
	"github.com/alexisbeaulieu97/swatchbook/internal/preview"
	"github.com/alexisbeaulieu97/swatchbook/internal/session"
)

// DefaultNoticeTimeout is how long a notice stays up when Options leaves it unset.
const DefaultNoticeTimeout = 6 * time.Second

// Options tunes the model.
type Options struct {
	// CardBackground is used for contrast decisions and as the terminal
	// backdrop of swatches with alpha.
	CardBackground string
	NoticeTimeout  time.Duration
}

// Model is the gallery model
type Model struct {
	ctx context.Context
	svc Service

	snapshot   session.Snapshot
	cards      []card.View
	controller *preview.Controller
	keyboard   *preview.Bus

	viewMode ViewMode
	cursor   int
	loading  bool
	applying string
	notice   *session.Notice

	// noticeSeq numbers notices so a late ClearNoticeMsg cannot hide a newer one.
	noticeSeq     int
	noticeTimeout time.Duration

	spinner spinner.Model
	help    help.Model

	cardBackground string
	resolver       colour.Resolver

	width  int
	height int
}

// NewModel creates a gallery model that loads from svc on Init.
func NewModel(ctx context.Context, svc Service, opts Options) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	bg := opts.CardBackground
	if bg == "" {
		bg = "#ffffff"
	}
	timeout := opts.NoticeTimeout
	if timeout <= 0 {
		timeout = DefaultNoticeTimeout
	}
	bus := preview.NewBus()

	return Model{
		ctx:            ctx,
		svc:            svc,
		controller:     preview.New(nil, bus),
		keyboard:       bus,
		viewMode:       ViewGallery,
		loading:        true,
		spinner:        s,
		help:           help.New(),
		noticeTimeout:  timeout,
		cardBackground: bg,
		resolver:       colour.NamedResolver{},
		width:          80,
		height:         24,
	}
}

// Init initializes the model and returns initial commands
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadCmd(m.ctx, m.svc))
}

// setSnapshot rebuilds the cards and the preview controller for snap. The
// contrast pass runs after layout, as a separate step.
func (m *Model) setSnapshot(snap session.Snapshot) {
	m.snapshot = snap
	views := card.Gallery(snap.Variations, snap.ActiveSlug)
	m.cards = card.AnnotateAll(views, card.VariableReader{Background: m.cardBackground}, m.resolver)
	if m.controller.State() == preview.Open {
		m.controller.Close(preview.CloseButton)
		m.viewMode = ViewGallery
	}
	m.controller = preview.New(snap.Variations, m.keyboard)
	if m.cursor >= len(m.cards) {
		m.cursor = 0
	}
}

// SelectedCard returns the card under the cursor.
func (m Model) SelectedCard() (card.View, bool) {
	if m.cursor < 0 || m.cursor >= len(m.cards) {
		return card.View{}, false
	}
	return m.cards[m.cursor], true
}

// Cursor returns the index of the selected card.
func (m Model) Cursor() int { return m.cursor }

// Mode returns the active screen.
func (m Model) Mode() ViewMode { return m.viewMode }

// Controller exposes the preview controller.
func (m Model) Controller() *preview.Controller { return m.controller }

// Cards returns the rendered cards.
func (m Model) Cards() []card.View { return m.cards }

// showNotice puts n on display and schedules its dismissal.
func (m *Model) showNotice(n session.Notice) tea.Cmd {
	m.noticeSeq++
	m.notice = &n
	seq := m.noticeSeq
	return tea.Tick(m.noticeTimeout, func(time.Time) tea.Msg {
		return ClearNoticeMsg{Seq: seq}
	})
}

// Notice returns the notice on display, if any.
func (m Model) Notice() (session.Notice, bool) {
	if m.notice == nil {
		return session.Notice{}, false
	}
	return *m.notice, true
}

func (m *Model) moveCursor(delta int) {
	n := len(m.cards)
	if n == 0 {
		return
	}
	m.cursor = ((m.cursor+delta)%n + n) % n
}
