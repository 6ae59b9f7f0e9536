package gallery

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/swatchbook/internal/ports"
	"github.com/alexisbeaulieu97/swatchbook/internal/preview"
	"github.com/alexisbeaulieu97/swatchbook/internal/session"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.viewMode == ViewPreview {
			return m.handlePreviewKeys(msg)
		}
		return m.handleGalleryKeys(msg)

	case spinner.TickMsg:
		if !m.loading && m.applying == "" {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case LoadedMsg:
		m.loading = false
		m.setSnapshot(msg.Snapshot)
		if len(msg.Notices) > 0 {
			return m, m.showNotice(msg.Notices[len(msg.Notices)-1])
		}
		return m, nil

	case AppliedMsg:
		m.applying = ""
		cmd := m.showNotice(msg.Notice)
		if msg.Notice.Level == session.LevelSuccess {
			index := m.controller.Index()
			mode := m.controller.Mode()
			open := m.controller.State() == preview.Open
			m.setSnapshot(msg.Snapshot)
			if open {
				m.controller.Open(index)
				if m.controller.Mode() != mode {
					m.controller.ToggleMode()
				}
				m.viewMode = ViewPreview
			}
		}
		return m, cmd

	case ClearNoticeMsg:
		if msg.Seq == m.noticeSeq {
			m.notice = nil
		}
		return m, nil
	}

	return m, nil
}

// handleGalleryKeys handles keys on the card grid
func (m Model) handleGalleryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, galleryKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, galleryKeys.Left):
		m.moveCursor(-1)

	case key.Matches(msg, galleryKeys.Right):
		m.moveCursor(1)

	case key.Matches(msg, galleryKeys.Preview):
		if m.controller.Open(m.cursor) {
			m.viewMode = ViewPreview
		}

	case key.Matches(msg, galleryKeys.Apply):
		if selected, ok := m.SelectedCard(); ok {
			return m.startApply(selected.Slug)
		}

	case key.Matches(msg, galleryKeys.Dismiss):
		m.notice = nil

	case key.Matches(msg, galleryKeys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// handlePreviewKeys handles keys while the preview is open. Escape goes
// through the keyboard bus so the controller closes itself.
func (m Model) handlePreviewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, previewKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, previewKeys.Escape):
		m.keyboard.Dispatch(ports.KeyEscape)

	case key.Matches(msg, previewKeys.Previous):
		m.controller.Previous()

	case key.Matches(msg, previewKeys.Next):
		m.controller.Next()

	case key.Matches(msg, previewKeys.Mode):
		m.controller.ToggleMode()

	case key.Matches(msg, previewKeys.Close):
		m.controller.Close(preview.CloseButton)

	case key.Matches(msg, previewKeys.Apply):
		if v, ok := m.controller.Current(); ok {
			return m.startApply(v.Key())
		}
	}

	if m.controller.State() == preview.Closed {
		m.cursor = m.controller.Index()
		m.viewMode = ViewGallery
	}
	return m, nil
}

func (m Model) startApply(slug string) (tea.Model, tea.Cmd) {
	if m.applying != "" || m.svc == nil {
		return m, nil
	}
	m.applying = slug
	return m, tea.Batch(m.spinner.Tick, applyCmd(m.ctx, m.svc, slug))
}
