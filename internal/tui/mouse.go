package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// twinWidth is the clickable width of the twin-link glyph at a row's start.
const twinWidth = 2

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	b, line, ok := m.hit(msg.Y)

	switch msg.Action {
	case tea.MouseActionMotion:
		m.hover(b.post.ID, ok)

	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.rows.Move(-1)
			m.ensureFocusVisible()
		case tea.MouseButtonWheelDown:
			m.rows.Move(1)
			m.ensureFocusVisible()
		case tea.MouseButtonLeft:
			if !ok {
				return m, nil
			}
			m.hover(b.post.ID, true)
			m.pressSeq++
			id, seq := b.post.ID, m.pressSeq
			m.press = &pressState{id: id, seq: seq}
			return m, tea.Tick(longPress, func(time.Time) tea.Msg {
				return longPressMsg{id: id, seq: seq}
			})
		}

	case tea.MouseActionRelease:
		p := m.press
		m.press = nil
		if p == nil || p.fired || !ok || b.post.ID != p.id {
			return m, nil
		}
		switch {
		case line == 0 && msg.X < twinWidth:
			m.links.Open(b.post)
		case line == 0:
			m.links.OpenTitle(b.post)
		case line == 1 && !m.headline:
			m.links.OpenDiscussion(b.post)
		}
	}
	return m, nil
}

// hover moves the pointer to row id, or off every row when ok is false.
func (m *Model) hover(id int, ok bool) {
	if m.isHovered && (!ok || m.hovered != id) {
		m.rows.Leave(m.hovered)
		m.isHovered = false
	}
	if ok && !m.isHovered {
		m.rows.Enter(id)
		m.hovered = id
		m.isHovered = true
	}
}
