package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"hacker-menu/internal/action"
	"hacker-menu/internal/model"
	"hacker-menu/internal/render"
)

// block is one rendered row and where it starts on screen.
type block struct {
	post  model.Post
	lines []string
	top   int
}

func (m Model) View() string {
	var sb strings.Builder
	for _, l := range m.header() {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}
	rows := m.rows.Rows()
	if len(rows) == 0 {
		if m.fetching {
			sb.WriteString(menuStyle.Render(m.spinner.View() + " loading…"))
		} else {
			sb.WriteString(menuStyle.Render("no posts"))
		}
		sb.WriteByte('\n')
	}
	for _, b := range m.blocks() {
		for _, l := range b.lines {
			sb.WriteString(l)
			sb.WriteByte('\n')
		}
	}
	for _, l := range m.footer() {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (m Model) header() []string {
	mark := menuStyle.Render("ℏ")
	if m.headline {
		mark = checkedStyle.Render("ℏ")
	}
	reload := menuStyle.Render("↻")
	if m.fetching {
		reload = m.spinner.View()
	}

	var menu []string
	for _, e := range m.actions.Menu(m.rows.Key()) {
		entry := e.Shortcut + " " + e.Label
		if e.Checked {
			menu = append(menu, checkedStyle.Render("✓"+entry))
		} else {
			menu = append(menu, menuStyle.Render(" "+entry))
		}
	}
	return []string{
		mark + " " + reload,
		strings.Join(menu, " "),
	}
}

func (m Model) footer() []string {
	var out []string
	if m.err != nil {
		out = append(out, errStyle.Render(fmt.Sprintf("fetch failed: %v", m.err)))
	}
	var bindings []key.Binding
	for _, a := range m.actions.All() {
		if a.IsSort {
			continue
		}
		b := a.Binding
		if a.ID == action.Reload {
			b.SetEnabled(m.ReloadEnabled())
		}
		bindings = append(bindings, b)
	}
	h := help.New()
	h.Width = m.width
	return append(out, h.ShortHelpView(bindings))
}

// available is how many lines rows may use; 0 means unbounded.
func (m Model) available() int {
	if m.height <= 0 {
		return 0
	}
	return max(1, m.height-len(m.header())-len(m.footer())-1)
}

// blocks renders rows from the scroll offset until the screen is full.
func (m Model) blocks() []block {
	rows := m.rows.Rows()
	top := len(m.header())
	limit := m.available()
	var out []block
	used := 0
	for i := m.offset; i < len(rows); i++ {
		lines := m.renderRow(rows[i])
		if limit > 0 && used > 0 && used+len(lines) > limit {
			break
		}
		out = append(out, block{post: rows[i], lines: lines, top: top + used})
		used += len(lines)
	}
	return out
}

func (m Model) renderRow(p model.Post) []string {
	v := render.Row(p, m.now, m.links)
	st := m.rows.State(p.ID)
	focused, hasFocus := m.rows.Focused()
	hot := st.Hovering || (hasFocus && focused == p.ID)

	twin, title, info := twinStyle, textOnlyStyle, infoStyle
	if v.TitleExternal {
		title = titleStyle
	}
	if hot {
		twin, title, info = twinHoverStyle, hoverStyle, infoHoverStyle
	}
	if m.width > 4 {
		title = title.MaxWidth(m.width - 3)
	}

	lines := []string{twin.Render("◆") + " " + title.Render(v.Title)}
	if !m.headline {
		meta := fmt.Sprintf("▲ %-6s ✉ %-6s", v.Score, v.Comments)
		if v.TypeBadge != "" {
			meta += badgeStyle.Render(" ◇ " + v.TypeBadge)
		}
		lines = append(lines, "  "+info.Render(meta+"  "+v.Timestamp))
	}
	if st.Detail {
		box := detailStyle.Render(strings.Join(v.Detail, "\n"))
		lines = append(lines, strings.Split(box, "\n")...)
	}
	return lines
}

// hit maps a screen line to the row drawn there and the line within it.
func (m Model) hit(y int) (block, int, bool) {
	for _, b := range m.blocks() {
		if y >= b.top && y < b.top+len(b.lines) {
			return b, y - b.top, true
		}
	}
	return block{}, 0, false
}

// ensureFocusVisible scrolls so the focused row is fully on screen.
func (m *Model) ensureFocusVisible() {
	rows := m.rows.Rows()
	if m.offset >= len(rows) {
		m.offset = max(0, len(rows)-1)
	}
	id, ok := m.rows.Focused()
	limit := m.available()
	if !ok || limit == 0 {
		return
	}
	idx := -1
	for i, p := range rows {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	if idx < m.offset {
		m.offset = idx
		return
	}
	for m.offset < idx {
		used := 0
		for i := m.offset; i <= idx; i++ {
			used += len(m.renderRow(rows[i]))
		}
		if used <= limit {
			break
		}
		m.offset++
	}
}
