// Package presenter turns a batch of posts and the current sort key into
// render order, and tracks transient per-row UI state by post identity.
package presenter

import (
	"hacker-menu/internal/model"
	"hacker-menu/internal/sortkey"
)

// RowState is UI-only state for one row. The zero value is the initial state.
type RowState struct {
	Hovering bool
	Detail   bool
}

// Presenter is driven from a single event loop and is not safe for
// concurrent use.
type Presenter struct {
	sorter *sortkey.Controller
	cancel func()

	batch []model.Post
	rows  []model.Post
	state map[int]*RowState

	focus    int
	hasFocus bool
}

// New returns a presenter that re-sorts whenever sorter changes.
func New(sorter *sortkey.Controller) *Presenter {
	p := &Presenter{
		sorter: sorter,
		rows:   []model.Post{},
		state:  map[int]*RowState{},
	}
	p.cancel = sorter.Subscribe(func(sortkey.Key) { p.resort() })
	return p
}

// Close detaches the presenter from its controller.
func (p *Presenter) Close() {
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

// Replace swaps in a new batch. State for ids that survive is kept, the rest
// is dropped along with focus on a vanished row.
func (p *Presenter) Replace(batch []model.Post) {
	live := make(map[int]struct{}, len(batch))
	for _, post := range batch {
		live[post.ID] = struct{}{}
	}
	for id := range p.state {
		if _, ok := live[id]; !ok {
			delete(p.state, id)
		}
	}
	if _, ok := live[p.focus]; p.hasFocus && !ok {
		p.hasFocus = false
	}
	p.batch = append([]model.Post(nil), batch...)
	p.resort()
}

func (p *Presenter) resort() {
	p.rows = Present(p.batch, p.sorter.Current())
}

// Rows returns the batch in render order.
func (p *Presenter) Rows() []model.Post {
	return p.rows
}

func (p *Presenter) Key() sortkey.Key {
	return p.sorter.Current()
}

// State returns the row state for id, default when never touched.
func (p *Presenter) State(id int) RowState {
	if st, ok := p.state[id]; ok {
		return *st
	}
	return RowState{}
}

// Tracked reports whether any state has been created for id.
func (p *Presenter) Tracked(id int) bool {
	_, ok := p.state[id]
	return ok
}

func (p *Presenter) row(id int) *RowState {
	st, ok := p.state[id]
	if !ok {
		st = &RowState{}
		p.state[id] = st
	}
	return st
}

// Enter marks the pointer over row id and focuses it.
func (p *Presenter) Enter(id int) {
	p.row(id).Hovering = true
	p.Focus(id)
}

// Leave clears hover and hides the detail of row id.
func (p *Presenter) Leave(id int) {
	if _, ok := p.state[id]; !ok {
		return
	}
	st := p.row(id)
	st.Hovering = false
	st.Detail = false
}

// LongPress shows the detail of row id.
func (p *Presenter) LongPress(id int) {
	p.row(id).Detail = true
}

// Toggle flips the detail visibility of row id.
func (p *Presenter) Toggle(id int) {
	st := p.row(id)
	st.Detail = !st.Detail
}

func (p *Presenter) Focus(id int) {
	p.focus = id
	p.hasFocus = true
}

func (p *Presenter) Focused() (int, bool) {
	return p.focus, p.hasFocus
}

// FocusedPost returns the focused post in the current batch, if any.
func (p *Presenter) FocusedPost() (model.Post, bool) {
	if !p.hasFocus {
		return model.Post{}, false
	}
	for _, post := range p.rows {
		if post.ID == p.focus {
			return post, true
		}
	}
	return model.Post{}, false
}

// Move shifts focus by delta rows in render order, clamped to the list.
// Leaving a row hides its detail, as the pointer leaving would.
func (p *Presenter) Move(delta int) {
	if len(p.rows) == 0 {
		return
	}
	idx := -1
	if p.hasFocus {
		for i, post := range p.rows {
			if post.ID == p.focus {
				idx = i
				break
			}
		}
	}
	var next int
	switch {
	case idx < 0 && delta < 0:
		next = len(p.rows) - 1
	case idx < 0:
		next = 0
	default:
		next = idx + delta
	}
	next = max(0, min(next, len(p.rows)-1))
	if idx >= 0 && next != idx {
		p.Leave(p.rows[idx].ID)
	}
	p.Focus(p.rows[next].ID)
}
