// Package action is the one table of user actions and their shortcuts. Both
// the key binder and the sort menu are built from it.
package action

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"hacker-menu/internal/sortkey"
)

type ID string

const (
	Reload     ID = "reload"
	Headline   ID = "headline"
	Detail     ID = "detail"
	Open       ID = "open"
	Discussion ID = "discussion"
	Up         ID = "up"
	Down       ID = "down"
	Quit       ID = "quit"
)

// SortID is the action id selecting k.
func SortID(k sortkey.Key) ID {
	return ID("sort:" + k.String())
}

// Action is one bindable user action.
type Action struct {
	ID   ID
	Keys []string
	Help string
	// Sort is set for the actions that select a sort key.
	Sort    sortkey.Key
	IsSort  bool
	Binding key.Binding
}

// Table is the ordered set of actions.
type Table struct {
	actions []Action
	byKey   map[string]int
}

// Default builds the table: one entry per sort key, then the fixed actions.
func Default() *Table {
	var as []Action
	for _, k := range sortkey.AllKeys() {
		as = append(as, Action{
			ID:     SortID(k),
			Keys:   []string{string(k.Shortcut())},
			Help:   "sort by " + k.Label(),
			Sort:   k,
			IsSort: true,
		})
	}
	as = append(as,
		Action{ID: Reload, Keys: []string{"r"}, Help: "reload"},
		Action{ID: Headline, Keys: []string{"h"}, Help: "headline"},
		Action{ID: Detail, Keys: []string{" ", "space"}, Help: "details"},
		Action{ID: Open, Keys: []string{"enter"}, Help: "open link + thread"},
		Action{ID: Discussion, Keys: []string{"c"}, Help: "open thread"},
		Action{ID: Up, Keys: []string{"up", "k"}, Help: "up"},
		Action{ID: Down, Keys: []string{"down", "j"}, Help: "down"},
		Action{ID: Quit, Keys: []string{"q", "ctrl+c"}, Help: "quit"},
	)
	t, err := New(as)
	if err != nil {
		panic(err)
	}
	return t
}

// New validates as and builds their key bindings. A key bound twice is an error.
func New(as []Action) (*Table, error) {
	t := &Table{byKey: map[string]int{}}
	for i, a := range as {
		if len(a.Keys) == 0 {
			return nil, fmt.Errorf("action: %s has no keys", a.ID)
		}
		for _, k := range a.Keys {
			if prev, dup := t.byKey[k]; dup {
				return nil, fmt.Errorf("action: key %q bound to both %s and %s", k, as[prev].ID, a.ID)
			}
			t.byKey[k] = i
		}
		a.Binding = key.NewBinding(
			key.WithKeys(a.Keys...),
			key.WithHelp(helpKey(a.Keys[0]), a.Help),
		)
		t.actions = append(t.actions, a)
	}
	return t, nil
}

func helpKey(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

// All returns the actions in table order.
func (t *Table) All() []Action {
	return append([]Action(nil), t.actions...)
}

// Lookup returns the action bound to a key press string as reported by
// bubbletea (tea.KeyMsg.String()).
func (t *Table) Lookup(k string) (Action, bool) {
	i, ok := t.byKey[k]
	if !ok {
		return Action{}, false
	}
	return t.actions[i], true
}

// Get returns the action with id.
func (t *Table) Get(id ID) (Action, bool) {
	for _, a := range t.actions {
		if a.ID == id {
			return a, true
		}
	}
	return Action{}, false
}

// Bindings returns the key bindings in table order, for help rendering.
func (t *Table) Bindings() []key.Binding {
	out := make([]key.Binding, len(t.actions))
	for i, a := range t.actions {
		out[i] = a.Binding
	}
	return out
}

// MenuEntry is one line of the sort menu.
type MenuEntry struct {
	Key      sortkey.Key
	Label    string
	Shortcut string
	Checked  bool
}

// Menu lists the sort actions in display order, checking current.
func (t *Table) Menu(current sortkey.Key) []MenuEntry {
	var out []MenuEntry
	for _, a := range t.actions {
		if !a.IsSort {
			continue
		}
		out = append(out, MenuEntry{
			Key:      a.Sort,
			Label:    a.Sort.Label(),
			Shortcut: a.Binding.Help().Key,
			Checked:  a.Sort == current,
		})
	}
	return out
}
