// Package sortkey holds the closed set of listing orders and the controller
// that owns the current one.
package sortkey

import (
	"fmt"
	"strings"
	"sync"
)

// Key is one of the fixed listing orders.
type Key int

const (
	Rank Key = iota
	Score
	Comments
	Time
	Title
)

var allKeys = []Key{Rank, Score, Comments, Time, Title}

var meta = map[Key]struct {
	name  string
	label string
	cut   rune
}{
	Rank:     {"rank", "Rank", '1'},
	Score:    {"score", "Score", '2'},
	Comments: {"comments", "Comments", '3'},
	Time:     {"time", "Time", '4'},
	Title:    {"title", "Title", '5'},
}

// AllKeys returns every key in menu display order.
func AllKeys() []Key {
	out := make([]Key, len(allKeys))
	copy(out, allKeys)
	return out
}

func (k Key) String() string {
	if m, ok := meta[k]; ok {
		return m.name
	}
	return fmt.Sprintf("sortkey(%d)", int(k))
}

// Label is the human-readable menu label.
func (k Key) Label() string {
	return meta[k].label
}

// Shortcut is the single-character keyboard binding for the key.
func (k Key) Shortcut() rune {
	return meta[k].cut
}

// Parse resolves a lower-case key name as used in config and flags.
func Parse(s string) (Key, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, k := range allKeys {
		if meta[k].name == s {
			return k, nil
		}
	}
	return Rank, fmt.Errorf("sortkey: unknown key %q", s)
}

// Controller owns the current key and notifies subscribers on every change.
type Controller struct {
	mu      sync.Mutex
	current Key
	nextID  int
	subs    map[int]func(Key)
}

func NewController(initial Key) *Controller {
	return &Controller{current: initial, subs: map[int]func(Key){}}
}

func (c *Controller) Current() Key {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Set replaces the current key unconditionally and notifies subscribers,
// even when k equals the current key.
func (c *Controller) Set(k Key) {
	c.mu.Lock()
	c.current = k
	subs := make([]func(Key), 0, len(c.subs))
	for id := 0; id < c.nextID; id++ {
		if fn, ok := c.subs[id]; ok {
			subs = append(subs, fn)
		}
	}
	c.mu.Unlock()

	for _, fn := range subs {
		fn(k)
	}
}

// Subscribe registers fn for key changes. The returned func unregisters it.
func (c *Controller) Subscribe(fn func(Key)) (cancel func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}
