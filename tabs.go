package main

import "fmt"

// TabSet is the ordered list of open editors and the active one.
type TabSet struct {
	tabs   []*Editor
	active int
}

func (t *TabSet) Len() int         { return len(t.tabs) }
func (t *TabSet) ActiveIndex() int { return t.active }
func (t *TabSet) Tabs() []*Editor  { return t.tabs }
func (t *TabSet) At(i int) *Editor { return t.tabs[i] }
func (t *TabSet) Valid(i int) bool { return i >= 0 && i < len(t.tabs) }
func (t *TabSet) Empty() bool      { return len(t.tabs) == 0 }

// Active returns the active editor, or nil when no tab is open.
func (t *TabSet) Active() *Editor {
	if len(t.tabs) == 0 {
		return nil
	}
	return t.tabs[t.active]
}

// Add appends e and makes it active.
func (t *TabSet) Add(e *Editor) {
	t.tabs = append(t.tabs, e)
	t.active = len(t.tabs) - 1
}

// Next activates the following tab, wrapping around.
func (t *TabSet) Next() {
	if len(t.tabs) > 0 {
		t.active = (t.active + 1) % len(t.tabs)
	}
}

// Prev activates the preceding tab, wrapping around.
func (t *TabSet) Prev() {
	if len(t.tabs) > 0 {
		t.active = (t.active - 1 + len(t.tabs)) % len(t.tabs)
	}
}

// Remove closes tab i. The active editor stays active when a tab before it
// is removed; otherwise the index is clamped to the new last tab.
func (t *TabSet) Remove(i int) error {
	if !t.Valid(i) {
		return fmt.Errorf("no tab at index %d", i)
	}
	t.tabs = append(t.tabs[:i], t.tabs[i+1:]...)

	switch {
	case len(t.tabs) == 0:
		t.active = 0
	case i < t.active:
		t.active--
	case t.active >= len(t.tabs):
		t.active = len(t.tabs) - 1
	}
	return nil
}

// HasTitle reports whether any open tab uses title.
func (t *TabSet) HasTitle(title string) bool {
	for _, e := range t.tabs {
		if e.Title() == title {
			return true
		}
	}
	return false
}
