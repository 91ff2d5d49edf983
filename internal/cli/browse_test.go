package cli

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nodedex/nodedex/pkg/nodejs"
)

func testReleases() []nodejs.Release {
	date := time.Date(2018, 3, 29, 0, 0, 0, 0, time.UTC)
	return []nodejs.Release{
		{Version: "10.0.0", Date: date},
		{Version: "4.9.1", Date: date, LTS: "Argon"},
		{Version: "0.1.0", Date: date},
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestBrowseModel_Navigation(t *testing.T) {
	m := newReleaseListModel(testReleases())

	next, _ := m.Update(key("j"))
	m = next.(releaseListModel)
	if m.cursor != 1 {
		t.Errorf("cursor = %d after j, want 1", m.cursor)
	}

	next, _ = m.Update(key("k"))
	m = next.(releaseListModel)
	if m.cursor != 0 {
		t.Errorf("cursor = %d after k, want 0", m.cursor)
	}

	// Cursor stays in bounds.
	next, _ = m.Update(key("k"))
	m = next.(releaseListModel)
	if m.cursor != 0 {
		t.Errorf("cursor = %d at top after k, want 0", m.cursor)
	}
}

func TestBrowseModel_Select(t *testing.T) {
	m := newReleaseListModel(testReleases())

	next, _ := m.Update(key("j"))
	m = next.(releaseListModel)
	next, cmd := m.Update(key("enter"))
	m = next.(releaseListModel)

	if m.selected == nil || m.selected.Version != "4.9.1" {
		t.Fatalf("selected = %v, want 4.9.1", m.selected)
	}
	if cmd == nil {
		t.Error("enter should quit the program")
	}
}

func TestBrowseModel_Quit(t *testing.T) {
	m := newReleaseListModel(testReleases())
	next, cmd := m.Update(key("esc"))
	m = next.(releaseListModel)

	if m.selected != nil {
		t.Error("esc should not select anything")
	}
	if cmd == nil {
		t.Error("esc should quit the program")
	}
}

func TestBrowseModel_View(t *testing.T) {
	m := newReleaseListModel(testReleases())
	view := m.View()

	for _, want := range []string{"10.0.0", "4.9.1", "Argon", "0.1.0"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}
