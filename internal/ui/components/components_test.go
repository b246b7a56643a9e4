package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pulse/internal/survey"
	"github.com/abhisek/pulse/internal/ui/theme"
)

func testQuestion() survey.Question {
	return survey.Question{
		ID:    "q",
		Title: "Pick one",
		Options: []survey.Option{
			{ID: "a", Label: "Alpha", Description: "first"},
			{ID: "b", Label: "Beta", Badge: "popular"},
			{ID: "c", Label: "Gamma"},
		},
	}
}

func TestProgressBar_Filled(t *testing.T) {
	tests := []struct {
		percent int
		width   int
		want    int
	}{
		{0, 20, 0},
		{50, 20, 10},
		{99, 20, 19},
		{100, 20, 20},
		{150, 20, 20},
		{-5, 20, 0},
	}
	for _, tt := range tests {
		p := NewProgressBar("", tt.percent, false, 0)
		if got := p.Filled(tt.width); got != tt.want {
			t.Errorf("Filled(%d) at %d%% = %d, want %d", tt.width, tt.percent, got, tt.want)
		}
	}
}

func TestProgressBar_View(t *testing.T) {
	p := NewProgressBar("Craft", 75, true, 40).WithFill(theme.Accent)
	view := p.View()
	if !strings.Contains(view, "Craft") {
		t.Error("expected label in view")
	}
	if !strings.Contains(view, "75%") {
		t.Error("expected percentage in view")
	}
}

func TestOptionList_Navigation(t *testing.T) {
	l := NewOptionList(testQuestion(), "", 40)
	if l.Cursor != 0 || l.Chosen != -1 {
		t.Fatalf("initial cursor/chosen = %d/%d, want 0/-1", l.Cursor, l.Chosen)
	}

	l = l.Up()
	if l.Cursor != 0 {
		t.Errorf("Up at top moved cursor to %d", l.Cursor)
	}
	l = l.Down().Down().Down()
	if l.Cursor != 2 {
		t.Errorf("Down past bottom: cursor = %d, want 2", l.Cursor)
	}
	l = l.Focus(1)
	if opt, ok := l.Current(); !ok || opt.ID != "b" {
		t.Errorf("Current = %q, %v; want b", opt.ID, ok)
	}
	l = l.Focus(9)
	if l.Cursor != 1 {
		t.Errorf("out-of-range Focus moved cursor to %d", l.Cursor)
	}
}

func TestOptionList_StartsOnChosen(t *testing.T) {
	l := NewOptionList(testQuestion(), "c", 40)
	if l.Cursor != 2 || l.Chosen != 2 {
		t.Errorf("cursor/chosen = %d/%d, want 2/2", l.Cursor, l.Chosen)
	}

	l = NewOptionList(testQuestion(), "zzz", 40)
	if l.Cursor != 0 || l.Chosen != -1 {
		t.Errorf("unknown answer: cursor/chosen = %d/%d, want 0/-1", l.Cursor, l.Chosen)
	}
}

func TestOptionList_View(t *testing.T) {
	l := NewOptionList(testQuestion(), "b", 40)
	view := l.View()
	for _, want := range []string{"1. Alpha", "2. Beta", "3. Gamma", "[popular]", "first", "●"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	l.Compact = true
	if strings.Contains(l.View(), "first") {
		t.Error("compact view should hide descriptions")
	}
}

func TestDigitIndex(t *testing.T) {
	tests := map[string]int{"1": 0, "4": 3, "9": 8, "0": -1, "a": -1, "12": -1, "": -1}
	for k, want := range tests {
		if got := DigitIndex(k); got != want {
			t.Errorf("DigitIndex(%q) = %d, want %d", k, got, want)
		}
	}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	fired := ""
	m := NewMenu([]MenuItem{
		{Label: "Off", Disabled: true},
		{Label: "One", Action: func() tea.Cmd { fired = "one"; return nil }},
		{Label: "Two", Action: func() tea.Cmd { fired = "two"; return nil }},
	})
	if m.Selected != 1 {
		t.Fatalf("Selected = %d, want first enabled item 1", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 1 {
		t.Errorf("Up onto disabled item: Selected = %d, want 1", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if fired != "two" {
		t.Errorf("fired = %q, want two", fired)
	}
}

func TestMenu_SelectIsEnterOnly(t *testing.T) {
	fired := 0
	m := NewMenu([]MenuItem{
		{Label: "Go", Action: func() tea.Cmd { fired++; return nil }},
	})

	for _, k := range []tea.KeyPressMsg{
		{Code: 'l', Text: "l"},
		{Code: tea.KeyRight},
	} {
		m, _ = m.Update(k)
	}
	if fired != 0 {
		t.Fatalf("navigation keys fired the item %d times", fired)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if fired != 1 {
		t.Errorf("enter fired %d times, want 1", fired)
	}
}

func TestButtonRow(t *testing.T) {
	row := ButtonRow(60, NewButton("Back", false), NewButton("Next", true))
	if !strings.Contains(row, "Back") || !strings.Contains(row, "Next") {
		t.Errorf("row missing labels: %q", row)
	}
}

func TestContentWidth(t *testing.T) {
	tests := map[int]int{10: 20, 60: 54, 200: 76}
	for in, want := range tests {
		if got := ContentWidth(in); got != want {
			t.Errorf("ContentWidth(%d) = %d, want %d", in, got, want)
		}
	}
}
