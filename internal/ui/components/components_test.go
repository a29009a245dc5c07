package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestOptionListNavigation(t *testing.T) {
	o := NewOptionList("Skin?", []string{"dry", "oily", "thick"}, -1)
	if o.Cursor != 0 || o.Chosen != -1 {
		t.Fatalf("initial cursor=%d chosen=%d, want 0/-1", o.Cursor, o.Chosen)
	}

	o, _ = o.Update(keyPress(tea.KeyUp))
	if o.Cursor != 0 {
		t.Errorf("cursor moved above first option: %d", o.Cursor)
	}

	o, _ = o.Update(keyPress(tea.KeyDown))
	o, _ = o.Update(keyPress(tea.KeyDown))
	o, _ = o.Update(keyPress(tea.KeyDown))
	if o.Cursor != 2 {
		t.Errorf("cursor = %d, want 2", o.Cursor)
	}

	o = o.Choose()
	if o.Chosen != 2 {
		t.Errorf("chosen = %d, want 2", o.Chosen)
	}
}

func TestOptionListStartsOnChosen(t *testing.T) {
	o := NewOptionList("Skin?", []string{"dry", "oily"}, 1)
	if o.Cursor != 1 || o.Chosen != 1 {
		t.Errorf("cursor=%d chosen=%d, want 1/1", o.Cursor, o.Chosen)
	}

	o = NewOptionList("Skin?", []string{"dry", "oily"}, 7)
	if o.Chosen != -1 {
		t.Errorf("out of range chosen kept: %d", o.Chosen)
	}
}

func TestOptionListView(t *testing.T) {
	o := NewOptionList("Skin?", []string{"dry", "oily"}, 1)
	v := o.View()
	for _, want := range []string{"Skin?", "1) dry", "2) oily", "●"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q:\n%s", want, v)
		}
	}
}

func TestMenuSkipsDisabled(t *testing.T) {
	pressed := ""
	m := NewMenu([]MenuItem{
		{Label: "A", Disabled: true},
		{Label: "B", Action: func() tea.Cmd { pressed = "B"; return nil }},
		{Label: "C", Disabled: true},
		{Label: "D", Action: func() tea.Cmd { pressed = "D"; return nil }},
	})
	if m.Selected != 1 {
		t.Fatalf("selected = %d, want first enabled item 1", m.Selected)
	}

	m, _ = m.Update(keyPress(tea.KeyDown))
	if m.Selected != 3 {
		t.Errorf("selected = %d, want 3", m.Selected)
	}

	m.Update(keyPress(tea.KeyEnter))
	if pressed != "D" {
		t.Errorf("pressed = %q, want D", pressed)
	}
}

func TestButtonView(t *testing.T) {
	b := NewButton("Next", "→")
	if !strings.Contains(b.View(), "[→] Next") {
		t.Errorf("button view = %q", b.View())
	}
	b.Disabled = true
	if !strings.Contains(b.View(), "Next") {
		t.Errorf("disabled button lost its label: %q", b.View())
	}

	row := ButtonRow(NewButton("Prev", ""), NewButton("Next", ""))
	if !strings.Contains(row, "Prev") || !strings.Contains(row, "Next") {
		t.Errorf("row = %q", row)
	}
}

func TestProgressBarCaption(t *testing.T) {
	p := NewProgressBar("Vata", 0.29, true, 40)
	if !strings.Contains(p.View(), "29%") {
		t.Errorf("expected rounded percentage, got %q", p.View())
	}

	p.Caption = "3 of 8"
	v := p.View()
	if !strings.Contains(v, "3 of 8") || strings.Contains(v, "29%") {
		t.Errorf("caption should replace percentage, got %q", v)
	}
}

func TestContentWidthBounds(t *testing.T) {
	if got := ContentWidth(10); got != 20 {
		t.Errorf("ContentWidth(10) = %d, want 20", got)
	}
	if got := ContentWidth(200); got != 72 {
		t.Errorf("ContentWidth(200) = %d, want 72", got)
	}
	if got := ContentWidth(50); got != 44 {
		t.Errorf("ContentWidth(50) = %d, want 44", got)
	}
}

func TestMenuUpStopsAtFirstEnabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "A", Disabled: true},
		{Label: "B"},
		{Label: "C"},
	})
	m, _ = m.Update(keyPress(tea.KeyDown))
	m, _ = m.Update(keyPress(tea.KeyUp))
	m, _ = m.Update(keyPress(tea.KeyUp))
	if m.Selected != 1 {
		t.Errorf("selected = %d, want 1", m.Selected)
	}
}

func TestMenuView(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "TAKE QUIZ"},
		{Label: "HISTORY", Disabled: true},
		{Label: "EXIT"},
	})

	for _, compact := range []bool{false, true} {
		v := m.View(60, compact)
		for _, want := range []string{"▸ TAKE QUIZ", "HISTORY", "EXIT"} {
			if !strings.Contains(v, want) {
				t.Errorf("compact=%v: view missing %q:\n%s", compact, want, v)
			}
		}
		if strings.Contains(v, "▸ HISTORY") || strings.Contains(v, "▸ EXIT") {
			t.Errorf("compact=%v: only the selected item should carry the marker", compact)
		}
	}
}
