package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ruminaider/termpick/internal/quickpick"
)

const defaultHeight = 20

// PickerModel is the Bubble Tea model for the single-select profile list.
// Separator rows render as section headers and are skipped by the cursor.
type PickerModel struct {
	placeholder string
	items       []quickpick.Item
	cursor      int
	offset      int
	height      int
	width       int
	quitting    bool

	// Selection is set when the user accepts an item or fires its configure
	// action. It stays nil when the picker is dismissed.
	Selection *quickpick.Selection
}

// NewPickerModel creates a picker model with the cursor on the first
// selectable row.
func NewPickerModel(placeholder string, items []quickpick.Item) PickerModel {
	m := PickerModel{
		placeholder: placeholder,
		items:       items,
		height:      defaultHeight,
	}
	for i := range m.items {
		if !m.isSkippable(i) {
			m.cursor = i
			break
		}
	}
	return m
}

func (m PickerModel) Init() tea.Cmd {
	return nil
}

func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		// Keep the title and footer visible.
		m.height = msg.Height - 4
		if m.height < 3 {
			m.height = 3
		}
		m.clampScroll()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			m.Selection = nil
			return m, tea.Quit

		case "up", "k":
			m.moveCursor(-1)

		case "down", "j":
			m.moveCursor(+1)

		case "enter", "alt+enter":
			if it, ok := m.current(); ok {
				m.quitting = true
				m.Selection = &quickpick.Selection{
					Item:    it,
					KeyMods: quickpick.KeyModifiers{Alt: msg.Alt},
				}
				return m, tea.Quit
			}

		case "c":
			if it, ok := m.current(); ok && it.CanConfigure {
				m.quitting = true
				m.Selection = &quickpick.Selection{Item: it, Configure: true}
				return m, tea.Quit
			}
		}
	}

	return m, nil
}

func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(TitleStyle.Render(m.placeholder))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(DimStyle.Render("(no profiles found)"))
		b.WriteString("\n")
		return b.String()
	}

	// Reserve lines for scroll indicators so total output stays within
	// the viewport height.
	totalRows := len(m.items)
	visibleItems := m.height
	hasAbove := m.offset > 0
	hasBelow := m.offset+m.height < totalRows
	if hasAbove {
		visibleItems--
	}
	if hasBelow {
		visibleItems--
	}
	if visibleItems < 1 {
		visibleItems = 1
	}

	if hasAbove {
		b.WriteString(DimStyle.Render("  ↑ more") + "\n")
	}

	end := m.offset + visibleItems
	if end > totalRows {
		end = totalRows
	}

	for i := m.offset; i < end; i++ {
		it := m.items[i]

		if it.Separator {
			b.WriteString(HeaderStyle.Render(fmt.Sprintf("── %s ──", it.Label)))
			b.WriteString("\n")
			continue
		}

		cursor := "  "
		label := it.Label
		if i == m.cursor {
			cursor = "> "
			label = CursorStyle.Render(label)
		}

		line := cursor + label
		if it.Description != "" {
			line += " " + DimStyle.Render(it.Description)
		}
		b.WriteString(line + "\n")
	}

	if end < totalRows {
		b.WriteString(DimStyle.Render("  ↓ more") + "\n")
	}

	// Footer
	b.WriteString("\n")
	hint := "enter select  q quit"
	if it, ok := m.current(); ok && it.CanConfigure {
		hint = "enter select  c configure  q quit"
	}
	b.WriteString(HintStyle.Render(hint))
	b.WriteString("\n")

	return b.String()
}

// current returns the item under the cursor when it is selectable.
func (m PickerModel) current() (quickpick.Item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) || m.isSkippable(m.cursor) {
		return quickpick.Item{}, false
	}
	return m.items[m.cursor], true
}

// isSkippable returns true if the row at index i should be skipped by the
// cursor.
func (m PickerModel) isSkippable(i int) bool {
	if i < 0 || i >= len(m.items) {
		return false
	}
	return m.items[i].Separator
}

// moveCursor advances the cursor in the given direction (+1 or -1), skipping
// separator rows, and keeps the cursor inside the visible window.
func (m *PickerModel) moveCursor(dir int) {
	next := m.cursor + dir
	for next >= 0 && next < len(m.items) {
		if !m.isSkippable(next) {
			m.cursor = next
			m.clampScroll()
			return
		}
		next += dir
	}
}

// clampScroll adjusts the scroll offset so the cursor stays visible.
func (m *PickerModel) clampScroll() {
	if m.height <= 0 {
		return
	}

	// When items overflow, scroll indicators take up to 2 lines.
	effectiveHeight := m.height
	if len(m.items) > m.height {
		effectiveHeight -= 2
	}
	if effectiveHeight < 1 {
		effectiveHeight = 1
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+effectiveHeight {
		m.offset = m.cursor - effectiveHeight + 1
	}
	maxOffset := len(m.items) - effectiveHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if m.offset > maxOffset {
		m.offset = maxOffset
	}
}

var _ tea.Model = PickerModel{}
