package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hyperfocus/hyperfocus/internal/domain"
	"github.com/hyperfocus/hyperfocus/internal/theme"
)

const emptyHistoryText = "No past sessions found."

// HistoryItem is one ended session in the history list
type HistoryItem struct {
	Session domain.Session
}

// FilterValue implements list.Item
func (i HistoryItem) FilterValue() string {
	return i.Session.StartTime.Local().Format("Mon Jan 2 2006")
}

// historyDelegate renders a history row as date, time range and duration
type historyDelegate struct {
	styles *theme.Styles
}

func (d historyDelegate) Height() int                             { return 1 }
func (d historyDelegate) Spacing() int                            { return 0 }
func (d historyDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d historyDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(HistoryItem)
	if !ok {
		return
	}

	cursor := " "
	if index == m.Index() {
		cursor = ">"
	}
	fmt.Fprint(w, formatHistoryRow(d.styles, cursor, item.Session))
}

// formatHistoryRow renders "> Mon Jan 2  09:00–09:25  25m"
func formatHistoryRow(styles *theme.Styles, cursor string, s domain.Session) string {
	start := s.StartTime.Local()
	span := start.Format("15:04")
	if s.EndTime != nil {
		span += "–" + s.EndTime.Local().Format("15:04")
	}

	return fmt.Sprintf("%s %s  %s  %s",
		cursor,
		styles.HistoryDate.Render(start.Format("Mon Jan _2")),
		styles.Muted.Render(span),
		styles.HistoryDuration.Render(domain.FormatSessionDuration(s)))
}

// HistoryList shows the ended sessions, newest first as the server orders them
type HistoryList struct {
	list   list.Model
	styles *theme.Styles
}

// NewHistoryList creates an empty history list
func NewHistoryList(styles *theme.Styles, keys *KeyMap) *HistoryList {
	l := list.New(nil, historyDelegate{styles: styles}, 60, 10)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.KeyMap.CursorUp = keys.Navigation.Up.Binding
	l.KeyMap.CursorDown = keys.Navigation.Down.Binding

	return &HistoryList{list: l, styles: styles}
}

// SetSessions replaces the rows
func (h *HistoryList) SetSessions(sessions []domain.Session) tea.Cmd {
	items := make([]list.Item, len(sessions))
	for i, s := range sessions {
		items[i] = HistoryItem{Session: s}
	}
	return h.list.SetItems(items)
}

// Len returns the number of rows
func (h *HistoryList) Len() int {
	return len(h.list.Items())
}

// SetSize sets the list dimensions
func (h *HistoryList) SetSize(width, height int) {
	h.list.SetSize(width, max(height, 1))
}

// Update forwards navigation keys to the list
func (h *HistoryList) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.list, cmd = h.list.Update(msg)
	return cmd
}

// View renders the section header and rows
func (h *HistoryList) View() string {
	var b strings.Builder
	b.WriteString(h.styles.SectionHeader.Render("Past Sessions"))
	b.WriteString("\n")
	if h.Len() == 0 {
		b.WriteString(h.styles.Muted.Render(emptyHistoryText))
		return b.String()
	}
	b.WriteString(h.list.View())
	return b.String()
}
