package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/triangulator/pkg/mask"
)

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorBright)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// CountListModel is the bubbletea model for choosing how many photos a
// session uses. Each row shows the mask sequence the count implies.
type CountListModel struct {
	Cursor   int
	Selected int // zero until a count is chosen
}

// NewCountListModel creates a count picker with the cursor on current.
func NewCountListModel(current int) CountListModel {
	cursor := 0
	if current >= 1 && current <= mask.MaxPhotos {
		cursor = current - 1
	}
	return CountListModel{Cursor: cursor}
}

func (m CountListModel) Init() tea.Cmd {
	return nil
}

func (m CountListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch s := key.String(); s {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < mask.MaxPhotos-1 {
			m.Cursor++
		}
	case "enter":
		m.Selected = m.Cursor + 1
		return m, tea.Quit
	case "1", "2", "3", "4", "5", "6", "7", "8":
		m.Cursor = int(s[0] - '1')
		m.Selected = m.Cursor + 1
		return m, tea.Quit
	}
	return m, nil
}

func (m CountListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("How many photos?"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  1-8 jump  q quit"))
	b.WriteString("\n\n")

	rows := make([][]string, 0, mask.MaxPhotos)
	for n := 1; n <= mask.MaxPhotos; n++ {
		cursor := "  "
		if n-1 == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, fmt.Sprint(n), formatIDs(mask.Sequence(n))})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorMuted).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Photos", "Masks").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case row == m.Cursor:
				return listSelectedStyle
			case col == 2:
				return listDimStyle
			}
			return listNormalStyle
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	return b.String()
}

// pickCount runs the count picker and returns the chosen count, or zero if
// the user quit without choosing.
func pickCount(current int) (int, error) {
	final, err := tea.NewProgram(NewCountListModel(current)).Run()
	if err != nil {
		return 0, fmt.Errorf("count picker: %w", err)
	}
	return final.(CountListModel).Selected, nil
}
