package cli

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/gobedca/gobedca/pkg/bedca"
	errs "github.com/gobedca/gobedca/pkg/errors"
)

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// browseCommand creates the interactive "browse" command: navigate the food
// list and fetch the selected food's profile.
func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Interactively browse the food list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := c.newClient(cmd)

			sp := newSpinner(cmd.Context(), "Fetching food list...")
			sp.Start()
			previews, err := client.ListAllFoods(cmd.Context())
			sp.Stop()
			if err != nil {
				return describeError(err)
			}
			if len(previews) == 0 {
				printInfo("The database returned no foods")
				return nil
			}

			model := newFoodListModel(previews)
			p := tea.NewProgram(model, tea.WithContext(cmd.Context()), tea.WithOutput(os.Stderr))
			final, err := p.Run()
			if err != nil {
				return err
			}

			m, ok := final.(foodListModel)
			if !ok || m.selected == nil {
				return nil
			}

			id, err := errs.ValidateFoodID(m.selected.ID)
			if err != nil {
				return err
			}
			food, err := client.GetFoodByID(cmd.Context(), id)
			if err != nil {
				return describeError(err)
			}
			renderFood(food)
			return nil
		},
	}
}

// foodListModel is the bubbletea model for interactive food selection.
// Typing narrows the list by substring match on either name.
type foodListModel struct {
	foods    []bedca.FoodPreview
	filtered []bedca.FoodPreview
	filter   string
	cursor   int
	offset   int
	height   int
	selected *bedca.FoodPreview
}

func newFoodListModel(foods []bedca.FoodPreview) foodListModel {
	return foodListModel{
		foods:    foods,
		filtered: foods,
		height:   15,
	}
}

func (m foodListModel) Init() tea.Cmd {
	return nil
}

func (m foodListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "up":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "enter":
			if len(m.filtered) > 0 {
				selected := m.filtered[m.cursor]
				m.selected = &selected
				return m, tea.Quit
			}
		case "backspace":
			if m.filter != "" {
				m.filter = m.filter[:len(m.filter)-1]
				m.applyFilter()
			}
		default:
			if msg.Type == tea.KeyRunes {
				m.filter += string(msg.Runes)
				m.applyFilter()
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 8
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m *foodListModel) applyFilter() {
	m.cursor = 0
	m.offset = 0
	if m.filter == "" {
		m.filtered = m.foods
		return
	}
	needle := strings.ToLower(m.filter)
	filtered := make([]bedca.FoodPreview, 0, len(m.foods))
	for _, f := range m.foods {
		if strings.Contains(strings.ToLower(f.NameES), needle) ||
			strings.Contains(strings.ToLower(f.NameEN), needle) {
			filtered = append(filtered, f)
		}
	}
	m.filtered = filtered
}

func (m foodListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Browse Foods"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  type to filter  esc quit"))
	b.WriteString("\n")
	if m.filter != "" {
		b.WriteString(StyleValue.Render("filter: " + m.filter))
	}
	b.WriteString("\n")

	if len(m.filtered) == 0 {
		b.WriteString(listDimStyle.Render("  no foods match"))
		b.WriteString("\n")
		return b.String()
	}

	end := m.offset + m.height
	if end > len(m.filtered) {
		end = len(m.filtered)
	}

	rows := [][]string{}
	for i := m.offset; i < end; i++ {
		f := m.filtered[i]
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, f.ID, f.NameES, f.NameEN})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "ID", "Spanish name", "English name").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.offset+row == m.cursor {
				return listSelectedStyle
			}
			if col == 3 {
				return listDimStyle
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.filtered))))
	return b.String()
}
