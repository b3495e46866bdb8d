// # cmd/code2uml/ui.go
package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			MarginLeft(2).
			Foreground(lipgloss.Color("#3B82F6")).
			Bold(true).
			Render

	docStyle = lipgloss.NewStyle().Margin(1, 2)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FBBF24")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#64748B")).
			Italic(true)
)

type item struct {
	title, desc string
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return i.title + i.desc }

type model struct {
	list       list.Model
	update     Update
	lastRender time.Time
}

type updateMsg struct {
	update Update
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v-4)
	case updateMsg:
		m.update = msg.update
		m.lastRender = msg.update.RenderedAt

		items := []list.Item{}
		for _, mod := range m.update.Modules {
			items = append(items, item{
				title: mod.Name,
				desc: fmt.Sprintf("%d classes | %d functions | %d imports",
					len(mod.Classes), len(mod.Functions), len(mod.Imports)),
			})
		}
		for _, w := range m.update.Warnings {
			items = append(items, item{title: "Warning", desc: w})
		}
		m.list.SetItems(items)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	status := statusStyle.Render(fmt.Sprintf("Last render: %v | %d modules | %d edges | %d external",
		m.lastRender.Format("15:04:05"), len(m.update.Modules), m.update.EdgeCount, len(m.update.Externals)))

	var summary string
	if len(m.update.Warnings) == 0 {
		summary = successStyle.Render(fmt.Sprintf("diagram up to date: %s", m.update.OutputPath))
	} else {
		summary = warningStyle.Render(fmt.Sprintf("%d warnings", len(m.update.Warnings)))
	}

	header := fmt.Sprintf("%s\n%s | %s\n", titleStyle("code2uml"), status, summary)
	return docStyle.Render(header + "\n" + m.list.View())
}

func initialModel() model {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Modules"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)

	return model{
		list:       l,
		lastRender: time.Now(),
	}
}
