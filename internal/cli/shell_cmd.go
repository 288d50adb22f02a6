package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/herald/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newShellCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive question console",
		Long:  "Type questions and see the card each one resolves to, exactly as the bot would answer in a channel.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("shell requires an interactive terminal")
			}
			p := tea.NewProgram(newShellModel(app))
			_, err := p.Run()
			return err
		},
	}
}

// shellModel is the bubbletea Model for the question console.
type shellModel struct {
	input      textinput.Model
	app        *App
	transcript []string
	quitting   bool
}

func newShellModel(app *App) shellModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = "❯ "
	ti.Placeholder = "ask a question"
	ti.CharLimit = 500

	return shellModel{input: ti, app: app}
}

func (m shellModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			text := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if text == "" {
				return m, nil
			}
			if text == "exit" || text == "quit" {
				m.quitting = true
				return m, tea.Quit
			}
			m.transcript = append(m.transcript, m.answer(text))
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m shellModel) answer(text string) string {
	var b strings.Builder
	b.WriteString(formatter.Dim("❯ " + text))
	b.WriteString("\n")
	card, ok := m.app.Classifier.Classify(text)
	if !ok {
		b.WriteString(formatter.FormatNoMatch(suggestTopics(m.app, text)))
	} else {
		b.WriteString(formatter.FormatCard(card))
	}
	return b.String()
}

func (m shellModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	if len(m.transcript) == 0 {
		b.WriteString(formatter.Dim("Type a question; esc or ctrl+c to quit.") + "\n\n")
	}
	// Show the last few answers to keep the view bounded.
	start := 0
	if len(m.transcript) > 5 {
		start = len(m.transcript) - 5
	}
	for _, entry := range m.transcript[start:] {
		b.WriteString(entry)
		b.WriteString("\n")
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")
	return b.String()
}
