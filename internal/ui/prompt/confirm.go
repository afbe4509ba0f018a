package prompt

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/proj-dev/proj/internal/ui/styles"
)

// ConfirmResult holds the outcome of a yes/no prompt. Cancelled is set
// when the user backs out without answering.
type ConfirmResult struct {
	Confirmed bool
	Cancelled bool
}

type confirmModel struct {
	question  string
	confirmed bool
	done      bool
	cancelled bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "y", "Y":
		m.confirmed = true
		m.done = true
	case "n", "N", "enter": // enter takes the (y/N) default
		m.confirmed = false
		m.done = true
	case "ctrl+c", "q", "esc":
		m.cancelled = true
		m.done = true
	default:
		return m, nil
	}
	return m, tea.Quit
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s %s ", m.question, styles.AccentStyle.Render("(y/N)?"))
}

// Confirm asks question and waits for a single y/n keypress.
// Enter answers no; destructive commands must opt in explicitly.
func Confirm(question string) (ConfirmResult, error) {
	p := tea.NewProgram(confirmModel{question: question})
	final, err := p.Run()
	if err != nil {
		return ConfirmResult{}, err
	}

	m := final.(confirmModel)
	return ConfirmResult{
		Confirmed: m.confirmed,
		Cancelled: m.cancelled,
	}, nil
}
