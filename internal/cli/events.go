package cli

import (
	"fmt"
	"strings"

	"github.com/valter-silva-au/adr-scribe/internal/observability"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// Style definitions for the events browser.
var (
	eventsTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("230")).
				Background(lipgloss.Color("62")).
				Padding(0, 1)

	eventsCursorStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("62"))

	outcomeSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	outcomeFailure = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	outcomeMissing = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))

	eventsDetailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	eventsHelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type eventsModel struct {
	events []observability.Event
	cursor int
	height int
}

func newEventsModel(events []observability.Event) eventsModel {
	return eventsModel{events: events, cursor: len(events) - 1}
}

func (m eventsModel) Init() tea.Cmd {
	return nil
}

func (m eventsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "j":
			if m.cursor < len(m.events)-1 {
				m.cursor++
			}
			return m, nil
		case "g":
			m.cursor = 0
			return m, nil
		case "G":
			m.cursor = len(m.events) - 1
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

func (m eventsModel) View() string {
	title := eventsTitleStyle.Render(" adrs events ")
	help := eventsHelpStyle.Render("up/down: navigate | q: quit")

	if len(m.events) == 0 {
		return fmt.Sprintf("%s\n\n  No hook events recorded yet.\n\n%s", title, help)
	}

	var b strings.Builder
	for i, e := range m.events {
		prefix := "  "
		if i == m.cursor {
			prefix = eventsCursorStyle.Render("> ")
		}
		line := fmt.Sprintf("%s %-20s %s", e.Time.Format("2006-01-02 15:04"), e.Type, renderOutcome(e))
		b.WriteString(prefix + line + "\n")
	}

	// Detail pane for the selected event.
	selected := m.events[m.cursor]
	detail := eventsDetailStyle.Render(renderEventDetail(selected))

	return fmt.Sprintf("%s\n\n%s\n%s\n\n%s", title, b.String(), detail, help)
}

func renderOutcome(e observability.Event) string {
	outcome, _ := e.Data["outcome"].(string)
	switch outcome {
	case "success":
		return outcomeSuccess.Render(outcome)
	case "generator_missing":
		return outcomeMissing.Render(outcome)
	case "":
		return "-"
	default:
		return outcomeFailure.Render(outcome)
	}
}

func renderEventDetail(e observability.Event) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("  type:  %s\n", e.Type))
	if title, ok := e.Data["title"].(string); ok && title != "" {
		b.WriteString(fmt.Sprintf("  title: %s\n", title))
	}
	if ct, ok := e.Data["completion_type"].(string); ok && ct != "" {
		b.WriteString(fmt.Sprintf("  completion type: %s\n", ct))
	}
	// JSON numbers decode as float64.
	if score, ok := e.Data["score"].(float64); ok {
		b.WriteString(fmt.Sprintf("  score: %d\n", int(score)))
	}
	return strings.TrimRight(b.String(), "\n")
}

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Browse recorded hook outcomes",
	Long: `Browse the JSONL log of hook outcomes (.adrs_events.jsonl).

Opens an interactive browser by default; use --plain for a static table
suitable for scripts and CI logs.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if EventLog == nil {
			fmt.Println("Event log not available.")
			return nil
		}

		limit, _ := cmd.Flags().GetInt("limit")
		events, err := EventLog.Tail(limit)
		if err != nil {
			return fmt.Errorf("reading event log: %w", err)
		}

		plain, _ := cmd.Flags().GetBool("plain")
		if plain {
			printEventsTable(events)
			return nil
		}

		p := tea.NewProgram(newEventsModel(events))
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running events browser: %w", err)
		}
		return nil
	},
}

func printEventsTable(events []observability.Event) {
	if len(events) == 0 {
		fmt.Println("No hook events recorded yet.")
		return
	}

	fmt.Printf("%-17s %-22s %-18s %s\n", "TIME", "TYPE", "OUTCOME", "TITLE")
	for _, e := range events {
		outcome, _ := e.Data["outcome"].(string)
		title, _ := e.Data["title"].(string)
		fmt.Printf("%-17s %-22s %-18s %s\n",
			e.Time.Format("2006-01-02 15:04"), e.Type, outcome, title)
	}
}

func init() {
	eventsCmd.Flags().Bool("plain", false, "Print a static table instead of the interactive browser")
	eventsCmd.Flags().Int("limit", 50, "Maximum number of events to show (0 for all)")
	rootCmd.AddCommand(eventsCmd)
}
