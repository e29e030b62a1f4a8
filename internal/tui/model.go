package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"studymate/internal/domain"
	"studymate/internal/quiz"
)

// StudyPort is the TUI-facing subset of the study service.
type StudyPort interface {
	ProcessFile(path string) (*domain.StudyPack, error)
}

type screen int

const (
	screenPicking screen = iota
	screenLoading
	screenReady
)

type tab int

const (
	tabSummary tab = iota
	tabMindmap
	tabQuiz
	tabCount
)

var tabNames = [tabCount]string{"Summary", "Mindmap", "Quiz"}

// packMsg carries the result of processing an upload.
type packMsg struct {
	pack *domain.StudyPack
	err  error
}

// Model is the Bubble Tea model for the TUI application.
type Model struct {
	service  StudyPort
	picker   filepicker.Model
	input    textinput.Model
	viewport viewport.Model
	pack     *domain.StudyPack
	screen   screen
	tab      tab
	cursor   int
	revealed map[int]bool
	correct  map[int]bool
	path     string
	status   string
	ready    bool
}

// New creates a TUI model. With an empty path the user picks a file among
// the allowed extensions first.
func New(service StudyPort, path string, allowed []string) Model {
	ti := textinput.New()
	ti.Prompt = "answer> "
	ti.Placeholder = "Type the missing word and press Enter (empty Enter reveals)"
	ti.CharLimit = 0
	fp := filepicker.New()
	fp.AllowedTypes = allowed
	if wd, err := os.Getwd(); err == nil {
		fp.CurrentDirectory = wd
	}
	vp := viewport.New(0, 0)
	m := Model{
		service:  service,
		picker:   fp,
		input:    ti,
		viewport: vp,
		revealed: map[int]bool{},
		correct:  map[int]bool{},
		status:   "Pick a PDF or text file to study.",
	}
	if path != "" {
		m.screen = screenLoading
		m.path = path
		m.status = "Processing " + path + "..."
	}
	return m
}

// Init starts processing the given file or loads the picker directory.
func (m Model) Init() tea.Cmd {
	if m.screen == screenLoading {
		return m.process(m.path)
	}
	return m.picker.Init()
}

func (m Model) process(path string) tea.Cmd {
	return func() tea.Msg {
		pack, err := m.service.ProcessFile(path)
		return packMsg{pack: pack, err: err}
	}
}

// Update handles key, window and pipeline events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		// account for frames around result and input boxes
		_, rh := resultBoxStyle.GetFrameSize()
		_, qh := inputBoxStyle.GetFrameSize()
		totalHeaderLines := 2                                    // header + tabs
		totalFooterLines := 1                                    // status
		reserved := totalHeaderLines + totalFooterLines + qh + 1 // input line
		vh := msg.Height - reserved
		m.viewport.Width = max(20, msg.Width-4)
		m.viewport.Height = max(3, vh-rh)
		m.viewport.SetContent(m.renderTab())
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	case packMsg:
		if msg.err != nil {
			m.screen = screenPicking
			m.status = "Error: " + msg.err.Error()
			return m, m.picker.Init()
		}
		m.pack = msg.pack
		m.screen = screenReady
		m.tab = tabSummary
		m.cursor = 0
		m.revealed = map[int]bool{}
		m.correct = map[int]bool{}
		m.status = fmt.Sprintf("Loaded %s. Tab switches views.", msg.pack.Document.Path)
		m.viewport.SetContent(m.renderTab())
		m.viewport.GotoTop()
		return m, nil
	case tea.KeyMsg:
		// Global quits
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
	}

	switch m.screen {
	case screenPicking:
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		if ok, path := m.picker.DidSelectFile(msg); ok {
			m.screen = screenLoading
			m.path = path
			m.status = "Processing " + path + "..."
			return m, m.process(path)
		}
		if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
			m.status = path + " is not a supported document."
		}
		return m, cmd
	case screenReady:
		if key, ok := msg.(tea.KeyMsg); ok {
			return m.handleKey(key)
		}
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		return m.switchTab((m.tab + 1) % tabCount), nil
	case "shift+tab":
		return m.switchTab((m.tab + tabCount - 1) % tabCount), nil
	}
	if m.tab != tabQuiz {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	items := m.pack.Quiz
	switch msg.String() {
	case "down":
		if len(items) > 0 {
			m.cursor = (m.cursor + 1) % len(items)
			m.viewport.SetContent(m.renderTab())
		}
		return m, nil
	case "up":
		if len(items) > 0 {
			m.cursor = (m.cursor - 1 + len(items)) % len(items)
			m.viewport.SetContent(m.renderTab())
		}
		return m, nil
	case "enter":
		if len(items) == 0 {
			return m, nil
		}
		answer := strings.TrimSpace(m.input.Value())
		if answer == "" {
			m.revealed[m.cursor] = !m.revealed[m.cursor]
		} else {
			ok := quiz.CheckAnswer(items[m.cursor], answer)
			m.correct[m.cursor] = ok
			m.revealed[m.cursor] = true
			if ok {
				m.status = fmt.Sprintf("Q%d: correct!", m.cursor+1)
			} else {
				m.status = fmt.Sprintf("Q%d: not quite, the answer is %q.", m.cursor+1, items[m.cursor].Answer)
			}
			m.input.SetValue("")
		}
		m.viewport.SetContent(m.renderTab())
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) switchTab(t tab) Model {
	m.tab = t
	if t == tabQuiz {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	m.viewport.SetContent(m.renderTab())
	m.viewport.GotoTop()
	return m
}

// View renders the TUI layout and the active tab.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("StudyMate")
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	switch m.screen {
	case screenPicking:
		return header + "\n" + m.picker.View() + "\n" + status
	case screenLoading:
		return header + "\n" + status
	}
	results := resultBoxStyle.Render(m.viewport.View())
	out := header + "\n" + m.renderTabs() + "\n" + results + "\n"
	if m.tab == tabQuiz {
		out += inputBoxStyle.Render(m.input.View()) + "\n"
	}
	return out + status
}

func (m Model) renderTabs() string {
	parts := make([]string, tabCount)
	for i, name := range tabNames {
		if tab(i) == m.tab {
			parts[i] = activeTabStyle.Render(name)
		} else {
			parts[i] = tabStyle.Render(name)
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) renderTab() string {
	if m.pack == nil {
		return "No document yet."
	}
	switch m.tab {
	case tabMindmap:
		return renderGraph(m.pack.Mindmap, m.viewport.Width, m.viewport.Height)
	case tabQuiz:
		return m.renderQuiz()
	default:
		return m.renderSummary()
	}
}

func (m Model) renderSummary() string {
	if len(m.pack.Summary) == 0 {
		return "Nothing to summarize."
	}
	wrap := lipgloss.NewStyle().Width(max(10, m.viewport.Width-2))
	lines := make([]string, len(m.pack.Summary))
	for i, s := range m.pack.Summary {
		lines[i] = wrap.Render("• " + s)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderQuiz() string {
	if len(m.pack.Quiz) == 0 {
		return "No quiz questions could be made from this document."
	}
	wrap := lipgloss.NewStyle().Width(max(10, m.viewport.Width-2))
	var sb strings.Builder
	for i, item := range m.pack.Quiz {
		prefix := "  "
		if i == m.cursor {
			prefix = highlightStyle.Render("› ")
		}
		sb.WriteString(wrap.Render(fmt.Sprintf("%sQ%d. %s", prefix, i+1, item.Question)))
		sb.WriteString("\n")
		if m.revealed[i] {
			mark := ""
			if ok, graded := m.correct[i]; graded {
				if ok {
					mark = " ✓"
				} else {
					mark = " ✗"
				}
			}
			sb.WriteString(answerStyle.Render("     Answer: "+item.Answer) + mark + "\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

var (
	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	answerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("8"))
	activeTabStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Underline(true)
	nodeStyle      = lipgloss.NewStyle().Background(lipgloss.Color("153")).Foreground(lipgloss.Color("0"))
	edgeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)
