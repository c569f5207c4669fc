package tui

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/libcoords/internal/domain"
	"github.com/aalvaropc/libcoords/internal/ui/theme"
)

type screen int

const (
	screenDocuments screen = iota
	screenReport
)

type documentItem struct {
	ref domain.DocumentRef
	rel string
}

func (d documentItem) Title() string       { return d.ref.Name }
func (d documentItem) Description() string { return d.rel }
func (d documentItem) FilterValue() string { return d.ref.Name }

type model struct {
	theme theme.Theme
	deps  Deps

	scr  screen
	docs list.Model

	cwd            string
	workspaceFound bool
	workspaceRoot  string

	preview     string
	previewPath string

	running  bool
	report   *domain.Report
	reportID string

	toast  string
	width  int
	height int
}

// Run starts the document browser on the alternate screen and blocks
// until the user quits.
func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Documents"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return model{
		theme: theme.DefaultTheme(),
		deps:  deps,
		scr:   screenDocuments,
		docs:  l,
	}
}

func (m model) Init() tea.Cmd { return cmdRefreshWorkspace(m.deps) }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.docs.SetSize(msg.Width/2-4, msg.Height-10)
		return m, nil

	case workspaceRefreshedMsg:
		m.cwd = msg.cwd
		m.workspaceFound = msg.found
		m.workspaceRoot = msg.root
		m.preview, m.previewPath = "", ""
		if !msg.found {
			cmd := m.docs.SetItems(nil)
			return m, cmd
		}
		return m, cmdLoadDocuments(msg.root)

	case initWorkspaceDoneMsg:
		if msg.err != nil {
			m.toast = theme.UserMessage(msg.err)
			return m, nil
		}
		m.toast = "Workspace initialized in " + msg.root
		return m, cmdRefreshWorkspace(m.deps)

	case documentsLoadedMsg:
		// A refresh may have moved to another workspace meanwhile.
		if msg.root != m.workspaceRoot {
			return m, nil
		}
		if msg.err != nil {
			m.toast = theme.UserMessage(msg.err)
			return m, nil
		}

		items := make([]list.Item, 0, len(msg.refs))
		for _, ref := range msg.refs {
			items = append(items, documentItem{ref: ref, rel: relTo(msg.root, ref.Path)})
		}
		cmd := m.docs.SetItems(items)
		return m, tea.Batch(cmd, m.previewSelected())

	case documentPreviewMsg:
		m.previewPath = msg.path
		if msg.err != nil {
			m.preview = theme.UserMessage(msg.err)
			return m, nil
		}
		m.preview = msg.preview
		return m, nil

	case evaluateDoneMsg:
		m.running = false
		if msg.err != nil {
			m.toast = theme.UserMessage(msg.err)
			return m, nil
		}
		report := msg.report
		m.report = &report
		m.reportID = msg.id
		m.toast = ""
		if msg.saveErr != nil {
			m.toast = "Report not saved: " + theme.UserMessage(msg.saveErr)
		}
		m.scr = screenReport
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.scr == screenDocuments {
		return m.updateList(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.scr == screenDocuments && m.docs.FilterState() == list.Filtering {
		return m.updateList(msg)
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "q":
		if m.scr == screenDocuments {
			return m, tea.Quit
		}
		m.scr = screenDocuments
		return m, nil

	case "esc", "b":
		if m.scr == screenReport {
			m.scr = screenDocuments
			return m, nil
		}

	case "r":
		if m.scr == screenDocuments {
			m.toast = ""
			return m, cmdRefreshWorkspace(m.deps)
		}

	case "i":
		if m.scr == screenDocuments && !m.workspaceFound && m.cwd != "" {
			return m, cmdInitWorkspaceHere(m.deps, m.cwd)
		}

	case "enter":
		if m.scr != screenDocuments || m.running {
			return m, nil
		}
		it, ok := m.docs.SelectedItem().(documentItem)
		if !ok {
			return m, nil
		}
		m.running = true
		m.toast = ""
		return m, cmdEvaluate(m.workspaceRoot, it.ref.Path, m.deps.Logger)
	}

	if m.scr == screenDocuments {
		return m.updateList(msg)
	}
	return m, nil
}

func (m model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.docs.Index()

	var cmd tea.Cmd
	m.docs, cmd = m.docs.Update(msg)

	if m.docs.Index() != before {
		return m, tea.Batch(cmd, m.previewSelected())
	}
	return m, cmd
}

func (m model) previewSelected() tea.Cmd {
	it, ok := m.docs.SelectedItem().(documentItem)
	if !ok {
		return nil
	}
	return cmdPreviewDocument(it.ref.Path)
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("libcoords") + "\n" +
		m.theme.Subtitle.Render("tagged coordinates, lengths and midpoints") + "\n"

	var banner string
	if m.workspaceFound {
		banner = m.theme.Muted.Render(fmt.Sprintf("Workspace: %s", m.workspaceRoot))
	} else {
		banner = m.theme.Card.Render("No workspace found.\n\nPress i to create one here.")
	}

	toast := ""
	if m.toast != "" {
		toast = "\n" + m.theme.Fail.Render(m.toast)
	}

	switch m.scr {
	case screenDocuments:
		status := ""
		if m.running {
			status = "\n" + m.theme.Muted.Render("Evaluating…")
		}

		preview := clampLines(m.preview, m.height-8, m.width/2-4)
		if m.preview == "" {
			preview = m.theme.Muted.Render("(no document selected)")
		}
		body := lipgloss.JoinHorizontal(lipgloss.Top,
			m.theme.Card.Render(m.docs.View()),
			m.theme.Card.Render(preview),
		)
		help := m.theme.Muted.Render("↑/↓ navigate • enter evaluate • / search • r refresh • i init • q quit")
		return wrap.Render(header + "\n" + banner + "\n\n" + body + "\n" + help + status + toast)

	case screenReport:
		card := m.theme.Card.Render(renderReport(m.theme, *m.report, m.reportID))
		help := m.theme.Muted.Render("esc/b back • q documents • ctrl+c quit")
		return wrap.Render(header + "\n" + banner + "\n\n" + card + "\n" + help + toast)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}

func relTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}
