package controller

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	m "nocturne.dev/pkg/nocturne/internal/model"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	deobfStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	footerStyle = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI for interactive terminals. Tables are printed like
// SimpleUI; mapping trees taller than the terminal open in a pager.
type TUI struct {
	*SimpleUI

	cmd *cobra.Command
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{SimpleUI: NewSimpleUI(cmd), cmd: cmd}
}

// DisplayTree shows the mapping tree, paging it when it does not fit on screen.
func (t *TUI) DisplayTree(ctx context.Context, title string, mappings *m.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	output := t.cmd.OutOrStdout()
	model := newTreeModel(title, treeLines(mappings, deobfStyle.Render))

	if f, ok := output.(*os.File); ok {
		width, height, err := term.GetSize(f.Fd())
		if err == nil {
			model = model.resize(width, height)
		}
	}

	// Small trees are printed directly.
	if !model.needsPagination() {
		_, err := fmt.Fprint(output, model.plainView())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(output), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

const (
	// Title line plus a blank line.
	treeHeaderHeight = 2
	// Blank line plus the position and help line.
	treeFooterHeight = 2
)

// treeModel is the Bubble Tea model paging a rendered mapping tree.
type treeModel struct {
	title    string
	lines    []string
	height   int
	viewport viewport.Model
	quitting bool
}

func newTreeModel(title string, lines []string) treeModel {
	vp := viewport.New(0, 0)
	vp.SetContent(strings.Join(lines, "\n"))

	return treeModel{
		title:    title,
		lines:    lines,
		viewport: vp,
	}
}

func (tm treeModel) resize(width, height int) treeModel {
	tm.height = height
	tm.viewport.Width = width

	tm.viewport.Height = height - treeHeaderHeight - treeFooterHeight
	if tm.viewport.Height < 1 {
		tm.viewport.Height = 1
	}

	return tm
}

// needsPagination returns true if the tree is too tall to fit on screen.
func (tm treeModel) needsPagination() bool {
	if tm.height == 0 || len(tm.lines) == 0 {
		return false
	}

	return len(tm.lines) > tm.height-treeHeaderHeight-treeFooterHeight
}

func (tm treeModel) Init() tea.Cmd {
	return nil
}

func (tm treeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return tm.resize(msg.Width, msg.Height), nil

	case tea.KeyMsg:
		return tm.handleKeyPress(msg)
	}

	return tm, nil
}

func (tm treeModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	//nolint:exhaustive // We only handle specific navigation keys
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		tm.quitting = true
		return tm, tea.Quit
	default:
		// Handle other key types in the string switch below
	}

	switch msg.String() {
	case "q":
		tm.quitting = true
		return tm, tea.Quit

	case "g", "home":
		tm.viewport.GotoTop()
		return tm, nil

	case "G", "end":
		tm.viewport.GotoBottom()
		return tm, nil
	}

	var cmd tea.Cmd
	tm.viewport, cmd = tm.viewport.Update(msg)

	return tm, cmd
}

func (tm treeModel) View() string {
	if tm.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(tm.title))
	b.WriteString("\n\n")
	b.WriteString(tm.viewport.View())
	b.WriteString("\n\n")
	b.WriteString(footerStyle.Render(fmt.Sprintf(
		"  %3.f%% of %d entries | ↑/k: up | ↓/j: down | g: top | G: bottom | q: quit",
		tm.viewport.ScrollPercent()*100, len(tm.lines))))

	return b.String()
}

// plainView renders the whole tree without paging.
func (tm treeModel) plainView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(tm.title))
	b.WriteString("\n")

	for _, line := range tm.lines {
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
