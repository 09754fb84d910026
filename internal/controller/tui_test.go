package controller

import (
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUI_DisplayTreePrintsWhenNotATerminal(t *testing.T) {
	cmd, out, _ := newTestCommand()

	err := NewTUI(cmd).DisplayTree(context.Background(), "client.mapping", exampleMappings())
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "client.mapping")
	assert.Contains(t, output, "  class b")
	assert.Contains(t, output, "method m (I)V")
}

func tallTree(n int) []string {
	lines := make([]string, 0, n)
	for i := 0; i < n; i++ {
		lines = append(lines, fmt.Sprintf("class c%d", i))
	}

	return lines
}

func TestTreeModel_NeedsPagination(t *testing.T) {
	model := newTreeModel("t", tallTree(30))
	assert.False(t, model.needsPagination(), "unknown height never pages")

	assert.True(t, model.resize(80, 20).needsPagination())
	assert.False(t, model.resize(80, 40).needsPagination())
	assert.False(t, newTreeModel("t", nil).resize(80, 5).needsPagination())
}

func TestTreeModel_Update(t *testing.T) {
	var model tea.Model = newTreeModel("tree", tallTree(50))

	model, cmd := model.Update(tea.WindowSizeMsg{Width: 80, Height: 14})
	assert.Nil(t, cmd)
	assert.Equal(t, 10, model.(treeModel).viewport.Height)

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	assert.True(t, model.(treeModel).viewport.AtBottom())

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	assert.True(t, model.(treeModel).viewport.AtTop())

	view := model.View()
	assert.Contains(t, view, "tree")
	assert.Contains(t, view, "class c0")
	assert.Contains(t, view, "50 entries")

	model, cmd = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, model.(treeModel).quitting)
	assert.Empty(t, model.View())
}

func TestTreeModel_EscQuits(t *testing.T) {
	model, cmd := newTreeModel("t", nil).Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.True(t, model.(treeModel).quitting)
}
