package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestRenderLoadError(t *testing.T) {
	msg := "failed to load websites from list.txt: boom"
	out := RenderLoadError(msg, 60)

	assert.Contains(t, out, "COULD NOT LOAD WEBSITES")
	assert.Contains(t, out, "Press q to quit")
	assert.Contains(t, out, msg)
}

func TestRenderLoadError_WrapsLongMessages(t *testing.T) {
	msg := strings.Repeat("word ", 40)
	out := RenderLoadError(msg, 40)

	assert.Equal(t, 36, lipgloss.Width(strings.Split(out, "\n")[1]), "inner width plus borders")
	assert.Equal(t, 40, strings.Count(out, "word"))
}

func TestTruncateLine(t *testing.T) {
	tests := []struct {
		line  string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 10, "this is..."},
		{"abc", 2, "..."},
		{"ünïcödé wörds", 8, "ünïcö..."},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, truncateLine(tt.line, tt.width), tt.line)
	}
}

func TestWrapText(t *testing.T) {
	assert.Equal(t, []string{"hello world"}, wrapText("hello world", 20))
	assert.Equal(t, []string{"hello", "world"}, wrapText("hello world", 8))
	assert.Equal(t, []string{"abcdefgh", "ij"}, wrapText("abcdefghij", 8))
	assert.Equal(t, []string{"anything"}, wrapText("anything", 0))
}
