package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapLinesShortTextSingleLine(t *testing.T) {
	lines := wrapLines("hello world", 40)
	assert.Equal(t, []string{"  hello world"}, lines)
}

func TestWrapLinesBreaksOnWords(t *testing.T) {
	lines := wrapLines("one two three four", 9)
	assert.Greater(t, len(lines), 1)
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 9+2, "line %q exceeds width", line)
	}
}

func TestWrapLinesKeepsParagraphBreaks(t *testing.T) {
	lines := wrapLines("first\n\nsecond", 40)
	assert.Equal(t, []string{"  first", "", "  second"}, lines)
}

func TestWrapLinesEmptyInput(t *testing.T) {
	assert.Equal(t, []string{""}, wrapLines("", 40))
}

func TestModalWidth(t *testing.T) {
	// Wide screen: fraction wins
	assert.Equal(t, 120, modalWidth(210, 4, 7, 80))
	// Narrow screen: min wins
	assert.Equal(t, 80, modalWidth(100, 4, 7, 80))
	// Tiny screen: clamp to screen minus margin
	assert.Equal(t, 58, modalWidth(60, 4, 7, 80))
}

func TestListModalFocusTargetsListView(t *testing.T) {
	m := NewListModal(nil, "Pick", nil, nil)
	// Focus and close-by-id both go through ID(), so it must name a
	// view the modal actually creates
	assert.Equal(t, m.listViewID(), m.ID())
	assert.NotEqual(t, m.descViewID(), m.ID())
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, progressBarWidth, len([]rune(progressBar(0))))
	assert.Equal(t, progressBarWidth, len([]rune(progressBar(0.5))))
	assert.Equal(t, progressBarWidth, len([]rune(progressBar(1))))
	// Over-reporting clamps instead of overflowing the bar
	assert.Equal(t, progressBarWidth, len([]rune(progressBar(1.7))))
}
