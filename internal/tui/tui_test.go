package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/handiism/fpscrape/internal/config"
	"github.com/handiism/fpscrape/internal/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewModel_PrefillsOutputPath(t *testing.T) {
	m := NewModel(config.DefaultSettings())

	assert.Equal(t, StateInput, m.state)
	assert.Equal(t, "players.csv", m.textInput.Value())
	assert.Contains(t, m.View(), "Output file:")
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0.0, percent(scrape.Progress{}))
	assert.Equal(t, 0.4, percent(scrape.Progress{CategoriesDone: 2, CategoriesTotal: 5}))
}

func TestUpdate_ProgressLogsFiltered(t *testing.T) {
	m := NewModel(config.DefaultSettings())
	m.state = StateScraping
	m.events = make(chan scrape.ProgressEvent)

	updated, _ := m.Update(ProgressMsg{Event: scrape.ProgressEvent{Message: "detail", Level: scrape.LevelVerbose}})
	m = updated.(Model)
	assert.Empty(t, m.logs, "verbose events are hidden unless enabled")

	for i := 0; i < maxLogs+3; i++ {
		updated, _ = m.Update(ProgressMsg{Event: scrape.ProgressEvent{Message: "info", Level: scrape.LevelInfo}})
		m = updated.(Model)
	}
	assert.Len(t, m.logs, maxLogs)
}

func TestUpdate_DoneStates(t *testing.T) {
	m := NewModel(config.DefaultSettings())
	m.state = StateScraping

	updated, _ := m.Update(ScrapeDoneMsg{Categories: 4, Written: true})
	done := updated.(Model)
	assert.Equal(t, StateComplete, done.state)
	assert.Contains(t, done.View(), "players.csv")

	updated, _ = done.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	again := updated.(Model)
	assert.Equal(t, StateInput, again.state)

	again.state = StateScraping
	again.cancel()
	updated, _ = again.Update(ScrapeDoneMsg{})
	cancelled := updated.(Model)
	require.Error(t, cancelled.err)
	assert.Equal(t, StateError, cancelled.state)
}
