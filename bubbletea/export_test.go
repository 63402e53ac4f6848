package bubbletea

import "time"

// BlockSeparator exports blockSeparator for testing.
func BlockSeparator(prev, curr MessageBlock) string {
	return blockSeparator(prev, curr)
}

// RenderContent exports renderContent for testing.
func RenderContent(m Model) string {
	return m.renderContent()
}

// SetClock replaces the model's clock for testing.
func SetClock(m Model, now func() time.Time) Model {
	m.now = now
	return m
}
