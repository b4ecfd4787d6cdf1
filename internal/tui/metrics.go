package tui

import (
	"fmt"
	"strings"

	"github.com/agbru/readnum"
)

// MemStatsMsg carries sampled runtime and system resource statistics.
type MemStatsMsg struct {
	Alloc        uint64
	HeapInuse    uint64
	NumGC        uint32
	NumGoroutine int
	CPUPercent   float64
	MemPercent   float64
}

// MetricsModel renders the session panel: formatting activity plus runtime
// statistics sampled on each tick.
type MetricsModel struct {
	width  int
	height int

	alloc        uint64
	heapInuse    uint64
	numGC        uint32
	numGoroutine int
	cpuPercent   float64
	memPercent   float64

	formatted int
	lastMode  readnum.Mode
}

// NewMetricsModel creates an empty session panel.
func NewMetricsModel() MetricsModel {
	return MetricsModel{}
}

// SetSize updates the panel dimensions.
func (m *MetricsModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// UpdateMemStats stores the latest runtime memory sample.
func (m *MetricsModel) UpdateMemStats(msg MemStatsMsg) {
	m.alloc = msg.Alloc
	m.heapInuse = msg.HeapInuse
	m.numGC = msg.NumGC
	m.numGoroutine = msg.NumGoroutine
	m.cpuPercent = msg.CPUPercent
	m.memPercent = msg.MemPercent
}

// RecordFormat counts one committed formatting result.
func (m *MetricsModel) RecordFormat(mode readnum.Mode) {
	m.formatted++
	m.lastMode = mode
}

// View renders the session panel.
func (m MetricsModel) View() string {
	colWidth := m.width/2 - 4
	if colWidth < 16 {
		colWidth = 16
	}

	lastMode := string(m.lastMode)
	if lastMode == "" {
		lastMode = "-"
	}

	rows := []string{
		titleStyle.Render("Session"),
		formatMetricCol("Formatted:", fmt.Sprintf("%d", m.formatted), colWidth) +
			formatMetricCol("Last mode:", lastMode, colWidth),
		formatMetricCol("Memory:", formatBytes(m.alloc), colWidth) +
			formatMetricCol("Heap:", formatBytes(m.heapInuse), colWidth),
		formatMetricCol("GC Runs:", fmt.Sprintf("%d", m.numGC), colWidth) +
			formatMetricCol("Goroutines:", fmt.Sprintf("%d", m.numGoroutine), colWidth),
		formatMetricCol("CPU:", fmt.Sprintf("%.1f%%", m.cpuPercent), colWidth) +
			formatMetricCol("Sys Mem:", fmt.Sprintf("%.1f%%", m.memPercent), colWidth),
	}

	content := strings.Join(rows, "\n")
	if m.width > 2 {
		return panelStyle.Width(m.width - 2).Render(content)
	}
	return panelStyle.Render(content)
}

// formatMetricCol renders one fixed-width "label value" column.
func formatMetricCol(label, value string, width int) string {
	col := fmt.Sprintf("%s %s", labelStyle.Render(label), valueStyle.Render(value))
	pad := width - len(label) - len(value) - 1
	if pad > 0 {
		col += strings.Repeat(" ", pad)
	}
	return col
}

// formatBytes renders a byte count with decimal unit labels, e.g. "50.0 MB".
func formatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}
