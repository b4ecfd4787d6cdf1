// Package tui implements the interactive formatter explorer: a bubbletea
// program with a value input field, a live preview of the formatted result,
// option toggles and a history of committed results.
package tui

import (
	"context"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/readnum"
	"github.com/agbru/readnum/internal/config"
	apperrors "github.com/agbru/readnum/internal/errors"
	"github.com/agbru/readnum/internal/sysmon"
)

// maxHistory bounds the number of committed results kept on screen.
const maxHistory = 8

// TickMsg drives periodic runtime stat sampling.
type TickMsg time.Time

// historyEntry is one committed formatting result.
type historyEntry struct {
	raw       string
	formatted string
	mode      readnum.Mode
}

// Model is the root bubbletea model for the explorer.
type Model struct {
	header  HeaderModel
	input   textinput.Model
	metrics MetricsModel
	keymap  KeyMap

	formatter *readnum.Formatter
	history   []historyEntry
	optErr    error

	width    int
	height   int
	exitCode int
}

// NewModel creates the explorer model seeded from the application
// configuration.
func NewModel(cfg config.AppConfig, version string) (Model, error) {
	formatter, err := readnum.New(cfg.FormatterOptions()...)
	if err != nil {
		return Model{}, err
	}

	input := textinput.New()
	input.Placeholder = "1234567.89"
	input.Prompt = "> "
	input.CharLimit = 64
	input.Focus()

	return Model{
		header:    NewHeaderModel(version),
		input:     input,
		metrics:   NewMetricsModel(),
		keymap:    DefaultKeyMap(),
		formatter: formatter,
		exitCode:  apperrors.ExitSuccess,
	}, nil
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickCmd())
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.header.SetWidth(m.width)
		m.metrics.SetSize(m.width, 5)
		return m, nil

	case TickMsg:
		return m, tea.Batch(sampleMemStatsCmd(), tickCmd())

	case MemStatsMsg:
		m.metrics.UpdateMemStats(msg)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Submit):
		m.commit()
		return m, nil

	case key.Matches(msg, m.keymap.Shortform):
		m.toggleOption(func(o *readnum.Options) { o.UseShortform = !o.UseShortform })
		return m, nil

	case key.Matches(msg, m.keymap.ExpLarge):
		m.toggleOption(func(o *readnum.Options) { o.UseExponentForLargeNumbers = !o.UseExponentForLargeNumbers })
		return m, nil

	case key.Matches(msg, m.keymap.ExpSmall):
		m.toggleOption(func(o *readnum.Options) { o.UseExponentForSmallNumbers = !o.UseExponentForSmallNumbers })
		return m, nil

	case key.Matches(msg, m.keymap.ShowDecimal):
		m.toggleOption(func(o *readnum.Options) { o.ShowDecimalPartIfInteger = !o.ShowDecimalPartIfInteger })
		return m, nil

	case key.Matches(msg, m.keymap.PrecisionUp):
		m.adjustPrecision(1)
		return m, nil

	case key.Matches(msg, m.keymap.PrecisionDown):
		m.adjustPrecision(-1)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// toggleOption applies a mutation to a copy of the option set and swaps in a
// rebuilt formatter. On validation failure the old formatter is kept and the
// error is surfaced in the view.
func (m *Model) toggleOption(mutate func(*readnum.Options)) {
	opts := m.formatter.Options()
	mutate(&opts)
	formatter, err := readnum.New(readnum.WithOptions(opts))
	if err != nil {
		m.optErr = err
		return
	}
	m.formatter = formatter
	m.optErr = nil
}

// adjustPrecision steps the fixed precision up or down. Stepping below zero
// returns to natural rendering.
func (m *Model) adjustPrecision(delta int) {
	m.toggleOption(func(o *readnum.Options) {
		cur := -1
		if o.Precision != nil {
			cur = *o.Precision
		}
		cur += delta
		if cur < 0 {
			o.Precision = nil
			return
		}
		o.Precision = &cur
		o.SignificantFiguresAfterDecimalPoint = nil
	})
}

// commit moves the current preview into the history.
func (m *Model) commit() {
	raw := strings.TrimSpace(m.input.Value())
	if raw == "" {
		return
	}
	formatted, mode, err := m.preview(raw)
	if err != nil || formatted == "" {
		return
	}
	m.history = append(m.history, historyEntry{raw: raw, formatted: formatted, mode: mode})
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
	m.metrics.RecordFormat(mode)
	m.input.SetValue("")
}

// preview formats a token with the current settings. Integer-looking tokens
// keep exact digits beyond float64 precision.
func (m Model) preview(token string) (string, readnum.Mode, error) {
	if !strings.ContainsAny(token, ".eE") {
		if iv, err := strconv.ParseInt(token, 10, 64); err == nil {
			formatted, err := m.formatter.FormatInt(iv)
			if err != nil {
				return "", "", err
			}
			return formatted, m.formatter.Mode(float64(iv)), nil
		}
	}
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return "", "", err
	}
	formatted, err := m.formatter.Format(v)
	if err != nil {
		return "", "", err
	}
	return formatted, m.formatter.Mode(v), nil
}

// View renders the explorer.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	sections := []string{
		m.header.View(),
		m.viewInput(),
		m.viewResult(),
		m.viewOptions(),
		m.viewHistory(),
		m.metrics.View(),
		m.viewFooter(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewInput() string {
	content := labelStyle.Render("Value") + "\n" + m.input.View()
	return panelStyle.Width(m.width - 2).Render(content)
}

func (m Model) viewResult() string {
	token := strings.TrimSpace(m.input.Value())
	var content string
	switch {
	case m.optErr != nil:
		content = errorStyle.Render("Options: " + m.optErr.Error())
	case token == "":
		content = labelStyle.Render("Type a number to see its formatted form.")
	default:
		formatted, mode, err := m.preview(token)
		if err != nil {
			content = errorStyle.Render(err.Error())
		} else {
			content = valueStyle.Render(formatted) + "  " + modeStyle.Render("["+string(mode)+"]")
		}
	}
	return panelStyle.Width(m.width - 2).Render(content)
}

func (m Model) viewOptions() string {
	opts := m.formatter.Options()

	precision := "natural"
	if opts.Precision != nil {
		precision = strconv.Itoa(*opts.Precision)
	}

	parts := []string{
		optionCell("precision", precision),
		optionCell("shortform", onOff(opts.UseShortform)),
		optionCell("exp large", onOff(opts.UseExponentForLargeNumbers)),
		optionCell("exp small", onOff(opts.UseExponentForSmallNumbers)),
		optionCell("show decimal", onOff(opts.ShowDecimalPartIfInteger)),
	}
	return panelStyle.Width(m.width - 2).Render(strings.Join(parts, "   "))
}

// optionCell renders one "label: state" cell for the options line.
func optionCell(label, state string) string {
	return labelStyle.Render(label+":") + " " + modeStyle.Render(state)
}

// onOff renders a boolean option state.
func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (m Model) viewHistory() string {
	if len(m.history) == 0 {
		return ""
	}
	lines := []string{titleStyle.Render("History")}
	for i := len(m.history) - 1; i >= 0; i-- {
		e := m.history[i]
		lines = append(lines,
			historyTimeStyle.Render(e.raw)+" → "+valueStyle.Render(e.formatted)+
				"  "+modeStyle.Render("["+string(e.mode)+"]"))
	}
	return panelStyle.Width(m.width - 2).Render(strings.Join(lines, "\n"))
}

func (m Model) viewFooter() string {
	bindings := []key.Binding{
		m.keymap.Quit, m.keymap.Submit, m.keymap.Shortform, m.keymap.ExpLarge,
		m.keymap.ExpSmall, m.keymap.ShowDecimal, m.keymap.PrecisionUp,
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, footerKeyStyle.Render(h.Key)+" "+footerDescStyle.Render(h.Desc))
	}
	return " " + strings.Join(parts, footerDescStyle.Render(" • "))
}

// Run is the public entry point for the TUI mode.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(ctx context.Context, cfg config.AppConfig, version string) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model, err := NewModel(cfg, version)
	if err != nil {
		return apperrors.ExitErrorConfig
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return apperrors.ExitErrorCanceled
		}
		return apperrors.ExitErrorGeneric
	}

	if m, ok := finalModel.(Model); ok {
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// tickCmd returns a command that sends a TickMsg after 500ms.
func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleMemStatsCmd reads runtime memory stats plus a system-wide resource
// snapshot and returns a MemStatsMsg.
func sampleMemStatsCmd() tea.Cmd {
	return func() tea.Msg {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		sys := sysmon.Sample()
		return MemStatsMsg{
			Alloc:        ms.Alloc,
			HeapInuse:    ms.HeapInuse,
			NumGC:        ms.NumGC,
			NumGoroutine: runtime.NumGoroutine(),
			CPUPercent:   sys.CPUPercent,
			MemPercent:   sys.MemPercent,
		}
	}
}
