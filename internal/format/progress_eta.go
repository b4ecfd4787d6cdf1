// Package format provides presentation helpers shared by the CLI and TUI:
// duration and byte formatting, and progress tracking with ETA estimation.
package format

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// maxETA caps the reported ETA so a near-stalled run does not display an
// absurd estimate.
const maxETA = 24 * time.Hour

// minRateInterval is the minimum elapsed time between rate recalculations.
// Shorter intervals produce noisy rates.
const minRateInterval = 100 * time.Millisecond

// ProgressState tracks the individual progress of concurrent workers and
// computes their average for a consolidated progress view.
type ProgressState struct {
	progresses     []float64
	numWorkers int
}

// NewProgressState creates a ProgressState tracking the given number of
// workers.
func NewProgressState(numWorkers int) *ProgressState {
	return &ProgressState{
		progresses:     make([]float64, numWorkers),
		numWorkers: numWorkers,
	}
}

// Update records a new progress value for one worker. Out-of-range indices
// are ignored.
func (ps *ProgressState) Update(index int, value float64) {
	if index >= 0 && index < len(ps.progresses) {
		ps.progresses[index] = value
	}
}

// CalculateAverage computes the average progress across all workers.
func (ps *ProgressState) CalculateAverage() float64 {
	var total float64
	for _, p := range ps.progresses {
		total += p
	}
	if ps.numWorkers == 0 {
		return 0.0
	}
	return total / float64(ps.numWorkers)
}

// ProgressWithETA extends ProgressState with a progress-rate estimate used
// to derive a remaining-time display.
type ProgressWithETA struct {
	*ProgressState

	mu             sync.Mutex
	numWorkers int
	progressRate   float64 // fraction per second
	startTime      time.Time
	lastUpdate     time.Time
	lastProgress   float64
}

// NewProgressWithETA creates an ETA-aware progress tracker for the given
// number of workers.
func NewProgressWithETA(numWorkers int) *ProgressWithETA {
	now := time.Now()
	return &ProgressWithETA{
		ProgressState:  NewProgressState(numWorkers),
		numWorkers: numWorkers,
		startTime:      now,
		lastUpdate:     now,
	}
}

// UpdateWithETA records a progress value and returns the new average
// progress together with the current ETA estimate.
func (p *ProgressWithETA) UpdateWithETA(index int, value float64) (float64, time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.Update(index, value)
	avg := p.CalculateAverage()

	now := time.Now()
	if elapsed := now.Sub(p.lastUpdate); elapsed >= minRateInterval {
		if delta := avg - p.lastProgress; delta > 0 {
			p.progressRate = delta / elapsed.Seconds()
		}
		p.lastUpdate = now
		p.lastProgress = avg
	}

	return avg, p.etaLocked(avg)
}

// GetETA returns the current ETA estimate, or 0 when no rate has been
// established yet.
func (p *ProgressWithETA) GetETA() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.etaLocked(p.CalculateAverage())
}

// etaLocked computes the ETA for the given average progress. The caller must
// hold p.mu.
func (p *ProgressWithETA) etaLocked(avg float64) time.Duration {
	if p.progressRate <= 0 || avg >= 1.0 {
		return 0
	}
	eta := time.Duration((1.0 - avg) / p.progressRate * float64(time.Second))
	if eta > maxETA {
		return maxETA
	}
	return eta
}

// FormatETA renders a remaining-time estimate in a compact form: "45s",
// "2m30s", "1h15m". Zero or negative estimates render as "calculating...".
func FormatETA(eta time.Duration) string {
	if eta <= 0 {
		return "calculating..."
	}
	if eta < time.Second {
		return "< 1s"
	}

	h := int(eta.Hours())
	m := int(eta.Minutes()) % 60
	s := int(eta.Seconds()) % 60

	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh%dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	case m > 0 && s > 0:
		return fmt.Sprintf("%dm%ds", m, s)
	case m > 0:
		return fmt.Sprintf("%dm", m)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// FormatProgressBarWithETA renders a progress bar with percentage and ETA,
// e.g. "[█████░░░░░]  50% | ETA: 30s".
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	return fmt.Sprintf("[%s] %3.0f%% | ETA: %s", ProgressBar(progress, width), progress*100, FormatETA(eta))
}

// ProgressBar renders a textual progress bar of the given character width.
// Progress values outside [0, 1] are clamped.
func ProgressBar(progress float64, length int) string {
	if progress > 1.0 {
		progress = 1.0
	}
	if progress < 0.0 {
		progress = 0.0
	}
	count := int(progress * float64(length))
	var builder strings.Builder
	builder.Grow(length)
	for i := 0; i < length; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}
