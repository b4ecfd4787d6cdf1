package cli

import (
	"fmt"
	"io"

	"github.com/agbru/readnum/internal/config"
	"github.com/agbru/readnum/internal/format"
	"github.com/agbru/readnum/internal/ui"
)

// DisplayRunConfig shows the effective configuration before a batch run.
// Only settings that deviate from their defaults are listed, so the output
// stays short for typical invocations.
//
// Parameters:
//   - out: The output writer.
//   - cfg: The resolved application configuration.
func DisplayRunConfig(out io.Writer, cfg config.AppConfig) {
	defaults := config.DefaultConfig()

	type setting struct {
		label string
		value string
		show  bool
	}

	settings := []setting{
		{"Group size", fmt.Sprintf("%d", cfg.GroupSize), cfg.GroupSize != defaults.GroupSize},
		{"Delimiter", fmt.Sprintf("%q", cfg.Delimiter), cfg.Delimiter != defaults.Delimiter},
		{"Decimal symbol", fmt.Sprintf("%q", cfg.DecimalSymbol), cfg.DecimalSymbol != defaults.DecimalSymbol},
		{"Precision", fmt.Sprintf("%d", cfg.Precision), cfg.Precision != defaults.Precision},
		{"Sig figs", fmt.Sprintf("%d", cfg.SigFigs), cfg.SigFigs != 0},
		{"Shortform", onOff(cfg.Shortform), cfg.Shortform},
		{"Exp large", onOff(cfg.ExpLarge), cfg.ExpLarge},
		{"Exp small", onOff(cfg.ExpSmall), cfg.ExpSmall},
		{"Large threshold", fmt.Sprintf("%v", cfg.LargeThreshold), cfg.LargeThreshold != 0},
		{"Small threshold", fmt.Sprintf("%v", cfg.SmallThreshold), cfg.SmallThreshold != 0},
		{"Show decimal", onOff(cfg.ShowDecimal), cfg.ShowDecimal},
		{"Strict", onOff(cfg.Strict), cfg.Strict},
		{"Timeout", cfg.Timeout.String(), cfg.Timeout != defaults.Timeout},
	}

	maxLabel := 0
	var active []setting
	for _, s := range settings {
		if !s.show {
			continue
		}
		active = append(active, s)
		if len(s.label) > maxLabel {
			maxLabel = len(s.label)
		}
	}
	if len(active) == 0 {
		return
	}

	fmt.Fprintf(out, "%sConfiguration:%s\n", ui.ColorBold(), ui.ColorReset())
	for _, s := range active {
		fmt.Fprintf(out, "  %s%s%s%s %s\n",
			ui.ColorInfo(), s.label+":", ui.ColorReset(),
			padRight("", maxLabel-len(s.label)), s.value)
	}
	fmt.Fprintln(out)
}

// DisplayMemoryStats shows memory statistics after a run.
func DisplayMemoryStats(heapAlloc, totalAlloc uint64, numGC uint32, pauseTotalNs uint64, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Peak heap:       %s\n", format.FormatBytes(heapAlloc))
	fmt.Fprintf(out, "  Total allocated: %s\n", format.FormatBytes(totalAlloc))
	fmt.Fprintf(out, "  GC cycles:       %d\n", numGC)
	fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(pauseTotalNs)/1e6)
}
