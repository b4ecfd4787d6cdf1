// Package cli implements the command-line presentation layer: batch
// formatting, the interactive prompt, shell completion and result output.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/agbru/readnum"
	"github.com/agbru/readnum/internal/ui"
)

// REPL represents an interactive number formatting session. Values typed at
// the prompt are formatted immediately; "set" and "unset" commands adjust the
// formatter configuration between values.
type REPL struct {
	formatter *readnum.Formatter
	in        io.Reader
	out       io.Writer
}

// NewREPL creates a new REPL instance around the given formatter.
//
// Parameters:
//   - formatter: The initial formatter configuration.
//
// Returns:
//   - *REPL: A new REPL instance reading stdin and writing stdout.
func NewREPL(formatter *readnum.Formatter) *REPL {
	return &REPL{
		formatter: formatter,
		in:        os.Stdin,
		out:       os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start begins the interactive session. It continuously reads user input and
// processes commands until the user exits or EOF is reached.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)

	for {
		fmt.Fprint(r.out, ui.ColorSuccess()+"readnum> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorError(), err, ui.ColorReset())
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !r.processCommand(input) {
			return // Exit command received
		}
	}
}

// printBanner displays the welcome banner.
func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════════════════╗%s\n", ui.ColorInfo(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s     %s🔢 readnum - Interactive Number Formatting%s            %s║%s\n",
		ui.ColorInfo(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorInfo(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════════════════╝%s\n\n", ui.ColorInfo(), ui.ColorReset())
}

// printHelp displays available commands.
func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %s<number>%s            - Format a value with the current settings\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sset <option> <val>%s  - Change a formatting option\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sunset <option>%s      - Return an option to its natural setting\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %soptions%s             - List settable options\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sstatus%s              - Display current configuration\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s                - Display this help\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s        - Exit interactive mode\n", ui.ColorWarning(), ui.ColorReset(), ui.ColorWarning(), ui.ColorReset())
}

// processCommand parses and executes a user command.
// Returns false if the session should exit.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "set", "s":
		// Pass the raw remainder so quoted values keep their spaces,
		// e.g. `set delimiter " "`.
		r.cmdSet(strings.TrimSpace(strings.TrimPrefix(input, parts[0])))
	case "unset", "u":
		r.cmdUnset(args)
	case "options", "opts":
		r.cmdOptions()
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorSuccess(), ui.ColorReset())
		return false
	default:
		// Anything else is treated as a value to format
		r.formatValue(parts[0])
	}

	return true
}

// formatValue formats a single token and prints the result. Integer-looking
// tokens keep exact digits through FormatInt.
func (r *REPL) formatValue(token string) {
	if !strings.ContainsAny(token, ".eE") {
		if iv, err := strconv.ParseInt(token, 10, 64); err == nil {
			formatted, err := r.formatter.FormatInt(iv)
			if err != nil {
				fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorError(), err, ui.ColorReset())
				return
			}
			fmt.Fprintf(r.out, "%s%s%s\n", ui.ColorSuccess(), formatted, ui.ColorReset())
			return
		}
	}

	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		fmt.Fprintf(r.out, "%sNot a number or command: %s%s\n", ui.ColorError(), token, ui.ColorReset())
		fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorWarning(), ui.ColorReset())
		return
	}

	formatted, err := r.formatter.Format(v)
	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorError(), err, ui.ColorReset())
		return
	}
	fmt.Fprintf(r.out, "%s%s%s\n", ui.ColorSuccess(), formatted, ui.ColorReset())
}

// settableOptions maps option names to mutations of the option set. Boolean
// options accept on/off, true/false, yes/no and 1/0.
var settableOptions = map[string]func(o *readnum.Options, value string) error{
	"precision": func(o *readnum.Options, value string) error {
		p, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("expected an integer, got %q", value)
		}
		o.Precision = &p
		o.SignificantFiguresAfterDecimalPoint = nil
		return nil
	},
	"sig-figs": func(o *readnum.Options, value string) error {
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("expected an integer, got %q", value)
		}
		o.SignificantFiguresAfterDecimalPoint = &n
		o.Precision = nil
		return nil
	},
	"group-size": func(o *readnum.Options, value string) error {
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("expected an integer, got %q", value)
		}
		o.DigitGroupSize = n
		return nil
	},
	"delimiter": func(o *readnum.Options, value string) error {
		o.DigitGroupDelimiter = unquoteValue(value)
		return nil
	},
	"decimal-symbol": func(o *readnum.Options, value string) error {
		o.DecimalSymbol = unquoteValue(value)
		return nil
	},
	"large-threshold": func(o *readnum.Options, value string) error {
		t, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("expected a number, got %q", value)
		}
		o.LargeNumberThreshold = t
		return nil
	},
	"small-threshold": func(o *readnum.Options, value string) error {
		t, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("expected a number, got %q", value)
		}
		o.SmallNumberThreshold = t
		return nil
	},
	"shortform": func(o *readnum.Options, value string) error {
		return setBoolOption(&o.UseShortform, value)
	},
	"exp-large": func(o *readnum.Options, value string) error {
		return setBoolOption(&o.UseExponentForLargeNumbers, value)
	},
	"exp-small": func(o *readnum.Options, value string) error {
		return setBoolOption(&o.UseExponentForSmallNumbers, value)
	},
	"show-decimal": func(o *readnum.Options, value string) error {
		return setBoolOption(&o.ShowDecimalPartIfInteger, value)
	},
	"strict": func(o *readnum.Options, value string) error {
		return setBoolOption(&o.StrictNonFinite, value)
	},
}

// settableOptionNames lists option names in display order for "options" and
// error messages.
var settableOptionNames = []string{
	"precision", "sig-figs", "group-size", "delimiter", "decimal-symbol",
	"shortform", "exp-large", "exp-small", "large-threshold",
	"small-threshold", "show-decimal", "strict",
}

// setBoolOption parses a user-supplied boolean token.
func setBoolOption(dst *bool, value string) error {
	switch strings.ToLower(value) {
	case "on", "true", "yes", "1":
		*dst = true
	case "off", "false", "no", "0":
		*dst = false
	default:
		return fmt.Errorf("expected on or off, got %q", value)
	}
	return nil
}

// unquoteValue strips surrounding quotes so delimiters like " " or "" can be
// entered at the prompt.
func unquoteValue(value string) string {
	if len(value) >= 2 {
		if (value[0] == '"' && value[len(value)-1] == '"') ||
			(value[0] == '\'' && value[len(value)-1] == '\'') {
			return value[1 : len(value)-1]
		}
	}
	return value
}

// cmdSet handles the "set" command. The argument is the raw text after the
// command word, split into an option name and a value that may be quoted.
func (r *REPL) cmdSet(rest string) {
	name, value, found := strings.Cut(rest, " ")
	value = strings.TrimSpace(value)
	if !found || value == "" {
		fmt.Fprintf(r.out, "%sUsage: set <option> <value>%s\n", ui.ColorError(), ui.ColorReset())
		fmt.Fprintf(r.out, "Options: %s\n", strings.Join(settableOptionNames, ", "))
		return
	}

	name = strings.ToLower(name)
	apply, ok := settableOptions[name]
	if !ok {
		fmt.Fprintf(r.out, "%sUnknown option: %s%s\n", ui.ColorError(), name, ui.ColorReset())
		fmt.Fprintf(r.out, "Options: %s\n", strings.Join(settableOptionNames, ", "))
		return
	}

	opts := r.formatter.Options()
	if err := apply(&opts, value); err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorError(), err, ui.ColorReset())
		return
	}
	r.rebuild(opts, name)
}

// cmdUnset handles the "unset" command. Only the precision settings have a
// meaningful natural state to return to.
func (r *REPL) cmdUnset(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: unset precision|sig-figs%s\n", ui.ColorError(), ui.ColorReset())
		return
	}

	opts := r.formatter.Options()
	name := strings.ToLower(args[0])
	switch name {
	case "precision":
		opts.Precision = nil
	case "sig-figs":
		opts.SignificantFiguresAfterDecimalPoint = nil
	default:
		fmt.Fprintf(r.out, "%sCannot unset: %s%s\n", ui.ColorError(), name, ui.ColorReset())
		return
	}
	r.rebuild(opts, name)
}

// rebuild replaces the session formatter with one built from the mutated
// option set, reporting validation failures without losing the old settings.
func (r *REPL) rebuild(opts readnum.Options, name string) {
	formatter, err := readnum.New(readnum.WithOptions(opts))
	if err != nil {
		fmt.Fprintf(r.out, "%sInvalid configuration: %v%s\n", ui.ColorError(), err, ui.ColorReset())
		return
	}
	r.formatter = formatter
	fmt.Fprintf(r.out, "Option %s%s%s updated.\n", ui.ColorSuccess(), name, ui.ColorReset())
}

// cmdOptions lists the settable options.
func (r *REPL) cmdOptions() {
	fmt.Fprintf(r.out, "\n%sSettable options:%s\n", ui.ColorBold(), ui.ColorReset())
	for _, name := range settableOptionNames {
		fmt.Fprintf(r.out, "  %s%s%s\n", ui.ColorWarning(), name, ui.ColorReset())
	}
	fmt.Fprintln(r.out)
}

// cmdStatus displays the current formatter configuration.
func (r *REPL) cmdStatus() {
	opts := r.formatter.Options()

	precision := "natural"
	if opts.Precision != nil {
		precision = strconv.Itoa(*opts.Precision)
	}
	sigFigs := "natural"
	if opts.SignificantFiguresAfterDecimalPoint != nil {
		sigFigs = strconv.Itoa(*opts.SignificantFiguresAfterDecimalPoint)
	}

	fmt.Fprintf(r.out, "\n%sCurrent configuration:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Group size:      %s%d%s\n", ui.ColorInfo(), opts.DigitGroupSize, ui.ColorReset())
	fmt.Fprintf(r.out, "  Delimiter:       %s%q%s\n", ui.ColorInfo(), opts.DigitGroupDelimiter, ui.ColorReset())
	fmt.Fprintf(r.out, "  Decimal symbol:  %s%q%s\n", ui.ColorInfo(), opts.DecimalSymbol, ui.ColorReset())
	fmt.Fprintf(r.out, "  Precision:       %s%s%s\n", ui.ColorInfo(), precision, ui.ColorReset())
	fmt.Fprintf(r.out, "  Sig figs:        %s%s%s\n", ui.ColorInfo(), sigFigs, ui.ColorReset())
	fmt.Fprintf(r.out, "  Shortform:       %s%s%s\n", ui.ColorInfo(), onOff(opts.UseShortform), ui.ColorReset())
	fmt.Fprintf(r.out, "  Exp large:       %s%s%s (threshold %v)\n", ui.ColorInfo(), onOff(opts.UseExponentForLargeNumbers), ui.ColorReset(), opts.LargeNumberThreshold)
	fmt.Fprintf(r.out, "  Exp small:       %s%s%s (threshold %v)\n", ui.ColorInfo(), onOff(opts.UseExponentForSmallNumbers), ui.ColorReset(), opts.SmallNumberThreshold)
	fmt.Fprintf(r.out, "  Show decimal:    %s%s%s\n", ui.ColorInfo(), onOff(opts.ShowDecimalPartIfInteger), ui.ColorReset())
	fmt.Fprintf(r.out, "  Strict:          %s%s%s\n", ui.ColorInfo(), onOff(opts.StrictNonFinite), ui.ColorReset())
	fmt.Fprintln(r.out)
}

// onOff renders a boolean option state.
func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
