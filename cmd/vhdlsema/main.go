package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"vhdlsema/internal/version"
)

// errFailed завершает процесс с кодом 1 без дополнительного сообщения:
// диагностики уже напечатаны.
var errFailed = errors.New("analysis failed")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "vhdlsema",
		Short:         "VHDL semantic analyser",
		Long:          `vhdlsema parses VHDL design files and analyses their design units into a library`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newParseCmd())
	root.AddCommand(newVersionCmd())

	// Глобальные флаги
	root.PersistentFlags().String("color", "", "colorize output (auto|on|off)")
	root.PersistentFlags().Bool("timings", false, "show timing information")
	root.PersistentFlags().Int("max-diagnostics", 0, "maximum number of diagnostics per file")
	root.PersistentFlags().String("format", "", "diagnostic format (classic|pretty|json)")
	root.PersistentFlags().String("trace", "", "trace output file (- for stderr)")
	root.PersistentFlags().String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	root.PersistentFlags().String("trace-mode", "ring", "trace storage (stream|ring|both)")
	root.PersistentFlags().Int("trace-ring-size", 4096, "events kept by the ring tracer")
	root.PersistentFlags().Duration("trace-heartbeat", 0, "emit heartbeat events at this interval (0 = off)")
	root.PersistentFlags().String("cpu-profile", "", "write a CPU profile to this file")
	root.PersistentFlags().String("mem-profile", "", "write a heap profile to this file")
	root.PersistentFlags().String("runtime-trace", "", "write a Go runtime trace to this file")
	return root
}

// main builds the command tree and runs it. Any error exits with status 1.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintln(os.Stderr, "vhdlsema:", err)
		}
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves auto|on|off against the stream being written.
func useColor(mode string, f *os.File) bool {
	on := mode == "on" || (mode == "auto" && isTerminal(f))
	color.NoColor = !on
	return on
}
