package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"vhdlsema/internal/diag"
	"vhdlsema/internal/diagfmt"
	"vhdlsema/internal/driver"
	"vhdlsema/internal/dump"
	"vhdlsema/internal/observ"
)

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [flags] [files...]",
		Short: "Analyse VHDL files into a library",
		Long: `Analyze parses every file, then analyses them in order into one library.
Without file arguments the sources listed in vhdlsema.toml are used.
A file that fails to parse stops the run; semantic errors do not.`,
		RunE: runAnalyze,
	}
	cmd.Flags().BoolP("extended", "e", false, "library name is an extended identifier")
	cmd.Flags().String("lib", "", "library to analyse into (default from vhdlsema.toml or \"work\")")
	cmd.Flags().Bool("dump", false, "print the design database as JSON after analysis")
	cmd.Flags().Int("jobs", 0, "max parallel parse workers (0=auto)")
	cmd.Flags().Bool("cache", false, "reuse cached parse trees")
	cmd.Flags().String("cache-dir", "", "parse cache directory (default $XDG_CACHE_HOME/vhdlsema)")
	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	st, err := loadSettings(cmd, args)
	if err != nil {
		return err
	}
	if err = applyAnalyzeFlags(cmd, st); err != nil {
		return err
	}
	if len(st.files) == 0 {
		return fmt.Errorf("no input files (pass files or list them in [files].sources)")
	}

	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()
	stopProfiling, err := startProfiling(cmd)
	if err != nil {
		return err
	}
	defer stopProfiling()
	ctx := cmd.Context()
	defer dumpTraceOnPanic(ctx)

	var cache *driver.DiskCache
	if st.cache {
		if cache, err = driver.OpenDiskCache(st.cacheDir, "vhdlsema"); err != nil {
			return fmt.Errorf("parse cache: %w", err)
		}
	}

	timer := observ.NewTimer()
	res, err := driver.Run(ctx, driver.Options{
		Files:          st.files,
		LibraryName:    st.library,
		ExtendedLib:    st.extended,
		MaxDiagnostics: st.maxDiags,
		Jobs:           st.jobs,
		Cache:          cache,
		Timer:          timer,
		BaseDir:        st.manifest.Root,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	color := useColor(st.color, os.Stdout)
	if st.format == "json" {
		err = reportJSON(out, res, st, timer)
	} else {
		err = reportText(out, res, st, color)
	}
	if err != nil {
		return err
	}

	if dumpDB, _ := cmd.Flags().GetBool("dump"); dumpDB {
		if err := dump.Database(out, res.DB); err != nil {
			return err
		}
	}
	if st.timings && st.format != "json" {
		fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
	}
	if !res.OK() {
		return errFailed
	}
	return nil
}

func applyAnalyzeFlags(cmd *cobra.Command, st *settings) error {
	flags := cmd.Flags()
	var err error
	if flags.Changed("lib") {
		if st.library, err = flags.GetString("lib"); err != nil {
			return err
		}
		// -e относится к имени из командной строки
		st.extended = false
	}
	if flags.Changed("extended") {
		if st.extended, err = flags.GetBool("extended"); err != nil {
			return err
		}
	}
	if flags.Changed("jobs") {
		if st.jobs, err = flags.GetInt("jobs"); err != nil {
			return err
		}
	}
	if flags.Changed("cache") {
		if st.cache, err = flags.GetBool("cache"); err != nil {
			return err
		}
	}
	if flags.Changed("cache-dir") {
		if st.cacheDir, err = flags.GetString("cache-dir"); err != nil {
			return err
		}
	}
	return nil
}

// reportText prints progress lines and diagnostics file by file. Warnings
// are always printed; errors follow a banner only when there are any.
func reportText(w io.Writer, res *driver.Result, st *settings, color bool) error {
	render := func(diags []diag.Diagnostic) error {
		if len(diags) == 0 {
			return nil
		}
		if st.format == "pretty" {
			return diagfmt.Pretty(w, diags, res.FileSet, diagfmt.PrettyOpts{
				Color:     color,
				PathMode:  diagfmt.PathModeAsGiven,
				ShowNotes: true,
			})
		}
		return diagfmt.Classic(w, diags, res.FileSet, diagfmt.ClassicOpts{PathMode: diagfmt.PathModeAsGiven})
	}

	for i := range res.Files {
		fr := &res.Files[i]
		fmt.Fprintf(w, "Parsing file %q...\n", fr.Path)
		if !fr.Parsed {
			if err := render(fr.ParseBag.Warnings()); err != nil {
				return err
			}
			fmt.Fprintln(w, "ERRORS occurred during parsing!")
			return render(fr.ParseBag.Errors())
		}
		if !fr.Analyzed {
			continue
		}
		fmt.Fprintf(w, "Analyzing file %q...\n", fr.Path)
		all := diag.NewBag(len(fr.ParseBag.Items()) + len(fr.SemaBag.Items()))
		all.Merge(fr.ParseBag)
		all.Merge(fr.SemaBag)
		if err := render(all.Warnings()); err != nil {
			return err
		}
		if all.HasErrors() {
			fmt.Fprintln(w, "ERRORS occurred during analysis!")
			if err := render(all.Errors()); err != nil {
				return err
			}
		}
	}
	return nil
}

// reportJSON prints every diagnostic of the run as one JSON document.
func reportJSON(w io.Writer, res *driver.Result, st *settings, timer *observ.Timer) error {
	var diags []diag.Diagnostic
	for i := range res.Files {
		diags = append(diags, res.Files[i].Diagnostics()...)
	}
	if st.timings {
		diags = append(diags, driver.TimingDiagnostic(timer.Report()))
	}
	return diagfmt.JSON(w, diags, res.FileSet, diagfmt.JSONOpts{
		IncludePositions: true,
		PathMode:         diagfmt.PathModeAsGiven,
		IncludeNotes:     true,
	})
}
