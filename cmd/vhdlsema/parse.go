package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vhdlsema/internal/diagfmt"
	"vhdlsema/internal/driver"
	"vhdlsema/internal/parsetree"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [flags] <file.vhd>",
		Short: "Parse a VHDL file and print its parse tree as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}
}

func runParse(cmd *cobra.Command, args []string) error {
	st, err := loadSettings(cmd, nil)
	if err != nil {
		return err
	}
	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	fs, result, err := driver.Parse(cmd.Context(), args[0], st.maxDiags)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	diags := result.Bag.Items()
	if len(diags) > 0 {
		errOut := cmd.ErrOrStderr()
		switch st.format {
		case "json":
			err = diagfmt.JSON(errOut, diags, fs, diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: true})
		case "pretty":
			err = diagfmt.Pretty(errOut, diags, fs, diagfmt.PrettyOpts{
				Color:     useColor(st.color, os.Stderr),
				ShowNotes: true,
			})
		default:
			err = diagfmt.Classic(errOut, diags, fs, diagfmt.ClassicOpts{})
		}
		if err != nil {
			return err
		}
	}
	if result.Failed() {
		return errFailed
	}
	return parsetree.Print(cmd.OutOrStdout(), result.Tree, fs)
}
