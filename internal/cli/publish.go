package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func (r *runner) publishCommand() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "publish <entry-relative-path>",
		Short: "Make an entry the latest one on the home page and rebuild the archive",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("provide the entry path: " + binaryName + " publish entries/2025-12-27-first-entry.html")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := r.app.Publish(cmd.Context(), args[0], dryRun)
			if err != nil {
				return err
			}

			if dryRun {
				fmt.Fprint(cmd.OutOrStdout(), result.Document)
				return nil
			}
			r.printer.Success("Published. %s updated.", filepath.Base(r.cfg.Index))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the updated home page instead of writing it")
	return cmd
}
