package cli

import (
	"github.com/spf13/cobra"
)

func (r *runner) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List archived entries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := r.app.Archive(cmd.Context())
			if err != nil {
				return err
			}

			if len(entries) == 0 {
				r.printer.Print("No entries yet.")
				return nil
			}
			for _, e := range entries {
				r.printer.Print("%s  %s  (%s)", e.DateString(), e.Title, e.RelPath)
			}
			return nil
		},
	}
}
