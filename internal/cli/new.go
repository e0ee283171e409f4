package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
)

func (r *runner) newCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "new <title...>",
		Short: "Create a new dated entry from the template",
		Args: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(strings.Join(args, " ")) == "" {
				return errors.New(`provide a title: ` + binaryName + ` new "My Title"`)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := r.app.NewEntry(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			r.printer.Success("Created: %s", file.RelPath)
			r.printer.Print("Now edit that file, then run:")
			r.printer.Hint("  %s publish %s", binaryName, file.RelPath)
			return nil
		},
	}
}
