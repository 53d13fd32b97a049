package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/relist/internal/tui"
)

func newEditCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Open the interactive list editor",
		Long: `Open the interactive list editor.

Keys:
  up/down      move the cursor
  m / space    grab the row; move it with up/down, enter drops, esc puts it back
  a            add a new item at the end
  e            edit the row in place (enter keeps, esc restores)
  d            arm the row for deletion; d again on the same row deletes it
  x            keep the armed row
  p            print the current order (shown again after exit)
  y            copy the current order to the clipboard
  v            show how the order changed since start
  q            quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, flags)
			if err != nil {
				return err
			}
			defer s.close()

			res, err := tui.Run(s.ed, tui.Options{
				Separator: s.sep,
				Clipboard: s.cfg.Clipboard,
				AltScreen: s.cfg.AltScreen,
				NoColor:   s.cfg.NoColor,
				Logger:    s.log,
			})
			if err != nil {
				return fmt.Errorf("tui: %w", err)
			}

			out := cmd.OutOrStdout()
			for _, block := range res.Emitted {
				fmt.Fprintln(out, "Items in new order:")
				fmt.Fprintln(out, block)
			}
			return nil
		},
	}
}
