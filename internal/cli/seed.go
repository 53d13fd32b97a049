package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/relist/internal/ui"
)

func newSeedCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Show the list a session would start with",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, flags)
			if err != nil {
				return err
			}
			defer s.close()

			t := ui.Current()
			header := fmt.Sprintf("%s  %s %d",
				ui.C(t.Title, "Items"),
				ui.C(t.Accent, "Total"), s.ed.Len(),
			)
			lines := []string{header, ""}
			lines = append(lines, ui.ItemLines(s.ed.Contents())...)
			lines = append(lines, "", ui.C(t.Muted, "Tip: reorder with `relist apply \"move 0 2\"`"))
			ui.Panel(cmd.OutOrStdout(), lines)
			return nil
		},
	}
}
