package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/relist/internal/orderdiff"
	"github.com/idilsaglam/relist/internal/script"
	"github.com/idilsaglam/relist/internal/ui"
)

func newApplyCmd(flags *rootFlags) *cobra.Command {
	var (
		file     string
		showDiff bool
	)
	cmd := &cobra.Command{
		Use:   "apply [op...]",
		Short: "Apply list operations without the interactive editor",
		Long: `Apply list operations to the seed and print the result.

Each argument (or each line of --file) is one op:
  move <src> <dst>   move the item at src so it ends up at dst
  move <src> -       pick up src and drop it outside the list (no change)
  add                append "Item N"
  edit <i> <text>    replace the text of item i
  delete <i>         arm item i; a second delete on the same i removes it
  cancel             disarm
  emit               print the current order

When no op emits, the final order is printed once at the end.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := script.ParseArgs(args)
			if err != nil {
				return err
			}
			if file != "" {
				more, err := readScript(file, cmd.InOrStdin())
				if err != nil {
					return err
				}
				ops = append(ops, more...)
			}
			if len(ops) == 0 {
				return usagef("apply: no ops given")
			}

			s, err := openSession(cmd, flags)
			if err != nil {
				return err
			}
			defer s.close()

			out := cmd.OutOrStdout()
			if err := script.Run(s.ed, ops, out, s.sep); err != nil {
				return fmt.Errorf("apply: %w", err)
			}
			if !hasEmit(ops) {
				fmt.Fprintln(out, s.ed.Emit(s.sep))
			}
			if showDiff {
				fmt.Fprintln(out)
				fmt.Fprintln(out, orderdiff.Render(contentsOf(s.seed), s.ed.Contents(), ui.ColorDisabled()))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "read ops from file, one per line (- for stdin)")
	cmd.Flags().BoolVar(&showDiff, "diff", false, "print how the order changed")
	return cmd
}

func readScript(path string, stdin io.Reader) ([]script.Op, error) {
	if path == "-" {
		return script.Parse(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	defer f.Close()
	return script.Parse(f)
}

func hasEmit(ops []script.Op) bool {
	for _, op := range ops {
		if op.Kind == script.OpEmit {
			return true
		}
	}
	return false
}
