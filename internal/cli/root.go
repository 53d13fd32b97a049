// Package cli wires configuration, logging and the editor into the relist commands.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/relist/internal/editor"
	"github.com/idilsaglam/relist/internal/script"
	"github.com/idilsaglam/relist/internal/ui"
)

// Exit codes: 0 ok, 1 error, 2 usage.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var version = "dev"

// rootFlags holds global flag values shared by every subcommand.
type rootFlags struct {
	configPath string
}

// usageError marks errors caused by how relist was invoked.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usagef(format string, a ...any) error {
	return usageError{fmt.Errorf(format, a...)}
}

// NewRootCmd builds the command tree. Running relist with no subcommand opens the editor.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var flags rootFlags

	root := &cobra.Command{
		Use:   "relist",
		Short: "Reorder, add, edit and delete list items in the terminal",
		Long: `relist - a tiny list editor

Items are kept in memory only. Indexes in scripts and panels are 0-based.

Examples:
  relist                                  # interactive editor on the default list
  relist edit --seed groceries.txt
  relist apply "move 0 2" add "edit 1 X" emit --separator ", "
  relist apply -f moves.txt --diff`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageError{err} })

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default: ./relist.yaml or ~/.config/relist/relist.yaml)")
	pf.String("seed", "", "seed file (.json, .yaml, or one item per line)")
	pf.String("theme", "classic", "theme: classic|neon|mono")
	pf.String("separator", `\n`, `separator used when printing the order (escapes like \n allowed)`)
	pf.String("ids", "sequential", "id scheme for new items: sequential|uuid")
	pf.String("log-file", "", "write JSON logs to this file")
	pf.String("log-level", "info", "log level: debug|info|warn|error")
	pf.Bool("no-color", false, "disable colour output")

	edit := newEditCmd(&flags)
	root.RunE = edit.RunE

	root.AddCommand(edit)
	root.AddCommand(newApplyCmd(&flags))
	root.AddCommand(newSeedCmd(&flags))
	root.AddCommand(newVersionCmd())
	return root
}

// Run executes relist with args and returns the process exit code.
func Run(args []string) int {
	return run(args, os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd(stdout, stderr)
	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		return exitOK
	}

	ui.Fail(stderr, err.Error())
	if isUsage(err) {
		return exitUsage
	}
	return exitError
}

func isUsage(err error) bool {
	var ue usageError
	var se *script.SyntaxError
	return errors.As(err, &ue) ||
		strings.HasPrefix(err.Error(), "unknown command") ||
		errors.As(err, &se) ||
		errors.Is(err, editor.ErrIndexOutOfRange) ||
		errors.Is(err, editor.ErrDuplicateID)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "relist "+version)
		},
	}
}
