package terminal

import (
	"context"
	"io"
	"os"

	"github.com/pb-tools/partner-atlas/pkg/runtime/terminal/commands"
	"github.com/pb-tools/partner-atlas/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd(opts.Output)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) ExecuteContext(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}

func (cli *CLI) newRootCmd(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "partner-atlas",
		Short: "PartnerBoost brand reporting tool",
	}

	cmd.AddCommand(commands.NewReportCmd(cli.reporter))
	cmd.AddCommand(commands.NewSyncCmd())
	cmd.AddCommand(commands.NewBrandsCmd(out))

	return cmd
}
