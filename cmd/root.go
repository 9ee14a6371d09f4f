// Package cmd implements the steam-collections command line.
package cmd

import (
	"context"

	"github.com/charmbracelet/fang"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Metadata describes the running build. It is filled in by main from ldflags.
type Metadata struct {
	Version string
}

var metadata = Metadata{Version: "dev"}

var rootCmd = &cobra.Command{
	Use:   "steam-collections [user-id]",
	Short: "Print the game collections stored by a local Steam install",
	Long: `Print the game collections Steam keeps for a user.

Steam's library stores collections in the Local Storage of its embedded browser,
a LevelDB database under <steam>/config/htmlcache. This command finds the Steam
install under your home directory, opens that database read-only and prints the
collections JSON for the given Steam user.

If no user ID is given, STEAM_USER_ID is used, and failing that the first account
found under <steam>/userdata.

Steam locks the database while it is running, so quit Steam first.`,
	Example: `  # Print collections for the first account found
  steam-collections

  # Print collections for a specific account
  steam-collections 76561198000000000

  # Show where Steam was found
  steam-collections locate`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			pterm.EnableDebugMessages()
		}
	},
	RunE: runCollections,
}

func init() {
	bindPersistentFlags(rootCmd.PersistentFlags())
}

func bindPersistentFlags(fs *pflag.FlagSet) {
	fs.Bool("debug", false, "Print debug diagnostics")
}

// Execute runs the root command.
func Execute(m Metadata) error {
	metadata = m
	return fang.Execute(context.Background(), rootCmd, fang.WithVersion(metadata.Version))
}
