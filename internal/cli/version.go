package cli

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X .../internal/cli.version=1.2.3".
var version = "0.0.0-dev"

// Version returns the build version, normalized to semver when it parses.
func Version() string {
	v, err := semver.NewVersion(version)
	if err != nil {
		return version
	}
	return v.String()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the proboot version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "proboot %s\n", Version())
	},
}

func init() {
	rootCmd.Version = Version()
	rootCmd.AddCommand(versionCmd)
}
