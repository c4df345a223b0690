package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the project types proboot can create",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		t := table.New().
			Border(lipgloss.HiddenBorder()).
			Headers("TYPE", "ALIASES", "DESCRIPTION")
		for _, tmpl := range newRegistry().List() {
			pt := tmpl.Type()
			t.Row(string(pt), strings.Join(pt.Aliases(), ", "), tmpl.Description())
		}
		fmt.Fprintln(cmd.OutOrStdout(), t.Render())
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
}
