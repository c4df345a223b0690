package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/chaz8081/proboot/pkg/schema"
)

func init() {
	rootCmd.ValidArgsFunction = completeProjectName
}

// completeProjectTypes completes --type with every accepted identifier.
func completeProjectTypes(cmd *cobra.Command, args []string, toComplete string) ([]cobra.Completion, cobra.ShellCompDirective) {
	var out []cobra.Completion
	for _, id := range schema.Identifiers() {
		if strings.HasPrefix(id, toComplete) {
			out = append(out, id)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

// completeProjectName offers nothing for the project name: it names a
// directory that must not exist yet.
func completeProjectName(cmd *cobra.Command, args []string, toComplete string) ([]cobra.Completion, cobra.ShellCompDirective) {
	return nil, cobra.ShellCompDirectiveNoFileComp
}
