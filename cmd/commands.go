package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/Deetschoe/monkeycmd/internal/command"
)

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "Show the trained shortcuts for a platform",
	RunE:  runCommands,
}

func init() {
	rootCmd.AddCommand(commandsCmd)
}

func runCommands(cmd *cobra.Command, args []string) error {
	osTarget, err := cfg.ResolveOS()
	if err != nil {
		return err
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}

	out, err := r.Render(commandReference(osTarget))
	if err != nil {
		return fmt.Errorf("rendering reference: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// commandReference builds the markdown shortcut table for one platform.
func commandReference(os command.OS) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# monkeycmd shortcuts (%s)\n\n", os)
	b.WriteString("| ID | Action | Keys |\n")
	b.WriteString("|---|---|---|\n")

	for _, c := range command.All() {
		binding := c.BindingFor(os)
		fmt.Fprintf(&b, "| `%s` | %s | %s |\n",
			c.ID, c.Name, strings.Join(binding.Keys, " "))
	}

	b.WriteString("\nRestrict a session to specific IDs with the `commands` list in the config file.\n")
	return b.String()
}
