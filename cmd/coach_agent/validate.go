package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/content"
	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/schemas"
	embedded "github.com/Techascendconsulting/stakeholder-v1-sub011/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate <content|meeting|events> [path]",
	Short: "Validate a content bundle, meeting record or event file",
	Long: `Checks a document against its embedded JSON Schema. Content bundles are
also checked for duplicate ids, cards pointing at unknown stages or keys, and
an invalid phase graph. Without a path, content validates --content or the
embedded defaults.`,
	Args:      cobra.RangeArgs(1, 2),
	ValidArgs: []string{"content", "meeting", "events"},
	RunE:      runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	kind := args[0]
	path := ""
	if len(args) == 2 {
		path = args[1]
	}

	var err error
	switch kind {
	case "content":
		err = validateContent(cmd, path)
	case "meeting", "events":
		if path == "" {
			return fmt.Errorf("validate %s requires a path", kind)
		}
		schemaName := embedded.Meeting
		if kind == "events" {
			schemaName = embedded.Events
		}
		err = schemas.ValidateFile(schemaName, path)
	default:
		return fmt.Errorf("unknown document kind %q (want content, meeting or events)", kind)
	}

	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Validation passed")
	return nil
}

func validateContent(cmd *cobra.Command, path string) error {
	if path == "" {
		path = contentPath
	}
	bundle, err := content.LoadOrDefault(path)
	if err != nil {
		return err
	}
	machine, err := bundle.Machine(nil)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d stages, %d cards, %d cover entries, %d phases\n",
		len(bundle.Stages), len(bundle.Cards), len(bundle.CoverMeta), len(machine.Phases()))
	return nil
}
