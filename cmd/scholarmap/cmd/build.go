package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scholarmap/scholarmap/internal/facts"
	"github.com/scholarmap/scholarmap/pkg/authors"
	"github.com/scholarmap/scholarmap/pkg/errors"
	"github.com/scholarmap/scholarmap/pkg/logging"
)

var outputFormat string

// buildCmd assembles an author record from a fact file.
var buildCmd = &cobra.Command{
	Use:   "build <facts-file>",
	Short: "Assemble an author record from a YAML fact file",
	Long: `Build reads a YAML fact file, replays every fact through the record
builder, and prints the assembled author record.

Empty or absent facts are skipped; entries are appended in document order.`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&outputFormat, "output", "o", "yaml", "output format (yaml or json)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	path := args[0]

	doc, err := facts.Load(path)
	if err != nil {
		logging.Err(err).Str("file", path).Msg("Failed to load fact file")
		return err
	}

	builder := authors.NewBuilder()
	doc.Apply(builder)
	author := builder.Author()

	switch outputFormat {
	case "yaml":
		fmt.Fprint(cmd.OutOrStdout(), author.FormatYAML())
	case "json":
		data, err := json.MarshalIndent(author, "", "  ")
		if err != nil {
			return errors.WrapParse("json", "", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	default:
		return errors.NewValidationError("output", outputFormat, "must be yaml or json")
	}

	return nil
}
