package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/bizreg/pkg/integrations/nydos"
	bizio "github.com/matzehuels/bizreg/pkg/io"
)

// agentRowsCommand creates the agent-rows command.
func (c *CLI) agentRowsCommand() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "agent-rows <file|->",
		Short: "Extract the first agent row from a saved rows payload",
		Long: `Read a registry name/agent listing of the form
{"rows": {"<id>": {"RECORD_NUM": ..., "TITLE": [...], "AGENT": ...}}}
from a file (or stdin with "-") and print its first row.`,
		Example: `  bizreg agent-rows listing.json
  curl -s ... | bizreg agent-rows - --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			row, err := nydos.ParseAgentRows(data)
			if err != nil {
				c.Logger.Error("Error parsing agent rows", "input", args[0], "err", err)
				if jsonOut {
					return bizio.WriteJSON(struct{}{}, cmd.OutOrStdout())
				}
				printWarning("No agent row found in %s", args[0])
				return nil
			}

			if jsonOut {
				return bizio.WriteJSON(row, cmd.OutOrStdout())
			}
			printKeyValue("Record", row.RecordNum)
			printKeyValue("DOS ID", row.ID)
			printKeyValue("Name", row.Name)
			printKeyValue("Agent", row.Agent)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the row as JSON")
	return cmd
}

// readInput reads path, or the command's stdin when path is "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
