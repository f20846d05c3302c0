package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	apperrors "github.com/matzehuels/bizreg/pkg/errors"
	bizio "github.com/matzehuels/bizreg/pkg/io"
)

// storedCommand creates the stored command.
func (c *CLI) storedCommand() *cobra.Command {
	var (
		jsonOut bool
		query   string
	)

	cmd := &cobra.Command{
		Use:   "stored <dos-id> | stored --search <query>",
		Short: "Show a record or search saved by an earlier lookup",
		Long: `Show a detail record, or the latest run of a search, from the configured
result store without contacting the registry. Requires a store other than "none".`,
		Example: `  bizreg stored 5123456
  bizreg stored --search "acme widgets" --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			searching := cmd.Flags().Changed("search")
			if searching == (len(args) == 1) {
				return apperrors.New(apperrors.ErrCodeInvalidInput, "pass either a DOS ID or --search, not both")
			}

			svc, closeStore, err := c.newService(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			if searching {
				run, err := svc.StoredSearch(cmd.Context(), query)
				if err != nil {
					return err
				}
				if jsonOut {
					return bizio.WriteJSON(run, cmd.OutOrStdout())
				}
				printKeyValue("Saved", run.SavedAt.Local().Format("2006-01-02 15:04:05"))
				fmt.Println(summaryTable(run.Results))
				return nil
			}

			record, err := svc.Stored(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOut {
				return bizio.WriteJSON(record, cmd.OutOrStdout())
			}
			printRecord(record)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "print as JSON")
	cmd.Flags().StringVar(&query, "search", "", "show the latest saved run of this search query")
	return cmd
}
