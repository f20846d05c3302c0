package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	bizio "github.com/matzehuels/bizreg/pkg/io"
	"github.com/matzehuels/bizreg/pkg/lookup"
)

type entityOpts struct {
	jsonOut bool
	output  string
	from    string
}

// entityCommand creates the entity command.
func (c *CLI) entityCommand() *cobra.Command {
	opts := entityOpts{}

	cmd := &cobra.Command{
		Use:   "entity <dos-id|url>...",
		Short: "Fetch the detail record for an entity",
		Long: `Fetch and normalize the registry's detail record for each DOS ID or
detail URL given. With --from, the URLs are read from a JSON file written by
"bizreg search -o". Records are fetched one at a time.`,
		Example: `  bizreg entity 5123456
  bizreg entity https://apps.dos.ny.gov/PublicInquiryWeb/api/PublicInquiry/GetEntityRecordByID/5123456
  bizreg entity --from acme.json --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			refs := args
			if opts.from != "" {
				summaries, err := bizio.ImportSummaries(opts.from)
				if err != nil {
					return err
				}
				for _, s := range summaries {
					ref := s.URL
					if ref == "" {
						ref = s.ID
					}
					refs = append(refs, ref)
				}
			}
			if len(refs) == 0 {
				return fmt.Errorf("requires at least one DOS ID or URL, or --from")
			}
			return c.runEntity(cmd, refs, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "print records as JSON")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "also write records as JSON to this file")
	cmd.Flags().StringVar(&opts.from, "from", "", "read refs from a search results JSON file")

	return cmd
}

func (c *CLI) runEntity(cmd *cobra.Command, refs []string, opts entityOpts) error {
	ctx := cmd.Context()

	svc, closeStore, err := c.newService(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	// A single ref is written as an object, several as an array.
	var records []any
	for _, ref := range refs {
		spinner := newSpinner(ctx, fmt.Sprintf("Fetching %s...", ref))
		spinner.Start()
		record := svc.Details(ctx, ref)
		spinner.Stop()
		if err := ctx.Err(); err != nil {
			return err
		}

		if record == nil {
			records = append(records, struct{}{})
			if !opts.jsonOut {
				printWarning("No record found for %s", ref)
			}
			continue
		}
		records = append(records, record)
		if !opts.jsonOut {
			printRecord(record)
			fmt.Println()
		}
	}

	var out any = records
	if len(records) == 1 {
		out = records[0]
	}
	if opts.output != "" {
		if err := bizio.ExportJSON(out, opts.output); err != nil {
			return err
		}
		if !opts.jsonOut {
			printFile(opts.output)
		}
	}
	if opts.jsonOut {
		return bizio.WriteJSON(out, cmd.OutOrStdout())
	}
	return nil
}

// showDetails fetches a single record and prints it.
func (c *CLI) showDetails(ctx context.Context, svc *lookup.Service, ref string) error {
	spinner := newSpinner(ctx, "Fetching record...")
	spinner.Start()
	record := svc.Details(ctx, ref)
	spinner.Stop()
	if err := ctx.Err(); err != nil {
		return err
	}
	if record == nil {
		printWarning("No record found for %s", ref)
		return nil
	}
	printRecord(record)
	return nil
}
