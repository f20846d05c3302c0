package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/bizreg/pkg/entity"
	apperrors "github.com/matzehuels/bizreg/pkg/errors"
	bizio "github.com/matzehuels/bizreg/pkg/io"
	"github.com/matzehuels/bizreg/pkg/integrations/nydos"
	"github.com/matzehuels/bizreg/pkg/lookup"
)

type searchOpts struct {
	match       string
	status      string
	types       []string
	jsonOut     bool
	output      string
	interactive bool
}

// searchCommand creates the search command.
func (c *CLI) searchCommand() *cobra.Command {
	opts := searchOpts{}

	cmd := &cobra.Command{
		Use:   "search <name>",
		Short: "Search registered entities by name",
		Long: `Search the registry for entities whose names match the query.

Results are limited to the first 50 matches. By default names are matched by
prefix across all statuses and the four common entity types.`,
		Example: `  bizreg search "acme widgets"
  bizreg search acme --match contains --status active
  bizreg search acme --json -o acme.json
  bizreg search acme -i`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSearch(cmd, strings.Join(args, " "), opts)
		},
	}

	cmd.Flags().StringVar(&opts.match, "match", "begins", "name match: begins, contains, exact")
	cmd.Flags().StringVar(&opts.status, "status", "all", "entity status: all, active, inactive")
	cmd.Flags().StringSliceVar(&opts.types, "type", nil, "entity types (corporation, llc, lp, llp); repeatable")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "print results as JSON")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "also write results as JSON to this file")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "pick a result and fetch its record")

	return cmd
}

func (c *CLI) runSearch(cmd *cobra.Command, query string, opts searchOpts) error {
	ctx := cmd.Context()

	regOpts, err := opts.toSearchOptions()
	if err != nil {
		return err
	}
	if err := apperrors.ValidateQuery(query); err != nil {
		return err
	}

	svc, closeStore, err := c.newService(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	prog := newProgress(c.Logger)
	spinner := newSpinner(ctx, fmt.Sprintf("Searching %q...", query))
	spinner.Start()
	results := svc.SearchWith(ctx, query, regOpts)
	spinner.Stop()
	if err := ctx.Err(); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Found %d entities", len(results)))

	if opts.output != "" {
		if err := bizio.ExportJSON(results, opts.output); err != nil {
			return err
		}
	}

	switch {
	case opts.jsonOut:
		return bizio.WriteJSON(results, cmd.OutOrStdout())
	case len(results) == 0:
		printWarning("No entities found for %q", query)
		return nil
	case opts.interactive:
		return c.pickAndFetch(ctx, svc, query, results)
	}

	fmt.Println(summaryTable(results))
	if opts.output != "" {
		printFile(opts.output)
	}
	printNextStep("Fetch a record", fmt.Sprintf("%s entity %s", appName, results[0].ID))
	return nil
}

// pickAndFetch shows the interactive picker and fetches the chosen record.
func (c *CLI) pickAndFetch(ctx context.Context, svc *lookup.Service, query string, results []entity.Summary) error {
	final, err := tea.NewProgram(NewSearchListModel(query, results), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("picker: %w", err)
	}
	m, ok := final.(SearchListModel)
	if !ok || m.Selected == nil {
		printInfo("Nothing selected")
		return nil
	}

	return c.showDetails(ctx, svc, m.Selected.URL)
}

// toSearchOptions maps flag values to registry indicators.
func (o searchOpts) toSearchOptions() (nydos.SearchOptions, error) {
	var out nydos.SearchOptions

	switch strings.ToLower(o.match) {
	case "", "begins", "beginswith":
		out.Expression = nydos.ExpressionBeginsWith
	case "contains":
		out.Expression = nydos.ExpressionContains
	case "exact", "exactmatch":
		out.Expression = nydos.ExpressionExactMatch
	default:
		return out, apperrors.New(apperrors.ErrCodeInvalidInput, "unknown --match %q (want begins, contains, exact)", o.match)
	}

	switch strings.ToLower(o.status) {
	case "", "all", "allstatuses":
		out.Status = nydos.StatusAll
	case "active":
		out.Status = nydos.StatusActive
	case "inactive":
		out.Status = nydos.StatusInactive
	default:
		return out, apperrors.New(apperrors.ErrCodeInvalidInput, "unknown --status %q (want all, active, inactive)", o.status)
	}

	for _, t := range o.types {
		typ, ok := entityTypeAliases[strings.ToLower(t)]
		if !ok {
			return out, apperrors.New(apperrors.ErrCodeInvalidInput, "unknown --type %q (want corporation, llc, lp, llp)", t)
		}
		out.Types = append(out.Types, typ)
	}
	return out, nil
}

var entityTypeAliases = map[string]string{
	"corporation": nydos.TypeCorporation,
	"corp":        nydos.TypeCorporation,
	"llc":         nydos.TypeLimitedLiabilityCompany,
	"lp":          nydos.TypeLimitedPartnership,
	"llp":         nydos.TypeLimitedLiabilityPartnership,
}
