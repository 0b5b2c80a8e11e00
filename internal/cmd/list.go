package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gravitrone/cardlist/internal/catalog"
	"github.com/gravitrone/cardlist/internal/view"
)

// ListRequest selects one page of the filtered view.
type ListRequest struct {
	Search string
	Page   int
	JSON   bool
}

type listOutput struct {
	Page        int              `json:"page"`
	Pages       int              `json:"pages"`
	Total       int              `json:"total"`
	HasPrevious bool             `json:"has_previous"`
	HasNext     bool             `json:"has_next"`
	Records     []catalog.Record `json:"records"`
}

// RunList loads the dataset from source and prints the requested page.
func RunList(ctx context.Context, source catalog.Source, req ListRequest, logger *zap.Logger, out io.Writer) error {
	if req.Page < 1 {
		return fmt.Errorf("page must be >= 1, got %d", req.Page)
	}

	records, err := source.Records(ctx)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	ctrl := view.NewController(records, view.WithLogger(logger))
	ctrl.SetSearchTerm(req.Search)
	for n := 1; n < req.Page; n++ {
		if !ctrl.GoNext() {
			return fmt.Errorf("page %d out of range (1-%d)", req.Page, ctrl.CurrentPage().Pages())
		}
	}

	page := ctrl.CurrentPage()
	if req.JSON {
		visible := page.Visible
		if visible == nil {
			visible = []catalog.Record{}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(listOutput{
			Page:        page.Number(),
			Pages:       page.Pages(),
			Total:       page.Total,
			HasPrevious: page.HasPrevious,
			HasNext:     page.HasNext,
			Records:     visible,
		})
	}

	if len(page.Visible) == 0 {
		if len(records) == 0 {
			fmt.Fprintln(out, "no records")
		} else {
			fmt.Fprintln(out, "no matches")
		}
	}
	for _, rec := range page.Visible {
		tags := strings.Join(rec.Tags.Titles(), ", ")
		fmt.Fprintf(out, "  %s  %s  [%s]\n", rec.ID, rec.Name(), tags)
	}
	fmt.Fprintf(out, "page %d/%d  previous: %s  next: %s\n",
		page.Number(), page.Pages(), yesNo(page.HasPrevious), yesNo(page.HasNext))
	return nil
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

// ListCmd returns the `cardlist list` command.
func ListCmd(opts *Options) *cobra.Command {
	req := ListRequest{Page: 1}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of cards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := Resolve(*opts)
			if err != nil {
				return err
			}
			logger, err := settings.Logger()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			return RunList(cmd.Context(), settings.Source(logger), req, logger, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&req.Search, "search", "s", "", "filter by tag title (case-insensitive substring)")
	cmd.Flags().IntVarP(&req.Page, "page", "p", 1, "page number, starting at 1")
	cmd.Flags().BoolVar(&req.JSON, "json", false, "print the page as JSON")
	return cmd
}
