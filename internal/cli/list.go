package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/existflow/leadboard/internal/model"
	"github.com/existflow/leadboard/internal/view"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List leads",
	Long: `List leads from the backend, with the same search, status filter,
and sorting the dashboard table offers.

Examples:
  leadboard list
  leadboard list --search acme
  leadboard list --status active --sort company
  leadboard list --sort name --desc`,
	RunE: runList,
}

var (
	listSearch string
	listStatus string
	listSort   string
	listDesc   bool
)

func init() {
	listCmd.Flags().StringVarP(&listSearch, "search", "q", "", "Match against name, company, or email")
	listCmd.Flags().StringVarP(&listStatus, "status", "s", "all", "Filter by status (all, active, inactive)")
	listCmd.Flags().StringVar(&listSort, "sort", "", "Sort column (name, company, email, status)")
	listCmd.Flags().BoolVar(&listDesc, "desc", false, "Sort descending")
}

func runList(cmd *cobra.Command, args []string) error {
	filter, err := buildFilter()
	if err != nil {
		return err
	}

	svc, _, err := newService()
	if err != nil {
		return err
	}

	leads, err := svc.GetAll(context.Background(), "")
	if err != nil {
		return err
	}

	shown := view.Compute(leads, filter)
	if len(shown) == 0 {
		fmt.Println("No leads found. Add one with: leadboard add \"Name\" --company C --email E")
		return nil
	}

	printLeads(shown)
	fmt.Printf("\n%d of %d leads\n", len(shown), len(leads))
	return nil
}

func buildFilter() (view.FilterState, error) {
	filter := view.NewFilterState()
	filter.Search = listSearch

	switch listStatus {
	case "all", "":
	case string(model.StatusActive):
		filter.Status = view.StatusActive
	case string(model.StatusInactive):
		filter.Status = view.StatusInactive
	default:
		return filter, fmt.Errorf("unknown status %q (want all, active, or inactive)", listStatus)
	}

	switch listSort {
	case "":
	case "name":
		filter.SortColumn = view.ColumnName
	case "company":
		filter.SortColumn = view.ColumnCompany
	case "email":
		filter.SortColumn = view.ColumnEmail
	case "status", "lead_status":
		filter.SortColumn = view.ColumnStatus
	default:
		return filter, fmt.Errorf("unknown sort column %q (want name, company, email, or status)", listSort)
	}
	if listDesc {
		filter.SortDirection = view.Desc
	}

	return filter, nil
}

func printLeads(leads []model.Lead) {
	// Size columns to the terminal when attached to one
	width := 100
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 60 {
		width = w
	}
	nameW := (width - 20) * 3 / 10
	companyW := (width - 20) * 3 / 10
	emailW := (width - 20) * 4 / 10

	fmt.Printf("\n  %-6s %-*s %-*s %-*s %s\n", "ID", nameW, "NAME", companyW, "COMPANY", emailW, "EMAIL", "STATUS")
	fmt.Println(strings.Repeat("─", minInt(width, nameW+companyW+emailW+22)))

	for _, l := range leads {
		id := "-"
		if l.ID != nil {
			id = fmt.Sprintf("%d", *l.ID)
		}
		fmt.Printf("  %-6s %-*s %-*s %-*s %s\n",
			id,
			nameW, clip(l.Name, nameW),
			companyW, clip(l.Company, companyW),
			emailW, clip(l.Email, emailW),
			l.Status)
	}
}

func clip(s string, max int) string {
	if len(s) <= max || max <= 3 {
		return s
	}
	return s[:max-3] + "..."
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
