package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/existflow/leadboard/internal/model"
)

var addCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a new lead",
	Long: `Add a new lead.

Examples:
  leadboard add "Ann Harper" --company Zeta --email ann@zeta.io
  leadboard add "Bob Stone" --company Acme --email bob@acme.com --status active`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

var (
	addCompany string
	addEmail   string
	addStatus  string
)

func init() {
	addCmd.Flags().StringVarP(&addCompany, "company", "c", "", "Company name (required)")
	addCmd.Flags().StringVarP(&addEmail, "email", "e", "", "Email address (required)")
	addCmd.Flags().StringVarP(&addStatus, "status", "s", "inactive", "Lead status (active, inactive)")
	addCmd.MarkFlagRequired("company")
	addCmd.MarkFlagRequired("email")
}

func runAdd(cmd *cobra.Command, args []string) error {
	status := model.Status(addStatus)
	if !status.IsValid() {
		return fmt.Errorf("unknown status %q (want active or inactive)", addStatus)
	}

	svc, _, err := newService()
	if err != nil {
		return err
	}

	created, err := svc.Create(context.Background(), model.NewLead(args[0], addCompany, addEmail, status))
	if err != nil {
		return fmt.Errorf("failed to create lead: %w", err)
	}

	id := "-"
	if created.ID != nil {
		id = fmt.Sprintf("%d", *created.ID)
	}
	fmt.Printf("✓ Created lead %s: %q (%s, %s)\n", id, created.Name, created.Company, created.Status)
	return nil
}
