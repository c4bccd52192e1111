package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show a single lead",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid lead id %q", args[0])
	}

	svc, _, err := newService()
	if err != nil {
		return err
	}

	lead, err := svc.GetByID(context.Background(), id)
	if err != nil {
		return err
	}

	fmt.Printf("ID:       %d\n", id)
	fmt.Printf("Name:     %s\n", lead.Name)
	fmt.Printf("Company:  %s\n", lead.Company)
	fmt.Printf("Email:    %s\n", lead.Email)
	fmt.Printf("Status:   %s\n", lead.Status)
	if lead.CreatedAt != "" {
		fmt.Printf("Created:  %s\n", lead.CreatedAt)
	}
	if lead.UpdatedAt != "" {
		fmt.Printf("Updated:  %s\n", lead.UpdatedAt)
	}
	if lead.PublishedAt != "" {
		fmt.Printf("Published: %s\n", lead.PublishedAt)
	}
	return nil
}
