package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete [id]",
	Aliases: []string{"rm"},
	Short:   "Delete a lead",
	Args:    cobra.ExactArgs(1),
	RunE:    runDelete,
}

var deleteForce bool

func init() {
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Skip confirmation")
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid lead id %q", args[0])
	}

	svc, cfg, err := newService()
	if err != nil {
		return err
	}

	if cfg.ConfirmDelete && !deleteForce {
		fmt.Printf("Delete lead %d? [y/N] ", id)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := svc.Delete(context.Background(), id); err != nil {
		return fmt.Errorf("failed to delete lead: %w", err)
	}

	fmt.Printf("✓ Deleted lead %d\n", id)
	return nil
}
