package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mahmoud/recruitify/internal/types"
	"github.com/mahmoud/recruitify/internal/workflow"
)

var statusCmd = &cobra.Command{
	Use:   "status <application-key> <Pending|Approved|Rejected>",
	Short: "Set an application's review status",
	Args:  cobra.ExactArgs(2),
	RunE:  runStatus,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <application-key>",
	Short: "Delete an application record",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(deleteCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}

	status, err := types.ParseStatus(args[1])
	if err != nil {
		return fmt.Errorf("%w: %q", workflow.ErrInvalidStatus, args[1])
	}

	svc := workflow.NewService(st, nil)
	if err := svc.SetStatus(context.Background(), args[0], status); err != nil {
		return err
	}
	fmt.Printf("Application %s is now %s\n", args[0], status)
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}

	svc := workflow.NewService(st, nil)
	if err := svc.Delete(context.Background(), args[0]); err != nil {
		return err
	}
	fmt.Printf("Application %s deleted\n", args[0])
	return nil
}
