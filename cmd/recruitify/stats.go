package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mahmoud/recruitify/internal/stats"
)

var statsCompany string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-company application statistics",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsCompany, "company", "", "Company name (defaults to the signed-in company)")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	company := statsCompany
	if company == "" {
		company, err = currentCompany(cfg.SessionFile)
		if err != nil {
			return err
		}
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}

	overview, err := stats.NewAggregator(st).Overview(context.Background(), company)
	if err != nil {
		return err
	}

	fmt.Printf("Statistics for %s\n", company)
	fmt.Printf("  Total:      %d\n", overview.Stats.Total)
	fmt.Printf("  Pending:    %d\n", overview.Stats.Pending)
	fmt.Printf("  Approved:   %d\n", overview.Stats.Approved)
	fmt.Printf("  Rejected:   %d\n", overview.Stats.Rejected)
	fmt.Printf("  Avg rating: %.1f\n", overview.Stats.AvgRating)
	fmt.Printf("  Open jobs:  %d\n", overview.OpenJobs)
	return nil
}
