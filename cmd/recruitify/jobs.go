package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mahmoud/recruitify/internal/jobs"
	"github.com/mahmoud/recruitify/internal/session"
	"github.com/mahmoud/recruitify/internal/types"
)

var (
	jobName     string
	jobKeywords string
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Manage the signed-in company's job postings",
}

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List job postings",
	RunE:  runJobsList,
}

var jobsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a job posting",
	RunE:  runJobsAdd,
}

var jobsRemoveCmd = &cobra.Command{
	Use:   "remove <job-key>",
	Short: "Remove a job posting",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobsRemove,
}

func init() {
	jobsAddCmd.Flags().StringVar(&jobName, "name", "", "Job title (required)")
	jobsAddCmd.Flags().StringVar(&jobKeywords, "keywords", "", "Comma-separated scoring keywords (required)")
	_ = jobsAddCmd.MarkFlagRequired("name")
	_ = jobsAddCmd.MarkFlagRequired("keywords")

	jobsCmd.AddCommand(jobsListCmd, jobsAddCmd, jobsRemoveCmd)
	rootCmd.AddCommand(jobsCmd)
}

// currentCompany resolves the signed-in company from the session file.
func currentCompany(sessionFile string) (string, error) {
	sess := session.Load(sessionFile)
	if !sess.Active() {
		return "", fmt.Errorf("not signed in: run `recruitify login` first")
	}
	return sess.CompanyName, nil
}

func runJobsList(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	company, err := currentCompany(cfg.SessionFile)
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}

	postings, err := jobs.NewService(st).ListByCompany(context.Background(), company)
	if err != nil {
		return err
	}
	if len(postings) == 0 {
		fmt.Printf("No postings for %s\n", company)
		return nil
	}
	for _, p := range postings {
		fmt.Printf("%s  %s - Keywords: %s\n", p.Key, p.Posting.Name, p.Posting.Value)
	}
	return nil
}

func runJobsAdd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	company, err := currentCompany(cfg.SessionFile)
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}

	key, err := jobs.NewService(st).Add(context.Background(), types.CreateJobRequest{
		Name:        jobName,
		Value:       jobKeywords,
		CompanyName: company,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Job added: %s\n", key)
	return nil
}

func runJobsRemove(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}

	if err := jobs.NewService(st).Remove(context.Background(), args[0]); err != nil {
		return err
	}
	fmt.Printf("Job %s removed\n", args[0])
	return nil
}
