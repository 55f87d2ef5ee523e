package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mahmoud/recruitify/internal/analysis"
	"github.com/mahmoud/recruitify/internal/ingestion"
	"github.com/mahmoud/recruitify/internal/types"
	"github.com/mahmoud/recruitify/internal/workflow"
)

var (
	submitName    string
	submitEmail   string
	submitCompany string
	submitJob     string
	submitResume  string
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit a resume application",
	Long:  `Validate a PDF resume, score it with the AI service against the posting's keywords, and create a Pending application record.`,
	RunE:  runSubmit,
}

func init() {
	submitCmd.Flags().StringVar(&submitName, "name", "", "Applicant full name (required)")
	submitCmd.Flags().StringVar(&submitEmail, "email", "", "Applicant email (required)")
	submitCmd.Flags().StringVar(&submitCompany, "company", "", "Company to apply to (required)")
	submitCmd.Flags().StringVar(&submitJob, "job", "", "Job posting name (required)")
	submitCmd.Flags().StringVar(&submitResume, "resume", "", "Path to the PDF resume (required)")
	for _, flag := range []string{"name", "email", "company", "job", "resume"} {
		_ = submitCmd.MarkFlagRequired(flag)
	}
	rootCmd.AddCommand(submitCmd)
}

func runSubmit(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	resume, err := ingestion.ReadResume(submitResume)
	if err != nil {
		return err
	}
	if pages, err := ingestion.PageCount(resume); err != nil {
		fmt.Printf("Warning: could not read PDF structure: %v\n", err)
	} else {
		fmt.Printf("Resume: %d page(s), %.1f KB\n", pages, float64(len(resume))/1024)
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()
	analyzer, err := analysis.NewGeminiAnalyzer(ctx, cfg.GeminiAPIKey)
	if err != nil {
		return err
	}
	defer analyzer.Close()

	svc := workflow.NewService(st, analyzer)
	key, record, err := svc.Submit(ctx, types.SubmitApplicationRequest{
		FullName: submitName,
		Email:    submitEmail,
		Company:  submitCompany,
		Job:      submitJob,
		Resume:   resume,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Application created: %s\n", key)
	fmt.Printf("  Rating:  %.0f/100\n", record.Rating.Value)
	fmt.Printf("  Summary: %s\n", record.Summary)
	return nil
}
