package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultModel is the Gemini model used for resume analysis.
const DefaultModel = "gemini-1.5-flash"

// Analyzer submits a resume plus scoring keywords to the AI service and
// returns its raw text response.
type Analyzer interface {
	AnalyzeResume(ctx context.Context, pdfData []byte, keywords string) (string, error)
}

// GeminiAnalyzer implements Analyzer on Google Gemini.
type GeminiAnalyzer struct {
	client *genai.Client
	model  string
}

// NewGeminiAnalyzer creates an analyzer authenticated with the given API key.
func NewGeminiAnalyzer(ctx context.Context, apiKey string) (*GeminiAnalyzer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiAnalyzer{client: client, model: DefaultModel}, nil
}

// AnalyzeResume uploads the PDF inline with the scoring prompt and returns
// the model's text response.
func (g *GeminiAnalyzer) AnalyzeResume(ctx context.Context, pdfData []byte, keywords string) (string, error) {
	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(0.1) // Low temperature for consistent output

	resp, err := model.GenerateContent(ctx,
		genai.Blob{MIMEType: "application/pdf", Data: pdfData},
		genai.Text(buildAnalysisPrompt(keywords)),
	)
	if err != nil {
		return "", fmt.Errorf("failed to analyze resume: %w", err)
	}

	return extractTextFromResponse(resp)
}

// Close releases resources held by the client.
func (g *GeminiAnalyzer) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

// buildAnalysisPrompt constructs the scoring prompt. The Rating/Summary
// template at the end is the contract ExtractReview parses against.
func buildAnalysisPrompt(keywords string) string {
	var sb strings.Builder

	sb.WriteString("Analyze this CV/Resume and provide:\n\n")
	sb.WriteString("1. A comprehensive summary of the candidate's skills and experience\n")
	sb.WriteString("2. Key strengths relevant to the position\n")
	sb.WriteString("3. Areas for improvement\n")
	sb.WriteString(fmt.Sprintf("4. An accurate rating from 1 to 100 based on these keywords: %s\n\n", keywords))
	sb.WriteString("Important:\n")
	sb.WriteString("- Give precise ratings (avoid round numbers like 85, 95)\n")
	sb.WriteString("- Use specific ratings like 73, 82, 88, etc.\n")
	sb.WriteString("- Be fair and objective in your assessment\n\n")
	sb.WriteString("CRITICAL: Output MUST be in this EXACT format:\n")
	sb.WriteString("Rating: <number>\n")
	sb.WriteString("Summary: <detailed summary>\n\n")
	sb.WriteString("Keep it professional and concise.\n")

	return sb.String()
}

// extractTextFromResponse extracts text from a Gemini API response.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}
