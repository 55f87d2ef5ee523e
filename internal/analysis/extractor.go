// Package analysis submits resumes to the AI service and turns its
// free-text answers into structured reviews.
package analysis

import (
	"regexp"
	"strconv"
	"strings"
)

// NoSummary is the placeholder used when the model produced no Summary block.
const NoSummary = "No summary available"

// The model is asked for "Rating: <int>" followed by "Summary: <text>",
// but its formatting drifts; both markers are matched leniently.
var (
	ratingPattern  = regexp.MustCompile(`Rating\s*:\s*(\d+)`)
	summaryPattern = regexp.MustCompile(`(?s)Summary\s*:\s*(.*)`)
)

// Review is the structured result of one resume analysis.
type Review struct {
	Rating  int    `json:"rating"`
	Summary string `json:"summary"`
}

// ExtractReview parses a model response into a Review. It is total over
// any input: a missing or unparseable rating degrades to 0 and a missing
// summary degrades to the placeholder, so a submission never aborts
// because the model's formatting drifted.
func ExtractReview(text string) Review {
	review := Review{Summary: NoSummary}

	if m := ratingPattern.FindStringSubmatch(text); m != nil {
		if rating, err := strconv.Atoi(m[1]); err == nil {
			review.Rating = rating
		}
	}

	if m := summaryPattern.FindStringSubmatch(text); m != nil {
		if summary := strings.TrimSpace(m[1]); summary != "" {
			review.Summary = summary
		}
	}
	return review
}
