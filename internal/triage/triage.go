// Package triage scores free text against a fixed table of red-flag patterns
// and derives risk levels for self-reported assessments.
package triage

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"navio/internal/models"
)

const (
	SafeText       = "This message appears safe. No obvious red flags detected."
	UnsafeText     = "This message looks unsafe. Multiple red flags detected including requests for personal information or money."
	SuspiciousText = "This message may be suspicious. Exercise caution and verify the sender."

	minConfidence = 30
	maxConfidence = 95
)

type pattern struct {
	name     string
	re       *regexp.Regexp
	severity string
}

// Order matters only for the reported match list.
var patterns = []pattern{
	{"meeting_or_location", regexp.MustCompile(`(?i)meet|meeting|location|address`), models.RiskMedium},
	{"personal_information", regexp.MustCompile(`(?i)personal.*info|password|account`), models.RiskHigh},
	{"urgency", regexp.MustCompile(`(?i)urgent|immediately|asap`), models.RiskMedium},
	{"money", regexp.MustCompile(`(?i)money|payment|transfer`), models.RiskHigh},
	{"secrecy", regexp.MustCompile(`(?i)secret|don.*tell|confidential`), models.RiskHigh},
}

// Result is the outcome of analyzing one text.
type Result struct {
	Classification string
	RiskLevel      string
	Confidence     int
	Matches        []string
}

// Analyze classifies text. It is total over any string; callers reject blank input.
func Analyze(text string) Result {
	var matches []string
	high := false
	for _, p := range patterns {
		if p.re.MatchString(text) {
			matches = append(matches, p.name)
			if p.severity == models.RiskHigh {
				high = true
			}
		}
	}

	res := Result{Matches: matches}
	switch {
	case len(matches) == 0:
		res.Classification, res.RiskLevel = SafeText, models.RiskLow
	case high:
		res.Classification, res.RiskLevel = UnsafeText, models.RiskHigh
	default:
		res.Classification, res.RiskLevel = SuspiciousText, models.RiskMedium
	}
	res.Confidence = confidence(text, res.Classification)
	return res
}

func confidence(text, classification string) int {
	score := 50
	n := utf8.RuneCountInString(text)
	if n > 100 {
		score += 10
	}
	if n > 500 {
		score += 10
	}
	if strings.Contains(classification, "unsafe") {
		score += 20
	}
	if strings.Contains(strings.ToLower(classification), "multiple") {
		score += 10
	}
	return min(maxConfidence, max(minConfidence, score))
}

// AssessRisk derives the stored risk level of a questionnaire. A missing
// can_block_report answer counts as "cannot block or report".
func AssessRisk(in models.CreateRiskAssessmentInput) string {
	canBlock := in.CanBlockReport != nil && *in.CanBlockReport
	escalating := in.EscalatingRisk != nil && *in.EscalatingRisk == "yes"
	if (in.SafetyFeeling != nil && *in.SafetyFeeling <= 2) || escalating || !canBlock {
		return models.RiskHigh
	}
	daily := in.Frequency != nil && *in.Frequency == "daily"
	if (in.SafetyFeeling != nil && *in.SafetyFeeling == 3) || daily {
		return models.RiskMedium
	}
	return models.RiskLow
}
