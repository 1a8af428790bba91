package triage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"navio/internal/models"
)

func TestAnalyze_Levels(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		level string
		class string
	}{
		{"money", "send money now", models.RiskHigh, UnsafeText},
		{"password", "what is your PASSWORD?", models.RiskHigh, UnsafeText},
		{"secret", "this is our secret, don't tell mom", models.RiskHigh, UnsafeText},
		{"personal info", "give me your personal details and info", models.RiskHigh, UnsafeText},
		{"meeting only", "let's meet after school", models.RiskMedium, SuspiciousText},
		{"urgency only", "reply ASAP", models.RiskMedium, SuspiciousText},
		{"medium and high", "urgent: transfer the payment", models.RiskHigh, UnsafeText},
		{"nothing", "have a nice day", models.RiskLow, SafeText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Analyze(tt.text)
			assert.Equal(t, tt.level, res.RiskLevel)
			assert.Equal(t, tt.class, res.Classification)
		})
	}
}

func TestAnalyze_Confidence(t *testing.T) {
	assert.Equal(t, 50, Analyze("hello").Confidence)
	assert.Equal(t, 50, Analyze("meet me").Confidence)
	assert.Equal(t, 80, Analyze("send money").Confidence)

	long := strings.Repeat("a", 101)
	assert.Equal(t, 60, Analyze(long).Confidence)
	longer := strings.Repeat("a", 501)
	assert.Equal(t, 70, Analyze(longer).Confidence)
	assert.Equal(t, 95, Analyze(longer+" money").Confidence)
}

func TestAnalyze_SafeConfidenceInRange(t *testing.T) {
	for _, text := range []string{"x", "good morning", strings.Repeat("calm ", 300)} {
		res := Analyze(text)
		assert.Equal(t, models.RiskLow, res.RiskLevel)
		assert.GreaterOrEqual(t, res.Confidence, 30)
		assert.LessOrEqual(t, res.Confidence, 95)
	}
}

func TestAnalyze_ConfidenceMonotonicInLength(t *testing.T) {
	for _, suffix := range []string{"", " money"} {
		prev := 0
		for _, n := range []int{1, 100, 101, 500, 501, 2000} {
			c := Analyze(strings.Repeat("b", n) + suffix).Confidence
			assert.GreaterOrEqual(t, c, prev, "length %d", n)
			prev = c
		}
	}
}

func TestAssessRisk(t *testing.T) {
	intp := func(v int) *int { return &v }
	strp := func(v string) *string { return &v }
	boolp := func(v bool) *bool { return &v }

	tests := []struct {
		name string
		in   models.CreateRiskAssessmentInput
		want string
	}{
		{"low feeling", models.CreateRiskAssessmentInput{SafetyFeeling: intp(2), CanBlockReport: boolp(true)}, models.RiskHigh},
		{"escalating", models.CreateRiskAssessmentInput{SafetyFeeling: intp(5), EscalatingRisk: strp("yes"), CanBlockReport: boolp(true)}, models.RiskHigh},
		{"cannot block", models.CreateRiskAssessmentInput{SafetyFeeling: intp(5), CanBlockReport: boolp(false)}, models.RiskHigh},
		{"block unanswered", models.CreateRiskAssessmentInput{SafetyFeeling: intp(5)}, models.RiskHigh},
		{"neutral feeling", models.CreateRiskAssessmentInput{SafetyFeeling: intp(3), CanBlockReport: boolp(true)}, models.RiskMedium},
		{"daily", models.CreateRiskAssessmentInput{SafetyFeeling: intp(4), Frequency: strp("daily"), CanBlockReport: boolp(true)}, models.RiskMedium},
		{"escalating free text", models.CreateRiskAssessmentInput{SafetyFeeling: intp(4), EscalatingRisk: strp("not sure"), CanBlockReport: boolp(true)}, models.RiskLow},
		{"feeling unanswered", models.CreateRiskAssessmentInput{Frequency: strp("weekly"), CanBlockReport: boolp(true)}, models.RiskLow},
		{"safe", models.CreateRiskAssessmentInput{SafetyFeeling: intp(5), Frequency: strp("once"), EscalatingRisk: strp("no"), CanBlockReport: boolp(true)}, models.RiskLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AssessRisk(tt.in))
		})
	}
}

func TestAssessRisk_Exhaustive(t *testing.T) {
	for feeling := 1; feeling <= 5; feeling++ {
		for _, esc := range []string{"yes", "no"} {
			for _, block := range []bool{true, false} {
				for _, freq := range []string{"daily", "weekly"} {
					f, e, b, fr := feeling, esc, block, freq
					got := AssessRisk(models.CreateRiskAssessmentInput{SafetyFeeling: &f, EscalatingRisk: &e, CanBlockReport: &b, Frequency: &fr})

					want := models.RiskLow
					switch {
					case f <= 2 || e == "yes" || !b:
						want = models.RiskHigh
					case f == 3 || fr == "daily":
						want = models.RiskMedium
					}
					assert.Equal(t, want, got, "feeling=%d esc=%s block=%v freq=%s", f, e, b, fr)
				}
			}
		}
	}
}
