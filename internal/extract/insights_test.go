package extract

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// fakeInferencer returns a canned answer (or error) and records calls.
type fakeInferencer struct {
	answer string
	err    error
	calls  int
	prompt string
}

func (f *fakeInferencer) Infer(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.prompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

func TestExtractInsightsParsesAnswer(t *testing.T) {
	n := &Normalizer{Now: fixedNow}
	inf := &fakeInferencer{answer: strings.Join([]string{
		"Salary: $90,000 - $110,000",
		"Deadline: June 1 2025",
		"Timeframe: 12 weeks",
		"Start date: Not found",
		"Job type: Internship",
	}, "\n")}

	got := ExtractInsights(context.Background(), inf, "some description", n)

	if got.Salary.Value != "$90,000 - $110,000" {
		t.Errorf("salary = %q", got.Salary.Value)
	}
	if got.Deadline.Value != "2025-06-01" {
		t.Errorf("deadline = %q, want normalized ISO date", got.Deadline.Value)
	}
	if got.Timeframe.Value != "12 weeks" {
		t.Errorf("timeframe = %q", got.Timeframe.Value)
	}
	if got.StartDate.Known {
		t.Errorf("start_date should stay unknown for \"Not found\", got %q", got.StartDate.Value)
	}
	if got.JobType.Value != "Internship" {
		t.Errorf("job_type = %q", got.JobType.Value)
	}
}

func TestExtractInsightsAnswerVariants(t *testing.T) {
	n := &Normalizer{Now: fixedNow}

	tests := []struct {
		name   string
		answer string
		check  func(t *testing.T, ins Insights)
	}{
		{
			"bulleted lines accepted",
			"- Salary: €50k to €60k\n- Deadline: Not found\n- Timeframe: Not found\n- Start date: Not found\n- Job type: Full-time",
			func(t *testing.T, ins Insights) {
				if ins.Salary.Value != "€50k to €60k" {
					t.Errorf("salary = %q", ins.Salary.Value)
				}
				if ins.JobType.Value != "Full-time" {
					t.Errorf("job_type = %q", ins.JobType.Value)
				}
			},
		},
		{
			"not found is case-insensitive",
			"Salary: NOT FOUND\nDeadline: not found\nTimeframe: Not Found\nStart date: Not found\nJob type: Not found",
			func(t *testing.T, ins Insights) {
				if ins != (Insights{}) {
					t.Errorf("all fields should be unknown, got %+v", ins)
				}
			},
		},
		{
			"unknown keys ignored",
			"Salary: $120k\nConfidence: high\nJob type: Contract",
			func(t *testing.T, ins Insights) {
				if ins.Salary.Value != "$120k" || ins.JobType.Value != "Contract" {
					t.Errorf("got %+v", ins)
				}
			},
		},
		{
			"unparseable date kept verbatim",
			"Salary: Not found\nDeadline: rolling basis, no fixed date\nTimeframe: Not found\nStart date: Not found\nJob type: Not found",
			func(t *testing.T, ins Insights) {
				if ins.Deadline.Value != "rolling basis, no fixed date" {
					t.Errorf("deadline = %q", ins.Deadline.Value)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ins := ExtractInsights(context.Background(), &fakeInferencer{answer: tt.answer}, "desc", n)
			tt.check(t, ins)
		})
	}
}

// When the semantic call fails, salary is still recovered by regex and the
// other fields stay unknown: the inference layer is their only source.
func TestExtractInsightsFallbackOnError(t *testing.T) {
	n := &Normalizer{Now: fixedNow}
	desc := "Pay range for this role is $90,000 - $110,000 per year, apply by June."

	got := ExtractInsights(context.Background(), &fakeInferencer{err: errors.New("boom")}, desc, n)

	if got.Salary.Value != "$90,000 - $110,000" {
		t.Errorf("salary = %q, want regex-recovered range", got.Salary.Value)
	}
	for name, f := range map[string]Field{
		"deadline": got.Deadline, "timeframe": got.Timeframe,
		"start_date": got.StartDate, "job_type": got.JobType,
	} {
		if f.Known {
			t.Errorf("%s should stay unknown in fallback, got %q", name, f.Value)
		}
	}
}

func TestExtractInsightsFallbackOnUnusableAnswer(t *testing.T) {
	n := &Normalizer{Now: fixedNow}
	inf := &fakeInferencer{answer: "I cannot help with that."}

	got := ExtractInsights(context.Background(), inf, "salary is £40k here", n)
	if got.Salary.Value != "£40k" {
		t.Errorf("salary = %q, want regex fallback to fire", got.Salary.Value)
	}
}

func TestExtractInsightsEmptyDescription(t *testing.T) {
	inf := &fakeInferencer{answer: "Salary: $1"}
	got := ExtractInsights(context.Background(), inf, "   ", &Normalizer{Now: fixedNow})
	if got != (Insights{}) {
		t.Errorf("got %+v, want zero insights", got)
	}
	if inf.calls != 0 {
		t.Errorf("inferencer called %d times for empty description", inf.calls)
	}
}

func TestSalaryPattern(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"dollar range", "base pay $90,000 - $110,000 annually", "$90,000 - $110,000"},
		{"euro k range with to", "we offer €50k to €60k", "€50k to €60k"},
		{"single amount", "up to £45,500 depending on experience", "£45,500"},
		{"en dash range", "$80k–$120k", "$80k–$120k"},
		{"currency suffix", "around 60000€ total", "60000€"},
		{"no currency no match", "competitive salary offered", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := salaryPattern.FindString(tt.input); got != tt.want {
				t.Errorf("FindString(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
