package extract

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
)

// Inferencer answers a free-text instruction about a block of text. It is the
// pluggable semantic inference capability; production uses the Gemini-backed
// LLM service and tests inject a fixed-response fake.
type Inferencer interface {
	Infer(ctx context.Context, prompt string) (string, error)
}

// Very large descriptions blow the context window without adding signal.
const maxDescriptionChars = 20000

const insightPrompt = `You are reading the description text of a job posting.
Extract the following fields from the text.

Answer with exactly five lines, one field per line, in the form "Key: value":

Salary: <the salary or pay range as written in the text>
Deadline: <the application deadline, formatted YYYY-MM-DD if possible>
Timeframe: <the duration of the role, e.g. "12 weeks">
Start date: <the start date, formatted YYYY-MM-DD if possible>
Job type: <internship, full-time, part-time, contract, ...>

If a field cannot be determined from the text, write the literal words "Not found"
as its value. Do not guess, and do not add commentary or any other lines.

Description:
%s`

// salaryPattern recovers currency-prefixed or currency-suffixed amounts and
// ranges: "$90,000 - $110,000", "€50k to €60k", "45k£".
var salaryPattern = regexp.MustCompile(
	`(?i)(?:[$€£]\s*\d[\d,]*(?:\.\d+)?\s*k?|\d[\d,]*(?:\.\d+)?\s*k?\s*[$€£])` +
		`(?:\s*(?:-|–|to)\s*(?:[$€£]\s*)?\d[\d,]*(?:\.\d+)?\s*k?\s*[$€£]?)?`)

// ExtractInsights derives the secondary fields (salary, deadline, timeframe,
// start date, job type) from description text. The semantic inference call is
// the primary source; when it errors or produces nothing parseable, a regex
// sweep recovers the salary and everything else stays unknown. It never
// returns an error: degradation is a data condition here, not a failure.
func ExtractInsights(ctx context.Context, inf Inferencer, description string, dates *Normalizer) Insights {
	description = strings.TrimSpace(description)
	if description == "" {
		return Insights{}
	}
	if inf == nil {
		return fallbackInsights(description)
	}

	trimmed := description
	if len(trimmed) > maxDescriptionChars {
		trimmed = trimmed[:maxDescriptionChars]
	}

	answer, err := inf.Infer(ctx, fmt.Sprintf(insightPrompt, trimmed))
	if err != nil {
		log.Printf("[insights] inference failed, falling back to regex: %v", err)
		return fallbackInsights(description)
	}

	ins, parsed := parseInsightAnswer(answer, dates)
	if !parsed {
		log.Printf("[insights] inference answer had no usable lines, falling back to regex")
		return fallbackInsights(description)
	}
	return ins
}

// parseInsightAnswer reads line-oriented "Key: value" output. The second
// return reports whether any recognizable line was present at all; an answer
// of five explicit "Not found" lines still counts as parsed.
func parseInsightAnswer(answer string, dates *Normalizer) (Insights, bool) {
	var ins Insights
	parsed := false

	for _, line := range strings.Split(answer, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "-*• \t"))
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		key = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), " ", "_")
		value = strings.TrimSpace(value)

		var target *Field
		dateLike := false
		switch key {
		case "salary":
			target = &ins.Salary
		case "deadline":
			target = &ins.Deadline
			dateLike = true
		case "timeframe":
			target = &ins.Timeframe
		case "start_date":
			target = &ins.StartDate
			dateLike = true
		case "job_type":
			target = &ins.JobType
		default:
			continue
		}

		parsed = true
		if value == "" || strings.EqualFold(value, "not found") {
			continue // stays unknown
		}
		if dateLike {
			value = dates.Normalize(value)
		}
		*target = Known(value)
	}
	return ins, parsed
}

func fallbackInsights(description string) Insights {
	if s := strings.TrimSpace(salaryPattern.FindString(description)); s != "" {
		return Insights{Salary: Known(s)}
	}
	return Insights{}
}
