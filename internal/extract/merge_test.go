package extract

import (
	"reflect"
	"testing"
)

func TestMergePrecedence(t *testing.T) {
	tests := []struct {
		name   string
		site   Partial
		fields Partial
		ins    Insights
		url    string
		want   JobPosting
	}{
		{
			name:   "structural source wins over field extractor",
			site:   Partial{Company: Known("Acme")},
			fields: Partial{Company: Known("Acme Corp Inc")},
			want:   JobPosting{Company: "Acme"},
		},
		{
			name:   "unknown site field defers to field extractor",
			site:   Partial{},
			fields: Partial{Company: Known("Acme Corp Inc"), Position: Known("Backend Engineer")},
			want:   JobPosting{Company: "Acme Corp Inc", Position: "Backend Engineer"},
		},
		{
			name:   "known-empty site field blocks field extractor",
			site:   Partial{Location: Known("")},
			fields: Partial{Location: Known("Toronto, Canada")},
			want:   JobPosting{},
		},
		{
			name:   "insight deadline wins over field deadline",
			fields: Partial{Deadline: Known("2025-05-01")},
			ins:    Insights{Deadline: Known("2025-06-01")},
			want:   JobPosting{Deadline: "2025-06-01"},
		},
		{
			name:   "unknown insight deadline defers to field deadline",
			fields: Partial{Deadline: Known("2025-05-01")},
			want:   JobPosting{Deadline: "2025-05-01"},
		},
		{
			name: "insights are sole source for secondary fields",
			site: Partial{JobType: Known("should never surface"), Salary: Known("ditto")},
			ins:  Insights{Timeframe: Known("12 weeks"), JobType: Known("Internship")},
			want: JobPosting{Timeframe: "12 weeks", JobType: "Internship"},
		},
		{
			name: "job_url set for link requests",
			url:  "https://example.com/jobs/1",
			want: JobPosting{JobURL: "https://example.com/jobs/1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.site, tt.fields, tt.ins, tt.url)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Merge() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// Merge must be total: every input combination, including all-empty, yields
// the complete record shape with empty strings rather than omissions.
func TestMergeTotality(t *testing.T) {
	got := Merge(Partial{}, Partial{}, Insights{}, "")
	if got != (JobPosting{}) {
		t.Errorf("Merge(zero inputs) = %+v, want zero JobPosting", got)
	}
}
