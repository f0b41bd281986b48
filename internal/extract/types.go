package extract

// Field is an optional string that distinguishes "unknown" (the layer had no
// opinion, defer to the next source) from "known empty" (the layer decided the
// value is absent, do not let a weaker source fill it in).
type Field struct {
	Value string
	Known bool
}

// Known returns a populated (or deliberately empty) field.
func Known(v string) Field { return Field{Value: v, Known: true} }

// Unknown is the zero Field, spelled out for readability at call sites.
func Unknown() Field { return Field{} }

// Partial is one extraction layer's view of a posting. Every field may be
// unknown; the merge engine resolves the layers into a final JobPosting.
type Partial struct {
	Company   Field
	Position  Field
	Location  Field
	JobType   Field
	Deadline  Field
	Salary    Field
	Timeframe Field
	StartDate Field
}

// Insights are the secondary fields inferred from free-text description
// content rather than page structure or labelled lines.
type Insights struct {
	Salary    Field
	Deadline  Field
	Timeframe Field
	StartDate Field
	JobType   Field
}

// JobPosting is the finished record handed back to the caller. All fields are
// plain strings; absent values are empty strings, never null. JobURL is only
// set for link-based extraction.
type JobPosting struct {
	Company   string `json:"company"`
	Position  string `json:"position"`
	Location  string `json:"location"`
	JobType   string `json:"job_type"`
	Deadline  string `json:"deadline"`
	Salary    string `json:"salary"`
	Timeframe string `json:"timeframe"`
	StartDate string `json:"start_date"`
	JobURL    string `json:"job_url,omitempty"`
}
