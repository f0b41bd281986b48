package extract

// resolve walks sources in precedence order and returns the first one that
// has an opinion. A known empty value stops the walk: a layer that decided
// the field is absent must not be overridden by a weaker source.
func resolve(sources ...Field) string {
	for _, f := range sources {
		if f.Known {
			return f.Value
		}
	}
	return ""
}

// Merge reconciles the three extraction layers into the final record.
// Structural site values win for the primary fields, free-text inference is
// the sole source for the secondary ones, and the deadline prefers inference
// over the label/regex layer. Merge is pure and total: every input
// combination, including all-empty, yields a complete JobPosting.
func Merge(site, fields Partial, ins Insights, jobURL string) JobPosting {
	return JobPosting{
		Company:   resolve(site.Company, fields.Company),
		Position:  resolve(site.Position, fields.Position),
		Location:  resolve(site.Location, fields.Location),
		JobType:   resolve(ins.JobType),
		Deadline:  resolve(ins.Deadline, fields.Deadline),
		Salary:    resolve(ins.Salary),
		Timeframe: resolve(ins.Timeframe),
		StartDate: resolve(ins.StartDate),
		JobURL:    jobURL,
	}
}
