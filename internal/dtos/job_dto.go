package dtos

type ParseTextRequest struct {
	Text string `json:"text" binding:"required"`
}

type ParseLinkRequest struct {
	URL string `json:"url" binding:"required,url"`
}

// SubmitRequest carries a finished (possibly user-edited) posting back for
// persistence. Everything is optional; the service fills sane defaults.
type SubmitRequest struct {
	Company         string `json:"company"`
	Position        string `json:"position"`
	Location        string `json:"location"`
	JobType         string `json:"job_type"`
	ApplicationDate string `json:"application_date"`
	Deadline        string `json:"deadline"`
	Status          string `json:"status"` // defaults to "Applied" if empty
	JobURL          string `json:"job_url"`
	Notes           string `json:"notes"`
}
