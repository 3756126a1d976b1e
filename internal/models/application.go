package models

// ApplicationStatus mirrors the platform's application life cycle.
type ApplicationStatus string

const (
	ApplicationPending      ApplicationStatus = "pending"
	ApplicationInterviewing ApplicationStatus = "interviewing"
	ApplicationCompleted    ApplicationStatus = "completed"
	ApplicationRejected     ApplicationStatus = "rejected"
)

// Application is one row of the candidate's application list. It is the
// only place the client discovers interview ids from.
type Application struct {
	ApplicationID   int               `json:"application_id"`
	JobID           int               `json:"job_id"`
	JobTitle        string            `json:"job_title"`
	JobDescription  string            `json:"job_description"`
	Status          ApplicationStatus `json:"status"`
	AppliedAt       string            `json:"applied_at"`
	HasInterview    bool              `json:"has_interview"`
	InterviewID     *int              `json:"interview_id"`
	InterviewStatus *InterviewStatus  `json:"interview_status"`
}

// CandidateStats backs the candidate dashboard tiles.
type CandidateStats struct {
	TotalApplications int `json:"total_applications"`
	Pending           int `json:"pending"`
	Interviewing      int `json:"interviewing"`
	Completed         int `json:"completed"`
}
