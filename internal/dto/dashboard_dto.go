package dto

// TeacherDashboardResponse aggregates a teacher's content and attempt
// activity into the counters shown on the dashboard.
type TeacherDashboardResponse struct {
	Subjects        int64   `json:"subjects"`
	Chapters        int64   `json:"chapters"`
	Questions       int64   `json:"questions"`
	Tests           int64   `json:"tests"`
	AttemptsTaken   int64   `json:"attempts_taken"`
	GradedAttempts  int64   `json:"graded_attempts"`
	AverageScorePct float64 `json:"average_score_pct"`
}
