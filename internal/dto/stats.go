package dto

// CategoryStat aggregates one category's items and logs
type CategoryStat struct {
	Items     int `json:"items"`
	Logs      int `json:"logs"`
	TotalTime int `json:"totalTime"`
}

// StatsResponse is the aggregate statistics payload
type StatsResponse struct {
	TotalItems    int                     `json:"totalItems"`
	TotalLogs     int                     `json:"totalLogs"`
	TotalTime     int                     `json:"totalTime"`
	TotalHours    float64                 `json:"totalHours"`
	CategoryStats map[string]CategoryStat `json:"categoryStats"`
	StudyStreak   int                     `json:"studyStreak"`
}
