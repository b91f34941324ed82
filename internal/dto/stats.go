package dto

// CategoryCount is one slice of the category pie chart.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// WeekCount compares tasks created vs completed for one ISO week.
type WeekCount struct {
	Week      int `json:"week"`
	Created   int `json:"created"`
	Completed int `json:"completed"`
}

// TrendPoint is the number of tasks completed on one calendar day (YYYY-MM-DD).
type TrendPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// StatsResponse is the GET /stats payload. All three sections are present
// even when empty (empty array, never null).
type StatsResponse struct {
	TasksByCategory   []CategoryCount `json:"tasksByCategory"`
	TasksByWeek       []WeekCount     `json:"tasksByWeek"`
	ProductivityTrend []TrendPoint    `json:"productivityTrend"`
}
