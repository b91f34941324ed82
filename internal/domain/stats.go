package domain

// CategoryCount is the number of tasks carrying one category value.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// WeekCount holds created/completed counts for one ISO week.
type WeekCount struct {
	Week      int `json:"week"`
	Created   int `json:"created"`
	Completed int `json:"completed"`
}

// TrendPoint is the number of tasks completed on one day ("YYYY-MM-DD").
type TrendPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Stats bundles the three productivity report sections. Slices are always
// non-nil so empty sections serialize as [].
type Stats struct {
	TasksByCategory   []CategoryCount `json:"tasksByCategory"`
	TasksByWeek       []WeekCount     `json:"tasksByWeek"`
	ProductivityTrend []TrendPoint    `json:"productivityTrend"`
}
