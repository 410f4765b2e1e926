package sm2

// ReviewLog records a single review event: the grade given and the item
// state it produced. Logs carry no timestamps or item identity; callers
// attach those when persisting history.
type ReviewLog struct {
	Quality     Quality `json:"quality"`
	Easiness    float64 `json:"easiness"`
	Repetitions int     `json:"repetitions"`
	Interval    int     `json:"interval"`
}
