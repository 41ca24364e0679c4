package models

// TaskStats ภาพรวมของ tasks ของ user หนึ่งคน
type TaskStats struct {
	TotalTasks      int64                  `json:"totalTasks"`
	CompletedTasks  int64                  `json:"completedTasks"`
	PendingTasks    int64                  `json:"pendingTasks"`
	CompletionRate  float64                `json:"completionRate"`
	TasksByCategory map[TaskCategory]int64 `json:"tasksByCategory"`
	TasksByPriority map[TaskPriority]int64 `json:"tasksByPriority"`
}

// CategoryCount is one row of a GROUP BY category aggregation.
type CategoryCount struct {
	Category TaskCategory
	Count    int64
}

// PriorityCount is one row of a GROUP BY priority aggregation.
type PriorityCount struct {
	Priority TaskPriority
	Count    int64
}

// PaginationInfo describes where a page sits in a result set.
type PaginationInfo struct {
	Page    int   `json:"page"`
	Limit   int   `json:"limit"`
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
	HasNext bool  `json:"hasNext"`
	HasPrev bool  `json:"hasPrev"`
}
