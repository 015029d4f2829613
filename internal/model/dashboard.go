package model

// DashboardOverview 定义了仪表盘总览接口的返回结构。
type DashboardOverview struct {
	TotalUsers     int64 `json:"total_users"`
	TotalInquiries int64 `json:"total_inquiries"`
	TotalArticles  int64 `json:"total_articles"`
	UpcomingEvents int64 `json:"upcoming_events"`
}

// StatusCount 是按状态分组统计的 {status, count} 对。
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// TimelinePoint 是按提交日期（天粒度）聚合的咨询计数。
type TimelinePoint struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// EventMarker 是时间线图表上叠加显示的活动标记。
type EventMarker struct {
	Date      string `json:"date"`
	EventName string `json:"event_name"`
}

// InquiriesTimeline 组合了时间线数据与活动标记。
type InquiriesTimeline struct {
	Timeline []TimelinePoint `json:"timeline"`
	Events   []EventMarker   `json:"events"`
}
