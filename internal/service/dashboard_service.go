package service

import (
	"sort"

	"ai-solution-go/internal/model"
	"ai-solution-go/internal/repository"
)

// DashboardService 接口定义了只读的跨表聚合统计操作。
type DashboardService interface {
	GetOverview() (*model.DashboardOverview, error)
	GetInquiriesByStatus() ([]model.StatusCount, error)
	GetInquiriesTimeline() (*model.InquiriesTimeline, error)
}

type dashboardService struct {
	userRepo    repository.UserRepository
	contactRepo repository.ContactRepository
	articleRepo repository.ArticleRepository
	eventRepo   repository.EventRepository
}

// NewDashboardService 创建一个新的 DashboardService 实例。
func NewDashboardService(
	userRepo repository.UserRepository,
	contactRepo repository.ContactRepository,
	articleRepo repository.ArticleRepository,
	eventRepo repository.EventRepository,
) DashboardService {
	return &dashboardService{
		userRepo:    userRepo,
		contactRepo: contactRepo,
		articleRepo: articleRepo,
		eventRepo:   eventRepo,
	}
}

// GetOverview 返回各表的总量统计，无副作用。
func (s *dashboardService) GetOverview() (*model.DashboardOverview, error) {
	totalUsers, err := s.userRepo.Count()
	if err != nil {
		return nil, err
	}
	totalInquiries, err := s.contactRepo.Count()
	if err != nil {
		return nil, err
	}
	totalArticles, err := s.articleRepo.Count()
	if err != nil {
		return nil, err
	}
	upcomingEvents, err := s.eventRepo.CountUpcoming()
	if err != nil {
		return nil, err
	}

	return &model.DashboardOverview{
		TotalUsers:     totalUsers,
		TotalInquiries: totalInquiries,
		TotalArticles:  totalArticles,
		UpcomingEvents: upcomingEvents,
	}, nil
}

// GetInquiriesByStatus 返回按状态分组的咨询计数。
func (s *dashboardService) GetInquiriesByStatus() ([]model.StatusCount, error) {
	counts, err := s.contactRepo.CountByStatus()
	if err != nil {
		return nil, err
	}
	if counts == nil {
		counts = []model.StatusCount{}
	}
	return counts, nil
}

// GetInquiriesTimeline 按提交日期（天粒度）聚合咨询计数，按时间排序，
// 并附带所有设置了开始时间的活动作为图表叠加标记。
func (s *dashboardService) GetInquiriesTimeline() (*model.InquiriesTimeline, error) {
	contacts, err := s.contactRepo.FindAllSubmissionDates()
	if err != nil {
		return nil, err
	}

	// 在内存中按日期字符串聚合，避免方言相关的日期函数
	byDate := make(map[string]int64)
	for _, c := range contacts {
		day := c.SubmissionDate.Format("2006-01-02")
		byDate[day]++
	}

	timeline := make([]model.TimelinePoint, 0, len(byDate))
	for day, count := range byDate {
		timeline = append(timeline, model.TimelinePoint{Date: day, Count: count})
	}
	sort.Slice(timeline, func(i, j int) bool {
		return timeline[i].Date < timeline[j].Date
	})

	events, err := s.eventRepo.FindWithStartDate()
	if err != nil {
		return nil, err
	}
	markers := make([]model.EventMarker, 0, len(events))
	for _, e := range events {
		markers = append(markers, model.EventMarker{
			Date:      e.EventStartDate.Format("2006-01-02"),
			EventName: e.EventName,
		})
	}

	return &model.InquiriesTimeline{
		Timeline: timeline,
		Events:   markers,
	}, nil
}
