package service

import (
	"time"

	"ai-solution-go/internal/model"
	"ai-solution-go/internal/repository"
	"ai-solution-go/pkg/log"
)

// EventUpdate 描述对促销活动的部分更新，nil 字段保持原值。
type EventUpdate struct {
	EventName        *string
	EventDescription *string
	EventStartDate   *time.Time
	EventEndDate     *time.Time
	Location         *string
	ImageURL         *string
	IsUpcoming       *bool
}

// EventService 接口定义了促销活动的业务操作。
type EventService interface {
	Create(event *model.PromotionalEvent) error
	List(isUpcoming *bool) ([]model.PromotionalEvent, error)
	GetByID(id uint) (*model.PromotionalEvent, error)
	Update(id uint, update EventUpdate) (*model.PromotionalEvent, error)
	Delete(id uint) error
}

type eventService struct {
	eventRepo repository.EventRepository
}

// NewEventService 创建一个新的 EventService 实例。
func NewEventService(eventRepo repository.EventRepository) EventService {
	return &eventService{eventRepo: eventRepo}
}

// Create 持久化一条新的促销活动，is_upcoming 缺省为 true。
func (s *eventService) Create(event *model.PromotionalEvent) error {
	return s.eventRepo.Create(event)
}

// List 返回促销活动列表，可按 is_upcoming 过滤。
// 每次列表查询前先重算 is_upcoming：开始时间已过的活动被置为 false。
func (s *eventService) List(isUpcoming *bool) ([]model.PromotionalEvent, error) {
	if err := s.eventRepo.RefreshUpcoming(time.Now().UTC()); err != nil {
		// 重算失败不阻断读取，仅记录
		log.Error("failed to refresh is_upcoming flags", err)
	}
	return s.eventRepo.FindAll(isUpcoming)
}

// GetByID 返回指定 ID 的促销活动。
func (s *eventService) GetByID(id uint) (*model.PromotionalEvent, error) {
	return s.eventRepo.FindByID(id)
}

// Update 将非 nil 字段覆盖到已有记录上，其余字段保持原值。
func (s *eventService) Update(id uint, update EventUpdate) (*model.PromotionalEvent, error) {
	event, err := s.eventRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if update.EventName != nil {
		event.EventName = *update.EventName
	}
	if update.EventDescription != nil {
		event.EventDescription = *update.EventDescription
	}
	if update.EventStartDate != nil {
		event.EventStartDate = update.EventStartDate
	}
	if update.EventEndDate != nil {
		event.EventEndDate = update.EventEndDate
	}
	if update.Location != nil {
		event.Location = *update.Location
	}
	if update.ImageURL != nil {
		event.ImageURL = *update.ImageURL
	}
	if update.IsUpcoming != nil {
		event.IsUpcoming = *update.IsUpcoming
	}

	if err := s.eventRepo.Update(event); err != nil {
		return nil, err
	}
	return event, nil
}

// Delete 删除指定 ID 的促销活动。
func (s *eventService) Delete(id uint) error {
	if _, err := s.eventRepo.FindByID(id); err != nil {
		return err
	}
	return s.eventRepo.Delete(id)
}
