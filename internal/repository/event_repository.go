package repository

import (
	"time"

	"ai-solution-go/internal/model"

	"gorm.io/gorm"
)

// EventRepository 接口定义了促销活动数据的持久化操作。
type EventRepository interface {
	Create(event *model.PromotionalEvent) error
	FindAll(isUpcoming *bool) ([]model.PromotionalEvent, error)
	FindByID(id uint) (*model.PromotionalEvent, error)
	Update(event *model.PromotionalEvent) error
	Delete(id uint) error
	RefreshUpcoming(now time.Time) error
	CountUpcoming() (int64, error)
	FindWithStartDate() ([]model.PromotionalEvent, error)
	FindUpcoming(now time.Time, limit int) ([]model.PromotionalEvent, error)
}

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository 创建一个新的 EventRepository 实例。
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

// Create 在数据库中创建一条新的促销活动记录。
func (r *eventRepository) Create(event *model.PromotionalEvent) error {
	return r.db.Create(event).Error
}

// FindAll 检索所有促销活动，可按 is_upcoming 过滤，按 ID 升序。
func (r *eventRepository) FindAll(isUpcoming *bool) ([]model.PromotionalEvent, error) {
	var events []model.PromotionalEvent
	query := r.db.Order("id ASC")
	if isUpcoming != nil {
		query = query.Where("is_upcoming = ?", *isUpcoming)
	}
	err := query.Find(&events).Error
	return events, err
}

// FindByID 根据 ID 查找一条促销活动记录。
func (r *eventRepository) FindByID(id uint) (*model.PromotionalEvent, error) {
	var event model.PromotionalEvent
	err := r.db.First(&event, id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// Update 更新一条已存在的促销活动记录。
func (r *eventRepository) Update(event *model.PromotionalEvent) error {
	return r.db.Save(event).Error
}

// Delete 根据 ID 删除一条促销活动记录。
func (r *eventRepository) Delete(id uint) error {
	return r.db.Delete(&model.PromotionalEvent{}, id).Error
}

// RefreshUpcoming 将开始时间早于 now 的活动的 is_upcoming 置为 false。
// 单条幂等 UPDATE，可以安全地在每次列表查询前执行。
func (r *eventRepository) RefreshUpcoming(now time.Time) error {
	return r.db.Model(&model.PromotionalEvent{}).
		Where("event_start_date < ? AND is_upcoming = ?", now, true).
		Update("is_upcoming", false).Error
}

// CountUpcoming 统计 is_upcoming 为 true 的活动数量。
func (r *eventRepository) CountUpcoming() (int64, error) {
	var total int64
	err := r.db.Model(&model.PromotionalEvent{}).
		Where("is_upcoming = ?", true).
		Count(&total).Error
	return total, err
}

// FindWithStartDate 检索所有设置了开始时间的活动，供时间线图表叠加。
func (r *eventRepository) FindWithStartDate() ([]model.PromotionalEvent, error) {
	var events []model.PromotionalEvent
	err := r.db.Where("event_start_date IS NOT NULL").Order("id ASC").Find(&events).Error
	return events, err
}

// FindUpcoming 检索开始时间不早于 now 且仍标记为 upcoming 的活动，
// 按开始时间升序，最多 limit 条，供聊天机器人装配上下文。
func (r *eventRepository) FindUpcoming(now time.Time, limit int) ([]model.PromotionalEvent, error) {
	var events []model.PromotionalEvent
	err := r.db.Where("event_start_date >= ? AND is_upcoming = ?", now, true).
		Order("event_start_date ASC").
		Limit(limit).
		Find(&events).Error
	return events, err
}
