package repository

import (
	"ai-solution-go/internal/model"

	"gorm.io/gorm"
)

// FeedbackRepository 接口定义了客户反馈数据的持久化操作。
type FeedbackRepository interface {
	Create(feedback *model.CustomerFeedback) error
	FindAll() ([]model.CustomerFeedback, error)
	FindByID(id uint) (*model.CustomerFeedback, error)
	Update(feedback *model.CustomerFeedback) error
	Delete(id uint) error
	AverageRating(customerID uint) (float64, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository 创建一个新的 FeedbackRepository 实例。
func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

// Create 在数据库中创建一条新的客户反馈记录。
func (r *feedbackRepository) Create(feedback *model.CustomerFeedback) error {
	return r.db.Create(feedback).Error
}

// FindAll 检索所有客户反馈，按 ID 升序。
func (r *feedbackRepository) FindAll() ([]model.CustomerFeedback, error) {
	var feedbacks []model.CustomerFeedback
	err := r.db.Order("id ASC").Find(&feedbacks).Error
	return feedbacks, err
}

// FindByID 根据 ID 查找一条客户反馈记录。
func (r *feedbackRepository) FindByID(id uint) (*model.CustomerFeedback, error) {
	var feedback model.CustomerFeedback
	err := r.db.First(&feedback, id).Error
	if err != nil {
		return nil, err
	}
	return &feedback, nil
}

// Update 更新一条已存在的客户反馈记录。
func (r *feedbackRepository) Update(feedback *model.CustomerFeedback) error {
	return r.db.Save(feedback).Error
}

// Delete 根据 ID 删除一条客户反馈记录。
func (r *feedbackRepository) Delete(id uint) error {
	return r.db.Delete(&model.CustomerFeedback{}, id).Error
}

// AverageRating 计算评分的平均值，没有评分时返回 0。
// customerID 为 0 时统计全部客户的反馈。
func (r *feedbackRepository) AverageRating(customerID uint) (float64, error) {
	var avg *float64
	query := r.db.Model(&model.CustomerFeedback{}).
		Select("AVG(rating)").
		Where("rating IS NOT NULL")
	if customerID != 0 {
		query = query.Where("customer_id = ?", customerID)
	}
	err := query.Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}
