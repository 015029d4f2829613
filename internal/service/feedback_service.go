package service

import (
	"errors"

	"ai-solution-go/internal/model"
	"ai-solution-go/internal/repository"
)

// ErrInvalidRating 表示评分不在 [1,5] 范围内。
var ErrInvalidRating = errors.New("Rating must be between 1 and 5")

// FeedbackUpdate 描述对客户反馈的部分更新，nil 字段保持原值。
type FeedbackUpdate struct {
	FeedbackText *string
	Rating       *int
}

// FeedbackService 接口定义了客户反馈的业务操作。
type FeedbackService interface {
	Create(feedback *model.CustomerFeedback) error
	List() ([]model.CustomerFeedback, error)
	GetByID(id uint) (*model.CustomerFeedback, error)
	Update(id uint, update FeedbackUpdate) (*model.CustomerFeedback, error)
	Delete(id uint) error
	AverageRating(customerID uint) (float64, error)
}

type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
}

// NewFeedbackService 创建一个新的 FeedbackService 实例。
func NewFeedbackService(feedbackRepo repository.FeedbackRepository) FeedbackService {
	return &feedbackService{feedbackRepo: feedbackRepo}
}

// Create 持久化一条新的客户反馈，评分存在时必须落在 [1,5]。
func (s *feedbackService) Create(feedback *model.CustomerFeedback) error {
	if feedback.Rating != nil && (*feedback.Rating < 1 || *feedback.Rating > 5) {
		return ErrInvalidRating
	}
	return s.feedbackRepo.Create(feedback)
}

// List 返回所有客户反馈。
func (s *feedbackService) List() ([]model.CustomerFeedback, error) {
	return s.feedbackRepo.FindAll()
}

// GetByID 返回指定 ID 的客户反馈。
func (s *feedbackService) GetByID(id uint) (*model.CustomerFeedback, error) {
	return s.feedbackRepo.FindByID(id)
}

// Update 将非 nil 字段覆盖到已有记录上，其余字段保持原值。
func (s *feedbackService) Update(id uint, update FeedbackUpdate) (*model.CustomerFeedback, error) {
	feedback, err := s.feedbackRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if update.FeedbackText != nil {
		feedback.FeedbackText = *update.FeedbackText
	}
	if update.Rating != nil {
		if *update.Rating < 1 || *update.Rating > 5 {
			return nil, ErrInvalidRating
		}
		feedback.Rating = update.Rating
	}

	if err := s.feedbackRepo.Update(feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}

// Delete 删除指定 ID 的客户反馈。
func (s *feedbackService) Delete(id uint) error {
	if _, err := s.feedbackRepo.FindByID(id); err != nil {
		return err
	}
	return s.feedbackRepo.Delete(id)
}

// AverageRating 返回某位客户的平均评分，没有评分时为 0。
func (s *feedbackService) AverageRating(customerID uint) (float64, error) {
	return s.feedbackRepo.AverageRating(customerID)
}
