package service

import (
	"ai-solution-go/internal/model"
	"ai-solution-go/internal/repository"
)

// SolutionUpdate 描述对解决方案的部分更新，nil 字段保持原值。
type SolutionUpdate struct {
	Title       *string
	Description *string
	Industry    *string
	KeyFeatures *string
	ImageURL    *string
}

// SolutionService 接口定义了解决方案的业务操作。
type SolutionService interface {
	Create(solution *model.Solution) error
	List(industry string) ([]model.Solution, error)
	GetByID(id uint) (*model.Solution, error)
	Update(id uint, update SolutionUpdate) (*model.Solution, error)
	Delete(id uint) error
}

type solutionService struct {
	solutionRepo repository.SolutionRepository
}

// NewSolutionService 创建一个新的 SolutionService 实例。
func NewSolutionService(solutionRepo repository.SolutionRepository) SolutionService {
	return &solutionService{solutionRepo: solutionRepo}
}

// Create 持久化一条新的解决方案。
func (s *solutionService) Create(solution *model.Solution) error {
	return s.solutionRepo.Create(solution)
}

// List 返回解决方案列表，可按行业过滤。
func (s *solutionService) List(industry string) ([]model.Solution, error) {
	return s.solutionRepo.FindAll(industry)
}

// GetByID 返回指定 ID 的解决方案。
func (s *solutionService) GetByID(id uint) (*model.Solution, error) {
	return s.solutionRepo.FindByID(id)
}

// Update 将非 nil 字段覆盖到已有记录上，其余字段保持原值。
func (s *solutionService) Update(id uint, update SolutionUpdate) (*model.Solution, error) {
	solution, err := s.solutionRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		solution.Title = *update.Title
	}
	if update.Description != nil {
		solution.Description = *update.Description
	}
	if update.Industry != nil {
		solution.Industry = *update.Industry
	}
	if update.KeyFeatures != nil {
		solution.KeyFeatures = *update.KeyFeatures
	}
	if update.ImageURL != nil {
		solution.ImageURL = *update.ImageURL
	}

	if err := s.solutionRepo.Update(solution); err != nil {
		return nil, err
	}
	return solution, nil
}

// Delete 删除指定 ID 的解决方案。
func (s *solutionService) Delete(id uint) error {
	if _, err := s.solutionRepo.FindByID(id); err != nil {
		return err
	}
	return s.solutionRepo.Delete(id)
}
