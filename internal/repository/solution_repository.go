package repository

import (
	"ai-solution-go/internal/model"

	"gorm.io/gorm"
)

// SolutionRepository 接口定义了解决方案数据的持久化操作。
type SolutionRepository interface {
	Create(solution *model.Solution) error
	FindAll(industry string) ([]model.Solution, error)
	FindByID(id uint) (*model.Solution, error)
	Update(solution *model.Solution) error
	Delete(id uint) error
}

type solutionRepository struct {
	db *gorm.DB
}

// NewSolutionRepository 创建一个新的 SolutionRepository 实例。
func NewSolutionRepository(db *gorm.DB) SolutionRepository {
	return &solutionRepository{db: db}
}

// Create 在数据库中创建一条新的解决方案记录。
func (r *solutionRepository) Create(solution *model.Solution) error {
	return r.db.Create(solution).Error
}

// FindAll 检索所有解决方案，可按 industry 做单一等值过滤，按 ID 升序。
func (r *solutionRepository) FindAll(industry string) ([]model.Solution, error) {
	var solutions []model.Solution
	query := r.db.Order("id ASC")
	if industry != "" {
		query = query.Where("industry = ?", industry)
	}
	err := query.Find(&solutions).Error
	return solutions, err
}

// FindByID 根据 ID 查找一条解决方案记录。
func (r *solutionRepository) FindByID(id uint) (*model.Solution, error) {
	var solution model.Solution
	err := r.db.First(&solution, id).Error
	if err != nil {
		return nil, err
	}
	return &solution, nil
}

// Update 更新一条已存在的解决方案记录。
func (r *solutionRepository) Update(solution *model.Solution) error {
	return r.db.Save(solution).Error
}

// Delete 根据 ID 删除一条解决方案记录。
func (r *solutionRepository) Delete(id uint) error {
	return r.db.Delete(&model.Solution{}, id).Error
}
