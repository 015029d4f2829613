package repository

import (
	"ai-solution-go/internal/model"

	"gorm.io/gorm"
)

// ContactRepository 接口定义了联系咨询数据的持久化操作。
type ContactRepository interface {
	Create(contact *model.ContactInquiry) error
	FindAll(status string) ([]model.ContactInquiry, error)
	FindByID(id uint) (*model.ContactInquiry, error)
	Update(contact *model.ContactInquiry) error
	Delete(id uint) error
	Count() (int64, error)
	CountByStatus() ([]model.StatusCount, error)
	FindAllSubmissionDates() ([]model.ContactInquiry, error)
}

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository 创建一个新的 ContactRepository 实例。
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

// Create 在数据库中创建一条新的联系咨询记录。
func (r *contactRepository) Create(contact *model.ContactInquiry) error {
	return r.db.Create(contact).Error
}

// FindAll 检索所有联系咨询，可按 status 做单一等值过滤，按 ID 升序。
func (r *contactRepository) FindAll(status string) ([]model.ContactInquiry, error) {
	var contacts []model.ContactInquiry
	query := r.db.Order("id ASC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Find(&contacts).Error
	return contacts, err
}

// FindByID 根据 ID 查找一条联系咨询记录。
func (r *contactRepository) FindByID(id uint) (*model.ContactInquiry, error) {
	var contact model.ContactInquiry
	err := r.db.First(&contact, id).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// Update 更新一条已存在的联系咨询记录。
func (r *contactRepository) Update(contact *model.ContactInquiry) error {
	return r.db.Save(contact).Error
}

// Delete 根据 ID 删除一条联系咨询记录。
func (r *contactRepository) Delete(id uint) error {
	return r.db.Delete(&model.ContactInquiry{}, id).Error
}

// Count 返回联系咨询总数。
func (r *contactRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&model.ContactInquiry{}).Count(&total).Error
	return total, err
}

// CountByStatus 按状态分组统计咨询数量。
func (r *contactRepository) CountByStatus() ([]model.StatusCount, error) {
	var result []model.StatusCount
	err := r.db.Model(&model.ContactInquiry{}).
		Select("status, COUNT(id) AS count").
		Group("status").
		Scan(&result).Error
	return result, err
}

// FindAllSubmissionDates 只取提交时间列，供时间线在内存中按日期聚合。
func (r *contactRepository) FindAllSubmissionDates() ([]model.ContactInquiry, error) {
	var contacts []model.ContactInquiry
	err := r.db.Select("id", "submission_date").Find(&contacts).Error
	return contacts, err
}
