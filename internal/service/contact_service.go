package service

import (
	"ai-solution-go/internal/model"
	"ai-solution-go/internal/repository"
)

// ContactUpdate 描述对联系咨询的部分更新，nil 字段保持原值。
type ContactUpdate struct {
	FullName          *string
	Email             *string
	PhoneNumber       *string
	CompanyName       *string
	Country           *string
	JobTitle          *string
	JobDetails        *string
	CompanyLocation   *string
	InterestedProduct *string
	CurrentSolution   *string
	InquiryReason     *string
	Status            *string
}

// ContactService 接口定义了联系咨询的业务操作。
type ContactService interface {
	Create(contact *model.ContactInquiry) error
	List(status string) ([]model.ContactInquiry, error)
	GetByID(id uint) (*model.ContactInquiry, error)
	Update(id uint, update ContactUpdate) (*model.ContactInquiry, error)
	Delete(id uint) error
}

type contactService struct {
	contactRepo repository.ContactRepository
}

// NewContactService 创建一个新的 ContactService 实例。
func NewContactService(contactRepo repository.ContactRepository) ContactService {
	return &contactService{contactRepo: contactRepo}
}

// Create 持久化一条新的联系咨询，状态缺省为 Pending。
func (s *contactService) Create(contact *model.ContactInquiry) error {
	if contact.Status == "" {
		contact.Status = model.ContactStatusPending
	}
	return s.contactRepo.Create(contact)
}

// List 返回联系咨询列表，可按状态过滤。
func (s *contactService) List(status string) ([]model.ContactInquiry, error) {
	return s.contactRepo.FindAll(status)
}

// GetByID 返回指定 ID 的联系咨询。
func (s *contactService) GetByID(id uint) (*model.ContactInquiry, error) {
	return s.contactRepo.FindByID(id)
}

// Update 将非 nil 字段覆盖到已有记录上，其余字段保持原值。
func (s *contactService) Update(id uint, update ContactUpdate) (*model.ContactInquiry, error) {
	contact, err := s.contactRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if update.FullName != nil {
		contact.FullName = *update.FullName
	}
	if update.Email != nil {
		contact.Email = *update.Email
	}
	if update.PhoneNumber != nil {
		contact.PhoneNumber = *update.PhoneNumber
	}
	if update.CompanyName != nil {
		contact.CompanyName = *update.CompanyName
	}
	if update.Country != nil {
		contact.Country = *update.Country
	}
	if update.JobTitle != nil {
		contact.JobTitle = *update.JobTitle
	}
	if update.JobDetails != nil {
		contact.JobDetails = *update.JobDetails
	}
	if update.CompanyLocation != nil {
		contact.CompanyLocation = *update.CompanyLocation
	}
	if update.InterestedProduct != nil {
		contact.InterestedProduct = *update.InterestedProduct
	}
	if update.CurrentSolution != nil {
		contact.CurrentSolution = *update.CurrentSolution
	}
	if update.InquiryReason != nil {
		contact.InquiryReason = *update.InquiryReason
	}
	if update.Status != nil {
		contact.Status = *update.Status
	}

	if err := s.contactRepo.Update(contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// Delete 删除指定 ID 的联系咨询。
func (s *contactService) Delete(id uint) error {
	if _, err := s.contactRepo.FindByID(id); err != nil {
		return err
	}
	return s.contactRepo.Delete(id)
}
