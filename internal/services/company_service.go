package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/BahathJob/Bahath-Jobs-sub000/internal/dtos"
	"github.com/BahathJob/Bahath-Jobs-sub000/internal/models"
)

type CompanyService struct {
	DB *gorm.DB
}

func NewCompanyService(db *gorm.DB) *CompanyService {
	return &CompanyService{DB: db}
}

// Create sets up the employer's company profile. One per account; new
// profiles wait for admin approval before their jobs can go public.
func (s *CompanyService) Create(employerID uint, req *dtos.CompanyRequest) (*models.Company, error) {
	company := models.Company{
		EmployerID:  employerID,
		Name:        req.Name,
		Logo:        req.Logo,
		Description: req.Description,
		Website:     req.Website,
		Location:    req.Location,
		Industry:    req.Industry,
		IsApproved:  false,
	}
	err := s.DB.Create(&company).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrCompanyExists
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (s *CompanyService) GetByEmployer(employerID uint) (*models.Company, error) {
	var company models.Company
	err := s.DB.Where("employer_id = ?", employerID).First(&company).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// Update rewrites the profile fields. Approval stays untouched; editing a
// profile does not re-queue it for moderation.
func (s *CompanyService) Update(employerID uint, req *dtos.CompanyRequest) (*models.Company, error) {
	company, err := s.GetByEmployer(employerID)
	if err != nil {
		return nil, err
	}

	company.Name = req.Name
	company.Logo = req.Logo
	company.Description = req.Description
	company.Website = req.Website
	company.Location = req.Location
	company.Industry = req.Industry

	if err := s.DB.Save(company).Error; err != nil {
		return nil, err
	}
	return company, nil
}

// ListAll is the moderation view over company profiles.
func (s *CompanyService) ListAll() ([]models.Company, error) {
	var companies []models.Company
	err := s.DB.Order("created_at DESC").Find(&companies).Error
	return companies, err
}

// SetApproval flips the moderation flag; company approval gates the public
// visibility of every job the company owns.
func (s *CompanyService) SetApproval(companyID uint, approved bool) (*models.Company, error) {
	var company models.Company
	err := s.DB.First(&company, companyID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(&company).Update("is_approved", approved).Error; err != nil {
		return nil, err
	}
	return &company, nil
}
