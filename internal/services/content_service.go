package services

import (
	"fmt"

	"gorm.io/gorm"

	"stonevault-backend/internal/dto"
	"stonevault-backend/internal/models"
)

type ContentService struct {
	db *gorm.DB
}

func NewContentService(db *gorm.DB) *ContentService {
	return &ContentService{db: db}
}

func (s *ContentService) FAQs() ([]models.FAQ, error) {
	var faqs []models.FAQ
	if err := s.db.Order("sort_order ASC").Find(&faqs).Error; err != nil {
		return nil, fmt.Errorf("failed to list faqs: %w", err)
	}
	return faqs, nil
}

func (s *ContentService) ContentBlocks() ([]models.ContentBlock, error) {
	var blocks []models.ContentBlock
	if err := s.db.Find(&blocks).Error; err != nil {
		return nil, fmt.Errorf("failed to list content blocks: %w", err)
	}
	return blocks, nil
}

// SaveContactMessage persists a contact form submission. There is no
// notification side effect.
func (s *ContentService) SaveContactMessage(req *dto.ContactRequest) (*models.ContactMessage, error) {
	msg := models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
	if err := s.db.Create(&msg).Error; err != nil {
		return nil, fmt.Errorf("failed to save contact message: %w", err)
	}
	return &msg, nil
}
