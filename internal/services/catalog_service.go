package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"stonevault-backend/internal/dto"
	"stonevault-backend/internal/models"
)

var (
	ErrStoneNotFound    = errors.New("stone not found")
	ErrSlugTaken        = errors.New("slug already exists")
	ErrInvalidStoneType = errors.New("invalid stone type")
)

const (
	defaultPageSize  = 12
	featuredPageSize = 8
)

type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// List returns stones matching every supplied filter, newest first.
// Absent filters apply no predicate.
func (s *CatalogService) List(f dto.StoneFilters) ([]models.Stone, error) {
	q := s.db.Model(&models.Stone{})

	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.Color != "" {
		q = q.Where("color = ?", f.Color)
	}
	if f.PriceMin != nil {
		q = q.Where("price >= ?", *f.PriceMin)
	}
	if f.PriceMax != nil {
		q = q.Where("price <= ?", *f.PriceMax)
	}
	if f.Search != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(f.Search)+"%")
	}

	limit := f.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	var stones []models.Stone
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&stones).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list stones: %w", err)
	}
	return stones, nil
}

// Featured returns up to 8 featured stones, most recent first.
func (s *CatalogService) Featured() ([]models.Stone, error) {
	var stones []models.Stone
	err := s.db.Where("is_featured = ?", true).
		Order("created_at DESC").
		Limit(featuredPageSize).
		Find(&stones).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list featured stones: %w", err)
	}
	return stones, nil
}

func (s *CatalogService) ByID(id uint) (*models.Stone, error) {
	var stone models.Stone
	if err := s.db.First(&stone, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoneNotFound
		}
		return nil, fmt.Errorf("failed to fetch stone: %w", err)
	}
	return &stone, nil
}

func (s *CatalogService) BySlug(slug string) (*models.Stone, error) {
	var stone models.Stone
	if err := s.db.First(&stone, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoneNotFound
		}
		return nil, fmt.Errorf("failed to fetch stone: %w", err)
	}
	return &stone, nil
}

// Create inserts a new catalog stone (admin only).
func (s *CatalogService) Create(input *dto.StoneInput) (*models.Stone, error) {
	if !models.ValidStoneType(input.Type) {
		return nil, ErrInvalidStoneType
	}

	var existing models.Stone
	if err := s.db.Where("slug = ?", input.Slug).First(&existing).Error; err == nil {
		return nil, ErrSlugTaken
	}

	stone := models.Stone{
		Name:        input.Name,
		Slug:        input.Slug,
		Type:        input.Type,
		Color:       input.Color,
		Weight:      input.Weight,
		Origin:      input.Origin,
		ShortInfo:   input.ShortInfo,
		Description: input.Description,
		Price:       input.Price,
		Currency:    currencyOrDefault(input.Currency),
		Stock:       input.Stock,
		Images:      input.Images,
		IsFeatured:  input.IsFeatured,
	}
	if err := s.db.Create(&stone).Error; err != nil {
		return nil, fmt.Errorf("failed to create stone: %w", err)
	}
	return &stone, nil
}

// Update overwrites a stone's catalog data (admin only). The image list
// is replaced wholesale with the merged list the handler assembled.
func (s *CatalogService) Update(id uint, input *dto.StoneInput) (*models.Stone, error) {
	if !models.ValidStoneType(input.Type) {
		return nil, ErrInvalidStoneType
	}

	stone, err := s.ByID(id)
	if err != nil {
		return nil, err
	}

	var conflict models.Stone
	if err := s.db.Where("slug = ? AND id <> ?", input.Slug, id).First(&conflict).Error; err == nil {
		return nil, ErrSlugTaken
	}

	stone.Name = input.Name
	stone.Slug = input.Slug
	stone.Type = input.Type
	stone.Color = input.Color
	stone.Weight = input.Weight
	stone.Origin = input.Origin
	stone.ShortInfo = input.ShortInfo
	stone.Description = input.Description
	stone.Price = input.Price
	stone.Currency = currencyOrDefault(input.Currency)
	stone.Stock = input.Stock
	stone.Images = input.Images
	stone.IsFeatured = input.IsFeatured

	if err := s.db.Save(stone).Error; err != nil {
		return nil, fmt.Errorf("failed to update stone: %w", err)
	}
	return stone, nil
}

func (s *CatalogService) Delete(id uint) error {
	result := s.db.Delete(&models.Stone{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete stone: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrStoneNotFound
	}
	return nil
}

func currencyOrDefault(c string) string {
	if c == "" {
		return "USD"
	}
	return strings.ToUpper(c)
}
