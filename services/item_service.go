package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hotel-management/models"
)

// ItemService is the store for menu items.
type ItemService struct {
	DB *gorm.DB
}

func NewItemService(db *gorm.DB) *ItemService {
	return &ItemService{DB: db}
}

// Create inserts an item after an advisory duplicate check on name. On a
// duplicate the existing record is returned with ErrDuplicateItemName.
func (s *ItemService) Create(item models.Item) (models.Item, error) {
	existing, err := s.GetByName(item.Name)
	if err == nil {
		return existing, ErrDuplicateItemName
	}
	if !errors.Is(err, ErrItemNotFound) {
		return models.Item{}, err
	}

	item.ID = ""
	if err := s.DB.Create(&item).Error; err != nil {
		return models.Item{}, fmt.Errorf("failed to create item: %w", err)
	}
	return item, nil
}

func (s *ItemService) GetByID(id string) (models.Item, error) {
	if _, err := uuid.Parse(id); err != nil {
		return models.Item{}, ErrMalformedID
	}
	var item models.Item
	if err := s.DB.Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Item{}, ErrItemNotFound
		}
		return models.Item{}, fmt.Errorf("failed to fetch item: %w", err)
	}
	return item, nil
}

func (s *ItemService) GetByName(name string) (models.Item, error) {
	var item models.Item
	if err := s.DB.Where("name = ?", name).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Item{}, ErrItemNotFound
		}
		return models.Item{}, fmt.Errorf("failed to fetch item: %w", err)
	}
	return item, nil
}

func (s *ItemService) GetAll() ([]models.Item, error) {
	var items []models.Item
	if err := s.DB.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch items: %w", err)
	}
	return items, nil
}

// Update replaces name, price and description of an existing item and returns
// the refreshed record.
func (s *ItemService) Update(id string, fields models.Item) (models.Item, error) {
	item, err := s.GetByID(id)
	if err != nil {
		return models.Item{}, err
	}
	updates := map[string]interface{}{
		"name":        fields.Name,
		"price":       fields.Price,
		"description": fields.Description,
	}
	if err := s.DB.Model(&item).Updates(updates).Error; err != nil {
		return models.Item{}, fmt.Errorf("failed to update item: %w", err)
	}
	return s.GetByID(id)
}

// Delete removes an item by id. Deleting an absent id is ErrItemNotFound, so
// a second delete of the same id fails the same way.
func (s *ItemService) Delete(id string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, ErrMalformedID
	}
	res := s.DB.Where("id = ?", id).Delete(&models.Item{})
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return false, ErrItemNotFound
	}
	return true, nil
}

// Search returns items whose name or description contains the query,
// case-insensitively. No match is an empty slice, not an error.
func (s *ItemService) Search(query string) ([]models.Item, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	var items []models.Item
	err := s.DB.
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search items: %w", err)
	}
	return items, nil
}
