package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/PoseidonKRL/ControlFin/internal/errors"
	"github.com/PoseidonKRL/ControlFin/internal/models"
	"github.com/PoseidonKRL/ControlFin/internal/pagination"
)

// categoryService handles category management. Transactions reference
// categories by name, so deletion is refused while any transaction row,
// sub-items included, still carries the name.
type categoryService struct {
	categories   CategoryStore
	transactions SnapshotStore
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(categories CategoryStore, transactions SnapshotStore) CategoryServicer {
	return &categoryService{categories: categories, transactions: transactions}
}

// CreateCategory creates a new category with a unique name per owner.
func (s *categoryService) CreateCategory(ownerKey, name, icon string) (*models.Category, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}

	count, err := s.categories.CountCategoriesByName(ownerKey, name)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateCategory
	}

	category := &models.Category{
		OwnerKey: ownerKey,
		Name:     name,
		Icon:     icon,
	}
	if err := s.categories.CreateCategory(category); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return category, nil
}

// ListCategories returns one page of the owner's categories.
func (s *categoryService) ListCategories(ownerKey string, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error) {
	page.Defaults()

	categories, totalItems, err := s.categories.ListCategories(ownerKey, page)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(categories, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetCategoryByID retrieves a category by ID.
func (s *categoryService) GetCategoryByID(ownerKey, categoryID string) (*models.Category, error) {
	category, err := s.categories.GetCategoryByID(ownerKey, categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return category, nil
}

// UpdateCategory renames or re-icons an existing category. Renaming does not
// rewrite transactions that reference the old name; they keep their history.
func (s *categoryService) UpdateCategory(ownerKey, categoryID, name, icon string) (*models.Category, error) {
	category, err := s.GetCategoryByID(ownerKey, categoryID)
	if err != nil {
		return nil, err
	}

	if name != "" && name != category.Name {
		count, err := s.categories.CountCategoriesByName(ownerKey, name)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if count > 0 {
			return nil, apperrors.ErrDuplicateCategory
		}
		category.Name = name
	}
	if icon != "" {
		category.Icon = icon
	}

	if err := s.categories.SaveCategory(category); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return category, nil
}

// DeleteCategory removes a category unless a transaction still references
// its name, in which case the whole operation is refused.
func (s *categoryService) DeleteCategory(ownerKey, categoryID string) error {
	category, err := s.GetCategoryByID(ownerKey, categoryID)
	if err != nil {
		return err
	}

	references, err := s.transactions.CountTransactionsByCategory(ownerKey, category.Name)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if references > 0 {
		return apperrors.ErrCategoryInUse
	}

	if err := s.categories.DeleteCategory(category); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
