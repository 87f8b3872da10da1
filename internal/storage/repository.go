// Package storage persists transaction snapshots and categories behind GORM.
// The ledger engine never touches this package: the service layer loads a
// snapshot, runs the engine, and writes the result back here.
package storage

import (
	"fmt"
	"sort"

	"gorm.io/gorm"

	"github.com/PoseidonKRL/ControlFin/internal/models"
	"github.com/PoseidonKRL/ControlFin/internal/pagination"
)

// Repository provides snapshot and category persistence for one database.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a Repository on the given GORM handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// LoadTransactions reads every transaction row for the owner and assembles
// the one-level hierarchy: sub-item rows are attached to their parent's
// SubItems in stored position order, top-level rows keep creation order.
func (r *Repository) LoadTransactions(ownerKey string) ([]models.Transaction, error) {
	var rows []models.Transaction
	if err := r.db.
		Where("owner_key = ?", ownerKey).
		Order("created_at, id").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("loading transactions: %w", err)
	}

	children := make(map[string][]models.Transaction)
	var snapshot []models.Transaction
	for _, row := range rows {
		if row.IsChild() {
			children[*row.ParentID] = append(children[*row.ParentID], row)
			continue
		}
		snapshot = append(snapshot, row)
	}
	for i := range snapshot {
		subs := children[snapshot[i].ID]
		sort.SliceStable(subs, func(a, b int) bool { return subs[a].Position < subs[b].Position })
		snapshot[i].SubItems = subs
	}
	return snapshot, nil
}

// ReplaceTransactions atomically swaps the owner's stored rows for the given
// snapshot. The snapshot must already satisfy the ledger invariants; storage
// flattens it without re-deriving anything.
func (r *Repository) ReplaceTransactions(ownerKey string, snapshot []models.Transaction) error {
	rows := flatten(ownerKey, snapshot)
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("owner_key = ?", ownerKey).Delete(&models.Transaction{}).Error; err != nil {
			return fmt.Errorf("clearing transactions: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("storing transactions: %w", err)
		}
		return nil
	})
}

// CountTransactionsByCategory counts rows, sub-items included, that
// reference the category name.
func (r *Repository) CountTransactionsByCategory(ownerKey, name string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Transaction{}).
		Where("owner_key = ? AND category = ?", ownerKey, name).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting category references: %w", err)
	}
	return count, nil
}

// flatten converts a snapshot to flat rows ready for insertion, stamping the
// owner key and sub-item positions.
func flatten(ownerKey string, snapshot []models.Transaction) []models.Transaction {
	var rows []models.Transaction
	for i := range snapshot {
		top := snapshot[i].Clone()
		subs := top.SubItems
		top.SubItems = nil
		top.OwnerKey = ownerKey
		rows = append(rows, top)
		for j := range subs {
			sub := subs[j]
			sub.OwnerKey = ownerKey
			sub.Position = j
			sub.SubItems = nil
			rows = append(rows, sub)
		}
	}
	return rows
}

// CreateCategory inserts a category row.
func (r *Repository) CreateCategory(category *models.Category) error {
	return r.db.Create(category).Error
}

// GetCategoryByID fetches one category owned by ownerKey. Returns
// gorm.ErrRecordNotFound when absent.
func (r *Repository) GetCategoryByID(ownerKey, id string) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("id = ? AND owner_key = ?", id, ownerKey).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// CountCategoriesByName counts the owner's categories with the given name.
func (r *Repository) CountCategoriesByName(ownerKey, name string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Category{}).
		Where("owner_key = ? AND name = ?", ownerKey, name).
		Count(&count).Error
	return count, err
}

// ListCategories returns one page of the owner's categories, name order,
// plus the total count.
func (r *Repository) ListCategories(ownerKey string, page pagination.PageRequest) ([]models.Category, int64, error) {
	base := r.db.Model(&models.Category{}).Where("owner_key = ?", ownerKey)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, 0, fmt.Errorf("counting categories: %w", err)
	}

	var categories []models.Category
	if err := base.Scopes(pagination.Paginate(page)).Order("name").Find(&categories).Error; err != nil {
		return nil, 0, fmt.Errorf("listing categories: %w", err)
	}
	return categories, totalItems, nil
}

// SaveCategory persists field changes of an existing category.
func (r *Repository) SaveCategory(category *models.Category) error {
	return r.db.Save(category).Error
}

// DeleteCategory removes a category row permanently.
func (r *Repository) DeleteCategory(category *models.Category) error {
	return r.db.Delete(category).Error
}
