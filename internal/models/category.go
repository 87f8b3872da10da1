package models

// Category is a named, icon-tagged label attachable to transactions.
// Transactions reference categories by name, not by ID, so renaming a
// category does not rewrite history. Names are unique per owner.
type Category struct {
	Base
	OwnerKey string `gorm:"not null;uniqueIndex:idx_categories_owner_name" json:"-"`
	Name     string `gorm:"not null;uniqueIndex:idx_categories_owner_name" json:"name"`
	Icon     string `json:"icon"`
}
