package services

import (
	"sync"
	"time"

	apperrors "github.com/PoseidonKRL/ControlFin/internal/errors"
	"github.com/PoseidonKRL/ControlFin/internal/id"
	"github.com/PoseidonKRL/ControlFin/internal/ledger"
	"github.com/PoseidonKRL/ControlFin/internal/models"
	"github.com/PoseidonKRL/ControlFin/internal/pagination"
)

// transactionService binds the ledger engine to snapshot persistence.
// The engine provides no locking of its own, so the service serializes
// mutations: at most one load-mutate-store cycle runs at a time.
type transactionService struct {
	store SnapshotStore
	mu    sync.Mutex
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(store SnapshotStore) TransactionServicer {
	return &transactionService{store: store}
}

// CreateTransaction records a new top-level transaction.
func (s *transactionService) CreateTransaction(ownerKey string, input TransactionInput) (*models.Transaction, error) {
	tx := newRecord(input)

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot, err := s.load(ownerKey)
	if err != nil {
		return nil, err
	}
	next, err := ledger.Add(snapshot, tx)
	if err != nil {
		return nil, err
	}
	if err := s.save(ownerKey, next); err != nil {
		return nil, err
	}
	return &tx, nil
}

// CreateSubItem records a new sub-item under the given parent. When type or
// category are omitted they default to the parent's, the usual UI
// convention; the ledger itself never forces them to match.
func (s *transactionService) CreateSubItem(ownerKey, parentID string, input TransactionInput) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot, err := s.load(ownerKey)
	if err != nil {
		return nil, err
	}

	parent, ok := ledger.Find(snapshot, parentID)
	if !ok {
		return nil, apperrors.ErrParentNotFound
	}
	if input.Type == "" {
		input.Type = parent.Type
	}
	if input.Category == "" {
		input.Category = parent.Category
	}

	tx := newRecord(input)
	tx.ParentID = &parentID

	next, err := ledger.Add(snapshot, tx)
	if err != nil {
		return nil, err
	}
	if err := s.save(ownerKey, next); err != nil {
		return nil, err
	}
	return &tx, nil
}

// GetTransaction finds one transaction, top-level or nested. A parent comes
// back with its sub-items attached.
func (s *transactionService) GetTransaction(ownerKey, txID string) (*models.Transaction, error) {
	snapshot, err := s.load(ownerKey)
	if err != nil {
		return nil, err
	}
	tx, ok := ledger.Find(snapshot, txID)
	if !ok {
		return nil, apperrors.ErrTransactionNotFound
	}
	return &tx, nil
}

// ListTransactions returns one page of the owner's ledger, restricted to the
// month window and ordered by the sort key. Sub-items ride along inside
// their parents and are not paginated on their own.
func (s *transactionService) ListTransactions(ownerKey, monthKey string, sortKey ledger.SortKey, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	snapshot, err := s.load(ownerKey)
	if err != nil {
		return nil, err
	}
	visible := ledger.SortTopLevel(ledger.FilterByMonth(snapshot, monthKey), sortKey)

	items, totalItems := pagination.Slice(visible, page)
	result := pagination.NewPageResponse(items, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// UpdateTransaction replaces the editable fields of an existing transaction.
func (s *transactionService) UpdateTransaction(ownerKey, txID string, input TransactionInput) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot, err := s.load(ownerKey)
	if err != nil {
		return nil, err
	}

	existing, ok := ledger.Find(snapshot, txID)
	if !ok {
		return nil, apperrors.ErrTransactionNotFound
	}

	updated := existing
	updated.Description = input.Description
	updated.Amount = input.Amount
	updated.Type = input.Type
	updated.Category = input.Category
	updated.Notes = input.Notes
	if !input.Date.IsZero() {
		updated.Date = input.Date.UTC()
	}
	if input.Priority != "" {
		updated.Priority = input.Priority
	}

	next, err := ledger.Update(snapshot, updated)
	if err != nil {
		return nil, err
	}
	if err := s.save(ownerKey, next); err != nil {
		return nil, err
	}

	tx, _ := ledger.Find(next, txID)
	return &tx, nil
}

// DeleteTransaction removes a transaction wherever it lives. Deleting a
// parent discards its sub-items; deleting a sub-item re-derives the parent
// amount.
func (s *transactionService) DeleteTransaction(ownerKey, txID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot, err := s.load(ownerKey)
	if err != nil {
		return err
	}
	next, err := ledger.Remove(snapshot, txID)
	if err != nil {
		return err
	}
	return s.save(ownerKey, next)
}

func (s *transactionService) load(ownerKey string) ([]models.Transaction, error) {
	snapshot, err := s.store.LoadTransactions(ownerKey)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return snapshot, nil
}

func (s *transactionService) save(ownerKey string, snapshot []models.Transaction) error {
	if err := s.store.ReplaceTransactions(ownerKey, snapshot); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// newRecord builds a ledger record from caller input, assigning identity and
// defaults.
func newRecord(input TransactionInput) models.Transaction {
	tx := models.Transaction{
		Description: input.Description,
		Amount:      input.Amount,
		Date:        input.Date.UTC(),
		Type:        input.Type,
		Category:    input.Category,
		Notes:       input.Notes,
		Priority:    input.Priority,
	}
	tx.ID = id.New()
	if input.Date.IsZero() {
		tx.Date = time.Now().UTC()
	}
	if tx.Priority == "" {
		tx.Priority = models.PriorityMedium
	}
	return tx
}
