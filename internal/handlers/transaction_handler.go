package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/PoseidonKRL/ControlFin/internal/errors"
	"github.com/PoseidonKRL/ControlFin/internal/ledger"
	"github.com/PoseidonKRL/ControlFin/internal/models"
	"github.com/PoseidonKRL/ControlFin/internal/pagination"
	"github.com/PoseidonKRL/ControlFin/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// TransactionRequest is the payload for creating or replacing a transaction.
// Amount travels as a decimal string and is parsed exactly at this boundary.
type TransactionRequest struct {
	Description string  `json:"description" binding:"required,max=500"`
	Amount      string  `json:"amount" binding:"required"`
	Date        *string `json:"date"`
	Type        string  `json:"type" binding:"required,transaction_type"`
	Category    string  `json:"category" binding:"required,max=100"`
	Notes       string  `json:"notes" binding:"max=1000"`
	Priority    string  `json:"priority" binding:"omitempty,priority"`
}

// SubItemRequest is the payload for creating a sub-item. Type and category
// are optional and default to the parent's values.
type SubItemRequest struct {
	Description string  `json:"description" binding:"required,max=500"`
	Amount      string  `json:"amount" binding:"required"`
	Date        *string `json:"date"`
	Type        string  `json:"type" binding:"omitempty,transaction_type"`
	Category    string  `json:"category" binding:"omitempty,max=100"`
	Notes       string  `json:"notes" binding:"max=1000"`
	Priority    string  `json:"priority" binding:"omitempty,priority"`
}

// ListTransactionsQuery holds the filter, sort, and paging query parameters.
type ListTransactionsQuery struct {
	pagination.PageRequest
	Month string `form:"month" binding:"omitempty,month_key"`
	Sort  string `form:"sort" binding:"omitempty,sort_key"`
}

// CreateTransaction handles the creation of a new top-level transaction.
// @Summary     Create a transaction
// @Description Record a new income or expense transaction
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body TransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	input, err := toInput(req.Description, req.Amount, req.Date, req.Type, req.Category, req.Notes, req.Priority)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.CreateTransaction(ownerKey(c), input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// CreateSubItem handles the creation of a sub-item under a parent.
// @Summary     Create a sub-item
// @Description Attach an itemized sub-item to an existing transaction; the parent amount becomes the sum of its sub-items
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       id      path string         true "Parent transaction ID"
// @Param       request body SubItemRequest true "Sub-item details"
// @Success     201 {object} models.Transaction "Sub-item created"
// @Failure     400 {object} ErrorResponse "Invalid input or hierarchy violation"
// @Failure     404 {object} ErrorResponse "Parent not found"
// @Router      /transactions/{id}/subitems [post]
func (h *TransactionHandler) CreateSubItem(c *gin.Context) {
	var req SubItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	input, err := toInput(req.Description, req.Amount, req.Date, req.Type, req.Category, req.Notes, req.Priority)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.CreateSubItem(ownerKey(c), c.Param("id"), input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// GetTransaction returns a single transaction with sub-items attached.
// @Summary     Get a transaction
// @Tags        transactions
// @Produce     json
// @Param       id path string true "Transaction ID"
// @Success     200 {object} models.Transaction
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	transaction, err := h.transactionService.GetTransaction(ownerKey(c), c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// ListTransactions returns a filtered, sorted page of top-level transactions.
// @Summary     List transactions
// @Description List top-level transactions for a month window ("all" for everything), sorted by the given key; sub-items ride along inside their parents
// @Tags        transactions
// @Produce     json
// @Param       month     query string false "Month bucket YYYY-MM, or all" default(all)
// @Param       sort      query string false "Sort key" Enums(date-desc, date-asc, amount-desc, amount-asc, priority-desc)
// @Param       page      query int    false "Page number"
// @Param       page_size query int    false "Page size"
// @Success     200 {object} pagination.PageResponse[models.Transaction]
// @Failure     400 {object} ErrorResponse "Invalid query"
// @Router      /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	var query ListTransactionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	month := query.Month
	if month == "" {
		month = ledger.MonthAll
	}
	sortKey := ledger.SortKey(query.Sort)
	if query.Sort == "" {
		sortKey = ledger.DefaultSortKey
	}

	result, err := h.transactionService.ListTransactions(ownerKey(c), month, sortKey, query.PageRequest)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdateTransaction replaces the editable fields of a transaction.
// @Summary     Update a transaction
// @Description Replace the editable fields of a transaction; a parent's amount stays derived from its sub-items
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       id      path string             true "Transaction ID"
// @Param       request body TransactionRequest true "New field values"
// @Success     200 {object} models.Transaction
// @Failure     400 {object} ErrorResponse "Invalid input or hierarchy violation"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	input, err := toInput(req.Description, req.Amount, req.Date, req.Type, req.Category, req.Notes, req.Priority)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.UpdateTransaction(ownerKey(c), c.Param("id"), input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// DeleteTransaction removes a transaction wherever it lives.
// @Summary     Delete a transaction
// @Description Delete a transaction; deleting a parent discards its sub-items, deleting a sub-item re-derives the parent amount
// @Tags        transactions
// @Produce     json
// @Param       id path string true "Transaction ID"
// @Success     204 "Deleted"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	if err := h.transactionService.DeleteTransaction(ownerKey(c), c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// toInput converts boundary fields into a service input, parsing the amount
// and date.
func toInput(description, amount string, date *string, txType, category, notes, priority string) (services.TransactionInput, error) {
	parsedAmount, err := parseAmount(amount)
	if err != nil {
		return services.TransactionInput{}, err
	}

	var parsedDate time.Time
	if date != nil && *date != "" {
		parsedDate, err = parseFlexibleTime(*date)
		if err != nil {
			return services.TransactionInput{}, err
		}
	}

	return services.TransactionInput{
		Description: description,
		Amount:      parsedAmount,
		Date:        parsedDate,
		Type:        models.TransactionType(txType),
		Category:    category,
		Notes:       notes,
		Priority:    models.Priority(priority),
	}, nil
}
