package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/frahmantamala/finance-tracker/internal"
	expenseDatamodel "github.com/frahmantamala/finance-tracker/internal/core/datamodel/expense"
	"github.com/frahmantamala/finance-tracker/internal/expense"
)

// ExpenseRepository implements the expense.Repository interface using GORM
type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) expense.Repository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Create(exp *expenseDatamodel.Expense) error {
	if err := r.db.Create(exp).Error; err != nil {
		return internal.NewStoreError("failed to create expense", err)
	}
	return nil
}

func (r *ExpenseRepository) GetByID(id int64) (*expenseDatamodel.Expense, error) {
	var exp expenseDatamodel.Expense
	err := r.db.Where("id = ?", id).First(&exp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrExpenseNotFound
		}
		return nil, internal.NewStoreError("failed to look up expense", err)
	}
	return &exp, nil
}

// GetByUserID returns the user's expenses in insertion order.
func (r *ExpenseRepository) GetByUserID(userID int64) ([]*expenseDatamodel.Expense, error) {
	var expenses []*expenseDatamodel.Expense
	err := r.db.Where("user_id = ?", userID).Order("id ASC").Find(&expenses).Error
	if err != nil {
		return nil, internal.NewStoreError("failed to list expenses", err)
	}
	return expenses, nil
}

func (r *ExpenseRepository) Update(exp *expenseDatamodel.Expense) error {
	if err := r.db.Save(exp).Error; err != nil {
		return internal.NewStoreError("failed to update expense", err)
	}
	return nil
}

func (r *ExpenseRepository) Delete(id int64) error {
	res := r.db.Where("id = ?", id).Delete(&expenseDatamodel.Expense{})
	if res.Error != nil {
		return internal.NewStoreError("failed to delete expense", res.Error)
	}
	if res.RowsAffected == 0 {
		return internal.ErrExpenseNotFound
	}
	return nil
}
