package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/frahmantamala/finance-tracker/internal"
	"github.com/frahmantamala/finance-tracker/internal/category"
	categoryDatamodel "github.com/frahmantamala/finance-tracker/internal/core/datamodel/category"
	expenseDatamodel "github.com/frahmantamala/finance-tracker/internal/core/datamodel/expense"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) category.Repository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) GetByUser(userID int64) ([]*categoryDatamodel.Category, error) {
	var rows []*categoryDatamodel.Category
	err := r.db.Where("user_id = ?", userID).Order("id ASC").Find(&rows).Error
	if err != nil {
		return nil, internal.NewStoreError("failed to list categories", err)
	}
	return rows, nil
}

func (r *CategoryRepository) GetByNameAndUser(name string, userID int64) (*categoryDatamodel.Category, error) {
	var row categoryDatamodel.Category
	err := r.db.Where("name = ? AND user_id = ?", name, userID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, internal.NewStoreError("failed to look up category", err)
	}
	return &row, nil
}

func (r *CategoryRepository) Create(cat *categoryDatamodel.Category) error {
	if err := r.db.Create(cat).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return internal.ErrDuplicateCategory
		}
		return internal.NewStoreError("failed to create category", err)
	}
	return nil
}

// DeleteWithExpenses removes the (name, owner) category and every expense
// of the same owner referencing it inside a single transaction, so the
// cascade is all-or-nothing from the caller's perspective.
func (r *CategoryRepository) DeleteWithExpenses(name string, userID int64) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("name = ? AND user_id = ?", name, userID).
			Delete(&categoryDatamodel.Category{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return internal.ErrCategoryNotFound
		}

		// cascade is scoped to the same owner; other users' expenses
		// under an equally named category stay untouched
		return tx.Where("category = ? AND user_id = ?", name, userID).
			Delete(&expenseDatamodel.Expense{}).Error
	})

	if err != nil {
		if appErr, ok := internal.IsAppError(err); ok {
			return appErr
		}
		return internal.NewStoreError("failed to delete category", err)
	}
	return nil
}
