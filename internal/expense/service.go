package expense

import (
	"log/slog"

	"github.com/frahmantamala/finance-tracker/internal"
	expenseDatamodel "github.com/frahmantamala/finance-tracker/internal/core/datamodel/expense"
)

// CategoryChecker validates the loose category name link at creation time.
// The check is scoped to the caller's own categories.
type CategoryChecker interface {
	Exists(userID int64, name string) (bool, error)
}

// Repository defines the data access methods for expenses
type Repository interface {
	Create(exp *expenseDatamodel.Expense) error
	GetByID(id int64) (*expenseDatamodel.Expense, error)
	GetByUserID(userID int64) ([]*expenseDatamodel.Expense, error)
	Update(exp *expenseDatamodel.Expense) error
	Delete(id int64) error
}

type Service struct {
	repo       Repository
	categories CategoryChecker
	logger     *slog.Logger
}

func NewService(repo Repository, categories CategoryChecker, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		categories: categories,
		logger:     logger,
	}
}

// ListExpenses returns exactly the caller's expenses in insertion order.
func (s *Service) ListExpenses(userID int64) ([]*Expense, error) {
	rows, err := s.repo.GetByUserID(userID)
	if err != nil {
		s.logger.Error("failed to list expenses", "user_id", userID, "error", err)
		return nil, err
	}
	return FromDataModelSlice(rows), nil
}

// CreateExpense validates the payload, checks the category exists for the
// caller, then persists with a server-assigned timestamp.
func (s *Service) CreateExpense(userID int64, dto CreateExpenseDTO) (*Expense, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.categories.Exists(userID, dto.Category)
	if err != nil {
		s.logger.Error("failed to check category", "user_id", userID, "category", dto.Category, "error", err)
		return nil, err
	}
	if !exists {
		return nil, internal.ErrCategoryNotExist
	}

	row := &expenseDatamodel.Expense{
		UserID:   userID,
		Amount:   dto.Amount,
		Category: dto.Category,
		Note:     dto.Note,
	}
	if err := s.repo.Create(row); err != nil {
		s.logger.Error("failed to create expense", "user_id", userID, "error", err)
		return nil, err
	}

	s.logger.Info("expense created", "expense_id", row.ID, "user_id", userID, "amount", row.Amount, "category", row.Category)
	return FromDataModel(row), nil
}

// UpdateExpense applies a shallow patch to the caller's own expense.
func (s *Service) UpdateExpense(userID, expenseID int64, dto UpdateExpenseDTO) (*Expense, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	row, err := s.repo.GetByID(expenseID)
	if err != nil {
		return nil, err
	}
	if row.UserID != userID {
		s.logger.Warn("update denied: owner mismatch", "expense_id", expenseID, "user_id", userID, "owner_id", row.UserID)
		return nil, internal.ErrForbidden
	}

	if dto.Amount != nil {
		row.Amount = *dto.Amount
	}
	if dto.Category != nil {
		row.Category = *dto.Category
	}
	if dto.Note != nil {
		row.Note = dto.Note
	}

	if err := s.repo.Update(row); err != nil {
		s.logger.Error("failed to update expense", "expense_id", expenseID, "error", err)
		return nil, err
	}

	s.logger.Info("expense updated", "expense_id", expenseID, "user_id", userID)
	return FromDataModel(row), nil
}

// DeleteExpense removes the caller's own expense. Ownership is enforced
// symmetrically with update.
func (s *Service) DeleteExpense(userID, expenseID int64) error {
	row, err := s.repo.GetByID(expenseID)
	if err != nil {
		return err
	}
	if row.UserID != userID {
		s.logger.Warn("delete denied: owner mismatch", "expense_id", expenseID, "user_id", userID, "owner_id", row.UserID)
		return internal.ErrForbidden
	}

	if err := s.repo.Delete(expenseID); err != nil {
		s.logger.Error("failed to delete expense", "expense_id", expenseID, "error", err)
		return err
	}

	s.logger.Info("expense deleted", "expense_id", expenseID, "user_id", userID)
	return nil
}
