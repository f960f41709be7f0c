package category

import (
	"log/slog"

	"github.com/frahmantamala/finance-tracker/internal"
	categoryDatamodel "github.com/frahmantamala/finance-tracker/internal/core/datamodel/category"
)

// Repository defines the data access methods for categories. All queries
// are scoped to a single owner; DeleteWithExpenses must remove the category
// and its dependent expenses in one transaction.
type Repository interface {
	GetByUser(userID int64) ([]*categoryDatamodel.Category, error)
	GetByNameAndUser(name string, userID int64) (*categoryDatamodel.Category, error)
	Create(cat *categoryDatamodel.Category) error
	DeleteWithExpenses(name string, userID int64) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListCategories returns exactly the caller's categories.
func (s *Service) ListCategories(userID int64) ([]*Category, error) {
	rows, err := s.repo.GetByUser(userID)
	if err != nil {
		s.logger.Error("failed to list categories", "user_id", userID, "error", err)
		return nil, err
	}
	return FromDataModelSlice(rows), nil
}

// CreateCategory persists a category owned by the caller. The same name is
// rejected only within the caller's own namespace.
func (s *Service) CreateCategory(userID int64, dto CreateCategoryDTO) (*Category, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByNameAndUser(dto.Name, userID)
	if err != nil {
		s.logger.Error("failed to check category", "user_id", userID, "name", dto.Name, "error", err)
		return nil, err
	}
	if existing != nil {
		return nil, internal.ErrDuplicateCategory
	}

	row := &categoryDatamodel.Category{
		Name:   dto.Name,
		UserID: userID,
	}
	if err := s.repo.Create(row); err != nil {
		s.logger.Error("failed to create category", "user_id", userID, "name", dto.Name, "error", err)
		return nil, err
	}

	s.logger.Info("category created", "category_id", row.ID, "user_id", userID, "name", row.Name)
	return FromDataModel(row), nil
}

// DeleteCategory removes the caller's category and, in the same
// transaction, every expense of the caller referencing it. Other owners'
// expenses under the same name are never touched.
func (s *Service) DeleteCategory(userID int64, name string) error {
	if err := s.repo.DeleteWithExpenses(name, userID); err != nil {
		if appErr, ok := internal.IsAppError(err); ok && appErr.Code == internal.ErrCodeCategoryNotFound {
			return err
		}
		s.logger.Error("failed to delete category", "user_id", userID, "name", name, "error", err)
		return err
	}

	s.logger.Info("category and associated expenses deleted", "user_id", userID, "name", name)
	return nil
}

// Exists reports whether the caller owns a category with the given name.
// The expense service uses it to validate the loose category name link.
func (s *Service) Exists(userID int64, name string) (bool, error) {
	existing, err := s.repo.GetByNameAndUser(name, userID)
	if err != nil {
		return false, err
	}
	return existing != nil, nil
}
