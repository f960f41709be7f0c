package category

import "github.com/frahmantamala/finance-tracker/internal"

// CreateCategoryDTO represents the request payload for creating a category
type CreateCategoryDTO struct {
	Name string `json:"name"`
}

func (dto CreateCategoryDTO) Validate() error {
	if dto.Name == "" {
		return internal.ErrMissingField
	}
	return nil
}

type CategoriesResponse struct {
	Categories []*Category `json:"categories"`
}
