package finance

import (
	"context"

	"github.com/fingestor/backend/internal/domain/finance"
	"github.com/fingestor/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CategoryService handles transaction category operations
type CategoryService struct {
	categoryRepo finance.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo finance.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// Create creates a new category
func (s *CategoryService) Create(ctx context.Context, companyID uuid.UUID, req CreateCategoryRequest) (*CategoryResponse, error) {
	category, err := finance.NewCategory(companyID, req.Name, finance.CategoryType(req.Type))
	if err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	response := ToCategoryResponse(category)
	return &response, nil
}

// GetByID retrieves a category by ID within the caller's company
func (s *CategoryService) GetByID(ctx context.Context, companyID, categoryID uuid.UUID) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByIDForCompany(ctx, companyID, categoryID)
	if err != nil {
		return nil, err
	}

	response := ToCategoryResponse(category)
	return &response, nil
}

// List retrieves all categories for the caller's company
func (s *CategoryService) List(ctx context.Context, companyID uuid.UUID, filter ListFilter) ([]CategoryResponse, error) {
	categories, err := s.categoryRepo.FindAllForCompany(ctx, companyID, toDomainFilter(filter))
	if err != nil {
		return nil, err
	}

	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = ToCategoryResponse(&categories[i])
	}
	return responses, nil
}

// Update applies a partial update to a category
func (s *CategoryService) Update(ctx context.Context, companyID, categoryID uuid.UUID, req UpdateCategoryRequest) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByIDForCompany(ctx, companyID, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := category.Rename(*req.Name); err != nil {
			return nil, err
		}
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	response := ToCategoryResponse(category)
	return &response, nil
}

// Delete removes a category within the caller's company (hard delete)
func (s *CategoryService) Delete(ctx context.Context, companyID, categoryID uuid.UUID) error {
	if _, err := s.categoryRepo.FindByIDForCompany(ctx, companyID, categoryID); err != nil {
		return err
	}
	return s.categoryRepo.DeleteForCompany(ctx, companyID, categoryID)
}

func toDomainFilter(filter ListFilter) shared.Filter {
	page, pageSize := filter.normalized()
	domainFilter := shared.DefaultFilter()
	domainFilter.Page = page
	domainFilter.PageSize = pageSize
	domainFilter.Search = filter.Search
	for key, value := range filter.Filters {
		domainFilter.Filters[key] = value
	}
	return domainFilter
}
