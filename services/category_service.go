package services

import (
	"context"
	"fmt"

	"storefront/models"
	"storefront/repositories"
)

type CategoryService struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

func (s *CategoryService) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.FindAll(ctx)
}

func (s *CategoryService) GetCategoryByID(ctx context.Context, id int) (*models.Category, error) {
	cat, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrCategoryNotFound
	}
	return cat, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, req models.CreateCategoryRequest) (*models.Category, error) {
	if req.ParentID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *req.ParentID); err != nil {
			return nil, fmt.Errorf("parent category not found")
		}
	}

	category := &models.Category{
		Name:        req.Name,
		Description: req.Description,
		ParentID:    req.ParentID,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id int, req models.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrCategoryNotFound
	}

	if req.Name != "" {
		category.Name = req.Name
	}
	if req.Description != "" {
		category.Description = req.Description
	}
	if req.ParentID != nil {
		if *req.ParentID == id {
			return nil, fmt.Errorf("category cannot be its own parent")
		}
		if _, err := s.categoryRepo.FindByID(ctx, *req.ParentID); err != nil {
			return nil, fmt.Errorf("parent category not found")
		}
		category.ParentID = req.ParentID
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory refuses to delete a category that still has sub-categories
// or products attached and reports the blocking counts.
func (s *CategoryService) DeleteCategory(ctx context.Context, id int) error {
	if _, err := s.categoryRepo.FindByID(ctx, id); err != nil {
		return ErrCategoryNotFound
	}

	children, err := s.categoryRepo.CountChildren(ctx, id)
	if err != nil {
		return err
	}
	products, err := s.categoryRepo.CountProducts(ctx, id)
	if err != nil {
		return err
	}

	if children > 0 || products > 0 {
		return fmt.Errorf("cannot delete category: %d sub-categories and %d products are attached", children, products)
	}

	return s.categoryRepo.Delete(ctx, id)
}
