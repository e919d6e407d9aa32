package service

import (
	"context"
	"time"

	"github.com/AsadUllahBilal/TechThrive/internal/domain"
	"github.com/AsadUllahBilal/TechThrive/internal/dto"
	"github.com/AsadUllahBilal/TechThrive/internal/repository"
	"github.com/AsadUllahBilal/TechThrive/pkg/errs"
	"github.com/AsadUllahBilal/TechThrive/pkg/utils"
)

type CategoryServiceImpl struct {
	categoryRepo repository.CategoryRepository
}

func CreateCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &CategoryServiceImpl{categoryRepo: categoryRepo}
}

func (s *CategoryServiceImpl) AddCategory(ctx context.Context, data dto.CategoryRequest) (err error) {
	if data.Name == "" {
		return errs.ErrClient
	}

	_, err = s.categoryRepo.AddCategory(ctx, domain.Category{
		Name:        data.Name,
		Slug:        utils.Slugify(data.Name),
		Description: data.Description,
		Image:       data.Image,
		CreatedAt:   time.Now().Unix(),
	})

	return
}

func (s *CategoryServiceImpl) GetCategories(ctx context.Context) (data []domain.Category, err error) {
	return s.categoryRepo.GetCategories(ctx)
}

func (s *CategoryServiceImpl) GetCategoryByID(ctx context.Context, id string) (data domain.Category, err error) {
	return s.categoryRepo.GetCategoryByID(ctx, id)
}

func (s *CategoryServiceImpl) DeleteCategory(ctx context.Context, id string) (err error) {
	return s.categoryRepo.DeleteCategory(ctx, id)
}
