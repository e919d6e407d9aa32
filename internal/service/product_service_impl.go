package service

import (
	"context"
	"time"

	"github.com/AsadUllahBilal/TechThrive/internal/domain"
	"github.com/AsadUllahBilal/TechThrive/internal/dto"
	"github.com/AsadUllahBilal/TechThrive/internal/repository"
	pkgdto "github.com/AsadUllahBilal/TechThrive/pkg/dto"
	"github.com/AsadUllahBilal/TechThrive/pkg/errs"
	"github.com/AsadUllahBilal/TechThrive/pkg/utils"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductServiceImpl struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	publisher    EventPublisher
}

func CreateProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository, publisher EventPublisher) ProductService {
	return &ProductServiceImpl{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		publisher:    publisher,
	}
}

func (s *ProductServiceImpl) AddProduct(ctx context.Context, data dto.ProductRequest) (err error) {
	if data.Name == "" || data.Price < 0 || data.Stock < 0 {
		return errs.ErrClient
	}

	category, err := s.categoryRepo.GetCategoryByID(ctx, data.CategoryID)
	if err != nil {
		return
	}

	now := time.Now().Unix()
	productID, err := s.productRepo.AddProduct(ctx, domain.Product{
		Name:        data.Name,
		Slug:        utils.Slugify(data.Name),
		Description: data.Description,
		Price:       data.Price,
		Stock:       data.Stock,
		CategoryID:  category.ID,
		Brand:       data.Brand,
		Images:      data.Images,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return
	}

	if err := s.publisher.Publish(ctx, productID.Hex(), "product_created", dto.ProductResponse{
		ID:    productID.Hex(),
		Name:  data.Name,
		Price: data.Price,
	}); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProduct").Msg("")
	}

	return nil
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context, param pkgdto.Filter) (data []dto.ProductResponse, err error) {
	products, err := s.productRepo.GetProducts(ctx, param)
	if err != nil {
		return
	}

	categories, err := s.categoryRepo.GetCategories(ctx)
	if err != nil {
		return
	}

	categoryByID := make(map[primitive.ObjectID]domain.Category, len(categories))
	for _, category := range categories {
		categoryByID[category.ID] = category
	}

	for _, product := range products {
		data = append(data, toProductResponse(product, categoryByID))
	}

	return data, nil
}

func (s *ProductServiceImpl) GetProductByID(ctx context.Context, id string) (data dto.ProductResponse, err error) {
	product, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return
	}

	data = toProductResponse(product, nil)

	category, err := s.categoryRepo.GetCategoryByID(ctx, product.CategoryID.Hex())
	if err == nil {
		data.Category = &category
	}

	return data, nil
}

func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, data dto.ProductRequest) (err error) {
	current, err := s.productRepo.GetProductByID(ctx, data.ID)
	if err != nil {
		return
	}

	categoryID := current.CategoryID
	if data.CategoryID != "" && data.CategoryID != current.CategoryID.Hex() {
		category, err := s.categoryRepo.GetCategoryByID(ctx, data.CategoryID)
		if err != nil {
			return err
		}
		categoryID = category.ID
	}

	updated := domain.Product{
		ID:          current.ID,
		Name:        data.Name,
		Slug:        utils.Slugify(data.Name),
		Description: data.Description,
		Price:       data.Price,
		Stock:       data.Stock,
		CategoryID:  categoryID,
		Brand:       data.Brand,
		Images:      data.Images,
		UpdatedAt:   time.Now().Unix(),
	}

	if err = s.productRepo.UpdateProduct(ctx, updated); err != nil {
		return
	}

	if err := s.publisher.Publish(ctx, data.ID, "product_updated", dto.ProductResponse{
		ID:    data.ID,
		Name:  data.Name,
		Price: data.Price,
	}); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateProduct").Msg("")
	}

	return nil
}

func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	if err = s.productRepo.DeleteProduct(ctx, id); err != nil {
		return
	}

	if err := s.publisher.Publish(ctx, id, "product_deleted", dto.ProductResponse{ID: id}); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteProduct").Msg("")
	}

	return nil
}

func toProductResponse(product domain.Product, categoryByID map[primitive.ObjectID]domain.Category) dto.ProductResponse {
	resp := dto.ProductResponse{
		ID:            product.ID.Hex(),
		Name:          product.Name,
		Slug:          product.Slug,
		Description:   product.Description,
		Price:         product.Price,
		Stock:         product.Stock,
		Brand:         product.Brand,
		Images:        product.Images,
		AverageRating: product.AverageRating,
		TotalReviews:  product.TotalReviews,
		CreatedAt:     product.CreatedAt,
	}

	if categoryByID != nil {
		if category, ok := categoryByID[product.CategoryID]; ok {
			resp.Category = &category
		}
	}

	return resp
}
