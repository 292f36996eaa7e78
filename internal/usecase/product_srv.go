package usecase

import (
	"context"
	"fmt"
	"time"

	"shop-backend/internal/data/entity"
	"shop-backend/internal/data/repository"
	"shop-backend/internal/dto/request"
	"shop-backend/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProductService interface {
	CreateProduct(ctx context.Context, req *request.ProductRequest) (*response.ProductResponse, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*response.ProductResponse, error)
	GetAllProducts(ctx context.Context, list *request.ListRequest) (*response.PaginatedResponse[response.ProductResponse], error)
	UpdateProduct(ctx context.Context, id uuid.UUID, req *request.ProductRequest) (*response.ProductResponse, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewProductService(repo *repository.Repository, log *zap.Logger) ProductService {
	return &productService{
		repo: repo,
		log:  log.With(zap.String("service", "product")),
	}
}

func (s *productService) CreateProduct(ctx context.Context, req *request.ProductRequest) (*response.ProductResponse, error) {
	now := time.Now()
	product := &entity.Product{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:  req.Name,
		Price: req.Price,
	}

	if err := s.repo.Product.Create(ctx, product); err != nil {
		s.log.Error("Failed to create product", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.log.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("name", product.Name),
	)

	result := response.ProductToResponse(product)
	return &result, nil
}

func (s *productService) GetProduct(ctx context.Context, id uuid.UUID) (*response.ProductResponse, error) {
	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find product", zap.Error(err), zap.String("product_id", id.String()))
		return nil, fmt.Errorf("find product: %w", err)
	}
	if product == nil {
		return nil, entity.ErrProductNotFound
	}

	result := response.ProductToResponse(product)
	return &result, nil
}

func (s *productService) GetAllProducts(ctx context.Context, list *request.ListRequest) (*response.PaginatedResponse[response.ProductResponse], error) {
	limit := list.LimitOrDefault()

	products, err := s.repo.Product.FindAll(ctx, limit, list.Offset(), list.Order, list.Sort)
	if err != nil {
		s.log.Error("Failed to list products", zap.Error(err))
		return nil, fmt.Errorf("list products: %w", err)
	}

	total, err := s.repo.Product.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count products", zap.Error(err))
		return nil, fmt.Errorf("count products: %w", err)
	}

	results := make([]response.ProductResponse, len(products))
	for i, product := range products {
		results[i] = response.ProductToResponse(product)
	}

	return response.NewPaginatedResponse(results, list.Page, limit, total), nil
}

func (s *productService) UpdateProduct(ctx context.Context, id uuid.UUID, req *request.ProductRequest) (*response.ProductResponse, error) {
	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find product", zap.Error(err), zap.String("product_id", id.String()))
		return nil, fmt.Errorf("find product: %w", err)
	}
	if product == nil {
		return nil, entity.ErrProductNotFound
	}

	product.Name = req.Name
	product.Price = req.Price
	product.UpdatedAt = time.Now()

	if err := s.repo.Product.Update(ctx, product); err != nil {
		s.log.Error("Failed to update product", zap.Error(err), zap.String("product_id", id.String()))
		return nil, fmt.Errorf("update product: %w", err)
	}

	s.log.Info("Product updated", zap.String("product_id", product.ID.String()))

	result := response.ProductToResponse(product)
	return &result, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Product.Delete(ctx, id); err != nil {
		if err == entity.ErrProductNotFound {
			return err
		}
		s.log.Error("Failed to delete product", zap.Error(err), zap.String("product_id", id.String()))
		return fmt.Errorf("delete product: %w", err)
	}

	s.log.Info("Product deleted", zap.String("product_id", id.String()))
	return nil
}
