package usecase

import (
	"context"
	"fmt"

	"shop-backend/internal/data/entity"
	"shop-backend/internal/data/repository"
	"shop-backend/internal/dto/request"
	"shop-backend/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CartService interface {
	AddItem(ctx context.Context, userID uuid.UUID, req *request.AddItemRequest) (*response.CartResponse, error)
	GetCart(ctx context.Context, userID uuid.UUID) (*response.CartResponse, error)
	GetAllCarts(ctx context.Context, list *request.ListRequest) (*response.PaginatedResponse[response.CartResponse], error)
	DeleteCart(ctx context.Context, id uuid.UUID) error
}

type cartService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCartService(repo *repository.Repository, log *zap.Logger) CartService {
	return &cartService{
		repo: repo,
		log:  log.With(zap.String("service", "cart")),
	}
}

// AddItem upserts one line into the caller's cart. The submitted name and
// price must match the catalog row; the quantity replaces any previous
// quantity for the same product rather than adding to it.
func (s *cartService) AddItem(ctx context.Context, userID uuid.UUID, req *request.AddItemRequest) (*response.CartResponse, error) {
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, entity.ErrProductNotFound
	}

	// 1. Item must reference an existing catalog product
	product, err := s.repo.Product.FindByID(ctx, productID)
	if err != nil {
		s.log.Error("Failed to find product", zap.Error(err), zap.String("product_id", req.ProductID))
		return nil, fmt.Errorf("find product: %w", err)
	}
	if product == nil {
		return nil, entity.ErrProductNotFound
	}

	// 2. Submitted snapshot must agree with the catalog
	if product.Name != req.Name || product.Price != req.Price {
		s.log.Warn("Cart item disagrees with catalog",
			zap.String("product_id", req.ProductID),
			zap.String("submitted_name", req.Name),
			zap.Float64("submitted_price", req.Price),
		)
		return nil, entity.ErrProductMismatch
	}

	// 3. Single atomic upsert: creates the cart on first use and merges the
	// line, so two concurrent adds cannot produce duplicate carts or rows.
	item := entity.CartItem{
		ID:        uuid.New(),
		ProductID: productID,
		Name:      req.Name,
		Price:     req.Price,
		Quantity:  req.Quantity,
	}

	cart, err := s.repo.Cart.UpsertItem(ctx, userID, item)
	if err != nil {
		s.log.Error("Failed to upsert cart item",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("product_id", req.ProductID),
		)
		return nil, fmt.Errorf("upsert cart item: %w", err)
	}

	s.log.Info("Cart item saved",
		zap.String("user_id", userID.String()),
		zap.String("product_id", req.ProductID),
		zap.Int("quantity", req.Quantity),
	)

	result := response.CartToResponse(cart)
	return &result, nil
}

func (s *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*response.CartResponse, error) {
	cart, err := s.repo.Cart.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find cart", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("find cart: %w", err)
	}
	if cart == nil {
		return nil, entity.ErrCartNotFound
	}

	result := response.CartToResponse(cart)
	return &result, nil
}

func (s *cartService) GetAllCarts(ctx context.Context, list *request.ListRequest) (*response.PaginatedResponse[response.CartResponse], error) {
	limit := list.LimitOrDefault()

	carts, err := s.repo.Cart.FindAll(ctx, limit, list.Offset(), list.Order, list.Sort)
	if err != nil {
		s.log.Error("Failed to list carts", zap.Error(err))
		return nil, fmt.Errorf("list carts: %w", err)
	}

	total, err := s.repo.Cart.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count carts", zap.Error(err))
		return nil, fmt.Errorf("count carts: %w", err)
	}

	results := make([]response.CartResponse, len(carts))
	for i, cart := range carts {
		results[i] = response.CartToResponse(cart)
	}

	return response.NewPaginatedResponse(results, list.Page, limit, total), nil
}

func (s *cartService) DeleteCart(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Cart.Delete(ctx, id); err != nil {
		if err == entity.ErrCartNotFound {
			return err
		}
		s.log.Error("Failed to delete cart", zap.Error(err), zap.String("cart_id", id.String()))
		return fmt.Errorf("delete cart: %w", err)
	}

	s.log.Info("Cart deleted", zap.String("cart_id", id.String()))
	return nil
}
