package repository

import (
	"context"
	"fmt"

	"shop-backend/internal/data/entity"
	"shop-backend/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CartRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)
	FindAll(ctx context.Context, limit, offset int, order, sort string) ([]*entity.Cart, error)
	CountAll(ctx context.Context) (int64, error)
	UpsertItem(ctx context.Context, userID uuid.UUID, item entity.CartItem) (*entity.Cart, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type cartRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCartRepository(db database.PgxIface, log *zap.Logger) CartRepository {
	return &cartRepository{
		db:  db,
		log: log.With(zap.String("repository", "cart")),
	}
}

func (cr *cartRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	query := `
		SELECT id, user_id, active, modified_on
		FROM carts
		WHERE user_id = $1
	`

	var cart entity.Cart
	err := cr.db.QueryRow(ctx, query, userID).Scan(
		&cart.ID,
		&cart.UserID,
		&cart.Active,
		&cart.ModifiedOn,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		cr.log.Error("Failed to find cart by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find cart by user ID %s: %w", userID.String(), err)
	}

	items, err := cr.findItems(ctx, cart.ID)
	if err != nil {
		return nil, err
	}
	cart.Items = items

	return &cart, nil
}

// FindAll retrieves a paginated list of carts with their line items
func (cr *cartRepository) FindAll(ctx context.Context, limit, offset int, order, sort string) ([]*entity.Cart, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, active, modified_on
		FROM carts
		ORDER BY %s
		LIMIT $1 OFFSET $2
	`, orderClause(order, sort))

	rows, err := cr.db.Query(ctx, query, limit, offset)
	if err != nil {
		cr.log.Error("Failed to get all carts",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all carts limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	var carts []*entity.Cart
	for rows.Next() {
		var cart entity.Cart
		err := rows.Scan(
			&cart.ID,
			&cart.UserID,
			&cart.Active,
			&cart.ModifiedOn,
		)
		if err != nil {
			cr.log.Error("Failed to scan cart row", zap.Error(err))
			return nil, fmt.Errorf("scan cart row: %w", err)
		}
		carts = append(carts, &cart)
	}

	if err := rows.Err(); err != nil {
		cr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate carts rows: %w", err)
	}

	for _, cart := range carts {
		items, err := cr.findItems(ctx, cart.ID)
		if err != nil {
			return nil, err
		}
		cart.Items = items
	}

	return carts, nil
}

func (cr *cartRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM carts`

	var count int64
	err := cr.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		cr.log.Error("Database error counting carts", zap.Error(err))
		return 0, fmt.Errorf("count all carts: %w", err)
	}

	return count, nil
}

// UpsertItem find-or-creates the user's cart and merges the line item in one
// transaction. Both statements are conditional upserts, so concurrent
// add-to-cart calls for the same user cannot lose an update: the cart row is
// keyed by user_id and the item row by (cart_id, product_id). A repeated add
// of the same product replaces the stored quantity, it does not accumulate.
func (cr *cartRepository) UpsertItem(ctx context.Context, userID uuid.UUID, item entity.CartItem) (*entity.Cart, error) {
	tx, err := cr.db.Begin(ctx)
	if err != nil {
		cr.log.Error("Failed to begin cart transaction", zap.Error(err))
		return nil, fmt.Errorf("begin cart tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var cartID uuid.UUID
	err = tx.QueryRow(ctx, `
		INSERT INTO carts (id, user_id, active, modified_on)
		VALUES ($1, $2, TRUE, NOW())
		ON CONFLICT (user_id) DO UPDATE SET modified_on = NOW()
		RETURNING id
	`, uuid.New(), userID).Scan(&cartID)
	if err != nil {
		cr.log.Error("Failed to upsert cart",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("upsert cart for user %s: %w", userID.String(), err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO cart_items (id, cart_id, product_id, name, price, quantity)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (cart_id, product_id)
		DO UPDATE SET name = EXCLUDED.name, price = EXCLUDED.price,
		              quantity = EXCLUDED.quantity
	`, uuid.New(), cartID, item.ProductID, item.Name, item.Price, item.Quantity)
	if err != nil {
		cr.log.Error("Failed to upsert cart item",
			zap.Error(err),
			zap.String("cart_id", cartID.String()),
			zap.String("product_id", item.ProductID.String()),
		)
		return nil, fmt.Errorf("upsert item %s in cart %s: %w", item.ProductID.String(), cartID.String(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		cr.log.Error("Failed to commit cart transaction", zap.Error(err))
		return nil, fmt.Errorf("commit cart tx: %w", err)
	}

	return cr.FindByUserID(ctx, userID)
}

func (cr *cartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// cart_items go with the cart via ON DELETE CASCADE
	query := `DELETE FROM carts WHERE id = $1`

	result, err := cr.db.Exec(ctx, query, id)
	if err != nil {
		cr.log.Error("Failed to delete cart",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete cart %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrCartNotFound
	}

	cr.log.Info("Cart deleted", zap.String("id", id.String()))
	return nil
}

func (cr *cartRepository) findItems(ctx context.Context, cartID uuid.UUID) ([]entity.CartItem, error) {
	query := `
		SELECT id, cart_id, product_id, name, price, quantity
		FROM cart_items
		WHERE cart_id = $1
		ORDER BY id
	`

	rows, err := cr.db.Query(ctx, query, cartID)
	if err != nil {
		cr.log.Error("Failed to get cart items",
			zap.Error(err),
			zap.String("cart_id", cartID.String()),
		)
		return nil, fmt.Errorf("find items for cart %s: %w", cartID.String(), err)
	}
	defer rows.Close()

	var items []entity.CartItem
	for rows.Next() {
		var item entity.CartItem
		err := rows.Scan(
			&item.ID,
			&item.CartID,
			&item.ProductID,
			&item.Name,
			&item.Price,
			&item.Quantity,
		)
		if err != nil {
			cr.log.Error("Failed to scan cart item row", zap.Error(err))
			return nil, fmt.Errorf("scan cart item row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		cr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate cart items rows: %w", err)
	}

	return items, nil
}
