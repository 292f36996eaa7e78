package usecase

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"shop-backend/internal/data/entity"
	"shop-backend/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory repository fakes backing the service tests. They reproduce the
// store contracts the services rely on: nil-without-error on missing rows,
// ErrEmailExists on duplicate email, replace semantics on cart upsert.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return entity.ErrEmailExists
		}
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindAll(ctx context.Context, limit, offset int, order, sort_ string) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var users []*entity.User
	for _, u := range r.users {
		clone := *u
		users = append(users, &clone)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	if offset >= len(users) {
		return nil, nil
	}
	users = users[offset:]
	if limit < len(users) {
		users = users[:limit]
	}
	return users, nil
}

func (r *fakeUserRepo) CountAll(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.users[user.ID]
	if !ok {
		return entity.ErrUserNotFound
	}
	for id, u := range r.users {
		if id != user.ID && u.Email == user.Email {
			return entity.ErrEmailExists
		}
	}
	stored.Email = user.Email
	stored.Role = user.Role
	stored.UpdatedAt = user.UpdatedAt
	return nil
}

func (r *fakeUserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return entity.ErrUserNotFound
	}
	user.PasswordHash = passwordHash
	user.UpdatedAt = time.Now()
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return entity.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[uuid.UUID]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *product
	r.products[product.ID] = &clone
	return nil
}

func (r *fakeProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	clone := *product
	return &clone, nil
}

func (r *fakeProductRepo) FindAll(ctx context.Context, limit, offset int, order, sort_ string) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var products []*entity.Product
	for _, p := range r.products {
		clone := *p
		products = append(products, &clone)
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].CreatedAt.Before(products[j].CreatedAt)
	})
	if offset >= len(products) {
		return nil, nil
	}
	products = products[offset:]
	if limit < len(products) {
		products = products[:limit]
	}
	return products, nil
}

func (r *fakeProductRepo) CountAll(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.products)), nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.products[product.ID]
	if !ok {
		return entity.ErrProductNotFound
	}
	stored.Name = product.Name
	stored.Price = product.Price
	stored.UpdatedAt = product.UpdatedAt
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return entity.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

type fakeCartRepo struct {
	mu    sync.Mutex
	carts map[uuid.UUID]*entity.Cart // keyed by user id
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: make(map[uuid.UUID]*entity.Cart)}
}

func (r *fakeCartRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cart, ok := r.carts[userID]
	if !ok {
		return nil, nil
	}
	clone := *cart
	clone.Items = append([]entity.CartItem(nil), cart.Items...)
	return &clone, nil
}

func (r *fakeCartRepo) FindAll(ctx context.Context, limit, offset int, order, sort_ string) ([]*entity.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var carts []*entity.Cart
	for _, c := range r.carts {
		clone := *c
		clone.Items = append([]entity.CartItem(nil), c.Items...)
		carts = append(carts, &clone)
	}
	sort.Slice(carts, func(i, j int) bool {
		return carts[i].ModifiedOn.Before(carts[j].ModifiedOn)
	})
	if offset >= len(carts) {
		return nil, nil
	}
	carts = carts[offset:]
	if limit < len(carts) {
		carts = carts[:limit]
	}
	return carts, nil
}

func (r *fakeCartRepo) CountAll(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.carts)), nil
}

func (r *fakeCartRepo) UpsertItem(ctx context.Context, userID uuid.UUID, item entity.CartItem) (*entity.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cart, ok := r.carts[userID]
	if !ok {
		cart = &entity.Cart{
			ID:         uuid.New(),
			UserID:     userID,
			Active:     true,
			ModifiedOn: time.Now(),
		}
		r.carts[userID] = cart
	}
	cart.ModifiedOn = time.Now()

	for i := range cart.Items {
		if cart.Items[i].ProductID == item.ProductID {
			cart.Items[i].Name = item.Name
			cart.Items[i].Price = item.Price
			cart.Items[i].Quantity = item.Quantity
			clone := *cart
			clone.Items = append([]entity.CartItem(nil), cart.Items...)
			return &clone, nil
		}
	}

	item.CartID = cart.ID
	cart.Items = append(cart.Items, item)
	clone := *cart
	clone.Items = append([]entity.CartItem(nil), cart.Items...)
	return &clone, nil
}

func (r *fakeCartRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for userID, cart := range r.carts {
		if cart.ID == id {
			delete(r.carts, userID)
			return nil
		}
	}
	return entity.ErrCartNotFound
}

type fakeResetTokenRepo struct {
	mu     sync.Mutex
	tokens map[uuid.UUID]*entity.ResetToken // keyed by user id
}

func newFakeResetTokenRepo() *fakeResetTokenRepo {
	return &fakeResetTokenRepo{tokens: make(map[uuid.UUID]*entity.ResetToken)}
}

func (r *fakeResetTokenRepo) Create(ctx context.Context, token *entity.ResetToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tokens[token.UserID]; ok {
		return nil // ON CONFLICT DO NOTHING
	}
	clone := *token
	r.tokens[token.UserID] = &clone
	return nil
}

func (r *fakeResetTokenRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.ResetToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	token, ok := r.tokens[userID]
	if !ok {
		return nil, nil
	}
	clone := *token
	return &clone, nil
}

func (r *fakeResetTokenRepo) FindByUserAndToken(ctx context.Context, userID uuid.UUID, token string) (*entity.ResetToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.tokens[userID]
	if !ok || stored.Token != token {
		return nil, nil
	}
	clone := *stored
	return &clone, nil
}

func (r *fakeResetTokenRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for userID, token := range r.tokens {
		if token.ID == id {
			delete(r.tokens, userID)
			return nil
		}
	}
	return entity.ErrInvalidResetLink
}

type sentMail struct {
	To      string
	Subject string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

func (m *fakeMailer) Send(to, subject, html string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{To: to, Subject: subject})
	return nil
}

func (m *fakeMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

func (m *fakeMailer) last() sentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sent) == 0 {
		return sentMail{}
	}
	return m.sent[len(m.sent)-1]
}

func newTestRepository() *repository.Repository {
	return &repository.Repository{
		User:       newFakeUserRepo(),
		Product:    newFakeProductRepo(),
		Cart:       newFakeCartRepo(),
		ResetToken: newFakeResetTokenRepo(),
	}
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func mustParse(t *testing.T, id string) uuid.UUID {
	t.Helper()
	parsed, err := uuid.Parse(id)
	if err != nil {
		t.Fatalf("invalid uuid %q: %v", id, err)
	}
	return parsed
}
