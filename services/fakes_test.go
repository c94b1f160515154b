package services

import (
	"context"
	"os"
	"testing"
	"time"

	"pizza-shop/config"
	"pizza-shop/models"
)

func TestMain(m *testing.M) {
	config.AppConfig = &config.Config{
		JWTSecret:       "test-secret",
		AccessTokenTTL:  30 * time.Minute,
		RefreshTokenTTL: 30 * time.Minute,
	}
	os.Exit(m.Run())
}

// In-memory credential store used in place of the pgx repository.
type fakeUserRepo struct {
	users  map[int]*models.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int]*models.User{}, nextID: 1}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id int) (*models.User, error) {
	if user, ok := r.users[id]; ok {
		found := *user
		return &found, nil
	}
	return nil, models.ErrNotFound
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			found := *user
			return &found, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			found := *user
			return &found, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *fakeUserRepo) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	for _, user := range r.users {
		if user.Username == username || user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// In-memory order store used in place of the pgx repository.
type fakeOrderRepo struct {
	orders map[int]*models.Order
	nextID int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[int]*models.Order{}, nextID: 1}
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *models.Order) error {
	order.ID = r.nextID
	r.nextID++
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now
	stored := *order
	r.orders[order.ID] = &stored
	return nil
}

func (r *fakeOrderRepo) FindByID(ctx context.Context, id int) (*models.Order, error) {
	if order, ok := r.orders[id]; ok {
		found := *order
		return &found, nil
	}
	return nil, models.ErrNotFound
}

func (r *fakeOrderRepo) FindAll(ctx context.Context) ([]models.Order, error) {
	orders := []models.Order{}
	for id := 1; id < r.nextID; id++ {
		if order, ok := r.orders[id]; ok {
			orders = append(orders, *order)
		}
	}
	return orders, nil
}

func (r *fakeOrderRepo) FindAllByUser(ctx context.Context, userID int) ([]models.Order, error) {
	orders := []models.Order{}
	for id := 1; id < r.nextID; id++ {
		if order, ok := r.orders[id]; ok && order.UserID == userID {
			orders = append(orders, *order)
		}
	}
	return orders, nil
}

func (r *fakeOrderRepo) FindByIDAndUser(ctx context.Context, id, userID int) (*models.Order, error) {
	if order, ok := r.orders[id]; ok && order.UserID == userID {
		found := *order
		return &found, nil
	}
	return nil, models.ErrNotFound
}

func (r *fakeOrderRepo) Update(ctx context.Context, order *models.Order) error {
	if _, ok := r.orders[order.ID]; !ok {
		return models.ErrNotFound
	}
	order.UpdatedAt = time.Now()
	stored := *order
	r.orders[order.ID] = &stored
	return nil
}

func (r *fakeOrderRepo) Delete(ctx context.Context, id int) error {
	if _, ok := r.orders[id]; !ok {
		return models.ErrNotFound
	}
	delete(r.orders, id)
	return nil
}
