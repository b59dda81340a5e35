package menuclient

import (
	"context"
	"io"
	"sync"
)

// Store mirrors the signed-in user and the menu. Mutations go to the server
// and the dish list is re-fetched afterwards, so the store only ever holds
// what the server returned. Failures are returned and kept as LastError.
type Store struct {
	client *Client

	mu      sync.RWMutex
	user    *User
	dishes  []Dish
	lastErr error
}

func NewStore(client *Client) *Store {
	return &Store{client: client}
}

func (s *Store) CurrentUser() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Dishes returns a deep copy of the cached menu.
func (s *Store) Dishes() []Dish {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Dish, len(s.dishes))
	for i, d := range s.dishes {
		out[i] = cloneDish(d)
	}
	return out
}

func (s *Store) Dish(id int64) (Dish, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.dishes {
		if d.ID == id {
			return cloneDish(d), true
		}
	}
	return Dish{}, false
}

func (s *Store) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// CheckAuth restores the session from the cookie jar. A 401 just means
// nobody is signed in.
func (s *Store) CheckAuth(ctx context.Context) error {
	u, err := s.client.Me(ctx)
	if err != nil {
		if IsUnauthorized(err) {
			s.setUser(nil, nil)
			return nil
		}
		return s.fail(err)
	}
	s.setUser(u, nil)
	return s.RefreshDishes(ctx)
}

func (s *Store) Login(ctx context.Context, username, password string) error {
	u, err := s.client.Login(ctx, username, password)
	if err != nil {
		return s.fail(err)
	}
	s.setUser(u, nil)
	return s.RefreshDishes(ctx)
}

func (s *Store) GuestLogin(ctx context.Context, displayName string) error {
	u, err := s.client.Guest(ctx, displayName)
	if err != nil {
		return s.fail(err)
	}
	s.setUser(u, nil)
	return s.RefreshDishes(ctx)
}

func (s *Store) Logout(ctx context.Context) error {
	if err := s.client.Logout(ctx); err != nil {
		return s.fail(err)
	}
	s.mu.Lock()
	s.user = nil
	s.dishes = nil
	s.lastErr = nil
	s.mu.Unlock()
	return nil
}

func (s *Store) UpdateDisplayName(ctx context.Context, name string) error {
	u, err := s.client.UpdateDisplayName(ctx, name)
	if err != nil {
		return s.fail(err)
	}
	s.setUser(u, nil)
	return nil
}

func (s *Store) RefreshDishes(ctx context.Context) error {
	dishes, err := s.client.ListDishes(ctx)
	if err != nil {
		return s.fail(err)
	}
	s.mu.Lock()
	s.dishes = dishes
	s.lastErr = nil
	s.mu.Unlock()
	return nil
}

func (s *Store) AddDish(ctx context.Context, in NewDish) (*Dish, error) {
	d, err := s.client.CreateDish(ctx, in)
	if err != nil {
		return nil, s.fail(err)
	}
	return d, s.RefreshDishes(ctx)
}

func (s *Store) UpdateDish(ctx context.Context, id int64, patch DishPatch) error {
	if _, err := s.client.UpdateDish(ctx, id, patch); err != nil {
		return s.fail(err)
	}
	return s.RefreshDishes(ctx)
}

func (s *Store) DeleteDish(ctx context.Context, id int64) error {
	if err := s.client.DeleteDish(ctx, id); err != nil {
		return s.fail(err)
	}
	return s.RefreshDishes(ctx)
}

func (s *Store) ToggleSelection(ctx context.Context, dishID int64) error {
	if _, err := s.client.ToggleSelection(ctx, dishID); err != nil {
		return s.fail(err)
	}
	return s.RefreshDishes(ctx)
}

func (s *Store) AddComment(ctx context.Context, dishID int64, text string) error {
	if _, err := s.client.AddComment(ctx, dishID, text); err != nil {
		return s.fail(err)
	}
	return s.RefreshDishes(ctx)
}

func (s *Store) EditComment(ctx context.Context, dishID, commentID int64, text string) error {
	if _, err := s.client.EditComment(ctx, dishID, commentID, text); err != nil {
		return s.fail(err)
	}
	return s.RefreshDishes(ctx)
}

func (s *Store) DeleteComment(ctx context.Context, dishID, commentID int64) error {
	if err := s.client.DeleteComment(ctx, dishID, commentID); err != nil {
		return s.fail(err)
	}
	return s.RefreshDishes(ctx)
}

func (s *Store) ToggleCommentLike(ctx context.Context, dishID, commentID int64) error {
	if _, err := s.client.ToggleCommentLike(ctx, dishID, commentID); err != nil {
		return s.fail(err)
	}
	return s.RefreshDishes(ctx)
}

func (s *Store) Ingredients(ctx context.Context) ([]Ingredient, error) {
	items, err := s.client.Ingredients(ctx)
	if err != nil {
		return nil, s.fail(err)
	}
	return items, nil
}

func (s *Store) AddIngredient(ctx context.Context, name string) (*Ingredient, error) {
	ing, err := s.client.AddIngredient(ctx, name)
	if err != nil {
		return nil, s.fail(err)
	}
	return ing, nil
}

func (s *Store) DeleteIngredient(ctx context.Context, id int64) error {
	if err := s.client.DeleteIngredient(ctx, id); err != nil {
		return s.fail(err)
	}
	return nil
}

// UploadImage stores an image and returns its public path for NewDish.Image.
func (s *Store) UploadImage(ctx context.Context, filename string, r io.Reader) (string, error) {
	up, err := s.client.Upload(ctx, filename, r)
	if err != nil {
		return "", s.fail(err)
	}
	return up.Path, nil
}

func cloneDish(d Dish) Dish {
	d.Ingredients = append([]string(nil), d.Ingredients...)
	d.Comments = append([]Comment(nil), d.Comments...)
	d.Selections = append([]Selection(nil), d.Selections...)
	return d
}

func (s *Store) setUser(u *User, err error) {
	s.mu.Lock()
	s.user = u
	s.lastErr = err
	s.mu.Unlock()
}

func (s *Store) fail(err error) error {
	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()
	return err
}
