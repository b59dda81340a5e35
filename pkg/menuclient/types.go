package menuclient

import "time"

type User struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name,omitempty"`
	IsGuest     bool      `json:"is_guest"`
	CreatedAt   time.Time `json:"created_at"`
}

// Name is what the server records next to the user's comments and selections.
func (u *User) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}

type Dish struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Image       string      `json:"image"`
	Category    string      `json:"category"`
	Ingredients []string    `json:"ingredients"`
	Available   bool        `json:"available"`
	Selected    bool        `json:"selected"`
	CreatedBy   int64       `json:"created_by"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
	Comments    []Comment   `json:"comments"`
	Selections  []Selection `json:"selections"`
}

// SelectedBy reports whether userID has selected the dish.
func (d *Dish) SelectedBy(userID int64) bool {
	for _, s := range d.Selections {
		if s.UserID == userID {
			return true
		}
	}
	return false
}

type Comment struct {
	ID         int64     `json:"id"`
	DishID     int64     `json:"dish_id"`
	UserID     int64     `json:"user_id"`
	MemberName string    `json:"member_name"`
	Text       string    `json:"text"`
	Likes      int64     `json:"likes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Selection struct {
	ID         int64     `json:"id"`
	DishID     int64     `json:"dish_id"`
	UserID     int64     `json:"user_id"`
	MemberName string    `json:"member_name"`
	CreatedAt  time.Time `json:"created_at"`
}

type Ingredient struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Upload struct {
	ID       string `json:"id"`
	Path     string `json:"path"`
	URL      string `json:"url"`
	MimeType string `json:"mime_type"`
	Size     int64  `json:"size"`
}

type NewDish struct {
	Name        string   `json:"name"`
	Image       string   `json:"image,omitempty"`
	Category    string   `json:"category"`
	Ingredients []string `json:"ingredients"`
	Available   *bool    `json:"available,omitempty"`
}

// DishPatch changes only the non-nil fields.
type DishPatch struct {
	Name        *string   `json:"name,omitempty"`
	Image       *string   `json:"image,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Ingredients *[]string `json:"ingredients,omitempty"`
	Available   *bool     `json:"available,omitempty"`
	Selected    *bool     `json:"selected,omitempty"`
}

type LikeResult struct {
	Liked bool  `json:"liked"`
	Likes int64 `json:"likes"`
}
