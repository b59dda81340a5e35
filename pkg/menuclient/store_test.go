package menuclient_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"familykitchen/internal/app"
	"familykitchen/internal/config"
	"familykitchen/internal/seed"
	"familykitchen/internal/testutil"
	"familykitchen/pkg/menuclient"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewTestDB(t)
	require.NoError(t, seed.Run(context.Background(), db, seed.Options{PasswordCost: bcrypt.MinCost}))

	srv := httptest.NewServer(app.NewRouter(db, &config.Config{
		JWTSecret:      "test-secret",
		SessionTTL:     time.Hour,
		CookieSameSite: "Lax",
		CookiePath:     "/",
		UploadDir:      t.TempDir(),
		UploadURLBase:  "/uploads",
		UploadMaxBytes: 1 << 20,
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newStore(t *testing.T, srv *httptest.Server) *menuclient.Store {
	t.Helper()
	client, err := menuclient.New(srv.URL, menuclient.WithHTTPClient(srv.Client()))
	require.NoError(t, err)
	return menuclient.NewStore(client)
}

func TestStore_CheckAuthWithoutSession(t *testing.T) {
	store := newStore(t, newServer(t))

	require.NoError(t, store.CheckAuth(context.Background()))
	assert.Nil(t, store.CurrentUser())
	assert.Empty(t, store.Dishes())
	assert.NoError(t, store.LastError())
}

func TestStore_LoginRefreshesMenu(t *testing.T) {
	srv := newServer(t)
	store := newStore(t, srv)
	ctx := context.Background()

	err := store.Login(ctx, "you", "wrong")
	var apiErr *menuclient.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "INVALID_CREDENTIALS", apiErr.Code)
	assert.Equal(t, err, store.LastError())

	require.NoError(t, store.Login(ctx, "you", seed.DefaultPassword))
	assert.Equal(t, "You", store.CurrentUser().Name())
	assert.Len(t, store.Dishes(), 11)
	assert.NoError(t, store.LastError())

	again := newStore(t, srv)
	require.NoError(t, again.CheckAuth(ctx))
	assert.Nil(t, again.CurrentUser())
}

func TestStore_MutationsReflectServerState(t *testing.T) {
	store := newStore(t, newServer(t))
	ctx := context.Background()
	require.NoError(t, store.Login(ctx, "admin", seed.DefaultPassword))
	me := store.CurrentUser()

	img, err := store.UploadImage(ctx, "tofu.png", bytes.NewReader([]byte("\x89PNG\r\n\x1a\n0000")))
	require.NoError(t, err)

	created, err := store.AddDish(ctx, menuclient.NewDish{
		Name:        "Mapo Tofu Deluxe",
		Category:    "vegetable",
		Ingredients: []string{"Tofu", "Chili"},
		Image:       img,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, store.Dishes()[0].ID)
	assert.Equal(t, img, store.Dishes()[0].Image)

	require.NoError(t, store.ToggleSelection(ctx, created.ID))
	d, ok := store.Dish(created.ID)
	require.True(t, ok)
	assert.True(t, d.SelectedBy(me.ID))

	require.NoError(t, store.AddComment(ctx, created.ID, "Great!"))
	d, _ = store.Dish(created.ID)
	require.Len(t, d.Comments, 1)
	commentID := d.Comments[0].ID

	require.NoError(t, store.ToggleCommentLike(ctx, created.ID, commentID))
	d, _ = store.Dish(created.ID)
	assert.EqualValues(t, 1, d.Comments[0].Likes)

	require.NoError(t, store.EditComment(ctx, created.ID, commentID, "Even better"))
	d, _ = store.Dish(created.ID)
	assert.Equal(t, "Even better", d.Comments[0].Text)

	off := false
	require.NoError(t, store.UpdateDish(ctx, created.ID, menuclient.DishPatch{Available: &off}))
	d, _ = store.Dish(created.ID)
	assert.False(t, d.Available)

	require.NoError(t, store.DeleteComment(ctx, created.ID, commentID))
	d, _ = store.Dish(created.ID)
	assert.Empty(t, d.Comments)

	require.NoError(t, store.DeleteDish(ctx, created.ID))
	_, ok = store.Dish(created.ID)
	assert.False(t, ok)

	ing, err := store.AddIngredient(ctx, "Doubanjiang")
	require.NoError(t, err)
	items, err := store.Ingredients(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Doubanjiang", items[0].Name)
	require.NoError(t, store.DeleteIngredient(ctx, ing.ID))

	require.NoError(t, store.Logout(ctx))
	assert.Nil(t, store.CurrentUser())
	assert.Empty(t, store.Dishes())
}

func TestStore_GuestErrorsSurface(t *testing.T) {
	store := newStore(t, newServer(t))
	ctx := context.Background()

	require.NoError(t, store.GuestLogin(ctx, ""))
	assert.Equal(t, "Guest", store.CurrentUser().Name())
	assert.True(t, store.CurrentUser().IsGuest)

	_, err := store.AddDish(ctx, menuclient.NewDish{Name: "Toast", Category: "staple", Ingredients: []string{"Bread"}})
	var apiErr *menuclient.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Equal(t, err, store.LastError())
	assert.Len(t, store.Dishes(), 11)

	require.NoError(t, store.RefreshDishes(ctx))
	assert.NoError(t, store.LastError())

	require.NoError(t, store.UpdateDisplayName(ctx, "Cousin"))
	assert.Equal(t, "Cousin", store.CurrentUser().Name())
}

func TestStore_ReadsDoNotAliasCache(t *testing.T) {
	store := newStore(t, newServer(t))
	ctx := context.Background()
	require.NoError(t, store.Login(ctx, "you", seed.DefaultPassword))

	var id int64
	for _, d := range store.Dishes() {
		if len(d.Comments) > 0 {
			id = d.ID
			break
		}
	}
	require.NotZero(t, id)
	before, _ := store.Dish(id)

	list := store.Dishes()
	for i := range list {
		if list[i].ID != id {
			continue
		}
		list[i].Ingredients[0] = "changed"
		list[i].Comments[0].Text = "changed"
		list[i].Selections = append(list[i].Selections, menuclient.Selection{UserID: 99})
	}
	one, _ := store.Dish(id)
	one.Ingredients[0] = "changed again"
	one.Comments[0].Likes = 42

	after, ok := store.Dish(id)
	require.True(t, ok)
	assert.Equal(t, before, after)
}
