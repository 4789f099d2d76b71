package repository_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"music-storefront/internal/domain"
	"music-storefront/internal/repository"
	"music-storefront/internal/shopapi"
)

// fakeShop routes "METHOD /path" to canned handlers.
type fakeShop map[string]http.HandlerFunc

func newRepos(t *testing.T, routes fakeShop) *repository.Repositories {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler, ok := routes[r.Method+" "+r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"detail": "Not Found"}`))
			return
		}
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	api, err := shopapi.NewClient(shopapi.Options{BaseURL: server.URL, RetryWaitMin: time.Millisecond, RetryWaitMax: time.Millisecond}, nil)
	require.NoError(t, err)

	sessions := repository.NewSessionRepository(repository.NewMemoryCache(time.Minute))
	return repository.NewRepositories(api, sessions)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func TestCommentRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Should list flat comments with parent ids", func(t *testing.T) {
		repos := newRepos(t, fakeShop{
			"GET /products/5/comments": func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`[
					{"id": 1, "product_id": 5, "user_id": 2, "content": "root", "parent_id": null},
					{"id": 2, "product_id": 5, "user_id": 3, "content": "reply", "parent_id": 1}
				]`))
			},
		})

		comments, err := repos.Comment.ListByProduct(ctx, "5")
		require.NoError(t, err)
		require.Len(t, comments, 2)
		assert.Nil(t, comments[0].ParentID)
		require.NotNil(t, comments[1].ParentID)
		assert.Equal(t, domain.ID("1"), *comments[1].ParentID)
	})

	t.Run("Should route replies to the reply endpoint", func(t *testing.T) {
		var body map[string]any
		repos := newRepos(t, fakeShop{
			"POST /products/5/comments/reply": func(w http.ResponseWriter, r *http.Request) {
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				writeJSON(w, map[string]any{"id": 9, "product_id": 5, "user_id": 2, "content": "hi", "parent_id": 1})
			},
		})

		parent := domain.ID("1")
		comment := &domain.Comment{ProductID: "5", UserID: "2", Content: "hi", ParentID: &parent}
		require.NoError(t, repos.Comment.Create(ctx, "token", comment))

		assert.Equal(t, domain.ID("9"), comment.ID)
		assert.Equal(t, float64(1), body["parent_id"])
		assert.Equal(t, float64(5), body["product_id"])
	})

	t.Run("Should post root comments without parent", func(t *testing.T) {
		repos := newRepos(t, fakeShop{
			"POST /products/5/comments": func(w http.ResponseWriter, r *http.Request) {
				var body map[string]any
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				_, hasParent := body["parent_id"]
				assert.False(t, hasParent)
				writeJSON(w, map[string]any{"id": 10, "product_id": 5, "content": "top"})
			},
		})

		comment := &domain.Comment{ProductID: "5", UserID: "2", Content: "top"}
		require.NoError(t, repos.Comment.Create(ctx, "token", comment))
		assert.Equal(t, domain.ID("10"), comment.ID)
	})

	t.Run("Should return nil when a vote toggles off", func(t *testing.T) {
		repos := newRepos(t, fakeShop{
			"POST /products/comments/3/rating": func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`null`))
			},
		})

		vote, err := repos.Comment.Vote(ctx, "token", "3", 1)
		require.NoError(t, err)
		assert.Nil(t, vote)
	})
}

func TestOrderRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Should treat a missing cart as empty", func(t *testing.T) {
		repos := newRepos(t, fakeShop{})

		order, err := repos.Order.GetCart(ctx, "token")
		require.NoError(t, err)
		assert.Nil(t, order)
	})

	t.Run("Should send selected item ids on checkout", func(t *testing.T) {
		repos := newRepos(t, fakeShop{
			"POST /order/me/checkout": func(w http.ResponseWriter, r *http.Request) {
				var body struct {
					ItemIDs []int `json:"items_ids"`
				}
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, []int{4, 6}, body.ItemIDs)
				writeJSON(w, map[string]any{"success": true, "new_order_id": 12, "message": "ok"})
			},
		})

		result, err := repos.Order.Checkout(ctx, "token", []domain.ID{"4", "6"})
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, domain.ID("12"), result.NewOrderID)
	})
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Should log in with the password form", func(t *testing.T) {
		repos := newRepos(t, fakeShop{
			"POST /login": func(w http.ResponseWriter, r *http.Request) {
				require.NoError(t, r.ParseForm())
				assert.Equal(t, "buyer@shop.test", r.PostForm.Get("username"))
				assert.Equal(t, "pa55word", r.PostForm.Get("password"))
				writeJSON(w, map[string]any{"access_token": "abc", "token_type": "bearer"})
			},
		})

		token, err := repos.User.Login(ctx, "buyer@shop.test", "pa55word")
		require.NoError(t, err)
		assert.Equal(t, "abc", token.AccessToken)
	})

	t.Run("Should pass bad credentials through as an api error", func(t *testing.T) {
		repos := newRepos(t, fakeShop{
			"POST /login": func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				writeJSON(w, map[string]any{"detail": "Incorrect username or password"})
			},
		})

		_, err := repos.User.Login(ctx, "buyer@shop.test", "wrong")
		assert.True(t, shopapi.IsUnauthorized(err))
	})
}

func TestCategoryRepository(t *testing.T) {
	repos := newRepos(t, fakeShop{
		"GET /admin/categories/2/products": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"products": [{"id": 1, "title": "Drum"}]}`))
		},
	})

	products, err := repos.Category.ListProducts(context.Background(), "2")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Drum", products[0].Title)
}

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()
	sessions := repository.NewSessionRepository(repository.NewMemoryCache(time.Minute))

	t.Run("Should store and load a session", func(t *testing.T) {
		session := &domain.Session{
			ID:          "s1",
			AccessToken: "abc",
			User:        domain.User{ID: "7", Name: "Ann"},
			CreatedAt:   time.Now(),
			ExpiresAt:   time.Now().Add(time.Hour),
		}
		require.NoError(t, sessions.Create(ctx, session))

		loaded, err := sessions.Get(ctx, "s1")
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Equal(t, "abc", loaded.AccessToken)
		assert.Equal(t, domain.ID("7"), loaded.User.ID)
	})

	t.Run("Should forget deleted sessions", func(t *testing.T) {
		require.NoError(t, sessions.Delete(ctx, "s1"))

		loaded, err := sessions.Get(ctx, "s1")
		require.NoError(t, err)
		assert.Nil(t, loaded)
	})

	t.Run("Should refuse already expired sessions", func(t *testing.T) {
		err := sessions.Create(ctx, &domain.Session{ID: "s2", ExpiresAt: time.Now().Add(-time.Second)})
		assert.ErrorIs(t, err, domain.ErrSessionExpired)
	})
}
