package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"product_catalog/internal/domain"
	"product_catalog/internal/middleware"
	"product_catalog/internal/store"
	"product_catalog/internal/utils"
)

const testSecret = "test-secret"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logrus.SetOutput(io.Discard)
	os.Exit(m.Run())
}

// fakeProductStore is an in-memory ProductStore.
type fakeProductStore struct {
	products map[uint]domain.Product
	nextID   uint
	err      error // when set, every method fails with it
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{products: make(map[uint]domain.Product)}
}

func (s *fakeProductStore) List(_ context.Context) ([]domain.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	list := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		list = append(list, p)
	}
	return list, nil
}

func (s *fakeProductStore) GetByID(_ context.Context, id uint) (*domain.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	p, ok := s.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (s *fakeProductStore) Create(_ context.Context, p *domain.Product) error {
	if s.err != nil {
		return s.err
	}
	s.nextID++
	p.ID = s.nextID
	s.products[p.ID] = *p
	return nil
}

func (s *fakeProductStore) Update(_ context.Context, p *domain.Product) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	s.products[p.ID] = *p
	return nil
}

func (s *fakeProductStore) Delete(_ context.Context, id uint) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.products, id)
	return nil
}

// fakeUserStore is an in-memory UserStore.
type fakeUserStore struct {
	users  map[string]domain.User
	nextID uint
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]domain.User)}
}

func (s *fakeUserStore) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := s.users[username]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (s *fakeUserStore) Create(_ context.Context, u *domain.User) error {
	if _, ok := s.users[u.Username]; ok {
		return domain.ErrDuplicate
	}
	s.nextID++
	u.ID = s.nextID
	s.users[u.Username] = *u
	return nil
}

func (s *fakeUserStore) List(_ context.Context, offset, limit int) ([]domain.User, int64, error) {
	all := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		all = append(all, u)
	}
	total := int64(len(all))
	if offset >= len(all) {
		return []domain.User{}, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

// newTestRouter wires the handlers the same way cmd/server does, with the
// redis client nil so caching is disabled.
func newTestRouter(products store.ProductStore, users store.UserStore) *gin.Engine {
	r := gin.New()
	r.GET("/health", HealthHandler())
	r.POST("/api/auth/login", LoginHandler(users, testSecret, time.Hour))

	pg := r.Group("/api/products")
	pg.GET("", ListProductsHandler(products, nil))
	pg.GET("/:id", GetProductHandler(products, nil))

	ap := pg.Group("", middleware.JWTAuthMiddleware(testSecret), middleware.RequireRole(domain.RoleAdmin))
	ap.POST("", CreateProductHandler(products, nil))
	ap.PUT("/:id", UpdateProductHandler(products, nil))
	ap.DELETE("/:id", DeleteProductHandler(products, nil))

	ag := r.Group("/api/admin", middleware.JWTAuthMiddleware(testSecret), middleware.RequireRole(domain.RoleAdmin))
	ag.GET("/users", ListUsersHandler(users, nil))
	ag.POST("/users", CreateUserHandler(users, nil))
	return r
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateJWT(1, "root", "root@example.com", domain.RoleAdmin, testSecret, time.Hour)
	require.NoError(t, err)
	return token
}

func userToken(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateJWT(2, "plain", "plain@example.com", domain.RoleUser, testSecret, time.Hour)
	require.NoError(t, err)
	return token
}

func TestHealthHandler(t *testing.T) {
	r := newTestRouter(newFakeProductStore(), newFakeUserStore())
	w := doJSON(r, http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "ok", w.Body.String())
}
