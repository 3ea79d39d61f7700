package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"product_catalog/internal/domain"
)

func TestCreateUser_Success(t *testing.T) {
	users := newFakeUserStore()
	r := newTestRouter(newFakeProductStore(), users)

	body := CreateUserRequest{Username: "Carol", Password: "longenough", Email: "carol@example.com"}
	w := doJSON(r, http.MethodPost, "/api/admin/users", body, adminToken(t))
	require.Equal(t, http.StatusCreated, w.Code)

	var created domain.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "carol", created.Username, "username is lowercased")
	assert.Equal(t, domain.RoleUser, created.Role, "role defaults to User")
	assert.NotContains(t, w.Body.String(), "password", "hash never serialized")

	// The stored credential is a working bcrypt hash
	stored, err := users.GetByUsername(context.Background(), "carol")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("longenough")))
}

func TestCreateUser_Duplicate(t *testing.T) {
	users := newFakeUserStore()
	r := newTestRouter(newFakeProductStore(), users)
	token := adminToken(t)

	body := CreateUserRequest{Username: "dave", Password: "longenough"}
	first := doJSON(r, http.MethodPost, "/api/admin/users", body, token)
	require.Equal(t, http.StatusCreated, first.Code)

	second := doJSON(r, http.MethodPost, "/api/admin/users", body, token)
	assert.Equal(t, http.StatusConflict, second.Code)
}

func TestCreateUser_Validation(t *testing.T) {
	r := newTestRouter(newFakeProductStore(), newFakeUserStore())
	token := adminToken(t)

	cases := map[string]CreateUserRequest{
		"numeric username":  {Username: "user1", Password: "longenough"},
		"short password":    {Username: "erin", Password: "short"},
		"overlong password": {Username: "erin", Password: "waytoolongpassword"},
		"unknown role":      {Username: "erin", Password: "longenough", Role: "Owner"},
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, "/api/admin/users", body, token)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestCreateUser_RequiresAdmin(t *testing.T) {
	r := newTestRouter(newFakeProductStore(), newFakeUserStore())
	body := CreateUserRequest{Username: "frank", Password: "longenough"}

	w := doJSON(r, http.MethodPost, "/api/admin/users", body, userToken(t))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, http.MethodPost, "/api/admin/users", body, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListUsers_Paginated(t *testing.T) {
	users := newFakeUserStore()
	seedUser(t, users, "alice", "password1", domain.RoleAdmin)
	seedUser(t, users, "bob", "password2", domain.RoleUser)
	seedUser(t, users, "carol", "password3", domain.RoleUser)
	r := newTestRouter(newFakeProductStore(), users)

	w := doJSON(r, http.MethodGet, "/api/admin/users?page=1&page_size=2", nil, adminToken(t))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Users      []domain.User `json:"users"`
		Page       int           `json:"page"`
		PageSize   int           `json:"page_size"`
		Total      int64         `json:"total"`
		TotalPages int           `json:"total_pages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Users, 2)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, int64(3), resp.Total)
	assert.Equal(t, 2, resp.TotalPages)
}
