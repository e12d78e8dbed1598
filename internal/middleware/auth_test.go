// internal/middleware/auth_test.go
package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/openshop/storefront-backend/internal/models"
	"github.com/openshop/storefront-backend/internal/repository"
	"github.com/openshop/storefront-backend/internal/utils"
)

type stubResolver map[primitive.ObjectID]*models.User

func (r stubResolver) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	if u, ok := r[id]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func authTestRouter(users stubResolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", AuthRequired(users), func(c *gin.Context) {
		user, _ := utils.GetUserFromContext(c)
		c.JSON(http.StatusOK, gin.H{"name": user.Name})
	})
	r.GET("/admin", AuthRequired(users), AdminRequired(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func request(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequired(t *testing.T) {
	utils.SetJWTSecret("test-secret")
	user := &models.User{ID: models.NewID(), Name: "Alice", Role: models.UserRoleCustomer}
	r := authTestRouter(stubResolver{user.ID: user})

	token, err := utils.GenerateToken(user.ID.Hex(), 1)
	require.NoError(t, err)

	w := request(r, "/me", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Alice")
}

func TestAuthRequiredMissingHeader(t *testing.T) {
	r := authTestRouter(stubResolver{})

	w := request(r, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredBadToken(t *testing.T) {
	utils.SetJWTSecret("test-secret")
	r := authTestRouter(stubResolver{})

	w := request(r, "/me", "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredUnknownUser(t *testing.T) {
	utils.SetJWTSecret("test-secret")
	r := authTestRouter(stubResolver{})

	token, err := utils.GenerateToken(models.NewID().Hex(), 1)
	require.NoError(t, err)

	w := request(r, "/me", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRequired(t *testing.T) {
	utils.SetJWTSecret("test-secret")
	customer := &models.User{ID: models.NewID(), Name: "Alice", Role: models.UserRoleCustomer}
	admin := &models.User{ID: models.NewID(), Name: "Root", Role: models.UserRoleAdmin}
	r := authTestRouter(stubResolver{customer.ID: customer, admin.ID: admin})

	customerToken, err := utils.GenerateToken(customer.ID.Hex(), 1)
	require.NoError(t, err)
	adminToken, err := utils.GenerateToken(admin.ID.Hex(), 1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, request(r, "/admin", customerToken).Code)
	assert.Equal(t, http.StatusOK, request(r, "/admin", adminToken).Code)
}
