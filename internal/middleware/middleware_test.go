package middleware

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"petstore/internal/db"
	"petstore/internal/domain"
	"petstore/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "petstore.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(conn))
	return conn
}

// protectedRouter guards /ping with the JWT middleware and a role check
func protectedRouter(conn *gorm.DB, secret string, roles ...string) *gin.Engine {
	r := gin.New()
	g := r.Group("/", JWTAuthMiddleware(secret))
	if len(roles) > 0 {
		g.Use(RequireRoles(conn, roles...))
	}
	g.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": c.GetUint("userID")})
	})
	return r
}

func get(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMiddleware(t *testing.T) {
	conn := openTestDB(t)
	r := protectedRouter(conn, "test-secret")

	// No header
	assert.Equal(t, http.StatusUnauthorized, get(r, "").Code)

	// Garbage token
	assert.Equal(t, http.StatusUnauthorized, get(r, "not-a-token").Code)

	// Token signed with the wrong secret
	wrong, err := utils.GenerateJWT(1, domain.RoleUser, "other-secret")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, get(r, wrong).Code)

	// Valid token
	token, err := utils.GenerateJWT(1, domain.RoleUser, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, get(r, token).Code)
}

func TestRequireRolesReadsCurrentRoles(t *testing.T) {
	conn := openTestDB(t)
	user := domain.User{Email: "alice@example.com", Password: "x", Roles: domain.RoleUser}
	require.NoError(t, conn.Create(&user).Error)
	r := protectedRouter(conn, "test-secret", domain.RoleAdmin)

	token, err := utils.GenerateJWT(user.ID, user.Roles, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, get(r, token).Code)

	// Role checks hit the database, so a promotion takes effect without a
	// fresh token
	require.NoError(t, conn.Model(&user).Update("roles", "USER,ADMIN").Error)
	assert.Equal(t, http.StatusOK, get(r, token).Code)

	// Deleted users are rejected even with a valid token
	require.NoError(t, conn.Delete(&user).Error)
	assert.Equal(t, http.StatusForbidden, get(r, token).Code)
}
