package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"petstore/internal/db"
	"petstore/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// openTestDB opens a throwaway SQLite database with the full schema
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "petstore.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(conn))
	return conn
}

// asUser fakes the JWT middleware by injecting the identity directly
func asUser(userID uint, roles string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Set("roles", roles)
		c.Next()
	}
}

// doJSON performs a request with an optional JSON body against the router
func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals the recorded response body into out
func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// seedStore creates a buyer with an address and one available pet, returning
// everything a checkout flow needs
func seedStore(t *testing.T, conn *gorm.DB) (*domain.User, *domain.Pet, *domain.Address) {
	t.Helper()
	buyer := domain.User{Email: "buyer@example.com", Password: "x", Roles: domain.RoleUser}
	require.NoError(t, conn.Create(&buyer).Error)
	category := domain.Category{Name: "Dogs"}
	require.NoError(t, conn.Create(&category).Error)
	pet := domain.Pet{
		Name:       "Rex",
		Price:      decimal.RequireFromString("100.00"),
		Status:     domain.PetAvailable,
		CategoryID: category.ID,
	}
	require.NoError(t, conn.Create(&pet).Error)
	address := domain.Address{
		UserID:     buyer.ID,
		FullName:   "Jordan Buyer",
		Street:     "1 Main St",
		City:       "Springfield",
		PostalCode: "12345",
		Country:    "US",
	}
	require.NoError(t, conn.Create(&address).Error)
	return &buyer, &pet, &address
}
