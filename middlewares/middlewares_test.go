package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/CPU-commits/LMS_Backend/models"
	"github.com/CPU-commits/LMS_Backend/services"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func okHandler(ctx *gin.Context) {
	ctx.JSON(200, gin.H{"ok": true})
}

func setClaims(claims *services.Claims) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set("user", claims)
		ctx.Next()
	}
}

func TestJWTMiddlewareNoHeader(t *testing.T) {
	router := newRouter()
	router.GET("/", JWTMiddleware(), okHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTMiddlewareBadToken(t *testing.T) {
	router := newRouter()
	router.GET("/", JWTMiddleware(), okHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTMiddlewareValidToken(t *testing.T) {
	user := &models.User{
		ID:   primitive.NewObjectID(),
		Name: "Jane Doe",
		Role: models.STUDENT,
	}
	token, err := services.NewAuthToken(user)
	assert.NoError(t, err)

	router := newRouter()
	router.GET("/", JWTMiddleware(), func(ctx *gin.Context) {
		claims, exists := services.NewClaimsFromContext(ctx)
		assert.True(t, exists)
		assert.Equal(t, user.ID.Hex(), claims.ID)
		okHandler(ctx)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRolesMiddleware(t *testing.T) {
	adminOnly := []string{models.ADMIN}

	testCases := []struct {
		name     string
		claims   *services.Claims
		wantCode int
	}{
		{"no claims", nil, http.StatusUnauthorized},
		{"student is forbidden", &services.Claims{ID: "x", UserType: models.STUDENT}, http.StatusForbidden},
		{"admin passes", &services.Claims{ID: "x", UserType: models.ADMIN}, http.StatusOK},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := newRouter()
			if tc.claims != nil {
				router.GET("/", setClaims(tc.claims), RolesMiddleware(adminOnly), okHandler)
			} else {
				router.GET("/", RolesMiddleware(adminOnly), okHandler)
			}

			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.wantCode, w.Code)
		})
	}
}
