package services

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/CPU-commits/LMS_Backend/models"
)

func TestAuthTokenRoundTrip(t *testing.T) {
	user := &models.User{
		ID:    primitive.NewObjectID(),
		Name:  "Jane Doe",
		Email: "jane@example.com",
		Role:  models.ADMIN,
	}

	token, err := NewAuthToken(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := VerifyToken(token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims.ID)
	assert.Equal(t, user.Name, claims.Name)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, models.ADMIN, claims.UserType)
	assert.True(t, claims.IsAdmin())
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	_, err := VerifyToken("not-a-token")
	assert.Error(t, err)
}

func TestVerifyTokenRejectsTampered(t *testing.T) {
	user := &models.User{
		ID:   primitive.NewObjectID(),
		Role: models.STUDENT,
	}
	token, err := NewAuthToken(user)
	assert.NoError(t, err)

	_, err = VerifyToken(token + "x")
	assert.Error(t, err)
}

func TestNewClaimsFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, exists := NewClaimsFromContext(ctx)
	assert.False(t, exists)

	want := &Claims{
		ID:       primitive.NewObjectID().Hex(),
		UserType: models.STUDENT,
	}
	ctx.Set("user", want)

	claims, exists := NewClaimsFromContext(ctx)
	assert.True(t, exists)
	assert.Equal(t, want, claims)
	assert.False(t, claims.IsAdmin())
}
