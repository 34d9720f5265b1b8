package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/CPU-commits/LMS_Backend/res"
	"github.com/CPU-commits/LMS_Backend/services"
)

func JWTMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authorization := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(authorization, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, &res.Response{
				Success: false,
				Message: "Unauthorized",
			})
			return
		}
		token := strings.TrimPrefix(authorization, "Bearer ")

		claims, err := services.VerifyToken(token)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, &res.Response{
				Success: false,
				Message: "Unauthorized",
			})
			return
		}
		ctx.Set("user", claims)
		ctx.Next()
	}
}
