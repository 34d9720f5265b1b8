package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CPU-commits/LMS_Backend/funct"
	"github.com/CPU-commits/LMS_Backend/res"
	"github.com/CPU-commits/LMS_Backend/services"
)

func RolesMiddleware(roles []string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, exists := services.NewClaimsFromContext(ctx)
		if !exists {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, &res.Response{
				Success: false,
				Message: "Unauthorized",
			})
			return
		}
		authorized := funct.Some(roles, func(role string) bool {
			return role == claims.UserType
		})
		if !authorized {
			ctx.AbortWithStatusJSON(http.StatusForbidden, &res.Response{
				Success: false,
				Message: "Forbidden role",
			})
			return
		}
		ctx.Next()
	}
}
