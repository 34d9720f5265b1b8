package server

import (
	"fmt"
	"log"
	"net/http"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/secure"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/CPU-commits/LMS_Backend/controllers"
	"github.com/CPU-commits/LMS_Backend/middlewares"
	"github.com/CPU-commits/LMS_Backend/models"
	"github.com/CPU-commits/LMS_Backend/res"
	"github.com/CPU-commits/LMS_Backend/settings"
)

var settingsData = settings.GetSettings()

func keyFunc(c *gin.Context) string {
	return c.ClientIP()
}

func ErrorHandler(c *gin.Context, info ratelimit.Info) {
	c.JSON(http.StatusTooManyRequests, &res.Response{
		Success: false,
		Message: "Too many requests. Try again in " + time.Until(info.ResetTime).String(),
	})
}

func Init() {
	router := gin.New()
	// Proxies
	router.SetTrustedProxies([]string{"localhost"})
	// Zap logger
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
	router.Use(ginzap.GinzapWithConfig(logger, &ginzap.Config{
		TimeFormat: time.RFC3339,
		UTC:        true,
		SkipPaths:  []string{"/api/swagger"},
	}))
	router.Use(ginzap.RecoveryWithZap(logger, true))

	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		if err, ok := recovered.(string); ok {
			c.String(http.StatusInternalServerError, fmt.Sprintf("Server Internal Error: %s", err))
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, res.Response{
			Success: false,
			Message: "Server Internal Error",
		})
	}))
	// CORS
	httpOrigin := "http://" + settingsData.CLIENT_URL
	httpsOrigin := "https://" + settingsData.CLIENT_URL
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{httpOrigin, httpsOrigin},
		AllowMethods:     []string{"GET", "OPTIONS", "PUT", "DELETE", "POST"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
		AllowWebSockets:  false,
		MaxAge:           12 * time.Hour,
	}))
	// Secure
	sslUrl := "ssl." + settingsData.CLIENT_URL
	secureConfig := secure.Config{
		SSLHost:              sslUrl,
		STSSeconds:           315360000,
		STSIncludeSubdomains: true,
		FrameDeny:            true,
		ContentTypeNosniff:   true,
		BrowserXssFilter:     true,
		IENoOpen:             true,
		ReferrerPolicy:       "strict-origin-when-cross-origin",
		SSLProxyHeaders: map[string]string{
			"X-Fowarded-Proto": "https",
		},
	}
	router.Use(secure.New(secureConfig))
	// Rate limit
	store := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Second,
		Limit: 7,
	})
	mw := ratelimit.RateLimiter(store, &ratelimit.Options{
		ErrorHandler: ErrorHandler,
		KeyFunc:      keyFunc,
	})
	router.Use(mw)
	// Validators
	InitValidators()
	// Collections
	if err := models.SetUpCollections(); err != nil {
		log.Fatalf("Error setting up collections: %v", err)
	}
	// Routes
	adminRol := []string{models.ADMIN}
	auth := router.Group("/api/auth")
	courses := router.Group("/api/courses")
	progress := router.Group(
		"/api/progress",
		middlewares.JWTMiddleware(),
	)
	analytics := router.Group(
		"/api/analytics",
		middlewares.JWTMiddleware(),
		middlewares.RolesMiddleware(adminRol),
	)
	{
		// Init controllers
		authController := new(controllers.AuthController)
		coursesController := new(controllers.CoursesController)
		progressController := new(controllers.ProgressController)
		analyticsController := new(controllers.AnalyticsController)
		// Define routes
		// Auth
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.GET("/me", middlewares.JWTMiddleware(), authController.GetMe)
		auth.PUT("/profile", middlewares.JWTMiddleware(), authController.UpdateProfile)
		// Courses
		courses.GET("", coursesController.GetCourses)
		courses.GET("/:idCourse", coursesController.GetCourse)
		courses.POST(
			"",
			middlewares.JWTMiddleware(),
			middlewares.RolesMiddleware(adminRol),
			coursesController.NewCourse,
		)
		courses.PUT(
			"/:idCourse",
			middlewares.JWTMiddleware(),
			middlewares.RolesMiddleware(adminRol),
			coursesController.UpdateCourse,
		)
		courses.DELETE(
			"/:idCourse",
			middlewares.JWTMiddleware(),
			middlewares.RolesMiddleware(adminRol),
			coursesController.DeleteCourse,
		)
		courses.POST(
			"/:idCourse/enroll",
			middlewares.JWTMiddleware(),
			coursesController.Enroll,
		)
		// Progress
		progress.GET("", progressController.GetProgress)
		progress.GET("/:idCourse", progressController.GetCourseProgress)
		progress.PUT("/:idCourse", progressController.UpdateProgress)
		// Analytics
		analytics.GET("", analyticsController.GetAnalytics)
		analytics.GET("/export", analyticsController.ExportAnalytics)
	}
	// Route docs
	router.GET("/api/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	// Route healthz
	router.GET("/api/health", func(ctx *gin.Context) {
		ctx.JSON(200, &res.Response{
			Success: true,
			Message: "LMS API is running",
		})
	})
	// No route
	router.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(404, res.Response{
			Success: false,
			Message: "Not found",
		})
	})
	// Init server
	if err := router.Run(); err != nil {
		log.Fatalf("Error init server")
	}
}
