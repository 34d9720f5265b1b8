package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CPU-commits/LMS_Backend/forms"
	"github.com/CPU-commits/LMS_Backend/res"
	"github.com/CPU-commits/LMS_Backend/services"
)

// Services
var authService = services.NewAuthService()

type AuthController struct{}

// Register godoc
// @Summary Register a new user
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   user body     forms.RegisterForm true "User data"
// @Success 201  {object} res.Response{body=services.AuthRes}
// @Failure 400  {object} res.Response{} "Bad body"
// @Failure 409  {object} res.Response{} "Email taken"
// @Router  /api/auth/register [post]
func (auth *AuthController) Register(c *gin.Context) {
	var register *forms.RegisterForm
	if err := c.BindJSON(&register); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	authRes, errRes := authService.Register(register)
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	// Response
	response := make(map[string]interface{})
	response["token"] = authRes.Token
	response["user"] = authRes.User
	c.JSON(http.StatusCreated, &res.Response{
		Success: true,
		Data:    response,
	})
}

// Login godoc
// @Summary Log in with email and password
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   credentials body     forms.LoginForm true "Credentials"
// @Success 200         {object} res.Response{body=services.AuthRes}
// @Failure 401         {object} res.Response{} "Bad credentials"
// @Router  /api/auth/login [post]
func (auth *AuthController) Login(c *gin.Context) {
	var login *forms.LoginForm
	if err := c.BindJSON(&login); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	authRes, errRes := authService.Login(login)
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	// Response
	response := make(map[string]interface{})
	response["token"] = authRes.Token
	response["user"] = authRes.User
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

func (auth *AuthController) GetMe(c *gin.Context) {
	claims, _ := services.NewClaimsFromContext(c)

	user, errRes := authService.GetMe(claims)
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	// Response
	response := make(map[string]interface{})
	response["user"] = user
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

func (auth *AuthController) UpdateProfile(c *gin.Context) {
	claims, _ := services.NewClaimsFromContext(c)

	var profile *forms.ProfileForm
	if err := c.BindJSON(&profile); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	user, errRes := authService.UpdateProfile(profile, claims)
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	// Response
	response := make(map[string]interface{})
	response["user"] = user
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}
