package forms

import (
	"github.com/go-playground/validator/v10"
)

type RegisterForm struct {
	Name     string `json:"name" binding:"required,min=2,max=100" validate:"required" example:"Jane Doe"`
	Email    string `json:"email" binding:"required,email" validate:"required" example:"jane@example.com"`
	Password string `json:"password" binding:"required,min=6" validate:"required" example:"secret123"`
	Role     string `json:"role" binding:"omitempty,userRole" example:"student" enum:"student,admin"`
}

type LoginForm struct {
	Email    string `json:"email" binding:"required,email" validate:"required" example:"jane@example.com"`
	Password string `json:"password" binding:"required" validate:"required" example:"secret123"`
}

// @Desc every field optional, absent fields keep their stored value
type ProfileForm struct {
	Name     string `json:"name" binding:"omitempty,min=2,max=100" example:"Jane Doe"`
	Email    string `json:"email" binding:"omitempty,email" example:"jane@example.com"`
	Password string `json:"password" binding:"omitempty,min=6" example:"newsecret123"`
}

var UserRole validator.Func = func(fl validator.FieldLevel) bool {
	role, ok := fl.Field().Interface().(string)
	if ok {
		return role == "student" || role == "admin"
	}
	return false
}
