package services

import (
	"fmt"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/CPU-commits/LMS_Backend/db"
	"github.com/CPU-commits/LMS_Backend/forms"
	"github.com/CPU-commits/LMS_Backend/models"
	"github.com/CPU-commits/LMS_Backend/res"
)

var authService *AuthService

type AuthService struct{}

func (a *AuthService) getUserByID(idUser string) (*models.User, *res.ErrorRes) {
	idObjUser, err := primitive.ObjectIDFromHex(idUser)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusBadRequest,
		}
	}

	var user *models.User
	cursor := userModel.GetByID(idObjUser)
	if err := cursor.Decode(&user); err != nil {
		if err.Error() == db.NO_SINGLE_DOCUMENT {
			return nil, &res.ErrorRes{
				Err:        fmt.Errorf("user not found"),
				StatusCode: http.StatusNotFound,
			}
		}
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	return user, nil
}

func (a *AuthService) Register(register *forms.RegisterForm) (*AuthRes, *res.ErrorRes) {
	// Email must be free
	var existing *models.User
	cursor := userModel.GetOne(bson.D{
		{
			Key:   "email",
			Value: register.Email,
		},
	})
	if err := cursor.Decode(&existing); err != nil && err.Error() != db.NO_SINGLE_DOCUMENT {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	if existing != nil {
		return nil, &res.ErrorRes{
			Err:        fmt.Errorf("user already exists"),
			StatusCode: http.StatusConflict,
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(register.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	role := register.Role
	if role == "" {
		role = models.STUDENT
	}

	user := models.NewModelUser(register.Name, register.Email, string(hashed), role)
	inserted, err := userModel.NewDocument(user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, &res.ErrorRes{
				Err:        fmt.Errorf("user already exists"),
				StatusCode: http.StatusConflict,
			}
		}
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	user.ID = inserted.InsertedID.(primitive.ObjectID)

	token, err := NewAuthToken(&user)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return &AuthRes{
		Token: token,
		User:  &user,
	}, nil
}

func (a *AuthService) Login(login *forms.LoginForm) (*AuthRes, *res.ErrorRes) {
	var user *models.User
	cursor := userModel.GetOne(bson.D{
		{
			Key:   "email",
			Value: login.Email,
		},
	})
	if err := cursor.Decode(&user); err != nil {
		if err.Error() == db.NO_SINGLE_DOCUMENT {
			return nil, &res.ErrorRes{
				Err:        fmt.Errorf("invalid email or password"),
				StatusCode: http.StatusUnauthorized,
			}
		}
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(login.Password)); err != nil {
		return nil, &res.ErrorRes{
			Err:        fmt.Errorf("invalid email or password"),
			StatusCode: http.StatusUnauthorized,
		}
	}

	token, err := NewAuthToken(user)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return &AuthRes{
		Token: token,
		User:  user,
	}, nil
}

func (a *AuthService) GetMe(claims *Claims) (*models.User, *res.ErrorRes) {
	return a.getUserByID(claims.ID)
}

func (a *AuthService) UpdateProfile(
	profile *forms.ProfileForm,
	claims *Claims,
) (*models.User, *res.ErrorRes) {
	user, errRes := a.getUserByID(claims.ID)
	if errRes != nil {
		return nil, errRes
	}

	setFields := bson.M{
		"updatedAt": primitive.NewDateTimeFromTime(time.Now()),
	}
	if profile.Name != "" {
		setFields["name"] = profile.Name
	}
	if profile.Email != "" {
		setFields["email"] = profile.Email
	}
	if profile.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(profile.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, &res.ErrorRes{
				Err:        err,
				StatusCode: http.StatusInternalServerError,
			}
		}
		setFields["password"] = string(hashed)
	}

	_, err := userModel.Use().UpdateByID(db.Ctx, user.ID, bson.M{
		"$set": setFields,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, &res.ErrorRes{
				Err:        fmt.Errorf("email already in use"),
				StatusCode: http.StatusConflict,
			}
		}
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	return a.getUserByID(claims.ID)
}

func NewAuthService() *AuthService {
	if authService == nil {
		authService = &AuthService{}
	}
	return authService
}
