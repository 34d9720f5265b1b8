package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/CPU-commits/LMS_Backend/db"
)

const USERS_COLLECTION = "users"

const (
	STUDENT = "student"
	ADMIN   = "admin"
)

var userModel *UserModel

type User struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty" example:"637d5de216f58bc8ec7f7f51"`
	Name      string             `json:"name" bson:"name" example:"Jane Doe"`
	Email     string             `json:"email" bson:"email" example:"jane@example.com"`
	Password  string             `json:"-" bson:"password"`
	Role      string             `json:"role" bson:"role" example:"student" enums:"student,admin"`
	CreatedAt primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
}

// SimpleUser is the resolved creator summary embedded in course responses
type SimpleUser struct {
	ID    primitive.ObjectID `json:"_id" bson:"_id" example:"637d5de216f58bc8ec7f7f51"`
	Name  string             `json:"name" bson:"name" example:"Jane Doe"`
	Email string             `json:"email,omitempty" bson:"email,omitempty" example:"jane@example.com" extensions:"x-omitempty"`
}

type UserModel struct {
	CollectionName string
}

func NewModelUser(name, email, hashedPassword, role string) User {
	now := primitive.NewDateTimeFromTime(time.Now())
	return User{
		Name:      name,
		Email:     email,
		Password:  hashedPassword,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (user *UserModel) Use() *mongo.Collection {
	return DbConnect.GetCollection(user.CollectionName)
}

func (user *UserModel) GetByID(id primitive.ObjectID) *mongo.SingleResult {
	cursor := user.Use().FindOne(db.Ctx, bson.D{
		{
			Key:   "_id",
			Value: id,
		},
	})
	return cursor
}

func (user *UserModel) GetOne(filter bson.D) *mongo.SingleResult {
	cursor := user.Use().FindOne(db.Ctx, filter)
	return cursor
}

func (user *UserModel) GetAll(filter bson.D, options *options.FindOptions) (*mongo.Cursor, error) {
	cursor, err := user.Use().Find(db.Ctx, filter, options)
	return cursor, err
}

func (user *UserModel) Aggreagate(pipeline mongo.Pipeline) (*mongo.Cursor, error) {
	cursor, err := user.Use().Aggregate(db.Ctx, pipeline)
	return cursor, err
}

func (user *UserModel) NewDocument(data interface{}) (*mongo.InsertOneResult, error) {
	result, err := user.Use().InsertOne(db.Ctx, data)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func initUsers(collections []string) error {
	exists := false
	for _, collection := range collections {
		if collection == USERS_COLLECTION {
			exists = true
			break
		}
	}
	if !exists {
		var jsonSchema = bson.M{
			"bsonType": "object",
			"required": []string{
				"name",
				"email",
				"password",
				"role",
			},
			"properties": bson.M{
				"name":      bson.M{"bsonType": "string"},
				"email":     bson.M{"bsonType": "string"},
				"password":  bson.M{"bsonType": "string"},
				"role":      bson.M{"enum": bson.A{STUDENT, ADMIN}},
				"createdAt": bson.M{"bsonType": "date"},
				"updatedAt": bson.M{"bsonType": "date"},
			},
		}
		var validators = bson.M{
			"$jsonSchema": jsonSchema,
		}
		opts := &options.CreateCollectionOptions{
			Validator: validators,
		}
		if err := DbConnect.CreateCollection(USERS_COLLECTION, opts); err != nil {
			return err
		}
	}
	_, err := DbConnect.GetCollection(USERS_COLLECTION).Indexes().CreateOne(db.Ctx, mongo.IndexModel{
		Keys: bson.D{
			{
				Key:   "email",
				Value: 1,
			},
		},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func NewUserModel() Collection {
	if userModel == nil {
		userModel = &UserModel{
			CollectionName: USERS_COLLECTION,
		}
	}
	return userModel
}
