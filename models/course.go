package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/CPU-commits/LMS_Backend/db"
)

const COURSES_COLLECTION = "courses"

var courseModel *CourseModel

type Course struct {
	ID               primitive.ObjectID   `json:"_id" bson:"_id,omitempty" example:"637d5de216f58bc8ec7f7f51"`
	Title            string               `json:"title" bson:"title" example:"Web Development Bootcamp"`
	Description      string               `json:"description" bson:"description" example:"HTML, CSS and JS from scratch"`
	Image            string               `json:"image" bson:"image" example:"https://bucket.s3.amazonaws.com/lms-courses/x.png"`
	CreatedBy        primitive.ObjectID   `json:"createdBy" bson:"createdBy"`
	StudentsEnrolled []primitive.ObjectID `json:"studentsEnrolled" bson:"studentsEnrolled"`
	CreatedAt        primitive.DateTime   `json:"createdAt" bson:"createdAt"`
	UpdatedAt        primitive.DateTime   `json:"updatedAt" bson:"updatedAt"`
}

type CourseWithLookup struct {
	ID               primitive.ObjectID   `json:"_id" bson:"_id,omitempty"`
	Title            string               `json:"title" bson:"title"`
	Description      string               `json:"description" bson:"description"`
	Image            string               `json:"image" bson:"image"`
	CreatedBy        SimpleUser           `json:"createdBy" bson:"createdBy"`
	StudentsEnrolled []primitive.ObjectID `json:"studentsEnrolled" bson:"studentsEnrolled"`
	CreatedAt        primitive.DateTime   `json:"createdAt" bson:"createdAt"`
	UpdatedAt        primitive.DateTime   `json:"updatedAt" bson:"updatedAt"`
}

type CourseModel struct {
	CollectionName string
}

func NewModelCourse(title, description, image string, createdBy primitive.ObjectID) Course {
	now := primitive.NewDateTimeFromTime(time.Now())
	return Course{
		Title:            title,
		Description:      description,
		Image:            image,
		CreatedBy:        createdBy,
		StudentsEnrolled: []primitive.ObjectID{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func (course *CourseModel) Use() *mongo.Collection {
	return DbConnect.GetCollection(course.CollectionName)
}

func (course *CourseModel) GetByID(id primitive.ObjectID) *mongo.SingleResult {
	cursor := course.Use().FindOne(db.Ctx, bson.D{
		{
			Key:   "_id",
			Value: id,
		},
	})
	return cursor
}

func (course *CourseModel) GetOne(filter bson.D) *mongo.SingleResult {
	cursor := course.Use().FindOne(db.Ctx, filter)
	return cursor
}

func (course *CourseModel) GetAll(filter bson.D, options *options.FindOptions) (*mongo.Cursor, error) {
	cursor, err := course.Use().Find(db.Ctx, filter, options)
	return cursor, err
}

func (course *CourseModel) Aggreagate(pipeline mongo.Pipeline) (*mongo.Cursor, error) {
	cursor, err := course.Use().Aggregate(db.Ctx, pipeline)
	return cursor, err
}

func (course *CourseModel) NewDocument(data interface{}) (*mongo.InsertOneResult, error) {
	result, err := course.Use().InsertOne(db.Ctx, data)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func initCourses(collections []string) error {
	for _, collection := range collections {
		if collection == COURSES_COLLECTION {
			return nil
		}
	}
	var jsonSchema = bson.M{
		"bsonType": "object",
		"required": []string{
			"title",
			"description",
			"image",
			"createdBy",
		},
		"properties": bson.M{
			"title": bson.M{
				"bsonType":  "string",
				"maxLength": 100,
			},
			"description": bson.M{
				"bsonType":  "string",
				"maxLength": 1000,
			},
			"image":     bson.M{"bsonType": "string"},
			"createdBy": bson.M{"bsonType": "objectId"},
			"studentsEnrolled": bson.M{
				"bsonType": bson.A{"array"},
				"items":    bson.M{"bsonType": "objectId"},
			},
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
	return DbConnect.CreateCollection(COURSES_COLLECTION, opts)
}

func NewCourseModel() Collection {
	if courseModel == nil {
		courseModel = &CourseModel{
			CollectionName: COURSES_COLLECTION,
		}
	}
	return courseModel
}
