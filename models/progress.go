package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/CPU-commits/LMS_Backend/db"
)

const PROGRESS_COLLECTION = "progress"

const (
	IN_PROGRESS = "In Progress"
	COMPLETED   = "Completed"
)

var progressModel *ProgressModel

type Progress struct {
	ID                 primitive.ObjectID `json:"_id" bson:"_id,omitempty" example:"637d5de216f58bc8ec7f7f51"`
	StudentID          primitive.ObjectID `json:"studentId" bson:"studentId"`
	CourseID           primitive.ObjectID `json:"courseId" bson:"courseId"`
	ProgressPercentage int                `json:"progressPercentage" bson:"progressPercentage" example:"40"`
	Status             string             `json:"status" bson:"status" example:"In Progress" enums:"In Progress,Completed"`
	CreatedAt          primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt          primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
}

type ProgressWithLookup struct {
	ID                 primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	StudentID          primitive.ObjectID `json:"studentId" bson:"studentId"`
	CourseID           Course             `json:"courseId" bson:"courseId"`
	ProgressPercentage int                `json:"progressPercentage" bson:"progressPercentage"`
	Status             string             `json:"status" bson:"status"`
	CreatedAt          primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt          primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
}

type ProgressModel struct {
	CollectionName string
}

// StatusFromPercentage is the single derivation path for the stored status.
// Completed only on exactly 100, anything below reverts to In Progress.
func StatusFromPercentage(percentage int) string {
	if percentage == 100 {
		return COMPLETED
	}
	return IN_PROGRESS
}

func NewModelProgress(studentID, courseID primitive.ObjectID) Progress {
	now := primitive.NewDateTimeFromTime(time.Now())
	return Progress{
		StudentID:          studentID,
		CourseID:           courseID,
		ProgressPercentage: 0,
		Status:             StatusFromPercentage(0),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func (progress *ProgressModel) Use() *mongo.Collection {
	return DbConnect.GetCollection(progress.CollectionName)
}

func (progress *ProgressModel) GetByID(id primitive.ObjectID) *mongo.SingleResult {
	cursor := progress.Use().FindOne(db.Ctx, bson.D{
		{
			Key:   "_id",
			Value: id,
		},
	})
	return cursor
}

func (progress *ProgressModel) GetOne(filter bson.D) *mongo.SingleResult {
	cursor := progress.Use().FindOne(db.Ctx, filter)
	return cursor
}

func (progress *ProgressModel) GetAll(filter bson.D, options *options.FindOptions) (*mongo.Cursor, error) {
	cursor, err := progress.Use().Find(db.Ctx, filter, options)
	return cursor, err
}

func (progress *ProgressModel) Aggreagate(pipeline mongo.Pipeline) (*mongo.Cursor, error) {
	cursor, err := progress.Use().Aggregate(db.Ctx, pipeline)
	return cursor, err
}

func (progress *ProgressModel) NewDocument(data interface{}) (*mongo.InsertOneResult, error) {
	result, err := progress.Use().InsertOne(db.Ctx, data)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func initProgress(collections []string) error {
	exists := false
	for _, collection := range collections {
		if collection == PROGRESS_COLLECTION {
			exists = true
			break
		}
	}
	if !exists {
		var jsonSchema = bson.M{
			"bsonType": "object",
			"required": []string{
				"studentId",
				"courseId",
				"progressPercentage",
				"status",
			},
			"properties": bson.M{
				"studentId": bson.M{"bsonType": "objectId"},
				"courseId":  bson.M{"bsonType": "objectId"},
				"progressPercentage": bson.M{
					"bsonType": "int",
					"minimum":  0,
					"maximum":  100,
				},
				"status":    bson.M{"enum": bson.A{IN_PROGRESS, COMPLETED}},
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
		if err := DbConnect.CreateCollection(PROGRESS_COLLECTION, opts); err != nil {
			return err
		}
	}
	// One progress document per (student, course). Backstops concurrent enrolls
	_, err := DbConnect.GetCollection(PROGRESS_COLLECTION).Indexes().CreateOne(db.Ctx, mongo.IndexModel{
		Keys: bson.D{
			{
				Key:   "studentId",
				Value: 1,
			},
			{
				Key:   "courseId",
				Value: 1,
			},
		},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func NewProgressModel() Collection {
	if progressModel == nil {
		progressModel = &ProgressModel{
			CollectionName: PROGRESS_COLLECTION,
		}
	}
	return progressModel
}
