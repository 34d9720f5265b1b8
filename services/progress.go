package services

import (
	"fmt"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/CPU-commits/LMS_Backend/db"
	"github.com/CPU-commits/LMS_Backend/forms"
	"github.com/CPU-commits/LMS_Backend/models"
	"github.com/CPU-commits/LMS_Backend/res"
)

var progressService *ProgressService

type ProgressService struct{}

func getLookupCourse() bson.D {
	return bson.D{
		{
			Key: "$lookup",
			Value: bson.M{
				"from":         models.COURSES_COLLECTION,
				"localField":   "courseId",
				"foreignField": "_id",
				"as":           "courseId",
			},
		},
	}
}

func getUnwindCourse() bson.D {
	return bson.D{
		{
			Key: "$addFields",
			Value: bson.M{
				"courseId": bson.M{
					"$arrayElemAt": bson.A{
						"$courseId", 0,
					},
				},
			},
		},
	}
}

// GetProgress returns every progress document of the student, course
// resolved, most recently updated first
func (p *ProgressService) GetProgress(claims *Claims) ([]models.ProgressWithLookup, *res.ErrorRes) {
	idObjStudent, err := primitive.ObjectIDFromHex(claims.ID)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusBadRequest,
		}
	}

	var progress []models.ProgressWithLookup
	match := bson.D{
		{
			Key: "$match",
			Value: bson.M{
				"studentId": idObjStudent,
			},
		},
	}
	sort := bson.D{
		{
			Key: "$sort",
			Value: bson.M{
				"updatedAt": -1,
			},
		},
	}
	cursor, err := progressModel.Aggreagate(mongo.Pipeline{
		match,
		sort,
		getLookupCourse(),
		getUnwindCourse(),
	})
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	if err := cursor.All(db.Ctx, &progress); err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	if progress == nil {
		progress = []models.ProgressWithLookup{}
	}
	return progress, nil
}

func (p *ProgressService) GetCourseProgress(
	idCourse string,
	claims *Claims,
) (*models.ProgressWithLookup, *res.ErrorRes) {
	idObjStudent, err := primitive.ObjectIDFromHex(claims.ID)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusBadRequest,
		}
	}
	idObjCourse, err := primitive.ObjectIDFromHex(idCourse)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusBadRequest,
		}
	}

	var progress []*models.ProgressWithLookup
	match := bson.D{
		{
			Key: "$match",
			Value: bson.M{
				"studentId": idObjStudent,
				"courseId":  idObjCourse,
			},
		},
	}
	cursor, err := progressModel.Aggreagate(mongo.Pipeline{
		match,
		getLookupCourse(),
		getUnwindCourse(),
	})
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	if err := cursor.All(db.Ctx, &progress); err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	if len(progress) == 0 {
		return nil, &res.ErrorRes{
			Err:        fmt.Errorf("progress not found"),
			StatusCode: http.StatusNotFound,
		}
	}
	return progress[0], nil
}

func (p *ProgressService) UpdateProgress(
	progress *forms.ProgressForm,
	idCourse string,
	claims *Claims,
) (*models.ProgressWithLookup, *res.ErrorRes) {
	percentage := *progress.ProgressPercentage
	if percentage < 0 || percentage > 100 {
		return nil, &res.ErrorRes{
			Err:        fmt.Errorf("progress must be between 0 and 100"),
			StatusCode: http.StatusBadRequest,
		}
	}
	idObjStudent, err := primitive.ObjectIDFromHex(claims.ID)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusBadRequest,
		}
	}
	idObjCourse, err := primitive.ObjectIDFromHex(idCourse)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusBadRequest,
		}
	}

	var progressData *models.Progress
	cursor := progressModel.GetOne(bson.D{
		{
			Key:   "studentId",
			Value: idObjStudent,
		},
		{
			Key:   "courseId",
			Value: idObjCourse,
		},
	})
	if err := cursor.Decode(&progressData); err != nil {
		if err.Error() == db.NO_SINGLE_DOCUMENT {
			return nil, &res.ErrorRes{
				Err:        fmt.Errorf("progress not found"),
				StatusCode: http.StatusNotFound,
			}
		}
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}

	// Status always derived from the percentage, never set on its own
	_, err = progressModel.Use().UpdateByID(db.Ctx, progressData.ID, bson.M{
		"$set": bson.M{
			"progressPercentage": percentage,
			"status":             models.StatusFromPercentage(percentage),
			"updatedAt":          primitive.NewDateTimeFromTime(time.Now()),
		},
	})
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	return p.GetCourseProgress(idCourse, claims)
}

func NewProgressService() *ProgressService {
	if progressService == nil {
		progressService = &ProgressService{}
	}
	return progressService
}
