package services

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/CPU-commits/LMS_Backend/db"
	"github.com/CPU-commits/LMS_Backend/forms"
	"github.com/CPU-commits/LMS_Backend/funct"
	"github.com/CPU-commits/LMS_Backend/models"
	"github.com/CPU-commits/LMS_Backend/res"
)

// Max course image size, same limit the SPA enforces client side
const MAX_IMAGE_SIZE = 5 << 20

var coursesService *CoursesService

type CoursesService struct{}

func getLookupCreatedBy(withEmail bool) bson.D {
	project := bson.M{
		"name": 1,
	}
	if withEmail {
		project["email"] = 1
	}
	return bson.D{
		{
			Key: "$lookup",
			Value: bson.M{
				"from":         models.USERS_COLLECTION,
				"localField":   "createdBy",
				"foreignField": "_id",
				"as":           "createdBy",
				"pipeline": bson.A{
					bson.M{
						"$project": project,
					},
				},
			},
		},
	}
}

func getUnwindCreatedBy() bson.D {
	return bson.D{
		{
			Key: "$addFields",
			Value: bson.M{
				"createdBy": bson.M{
					"$arrayElemAt": bson.A{
						"$createdBy", 0,
					},
				},
			},
		},
	}
}

func keyFromLocation(location string) string {
	locationSplit := strings.Split(location, "/")
	if len(locationSplit) < 2 {
		return ""
	}
	return fmt.Sprintf(
		"%s/%s",
		locationSplit[len(locationSplit)-2],
		locationSplit[len(locationSplit)-1],
	)
}

func (c *CoursesService) uploadImage(image *multipart.FileHeader) (string, *res.ErrorRes) {
	if !strings.HasPrefix(image.Header.Get("Content-Type"), "image/") {
		return "", &res.ErrorRes{
			Err:        fmt.Errorf("only image files are allowed"),
			StatusCode: http.StatusBadRequest,
		}
	}
	if image.Size > MAX_IMAGE_SIZE {
		return "", &res.ErrorRes{
			Err:        fmt.Errorf("image must be smaller than 5MB"),
			StatusCode: http.StatusRequestEntityTooLarge,
		}
	}
	result, err := aws.UploadFile(image)
	if err != nil {
		return "", &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	return result.Location, nil
}

func (c *CoursesService) GetCourseFromID(idCourse string) (*models.Course, *res.ErrorRes) {
	idObjCourse, err := primitive.ObjectIDFromHex(idCourse)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusBadRequest,
		}
	}

	var course *models.Course
	cursor := courseModel.GetByID(idObjCourse)
	if err := cursor.Decode(&course); err != nil {
		if err.Error() == db.NO_SINGLE_DOCUMENT {
			return nil, &res.ErrorRes{
				Err:        fmt.Errorf("course not found"),
				StatusCode: http.StatusNotFound,
			}
		}
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	return course, nil
}

// GetCourses returns every course, creator resolved, newest first
func (c *CoursesService) GetCourses() ([]models.CourseWithLookup, *res.ErrorRes) {
	var courses []models.CourseWithLookup

	sort := bson.D{
		{
			Key: "$sort",
			Value: bson.M{
				"createdAt": -1,
			},
		},
	}
	cursor, err := courseModel.Aggreagate(mongo.Pipeline{
		sort,
		getLookupCreatedBy(true),
		getUnwindCreatedBy(),
	})
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	if err := cursor.All(db.Ctx, &courses); err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	if courses == nil {
		courses = []models.CourseWithLookup{}
	}
	return courses, nil
}

func (c *CoursesService) GetCourse(idCourse string) (*models.CourseWithLookup, *res.ErrorRes) {
	idObjCourse, err := primitive.ObjectIDFromHex(idCourse)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusBadRequest,
		}
	}

	var courses []*models.CourseWithLookup
	match := bson.D{
		{
			Key: "$match",
			Value: bson.M{
				"_id": idObjCourse,
			},
		},
	}
	cursor, err := courseModel.Aggreagate(mongo.Pipeline{
		match,
		getLookupCreatedBy(true),
		getUnwindCreatedBy(),
	})
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	if err := cursor.All(db.Ctx, &courses); err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	if len(courses) == 0 {
		return nil, &res.ErrorRes{
			Err:        fmt.Errorf("course not found"),
			StatusCode: http.StatusNotFound,
		}
	}
	return courses[0], nil
}

func (c *CoursesService) NewCourse(
	course *forms.CourseForm,
	image *multipart.FileHeader,
	claims *Claims,
) (*models.CourseWithLookup, *res.ErrorRes) {
	idObjUser, err := primitive.ObjectIDFromHex(claims.ID)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusBadRequest,
		}
	}

	imageURL, errRes := c.uploadImage(image)
	if errRes != nil {
		return nil, errRes
	}

	courseData := models.NewModelCourse(
		course.Title,
		course.Description,
		imageURL,
		idObjUser,
	)
	inserted, err := courseModel.NewDocument(courseData)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	idInserted := inserted.InsertedID.(primitive.ObjectID)
	// Notify, fire and forget
	if err := nats.PublishEncode("notify/lms", res.NotifyLMS{
		Title: fmt.Sprintf("New course: %s", course.Title),
		Link:  fmt.Sprintf("/courses/%s", idInserted.Hex()),
		Type:  res.COURSE,
	}); err != nil {
		zap.L().Warn("could not publish course notification", zap.Error(err))
	}

	return c.GetCourse(idInserted.Hex())
}

func (c *CoursesService) UpdateCourse(
	course *forms.CourseUpdateForm,
	image *multipart.FileHeader,
	idCourse string,
	claims *Claims,
) (*models.CourseWithLookup, *res.ErrorRes) {
	courseData, errRes := c.GetCourseFromID(idCourse)
	if errRes != nil {
		return nil, errRes
	}
	if courseData.CreatedBy.Hex() != claims.ID {
		return nil, &res.ErrorRes{
			Err:        fmt.Errorf("not authorized to update this course"),
			StatusCode: http.StatusForbidden,
		}
	}

	setFields := bson.M{
		"updatedAt": primitive.NewDateTimeFromTime(time.Now()),
	}
	if course.Title != "" {
		setFields["title"] = course.Title
	}
	if course.Description != "" {
		setFields["description"] = course.Description
	}
	if image != nil {
		imageURL, errRes := c.uploadImage(image)
		if errRes != nil {
			return nil, errRes
		}
		setFields["image"] = imageURL
		// Drop the replaced object when it lives in our bucket
		if strings.Contains(courseData.Image, settingsData.AWS_BUCKET) {
			if err := aws.DeleteFile(keyFromLocation(courseData.Image)); err != nil {
				zap.L().Warn("could not delete replaced course image", zap.Error(err))
			}
		}
	}

	_, err := courseModel.Use().UpdateByID(db.Ctx, courseData.ID, bson.M{
		"$set": setFields,
	})
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	return c.GetCourse(idCourse)
}

// DeleteCourse cascades over the progress collection first, then removes the
// course. The two steps are not transactional, a crash in between leaves
// orphaned progress documents
func (c *CoursesService) DeleteCourse(idCourse string, claims *Claims) *res.ErrorRes {
	courseData, errRes := c.GetCourseFromID(idCourse)
	if errRes != nil {
		return errRes
	}
	if courseData.CreatedBy.Hex() != claims.ID {
		return &res.ErrorRes{
			Err:        fmt.Errorf("not authorized to delete this course"),
			StatusCode: http.StatusForbidden,
		}
	}

	_, err := progressModel.Use().DeleteMany(db.Ctx, bson.D{
		{
			Key:   "courseId",
			Value: courseData.ID,
		},
	})
	if err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	_, err = courseModel.Use().DeleteOne(db.Ctx, bson.D{
		{
			Key:   "_id",
			Value: courseData.ID,
		},
	})
	if err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	if strings.Contains(courseData.Image, settingsData.AWS_BUCKET) {
		if err := aws.DeleteFile(keyFromLocation(courseData.Image)); err != nil {
			zap.L().Warn("could not delete course image", zap.Error(err))
		}
	}
	return nil
}

func (c *CoursesService) Enroll(idCourse string, claims *Claims) *res.ErrorRes {
	idObjStudent, err := primitive.ObjectIDFromHex(claims.ID)
	if err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusBadRequest,
		}
	}
	courseData, errRes := c.GetCourseFromID(idCourse)
	if errRes != nil {
		return errRes
	}

	enrolled := funct.Some(courseData.StudentsEnrolled, func(student primitive.ObjectID) bool {
		return student == idObjStudent
	})
	if enrolled {
		return &res.ErrorRes{
			Err:        fmt.Errorf("already enrolled in this course"),
			StatusCode: http.StatusConflict,
		}
	}

	_, err = courseModel.Use().UpdateByID(db.Ctx, courseData.ID, bson.M{
		"$addToSet": bson.M{
			"studentsEnrolled": idObjStudent,
		},
		"$set": bson.M{
			"updatedAt": primitive.NewDateTimeFromTime(time.Now()),
		},
	})
	if err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	// The unique (studentId, courseId) index rejects a concurrent double enroll
	_, err = progressModel.NewDocument(models.NewModelProgress(idObjStudent, courseData.ID))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return &res.ErrorRes{
				Err:        fmt.Errorf("already enrolled in this course"),
				StatusCode: http.StatusConflict,
			}
		}
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}

	if err := nats.PublishEncode("notify/lms", res.NotifyLMS{
		Title:  fmt.Sprintf("New enrollment in %s", courseData.Title),
		Link:   fmt.Sprintf("/courses/%s", courseData.ID.Hex()),
		Type:   res.ENROLLMENT,
		IDUser: courseData.CreatedBy.Hex(),
	}); err != nil {
		zap.L().Warn("could not publish enrollment notification", zap.Error(err))
	}
	return nil
}

func NewCoursesService() *CoursesService {
	if coursesService == nil {
		coursesService = &CoursesService{}
	}
	return coursesService
}
