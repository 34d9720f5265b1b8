package services

import (
	"fmt"
	"io"
	"net/http"

	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/CPU-commits/LMS_Backend/db"
	"github.com/CPU-commits/LMS_Backend/models"
	"github.com/CPU-commits/LMS_Backend/res"
	"github.com/CPU-commits/LMS_Backend/utils"
)

const RANKING_SIZE = 5

var analyticsService *AnalyticsService

type AnalyticsService struct{}

func (a *AnalyticsService) getCounts(analytics *AnalyticsRes) *res.ErrorRes {
	counts := []struct {
		model  models.Collection
		filter bson.D
		dest   *int64
	}{
		{courseModel, bson.D{}, &analytics.TotalCourses},
		{userModel, bson.D{{Key: "role", Value: models.STUDENT}}, &analytics.TotalStudents},
		{progressModel, bson.D{}, &analytics.TotalEnrollments},
		{progressModel, bson.D{{Key: "status", Value: models.COMPLETED}}, &analytics.CompletedCourses},
	}
	return utils.Concurrency(4, len(counts), func(index int) *res.ErrorRes {
		count, err := counts[index].model.Use().CountDocuments(db.Ctx, counts[index].filter)
		if err != nil {
			return &res.ErrorRes{
				Err:        err,
				StatusCode: http.StatusServiceUnavailable,
			}
		}
		*counts[index].dest = count
		return nil
	})
}

func (a *AnalyticsService) getRecentCourses() ([]models.CourseWithLookup, error) {
	var recent []models.CourseWithLookup

	sort := bson.D{
		{
			Key: "$sort",
			Value: bson.M{
				"createdAt": -1,
			},
		},
	}
	limit := bson.D{
		{
			Key:   "$limit",
			Value: RANKING_SIZE,
		},
	}
	cursor, err := courseModel.Aggreagate(mongo.Pipeline{
		sort,
		limit,
		getLookupCreatedBy(false),
		getUnwindCreatedBy(),
	})
	if err != nil {
		return nil, err
	}
	if err := cursor.All(db.Ctx, &recent); err != nil {
		return nil, err
	}
	return recent, nil
}

func (a *AnalyticsService) getPopularCourses() ([]PopularCourse, error) {
	var popular []PopularCourse

	project := bson.D{
		{
			Key: "$project",
			Value: bson.M{
				"title":       1,
				"description": 1,
				"image":       1,
				"enrollmentCount": bson.M{
					"$size": "$studentsEnrolled",
				},
			},
		},
	}
	// Ties keep Mongo's stable order
	sort := bson.D{
		{
			Key: "$sort",
			Value: bson.M{
				"enrollmentCount": -1,
			},
		},
	}
	limit := bson.D{
		{
			Key:   "$limit",
			Value: RANKING_SIZE,
		},
	}
	cursor, err := courseModel.Aggreagate(mongo.Pipeline{
		project,
		sort,
		limit,
	})
	if err != nil {
		return nil, err
	}
	if err := cursor.All(db.Ctx, &popular); err != nil {
		return nil, err
	}
	return popular, nil
}

// GetAnalytics computes everything fresh on each call, no caching, no writes
func (a *AnalyticsService) GetAnalytics() (*AnalyticsRes, *res.ErrorRes) {
	analytics := &AnalyticsRes{}

	if errRes := a.getCounts(analytics); errRes != nil {
		return nil, errRes
	}
	recent, err := a.getRecentCourses()
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	popular, err := a.getPopularCourses()
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	if recent == nil {
		recent = []models.CourseWithLookup{}
	}
	if popular == nil {
		popular = []PopularCourse{}
	}
	analytics.RecentCourses = recent
	analytics.PopularCourses = popular
	return analytics, nil
}

func (a *AnalyticsService) ExportAnalytics(w io.Writer) *res.ErrorRes {
	analytics, errRes := a.GetAnalytics()
	if errRes != nil {
		return errRes
	}

	file := excelize.NewFile()
	sheetName := "Analytics"
	file.SetSheetName("Sheet1", sheetName)
	// Totals
	totals := []struct {
		label string
		value int64
	}{
		{"Total courses", analytics.TotalCourses},
		{"Total students", analytics.TotalStudents},
		{"Total enrollments", analytics.TotalEnrollments},
		{"Completed enrollments", analytics.CompletedCourses},
	}
	for i, total := range totals {
		file.SetCellValue(sheetName, fmt.Sprintf("A%d", i+1), total.label)
		file.SetCellValue(sheetName, fmt.Sprintf("B%d", i+1), total.value)
	}
	// Popular courses ranking
	offset := len(totals) + 2
	file.SetCellValue(sheetName, fmt.Sprintf("A%d", offset), "Course")
	file.SetCellValue(sheetName, fmt.Sprintf("B%d", offset), "Enrollments")
	for i, course := range analytics.PopularCourses {
		row := offset + i + 1
		file.SetCellValue(sheetName, fmt.Sprintf("A%d", row), course.Title)
		file.SetCellValue(sheetName, fmt.Sprintf("B%d", row), course.EnrollmentCount)
	}

	if err := file.Write(w); err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return nil
}

func NewAnalyticsService() *AnalyticsService {
	if analyticsService == nil {
		analyticsService = &AnalyticsService{}
	}
	return analyticsService
}
