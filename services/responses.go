package services

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/CPU-commits/LMS_Backend/models"
)

type AuthRes struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type PopularCourse struct {
	ID              primitive.ObjectID `json:"_id" bson:"_id"`
	Title           string             `json:"title" bson:"title"`
	Description     string             `json:"description" bson:"description"`
	Image           string             `json:"image" bson:"image"`
	EnrollmentCount int                `json:"enrollmentCount" bson:"enrollmentCount"`
}

type AnalyticsRes struct {
	TotalCourses     int64                     `json:"totalCourses"`
	TotalStudents    int64                     `json:"totalStudents"`
	TotalEnrollments int64                     `json:"totalEnrollments"`
	CompletedCourses int64                     `json:"completedCourses"`
	RecentCourses    []models.CourseWithLookup `json:"recentCourses"`
	PopularCourses   []PopularCourse           `json:"popularCourses"`
}
