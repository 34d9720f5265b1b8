package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewModelCourse(t *testing.T) {
	creator := primitive.NewObjectID()

	course := NewModelCourse("Intro", "desc", "https://img.example/x.png", creator)

	assert.Equal(t, creator, course.CreatedBy)
	assert.NotNil(t, course.StudentsEnrolled)
	assert.Len(t, course.StudentsEnrolled, 0)
	assert.Equal(t, "Intro", course.Title)
	assert.Equal(t, "desc", course.Description)
	assert.Equal(t, "https://img.example/x.png", course.Image)
}
