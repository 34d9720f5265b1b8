package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStatusFromPercentage(t *testing.T) {
	for p := 0; p <= 100; p++ {
		status := StatusFromPercentage(p)
		if p == 100 {
			assert.Equal(t, COMPLETED, status, "percentage %d", p)
		} else {
			assert.Equal(t, IN_PROGRESS, status, "percentage %d", p)
		}
	}
}

func TestStatusRevertsBelowHundred(t *testing.T) {
	assert.Equal(t, COMPLETED, StatusFromPercentage(100))
	// Lowering a completed progress flips it back
	assert.Equal(t, IN_PROGRESS, StatusFromPercentage(99))
	assert.Equal(t, IN_PROGRESS, StatusFromPercentage(0))
}

func TestNewModelProgress(t *testing.T) {
	student := primitive.NewObjectID()
	course := primitive.NewObjectID()

	progress := NewModelProgress(student, course)

	assert.Equal(t, student, progress.StudentID)
	assert.Equal(t, course, progress.CourseID)
	assert.Equal(t, 0, progress.ProgressPercentage)
	assert.Equal(t, IN_PROGRESS, progress.Status)
	assert.NotZero(t, progress.CreatedAt)
	assert.Equal(t, progress.CreatedAt, progress.UpdatedAt)
}
