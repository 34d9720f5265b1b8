package services

import (
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/CPU-commits/LMS_Backend/models"
)

func TestKeyFromLocation(t *testing.T) {
	key := keyFromLocation("https://bucket.s3.amazonaws.com/lms-courses/abc.png")
	assert.Equal(t, "lms-courses/abc.png", key)

	assert.Equal(t, "", keyFromLocation("nokey"))
}

func TestUploadImageRejectsNonImages(t *testing.T) {
	file := &multipart.FileHeader{
		Filename: "notes.pdf",
		Size:     1024,
		Header: textproto.MIMEHeader{
			"Content-Type": []string{"application/pdf"},
		},
	}

	service := NewCoursesService()
	_, errRes := service.uploadImage(file)
	assert.NotNil(t, errRes)
	assert.Equal(t, http.StatusBadRequest, errRes.StatusCode)
}

func TestUploadImageRejectsOversized(t *testing.T) {
	file := &multipart.FileHeader{
		Filename: "big.png",
		Size:     MAX_IMAGE_SIZE + 1,
		Header: textproto.MIMEHeader{
			"Content-Type": []string{"image/png"},
		},
	}

	service := NewCoursesService()
	_, errRes := service.uploadImage(file)
	assert.NotNil(t, errRes)
	assert.Equal(t, http.StatusRequestEntityTooLarge, errRes.StatusCode)
}

func TestLookupCreatedByStage(t *testing.T) {
	stage := getLookupCreatedBy(true)

	lookup, ok := stage[0].Value.(bson.M)
	assert.True(t, ok)
	assert.Equal(t, models.USERS_COLLECTION, lookup["from"])
	assert.Equal(t, "createdBy", lookup["localField"])
	assert.Equal(t, "_id", lookup["foreignField"])

	pipeline, ok := lookup["pipeline"].(bson.A)
	assert.True(t, ok)
	project := pipeline[0].(bson.M)["$project"].(bson.M)
	assert.Contains(t, project, "name")
	assert.Contains(t, project, "email")

	// Without email only the name is resolved
	stage = getLookupCreatedBy(false)
	lookup = stage[0].Value.(bson.M)
	pipeline = lookup["pipeline"].(bson.A)
	project = pipeline[0].(bson.M)["$project"].(bson.M)
	assert.Contains(t, project, "name")
	assert.NotContains(t, project, "email")
}

func TestLookupCourseStage(t *testing.T) {
	stage := getLookupCourse()

	lookup, ok := stage[0].Value.(bson.M)
	assert.True(t, ok)
	assert.Equal(t, models.COURSES_COLLECTION, lookup["from"])
	assert.Equal(t, "courseId", lookup["localField"])
	assert.Equal(t, "_id", lookup["foreignField"])
}
