package aws_s3

import (
	"mime/multipart"
	"path/filepath"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/google/uuid"

	"github.com/CPU-commits/LMS_Backend/settings"
)

// Folder for course images inside the bucket
const COURSES_FOLDER = "lms-courses"

var settingsData = settings.GetSettings()

type AWSS3 struct {
	sess *session.Session
}

func (a *AWSS3) UploadFile(file *multipart.FileHeader) (*s3manager.UploadOutput, error) {
	uploader := s3manager.NewUploader(a.sess)

	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	id, err := uuid.NewUUID()
	if err != nil {
		return nil, err
	}
	key := COURSES_FOLDER + "/" + id.String() + filepath.Ext(file.Filename)

	result, err := uploader.Upload(&s3manager.UploadInput{
		Bucket:      aws.String(settingsData.AWS_BUCKET),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String(file.Header.Get("Content-Type")),
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (a *AWSS3) DeleteFile(key string) error {
	svc := s3.New(a.sess)

	_, err := svc.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(settingsData.AWS_BUCKET),
		Key:    aws.String(key),
	})
	return err
}

func NewAWSS3() *AWSS3 {
	sess := session.Must(session.NewSession(&aws.Config{
		Region: aws.String(settingsData.AWS_REGION),
	}))
	return &AWSS3{
		sess: sess,
	}
}
