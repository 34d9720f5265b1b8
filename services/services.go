package services

import (
	"github.com/CPU-commits/LMS_Backend/aws_s3"
	"github.com/CPU-commits/LMS_Backend/models"
	"github.com/CPU-commits/LMS_Backend/settings"
	"github.com/CPU-commits/LMS_Backend/stack"
)

// Models
var userModel = models.NewUserModel()
var courseModel = models.NewCourseModel()
var progressModel = models.NewProgressModel()

// Packages
var nats = stack.NewNats()
var aws = aws_s3.NewAWSS3()

// Settings
var settingsData = settings.GetSettings()
