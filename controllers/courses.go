package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CPU-commits/LMS_Backend/forms"
	"github.com/CPU-commits/LMS_Backend/res"
	"github.com/CPU-commits/LMS_Backend/services"
)

// Services
var coursesService = services.NewCoursesService()

type CoursesController struct{}

// GetCourses godoc
// @Summary List all courses, newest first
// @Tags    courses
// @Produce json
// @Success 200 {object} res.Response{body=[]models.CourseWithLookup}
// @Router  /api/courses [get]
func (courses *CoursesController) GetCourses(c *gin.Context) {
	coursesData, errRes := coursesService.GetCourses()
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	// Response
	response := make(map[string]interface{})
	response["courses"] = coursesData
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

// GetCourse godoc
// @Summary Get a single course with its creator resolved
// @Tags    courses
// @Produce json
// @Param   idCourse path     string true "MongoID"
// @Success 200      {object} res.Response{body=models.CourseWithLookup}
// @Failure 404      {object} res.Response{} "Course not found"
// @Router  /api/courses/{idCourse} [get]
func (courses *CoursesController) GetCourse(c *gin.Context) {
	idCourse := c.Param("idCourse")

	courseData, errRes := coursesService.GetCourse(idCourse)
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	// Response
	response := make(map[string]interface{})
	response["course"] = courseData
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

// NewCourse godoc
// @Summary Create a course (multipart, field "image")
// @Tags    courses
// @Tags    roles.admin
// @Accept  mpfd
// @Produce json
// @Success 201 {object} res.Response{body=models.CourseWithLookup}
// @Failure 400 {object} res.Response{} "Missing title, description or image"
// @Router  /api/courses [post]
func (courses *CoursesController) NewCourse(c *gin.Context) {
	claims, _ := services.NewClaimsFromContext(c)

	var course forms.CourseForm
	if err := c.ShouldBind(&course); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: err.Error(),
		})
		return
	}
	image, err := c.FormFile("image")
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: "Please upload a course image",
		})
		return
	}

	courseData, errRes := coursesService.NewCourse(&course, image, claims)
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	// Response
	response := make(map[string]interface{})
	response["course"] = courseData
	c.JSON(http.StatusCreated, &res.Response{
		Success: true,
		Data:    response,
	})
}

// UpdateCourse godoc
// @Summary Partial update of a course, only its creator may update
// @Tags    courses
// @Tags    roles.admin
// @Accept  mpfd
// @Produce json
// @Param   idCourse path     string true "MongoID"
// @Success 200      {object} res.Response{body=models.CourseWithLookup}
// @Failure 403      {object} res.Response{} "Not the creator"
// @Router  /api/courses/{idCourse} [put]
func (courses *CoursesController) UpdateCourse(c *gin.Context) {
	claims, _ := services.NewClaimsFromContext(c)
	idCourse := c.Param("idCourse")

	var course forms.CourseUpdateForm
	if err := c.ShouldBind(&course); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: err.Error(),
		})
		return
	}
	// Image replacement is optional
	image, err := c.FormFile("image")
	if err != nil {
		image = nil
	}

	courseData, errRes := coursesService.UpdateCourse(&course, image, idCourse, claims)
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	// Response
	response := make(map[string]interface{})
	response["course"] = courseData
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

// DeleteCourse godoc
// @Summary Delete a course and cascade its progress documents
// @Tags    courses
// @Tags    roles.admin
// @Produce json
// @Param   idCourse path     string true "MongoID"
// @Success 200      {object} res.Response{}
// @Failure 403      {object} res.Response{} "Not the creator"
// @Router  /api/courses/{idCourse} [delete]
func (courses *CoursesController) DeleteCourse(c *gin.Context) {
	claims, _ := services.NewClaimsFromContext(c)
	idCourse := c.Param("idCourse")

	if errRes := coursesService.DeleteCourse(idCourse, claims); errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	c.JSON(200, &res.Response{
		Success: true,
		Message: "Course removed",
	})
}

// Enroll godoc
// @Summary Enroll the authenticated user, creates its progress at 0%
// @Tags    courses
// @Produce json
// @Param   idCourse path     string true "MongoID"
// @Success 200      {object} res.Response{}
// @Failure 409      {object} res.Response{} "Already enrolled"
// @Router  /api/courses/{idCourse}/enroll [post]
func (courses *CoursesController) Enroll(c *gin.Context) {
	claims, _ := services.NewClaimsFromContext(c)
	idCourse := c.Param("idCourse")

	if errRes := coursesService.Enroll(idCourse, claims); errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	c.JSON(200, &res.Response{
		Success: true,
		Message: "Successfully enrolled in course",
	})
}
