package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CPU-commits/LMS_Backend/forms"
	"github.com/CPU-commits/LMS_Backend/res"
	"github.com/CPU-commits/LMS_Backend/services"
)

// Services
var progressService = services.NewProgressService()

type ProgressController struct{}

func (progress *ProgressController) GetProgress(c *gin.Context) {
	claims, _ := services.NewClaimsFromContext(c)

	progressData, errRes := progressService.GetProgress(claims)
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	// Response
	response := make(map[string]interface{})
	response["progress"] = progressData
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

func (progress *ProgressController) GetCourseProgress(c *gin.Context) {
	claims, _ := services.NewClaimsFromContext(c)
	idCourse := c.Param("idCourse")

	progressData, errRes := progressService.GetCourseProgress(idCourse, claims)
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	// Response
	response := make(map[string]interface{})
	response["progress"] = progressData
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

// UpdateProgress godoc
// @Summary Set the completion percentage for a course
// @Description Status flips to Completed only on exactly 100
// @Tags    progress
// @Accept  json
// @Produce json
// @Param   idCourse path     string             true "MongoID"
// @Param   progress body     forms.ProgressForm true "Percentage"
// @Success 200      {object} res.Response{body=models.ProgressWithLookup}
// @Failure 400      {object} res.Response{} "Out of range"
// @Failure 404      {object} res.Response{} "Never enrolled"
// @Router  /api/progress/{idCourse} [put]
func (progress *ProgressController) UpdateProgress(c *gin.Context) {
	claims, _ := services.NewClaimsFromContext(c)
	idCourse := c.Param("idCourse")

	var progressForm *forms.ProgressForm
	if err := c.BindJSON(&progressForm); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	progressData, errRes := progressService.UpdateProgress(progressForm, idCourse, claims)
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	// Response
	response := make(map[string]interface{})
	response["progress"] = progressData
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}
