package controllers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/CPU-commits/LMS_Backend/res"
	"github.com/CPU-commits/LMS_Backend/services"
)

// Services
var analyticsService = services.NewAnalyticsService()

type AnalyticsController struct{}

// GetAnalytics godoc
// @Summary Aggregate platform figures, computed fresh on each request
// @Tags    analytics
// @Tags    roles.admin
// @Produce json
// @Success 200 {object} res.Response{body=services.AnalyticsRes}
// @Router  /api/analytics [get]
func (analytics *AnalyticsController) GetAnalytics(c *gin.Context) {
	analyticsData, errRes := analyticsService.GetAnalytics()
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	// Response
	response := make(map[string]interface{})
	response["analytics"] = analyticsData
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

func (analytics *AnalyticsController) ExportAnalytics(c *gin.Context) {
	filename := fmt.Sprintf("analytics_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header(
		"Content-Type",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	)

	if errRes := analyticsService.ExportAnalytics(c.Writer); errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
}
