package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"conmates/api/dto"
	"conmates/services"
)

// ListResourcesHandler godoc
// @Summary      List tenant-rights resources
// @Description  List ingested tenant-rights articles with simple pagination
// @Tags         resources
// @Param        page       query  int  false  "Page number (1-based)"
// @Param        page_size  query  int  false  "Page size (<=100)"
// @Produce      json
// @Success      200  {object}  dto.Pagination[dto.ResourceDTO]
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /resources [get]
func ListResourcesHandler(svc *services.ResourceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

		resp, apiErr := svc.List(c.Request.Context(), services.ListResourcesInput{Page: page, PageSize: pageSize})
		if apiErr != nil {
			c.JSON(apiErr.StatusCode, dto.ErrorResponseDTO{Error: apiErr.ErrorCode})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// IncrementResourceViewCountHandler godoc
// @Summary      Increment resource view count
// @Description  Increment the view_count of a resource by 1
// @Tags         resources
// @Param        id  path  string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /resources/{id}/view [post]
func IncrementResourceViewCountHandler(svc *services.ResourceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiErr := svc.IncrementViewCount(c.Request.Context(), c.Param("id")); apiErr != nil {
			c.JSON(apiErr.StatusCode, dto.ErrorResponseDTO{Error: apiErr.ErrorCode})
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "view count incremented successfully"})
	}
}
