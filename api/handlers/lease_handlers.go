package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"conmates/api/dto"
	"conmates/services"
)

// AnalyzeLeaseHandler godoc
// @Summary      Analyze lease text
// @Description  Sends the extracted lease text to the model and returns its analysis verbatim. Unlike suggestions, model failures propagate: the client is expected to show an explicit error state instead of fabricated content.
// @Tags         lease
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LeaseAnalyzeRequestDTO  true  "lease text"
// @Success      200   {object}  dto.LeaseAnalyzeResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO  "empty or oversized lease text"
// @Failure      429   {object}  dto.ErrorResponseDTO  "llm quota exhausted"
// @Failure      503   {object}  dto.ErrorResponseDTO  "model invocation failed"
// @Router       /lease/analyze [post]
func AnalyzeLeaseHandler(svc *services.AnalysisService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.LeaseAnalyzeRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}

		result, apiErr := svc.Analyze(c.Request.Context(), req.LeaseText)
		if apiErr != nil {
			c.JSON(apiErr.StatusCode, dto.ErrorResponseDTO{Error: apiErr.ErrorCode})
			return
		}

		c.JSON(http.StatusOK, dto.LeaseAnalyzeResponseDTO{
			Analysis:    result.Analysis,
			ModelName:   result.ModelName,
			GeneratedAt: result.GeneratedAt,
		})
	}
}

// GetLeaseAnalysisHandler godoc
// @Summary      Load the stored lease analysis
// @Description  Reads back the last stored analysis snapshot. Absence is a normal state: the response then carries found=false and zero-value fields, and the client renders a placeholder.
// @Tags         lease
// @Produce      json
// @Success      200  {object}  dto.LeaseAnalysisSnapshotDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /lease/analysis [get]
func GetLeaseAnalysisHandler(svc *services.AnalysisService) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, found, apiErr := svc.LoadSnapshot(c.Request.Context())
		if apiErr != nil {
			c.JSON(apiErr.StatusCode, dto.ErrorResponseDTO{Error: apiErr.ErrorCode})
			return
		}
		c.JSON(http.StatusOK, dto.SnapshotFromModel(result, found))
	}
}
