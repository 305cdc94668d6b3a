package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"conmates/api/dto"
	"conmates/models"
	"conmates/services"
)

// SuggestChatFollowupsHandler godoc
// @Summary      Suggest follow-up questions
// @Description  Returns 3-4 short follow-up questions for an ongoing support conversation. Model failures silently degrade to a category-specific fallback list, so the endpoint only fails on a malformed body.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SuggestionRequestDTO  true  "chat context"
// @Success      200   {object}  dto.SuggestionResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Router       /chat/suggestions [post]
func SuggestChatFollowupsHandler(svc *services.SuggestionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SuggestionRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}

		sessionID := req.SessionID
		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		chatCtx := models.ChatContext{
			UserID:    req.UserID,
			SessionID: sessionID,
			Category:  models.Category(req.Category),
		}
		for _, m := range req.Messages {
			chatCtx.PreviousMessages = append(chatCtx.PreviousMessages, models.ChatMessage{
				Role:      m.Role,
				Content:   m.Content,
				Timestamp: m.Timestamp,
			})
		}

		suggestions, source := svc.Generate(c.Request.Context(), chatCtx)

		c.JSON(http.StatusOK, dto.SuggestionResponseDTO{
			SessionID:   sessionID,
			Suggestions: suggestions,
			Source:      source,
		})
	}
}
