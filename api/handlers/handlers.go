package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"fitness-chatbot/dto"
	"fitness-chatbot/services"
	"fitness-chatbot/speech"
)

// CreateSessionHandler godoc
// @Summary      Create chat session
// @Description  Mint a fresh session id scoping subsequent turns
// @Tags         sessions
// @Produce      json
// @Success      201  {object}  dto.CreateSessionResponse
// @Router       /sessions [post]
func CreateSessionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusCreated, dto.CreateSessionResponse{SessionID: services.NewSessionID()})
	}
}

// ListMessagesHandler godoc
// @Summary      List session messages
// @Description  Stored history of a session, oldest first; empty for unknown ids
// @Tags         sessions
// @Param        id   path   string  true  "Session id"
// @Produce      json
// @Success      200  {array}  dto.MessageDTO
// @Router       /sessions/{id}/messages [get]
func ListMessagesHandler(svc *services.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		messages, err := svc.History(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.NewMessageDTOs(messages))
	}
}

// ChatHandler godoc
// @Summary      Send a chat turn
// @Description  Run one typed user turn through the assistant
// @Tags         chat
// @Accept       json
// @Param        request  body  dto.ChatRequest  true  "Turn input"
// @Produce      json
// @Success      200  {object}  dto.ChatResponse
// @Failure      400  {object}  map[string]string
// @Failure      502  {object}  dto.ChatResponse
// @Router       /chat [post]
func ChatHandler(svc *services.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.ChatRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result, err := svc.HandleTurn(c.Request.Context(), in.SessionID, in.Message)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		resp := dto.NewChatResponse(in.SessionID, result)
		if result.Failure != nil {
			c.JSON(http.StatusBadGateway, resp)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// SpeechChatHandler godoc
// @Summary      Send a spoken chat turn
// @Description  Transcribe an uploaded audio file and run it as a turn
// @Tags         chat
// @Accept       multipart/form-data
// @Param        session_id  formData  string  true  "Session id"
// @Param        audio       formData  file    true  "Audio recording"
// @Produce      json
// @Success      200  {object}  dto.ChatResponse
// @Failure      422  {object}  map[string]string
// @Router       /chat/speech [post]
func SpeechChatHandler(svc *services.ChatService, transcriber speech.Transcriber) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.PostForm("session_id")
		if sessionID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "session_id is required"})
			return
		}

		file, err := c.FormFile("audio")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "audio file is required"})
			return
		}

		tmp, err := os.CreateTemp("", "speech-upload-*"+filepath.Ext(file.Filename))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		tmpPath := tmp.Name()
		tmp.Close()
		defer os.Remove(tmpPath)

		if err := c.SaveUploadedFile(file, tmpPath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		userText, err := transcriber.Transcribe(c.Request.Context(), tmpPath)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": speech.SentinelUnintelligible})
			return
		}

		result, err := svc.HandleTurn(c.Request.Context(), sessionID, userText)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		resp := dto.NewChatResponse(sessionID, result)
		if result.Failure != nil {
			c.JSON(http.StatusBadGateway, resp)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}
