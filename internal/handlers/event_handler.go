package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"episode-service/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type EventHandler struct {
	Service *service.EventService
}

func NewEventHandler(s *service.EventService) *EventHandler {
	return &EventHandler{Service: s}
}

type RecordEventsRequest struct {
	EpisodeID string               `json:"episodeId" binding:"required"`
	Events    []service.EventInput `json:"events"`
}

func (h *EventHandler) RecordEvents(c *gin.Context) {
	var req RecordEventsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	episodeID, err := primitive.ObjectIDFromHex(req.EpisodeID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid episode id"})
		return
	}
	events, err := h.Service.RecordEvents(context.Background(), episodeID, req.Events)
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Episode not found"})
		return
	}
	if err != nil {
		log.Printf("record events failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Events recorded successfully",
		"events":  events,
	})
}
