package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"episode-service/internal/models"
	"episode-service/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type EpisodeHandler struct {
	Service *service.EpisodeService
}

func NewEpisodeHandler(s *service.EpisodeService) *EpisodeHandler {
	return &EpisodeHandler{Service: s}
}

func (h *EpisodeHandler) GetEpisodeDetail(c *gin.Context) {
	id := c.Query("episodeId")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "episodeId query parameter is required"})
		return
	}
	episodeID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid episode id"})
		return
	}
	detail, err := h.Service.GetEpisodeDetail(context.Background(), episodeID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Episode not found"})
		return
	}
	if errors.Is(err, service.ErrNoQualifyingEvents) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No events found for this episode"})
		return
	}
	if err != nil {
		log.Printf("episode detail failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *EpisodeHandler) CreateEpisode(c *gin.Context) {
	var episode models.Episode
	if err := c.ShouldBindJSON(&episode); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.CreateEpisode(context.Background(), &episode); err != nil {
		log.Printf("create episode failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, episode)
}

func (h *EpisodeHandler) ListEpisodes(c *gin.Context) {
	episodes, err := h.Service.ListEpisodes(context.Background())
	if err != nil {
		log.Printf("list episodes failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, episodes)
}
