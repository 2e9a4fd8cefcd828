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

type ParticipantHandler struct {
	Service *service.ParticipantService
}

func NewParticipantHandler(s *service.ParticipantService) *ParticipantHandler {
	return &ParticipantHandler{Service: s}
}

func (h *ParticipantHandler) CreateParticipant(c *gin.Context) {
	var participant models.Participant
	if err := c.ShouldBindJSON(&participant); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.CreateParticipant(context.Background(), &participant); err != nil {
		log.Printf("create participant failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, participant)
}

func (h *ParticipantHandler) GetParticipant(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid participant id"})
		return
	}
	participant, err := h.Service.GetParticipant(context.Background(), id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Participant not found"})
		return
	}
	if err != nil {
		log.Printf("get participant failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, participant)
}

// ListParticipants returns participant profiles filtered by status. Without
// a status query it returns the request pool (Pending).
func (h *ParticipantHandler) ListParticipants(c *gin.Context) {
	status := c.DefaultQuery("status", models.StatusPending)
	profiles, err := h.Service.ListByStatus(context.Background(), status)
	if err != nil {
		log.Printf("list participants failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if profiles == nil {
		profiles = []models.ParticipantProfile{}
	}
	c.JSON(http.StatusOK, profiles)
}
