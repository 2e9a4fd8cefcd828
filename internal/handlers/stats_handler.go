package handlers

import (
	"context"
	"log"
	"net/http"

	"episode-service/internal/service"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	Service *service.StatsService
}

func NewStatsHandler(s *service.StatsService) *StatsHandler {
	return &StatsHandler{Service: s}
}

func (h *StatsHandler) GetShowStats(c *gin.Context) {
	stats, err := h.Service.ShowStats(context.Background())
	if err != nil {
		log.Printf("show stats failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

func (h *StatsHandler) GetPerformanceStats(c *gin.Context) {
	stats, err := h.Service.PerformanceStats(context.Background())
	if err != nil {
		log.Printf("performance stats failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}
