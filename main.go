package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"episode-service/internal/db"
	"episode-service/internal/event"
	"episode-service/internal/handlers"
	"episode-service/internal/repository"
	"episode-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}
	db.InitMongo(mongoURI)
	defer db.Disconnect()

	// RabbitMQ event publisher
	rabbitURL := os.Getenv("RABBITMQ_URI")
	eventExchange := os.Getenv("RABBITMQ_EXCHANGE")
	var publisher *event.EventPublisher
	if rabbitURL != "" && eventExchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(rabbitURL, eventExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, events will not be published")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	database := db.Client.Database("episode_service")

	// Episodes
	episodeRepo := repository.NewEpisodeRepository(database)
	eventRepo := repository.NewEventRepository(database)
	episodeService := service.NewEpisodeService(episodeRepo, eventRepo)
	episodeHandler := handlers.NewEpisodeHandler(episodeService)

	// Events
	eventService := service.NewEventService(eventRepo, episodeRepo)
	eventHandler := handlers.NewEventHandler(eventService)

	// Participants
	participantRepo := repository.NewParticipantRepository(database)
	participantService := service.NewParticipantService(participantRepo)
	participantHandler := handlers.NewParticipantHandler(participantService)

	// Stats
	statsService := service.NewStatsService(episodeRepo, eventRepo, participantRepo)
	statsHandler := handlers.NewStatsHandler(statsService)

	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := db.Client.Ping(ctx, nil); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	publicEpisode := r.Group("/public/episode")
	{
		publicEpisode.GET("/", episodeHandler.ListEpisodes)
		publicEpisode.GET("/detail", func(c *gin.Context) {
			episodeHandler.GetEpisodeDetail(c)
			if publisher != nil {
				publisher.Publish("episode.detail_viewed", gin.H{"episodeId": c.Query("episodeId")})
			}
		})
	}

	publicStats := r.Group("/public/stats")
	{
		publicStats.GET("/show", statsHandler.GetShowStats)
		publicStats.GET("/performance", statsHandler.GetPerformanceStats)
	}

	publicParticipant := r.Group("/public/participant")
	{
		publicParticipant.GET("/", participantHandler.ListParticipants)
		publicParticipant.GET("/:id", participantHandler.GetParticipant)
	}

	// Auth is owned by the gateway; the protected prefix only marks the
	// boundary.
	protectedEpisode := r.Group("/protected/episode")
	{
		protectedEpisode.POST("/", func(c *gin.Context) {
			episodeHandler.CreateEpisode(c)
			if publisher != nil {
				publisher.Publish("episode.created", nil)
			}
		})
		protectedEpisode.POST("/events", func(c *gin.Context) {
			eventHandler.RecordEvents(c)
			if publisher != nil {
				publisher.Publish("episode.events.recorded", gin.H{"timestamp": time.Now()})
			}
		})
	}

	protectedParticipant := r.Group("/protected/participant")
	{
		protectedParticipant.POST("/", func(c *gin.Context) {
			participantHandler.CreateParticipant(c)
			if publisher != nil {
				publisher.Publish("participant.created", nil)
			}
		})
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
