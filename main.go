package main

import (
	"context"
	"log"
	"time"

	"folio/config"
	"folio/database"
	"folio/handlers"
	"folio/mail"
	"folio/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	// Create context with timeout for initial connection
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, cfg.DB.URL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer db.Close()

	mailer := mail.NewMailer(cfg.Mail.User, cfg.Mail.Password)

	uploader, err := storage.NewUploader(cfg.Storage.Endpoint,
		cfg.Storage.AccessKey, cfg.Storage.SecretKey, cfg.Storage.Bucket)
	if err != nil {
		log.Fatal("Failed to create storage client: ", err)
	}

	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/health", handlers.HealthCheck)

	r.POST("/api/send-email", handlers.SendEmail(mailer))
	r.POST("/api/upload", handlers.UploadImage(uploader))

	r.GET("/api/projects", handlers.ListProjects(db))
	r.GET("/api/projects/:id", handlers.GetProject(db))
	r.POST("/api/projects", handlers.CreateProject(db))
	r.PUT("/api/projects/:id", handlers.ReplaceProject(db))
	r.DELETE("/api/projects/:id", handlers.DeleteProject(db))

	log.Println("Server starting on :" + cfg.Server.Port)
	r.Run(":" + cfg.Server.Port)
}
