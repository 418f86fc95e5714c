package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"folio/database"
	"folio/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProjectStore is the store surface the project handlers need. *database.DB
// satisfies it; tests substitute a double.
type ProjectStore interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
	GetProject(ctx context.Context, projectID uuid.UUID) (*models.Project, error)
	CreateProject(ctx context.Context, fields models.ProjectFields) (*models.Project, error)
	ReplaceProject(ctx context.Context, projectID uuid.UUID, fields models.ProjectFields) (*models.Project, error)
	DeleteProject(ctx context.Context, projectID uuid.UUID) (bool, error)
}

func ListProjects(store ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		projects, err := store.ListProjects(ctx)
		if err != nil {
			log.Printf("ListProjects store error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch projects"})
			return
		}

		c.JSON(http.StatusOK, projects)
	}
}

func GetProject(store ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid project ID"})
			return
		}

		ctx := c.Request.Context()
		project, err := store.GetProject(ctx, projectID)
		if err != nil {
			if errors.Is(err, database.ErrProjectNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
				return
			}
			log.Printf("GetProject store error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch project"})
			return
		}

		c.JSON(http.StatusOK, project)
	}
}

func CreateProject(store ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateProjectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		ctx := c.Request.Context()
		project, err := store.CreateProject(ctx, req.Fields())
		if err != nil {
			log.Printf("CreateProject store error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create project"})
			return
		}

		c.JSON(http.StatusCreated, project)
	}
}

// ReplaceProject overwrites the whole document with the request payload.
// Omitted fields are cleared, not preserved.
func ReplaceProject(store ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid project ID"})
			return
		}

		var req models.ReplaceProjectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		ctx := c.Request.Context()
		project, err := store.ReplaceProject(ctx, projectID, req.Fields())
		if err != nil {
			if errors.Is(err, database.ErrProjectNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
				return
			}
			log.Printf("ReplaceProject store error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to update project"})
			return
		}

		c.JSON(http.StatusOK, project)
	}
}

// DeleteProject removes the document. Deleting an id that no longer exists
// still returns 200: delete is idempotent in effect.
func DeleteProject(store ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid project ID"})
			return
		}

		ctx := c.Request.Context()
		if _, err := store.DeleteProject(ctx, projectID); err != nil {
			log.Printf("DeleteProject store error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to delete project"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
	}
}
