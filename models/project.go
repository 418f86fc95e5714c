package models

import (
	"github.com/google/uuid"
)

// Project is a portfolio entry. The store assigns the ID at creation and it
// never changes afterwards.
type Project struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Logo        string    `json:"logo"`
	Industry    string    `json:"industry"`
	Services    string    `json:"services"`
	Images      []string  `json:"images"`
	Categories  string    `json:"categories"`
	Image       string    `json:"image"` // thumbnail URL
}

// ProjectFields carries the content of a project without its identity.
// Used for both create and replace.
type ProjectFields struct {
	Title       string
	Description string
	Logo        string
	Industry    string
	Services    string
	Images      []string
	Categories  string
	Image       string
}

// CreateProjectRequest is the payload for creating a project.
// Every field is required; a missing field fails binding.
type CreateProjectRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Logo        string   `json:"logo" binding:"required"`
	Industry    string   `json:"industry" binding:"required"`
	Services    string   `json:"services" binding:"required"`
	Images      []string `json:"images" binding:"required"`
	Categories  string   `json:"categories" binding:"required"`
	Image       string   `json:"image" binding:"required"`
}

func (r CreateProjectRequest) Fields() ProjectFields {
	return ProjectFields{
		Title:       r.Title,
		Description: r.Description,
		Logo:        r.Logo,
		Industry:    r.Industry,
		Services:    r.Services,
		Images:      r.Images,
		Categories:  r.Categories,
		Image:       r.Image,
	}
}

// ReplaceProjectRequest is the payload for a full-replacement update.
// Nothing is required: the update writes every column from this payload, so
// fields omitted from the request are cleared in the stored document. That is
// the documented contract, not an accident.
type ReplaceProjectRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Logo        string   `json:"logo"`
	Industry    string   `json:"industry"`
	Services    string   `json:"services"`
	Images      []string `json:"images"`
	Categories  string   `json:"categories"`
	Image       string   `json:"image"`
}

func (r ReplaceProjectRequest) Fields() ProjectFields {
	return ProjectFields{
		Title:       r.Title,
		Description: r.Description,
		Logo:        r.Logo,
		Industry:    r.Industry,
		Services:    r.Services,
		Images:      r.Images,
		Categories:  r.Categories,
		Image:       r.Image,
	}
}
