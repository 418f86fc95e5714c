package database

import (
	"context"
	"errors"
	"fmt"
	"log"

	"folio/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const projectColumns = "id, title, description, logo, industry, services, images, categories, image"

func (db *DB) ListProjects(ctx context.Context) ([]models.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM projects`, projectColumns)

	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	return scanProjects(rows)
}

func (db *DB) GetProject(ctx context.Context, projectID uuid.UUID) (*models.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM projects WHERE id = $1`, projectColumns)

	project, err := scanProject(db.Pool.QueryRow(ctx, query, projectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return project, nil
}

func (db *DB) CreateProject(ctx context.Context, fields models.ProjectFields) (*models.Project, error) {
	query := fmt.Sprintf(`
		INSERT INTO projects (title, description, logo, industry, services, images, categories, image)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s
	`, projectColumns)

	project, err := scanProject(db.Pool.QueryRow(ctx, query,
		fields.Title, fields.Description, fields.Logo, fields.Industry,
		fields.Services, imagesOrEmpty(fields.Images), fields.Categories, fields.Image))
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	log.Printf("Created project: %s (ID: %s)", project.Title, project.ID)
	return project, nil
}

// ReplaceProject overwrites every content column of the project with the
// supplied fields. Fields the caller left zero-valued are written as such, so
// a partial payload clears the columns it omits.
func (db *DB) ReplaceProject(ctx context.Context, projectID uuid.UUID, fields models.ProjectFields) (*models.Project, error) {
	query := fmt.Sprintf(`
		UPDATE projects
		SET title = $2, description = $3, logo = $4, industry = $5,
		    services = $6, images = $7, categories = $8, image = $9
		WHERE id = $1
		RETURNING %s
	`, projectColumns)

	project, err := scanProject(db.Pool.QueryRow(ctx, query, projectID,
		fields.Title, fields.Description, fields.Logo, fields.Industry,
		fields.Services, imagesOrEmpty(fields.Images), fields.Categories, fields.Image))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to replace project: %w", err)
	}

	return project, nil
}

// DeleteProject removes the project if it exists. Deleting an id with no
// matching row is not an error; the bool reports whether a row was removed.
func (db *DB) DeleteProject(ctx context.Context, projectID uuid.UUID) (bool, error) {
	query := `DELETE FROM projects WHERE id = $1`

	result, err := db.Pool.Exec(ctx, query, projectID)
	if err != nil {
		return false, fmt.Errorf("failed to delete project: %w", err)
	}

	deleted := result.RowsAffected() > 0
	if deleted {
		log.Printf("Deleted project: %s", projectID)
	}
	return deleted, nil
}

// Helper functions

// imagesOrEmpty keeps the images column NOT NULL: a payload that omitted the
// field stores an empty array rather than NULL.
func imagesOrEmpty(images []string) []string {
	if images == nil {
		return []string{}
	}
	return images
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProject(row rowScanner) (*models.Project, error) {
	var project models.Project
	err := row.Scan(
		&project.ID,
		&project.Title,
		&project.Description,
		&project.Logo,
		&project.Industry,
		&project.Services,
		&project.Images,
		&project.Categories,
		&project.Image,
	)
	if err != nil {
		return nil, err
	}
	if project.Images == nil {
		project.Images = []string{}
	}
	return &project, nil
}

type rowsScanner interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

func scanProjects(rows rowsScanner) ([]models.Project, error) {
	projects := []models.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating projects: %w", err)
	}

	return projects, nil
}
