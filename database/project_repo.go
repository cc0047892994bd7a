package database

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jmercer/portfolio-site-backend/errs"
	"github.com/jmercer/portfolio-site-backend/models"
	"gorm.io/gorm"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *ProjectRepo) GetDB() *gorm.DB {
	return r.db
}

// FindAll returns all projects ordered by creation time, most recent first
func (r *ProjectRepo) FindAll() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Order("created_at DESC").Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID, or errs.ErrNotFound if no such record exists
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database. The store assigns the ID and
// both timestamps; the stored record is written back into project.
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update applies the supplied column changes to the identified project and
// returns the full updated record. Columns absent from changes are left
// untouched; the id and created_at columns are never written.
func (r *ProjectRepo) Update(id uuid.UUID, changes map[string]any) (*models.Project, error) {
	project, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}

	delete(changes, "id")
	delete(changes, "created_at")

	if len(changes) > 0 {
		if err := r.db.Model(project).Updates(changes).Error; err != nil {
			return nil, err
		}
	}
	return r.FindByID(id)
}

// Delete removes a project from the database by id, or returns
// errs.ErrNotFound if no record was removed
func (r *ProjectRepo) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Project{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}
