package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/hrms-assistant/internal/models"
)

var ErrCandidateNotFound = errors.New("candidate not found")

type CandidateRepository interface {
	List() ([]models.Candidate, error)
	FindByID(id uuid.UUID) (*models.Candidate, error)
	Seed(candidates []models.Candidate) (int, error)
}

type candidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepository{db: db}
}

// List implements CandidateRepository.
func (r *candidateRepository) List() ([]models.Candidate, error) {
	var candidates []models.Candidate
	if err := r.db.Order("match_score DESC").Find(&candidates).Error; err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}

	return candidates, nil
}

// FindByID implements CandidateRepository.
func (r *candidateRepository) FindByID(id uuid.UUID) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := r.db.Where("id = ?", id).First(&candidate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCandidateNotFound
		}

		return nil, fmt.Errorf("failed to find candidate: %w", err)
	}

	return &candidate, nil
}

// Seed inserts candidates only when the table is empty and returns how many
// rows were written.
func (r *candidateRepository) Seed(candidates []models.Candidate) (int, error) {
	var count int64
	if err := r.db.Model(&models.Candidate{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count candidates: %w", err)
	}

	if count > 0 || len(candidates) == 0 {
		return 0, nil
	}

	if err := r.db.Create(&candidates).Error; err != nil {
		return 0, fmt.Errorf("failed to seed candidates: %w", err)
	}

	return len(candidates), nil
}
