package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mukeshkumar286/chickegg/internal/models"
	"github.com/mukeshkumar286/chickegg/internal/repositories"
)

var ErrNoteNotFound = errors.New("research note not found")

// CreateResearchNoteRequest carries a new note. Date defaults to now.
type CreateResearchNoteRequest struct {
	Title    string     `json:"title" binding:"required"`
	Content  string     `json:"content" binding:"required"`
	Date     *time.Time `json:"date"`
	Tags     []string   `json:"tags"`
	Category string     `json:"category" binding:"required"`
}

// UpdateResearchNoteRequest is a partial update; nil fields are left as is.
type UpdateResearchNoteRequest struct {
	Title    *string    `json:"title"`
	Content  *string    `json:"content"`
	Date     *time.Time `json:"date"`
	Tags     []string   `json:"tags"`
	Category *string    `json:"category"`
}

// ResearchService owns note operations. Tag filtering is an overlap match
// applied after the SQL filters.
type ResearchService interface {
	Create(req CreateResearchNoteRequest) (*models.ResearchNote, error)
	List(filter models.ResearchFilter) ([]models.ResearchNote, error)
	GetByID(id int64) (*models.ResearchNote, error)
	Update(id int64, req UpdateResearchNoteRequest) (*models.ResearchNote, error)
	Delete(id int64) error
}

type researchService struct {
	researchRepo repositories.ResearchRepository
	db           *sql.DB
}

// NewResearchService creates a new instance of ResearchService.
func NewResearchService(repo repositories.ResearchRepository, db *sql.DB) ResearchService {
	return &researchService{researchRepo: repo, db: db}
}

func (s *researchService) Create(req CreateResearchNoteRequest) (*models.ResearchNote, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", ErrValidation)
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, fmt.Errorf("%w: content cannot be empty", ErrValidation)
	}

	note := &models.ResearchNote{
		Title:    req.Title,
		Content:  req.Content,
		Date:     time.Now(),
		Tags:     req.Tags,
		Category: req.Category,
	}
	if req.Date != nil {
		note.Date = *req.Date
	}

	if err := s.researchRepo.Create(s.db, note); err != nil {
		return nil, fmt.Errorf("failed to create research note: %w", err)
	}
	return note, nil
}

func (s *researchService) List(filter models.ResearchFilter) ([]models.ResearchNote, error) {
	notes, err := s.researchRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list research notes: %w", err)
	}
	if len(filter.Tags) == 0 {
		return notes, nil
	}
	filtered := make([]models.ResearchNote, 0, len(notes))
	for _, note := range notes {
		if tagsOverlap(note.Tags, filter.Tags) {
			filtered = append(filtered, note)
		}
	}
	return filtered, nil
}

func (s *researchService) GetByID(id int64) (*models.ResearchNote, error) {
	note, err := s.researchRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to get research note: %w", err)
	}
	return note, nil
}

func (s *researchService) Update(id int64, req UpdateResearchNoteRequest) (*models.ResearchNote, error) {
	note, err := s.researchRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to find research note for update: %w", err)
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", ErrValidation)
		}
		note.Title = *req.Title
	}
	if req.Content != nil {
		if strings.TrimSpace(*req.Content) == "" {
			return nil, fmt.Errorf("%w: content cannot be empty", ErrValidation)
		}
		note.Content = *req.Content
	}
	if req.Date != nil {
		note.Date = *req.Date
	}
	if req.Tags != nil {
		note.Tags = req.Tags
	}
	if req.Category != nil {
		note.Category = *req.Category
	}

	if err := s.researchRepo.Update(s.db, note); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to update research note: %w", err)
	}
	return note, nil
}

func (s *researchService) Delete(id int64) error {
	if err := s.researchRepo.Delete(s.db, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNoteNotFound
		}
		return fmt.Errorf("failed to delete research note: %w", err)
	}
	return nil
}

func tagsOverlap(noteTags, wanted []string) bool {
	for _, tag := range noteTags {
		for _, w := range wanted {
			if tag == w {
				return true
			}
		}
	}
	return false
}
