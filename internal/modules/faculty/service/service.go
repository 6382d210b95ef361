package faculty

import (
	"context"
	"errors"
	"fmt"

	"anoa.com/schoolregistry/internal/entity"
	"anoa.com/schoolregistry/internal/modules/faculty/dto"
	"anoa.com/schoolregistry/internal/modules/faculty/repository"
	search "anoa.com/schoolregistry/internal/modules/search/service"
	"anoa.com/schoolregistry/pkg/apperror"
	"anoa.com/schoolregistry/pkg/logger"
	"gorm.io/gorm"
)

const defaultSearchLimit = 20

type FacultyService interface {
	CreateFaculty(ctx context.Context, req dto.FacultyRequest) (*entity.Faculty, error)
	GetFaculty(ctx context.Context, id uint) (*entity.Faculty, error)
	UpdateFaculty(ctx context.Context, id uint, req dto.FacultyRequest) (*entity.Faculty, error)
	DeleteFaculty(ctx context.Context, id uint) error
	FindByColor(ctx context.Context, color string) ([]*entity.Faculty, error)
	FindByNameOrColorIgnoreCase(ctx context.Context, value string) ([]*entity.Faculty, error)
	FindStudentsByFacultyID(ctx context.Context, facultyID uint) ([]*entity.Student, error)
	SearchFaculties(ctx context.Context, query string, limit int64) ([]*entity.Faculty, error)
}

type facultyService struct {
	repo  repository.FacultyRepository
	index search.FacultyIndex
}

// NewFacultyService wires the service; index may be nil when search is not configured.
func NewFacultyService(repo repository.FacultyRepository, index search.FacultyIndex) FacultyService {
	return &facultyService{repo: repo, index: index}
}

func (s *facultyService) CreateFaculty(ctx context.Context, req dto.FacultyRequest) (*entity.Faculty, error) {
	faculty := &entity.Faculty{}
	if req.Name != nil {
		faculty.Name = *req.Name
	}
	if req.Color != nil {
		faculty.Color = *req.Color
	}

	if err := s.repo.Create(ctx, faculty); err != nil {
		return nil, err
	}

	s.reindex(faculty)
	return faculty, nil
}

func (s *facultyService) GetFaculty(ctx context.Context, id uint) (*entity.Faculty, error) {
	faculty, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("faculty %d not found: %w", id, apperror.ErrNotFound)
		}
		return nil, err
	}
	return faculty, nil
}

func (s *facultyService) UpdateFaculty(ctx context.Context, id uint, req dto.FacultyRequest) (*entity.Faculty, error) {
	faculty, err := s.GetFaculty(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		faculty.Name = *req.Name
	}
	if req.Color != nil {
		faculty.Color = *req.Color
	}

	if err := s.repo.Update(ctx, faculty); err != nil {
		return nil, err
	}

	s.reindex(faculty)
	return faculty, nil
}

func (s *facultyService) DeleteFaculty(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if s.index != nil {
		if err := s.index.DeleteFaculty(id); err != nil {
			logger.Warn().Err(err).Uint("faculty_id", id).Msg("failed to remove faculty from search index")
		}
	}
	return nil
}

func (s *facultyService) FindByColor(ctx context.Context, color string) ([]*entity.Faculty, error) {
	return s.repo.FindByColor(ctx, color)
}

func (s *facultyService) FindByNameOrColorIgnoreCase(ctx context.Context, value string) ([]*entity.Faculty, error) {
	return s.repo.FindByNameOrColorIgnoreCase(ctx, value)
}

func (s *facultyService) FindStudentsByFacultyID(ctx context.Context, facultyID uint) ([]*entity.Student, error) {
	if _, err := s.GetFaculty(ctx, facultyID); err != nil {
		return nil, err
	}
	return s.repo.FindStudents(ctx, facultyID)
}

// SearchFaculties asks the search index when there is one and falls back to a substring match.
func (s *facultyService) SearchFaculties(ctx context.Context, query string, limit int64) ([]*entity.Faculty, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	if s.index == nil {
		return s.repo.SearchByNameOrColor(ctx, query, int(limit))
	}

	ids, err := s.index.SearchFaculties(query, limit)
	if err != nil {
		logger.Warn().Err(err).Str("query", query).Msg("search index unavailable, falling back to database")
		return s.repo.SearchByNameOrColor(ctx, query, int(limit))
	}

	faculties, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	// keep the relevance order of the index
	byID := make(map[uint]*entity.Faculty, len(faculties))
	for _, f := range faculties {
		byID[f.ID] = f
	}
	ordered := make([]*entity.Faculty, 0, len(ids))
	for _, id := range ids {
		if f, ok := byID[id]; ok {
			ordered = append(ordered, f)
		}
	}
	return ordered, nil
}

func (s *facultyService) reindex(faculty *entity.Faculty) {
	if s.index == nil {
		return
	}
	if err := s.index.IndexFaculty(faculty); err != nil {
		logger.Warn().Err(err).Uint("faculty_id", faculty.ID).Msg("failed to index faculty")
	}
}
