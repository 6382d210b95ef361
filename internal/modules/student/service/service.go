package student

import (
	"context"
	"errors"
	"fmt"

	"anoa.com/schoolregistry/internal/entity"
	facultyRepo "anoa.com/schoolregistry/internal/modules/faculty/repository"
	"anoa.com/schoolregistry/internal/modules/student/dto"
	"anoa.com/schoolregistry/internal/modules/student/repository"
	"anoa.com/schoolregistry/pkg/apperror"
	"gorm.io/gorm"
)

type StudentService interface {
	CreateStudent(ctx context.Context, req dto.StudentRequest) (*entity.Student, error)
	GetStudent(ctx context.Context, id uint) (*entity.Student, error)
	GetStudentFaculty(ctx context.Context, studentID uint) (*entity.Faculty, error)
	UpdateStudent(ctx context.Context, id uint, req dto.StudentRequest) (*entity.Student, error)
	DeleteStudent(ctx context.Context, id uint) error
	FindByAge(ctx context.Context, age int) ([]*entity.Student, error)
	FindByAgeBetween(ctx context.Context, minAge, maxAge int) ([]*entity.Student, error)
}

type studentService struct {
	repo        repository.StudentRepository
	facultyRepo facultyRepo.FacultyRepository
}

func NewStudentService(repo repository.StudentRepository, facultyRepo facultyRepo.FacultyRepository) StudentService {
	return &studentService{
		repo:        repo,
		facultyRepo: facultyRepo,
	}
}

func (s *studentService) CreateStudent(ctx context.Context, req dto.StudentRequest) (*entity.Student, error) {
	if req.FacultyID == nil {
		return nil, fmt.Errorf("faculty_id is required: %w", apperror.ErrBadRequest)
	}

	faculty, err := s.findFaculty(ctx, *req.FacultyID)
	if err != nil {
		return nil, err
	}

	student := &entity.Student{
		Age:       req.Age,
		FacultyID: &faculty.ID,
	}
	if req.Name != nil {
		student.Name = *req.Name
	}

	if err := s.repo.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *studentService) GetStudent(ctx context.Context, id uint) (*entity.Student, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("student %d not found: %w", id, apperror.ErrNotFound)
		}
		return nil, err
	}
	return student, nil
}

func (s *studentService) GetStudentFaculty(ctx context.Context, studentID uint) (*entity.Faculty, error) {
	student, err := s.GetStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student.FacultyID == nil {
		return nil, fmt.Errorf("student %d has no faculty: %w", studentID, apperror.ErrNotFound)
	}
	return s.findFaculty(ctx, *student.FacultyID)
}

func (s *studentService) UpdateStudent(ctx context.Context, id uint, req dto.StudentRequest) (*entity.Student, error) {
	student, err := s.GetStudent(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.Age != 0 {
		student.Age = req.Age
	}
	if req.FacultyID != nil {
		faculty, err := s.findFaculty(ctx, *req.FacultyID)
		if err != nil {
			return nil, err
		}
		student.FacultyID = &faculty.ID
	}

	if err := s.repo.Update(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *studentService) DeleteStudent(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *studentService) FindByAge(ctx context.Context, age int) ([]*entity.Student, error) {
	return s.repo.FindByAge(ctx, age)
}

func (s *studentService) FindByAgeBetween(ctx context.Context, minAge, maxAge int) ([]*entity.Student, error) {
	return s.repo.FindByAgeBetween(ctx, minAge, maxAge)
}

func (s *studentService) findFaculty(ctx context.Context, id uint) (*entity.Faculty, error) {
	faculty, err := s.facultyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("faculty %d not found: %w", id, apperror.ErrNotFound)
		}
		return nil, err
	}
	return faculty, nil
}
