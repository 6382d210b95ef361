package service

import (
	"context"

	"anoa.com/schoolregistry/internal/entity"
	"anoa.com/schoolregistry/internal/modules/student/repository"
)

const lastStudentsLimit = 5

// StatService exposes student aggregates computed by the database.
type StatService interface {
	GetStudentsQuantity(ctx context.Context) (int64, error)
	GetStudentsAverageAge(ctx context.Context) (float64, error)
	GetLastFiveStudents(ctx context.Context) ([]*entity.Student, error)
}

type statService struct {
	studentRepo repository.StudentRepository
}

func NewStatService(studentRepo repository.StudentRepository) StatService {
	return &statService{
		studentRepo: studentRepo,
	}
}

func (s *statService) GetStudentsQuantity(ctx context.Context) (int64, error) {
	return s.studentRepo.Count(ctx)
}

func (s *statService) GetStudentsAverageAge(ctx context.Context) (float64, error) {
	return s.studentRepo.AverageAge(ctx)
}

func (s *statService) GetLastFiveStudents(ctx context.Context) ([]*entity.Student, error) {
	return s.studentRepo.FindLast(ctx, lastStudentsLimit)
}
