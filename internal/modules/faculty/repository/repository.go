package repository

import (
	"context"
	"strings"

	"anoa.com/schoolregistry/internal/entity"
	"gorm.io/gorm"
)

type FacultyRepository interface {
	Create(ctx context.Context, faculty *entity.Faculty) error
	Update(ctx context.Context, faculty *entity.Faculty) error
	FindByID(ctx context.Context, id uint) (*entity.Faculty, error)
	FindByIDs(ctx context.Context, ids []uint) ([]*entity.Faculty, error)
	FindByColor(ctx context.Context, color string) ([]*entity.Faculty, error)
	FindByNameOrColorIgnoreCase(ctx context.Context, value string) ([]*entity.Faculty, error)
	SearchByNameOrColor(ctx context.Context, query string, limit int) ([]*entity.Faculty, error)
	FindStudents(ctx context.Context, facultyID uint) ([]*entity.Student, error)
	Delete(ctx context.Context, id uint) error
}

type facultyRepository struct {
	db *gorm.DB
}

func NewFacultyRepository(db *gorm.DB) FacultyRepository {
	return &facultyRepository{db: db}
}

func (r *facultyRepository) Create(ctx context.Context, faculty *entity.Faculty) error {
	return r.db.WithContext(ctx).Create(faculty).Error
}

func (r *facultyRepository) Update(ctx context.Context, faculty *entity.Faculty) error {
	return r.db.WithContext(ctx).Save(faculty).Error
}

func (r *facultyRepository) FindByID(ctx context.Context, id uint) (*entity.Faculty, error) {
	var faculty entity.Faculty
	if err := r.db.WithContext(ctx).First(&faculty, id).Error; err != nil {
		return nil, err
	}
	return &faculty, nil
}

func (r *facultyRepository) FindByIDs(ctx context.Context, ids []uint) ([]*entity.Faculty, error) {
	faculties := []*entity.Faculty{}
	if len(ids) == 0 {
		return faculties, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&faculties).Error; err != nil {
		return nil, err
	}
	return faculties, nil
}

func (r *facultyRepository) FindByColor(ctx context.Context, color string) ([]*entity.Faculty, error) {
	faculties := []*entity.Faculty{}
	if err := r.db.WithContext(ctx).Where("color = ?", color).Order("id").Find(&faculties).Error; err != nil {
		return nil, err
	}
	return faculties, nil
}

func (r *facultyRepository) FindByNameOrColorIgnoreCase(ctx context.Context, value string) ([]*entity.Faculty, error) {
	faculties := []*entity.Faculty{}
	v := strings.ToLower(value)
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) = ? OR LOWER(color) = ?", v, v).
		Order("id").
		Find(&faculties).Error; err != nil {
		return nil, err
	}
	return faculties, nil
}

func (r *facultyRepository) SearchByNameOrColor(ctx context.Context, query string, limit int) ([]*entity.Faculty, error) {
	faculties := []*entity.Faculty{}
	pattern := "%" + strings.ToLower(query) + "%"
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR LOWER(color) LIKE ?", pattern, pattern).
		Order("id").
		Limit(limit).
		Find(&faculties).Error; err != nil {
		return nil, err
	}
	return faculties, nil
}

func (r *facultyRepository) FindStudents(ctx context.Context, facultyID uint) ([]*entity.Student, error) {
	students := []*entity.Student{}
	if err := r.db.WithContext(ctx).Where("faculty_id = ?", facultyID).Order("id").Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

func (r *facultyRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Faculty{}, id).Error
}
