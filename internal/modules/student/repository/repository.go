package repository

import (
	"context"
	"database/sql"

	"anoa.com/schoolregistry/internal/entity"
	"gorm.io/gorm"
)

type StudentRepository interface {
	Create(ctx context.Context, student *entity.Student) error
	Update(ctx context.Context, student *entity.Student) error
	FindByID(ctx context.Context, id uint) (*entity.Student, error)
	FindByAge(ctx context.Context, age int) ([]*entity.Student, error)
	FindByAgeBetween(ctx context.Context, minAge, maxAge int) ([]*entity.Student, error)
	Count(ctx context.Context) (int64, error)
	AverageAge(ctx context.Context) (float64, error)
	FindLast(ctx context.Context, limit int) ([]*entity.Student, error)
	Delete(ctx context.Context, id uint) error
}

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) Create(ctx context.Context, student *entity.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepository) Update(ctx context.Context, student *entity.Student) error {
	return r.db.WithContext(ctx).Save(student).Error
}

func (r *studentRepository) FindByID(ctx context.Context, id uint) (*entity.Student, error) {
	var student entity.Student
	if err := r.db.WithContext(ctx).First(&student, id).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) FindByAge(ctx context.Context, age int) ([]*entity.Student, error) {
	students := []*entity.Student{}
	if err := r.db.WithContext(ctx).Where("age = ?", age).Order("id").Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

func (r *studentRepository) FindByAgeBetween(ctx context.Context, minAge, maxAge int) ([]*entity.Student, error) {
	students := []*entity.Student{}
	if err := r.db.WithContext(ctx).
		Where("age BETWEEN ? AND ?", minAge, maxAge).
		Order("id").
		Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

func (r *studentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Student{}).Count(&count).Error
	return count, err
}

// AverageAge is 0 when there are no students.
func (r *studentRepository) AverageAge(ctx context.Context) (float64, error) {
	var avg sql.NullFloat64
	if err := r.db.WithContext(ctx).Raw("SELECT AVG(age) FROM students").Scan(&avg).Error; err != nil {
		return 0, err
	}
	return avg.Float64, nil
}

func (r *studentRepository) FindLast(ctx context.Context, limit int) ([]*entity.Student, error) {
	students := []*entity.Student{}
	if err := r.db.WithContext(ctx).Order("id DESC").Limit(limit).Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

func (r *studentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Student{}, id).Error
}
