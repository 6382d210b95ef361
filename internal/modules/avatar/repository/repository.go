package repository

import (
	"context"

	"anoa.com/schoolregistry/internal/entity"
	"gorm.io/gorm"
)

type AvatarRepository interface {
	Save(ctx context.Context, avatar *entity.Avatar) error
	FindByStudentID(ctx context.Context, studentID uint) (*entity.Avatar, error)
	FindAll(ctx context.Context) ([]*entity.Avatar, error)
	FindPage(ctx context.Context, offset, limit int) ([]*entity.Avatar, int64, error)
	FindOrphans(ctx context.Context) ([]*entity.Avatar, error)
	Delete(ctx context.Context, id uint) error
}

type avatarRepository struct {
	db *gorm.DB
}

func NewAvatarRepository(db *gorm.DB) AvatarRepository {
	return &avatarRepository{db: db}
}

func (r *avatarRepository) Save(ctx context.Context, avatar *entity.Avatar) error {
	return r.db.WithContext(ctx).Save(avatar).Error
}

func (r *avatarRepository) FindByStudentID(ctx context.Context, studentID uint) (*entity.Avatar, error) {
	var avatar entity.Avatar
	if err := r.db.WithContext(ctx).Where("student_id = ?", studentID).First(&avatar).Error; err != nil {
		return nil, err
	}
	return &avatar, nil
}

// Listings never load the blob column.
func (r *avatarRepository) FindAll(ctx context.Context) ([]*entity.Avatar, error) {
	avatars := []*entity.Avatar{}
	if err := r.db.WithContext(ctx).Omit("data").Order("id").Find(&avatars).Error; err != nil {
		return nil, err
	}
	return avatars, nil
}

func (r *avatarRepository) FindPage(ctx context.Context, offset, limit int) ([]*entity.Avatar, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&entity.Avatar{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	avatars := []*entity.Avatar{}
	if err := r.db.WithContext(ctx).
		Omit("data").
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&avatars).Error; err != nil {
		return nil, 0, err
	}
	return avatars, total, nil
}

// FindOrphans returns avatars whose student no longer exists.
func (r *avatarRepository) FindOrphans(ctx context.Context) ([]*entity.Avatar, error) {
	avatars := []*entity.Avatar{}
	err := r.db.WithContext(ctx).
		Omit("data").
		Where("student_id NOT IN (?)", r.db.Model(&entity.Student{}).Select("id")).
		Find(&avatars).Error
	return avatars, err
}

func (r *avatarRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Avatar{}, id).Error
}
