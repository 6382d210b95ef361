package avatar

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"anoa.com/schoolregistry/internal/entity"
	"anoa.com/schoolregistry/internal/modules/avatar/dto"
	"anoa.com/schoolregistry/internal/modules/avatar/repository"
	studentRepo "anoa.com/schoolregistry/internal/modules/student/repository"
	"anoa.com/schoolregistry/pkg/apperror"
	commonDto "anoa.com/schoolregistry/pkg/dto"
	"anoa.com/schoolregistry/pkg/lock"
	"anoa.com/schoolregistry/pkg/logger"
	"anoa.com/schoolregistry/pkg/storage"
	"gorm.io/gorm"
)

type AvatarService interface {
	UploadAvatar(ctx context.Context, studentID uint, file dto.AvatarFile) (*entity.Avatar, error)
	FindAvatar(ctx context.Context, studentID uint) (*entity.Avatar, error)
	FindAvatarsPageable(ctx context.Context, pageNumber, pageSize *int) (*commonDto.PageResponse[dto.AvatarResponse], error)
	CleanupOrphanAvatars(ctx context.Context) (int, error)
}

type avatarService struct {
	repo        repository.AvatarRepository
	studentRepo studentRepo.StudentRepository
	storage     storage.FileStorage
	locker      lock.Locker
}

func NewAvatarService(
	repo repository.AvatarRepository,
	studentRepo studentRepo.StudentRepository,
	fileStorage storage.FileStorage,
	locker lock.Locker,
) AvatarService {
	return &avatarService{
		repo:        repo,
		studentRepo: studentRepo,
		storage:     fileStorage,
		locker:      locker,
	}
}

// UploadAvatar stores the image under a name derived from the student id and
// upserts the single avatar row for that student.
func (s *avatarService) UploadAvatar(ctx context.Context, studentID uint, file dto.AvatarFile) (*entity.Avatar, error) {
	if _, err := s.studentRepo.FindByID(ctx, studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("student %d not found: %w", studentID, apperror.ErrNotFound)
		}
		return nil, err
	}

	release, err := s.locker.Acquire(ctx, fmt.Sprintf("avatar:student:%d", studentID))
	if err != nil {
		return nil, err
	}
	defer release()

	location, err := s.storage.Save(ctx, avatarFileName(studentID, file.FileName), bytes.NewReader(file.Data))
	if err != nil {
		return nil, fmt.Errorf("failed to store avatar: %w", err)
	}

	avatar, err := s.FindAvatar(ctx, studentID)
	if err != nil {
		return nil, err
	}

	// Remote uploads reuse the public id, so only local files can be left behind.
	if avatar.FilePath != "" && avatar.FilePath != location && !storage.IsRemote(avatar.FilePath) {
		if err := s.storage.Delete(ctx, avatar.FilePath); err != nil {
			logger.Warn().Err(err).Str("location", avatar.FilePath).Msg("failed to delete previous avatar file")
		}
	}

	mediaType := file.ContentType
	if mediaType == "" {
		mediaType = http.DetectContentType(file.Data)
	}

	avatar.StudentID = studentID
	avatar.FilePath = location
	avatar.FileSize = int64(len(file.Data))
	avatar.MediaType = mediaType
	avatar.Data = file.Data

	if err := s.repo.Save(ctx, avatar); err != nil {
		return nil, err
	}
	return avatar, nil
}

// FindAvatar returns an empty avatar, not an error, when the student has none.
func (s *avatarService) FindAvatar(ctx context.Context, studentID uint) (*entity.Avatar, error) {
	avatar, err := s.repo.FindByStudentID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &entity.Avatar{}, nil
		}
		return nil, err
	}
	return avatar, nil
}

func (s *avatarService) FindAvatarsPageable(ctx context.Context, pageNumber, pageSize *int) (*commonDto.PageResponse[dto.AvatarResponse], error) {
	if err := checkPaginationParameters(pageNumber, pageSize); err != nil {
		return nil, err
	}

	if pageNumber == nil {
		avatars, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		return &commonDto.PageResponse[dto.AvatarResponse]{
			Content:       dto.ToAvatarResponses(avatars),
			PageSize:      len(avatars),
			TotalElements: int64(len(avatars)),
			TotalPages:    1,
			Unpaged:       true,
		}, nil
	}

	number, size := *pageNumber, *pageSize
	avatars, total, err := s.repo.FindPage(ctx, number*size, size)
	if err != nil {
		return nil, err
	}

	return &commonDto.PageResponse[dto.AvatarResponse]{
		Content:       dto.ToAvatarResponses(avatars),
		PageNumber:    number,
		PageSize:      size,
		TotalElements: total,
		TotalPages:    int((total + int64(size) - 1) / int64(size)),
	}, nil
}

// CleanupOrphanAvatars removes avatars, and their files, whose student was deleted.
func (s *avatarService) CleanupOrphanAvatars(ctx context.Context) (int, error) {
	orphans, err := s.repo.FindOrphans(ctx)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, a := range orphans {
		if err := s.storage.Delete(ctx, a.FilePath); err != nil {
			logger.Warn().Err(err).Uint("avatar_id", a.ID).Msg("failed to delete orphan avatar file")
			continue
		}
		if err := s.repo.Delete(ctx, a.ID); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

func checkPaginationParameters(pageNumber, pageSize *int) error {
	if (pageNumber == nil) != (pageSize == nil) {
		return apperror.NewPaginationError("pageNumber and pageSize need to be initialized together")
	}
	if pageNumber == nil {
		return nil
	}
	if *pageNumber < 0 {
		return apperror.NewPaginationError("pageNumber can't be lower than 0")
	}
	if *pageSize <= 0 {
		return apperror.NewPaginationError("pageSize can't be lower or equal 0")
	}
	return nil
}

// avatarFileName keeps one stable name per student; only the extension follows the upload.
func avatarFileName(studentID uint, original string) string {
	name := fmt.Sprintf("student_%d", studentID)
	i := strings.LastIndex(original, ".")
	if i < 0 || i == len(original)-1 {
		return name
	}
	ext := strings.ToLower(original[i+1:])
	if strings.ContainsAny(ext, `/\`) {
		return name
	}
	return name + "." + ext
}
