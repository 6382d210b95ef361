package handler

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"anoa.com/schoolregistry/internal/modules/avatar/dto"
	avatar "anoa.com/schoolregistry/internal/modules/avatar/service"
	"anoa.com/schoolregistry/pkg/apperror"
	"anoa.com/schoolregistry/pkg/response"
	"anoa.com/schoolregistry/pkg/storage"
	"github.com/gin-gonic/gin"
)

type AvatarHandler struct {
	service avatar.AvatarService
	maxSize int64
}

func NewAvatarHandler(service avatar.AvatarService, maxSize int64) *AvatarHandler {
	return &AvatarHandler{service: service, maxSize: maxSize}
}

func (h *AvatarHandler) UploadAvatar(c *gin.Context) {
	studentID, err := response.ParseID(c, "id")
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		response.ResponseError(c, apperror.New(http.StatusBadRequest, "avatar file is required", apperror.ErrBadRequest))
		return
	}
	if fileHeader.Size > h.maxSize {
		response.ResponseError(c, h.tooLarge())
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.maxSize+1))
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	if int64(len(data)) > h.maxSize {
		response.ResponseError(c, h.tooLarge())
		return
	}

	a, err := h.service.UploadAvatar(c.Request.Context(), studentID, dto.AvatarFile{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAvatarResponse(a))
}

// DownloadAvatar serves the stored file, or redirects when it lives in remote storage.
func (h *AvatarHandler) DownloadAvatar(c *gin.Context) {
	studentID, err := response.ParseID(c, "id")
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	a, err := h.service.FindAvatar(c.Request.Context(), studentID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	if a.ID == 0 || a.FilePath == "" {
		response.ResponseError(c, fmt.Errorf("avatar for student %d: %w", studentID, apperror.ErrNotFound))
		return
	}

	if storage.IsRemote(a.FilePath) {
		c.Redirect(http.StatusFound, a.FilePath)
		return
	}

	c.Header("Content-Type", a.MediaType)
	c.File(a.FilePath)
}

// PreviewAvatar serves the copy kept in the database.
func (h *AvatarHandler) PreviewAvatar(c *gin.Context) {
	studentID, err := response.ParseID(c, "id")
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	a, err := h.service.FindAvatar(c.Request.Context(), studentID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	if a.ID == 0 {
		response.ResponseError(c, fmt.Errorf("avatar for student %d: %w", studentID, apperror.ErrNotFound))
		return
	}

	c.Data(http.StatusOK, a.MediaType, a.Data)
}

func (h *AvatarHandler) ListAvatars(c *gin.Context) {
	pageNumber, err := optionalIntQuery(c, "pageNumber")
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	pageSize, err := optionalIntQuery(c, "pageSize")
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	page, err := h.service.FindAvatarsPageable(c.Request.Context(), pageNumber, pageSize)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *AvatarHandler) tooLarge() error {
	return apperror.New(
		http.StatusRequestEntityTooLarge,
		fmt.Sprintf("avatar exceeds the maximum size of %d bytes", h.maxSize),
		apperror.ErrBadRequest,
	)
}

func optionalIntQuery(c *gin.Context, name string) (*int, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apperror.New(http.StatusBadRequest, "invalid "+name, apperror.ErrInvalidInput)
	}
	return &v, nil
}
