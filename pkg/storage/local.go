package storage

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"anoa.com/schoolregistry/pkg/logger"
)

const copyBufferSize = 1024

type LocalStorage struct {
	basePath string
}

func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("local storage directory ensured")

	return &LocalStorage{basePath: basePath}, nil
}

func (ls *LocalStorage) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	if name == "" || name != filepath.Base(name) {
		return "", fmt.Errorf("invalid file name %q", name)
	}

	dstPath := filepath.Join(ls.basePath, name)

	if err := os.MkdirAll(filepath.Dir(dstPath), os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.Remove(dstPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("failed to remove previous file: %w", err)
	}

	dst, err := os.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	bw := bufio.NewWriterSize(dst, copyBufferSize)
	if _, err := io.Copy(bw, bufio.NewReaderSize(r, copyBufferSize)); err != nil {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}
	if err := bw.Flush(); err != nil {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to flush file content: %w", err)
	}

	logger.Debug().Str("path", dstPath).Msg("file saved")
	return dstPath, nil
}

func (ls *LocalStorage) Delete(ctx context.Context, location string) error {
	if location == "" {
		return nil
	}

	if err := os.Remove(location); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Warn().Str("path", location).Msg("file to delete does not exist")
			return nil
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}
