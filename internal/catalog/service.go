package catalog

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type Storage interface {
	Upload(ctx context.Context, key string, file multipart.File, contentType string) (string, error)
}

type Service struct {
	repo    Repository
	storage Storage
}

func NewService(repo Repository, storage Storage) *Service {
	return &Service{repo: repo, storage: storage}
}

func (s *Service) List() []Product {
	return s.repo.List()
}

func (s *Service) Get(id string) (*Product, error) {
	return s.repo.FindByID(id)
}

// --------------------------------------------------
// Upload Product Image (ADMIN)
// --------------------------------------------------
func (s *Service) UploadImage(
	ctx context.Context,
	productID string,
	header *multipart.FileHeader,
) (string, error) {

	if _, err := s.repo.FindByID(productID); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext == "" {
		return "", errors.New("invalid file")
	}

	f, err := header.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	key := fmt.Sprintf(
		"products/%s/%s%s",
		productID,
		uuid.New().String(),
		ext,
	)

	url, err := s.storage.Upload(ctx, key, f, header.Header.Get("Content-Type"))
	if err != nil {
		return "", err
	}

	if err := s.repo.SetImageURL(productID, url); err != nil {
		return "", err
	}

	return url, nil
}
