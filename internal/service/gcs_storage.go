package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
)

type GCSStorage struct {
	Client     *storage.Client
	BucketName string
}

func NewGCSStorage(ctx context.Context, bucketName string) (*GCSStorage, error) {
	if bucketName == "" {
		return nil, fmt.Errorf("GCS_BUCKET_NAME not set")
	}
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize GCS client: %w", err)
	}
	return &GCSStorage{Client: client, BucketName: bucketName}, nil
}

func (s *GCSStorage) Save(ctx context.Context, key string, r io.Reader) error {
	w := s.Client.Bucket(s.BucketName).Object(key).NewWriter(ctx)
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return fmt.Errorf("failed to upload file to GCS: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close GCS writer: %w", err)
	}
	return nil
}

func (s *GCSStorage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	return s.Client.Bucket(s.BucketName).Object(key).NewReader(ctx)
}

func (s *GCSStorage) Delete(ctx context.Context, key string) error {
	err := s.Client.Bucket(s.BucketName).Object(key).Delete(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil
	}
	return err
}
