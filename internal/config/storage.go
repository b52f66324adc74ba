package config

import (
	"os"
	"sync"
)

const (
	StorageDriverLocal = "local"
	StorageDriverGCS   = "gcs"
)

type StorageConfig struct {
	Driver        string
	LocalDir      string
	GCSBucketName string
}

var (
	storageConfig *StorageConfig
	storageOnce   sync.Once
)

func LoadStorageConfig() *StorageConfig {
	storageOnce.Do(func() {
		storageConfig = &StorageConfig{
			Driver:        getEnv("STORAGE_DRIVER", StorageDriverLocal),
			LocalDir:      getEnv("STORAGE_LOCAL_DIR", "./uploads"),
			GCSBucketName: os.Getenv("GCS_BUCKET_NAME"),
		}
	})
	return storageConfig
}
