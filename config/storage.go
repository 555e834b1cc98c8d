package config

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"sync"
	"time"
)

// StorageClient talks to the hosted object store's REST endpoint. Two
// singletons exist: one holding the anonymous key and one holding the
// elevated service key used for server-side uploads.
type StorageClient struct {
	BaseURL string
	Bucket  string
	apiKey  string
	http    *http.Client
}

var (
	storageOnce        sync.Once
	storageAnonClient  *StorageClient
	storageAdminClient *StorageClient
)

func initStorageClients() {
	httpClient := &http.Client{Timeout: 30 * time.Second}
	baseURL := os.Getenv("STORAGE_URL")
	bucket := os.Getenv("STORAGE_BUCKET")
	if bucket == "" {
		bucket = "credit-application-docs"
	}

	storageAnonClient = &StorageClient{
		BaseURL: baseURL,
		Bucket:  bucket,
		apiKey:  os.Getenv("STORAGE_ANON_KEY"),
		http:    httpClient,
	}
	storageAdminClient = &StorageClient{
		BaseURL: baseURL,
		Bucket:  bucket,
		apiKey:  os.Getenv("STORAGE_SERVICE_KEY"),
		http:    httpClient,
	}
}

// Storage returns the client holding the anonymous (public) key.
func Storage() *StorageClient {
	storageOnce.Do(initStorageClients)
	return storageAnonClient
}

// StorageAdmin returns the client holding the elevated service key.
func StorageAdmin() *StorageClient {
	storageOnce.Do(initStorageClients)
	return storageAdminClient
}

// Upload stores one object and returns its bucket-qualified path.
func (c *StorageClient) Upload(objectKey, contentType string, body io.Reader) (string, error) {
	if c.BaseURL == "" || c.apiKey == "" {
		return "", fmt.Errorf("object storage not configured (STORAGE_URL/key)")
	}

	endpoint := fmt.Sprintf("%s/object/%s/%s", c.BaseURL, c.Bucket, url.PathEscape(objectKey))
	req, err := http.NewRequest(http.MethodPost, endpoint, body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	req.Header.Set("Content-Type", contentType)

	res, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return "", fmt.Errorf("storage upload failed with status %d: %s", res.StatusCode, string(snippet))
	}

	return fmt.Sprintf("%s/%s", c.Bucket, objectKey), nil
}
