package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/colinmarc/hdfs/v2"
)

const baseDir = "/streaming/media"

type hdfsStore struct {
	client  *hdfs.Client
	baseURL string
}

// NewHDFSStore connects to the namenode and bootstraps the media root.
// Uploaded objects are addressed as <baseURL>/<folder>/<name>.
func NewHDFSStore(namenodeAddr, baseURL string) (ObjectStore, error) {
	client, err := hdfs.New(namenodeAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to HDFS namenode: %w", err)
	}
	if err := client.MkdirAll(baseDir, 0755); err != nil && !os.IsExist(err) {
		return nil, fmt.Errorf("failed to create base directory: %w", err)
	}
	return &hdfsStore{client: client, baseURL: baseURL}, nil
}

func (s *hdfsStore) objectPath(folder, name string) string {
	return path.Join(baseDir, folder, name)
}

func (s *hdfsStore) Upload(ctx context.Context, folder, name string, r io.Reader, size int64) (string, error) {
	dir := path.Join(baseDir, folder)
	if err := s.client.MkdirAll(dir, 0755); err != nil && !os.IsExist(err) {
		return "", fmt.Errorf("failed to create folder %s: %w", folder, err)
	}

	p := s.objectPath(folder, name)
	if _, err := s.client.Stat(p); err == nil {
		if err := s.client.Remove(p); err != nil {
			return "", fmt.Errorf("failed to remove existing object: %w", err)
		}
	}

	writer, err := s.client.Create(p)
	if err != nil {
		return "", fmt.Errorf("failed to create object: %w", err)
	}

	written, err := io.Copy(writer, r)
	if cerr := writer.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		s.client.Remove(p)
		return "", fmt.Errorf("failed to write object: %w", err)
	}
	if size > 0 && written != size {
		s.client.Remove(p)
		return "", fmt.Errorf("size mismatch: expected %d, got %d", size, written)
	}

	return fmt.Sprintf("%s/%s/%s", s.baseURL, folder, name), nil
}

func (s *hdfsStore) Delete(ctx context.Context, folder, name string) error {
	p := s.objectPath(folder, name)
	if _, err := s.client.Stat(p); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("object not found: %s", p)
		}
		return err
	}
	if err := s.client.Remove(p); err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}
