// Package objectstore keeps applicants' per-question audio recordings in a
// MinIO bucket. Uploads are optional: the interview flow completes without
// audio, the object name is only attached to the submitted answer row when
// an upload happened.
package objectstore

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Store struct {
	client *minioSDK.Client
	bucket string
}

func New(endpoint, accessKey, secretKey, bucket string, useSSL bool) (*Store, error) {
	client, err := minioSDK.New(endpoint, &minioSDK.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to MinIO: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minioSDK.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", bucket, err)
		}
		log.Printf("Bucket created: %s", bucket)
	}

	return &Store{client: client, bucket: bucket}, nil
}

// RecordingObjectName is the canonical object key for one question's audio.
func RecordingObjectName(applicantID, questionID int64) string {
	return fmt.Sprintf("recordings/%d/%d.webm", applicantID, questionID)
}

func (s *Store) Upload(ctx context.Context, objectName, contentType string, r io.Reader, size int64) error {
	if strings.TrimSpace(objectName) == "" {
		return fmt.Errorf("object name cannot be empty")
	}
	_, err := s.client.PutObject(ctx, s.bucket, objectName, r, size, minioSDK.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func (s *Store) Download(ctx context.Context, objectName string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, objectName, minioSDK.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()
	return io.ReadAll(obj)
}

func (s *Store) Delete(ctx context.Context, objectName string) error {
	return s.client.RemoveObject(ctx, s.bucket, objectName, minioSDK.RemoveObjectOptions{})
}
