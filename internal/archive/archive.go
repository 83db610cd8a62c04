// Package archive stores JSON snapshots of saved shopping lists in
// S3-compatible object storage.
package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dukerupert/mealcart/internal/model"
	"github.com/google/uuid"
)

var (
	ErrNotConfigured = errors.New("archive storage not configured")
	ErrInvalidID     = errors.New("invalid archive id")
)

// s3Client is the subset of *s3.Client the archiver uses.
type s3Client interface {
	PutObject(ctx context.Context, input *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, input *s3.GetObjectInput, opts ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	Prefix    string
}

// Snapshot is the document written for one archived list.
type Snapshot struct {
	ArchiveID  string               `json:"archive_id"`
	ArchivedAt time.Time            `json:"archived_at"`
	List       model.ShoppingList   `json:"list"`
	Pricing    *model.PricingResult `json:"pricing,omitempty"`
}

// Receipt describes where a snapshot was written.
type Receipt struct {
	ArchiveID  string    `json:"archive_id"`
	Bucket     string    `json:"bucket"`
	Key        string    `json:"key"`
	SizeBytes  int64     `json:"size_bytes"`
	ArchivedAt time.Time `json:"archived_at"`
}

type Archiver struct {
	client s3Client
	bucket string
	prefix string
	logger *slog.Logger
	now    func() time.Time
}

// New returns an Archiver, or ErrNotConfigured when no bucket is set.
func New(cfg Config, logger *slog.Logger) (*Archiver, error) {
	if cfg.Bucket == "" {
		return nil, ErrNotConfigured
	}
	opts := s3.Options{
		Region:       cfg.Region,
		UsePathStyle: true,
	}
	if cfg.AccessKey != "" {
		opts.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
	}
	return newArchiver(s3.New(opts), cfg.Bucket, cfg.Prefix, logger), nil
}

func newArchiver(client s3Client, bucket, prefix string, logger *slog.Logger) *Archiver {
	return &Archiver{
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (a *Archiver) key(userID, listID int64, archiveID string) string {
	k := fmt.Sprintf("%d/%d/%s.json", userID, listID, archiveID)
	if a.prefix != "" {
		k = a.prefix + "/" + k
	}
	return k
}

// Archive uploads list, with an optional pricing result, under a fresh
// archive ID.
func (a *Archiver) Archive(ctx context.Context, list *model.ShoppingList, pricing *model.PricingResult) (*Receipt, error) {
	snap := Snapshot{
		ArchiveID:  uuid.NewString(),
		ArchivedAt: a.now(),
		List:       *list,
		Pricing:    pricing,
	}
	body, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}

	key := a.key(list.UserID, list.ID, snap.ArchiveID)
	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(a.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
		ContentType:   aws.String("application/json"),
	})
	if err != nil {
		return nil, fmt.Errorf("upload to s3: %w", err)
	}

	a.logger.Info("list archived", "list_id", list.ID, "key", key, "bytes", len(body))
	return &Receipt{
		ArchiveID:  snap.ArchiveID,
		Bucket:     a.bucket,
		Key:        key,
		SizeBytes:  int64(len(body)),
		ArchivedAt: snap.ArchivedAt,
	}, nil
}

// Fetch downloads a snapshot previously written by Archive for the same
// user and list.
func (a *Archiver) Fetch(ctx context.Context, userID, listID int64, archiveID string) (*Snapshot, error) {
	if _, err := uuid.Parse(archiveID); err != nil {
		return nil, ErrInvalidID
	}

	out, err := a.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(a.key(userID, listID, archiveID)),
	})
	if err != nil {
		return nil, fmt.Errorf("download from s3: %w", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}
