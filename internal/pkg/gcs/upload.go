package gcs

import (
	"context"
	"io"
	"log/slog"
	"path"

	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/config"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/consts"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/log_messages"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/logger"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

type GCSClient struct {
	Client     *storage.Client
	BucketName string
	FolderName string
}

func NewGCSClient(ctx context.Context, cfg config.GCSConfig, opts ...option.ClientOption) (*GCSClient, error) {
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, err
	}

	folder := cfg.FolderName
	if folder == "" {
		folder = consts.GCSReportFolder
	}
	return &GCSClient{
		Client:     client,
		BucketName: cfg.BucketName,
		FolderName: folder,
	}, nil
}

func (g *GCSClient) Bucket() string {
	return g.BucketName
}

func (g *GCSClient) Close(ctx context.Context) {
	if g.Client == nil {
		return
	}
	if err := g.Client.Close(); err != nil {
		logger.CtxError(ctx, log_messages.ErrorClosingGCSClient, err)
	}
}

// Upload writes body under the configured folder and returns the full object name.
// Existing objects are never overwritten.
func (g *GCSClient) Upload(ctx context.Context, objectName, contentType string, body io.Reader) (string, error) {
	fullName := path.Join(g.FolderName, objectName)
	object := g.Client.Bucket(g.BucketName).Object(fullName)

	writer := object.If(storage.Conditions{DoesNotExist: true}).NewWriter(ctx)
	writer.ContentType = contentType
	if _, err := io.Copy(writer, body); err != nil {
		_ = writer.Close()
		logger.CtxError(ctx, log_messages.ErrorUploadingToGCSBucket, err, slog.String("object", fullName))
		return "", err
	}
	if err := writer.Close(); err != nil {
		logger.CtxError(ctx, log_messages.ErrorClosingGCSWriter, err, slog.String("object", fullName))
		return "", err
	}

	logger.CtxInfo(ctx, log_messages.UploadedToGCSBucket,
		slog.String("bucket", g.BucketName),
		slog.String("object", fullName),
	)
	return fullName, nil
}
