package ports

import (
	"context"
	"io"
)

type ObjectStorage interface {
	Download(ctx context.Context, bucket, objectName string) (io.ReadCloser, error)
}
