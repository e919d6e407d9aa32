package service

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/AsadUllahBilal/TechThrive/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	url      string
	err      error
	filename string
}

func (u *fakeUploader) Upload(ctx context.Context, filename string, file io.Reader) (string, error) {
	u.filename = filename
	if u.err != nil {
		return "", u.err
	}
	return u.url, nil
}

func TestUploadImage(t *testing.T) {
	ctx := context.Background()

	t.Run("image passes through to the media host", func(t *testing.T) {
		uploader := &fakeUploader{url: "https://media.example.com/abc.png"}
		svc := CreateUploadService(uploader)

		url, err := svc.UploadImage(ctx, "abc.png", "image/png", strings.NewReader("data"))
		require.NoError(t, err)
		assert.Equal(t, uploader.url, url)
		assert.Equal(t, "abc.png", uploader.filename)
	})

	t.Run("non-image content type is rejected", func(t *testing.T) {
		uploader := &fakeUploader{url: "https://media.example.com/abc.pdf"}
		svc := CreateUploadService(uploader)

		_, err := svc.UploadImage(ctx, "abc.pdf", "application/pdf", strings.NewReader("data"))
		assert.ErrorIs(t, err, errs.ErrNotAnImage)
		assert.Empty(t, uploader.filename)
	})

	t.Run("media host failure propagates", func(t *testing.T) {
		uploader := &fakeUploader{err: errs.ErrMediaHost}
		svc := CreateUploadService(uploader)

		_, err := svc.UploadImage(ctx, "abc.png", "image/png", strings.NewReader("data"))
		assert.ErrorIs(t, err, errs.ErrMediaHost)
	})
}
