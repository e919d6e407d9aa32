package service

import (
	"context"
	"io"
	"strings"

	"github.com/AsadUllahBilal/TechThrive/pkg/errs"
	"github.com/rs/zerolog/log"
)

type UploadServiceImpl struct {
	uploader MediaUploader
}

func CreateUploadService(uploader MediaUploader) UploadService {
	return &UploadServiceImpl{uploader: uploader}
}

func (s *UploadServiceImpl) UploadImage(ctx context.Context, filename string, contentType string, file io.Reader) (url string, err error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", errs.ErrNotAnImage
	}

	url, err = s.uploader.Upload(ctx, filename, file)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UploadImage").Msg("")
		return
	}

	return url, nil
}
