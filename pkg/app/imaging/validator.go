package imaging

import (
	"bytes"
	"fmt"
	"image"
	"strings"

	// Registered decoders for DecodeConfig.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/NeuralTrust/SneakerLens/pkg/domain"
	"github.com/sirupsen/logrus"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const (
	imageField           = "image"
	msgNotAnImage        = "File must be an image (JPEG, PNG, etc.)"
	msgInvalidImage      = "Invalid or corrupt image file"
	msgImageTooLargeTmpl = "Image too large. Max size: %.1fMB"
)

type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

type ImageInfo struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	SizeBytes   int    `json:"size_bytes"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Format      string `json:"format"`
}

type Validator interface {
	Validate(upload Upload) (*ImageInfo, error)
}

type validator struct {
	maxSize int64
	logger  *logrus.Logger
}

func NewValidator(maxSize int64, logger *logrus.Logger) Validator {
	return &validator{
		maxSize: maxSize,
		logger:  logger,
	}
}

// Validate checks content type, then size, then that the bytes decode as a supported image.
func (v *validator) Validate(upload Upload) (*ImageInfo, error) {
	if !strings.HasPrefix(upload.ContentType, "image/") {
		return nil, domain.NewValidationError(imageField, msgNotAnImage)
	}
	if int64(len(upload.Data)) > v.maxSize {
		return nil, domain.NewValidationError(imageField, TooLargeMessage(v.maxSize))
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(upload.Data))
	if err != nil || cfg.Width <= 0 || cfg.Height <= 0 {
		v.logger.WithError(err).WithField("filename", upload.Filename).Warn("invalid image upload")
		return nil, domain.NewValidationError(imageField, msgInvalidImage)
	}

	info := &ImageInfo{
		Filename:    upload.Filename,
		ContentType: upload.ContentType,
		SizeBytes:   len(upload.Data),
		Width:       cfg.Width,
		Height:      cfg.Height,
		Format:      strings.ToUpper(format),
	}
	v.logger.WithFields(logrus.Fields{
		"filename": info.Filename,
		"width":    info.Width,
		"height":   info.Height,
		"bytes":    info.SizeBytes,
		"format":   info.Format,
	}).Info("image processed")
	return info, nil
}

func TooLargeMessage(maxSize int64) string {
	return fmt.Sprintf(msgImageTooLargeTmpl, float64(maxSize)/(1024*1024))
}
