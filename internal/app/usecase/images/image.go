package images

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	usecase "github.com/avGenie/go-order-admin/internal/app/usecase/errors"
)

const dataURIPrefix = "data:"

var imageExtensions = map[string]string{
	"image/png":     "png",
	"image/jpeg":    "jpg",
	"image/jpg":     "jpg",
	"image/gif":     "gif",
	"image/webp":    "webp",
	"image/svg+xml": "svg",
	"image/avif":    "avif",
}

type Image struct {
	ContentType string
	Extension   string
	Data        []byte
}

func IsDataURI(raw string) bool {
	return strings.HasPrefix(raw, dataURIPrefix)
}

func IsRemoteURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return (parsed.Scheme == "http" || parsed.Scheme == "https") && len(parsed.Host) != 0
}

// ParseDataURI decodes a base64 encoded image in the form data:image/png;base64,....
func ParseDataURI(raw string) (Image, error) {
	if !IsDataURI(raw) {
		return Image{}, fmt.Errorf("%w: image is not a data uri", usecase.ErrValidation)
	}

	meta, payload, ok := strings.Cut(strings.TrimPrefix(raw, dataURIPrefix), ",")
	if !ok {
		return Image{}, fmt.Errorf("%w: image data uri has no payload", usecase.ErrValidation)
	}

	contentType, encoding, ok := strings.Cut(meta, ";")
	if !ok || encoding != "base64" {
		return Image{}, fmt.Errorf("%w: image data uri must be base64 encoded", usecase.ErrValidation)
	}

	extension, ok := imageExtensions[strings.ToLower(contentType)]
	if !ok {
		return Image{}, fmt.Errorf("%w: unsupported image type %q", usecase.ErrValidation, contentType)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return Image{}, fmt.Errorf("%w: image payload is not valid base64", usecase.ErrValidation)
	}

	if len(data) == 0 {
		return Image{}, fmt.Errorf("%w: image payload is empty", usecase.ErrValidation)
	}

	return Image{
		ContentType: strings.ToLower(contentType),
		Extension:   extension,
		Data:        data,
	}, nil
}
