package company

import (
	"context"
	"io"
)

type Service interface {
	GetProfile(ctx context.Context) (Profile, error)
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (Profile, error)
	UploadLogo(ctx context.Context, file io.Reader, filename string, contentType string) (Profile, error)
}
