package company

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/excelpro/staffledger-backend-go/internal/domain/company"
	"github.com/excelpro/staffledger-backend-go/internal/pkg/storage"
)

type CompanyServiceImpl struct {
	company.Repository
	fileStorage storage.FileStorage
}

func NewCompanyService(repo company.Repository, fileStorage storage.FileStorage) company.Service {
	return &CompanyServiceImpl{Repository: repo, fileStorage: fileStorage}
}

// GetProfile implements company.Service.
func (s *CompanyServiceImpl) GetProfile(ctx context.Context) (company.Profile, error) {
	return s.Repository.Get(ctx)
}

// UpdateProfile applies only the fields present in the request, so the
// profile form can save partial edits.
func (s *CompanyServiceImpl) UpdateProfile(ctx context.Context, req company.UpdateProfileRequest) (company.Profile, error) {
	if err := req.Validate(); err != nil {
		return company.Profile{}, err
	}

	profile, err := s.Repository.Get(ctx)
	if err != nil {
		return company.Profile{}, err
	}

	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.Type != nil {
		profile.Type = *req.Type
	}
	if req.Address != nil {
		profile.Address = *req.Address
	}
	if req.Contact != nil {
		profile.Contact = *req.Contact
	}
	if req.Email != nil {
		profile.Email = *req.Email
	}
	if req.DiseCode != nil {
		profile.DiseCode = req.DiseCode
	}
	if req.Session != nil {
		profile.Session = req.Session
	}
	if req.LocationHeader != nil {
		profile.LocationHeader = req.LocationHeader
	}

	return s.Repository.Save(ctx, profile)
}

// UploadLogo implements company.Service.
func (s *CompanyServiceImpl) UploadLogo(ctx context.Context, file io.Reader, filename string, contentType string) (company.Profile, error) {
	path := "company/logo" + filepath.Ext(filename)
	stored, err := s.fileStorage.Upload(ctx, file, path, contentType)
	if err != nil {
		return company.Profile{}, fmt.Errorf("failed to store logo: %w", err)
	}

	url, err := s.fileStorage.GetURL(ctx, stored)
	if err != nil {
		return company.Profile{}, fmt.Errorf("failed to resolve logo URL: %w", err)
	}

	profile, err := s.Repository.Get(ctx)
	if err != nil {
		return company.Profile{}, err
	}
	profile.LogoURL = url

	return s.Repository.Save(ctx, profile)
}
