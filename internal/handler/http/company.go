package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/excelpro/staffledger-backend-go/internal/domain/company"
	"github.com/excelpro/staffledger-backend-go/internal/handler/http/response"
)

type CompanyHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	UploadLogo(w http.ResponseWriter, r *http.Request)
}

type CompanyHandlerImpl struct {
	companyService company.Service
}

func NewCompanyHandler(companyService company.Service) CompanyHandler {
	return &CompanyHandlerImpl{companyService: companyService}
}

// Get implements CompanyHandler.
func (h *CompanyHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	profile, err := h.companyService.GetProfile(r.Context())
	if err != nil {
		slog.Error("Failed to get company profile", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, profile)
}

// Update implements CompanyHandler.
func (h *CompanyHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req company.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	profile, err := h.companyService.UpdateProfile(r.Context(), req)
	if err != nil {
		slog.Error("Failed to update company profile", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Company profile updated", profile)
}

// UploadLogo implements CompanyHandler.
func (h *CompanyHandlerImpl) UploadLogo(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	file, fileHeader, err := r.FormFile("logo")
	if err != nil {
		response.BadRequest(w, "Field 'logo' is required", nil)
		return
	}
	defer file.Close()

	profile, err := h.companyService.UploadLogo(
		r.Context(),
		file,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		slog.Error("Failed to upload logo", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Logo uploaded", profile)
}
