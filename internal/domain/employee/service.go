package employee

import (
	"context"
	"io"
)

type Service interface {
	List(ctx context.Context, status *Status) ([]Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	Create(ctx context.Context, req SaveEmployeeRequest) (Employee, error)
	Update(ctx context.Context, id string, req SaveEmployeeRequest) (Employee, error)
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (Employee, error)
	Delete(ctx context.Context, id string) error
	AttachPhoto(ctx context.Context, id string, file io.Reader, filename string, contentType string) (Employee, error)
}
