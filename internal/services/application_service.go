package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"jobtracker-api/internal/dtos"
	"jobtracker-api/internal/models"
)

// ErrStoreUnavailable reports that the record store was not configured at
// startup, so submissions cannot be persisted.
var ErrStoreUnavailable = errors.New("record store is not available")

// ApplicationService persists submitted applications. The pipeline itself
// never touches the database; this is the external record store the finished
// JobPosting is handed to.
type ApplicationService struct {
	DB *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{DB: db}
}

// Submit stores one application for userID, defaulting status and the
// application date when the client left them out.
func (s *ApplicationService) Submit(userID string, req *dtos.SubmitRequest) (*models.Application, error) {
	if s.DB == nil {
		return nil, ErrStoreUnavailable
	}

	status := req.Status
	if status == "" {
		status = "Applied"
	}
	appliedOn := req.ApplicationDate
	if appliedOn == "" {
		appliedOn = time.Now().UTC().Format("2006-01-02")
	}

	app := &models.Application{
		UserID:          userID,
		Company:         req.Company,
		Position:        req.Position,
		Location:        req.Location,
		JobType:         req.JobType,
		ApplicationDate: appliedOn,
		Deadline:        req.Deadline,
		Status:          status,
		JobURL:          req.JobURL,
		Notes:           req.Notes,
	}
	if err := s.DB.Create(app).Error; err != nil {
		return nil, err
	}
	return app, nil
}
