package services

import (
	"errors"

	"github.com/talentops/applicant-dashboard/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingsService persists per-user dashboard preferences, keyed uniquely by
// user identity.
type SettingsService struct {
	DB *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{DB: db}
}

// VisibleColumns returns the user's stored column selection, or an empty
// slice when no preference exists yet. Read-or-default: absence is not an
// error.
func (s *SettingsService) VisibleColumns(userID string) ([]string, error) {
	var settings models.UserSettings
	err := s.DB.Where("user_id = ?", userID).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}
	if settings.VisibleColumns == nil {
		return []string{}, nil
	}
	return settings.VisibleColumns, nil
}

// SaveVisibleColumns upserts the user's column selection. Last write wins;
// there is no optimistic concurrency token.
func (s *SettingsService) SaveVisibleColumns(userID string, columns []string) error {
	if columns == nil {
		columns = []string{}
	}
	settings := models.UserSettings{
		UserID:         userID,
		VisibleColumns: columns,
	}
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"visible_columns", "last_updated"}),
	}).Create(&settings).Error
}
