package service

import (
	"strings"

	"menu-cms-svc/internal/models"
	"menu-cms-svc/internal/repository"
	"menu-cms-svc/pkg/logger"
)

// SettingsInput is the dashboard settings form. Blank fields are ignored.
type SettingsInput struct {
	Phone     string `form:"phone" json:"phone"`
	Bg        string `form:"bg" json:"bg"`
	Card      string `form:"card" json:"card"`
	Muted     string `form:"muted" json:"muted"`
	Text      string `form:"text" json:"text"`
	Brand     string `form:"brand" json:"brand"`
	Accent    string `form:"accent" json:"accent"`
	Border    string `form:"border" json:"border"`
	BrandFont string `form:"brand_font" json:"brand_font"`
}

func (in *SettingsInput) theme() map[string]string {
	return map[string]string{
		"bg":         in.Bg,
		"card":       in.Card,
		"muted":      in.Muted,
		"text":       in.Text,
		"brand":      in.Brand,
		"accent":     in.Accent,
		"border":     in.Border,
		"brand_font": in.BrandFont,
	}
}

// SettingsService interface defines settings service methods
type SettingsService interface {
	EnsureSettings() (*models.Settings, error)
	GetSettings() (*models.Settings, error)
	UpdateSettings(in *SettingsInput) (*models.Settings, error)
}

// settingsService implements SettingsService interface
type settingsService struct {
	settingsRepo repository.SettingsRepository
	logger       *logger.Logger
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository, logger *logger.Logger) SettingsService {
	return &settingsService{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// EnsureSettings creates the settings row with defaults if it does not exist
// yet. Called once at startup; GetSettings falls back to it as well.
func (s *settingsService) EnsureSettings() (*models.Settings, error) {
	settings, err := s.settingsRepo.First()
	if err == nil {
		return settings, nil
	}
	if !IsNotFound(err) {
		s.logger.WithError(err).Error("Failed to load settings")
		return nil, err
	}

	if err := s.settingsRepo.CreateIfAbsent(models.NewDefaultSettings()); err != nil {
		s.logger.WithError(err).Error("Failed to create settings")
		return nil, err
	}

	settings, err = s.settingsRepo.First()
	if err != nil {
		s.logger.WithError(err).Error("Failed to load settings")
		return nil, err
	}

	s.logger.WithField("id", settings.ID).Info("Settings created with defaults")
	return settings, nil
}

// GetSettings returns the settings row, filling every empty field with its
// default. The row is written back only when a field was actually filled.
func (s *settingsService) GetSettings() (*models.Settings, error) {
	settings, err := s.EnsureSettings()
	if err != nil {
		return nil, err
	}

	var filled []string
	if models.StringValue(settings.Phone) == "" {
		settings.Phone = models.StringPtr(models.DefaultPhone)
		filled = append(filled, "phone")
	}
	for _, f := range settings.ThemeFields() {
		if models.StringValue(*f.Value) == "" {
			*f.Value = models.StringPtr(f.Default)
			filled = append(filled, f.Name)
		}
	}
	if len(filled) == 0 {
		return settings, nil
	}

	if err := s.settingsRepo.Save(settings); err != nil {
		s.logger.WithError(err).Error("Failed to backfill settings")
		return nil, err
	}

	s.logger.WithField("fields", filled).Info("Settings backfilled with defaults")
	return settings, nil
}

// UpdateSettings overwrites the non-blank submitted fields
func (s *settingsService) UpdateSettings(in *SettingsInput) (*models.Settings, error) {
	settings, err := s.GetSettings()
	if err != nil {
		return nil, err
	}

	var changed []string
	if phone := strings.TrimSpace(in.Phone); phone != "" {
		settings.Phone = models.StringPtr(phone)
		changed = append(changed, "phone")
	}
	values := in.theme()
	for _, f := range settings.ThemeFields() {
		if v := strings.TrimSpace(values[f.Name]); v != "" {
			*f.Value = models.StringPtr(v)
			changed = append(changed, f.Name)
		}
	}

	if err := s.settingsRepo.Save(settings); err != nil {
		s.logger.WithError(err).Error("Failed to update settings")
		return nil, err
	}

	s.logger.WithField("fields", changed).Info("Settings updated successfully")
	return settings, nil
}
