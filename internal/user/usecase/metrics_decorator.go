package usecase

import (
	"context"
	"time"

	"github.com/hireassist/backend/internal/metrics"
	"github.com/hireassist/backend/internal/user/domain"
	appValidation "github.com/hireassist/backend/internal/validation"
)

// directoryWithMetrics decorates Directory with metrics instrumentation.
type directoryWithMetrics struct {
	next    Directory
	metrics metrics.BusinessMetrics
}

// NewDirectoryWithMetrics wraps a Directory with metrics recording.
func NewDirectoryWithMetrics(directory Directory, m metrics.BusinessMetrics) Directory {
	return &directoryWithMetrics{
		next:    directory,
		metrics: m,
	}
}

func (d *directoryWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	d.metrics.RecordOperation(ctx, "users", operation, status)
	d.metrics.RecordDuration(ctx, "users", operation, time.Since(start), status)
}

// Register records metrics for registration operations.
func (d *directoryWithMetrics) Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {
	start := time.Now()
	output, err := d.next.Register(ctx, input)
	d.record(ctx, "register", start, err)
	return output, err
}

// GetByID records metrics for user retrieval operations.
func (d *directoryWithMetrics) GetByID(ctx context.Context, userID string) (*domain.UserRecord, error) {
	start := time.Now()
	record, err := d.next.GetByID(ctx, userID)
	d.record(ctx, "get", start, err)
	return record, err
}

// UpdateProfile records metrics for profile update operations.
func (d *directoryWithMetrics) UpdateProfile(
	ctx context.Context,
	userID string,
	input appValidation.ProfileInput,
) (*domain.UserRecord, error) {
	start := time.Now()
	record, err := d.next.UpdateProfile(ctx, userID, input)
	d.record(ctx, "update_profile", start, err)
	return record, err
}

// UpdateSettings records metrics for settings update operations.
func (d *directoryWithMetrics) UpdateSettings(
	ctx context.Context,
	userID string,
	input appValidation.SettingsInput,
) (*domain.Settings, error) {
	start := time.Now()
	settings, err := d.next.UpdateSettings(ctx, userID, input)
	d.record(ctx, "update_settings", start, err)
	return settings, err
}

// ValidateSession records metrics for session validation operations.
func (d *directoryWithMetrics) ValidateSession(
	ctx context.Context,
	token, expectedUserID string,
) (*ValidateSessionOutput, error) {
	start := time.Now()
	output, err := d.next.ValidateSession(ctx, token, expectedUserID)
	d.record(ctx, "validate_session", start, err)
	return output, err
}

// DeleteUser records metrics for user deletion operations.
func (d *directoryWithMetrics) DeleteUser(ctx context.Context, userID string) error {
	start := time.Now()
	err := d.next.DeleteUser(ctx, userID)
	d.record(ctx, "delete", start, err)
	return err
}

// Stats records metrics for stats operations.
func (d *directoryWithMetrics) Stats(ctx context.Context) (*domain.Stats, error) {
	start := time.Now()
	stats, err := d.next.Stats(ctx)
	d.record(ctx, "stats", start, err)
	return stats, err
}
