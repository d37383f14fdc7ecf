package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-upload-stager/internal/logger"
	"github.com/MKhiriev/go-upload-stager/models"
)

// StagingLoggingService logs the outcome of every mutating call of the
// wrapped StagingService with the request-scoped logger.
type StagingLoggingService struct {
	inner StagingService
}

func NewStagingLoggingService() StagingServiceWrapper {
	return &StagingLoggingService{}
}

func (l *StagingLoggingService) Wrap(inner StagingService) StagingService {
	l.inner = inner
	return l
}

func (l *StagingLoggingService) Create(ctx context.Context, req models.CreateSessionRequest) (models.SessionView, error) {
	view, err := l.inner.Create(ctx, req)
	logResult(ctx, "create", view.ID, err).Int("files", len(view.Files)).Msg("staging call")
	return view, err
}

func (l *StagingLoggingService) Get(ctx context.Context, id string) (models.SessionView, error) {
	return l.inner.Get(ctx, id)
}

func (l *StagingLoggingService) Add(ctx context.Context, id string, files ...models.StagedFile) (models.SessionView, error) {
	view, err := l.inner.Add(ctx, id, files...)
	logResult(ctx, "add", id, err).Int("candidates", len(files)).Int("files", len(view.Files)).Msg("staging call")
	return view, err
}

func (l *StagingLoggingService) Drop(ctx context.Context, id string, files ...models.StagedFile) (models.SessionView, error) {
	view, err := l.inner.Drop(ctx, id, files...)
	logResult(ctx, "drop", id, err).Int("candidates", len(files)).Int("files", len(view.Files)).Msg("staging call")
	return view, err
}

func (l *StagingLoggingService) Remove(ctx context.Context, id string, index int) (models.SessionView, error) {
	view, err := l.inner.Remove(ctx, id, index)
	logResult(ctx, "remove", id, err).Int("index", index).Int("files", len(view.Files)).Msg("staging call")
	return view, err
}

func (l *StagingLoggingService) Synchronize(ctx context.Context, id string, external []models.StagedFile) (models.SessionView, bool, error) {
	view, changed, err := l.inner.Synchronize(ctx, id, external)
	logResult(ctx, "synchronize", id, err).Bool("changed", changed).Uint64("revision", view.Revision).Msg("staging call")
	return view, changed, err
}

func (l *StagingLoggingService) Drag(ctx context.Context, id string, event models.DragEvent) (models.SessionView, error) {
	return l.inner.Drag(ctx, id, event)
}

func (l *StagingLoggingService) File(ctx context.Context, id string, index int) (models.StagedFile, error) {
	return l.inner.File(ctx, id, index)
}

func (l *StagingLoggingService) Notifications(ctx context.Context, id string) ([]models.Notification, error) {
	return l.inner.Notifications(ctx, id)
}

func (l *StagingLoggingService) Close(ctx context.Context, id string) error {
	err := l.inner.Close(ctx, id)
	logResult(ctx, "close", id, err).Msg("staging call")
	return err
}

func (l *StagingLoggingService) Sweep(ctx context.Context, now time.Time) int {
	swept := l.inner.Sweep(ctx, now)
	if swept > 0 {
		logger.FromContext(ctx).Info().Int("swept", swept).Msg("staging sweep")
	}
	return swept
}
