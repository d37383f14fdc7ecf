package service

import (
	"context"

	"github.com/MKhiriev/go-upload-stager/internal/logger"
	"github.com/rs/zerolog"
)

func logResult(ctx context.Context, op, id string, err error) *zerolog.Event {
	log := logger.FromContext(ctx)
	if err != nil {
		return log.Warn().Err(err).Str("op", op).Str("session_id", id)
	}
	return log.Debug().Str("op", op).Str("session_id", id)
}
