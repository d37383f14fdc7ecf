// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-upload-stager/internal/config"
	"github.com/MKhiriev/go-upload-stager/internal/logger"
	"github.com/MKhiriev/go-upload-stager/internal/notifier"
	"github.com/MKhiriev/go-upload-stager/internal/staging"
	"github.com/MKhiriev/go-upload-stager/internal/utils"
	"github.com/MKhiriev/go-upload-stager/internal/validators"
	"github.com/MKhiriev/go-upload-stager/models"
)

// session is one staging buffer served over HTTP.
type session struct {
	id        string
	buffer    *staging.Buffer
	queue     *notifier.Queue
	createdAt time.Time

	mu       sync.Mutex
	lastSeen time.Time
}

func (s *session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *session) view() models.SessionView {
	return models.SessionView{
		ID:        s.id,
		Policy:    s.buffer.Policy(),
		Files:     s.buffer.Files(),
		Revision:  s.buffer.Revision(),
		DragState: s.buffer.DragState(),
		Seeded:    s.buffer.Seeded(),
		CreatedAt: s.createdAt,
		UpdatedAt: s.idleSince(),
	}
}

type stagingService struct {
	policy           config.Staging
	defaults         []models.FileDescriptor
	ttl              time.Duration
	rejectionMessage string

	fetcher staging.Fetcher
	ids     utils.IDGenerator
	now     func() time.Time

	mu       sync.RWMutex
	sessions map[string]*session

	logger *logger.Logger
}

// NewStagingService builds the session manager. fetcher resolves default
// descriptors for every session; it may be nil, in which case defaults stay
// zero-byte placeholders.
func NewStagingService(cfg config.StructuredConfig, fetcher staging.Fetcher, ids utils.IDGenerator, logger *logger.Logger) (StagingService, error) {
	if cfg.Workers.SessionTTL <= 0 {
		return nil, ErrInvalidTTL
	}
	if ids == nil {
		ids = utils.NewUUIDGenerator()
	}

	return &stagingService{
		policy:           cfg.Staging,
		defaults:         cfg.Defaults,
		ttl:              cfg.Workers.SessionTTL,
		rejectionMessage: cfg.Staging.RejectionMessage,
		fetcher:          fetcher,
		ids:              ids,
		now:              time.Now,
		sessions:         make(map[string]*session),
		logger:           logger,
	}, nil
}

func (s *stagingService) Create(ctx context.Context, req models.CreateSessionRequest) (models.SessionView, error) {
	policy := s.defaultPolicy()
	if req.Policy != nil {
		policy = *req.Policy
	}
	if policy.Limit < 0 {
		return models.SessionView{}, fmt.Errorf("%w: negative limit %d", ErrInvalidPolicy, policy.Limit)
	}

	defaults := req.Defaults
	if len(defaults) == 0 {
		defaults = s.defaults
	}

	id := s.ids.Generate()
	now := s.now()
	sessionLogger := s.logger.WithStr("session_id", id)
	queue := notifier.NewQueue(notifier.DefaultQueueSize)

	sess := &session{
		id:        id,
		queue:     queue,
		createdAt: now,
		lastSeen:  now,
	}
	sess.buffer = staging.New(staging.Options{
		Policy:   policy,
		Validate: validators.FromPolicy(policy, s.policy.MaxFileSize),
		OnChange: func(next, prev []models.StagedFile) {
			sess.touch(s.now())
			sessionLogger.Debug().Int("before", len(prev)).Int("after", len(next)).Msg("staged files changed")
		},
		OnRemove: func(next []models.StagedFile) {
			sess.touch(s.now())
			sessionLogger.Debug().Int("after", len(next)).Msg("staged file removed")
		},
		Fetcher:          s.fetcher,
		Notifier:         notifier.Multi{queue, notifier.NewLog(sessionLogger)},
		RejectionMessage: s.rejectionMessage,
		Logger:           sessionLogger,
	})

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	seeded := sess.buffer.Initialize(ctx, defaults)
	sessionLogger.Info().
		Int("limit", policy.Limit).
		Int("defaults", len(defaults)).
		Bool("seeded", seeded).
		Msg("staging session created")

	return sess.view(), nil
}

func (s *stagingService) Get(ctx context.Context, id string) (models.SessionView, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return models.SessionView{}, err
	}
	return sess.view(), nil
}

func (s *stagingService) Add(ctx context.Context, id string, files ...models.StagedFile) (models.SessionView, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return models.SessionView{}, err
	}

	if err = sess.buffer.Add(ctx, files...); err != nil {
		return sess.view(), fmt.Errorf("error adding files to session %s: %w", id, err)
	}
	return sess.view(), nil
}

func (s *stagingService) Drop(ctx context.Context, id string, files ...models.StagedFile) (models.SessionView, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return models.SessionView{}, err
	}

	if err = sess.buffer.Drop(ctx, files...); err != nil {
		return sess.view(), fmt.Errorf("error dropping files into session %s: %w", id, err)
	}
	return sess.view(), nil
}

func (s *stagingService) Remove(ctx context.Context, id string, index int) (models.SessionView, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return models.SessionView{}, err
	}

	if err = sess.buffer.Remove(index); err != nil {
		return sess.view(), fmt.Errorf("error removing file from session %s: %w", id, err)
	}
	return sess.view(), nil
}

func (s *stagingService) Synchronize(ctx context.Context, id string, external []models.StagedFile) (models.SessionView, bool, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return models.SessionView{}, false, err
	}

	changed := sess.buffer.Synchronize(external)
	if changed {
		sess.touch(s.now())
	}
	return sess.view(), changed, nil
}

func (s *stagingService) Drag(ctx context.Context, id string, event models.DragEvent) (models.SessionView, error) {
	switch event {
	case models.DragEventEnter, models.DragEventOver, models.DragEventLeave:
	default:
		return models.SessionView{}, fmt.Errorf("%w: %q", ErrUnknownDragEvent, event)
	}

	sess, err := s.lookup(id)
	if err != nil {
		return models.SessionView{}, err
	}

	sess.buffer.HandleDragEvent(event)
	return sess.view(), nil
}

func (s *stagingService) File(ctx context.Context, id string, index int) (models.StagedFile, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return models.StagedFile{}, err
	}

	files := sess.buffer.Files()
	if index < 0 || index >= len(files) {
		return models.StagedFile{}, fmt.Errorf("%w: %d of %d", staging.ErrIndexOutOfRange, index, len(files))
	}
	return files[index], nil
}

func (s *stagingService) Notifications(ctx context.Context, id string) ([]models.Notification, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	return sess.queue.Drain(), nil
}

func (s *stagingService) Close(ctx context.Context, id string) error {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	sess.buffer.Close()
	s.logger.Info().Str("session_id", id).Msg("staging session closed")
	return nil
}

func (s *stagingService) Sweep(ctx context.Context, now time.Time) int {
	deadline := now.Add(-s.ttl)

	s.mu.Lock()
	var expired []*session
	for id, sess := range s.sessions {
		if sess.idleSince().Before(deadline) {
			expired = append(expired, sess)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, sess := range expired {
		sess.buffer.Close()
		s.logger.Info().Str("session_id", sess.id).Time("last_seen", sess.idleSince()).Msg("idle staging session swept")
	}
	return len(expired)
}

// lookup finds a live session and marks it as seen.
func (s *stagingService) lookup(id string) (*session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	sess.touch(s.now())
	return sess, nil
}

func (s *stagingService) defaultPolicy() models.UploadPolicy {
	return models.UploadPolicy{
		Limit:    s.policy.Limit,
		Accept:   s.policy.Accept,
		Multiple: s.policy.Multiple,
		Drag:     s.policy.Drag,
	}
}
