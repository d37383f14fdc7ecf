// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal host of a staging buffer. Files are staged
// with a file picker, by pasting their paths (which is what dragging a file
// onto a terminal does) or by hydrating the configured defaults.
package tui

import (
	"context"

	"github.com/MKhiriev/go-upload-stager/internal/config"
	"github.com/MKhiriev/go-upload-stager/internal/logger"
	"github.com/MKhiriev/go-upload-stager/internal/staging"
	"github.com/MKhiriev/go-upload-stager/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	cfg       config.ClientConfig
	fetcher   staging.Fetcher
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(cfg config.ClientConfig, fetcher staging.Fetcher, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	return &TUI{cfg: cfg, fetcher: fetcher, buildInfo: buildInfo, logger: logger}, nil
}

// Run shows the stager until the user submits or quits, and returns the
// submitted files. Quitting returns ErrUserQuit.
func (t *TUI) Run(ctx context.Context) ([]models.StagedFile, error) {
	model := newStagerModel(ctx, t.cfg, t.fetcher, t.buildInfo, t.logger)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return nil, err
	}

	result, ok := finalModel.(stagerModel)
	if !ok {
		return nil, tea.ErrProgramKilled
	}
	if !result.submitted {
		return nil, ErrUserQuit
	}
	return result.Files(), nil
}
