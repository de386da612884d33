// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/julekalender/internal/logger"
	"github.com/MKhiriev/julekalender/internal/mock"
	"github.com/MKhiriev/julekalender/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type launcherMocks struct {
	participants   *mock.MockParticipantService
	visualizations *mock.MockVisualizationService
	window         *mock.MockWindowLauncher
}

func newTestLauncher(t *testing.T) (Launcher, launcherMocks) {
	ctrl := gomock.NewController(t)
	m := launcherMocks{
		participants:   mock.NewMockParticipantService(ctrl),
		visualizations: mock.NewMockVisualizationService(ctrl),
		window:         mock.NewMockWindowLauncher(ctrl),
	}
	return NewLauncherService(m.participants, m.visualizations, m.window, logger.Nop()), m
}

func TestLauncher_ParticipantOperations(t *testing.T) {
	ctx := context.Background()
	l, m := newTestLauncher(t)

	alice := models.Participant{ID: "p-1", Name: "Alice", Enabled: true}
	update := models.ParticipantUpdate{Name: ptr("Alicia")}

	m.participants.EXPECT().ListEnabledNames(ctx).Return([]string{"Alice"})
	m.participants.EXPECT().List(ctx).Return([]models.Participant{alice})
	m.participants.EXPECT().Add(ctx, "Alice").Return(alice, nil)
	m.participants.EXPECT().Update(ctx, "p-1", update).Return(nil, nil)
	m.participants.EXPECT().Toggle(ctx, "p-1").Return(&alice, nil)
	m.participants.EXPECT().Delete(ctx, "p-1").Return(nil)

	names, err := l.GetEnabledNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice"}, names)

	all, err := l.GetAllParticipants(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Participant{alice}, all)

	added, err := l.AddParticipant(ctx, "Alice")
	require.NoError(t, err)
	assert.Equal(t, alice, added)

	updated, err := l.UpdateParticipant(ctx, "p-1", update)
	require.NoError(t, err)
	assert.Nil(t, updated)

	toggled, err := l.ToggleParticipant(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, &alice, toggled)

	require.NoError(t, l.DeleteParticipant(ctx, "p-1"))
}

func TestLauncher_AddParticipantValidationError(t *testing.T) {
	ctx := context.Background()
	l, m := newTestLauncher(t)

	m.participants.EXPECT().Add(ctx, "").Return(models.Participant{}, ErrEmptyParticipantName)

	_, err := l.AddParticipant(ctx, "")
	assert.ErrorIs(t, err, ErrEmptyParticipantName)
}

func TestLauncher_VisualizationOperations(t *testing.T) {
	ctx := context.Background()
	l, m := newTestLauncher(t)

	snow := models.Visualization{ID: "snow", Name: "Snow"}
	launchErr := errors.New("browser missing")

	m.visualizations.EXPECT().Discover(ctx).Return([]models.Visualization{snow})
	m.window.EXPECT().Launch(ctx, "snow").Return(nil)
	m.window.EXPECT().Launch(ctx, "broken").Return(launchErr)

	got, err := l.GetVisualizations(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Visualization{snow}, got)

	require.NoError(t, l.LaunchVisualization(ctx, "snow"))
	assert.ErrorIs(t, l.LaunchVisualization(ctx, "broken"), launchErr)
}
