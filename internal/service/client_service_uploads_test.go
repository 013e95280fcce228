// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The waylog Authors

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"waylog/internal/logger"
	"waylog/internal/mock"
	"waylog/internal/store"
	"waylog/internal/utils"
	"waylog/models"
)

func newTestUploadSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	ClientUploadService,
	*mock.MockUploadRepository,
	*mock.MockBlobStorage,
	*mock.MockServerAdapter,
) {
	t.Helper()
	mockRepo := mock.NewMockUploadRepository(ctrl)
	mockBlobs := mock.NewMockBlobStorage(ctrl)
	mockAdapter := mock.NewMockServerAdapter(ctrl)

	storages := &store.ClientStorages{
		Uploads: mockRepo,
		Blobs:   mockBlobs,
	}
	svc := NewClientUploadService(storages, mockAdapter, utils.NewUUIDGenerator(), logger.Nop())
	return svc, mockRepo, mockBlobs, mockAdapter
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestClientUploadService_Create_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, mockAdapter := newTestUploadSvc(t, ctrl)
	ctx := context.Background()

	image := []byte("jpeg-bytes")
	voice := []byte("m4a-bytes")

	mockRepo.EXPECT().
		Add(ctx, gomock.Any(), image, voice).
		DoAndReturn(func(_ context.Context, entry models.UploadEntry, image []byte, voice []byte) (models.UploadEntry, error) {
			entry.HasImage = len(image) > 0
			entry.HasVoice = len(voice) > 0
			return entry, nil
		})
	mockAdapter.EXPECT().
		UploadEntry(ctx, gomock.Any(), image, voice).
		Return(models.UploadReceipt{Status: models.UploadStatusAccepted}, nil)

	entry, err := svc.Create(ctx, models.UploadDraft{Note: "morning walk", Image: image, Voice: voice})

	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "morning walk", entry.Note)
	assert.False(t, entry.Timestamp.IsZero())
	assert.True(t, entry.HasImage)
	assert.True(t, entry.HasVoice)
}

func TestClientUploadService_Create_EmptyDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestUploadSvc(t, ctrl)

	_, err := svc.Create(context.Background(), models.UploadDraft{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyEntry)
}

func TestClientUploadService_Create_SaveLocalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newTestUploadSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().
		Add(ctx, gomock.Any(), gomock.Nil(), gomock.Nil()).
		Return(models.UploadEntry{}, errors.New("db error"))

	_, err := svc.Create(ctx, models.UploadDraft{Note: "note only"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "save upload entry to local store")
}

func TestClientUploadService_Create_BackendFailureKeepsEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, mockAdapter := newTestUploadSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().
		Add(ctx, gomock.Any(), gomock.Nil(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, entry models.UploadEntry, _ []byte, _ []byte) (models.UploadEntry, error) {
			return entry, nil
		})
	mockAdapter.EXPECT().
		UploadEntry(ctx, gomock.Any(), gomock.Nil(), gomock.Nil()).
		Return(models.UploadReceipt{}, errors.New("connection refused"))

	entry, err := svc.Create(ctx, models.UploadDraft{Note: "kept locally"})

	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "kept locally", entry.Note)
}

// ── List / Delete / ClearAll ─────────────────────────────────────────────────

func TestClientUploadService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newTestUploadSvc(t, ctrl)

	want := []models.UploadEntry{{ID: "a"}, {ID: "b"}}
	mockRepo.EXPECT().All().Return(want)

	assert.Equal(t, want, svc.List())
}

func TestClientUploadService_Delete_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newTestUploadSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().Delete(ctx, "entry-1").Return(nil)

	require.NoError(t, svc.Delete(ctx, "entry-1"))
}

func TestClientUploadService_Delete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newTestUploadSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().Delete(ctx, "missing").Return(store.ErrUploadEntryNotFound)

	err := svc.Delete(ctx, "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrUploadEntryNotFound)
}

func TestClientUploadService_ClearAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newTestUploadSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().ClearAll(ctx).Return(nil)

	require.NoError(t, svc.ClearAll(ctx))
}

// ── Image / Voice ────────────────────────────────────────────────────────────

func TestClientUploadService_Image_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockBlobs, _ := newTestUploadSvc(t, ctrl)

	want := []byte("jpeg-bytes")
	mockBlobs.EXPECT().ReadImage("entry-1").Return(want, nil)

	got, err := svc.Image("entry-1")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientUploadService_Image_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockBlobs, _ := newTestUploadSvc(t, ctrl)

	mockBlobs.EXPECT().ReadImage("missing").Return(nil, store.ErrBlobNotFound)

	_, err := svc.Image("missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrBlobNotFound)
}

func TestClientUploadService_Voice_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockBlobs, _ := newTestUploadSvc(t, ctrl)

	want := []byte("m4a-bytes")
	mockBlobs.EXPECT().ReadVoice("entry-1").Return(want, nil)

	got, err := svc.Voice("entry-1")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}
