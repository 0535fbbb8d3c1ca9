package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BahathJob/Bahath-Jobs-sub000/internal/models"
)

func TestListNotificationsScopedToOwner(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNotificationService(db)

	owner := createUser(t, db, models.RoleEmployer, "owner@test.dev")
	other := createUser(t, db, models.RoleEmployer, "other@test.dev")

	require.NoError(t, db.Create(&models.Notification{UserID: owner.ID, Title: "First"}).Error)
	require.NoError(t, db.Create(&models.Notification{UserID: owner.ID, Title: "Second"}).Error)
	require.NoError(t, db.Create(&models.Notification{UserID: other.ID, Title: "Not yours"}).Error)

	list, err := svc.ListForUser(owner.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, n := range list {
		assert.Equal(t, owner.ID, n.UserID)
	}
}

func TestMarkReadSetsReadAt(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNotificationService(db)
	owner := createUser(t, db, models.RoleEmployer, "owner@test.dev")

	row := models.Notification{UserID: owner.ID, Title: "New Job Application"}
	require.NoError(t, db.Create(&row).Error)

	got, err := svc.MarkRead(owner.ID, row.ID)
	require.NoError(t, err)
	assert.True(t, got.IsRead)
	require.NotNil(t, got.ReadAt)

	var stored models.Notification
	require.NoError(t, db.First(&stored, row.ID).Error)
	assert.True(t, stored.IsRead)
	require.NotNil(t, stored.ReadAt)
}

func TestMarkReadAlreadyRead(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNotificationService(db)
	owner := createUser(t, db, models.RoleEmployer, "owner@test.dev")

	readAt := time.Now().Add(-time.Hour)
	row := models.Notification{UserID: owner.ID, Title: "Old news", IsRead: true, ReadAt: &readAt}
	require.NoError(t, db.Create(&row).Error)

	got, err := svc.MarkRead(owner.ID, row.ID)
	require.NoError(t, err)
	assert.True(t, got.IsRead)

	// The original read timestamp survives a second mark.
	var stored models.Notification
	require.NoError(t, db.First(&stored, row.ID).Error)
	require.NotNil(t, stored.ReadAt)
	assert.WithinDuration(t, readAt, *stored.ReadAt, time.Second)
}

func TestMarkReadNotOwner(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNotificationService(db)
	owner := createUser(t, db, models.RoleEmployer, "owner@test.dev")
	stranger := createUser(t, db, models.RoleJobSeeker, "stranger@test.dev")

	row := models.Notification{UserID: owner.ID, Title: "Private"}
	require.NoError(t, db.Create(&row).Error)

	_, err := svc.MarkRead(stranger.ID, row.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var stored models.Notification
	require.NoError(t, db.First(&stored, row.ID).Error)
	assert.False(t, stored.IsRead)
}
