package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"storeapi.app/config"
	"storeapi.app/models"
	"storeapi.app/repository"
)

func TestScheduler_CleansExpiredCodesOnStart(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.OTPVerification{}))

	otpRepo := repository.NewOTPRepository(db)
	now := time.Now()
	require.NoError(t, otpRepo.Upsert(context.Background(), &models.OTPVerification{
		Email:     "stale@example.com",
		OTP:       "123456",
		CreatedAt: now.Add(-2 * time.Hour),
		ExpiresAt: now.Add(-time.Hour),
	}))
	require.NoError(t, otpRepo.Upsert(context.Background(), &models.OTPVerification{
		Email:     "fresh@example.com",
		OTP:       "654321",
		CreatedAt: now,
		ExpiresAt: now.Add(5 * time.Minute),
	}))

	cfg := &config.Config{OTP: config.OTPConfig{ExpiryMinutes: 5, CleanupInterval: 60}}
	sched := NewScheduler(db, cfg)
	sched.Start()
	defer sched.Stop()

	// The first cleanup runs immediately; poll until it lands
	assert.Eventually(t, func() bool {
		stale, err := otpRepo.FindByEmail(context.Background(), "stale@example.com")
		return err == nil && stale == nil
	}, time.Second, 10*time.Millisecond)

	fresh, err := otpRepo.FindByEmail(context.Background(), "fresh@example.com")
	assert.NoError(t, err)
	assert.NotNil(t, fresh)
}

func TestScheduler_StopIsIdempotentPerInstance(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.OTPVerification{}))

	cfg := &config.Config{OTP: config.OTPConfig{ExpiryMinutes: 5, CleanupInterval: 60}}
	sched := NewScheduler(db, cfg)
	sched.Start()

	// Stop returns promptly and the goroutine exits
	done := make(chan struct{})
	go func() {
		sched.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return")
	}
}
