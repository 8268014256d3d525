// Package scheduler implements background job scheduling
package scheduler

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"
	"storeapi.app/config"
	"storeapi.app/repository"
)

// Scheduler manages periodic tasks for the application
type Scheduler struct {
	db      *gorm.DB
	config  *config.Config
	otpRepo *repository.OTPRepository
	stopCh  chan struct{}
}

// NewScheduler creates and configures a new task scheduler
func NewScheduler(db *gorm.DB, config *config.Config) *Scheduler {
	return &Scheduler{
		db:      db,
		config:  config,
		otpRepo: repository.NewOTPRepository(db),
		stopCh:  make(chan struct{}),
	}
}

// Start begins the scheduler's operations
func (s *Scheduler) Start() {
	interval := time.Duration(s.config.OTP.CleanupInterval) * time.Minute
	go s.scheduleInterval(interval, s.cleanupExpiredOTPs)
}

// Stop halts all scheduled jobs
func (s *Scheduler) Stop() {
	close(s.stopCh)
}

func (s *Scheduler) scheduleInterval(interval time.Duration, job func()) {
	job()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			job()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Scheduler) cleanupExpiredOTPs() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := s.otpRepo.DeleteExpired(ctx); err != nil {
		log.Printf("Error cleaning up expired verification codes: %v\n", err)
	}
}
