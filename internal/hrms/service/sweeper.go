package service

import (
	"context"
	"log/slog"
	"time"
)

// Sweeper periodically marks attendance records that were never checked
// out as incomplete.
type Sweeper struct {
	Attendance *AttendanceService
	Logger     *slog.Logger
	Interval   time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewSweeper creates a sweeper. If interval is 0 or negative, defaults to 1 hour.
func NewSweeper(attendance *AttendanceService, logger *slog.Logger, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Sweeper{
		Attendance: attendance,
		Logger:     logger,
		Interval:   interval,
		stopCh:     make(chan struct{}),
		doneCh:     make(chan struct{}),
	}
}

// Start runs a sweep immediately and then every Interval until Stop.
func (s *Sweeper) Start() {
	go s.run()
	s.Logger.Info("attendance sweeper started", "interval", s.Interval)
}

// Stop blocks until an in-progress sweep has finished.
func (s *Sweeper) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("attendance sweeper stopped")
}

func (s *Sweeper) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.sweep()
	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Sweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := s.Attendance.Sweep(ctx)
	if err != nil {
		s.Logger.Error("attendance sweep failed", "error", err)
		return
	}
	if n > 0 {
		s.Logger.Info("attendance sweep marked records incomplete", "count", n)
	} else {
		s.Logger.Debug("attendance sweep found nothing to mark")
	}
}
