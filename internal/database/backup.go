package database

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// BackupOptions configures periodic database snapshots.
type BackupOptions struct {
	Interval      time.Duration
	StoragePath   string
	RetentionDays int
}

// BackupService copies the SQLite file to a timestamped snapshot on a fixed
// interval and prunes snapshots older than the retention window.
type BackupService struct {
	dbPath string
	opts   BackupOptions
	logger *zerolog.Logger
}

func NewBackupService(dbPath string, opts BackupOptions, logger *zerolog.Logger) *BackupService {
	return &BackupService{
		dbPath: dbPath,
		opts:   opts,
		logger: logger,
	}
}

// Start runs the backup loop until the context is canceled. The first backup
// runs immediately.
func (s *BackupService) Start(ctx context.Context) {
	s.logger.Info().
		Dur("interval", s.opts.Interval).
		Str("path", s.opts.StoragePath).
		Msg("Backup service started")

	ticker := time.NewTicker(s.opts.Interval)
	defer ticker.Stop()

	if err := s.PerformBackup(); err != nil {
		s.logger.Error().Err(err).Msg("Initial backup failed")
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.PerformBackup(); err != nil {
				s.logger.Error().Err(err).Msg("Scheduled backup failed")
			}
			s.CleanupOldBackups()
		}
	}
}

// PerformBackup writes a timestamped copy of the database file.
func (s *BackupService) PerformBackup() error {
	if err := os.MkdirAll(s.opts.StoragePath, 0o755); err != nil {
		return fmt.Errorf("failed to create backup directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	backupPath := filepath.Join(s.opts.StoragePath, fmt.Sprintf("backup_%s.db", timestamp))

	s.logger.Info().Str("path", backupPath).Msg("Performing database backup")

	source, err := os.Open(s.dbPath)
	if err != nil {
		return err
	}
	defer source.Close()

	destination, err := os.Create(backupPath)
	if err != nil {
		return err
	}
	defer destination.Close()

	if _, err := io.Copy(destination, source); err != nil {
		return err
	}

	s.logger.Info().Msg("Backup completed successfully")
	return nil
}

// CleanupOldBackups removes snapshots older than the retention window.
func (s *BackupService) CleanupOldBackups() {
	if s.opts.RetentionDays <= 0 {
		return
	}

	files, err := os.ReadDir(s.opts.StoragePath)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to read backup directory for cleanup")
		return
	}

	cutoff := time.Now().AddDate(0, 0, -s.opts.RetentionDays)

	for _, file := range files {
		if file.IsDir() {
			continue
		}

		info, err := file.Info()
		if err != nil {
			continue
		}

		if info.ModTime().Before(cutoff) {
			s.logger.Info().Str("file", file.Name()).Msg("Deleting old backup")
			os.Remove(filepath.Join(s.opts.StoragePath, file.Name()))
		}
	}
}
