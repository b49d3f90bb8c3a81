package kv

import (
	"context"
	"fmt"
	"os"
	"path"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	bolt "go.etcd.io/bbolt"
	"go.opencensus.io/trace"
)

const backupsDirectoryName = "backups"

// Backup copies the database into outputDir, or $DATADIR/backups when
// outputDir is empty, and returns the path of the written file.
// Example: $DATADIR/backups/lightclient_1651234567.backup
func (s *Store) Backup(ctx context.Context, outputDir string, permissionOverride bool) (string, error) {
	_, span := trace.StartSpan(ctx, "LightClientDB.Backup")
	defer span.End()

	backupsDir := path.Join(s.databasePath, backupsDirectoryName)
	if outputDir != "" {
		backupsDir = outputDir
	}
	// Ensure the backups directory exists.
	if err := os.MkdirAll(backupsDir, 0700); err != nil {
		return "", errors.Wrap(err, "could not create backups directory")
	}
	backupPath := path.Join(backupsDir, fmt.Sprintf("lightclient_%d.backup", time.Now().Unix()))
	logrus.WithField("prefix", "db").WithField("backup", backupPath).Info("Writing backup database")

	mode := os.FileMode(0600)
	if permissionOverride {
		mode = 0666
	}
	if err := s.db.View(func(tx *bolt.Tx) error {
		return tx.CopyFile(backupPath, mode)
	}); err != nil {
		return "", err
	}
	return backupPath, nil
}
