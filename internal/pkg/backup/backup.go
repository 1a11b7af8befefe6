package backup

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// Runner produces timestamped SQL dumps of the database with pg_dump.
type Runner struct {
	databaseURL string
	dir         string
}

func NewRunner(databaseURL, dir string) *Runner {
	return &Runner{databaseURL: databaseURL, dir: dir}
}

// Run writes a dump named backup_<YYYYMMDD_HHMMSS>.sql into the backup
// directory and returns its path.
func (r *Runner) Run(ctx context.Context) (string, error) {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	filename := fmt.Sprintf("backup_%s.sql", time.Now().Format("20060102_150405"))
	path := filepath.Join(r.dir, filename)

	cmd := exec.CommandContext(ctx, "pg_dump", "--no-owner", "--file", path, r.databaseURL)
	if out, err := cmd.CombinedOutput(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("pg_dump: %w: %s", err, string(out))
	}

	return path, nil
}
