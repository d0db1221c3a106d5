package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"time"

	"github.com/telebill/telebill/internal/shared/logger"
)

var (
	migrationNamePattern = regexp.MustCompile(`^[a-z0-9_]+$`)
	pairFilePattern      = regexp.MustCompile(`^(\d+)_.+\.(up|down)\.sql$`)
)

// Generator creates golang-migrate up/down file pairs. goose files are created
// through GooseStrategy.Create.
type Generator struct {
	scriptsPath string
	logger      logger.Interface
	now         func() time.Time
}

// NewGenerator creates a new migration generator
func NewGenerator(scriptsPath string, log logger.Interface) *Generator {
	return &Generator{
		scriptsPath: scriptsPath,
		logger:      log.With("component", "migration.generator"),
		now:         time.Now,
	}
}

// CreateMigration writes NNNNNN_name.up.sql and NNNNNN_name.down.sql using
// the next free sequence number and returns both paths.
func (g *Generator) CreateMigration(name string) (upPath, downPath string, err error) {
	if !migrationNamePattern.MatchString(name) {
		return "", "", fmt.Errorf("migration name %q must be lower snake case", name)
	}

	if err := os.MkdirAll(g.scriptsPath, 0o755); err != nil {
		return "", "", fmt.Errorf("failed to create scripts directory: %w", err)
	}

	next, err := g.nextVersion()
	if err != nil {
		return "", "", err
	}

	prefix := fmt.Sprintf("%06d_%s", next, name)
	upPath = filepath.Join(g.scriptsPath, prefix+".up.sql")
	downPath = filepath.Join(g.scriptsPath, prefix+".down.sql")

	created := g.now().Format("2006-01-02 15:04:05")
	if err := writeNew(upPath, fmt.Sprintf("-- Migration: %s\n-- Created: %s\n\n", name, created)); err != nil {
		return "", "", fmt.Errorf("failed to create up migration file: %w", err)
	}
	if err := writeNew(downPath, fmt.Sprintf("-- Rollback Migration: %s\n-- Created: %s\n\n", name, created)); err != nil {
		return "", "", fmt.Errorf("failed to create down migration file: %w", err)
	}

	g.logger.Infow("migration files created successfully", "up_file", upPath, "down_file", downPath)
	return upPath, downPath, nil
}

func (g *Generator) nextVersion() (int, error) {
	entries, err := os.ReadDir(g.scriptsPath)
	if err != nil {
		return 0, fmt.Errorf("failed to read scripts directory: %w", err)
	}

	highest := 0
	for _, e := range entries {
		m := pairFilePattern.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		if v, err := strconv.Atoi(m[1]); err == nil && v > highest {
			highest = v
		}
	}
	return highest + 1, nil
}

// writeNew refuses to overwrite an existing file
func writeNew(path, content string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteString(content)
	return err
}
