package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/narender/product-console/common/telemetry/attributes"
	commontrace "github.com/narender/product-console/common/telemetry/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// ErrNotFound is returned by Read when the file does not exist yet.
var ErrNotFound = errors.New("database file not found")

// FileDatabase stores one JSON document in a file. It does no locking;
// callers serialize access.
type FileDatabase struct {
	filePath string
	logger   *slog.Logger
}

// NewFileDatabase creates a new instance of FileDatabase.
func NewFileDatabase(filePath string, logger *slog.Logger) *FileDatabase {
	return &FileDatabase{
		filePath: filePath,
		logger:   logger,
	}
}

// Read loads the JSON file into dest. A missing file yields ErrNotFound.
func (db *FileDatabase) Read(ctx context.Context, dest any) (opErr error) {
	ctx, span := commontrace.StartSpan(ctx,
		semconv.DBSystemKey.String("file"),
		semconv.DBOperationName("READ"),
		attributes.AttrDBFilePathKey.String(db.filePath),
	)
	defer commontrace.EndSpan(span, &opErr, nil)

	db.logger.DebugContext(ctx, "FileDB: Reading data from file", slog.String("file_path", db.filePath))

	fileContent, err := os.ReadFile(db.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNotFound, db.filePath)
	}
	if err != nil {
		db.logger.ErrorContext(ctx, "FileDB: Failed to read data file", slog.String("file_path", db.filePath), slog.Any("error", err))
		return err
	}

	if err := json.Unmarshal(fileContent, dest); err != nil {
		db.logger.ErrorContext(ctx, "FileDB: Failed to unmarshal JSON data", slog.String("file_path", db.filePath), slog.Any("error", err))
		return err
	}
	return nil
}

// Write marshals data to JSON and replaces the file. The content goes to a
// temporary file first and is renamed into place.
func (db *FileDatabase) Write(ctx context.Context, data any) (opErr error) {
	ctx, span := commontrace.StartSpan(ctx,
		semconv.DBSystemKey.String("file"),
		semconv.DBOperationName("WRITE"),
		attributes.AttrDBFilePathKey.String(db.filePath),
	)
	defer commontrace.EndSpan(span, &opErr, nil)

	db.logger.DebugContext(ctx, "FileDB: Writing data to file", slog.String("file_path", db.filePath))

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		db.logger.ErrorContext(ctx, "FileDB: Failed to marshal data to JSON", slog.String("file_path", db.filePath), slog.Any("error", err))
		return err
	}

	dir := filepath.Dir(db.filePath)
	tmp, err := os.CreateTemp(dir, filepath.Base(db.filePath)+".*.tmp")
	if err != nil {
		db.logger.ErrorContext(ctx, "FileDB: Failed to create temp file", slog.String("dir", dir), slog.Any("error", err))
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(jsonData); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), db.filePath); err != nil {
		db.logger.ErrorContext(ctx, "FileDB: Failed to replace data file", slog.String("file_path", db.filePath), slog.Any("error", err))
		return err
	}
	return nil
}

// FilePath returns the path to the database file.
func (db *FileDatabase) FilePath() string {
	return db.filePath
}
