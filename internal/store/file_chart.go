package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-expense-tracker/internal/logger"
)

// chartFileStorage is the file-system implementation of [ChartStorage]. Each
// user owns one PNG in dir, named after the display name with a short email
// digest appended so two users sharing a name never overwrite each other.
type chartFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewChartFileStorage constructs a [ChartStorage] rooted at dir. The
// directory is created on the first save.
func NewChartFileStorage(dir string, logger *logger.Logger) ChartStorage {
	logger.Debug().Str("dir", dir).Msg("creating chart file storage")
	return &chartFileStorage{
		dir:    dir,
		logger: logger,
	}
}

func (c *chartFileStorage) SaveChart(ctx context.Context, name, email string, png []byte) (string, error) {
	log := logger.FromContext(ctx)
	fileName := ChartFileName(name, email)

	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		log.Err(err).Str("func", "*chartFileStorage.SaveChart").Msg("error creating chart directory")
		return "", fmt.Errorf("%w: creating chart directory: %w", ErrStoreUnavailable, err)
	}

	tmp, err := os.CreateTemp(c.dir, fileName+".*.tmp")
	if err != nil {
		log.Err(err).Str("func", "*chartFileStorage.SaveChart").Msg("error creating temp chart file")
		return "", fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(png); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("%w: writing chart: %w", ErrStoreUnavailable, err)
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("%w: closing chart: %w", ErrStoreUnavailable, err)
	}

	// readers never see a half-written image
	if err = os.Rename(tmpName, filepath.Join(c.dir, fileName)); err != nil {
		_ = os.Remove(tmpName)
		log.Err(err).Str("func", "*chartFileStorage.SaveChart").Msg("error renaming chart file")
		return "", fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return fileName, nil
}

func (c *chartFileStorage) OpenChart(ctx context.Context, name, email string) (ChartFile, error) {
	fileName := ChartFileName(name, email)

	f, err := os.Open(filepath.Join(c.dir, fileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ChartFile{}, ErrChartNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*chartFileStorage.OpenChart").Msg("error opening chart")
		return ChartFile{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return ChartFile{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return ChartFile{ReadSeekCloser: f, Name: fileName, ModTime: info.ModTime()}, nil
}

func (c *chartFileStorage) DeleteChart(ctx context.Context, name, email string) error {
	err := os.Remove(filepath.Join(c.dir, ChartFileName(name, email)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.FromContext(ctx).Err(err).Str("func", "*chartFileStorage.DeleteChart").Msg("error deleting chart")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return nil
}

// maxChartNameLength keeps chart file names well under the 255 byte limit of
// common filesystems.
const maxChartNameLength = 64

// ChartFileName returns the chart file name of a user: the display name with
// every character outside [A-Za-z0-9_-] replaced by '_' and cut to
// maxChartNameLength, a dash, the first eight hex digits of sha256(email) and
// ".png".
func ChartFileName(name, email string) string {
	sanitized := strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_') {
			return r
		}
		return '_'
	}, name)
	if len(sanitized) > maxChartNameLength {
		sanitized = sanitized[:maxChartNameLength]
	}
	if sanitized == "" {
		sanitized = "chart"
	}

	sum := sha256.Sum256([]byte(strings.ToLower(email)))

	return sanitized + "-" + hex.EncodeToString(sum[:4]) + ".png"
}
