package repository

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
)

// WriteArchive persists a snapshot as a compressed file. Archives accumulate
// one per round under the snapshot directory and survive the hot store.
func WriteArchive(dir string, snap *GameSnapshotV1) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("can't create snapshot dir: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("%s-%s.json.zst", snap.ID, snap.SavedAt))

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", fmt.Errorf("can't create archive: %w", err)
	}
	defer f.Close()

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return "", fmt.Errorf("can't create encoder: %w", err)
	}
	defer enc.Close()

	bw := bufio.NewWriter(enc)
	defer bw.Flush()

	if err = json.NewEncoder(bw).Encode(snap); err != nil {
		return "", fmt.Errorf("can't encode snapshot: %w", err)
	}

	return path, nil
}

// ReadArchive loads a snapshot previously written by WriteArchive.
func ReadArchive(path string) (*GameSnapshotV1, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("can't open archive: %w", err)
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("can't create decoder: %w", err)
	}
	defer dec.Close()

	var snap GameSnapshotV1
	if err = json.NewDecoder(bufio.NewReader(dec)).Decode(&snap); err != nil {
		return nil, fmt.Errorf("can't decode snapshot: %w", err)
	}

	return &snap, nil
}
