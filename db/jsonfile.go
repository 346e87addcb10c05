package db

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
)

// readArray loads a JSON array file into a slice. A missing file or a file
// that fails to parse reads as an empty slice so that a storage glitch
// degrades into "no records" instead of breaking the live voice turn.
func readArray[T any](path string) []T {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("[WARN] Failed to read %s, treating as empty: %v", path, err)
		}
		return []T{}
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		log.Printf("[WARN] Malformed JSON in %s, treating as empty: %v", path, err)
		return []T{}
	}

	return records
}

// writeArray rewrites the whole array, pretty-printed. This is a plain
// truncate-and-write: a crash mid-write leaves a malformed file, and the
// next read treats it as empty.
func writeArray[T any](path string, records []T) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal records for %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
