package storage

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	quotaFile   = "user_data.json"
	historyFile = "chat_history.json"
)

// UserRecord tracks one user's daily and lifetime usage. MessageCount is
// reset on day rollover; TotalMessages never resets.
type UserRecord struct {
	LastReset     string `json:"last_reset"`
	MessageCount  int    `json:"message_count"`
	TotalMessages int    `json:"total_messages"`
}

// HistoryEntry is one recorded question/response interaction. Username is a
// snapshot taken at interaction time.
type HistoryEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Username  string    `json:"username"`
	Question  string    `json:"question"`
	Response  string    `json:"response"`
}

// QuotaDoc and HistoryDoc mirror the two persisted JSON documents, keyed by
// user ID.
type (
	QuotaDoc   map[string]*UserRecord
	HistoryDoc map[string][]HistoryEntry
)

// Store persists the quota and history documents as two JSON files under a
// data directory. Every save rewrites each file in full.
type Store struct {
	quotaPath   string
	historyPath string
}

func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Store{
		quotaPath:   filepath.Join(dataDir, quotaFile),
		historyPath: filepath.Join(dataDir, historyFile),
	}, nil
}

// Load reads both documents from disk. A missing file yields an empty
// document. An unreadable or unparseable file is logged and also yields an
// empty document, so startup never fails on bad data.
func (s *Store) Load() (QuotaDoc, HistoryDoc) {
	quota := make(QuotaDoc)
	if err := readDoc(s.quotaPath, &quota); err != nil {
		log.Printf("[WARN] Discarding quota document %s: %v", s.quotaPath, err)
		quota = make(QuotaDoc)
	}

	history := make(HistoryDoc)
	if err := readDoc(s.historyPath, &history); err != nil {
		log.Printf("[WARN] Discarding history document %s: %v", s.historyPath, err)
		history = make(HistoryDoc)
	}

	return quota, history
}

// Save serializes both documents and overwrites the previous files in full.
func (s *Store) Save(quota QuotaDoc, history HistoryDoc) error {
	if err := writeDoc(s.quotaPath, quota); err != nil {
		return fmt.Errorf("quota document: %w", err)
	}
	if err := writeDoc(s.historyPath, history); err != nil {
		return fmt.Errorf("history document: %w", err)
	}
	return nil
}

func readDoc(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read file: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("invalid JSON format: %w", err)
	}
	return nil
}

func writeDoc(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}
	return writeFileAtomic(path, data)
}

// writeFileAtomic performs an atomic file write using a temporary file and
// rename, so a crash mid-save never leaves a half-written document.
func writeFileAtomic(path string, data []byte) error {
	tmpFile := path + ".tmp"

	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	file, err := os.OpenFile(tmpFile, os.O_RDWR, 0644)
	if err != nil {
		os.Remove(tmpFile)
		return fmt.Errorf("failed to open temp file for sync: %w", err)
	}

	if err := file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	file.Close()

	if err := os.Rename(tmpFile, path); err != nil {
		os.Remove(tmpFile)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}
