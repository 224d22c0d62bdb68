// Package cache provides the keyed, TTL-based result cache that shields
// rate-limited providers from redundant queries.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Store is a file-backed cache keyed by hashed request parameters. Reads are
// safe for concurrent use and entries older than the TTL are treated as
// absent. Writes are idempotent: rewriting a key with fresher data is always
// safe.
type Store struct {
	rootDir string
	ttl     time.Duration

	mu  sync.Mutex
	now func() time.Time
}

type envelope struct {
	WrittenAt time.Time `json:"written_at"`
	Payload   []byte    `json:"payload"`
}

// NewStore creates a store rooted at dir. Entries expire after ttl.
func NewStore(dir string, ttl time.Duration) *Store {
	return &Store{
		rootDir: dir,
		ttl:     ttl,
		now:     time.Now,
	}
}

// Key derives a stable cache key from a provider call. Parameters are
// canonicalized by sorting so equivalent calls share an entry.
func Key(provider, endpoint string, params map[string]string) string {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	var builder strings.Builder
	builder.WriteString(provider)
	builder.WriteString("|")
	builder.WriteString(endpoint)
	for _, name := range names {
		builder.WriteString("|")
		builder.WriteString(name)
		builder.WriteString("=")
		builder.WriteString(params[name])
	}

	sum := sha256.Sum256([]byte(builder.String()))
	return hex.EncodeToString(sum[:])
}

// Fetch returns the cached payload for key, calling fill on a miss or an
// expired entry and storing its result before returning it.
func (s *Store) Fetch(key string, fill func() ([]byte, error)) ([]byte, error) {
	if payload, ok := s.Get(key); ok {
		return payload, nil
	}

	payload, err := fill()
	if err != nil {
		return nil, fmt.Errorf("fill > %w", err)
	}
	if err := s.Put(key, payload); err != nil {
		return payload, fmt.Errorf("s.Put > %w", err)
	}
	return payload, nil
}

// Get returns the payload for key, or false when the entry is missing,
// unreadable, or older than the TTL.
func (s *Store) Get(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	contents, err := os.ReadFile(s.filePath(key))
	if err != nil {
		return nil, false
	}

	var entry envelope
	if err := json.Unmarshal(contents, &entry); err != nil {
		return nil, false
	}
	if s.now().Sub(entry.WrittenAt) > s.ttl {
		return nil, false
	}
	return entry.Payload, true
}

// Put stores payload under key with the current timestamp.
func (s *Store) Put(key string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.rootDir, 0o755); err != nil {
		return fmt.Errorf("os.MkdirAll > %w", err)
	}

	contents, err := json.Marshal(envelope{
		WrittenAt: s.now(),
		Payload:   payload,
	})
	if err != nil {
		return fmt.Errorf("json.Marshal > %w", err)
	}
	if err := os.WriteFile(s.filePath(key), contents, 0o644); err != nil {
		return fmt.Errorf("os.WriteFile > %w", err)
	}
	return nil
}

func (s *Store) filePath(key string) string {
	return filepath.Join(s.rootDir, key+".json")
}
