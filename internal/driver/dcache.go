package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"assay/internal/check"
)

// Digest keys the result cache: a SHA-256 over file content plus bindings.
type Digest = [sha256.Size]byte

// Increment when the disk payload format changes; old entries then miss
// instead of decoding garbage.
const diskCacheSchemaVersion uint16 = 1

// DiskCache stores per-file check reports on disk, keyed by content digest.
// Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// diskPayload is the serialized form of one FileReport.
type diskPayload struct {
	Schema uint16
	Lines  []diskLine
}

type diskLine struct {
	Line    int
	Source  string
	Assume  bool
	Kind    uint8
	Message string
	Diagram []string
	Err     string
}

// OpenDiskCache initializes the cache at the standard user cache location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt initializes the cache at an explicit directory; tests use
// this with a temporary dir.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	// A "runs" subdirectory keeps the cache root readable and cheap to clear.
	return filepath.Join(c.dir, "runs", hex.EncodeToString(key[:])+".mp")
}

// Store serializes a report under key, writing through a temp file and an
// atomic rename.
func (c *DiskCache) Store(key Digest, report *FileReport) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(f.Name())
	}()

	if err := msgpack.NewEncoder(f).Encode(reportToPayload(report)); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Lookup reads the report stored under key. A miss, a schema mismatch, or a
// missing file returns ok=false without error.
func (c *DiskCache) Lookup(key Digest) (*FileReport, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer func() {
		_ = f.Close()
	}()

	var payload diskPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, err
	}
	if payload.Schema != diskCacheSchemaVersion {
		return nil, false, nil
	}
	return payloadToReport(&payload), true, nil
}

// DropAll invalidates the whole cache: rename out of the way, then remove.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}

// resultKey digests everything a report depends on: schema version, file
// content, and the bindings that seeded the environment.
func resultKey(content []byte, bindings Bindings) Digest {
	h := sha256.New()
	h.Write([]byte{byte(diskCacheSchemaVersion >> 8), byte(diskCacheSchemaVersion)})
	h.Write(content)
	if bindings != nil {
		bh := bindings.Hash()
		h.Write(bh[:])
	}
	var key Digest
	copy(key[:], h.Sum(nil))
	return key
}

func reportToPayload(report *FileReport) *diskPayload {
	payload := &diskPayload{Schema: diskCacheSchemaVersion}
	payload.Lines = make([]diskLine, len(report.Results))
	for i, r := range report.Results {
		payload.Lines[i] = diskLine{
			Line:    r.Line,
			Source:  r.Source,
			Assume:  r.Assume,
			Kind:    uint8(r.Outcome.Kind),
			Message: r.Outcome.Message,
			Diagram: r.Outcome.Diagram,
			Err:     r.Err,
		}
	}
	return payload
}

func payloadToReport(payload *diskPayload) *FileReport {
	report := &FileReport{}
	report.Results = make([]LineResult, len(payload.Lines))
	for i, l := range payload.Lines {
		report.Results[i] = LineResult{
			Line:   l.Line,
			Source: l.Source,
			Assume: l.Assume,
			Outcome: check.Outcome{
				Kind:    check.Kind(l.Kind),
				Message: l.Message,
				Diagram: l.Diagram,
				Line:    l.Line,
			},
			Err: l.Err,
		}
	}
	return report
}
