package store

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"

	"github.com/tracefire-io/tracefire/internal/models"
)

// ingestLine is one JSONL record: a model call plus the agent it belongs to.
type ingestLine struct {
	AgentID string `json:"agentId"`
	models.ModelCall
}

// Ingest reads a JSONL file of model-call records into the store. Malformed
// lines are skipped with a warning rather than aborting the whole file.
// Returns the number of records inserted.
func (s *Store) Ingest(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open ingest file: %w", err)
	}
	defer f.Close()

	n, _, err := s.ingestFrom(f, path, 0)
	return n, err
}

// ingestFrom inserts records from r, which sits at the given byte offset of
// the named file. Returns inserted count and the new offset.
func (s *Store) ingestFrom(r io.Reader, name string, offset int64) (int, int64, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	inserted := 0
	for scanner.Scan() {
		raw := scanner.Bytes()
		offset += int64(len(raw)) + 1
		if len(raw) == 0 {
			continue
		}

		var line ingestLine
		if err := json.Unmarshal(raw, &line); err != nil {
			log.WithField("file", name).WithError(err).Warn("skipping malformed ingest line")
			continue
		}
		if line.AgentID == "" || line.Body.ModelType == "" {
			log.WithField("file", name).Warn("skipping ingest line without agentId or modelType")
			continue
		}

		if _, err := s.Insert(line.AgentID, line.ModelCall); err != nil {
			log.WithField("file", name).WithError(err).Warn("failed to insert ingest line")
			continue
		}
		inserted++
	}
	if err := scanner.Err(); err != nil {
		return inserted, offset, fmt.Errorf("failed to read ingest file: %w", err)
	}
	return inserted, offset, nil
}

// Tailer watches a JSONL file and ingests records appended to it.
type Tailer struct {
	store     *Store
	path      string
	fsWatcher *fsnotify.Watcher
	done      chan struct{}

	mu     sync.Mutex
	offset int64
}

// NewTailer creates a tailer for path. The file's current contents are
// ingested on Start; only appends arrive afterwards.
func NewTailer(s *Store, path string) (*Tailer, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Tailer{
		store:     s,
		path:      path,
		fsWatcher: fsWatcher,
		done:      make(chan struct{}),
	}, nil
}

// Start ingests the current file contents and begins watching for appends.
func (t *Tailer) Start() error {
	if _, err := t.catchUp(); err != nil {
		return err
	}

	// Watch the directory, not the file: atomic writes replace the inode.
	if err := t.fsWatcher.Add(filepath.Dir(t.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(t.path), err)
	}

	go t.processEvents()
	log.WithField("file", t.path).Info("tailing ingest file")
	return nil
}

// Stop stops the tailer.
func (t *Tailer) Stop() {
	close(t.done)
	_ = t.fsWatcher.Close()
}

func (t *Tailer) processEvents() {
	for {
		select {
		case <-t.done:
			return
		case event, ok := <-t.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Name != t.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if n, err := t.catchUp(); err != nil {
				log.WithError(err).Warn("tailer catch-up failed")
			} else if n > 0 {
				log.WithField("records", n).Debug("ingested appended records")
			}
		case err, ok := <-t.fsWatcher.Errors:
			if !ok {
				return
			}
			log.WithError(err).Warn("tailer watch error")
		}
	}
}

// catchUp ingests everything past the saved offset. A shrunken file means it
// was rewritten, so ingestion restarts from the top.
func (t *Tailer) catchUp() (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	f, err := os.Open(t.path)
	if err != nil {
		if os.IsNotExist(err) {
			t.offset = 0
			return 0, nil
		}
		return 0, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return 0, err
	}
	if info.Size() < t.offset {
		t.offset = 0
	}

	if _, err := f.Seek(t.offset, io.SeekStart); err != nil {
		return 0, err
	}

	n, newOffset, err := t.store.ingestFrom(f, t.path, t.offset)
	if err != nil {
		return n, err
	}
	t.offset = newOffset
	return n, nil
}
