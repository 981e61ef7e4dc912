// Package filestore keeps post records in a JSON-lines log on local disk.
//
// Every create appends a "put" entry and every delete appends a "del"
// entry; the live set is held in memory and rebuilt from the log by Init.
// Init also compacts the log when it holds deleted or superseded entries.
// Writers inside one process are serialised; the log is not safe for
// several processes writing at once.
package filestore

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"moodfeed/internal/domain/model"
	"moodfeed/internal/domain/repository/database"
)

const (
	LogFileName = "posts.log"

	opPut = "put"
	opDel = "del"
)

var ErrNotInitialized = errors.New("file store is not initialized")

type Config struct {
	Dir string `yaml:"dir" env:"DB_FILE_DIR" env-default:".data"`
}

type entry struct {
	Op   string      `json:"op"`
	ID   string      `json:"id,omitempty"`
	Post *model.Post `json:"post,omitempty"`
}

type indexed struct {
	post model.Post
	seq  uint64
}

type Store struct {
	mu    sync.Mutex
	path  string
	file  *os.File
	posts map[string]indexed
	seq   uint64
	now   func() time.Time
}

func New(cfg Config) *Store {
	return &Store{
		path:  filepath.Join(cfg.Dir, LogFileName),
		posts: make(map[string]indexed),
		now:   time.Now,
	}
}

func (s *Store) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file != nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	stale, err := s.replay()
	if err != nil {
		return err
	}

	if stale > 0 {
		if err := s.compact(); err != nil {
			return err
		}
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open post log: %w", err)
	}
	s.file = f

	return nil
}

// replay loads the log into the index and reports how many entries are dead.
func (s *Store) replay() (int, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("open post log: %w", err)
	}
	defer f.Close()

	posts := make(map[string]indexed)
	var seq uint64
	stale := 0

	r := bufio.NewReader(f)
	for {
		line, err := r.ReadBytes('\n')
		if errors.Is(err, io.EOF) && len(line) == 0 {
			break
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("read post log: %w", err)
		}
		torn := errors.Is(err, io.EOF)
		if len(bytes.TrimSpace(line)) == 0 {
			if torn {
				break
			}

			continue
		}

		var e entry
		if err := json.Unmarshal(line, &e); err != nil {
			// A final line without a newline is an interrupted append; drop it.
			if torn {
				stale++

				break
			}

			return 0, fmt.Errorf("decode post log entry %d: %w", seq+1, err)
		}
		seq++

		switch e.Op {
		case opPut:
			if e.Post == nil {
				stale++

				continue
			}
			if _, ok := posts[e.Post.ID]; ok {
				stale++
			}
			posts[e.Post.ID] = indexed{post: *e.Post, seq: seq}
		case opDel:
			// The del entry and the put it shadows are both dead.
			if _, ok := posts[e.ID]; ok {
				stale++
			}
			delete(posts, e.ID)
			stale++
		default:
			stale++
		}

		// Force a rewrite so the next append starts on a fresh line.
		if torn {
			stale++

			break
		}
	}

	s.posts = posts
	s.seq = seq

	return stale, nil
}

// compact rewrites the log with only live records, oldest first.
func (s *Store) compact() error {
	live := make([]indexed, 0, len(s.posts))
	for _, p := range s.posts {
		live = append(live, p)
	}
	sort.Slice(live, func(i, j int) bool { return live[i].seq < live[j].seq })

	tmp, err := os.CreateTemp(filepath.Dir(s.path), LogFileName+".*.tmp")
	if err != nil {
		return fmt.Errorf("create compacted log: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint

	enc := json.NewEncoder(tmp)
	posts := make(map[string]indexed, len(live))
	for i := range live {
		post := live[i].post
		if err := enc.Encode(entry{Op: opPut, Post: &post}); err != nil {
			tmp.Close()

			return fmt.Errorf("write compacted log: %w", err)
		}
		posts[post.ID] = indexed{post: post, seq: uint64(i + 1)}
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()

		return fmt.Errorf("sync compacted log: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close compacted log: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace post log: %w", err)
	}

	s.posts = posts
	s.seq = uint64(len(live))

	return nil
}

func (s *Store) append(e entry) error {
	line, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode post log entry: %w", err)
	}

	info, err := s.file.Stat()
	if err != nil {
		return fmt.Errorf("stat post log: %w", err)
	}

	if _, err := s.file.Write(append(line, '\n')); err != nil {
		if truncErr := s.file.Truncate(info.Size()); truncErr != nil {
			return errors.Join(fmt.Errorf("append post log entry: %w", err),
				fmt.Errorf("truncate post log: %w", truncErr))
		}

		return fmt.Errorf("append post log entry: %w", err)
	}

	if err := s.file.Sync(); err != nil {
		return fmt.Errorf("sync post log: %w", err)
	}

	s.seq++

	return nil
}

func (s *Store) CreateFile(_ context.Context, np model.NewPost) (model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return model.Post{}, ErrNotInitialized
	}

	post := np.Build(uuid.NewString(), s.now().UTC())
	if err := s.append(entry{Op: opPut, Post: &post}); err != nil {
		return model.Post{}, err
	}
	s.posts[post.ID] = indexed{post: post, seq: s.seq}

	return post, nil
}

func (s *Store) ListFiles(_ context.Context, kind model.Kind, limit int) ([]model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return nil, ErrNotInitialized
	}

	if limit <= 0 {
		limit = database.DefaultListLimit
	}

	matched := make([]indexed, 0, len(s.posts))
	for _, p := range s.posts {
		if kind == "" || p.post.Kind == kind {
			matched = append(matched, p)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if !a.post.CreatedAt.Equal(b.post.CreatedAt) {
			return a.post.CreatedAt.After(b.post.CreatedAt)
		}

		return a.seq > b.seq
	})

	if len(matched) > limit {
		matched = matched[:limit]
	}

	out := make([]model.Post, 0, len(matched))
	for _, p := range matched {
		post := p.post
		post.Meta = post.Meta.Clone()
		out = append(out, post)
	}

	return out, nil
}

func (s *Store) DeleteFile(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return ErrNotInitialized
	}

	if _, ok := s.posts[id]; !ok {
		return nil
	}

	if err := s.append(entry{Op: opDel, ID: id}); err != nil {
		return err
	}
	delete(s.posts, id)

	return nil
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return nil
	}

	err := s.file.Close()
	s.file = nil

	return err
}
