package usecase

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"moodfeed/internal/domain/entity"
	"moodfeed/internal/domain/model"
)

var errBackend = errors.New("backend unavailable")

type savedObject struct {
	data        []byte
	contentType string
}

type fakeBlobs struct {
	mu      sync.Mutex
	objects map[string]savedObject
	saveErr error
	delErr  error
	deleted []string
}

func newFakeBlobs() *fakeBlobs {
	return &fakeBlobs{objects: map[string]savedObject{}}
}

func (f *fakeBlobs) SaveObject(_ context.Context, key string, data []byte,
	contentType string,
) (entity.StoredObject, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.saveErr != nil {
		return entity.StoredObject{}, f.saveErr
	}
	f.objects[key] = savedObject{data: append([]byte(nil), data...), contentType: contentType}

	return entity.StoredObject{Key: key, URL: f.PublicURL(key)}, nil
}

func (f *fakeBlobs) SaveText(ctx context.Context, key, text, contentType string) (entity.StoredObject, error) {
	if contentType == "" {
		contentType = "text/plain; charset=utf-8"
	}

	return f.SaveObject(ctx, key, []byte(text), contentType)
}

func (f *fakeBlobs) PublicURL(key string) string {
	return "https://blobs.test/" + key
}

func (f *fakeBlobs) DeleteObject(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.deleted = append(f.deleted, key)
	if f.delErr != nil {
		return f.delErr
	}
	delete(f.objects, key)

	return nil
}

type fakeDB struct {
	mu       sync.Mutex
	posts    []model.Post
	next     int
	clock    time.Time
	writeErr error
	listErr  error
	delErr   error
	limits   map[model.Kind]int
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		clock:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		limits: map[model.Kind]int{},
	}
}

func (f *fakeDB) CreateFile(_ context.Context, p model.NewPost) (model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.writeErr != nil {
		return model.Post{}, f.writeErr
	}

	f.next++
	f.clock = f.clock.Add(time.Second)
	post := p.Build(string(rune('a'+f.next-1)), f.clock)
	f.posts = append(f.posts, post)

	return post, nil
}

// add stores a post directly, bypassing CreateFile.
func (f *fakeDB) add(post model.Post) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.posts = append(f.posts, post)
}

func (f *fakeDB) ListFiles(_ context.Context, kind model.Kind, limit int) ([]model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.limits[kind] = limit
	if f.listErr != nil {
		return nil, f.listErr
	}

	var out []model.Post
	for _, p := range f.posts {
		if kind == "" || p.Kind == kind {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

func (f *fakeDB) DeleteFile(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.delErr != nil {
		return f.delErr
	}
	for i, p := range f.posts {
		if p.ID == id {
			f.posts = append(f.posts[:i], f.posts[i+1:]...)

			break
		}
	}

	return nil
}

type fakeBroker struct {
	mu     sync.Mutex
	events []model.Event
	err    error
	count  int64
}

func (f *fakeBroker) Publish(_ context.Context, e model.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, e)

	return nil
}

func (f *fakeBroker) Recent(_ context.Context, count int64) ([]model.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.count = count
	if f.err != nil {
		return nil, f.err
	}

	out := make([]model.Event, 0, len(f.events))
	for i := len(f.events) - 1; i >= 0 && int64(len(out)) < count; i-- {
		out = append(out, f.events[i])
	}

	return out, nil
}
