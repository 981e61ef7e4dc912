package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodfeed/internal/domain/dto"
	"moodfeed/internal/domain/model"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

func newTestCreator() (*Creator, *fakeBlobs, *fakeDB, *fakeBroker) {
	blobs, db, events := newFakeBlobs(), newFakeDB(), &fakeBroker{}
	c := NewCreator(blobs, blobs, db, events)
	c.now = func() time.Time { return time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC) }

	return c, blobs, db, events
}

func TestCreateText(t *testing.T) {
	t.Parallel()

	c, blobs, _, events := newTestCreator()

	post, err := c.Create(context.Background(), dto.CreatePost{
		Kind:    "text",
		Title:   "  Day one ",
		Caption: "first",
		Mood:    "happy",
		Text:    "hello",
	})
	require.NoError(t, err)

	sum := sha256.Sum256([]byte("hello"))
	assert.Equal(t, model.KindText, post.Kind)
	assert.Equal(t, "Day one", post.Title)
	assert.Equal(t, int64(5), post.Size)
	assert.Equal(t, "text/plain", post.Mime)
	assert.Equal(t, hex.EncodeToString(sum[:]), post.Checksum)
	assert.Equal(t, model.Meta{"caption": "first", "mood": "happy"}, post.Meta)
	assert.Regexp(t, regexp.MustCompile(`^texts/1741944413000-[0-9a-f-]{36}\.txt$`), post.Path)
	assert.Equal(t, "https://blobs.test/"+post.Path, post.URL)

	stored := blobs.objects[post.Path]
	assert.Equal(t, "hello", string(stored.data))
	assert.Equal(t, "text/plain; charset=utf-8", stored.contentType)

	require.Len(t, events.events, 1)
	assert.Equal(t, model.EventPostCreated, events.events[0].Type)
	assert.Equal(t, post.ID, events.events[0].PostID)
	assert.Equal(t, "happy", events.events[0].Mood)
}

func TestCreateDefaults(t *testing.T) {
	t.Parallel()

	c, _, _, _ := newTestCreator()

	post, err := c.Create(context.Background(), dto.CreatePost{Title: "t", Text: "x"})
	require.NoError(t, err)

	assert.Equal(t, model.KindText, post.Kind)
	assert.Equal(t, "neutral", post.Meta.Mood())
	assert.Equal(t, "neutral", post.Meta[model.MetaMood])

	post, err = c.Create(context.Background(), dto.CreatePost{Title: "t", Text: "x", Mood: "   "})
	require.NoError(t, err)
	assert.Equal(t, "neutral", post.Meta.Mood())
}

func TestCreateKeepsMoodAndCaptionAsSubmitted(t *testing.T) {
	t.Parallel()

	c, _, _, _ := newTestCreator()

	post, err := c.Create(context.Background(), dto.CreatePost{
		Title:   "t",
		Text:    "x",
		Mood:    " Happy ",
		Caption: "  spaced out  ",
	})
	require.NoError(t, err)

	assert.Equal(t, " Happy ", post.Meta.Mood())
	assert.Equal(t, "  spaced out  ", post.Meta.Caption())
}

func TestCreateImage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		file        dto.FileUpload
		wantMime    string
		wantPathExp string
	}{
		{
			name:        "declared type kept",
			file:        dto.FileUpload{Name: "sun.png", ContentType: "image/png", Data: pngBytes},
			wantMime:    "image/png",
			wantPathExp: `^images/2025-03-14/[0-9a-f-]{36}\.png$`,
		},
		{
			name:        "octet stream replaced by sniffed type",
			file:        dto.FileUpload{Name: "blob", ContentType: "application/octet-stream", Data: pngBytes},
			wantMime:    "image/png",
			wantPathExp: `^images/2025-03-14/[0-9a-f-]{36}\.png$`,
		},
		{
			name:        "missing type sniffed",
			file:        dto.FileUpload{Name: "pic.PNG", Data: pngBytes},
			wantMime:    "image/png",
			wantPathExp: `^images/2025-03-14/[0-9a-f-]{36}\.png$`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, blobs, _, _ := newTestCreator()
			file := tt.file

			post, err := c.Create(context.Background(), dto.CreatePost{
				Kind: "image", Title: "sunset", Caption: "golden", Mood: "calm", File: &file,
			})
			require.NoError(t, err)

			assert.Equal(t, model.KindImage, post.Kind)
			assert.Equal(t, tt.wantMime, post.Mime)
			assert.Equal(t, int64(len(pngBytes)), post.Size)
			assert.Regexp(t, regexp.MustCompile(tt.wantPathExp), post.Path)
			assert.Equal(t, tt.file.Name, post.Meta[model.MetaOriginalName])
			assert.Equal(t, "golden", post.Meta.Caption())
			assert.Equal(t, pngBytes, blobs.objects[post.Path].data)
			assert.Equal(t, tt.wantMime, blobs.objects[post.Path].contentType)
		})
	}
}

func TestCreateValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  dto.CreatePost
		msg  string
	}{
		{"empty title", dto.CreatePost{Title: "   ", Text: "x"}, "title is required"},
		{"unknown kind", dto.CreatePost{Kind: "audio", Title: "t"}, "invalid kind"},
		{"blank text", dto.CreatePost{Kind: "text", Title: "t", Text: " \n"}, "text is required"},
		{"image without file", dto.CreatePost{Kind: "image", Title: "t"}, "file is required"},
		{
			"empty file",
			dto.CreatePost{Kind: "video", Title: "t", File: &dto.FileUpload{Name: "a.mp4"}},
			"file is required",
		},
		{
			"text posing as image",
			dto.CreatePost{Kind: "image", Title: "t", File: &dto.FileUpload{
				Name: "a.png", ContentType: "image/png", Data: []byte("just some words"),
			}},
			"invalid file type",
		},
		{
			"image posted as video",
			dto.CreatePost{Kind: "video", Title: "t", File: &dto.FileUpload{
				Name: "a.png", ContentType: "video/mp4", Data: pngBytes,
			}},
			"invalid file type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, blobs, db, events := newTestCreator()

			_, err := c.Create(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
			assert.Contains(t, err.Error(), tt.msg)

			assert.Empty(t, blobs.objects)
			assert.Empty(t, db.posts)
			assert.Empty(t, events.events)
		})
	}
}

func TestCreateBlobFailure(t *testing.T) {
	t.Parallel()

	c, blobs, db, _ := newTestCreator()
	blobs.saveErr = errBackend

	_, err := c.Create(context.Background(), dto.CreatePost{Title: "t", Text: "x"})
	require.ErrorIs(t, err, errBackend)
	assert.False(t, IsValidationError(err))
	assert.Empty(t, db.posts)
}

func TestCreateRemovesContentWhenRecordFails(t *testing.T) {
	t.Parallel()

	t.Run("content removed", func(t *testing.T) {
		t.Parallel()

		c, blobs, db, events := newTestCreator()
		db.writeErr = errBackend

		_, err := c.Create(context.Background(), dto.CreatePost{Title: "t", Text: "x"})
		require.ErrorIs(t, err, errBackend)

		assert.Empty(t, blobs.objects)
		assert.Len(t, blobs.deleted, 1)
		assert.Empty(t, events.events)
	})

	t.Run("removal failure keeps original error", func(t *testing.T) {
		t.Parallel()

		c, blobs, db, _ := newTestCreator()
		db.writeErr = errBackend
		blobs.delErr = context.DeadlineExceeded

		_, err := c.Create(context.Background(), dto.CreatePost{Title: "t", Text: "x"})
		require.ErrorIs(t, err, errBackend)
		assert.NotErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestCreateIgnoresPublishFailure(t *testing.T) {
	t.Parallel()

	c, _, db, events := newTestCreator()
	events.err = errBackend

	post, err := c.Create(context.Background(), dto.CreatePost{Title: "t", Text: "x"})
	require.NoError(t, err)
	assert.NotEmpty(t, post.ID)
	assert.Len(t, db.posts, 1)
}
