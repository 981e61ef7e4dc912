package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"moodfeed/internal/domain/dto"
	"moodfeed/internal/domain/entity"
	"moodfeed/internal/domain/model"
	"moodfeed/internal/domain/repository/broker"
	"moodfeed/internal/domain/repository/database"
	"moodfeed/internal/domain/repository/storage"
	"moodfeed/pkg/logger"
	"moodfeed/pkg/utils"
)

const (
	textMime    = "text/plain"
	unknownMime = "application/octet-stream"
)

type Creator struct {
	saver     storage.Saver
	remover   storage.Remover
	writer    database.Writer
	publisher broker.Publisher
	now       func() time.Time
}

func NewCreator(saver storage.Saver, remover storage.Remover, writer database.Writer,
	publisher broker.Publisher,
) *Creator {
	return &Creator{
		saver:     saver,
		remover:   remover,
		writer:    writer,
		publisher: publisher,
		now:       time.Now,
	}
}

// content is a validated post body ready to be written to the blob store.
type content struct {
	key  string
	data []byte
	mime string
	meta model.Meta
}

func (c *Creator) Create(ctx context.Context, req dto.CreatePost) (model.Post, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return model.Post{}, invalid("title is required")
	}

	kind, ok := model.ParseKind(strings.ToLower(strings.TrimSpace(req.Kind)))
	if !ok {
		return model.Post{}, invalid("invalid kind: %q", req.Kind)
	}

	mood := req.Mood
	if strings.TrimSpace(mood) == "" {
		mood = model.DefaultMood
	}
	meta := model.Meta{
		model.MetaCaption: req.Caption,
		model.MetaMood:    mood,
	}

	var (
		body content
		err  error
	)
	if kind == model.KindText {
		body, err = c.textContent(req.Text, meta)
	} else {
		body, err = c.fileContent(kind, req.File, meta)
	}
	if err != nil {
		return model.Post{}, err
	}

	var obj entity.StoredObject
	if kind == model.KindText {
		obj, err = c.saver.SaveText(ctx, body.key, string(body.data), "")
	} else {
		obj, err = c.saver.SaveObject(ctx, body.key, body.data, body.mime)
	}
	if err != nil {
		return model.Post{}, fmt.Errorf("save content: %w", err)
	}

	sum := sha256.Sum256(body.data)
	post, err := c.writer.CreateFile(ctx, model.NewPost{
		Kind:     kind,
		Title:    title,
		Path:     obj.Key,
		URL:      obj.URL,
		Size:     int64(len(body.data)),
		Mime:     body.mime,
		Checksum: hex.EncodeToString(sum[:]),
		Meta:     body.meta,
	})
	if err != nil {
		if removeErr := c.remover.DeleteObject(ctx, obj.Key); removeErr != nil {
			logger.Error("failed to remove content after metadata write failed",
				"key", obj.Key, "err", removeErr)
		}

		return model.Post{}, fmt.Errorf("save post record: %w", err)
	}

	publish(ctx, c.publisher, model.Event{
		Type:    model.EventPostCreated,
		PostID:  post.ID,
		Kind:    post.Kind,
		Title:   post.Title,
		Mood:    post.Meta.Mood(),
		Created: c.now().UTC(),
	})

	return post, nil
}

func (c *Creator) textContent(text string, meta model.Meta) (content, error) {
	if strings.TrimSpace(text) == "" {
		return content{}, invalid("text is required")
	}

	return content{
		key:  fmt.Sprintf("texts/%d-%s.txt", c.now().UnixMilli(), uuid.NewString()),
		data: []byte(text),
		mime: textMime,
		meta: meta,
	}, nil
}

func (c *Creator) fileContent(kind model.Kind, file *dto.FileUpload, meta model.Meta) (content, error) {
	if file == nil || len(file.Data) == 0 {
		return content{}, invalid("file is required")
	}

	detected := utils.BaseMimeType(mimetype.Detect(file.Data).String())
	declared := utils.BaseMimeType(file.ContentType)

	family := detected
	if family == unknownMime && declared != "" {
		family = declared
	}
	if !strings.HasPrefix(family, string(kind)+"/") {
		return content{}, invalid("invalid file type: detected %s, expected %s", family, kind)
	}

	mime := declared
	if mime == "" || mime == unknownMime {
		mime = detected
	}

	meta[model.MetaOriginalName] = file.Name

	return content{
		key: fmt.Sprintf("%ss/%s/%s%s", kind, c.now().UTC().Format(time.DateOnly), uuid.NewString(),
			utils.FileExtension(file.Name, mime)),
		data: file.Data,
		mime: mime,
		meta: meta,
	}, nil
}

// publish sends an event without failing the caller; the feed works without a broker.
func publish(ctx context.Context, publisher broker.Publisher, event model.Event) {
	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn("failed to publish event", "type", string(event.Type), "post", event.PostID, "err", err)
	}
}
