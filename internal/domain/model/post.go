package model

import (
	"time"
)

// Kind is the content type of a post.
type Kind string

const (
	KindText  Kind = "text"
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

// Kinds lists every kind in feed order.
var Kinds = []Kind{KindText, KindImage, KindVideo}

func (k Kind) Valid() bool {
	switch k {
	case KindText, KindImage, KindVideo:
		return true
	}

	return false
}

// ParseKind returns the kind named by s. An empty s means KindText.
func ParseKind(s string) (Kind, bool) {
	if s == "" {
		return KindText, true
	}

	k := Kind(s)

	return k, k.Valid()
}

// Post is the only persisted entity. Records are immutable once created.
type Post struct {
	ID        string    `json:"id"                  bson:"_id"`
	Kind      Kind      `json:"kind"                bson:"kind"`
	Title     string    `json:"title"               bson:"title"`
	Path      string    `json:"path"                bson:"path"`
	URL       string    `json:"url"                 bson:"url"`
	Size      int64     `json:"size"                bson:"size"`
	Mime      string    `json:"mime"                bson:"mime"`
	Checksum  string    `json:"checksum,omitempty"  bson:"checksum,omitempty"`
	Meta      Meta      `json:"meta,omitempty"      bson:"meta,omitempty"`
	CreatedAt time.Time `json:"createdAt"           bson:"created_at"`
	CreatedBy string    `json:"createdBy,omitempty" bson:"created_by,omitempty"`
}

// NewPost is a post before the metadata store assigns ID and CreatedAt.
type NewPost struct {
	Kind      Kind
	Title     string
	Path      string
	URL       string
	Size      int64
	Mime      string
	Checksum  string
	Meta      Meta
	CreatedBy string
}

// Build returns the record for p with the store-assigned fields set.
func (p NewPost) Build(id string, createdAt time.Time) Post {
	return Post{
		ID:        id,
		Kind:      p.Kind,
		Title:     p.Title,
		Path:      p.Path,
		URL:       p.URL,
		Size:      p.Size,
		Mime:      p.Mime,
		Checksum:  p.Checksum,
		Meta:      p.Meta.Clone(),
		CreatedAt: createdAt,
		CreatedBy: p.CreatedBy,
	}
}
