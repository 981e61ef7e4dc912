package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in    string
		want  Kind
		valid bool
	}{
		{"", KindText, true},
		{"text", KindText, true},
		{"image", KindImage, true},
		{"video", KindVideo, true},
		{"audio", Kind("audio"), false},
		{"IMAGE", Kind("IMAGE"), false},
	}

	for _, tt := range tests {
		got, ok := ParseKind(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.valid, ok, tt.in)
	}
}

func TestMetaMoodDefaultsToNeutral(t *testing.T) {
	t.Parallel()

	var empty Meta
	assert.Equal(t, DefaultMood, empty.Mood())
	assert.Equal(t, DefaultMood, Meta{MetaCaption: "x"}.Mood())
	assert.Equal(t, "happy", Meta{MetaMood: "happy"}.Mood())
}

func TestNewPostBuildCopiesMeta(t *testing.T) {
	t.Parallel()

	meta := Meta{MetaMood: "sad"}
	now := time.Now()
	post := NewPost{Kind: KindText, Title: "t", Meta: meta}.Build("id-1", now)

	meta[MetaMood] = "happy"

	assert.Equal(t, "id-1", post.ID)
	assert.Equal(t, now, post.CreatedAt)
	assert.Equal(t, "sad", post.Meta.Mood())
}
