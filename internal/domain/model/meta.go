package model

const (
	MetaMood         = "mood"
	MetaCaption      = "caption"
	MetaOriginalName = "originalName"

	DefaultMood = "neutral"
)

// Meta is the free-form part of a post. Every kind uses mood and caption;
// image and video posts also carry originalName.
type Meta map[string]string

// Mood returns the post mood, neutral when unset.
func (m Meta) Mood() string {
	if mood := m[MetaMood]; mood != "" {
		return mood
	}

	return DefaultMood
}

func (m Meta) Caption() string {
	return m[MetaCaption]
}

func (m Meta) Clone() Meta {
	if m == nil {
		return nil
	}

	out := make(Meta, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}
