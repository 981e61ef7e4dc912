package model

// Mood is one entry of the mood picker.
type Mood struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Emoji string `json:"emoji"`
}

// Moods is the picker list. Posts may still carry moods outside of it.
var Moods = []Mood{
	{Key: "happy", Label: "Happy", Emoji: "😊"},
	{Key: "calm", Label: "Calm", Emoji: "🕊️"},
	{Key: "proud", Label: "Proud", Emoji: "✨"},
	{Key: "neutral", Label: "Neutral", Emoji: "🙂"},
	{Key: "sad", Label: "Sad", Emoji: "😔"},
	{Key: "angry", Label: "Angry", Emoji: "😠"},
	{Key: "lonely", Label: "Lonely", Emoji: "🌧️"},
	{Key: "anxious", Label: "Anxious", Emoji: "⚡"},
	{Key: "tired", Label: "Tired", Emoji: "☕"},
	{Key: "love", Label: "Loved", Emoji: "💗"},
	{Key: "energy", Label: "Energetic", Emoji: "🌞"},
	{Key: "chill", Label: "Chill", Emoji: "🍃"},
}
