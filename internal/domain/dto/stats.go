package dto

import "moodfeed/internal/domain/model"

type Stats struct {
	Total  int                `json:"total"`
	ByKind map[model.Kind]int `json:"byKind"`
	ByMood map[string]int     `json:"byMood"`
	// TopMood is the most used mood, ties broken by name. Empty when there are no posts.
	TopMood string `json:"topMood,omitempty"`
}
