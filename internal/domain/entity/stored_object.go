package entity

// StoredObject is what a blob store returns after a write.
type StoredObject struct {
	Key string `json:"key"`
	URL string `json:"url"`
}
