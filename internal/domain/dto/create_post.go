package dto

// CreatePost is a submitted post before validation.
type CreatePost struct {
	Kind    string
	Title   string
	Caption string
	Mood    string
	Text    string
	File    *FileUpload
}

// FileUpload is the file part of a multipart post.
type FileUpload struct {
	Name        string
	ContentType string
	Data        []byte
}
