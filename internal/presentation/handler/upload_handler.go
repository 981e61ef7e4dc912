package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"moodfeed/internal/application/usecase/abstraction"
	"moodfeed/internal/domain/dto"
	"moodfeed/internal/presentation"
)

type UploadHandler struct {
	creator abstraction.Creator
}

func NewUploadHandler(creator abstraction.Creator) *UploadHandler {
	return &UploadHandler{
		creator: creator,
	}
}

// Handle handles POST /upload multipart forms.
func (h *UploadHandler) Handle(c echo.Context) error {
	req := dto.CreatePost{
		Kind:    c.FormValue(presentation.KindField),
		Title:   c.FormValue(presentation.TitleField),
		Caption: c.FormValue(presentation.CaptionField),
		Mood:    c.FormValue(presentation.MoodField),
		Text:    c.FormValue(presentation.TextField),
	}

	file, err := readFormFile(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	req.File = file

	post, err := h.creator.Create(c.Request().Context(), req)
	if err != nil {
		return failFrom(c, err, "upload failed")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"ok":   true,
		"file": post,
		"url":  post.URL,
		"path": post.Path,
	})
}

// readFormFile returns nil when the form carries no file part.
func readFormFile(c echo.Context) (*dto.FileUpload, error) {
	header, err := c.FormFile(presentation.FileField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil //nolint
		}

		return nil, fmt.Errorf("invalid form: %w", err)
	}

	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("can't open file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("can't read file: %w", err)
	}

	return &dto.FileUpload{
		Name:        header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Data:        data,
	}, nil
}
