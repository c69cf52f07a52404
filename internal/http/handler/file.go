package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"filemanager/internal/service"
)

// uploadResponse is the success body for POST /api/files/upload.
type uploadResponse struct {
	Message string `json:"message"`
	File    any    `json:"file"`
}

// contentResponse is the success body for GET /api/files/content/:fileName.
type contentResponse struct {
	Content  string `json:"content"`
	Metadata any    `json:"metadata"`
}

// UploadFile accepts a multipart upload (field name: file), delegates to the
// service, and returns the stored record.
func UploadFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "please select a file to upload")
		}
		if fh.Size == 0 {
			return writeError(c, fiber.StatusBadRequest, "EMPTY_FILE", "uploaded file is empty")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		meta, err := svc.Upload(c.UserContext(), f, fh.Filename, ct, fh.Size)
		if err != nil {
			if errors.Is(err, service.ErrUnsupportedType) {
				return writeError(c, fiber.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "file type not supported")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "failed to upload file")
		}
		return c.JSON(uploadResponse{
			Message: "File uploaded successfully",
			File:    meta,
		})
	}
}

// ListFiles returns the metadata of every stored file.
func ListFiles(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.ListAll(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(items)
	}
}

// DownloadFile streams the stored bytes back as an attachment named after the
// original upload. Unknown names and unreadable bytes both yield a bare 404.
func DownloadFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileName := c.Params("fileName")

		rc, meta, err := svc.Download(c.UserContext(), fileName)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) || errors.Is(err, service.ErrFileNameRequired) {
				return c.Status(fiber.StatusNotFound).Send(nil)
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		c.Set(fiber.HeaderContentType, "application/octet-stream")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+meta.OriginalFileName+`"`)
		// fasthttp closes the stream after the response is written.
		return c.SendStream(rc)
	}
}

// GetFileContent returns the decoded text of a text-displayable file together
// with its metadata.
func GetFileContent(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileName := c.Params("fileName")

		content, meta, err := svc.GetContent(c.UserContext(), fileName)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrFileNameRequired):
				return c.Status(fiber.StatusNotFound).Send(nil)
			case errors.Is(err, service.ErrUnsupportedContent):
				return writeError(c, fiber.StatusBadRequest, "UNSUPPORTED_CONTENT_TYPE", "cannot display content for this file type")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "failed to read file")
			}
		}
		return c.JSON(contentResponse{
			Content:  content,
			Metadata: meta,
		})
	}
}

// GetFileMetadata returns the record for a stored file name.
func GetFileMetadata(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileName := c.Params("fileName")

		meta, err := svc.GetMetadata(c.UserContext(), fileName)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) || errors.Is(err, service.ErrFileNameRequired) {
				return c.Status(fiber.StatusNotFound).Send(nil)
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(meta)
	}
}
