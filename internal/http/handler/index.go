package handler

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"namesapi/internal/storage"
)

// Index serves the landing page from the asset store.
//
// @Summary Landing page
// @Tags static
// @Produce html
// @Success 200 {string} string "HTML document"
// @Router / [get]
func Index(assets storage.Storage, key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rc, info, err := assets.Get(c.UserContext(), key)
		if err != nil {
			return err
		}
		defer rc.Close()

		body, err := io.ReadAll(rc)
		if err != nil {
			return err
		}

		ct := info.ContentType
		if ct == "" {
			ct = fiber.MIMETextHTMLCharsetUTF8
		}
		c.Set(fiber.HeaderContentType, ct)
		return c.Send(body)
	}
}
