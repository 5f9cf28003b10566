package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soundvault/soundvault-backend/domain"
	"github.com/soundvault/soundvault-backend/storage"
)

// storeFormFile routes one optional multipart field through the asset path
// resolver. Returns (nil, nil) when the field was not submitted.
func storeFormFile(ctx *gin.Context, resolver *storage.Resolver, field string, role storage.Role) (*domain.Asset, error) {
	fileHeader, err := ctx.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return resolver.Store(role, storage.Upload{
		Filename: fileHeader.Filename,
		MIMEType: fileHeader.Header.Get("Content-Type"),
		Size:     fileHeader.Size,
		Reader:   f,
	})
}
