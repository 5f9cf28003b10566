package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soundvault/soundvault-backend/domain"
)

func ErrorResponse(ctx *gin.Context, status int, code string, message string) {
	ctx.JSON(status, gin.H{"code": code, "message": message})
}

// RespondError maps the domain error taxonomy onto HTTP statuses.
func RespondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		ErrorResponse(ctx, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, domain.ErrParentNotFound):
		ErrorResponse(ctx, http.StatusNotFound, "PARENT_NOT_FOUND", err.Error())
	case errors.Is(err, domain.ErrValidation):
		ErrorResponse(ctx, http.StatusBadRequest, "VALIDATION", err.Error())
	case errors.Is(err, domain.ErrDuplicateName):
		ErrorResponse(ctx, http.StatusBadRequest, "DUPLICATE_NAME", err.Error())
	case errors.Is(err, domain.ErrStillReferenced):
		ErrorResponse(ctx, http.StatusConflict, "STILL_REFERENCED", err.Error())
	case errors.Is(err, domain.ErrInvalidAssetType):
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ASSET_TYPE", err.Error())
	case errors.Is(err, domain.ErrUnroutableUpload):
		ErrorResponse(ctx, http.StatusBadRequest, "UNROUTABLE_UPLOAD", err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		ErrorResponse(ctx, http.StatusUnauthorized, "INVALID_CREDENTIALS", err.Error())
	default:
		ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
	}
}

func totalPages(total, limit int64) int64 {
	if limit <= 0 {
		return 0
	}
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	return pages
}
