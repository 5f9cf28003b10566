package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/soundvault/soundvault-backend/domain"
	"github.com/soundvault/soundvault-backend/storage"
)

type CategoryController struct {
	CategoryUsecase domain.CategoryUsecase
	Resolver        *storage.Resolver
}

func NewCategoryController(uc domain.CategoryUsecase, resolver *storage.Resolver) *CategoryController {
	return &CategoryController{CategoryUsecase: uc, Resolver: resolver}
}

func (c *CategoryController) GetCategories(ctx *gin.Context) {
	nameFilter := ctx.Query("categoryName")
	page, _ := strconv.ParseInt(ctx.DefaultQuery("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(ctx.DefaultQuery("limit", "10"), 10, 64)

	categories, total, err := c.CategoryUsecase.List(ctx.Request.Context(), nameFilter, page, limit)
	if err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"categories":      categories,
		"totalCategories": total,
		"totalPages":      totalPages(total, limit),
		"currentPage":     page,
		"pageSize":        limit,
	})
}

func (c *CategoryController) AddCategory(ctx *gin.Context) {
	image, err := storeFormFile(ctx, c.Resolver, "image", storage.RoleCategoryImage)
	if err != nil {
		RespondError(ctx, err)
		return
	}
	if image == nil {
		ErrorResponse(ctx, http.StatusBadRequest, "IMAGE_REQUIRED", "image is required")
		return
	}

	category, err := c.CategoryUsecase.Create(ctx.Request.Context(), domain.CategoryInput{
		Name:        ctx.PostForm("categoryName"),
		Description: ctx.PostForm("description"),
		Image:       image,
	})
	if err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"success": true, "data": category})
}

func (c *CategoryController) UpdateCategory(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("categoryId"))
	if err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ID", "invalid categoryId")
		return
	}

	image, err := storeFormFile(ctx, c.Resolver, "image", storage.RoleCategoryImage)
	if err != nil {
		RespondError(ctx, err)
		return
	}

	category, err := c.CategoryUsecase.Update(ctx.Request.Context(), id, domain.CategoryInput{
		Name:        ctx.PostForm("categoryName"),
		Description: ctx.PostForm("description"),
		Image:       image,
	})
	if err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Category updated successfully", "data": category})
}

func (c *CategoryController) DeleteCategory(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("categoryId"))
	if err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ID", "invalid categoryId")
		return
	}

	result, err := c.CategoryUsecase.Delete(ctx.Request.Context(), id)
	if err != nil {
		RespondError(ctx, err)
		return
	}

	if result.Partial() {
		ctx.JSON(http.StatusOK, gin.H{
			"message":   "Category deleted with warnings",
			"failedIds": result.FailedIDs,
			"result":    result,
		})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully", "result": result})
}
