package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/soundvault/soundvault-backend/domain"
	"github.com/soundvault/soundvault-backend/storage"
)

type SubCategoryController struct {
	SubCategoryUsecase domain.SubCategoryUsecase
	Resolver           *storage.Resolver
}

func NewSubCategoryController(uc domain.SubCategoryUsecase, resolver *storage.Resolver) *SubCategoryController {
	return &SubCategoryController{SubCategoryUsecase: uc, Resolver: resolver}
}

func (c *SubCategoryController) GetSubCategories(ctx *gin.Context) {
	nameFilter := ctx.Query("subcategoryName")
	page, _ := strconv.ParseInt(ctx.DefaultQuery("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(ctx.DefaultQuery("limit", "10"), 10, 64)

	subCategories, total, err := c.SubCategoryUsecase.List(ctx.Request.Context(), nameFilter, page, limit)
	if err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"subcategories":      subCategories,
		"totalSubcategories": total,
		"totalPages":         totalPages(total, limit),
		"currentPage":        page,
		"pageSize":           limit,
	})
}

func (c *SubCategoryController) AddSubCategory(ctx *gin.Context) {
	categoryID, err := primitive.ObjectIDFromHex(ctx.PostForm("categoryId"))
	if err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ID", "invalid categoryId")
		return
	}

	image, err := storeFormFile(ctx, c.Resolver, "image", storage.RoleSubCategoryImage)
	if err != nil {
		RespondError(ctx, err)
		return
	}
	if image == nil {
		ErrorResponse(ctx, http.StatusBadRequest, "IMAGE_REQUIRED", "image is required")
		return
	}

	subCategory, err := c.SubCategoryUsecase.Create(ctx.Request.Context(), domain.SubCategoryInput{
		Name:        ctx.PostForm("subcategoryName"),
		Description: ctx.PostForm("description"),
		CategoryID:  categoryID,
		Image:       image,
	})
	if err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"success": true, "data": subCategory})
}

func (c *SubCategoryController) UpdateSubCategory(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("subcategoryId"))
	if err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ID", "invalid subcategoryId")
		return
	}

	input := domain.SubCategoryInput{
		Name:        ctx.PostForm("subcategoryName"),
		Description: ctx.PostForm("description"),
	}
	if raw := ctx.PostForm("categoryId"); raw != "" {
		categoryID, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ID", "invalid categoryId")
			return
		}
		input.CategoryID = categoryID
	}

	image, err := storeFormFile(ctx, c.Resolver, "image", storage.RoleSubCategoryImage)
	if err != nil {
		RespondError(ctx, err)
		return
	}
	input.Image = image

	subCategory, err := c.SubCategoryUsecase.Update(ctx.Request.Context(), id, input)
	if err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Subcategory updated successfully", "data": subCategory})
}

func (c *SubCategoryController) DeleteSubCategory(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("subcategoryId"))
	if err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ID", "invalid subcategoryId")
		return
	}

	result, err := c.SubCategoryUsecase.Delete(ctx.Request.Context(), id)
	if err != nil {
		RespondError(ctx, err)
		return
	}

	if result.Partial() {
		ctx.JSON(http.StatusOK, gin.H{
			"message":   "Subcategory deleted with warnings",
			"failedIds": result.FailedIDs,
			"result":    result,
		})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Subcategory deleted successfully", "result": result})
}
