// internals/features/courses/category/controller/category_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"belajarshafa_backend/internals/features/courses/category/dto"
	categoryModel "belajarshafa_backend/internals/features/courses/category/model"
	helper "belajarshafa_backend/internals/helpers"
)

var validate = validator.New()

type CategoryController struct {
	DB *gorm.DB
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{DB: db}
}

// POST /api/categories
func (ctrl *CategoryController) Create(c *fiber.Ctx) error {
	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	name := strings.TrimSpace(req.CategoryName)
	var count int64
	if err := ctrl.DB.Model(&categoryModel.CategoryModel{}).
		Where("LOWER(category_name) = LOWER(?)", name).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nama kategori sudah dipakai")
	}

	cat := categoryModel.CategoryModel{
		CategoryName:        name,
		CategoryDescription: req.CategoryDescription,
	}
	if err := ctrl.DB.Create(&cat).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat kategori")
	}
	return helper.JsonCreated(c, "Kategori berhasil dibuat", dto.FromCategoryModel(cat))
}

// GET /api/categories
func (ctrl *CategoryController) List(c *fiber.Ctx) error {
	var cats []categoryModel.CategoryModel
	if err := ctrl.DB.Order("category_name ASC").Find(&cats).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kategori")
	}
	return helper.JsonOK(c, "ok", dto.FromCategoryModels(cats))
}

// PATCH /api/categories/:id
func (ctrl *CategoryController) Update(c *fiber.Ctx) error {
	categoryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var cat categoryModel.CategoryModel
	if err := ctrl.DB.First(&cat, "category_id = ?", categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kategori tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	var req dto.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	updates := map[string]interface{}{}
	if req.CategoryName != nil {
		name := strings.TrimSpace(*req.CategoryName)
		var count int64
		if err := ctrl.DB.Model(&categoryModel.CategoryModel{}).
			Where("LOWER(category_name) = LOWER(?) AND category_id <> ?", name, categoryID).
			Count(&count).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
		}
		if count > 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Nama kategori sudah dipakai")
		}
		updates["category_name"] = name
	}
	if req.CategoryDescription != nil {
		updates["category_description"] = *req.CategoryDescription
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", dto.FromCategoryModel(cat))
	}

	if err := ctrl.DB.Model(&cat).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah kategori")
	}
	if err := ctrl.DB.First(&cat, "category_id = ?", categoryID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat kategori")
	}
	return helper.JsonUpdated(c, "Kategori berhasil diubah", dto.FromCategoryModel(cat))
}

// DELETE /api/categories/:id  (soft delete, kursus lama tetap menunjuk kategori)
func (ctrl *CategoryController) Delete(c *fiber.Ctx) error {
	categoryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	tx := ctrl.DB.Where("category_id = ?", categoryID).Delete(&categoryModel.CategoryModel{})
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kategori")
	}
	if tx.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kategori tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Kategori berhasil dihapus", fiber.Map{"category_id": categoryID})
}
