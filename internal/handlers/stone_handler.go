package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"stonevault-backend/internal/config"
	"stonevault-backend/internal/dto"
	"stonevault-backend/internal/services"
	"stonevault-backend/internal/validation"
)

const maxStoneImages = 5

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

type StoneHandler struct {
	catalog *services.CatalogService
	cfg     *config.Config
}

func NewStoneHandler(catalog *services.CatalogService, cfg *config.Config) *StoneHandler {
	return &StoneHandler{catalog: catalog, cfg: cfg}
}

// List handles GET /stones with optional type/color/price/search
// filters and pagination.
func (h *StoneHandler) List(c *fiber.Ctx) error {
	filters := dto.StoneFilters{
		Type:   c.Query("type"),
		Color:  c.Query("color"),
		Search: c.Query("search"),
		Limit:  c.QueryInt("limit", 12),
		Offset: c.QueryInt("offset", 0),
	}

	if raw := c.Query("priceMin"); raw != "" {
		min, err := decimal.NewFromString(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid priceMin",
			})
		}
		filters.PriceMin = &min
	}
	if raw := c.Query("priceMax"); raw != "" {
		max, err := decimal.NewFromString(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid priceMax",
			})
		}
		filters.PriceMax = &max
	}

	stones, err := h.catalog.List(filters)
	if err != nil {
		slog.Error("stone list failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch stones",
		})
	}
	return c.JSON(stones)
}

func (h *StoneHandler) Featured(c *fiber.Ctx) error {
	stones, err := h.catalog.Featured()
	if err != nil {
		slog.Error("featured stones failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch featured stones",
		})
	}
	return c.JSON(stones)
}

func (h *StoneHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid stone ID",
		})
	}

	stone, err := h.catalog.ByID(uint(id))
	if err != nil {
		return h.stoneError(c, err, "Failed to fetch stone")
	}
	return c.JSON(stone)
}

func (h *StoneHandler) GetBySlug(c *fiber.Ctx) error {
	stone, err := h.catalog.BySlug(c.Params("slug"))
	if err != nil {
		return h.stoneError(c, err, "Failed to fetch stone")
	}
	return c.JSON(stone)
}

// Create handles POST /admin/stones: multipart form with stone fields
// plus up to 5 image files.
func (h *StoneHandler) Create(c *fiber.Ctx) error {
	input, err := h.parseStoneForm(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	images, err := h.saveUploads(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	input.Images = images

	if err := validation.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Validation failed", Details: validation.Details(err),
		})
	}

	stone, err := h.catalog.Create(input)
	if err != nil {
		return h.stoneError(c, err, "Failed to create stone")
	}
	return c.Status(fiber.StatusCreated).JSON(stone)
}

// Update handles PUT /admin/stones/:id. New uploads are appended after
// the retained URLs the client sent in the existingImages form field.
func (h *StoneHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid stone ID",
		})
	}

	input, err := h.parseStoneForm(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	var existing []string
	if raw := c.FormValue("existingImages"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &existing); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid existingImages list",
			})
		}
	}

	uploaded, err := h.saveUploads(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	input.Images = append(existing, uploaded...)

	if err := validation.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Validation failed", Details: validation.Details(err),
		})
	}

	stone, err := h.catalog.Update(uint(id), input)
	if err != nil {
		return h.stoneError(c, err, "Failed to update stone")
	}
	return c.JSON(stone)
}

func (h *StoneHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid stone ID",
		})
	}

	if err := h.catalog.Delete(uint(id)); err != nil {
		return h.stoneError(c, err, "Failed to delete stone")
	}
	return c.JSON(dto.MessageResponse{Message: "Stone deleted"})
}

func (h *StoneHandler) parseStoneForm(c *fiber.Ctx) (*dto.StoneInput, error) {
	weight, err := decimal.NewFromString(c.FormValue("weight"))
	if err != nil {
		return nil, errors.New("weight must be a decimal number")
	}
	price, err := decimal.NewFromString(c.FormValue("price"))
	if err != nil {
		return nil, errors.New("price must be a decimal number")
	}
	if weight.IsNegative() || price.IsNegative() {
		return nil, errors.New("weight and price must not be negative")
	}

	stock := 0
	if raw := c.FormValue("stock"); raw != "" {
		stock, err = strconv.Atoi(raw)
		if err != nil || stock < 0 {
			return nil, errors.New("stock must be a non-negative integer")
		}
	}

	return &dto.StoneInput{
		Name:        c.FormValue("name"),
		Slug:        c.FormValue("slug"),
		Type:        c.FormValue("type"),
		Color:       c.FormValue("color"),
		Weight:      weight,
		Origin:      c.FormValue("origin"),
		ShortInfo:   c.FormValue("shortInfo"),
		Description: c.FormValue("description"),
		Price:       price,
		Currency:    c.FormValue("currency"),
		Stock:       stock,
		IsFeatured:  c.FormValue("isFeatured") == "true",
	}, nil
}

// saveUploads stores the multipart "images" files under the public
// uploads dir and returns their URLs.
func (h *StoneHandler) saveUploads(c *fiber.Ctx) ([]string, error) {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil, nil
	}
	files := form.File["images"]
	if len(files) == 0 {
		return nil, nil
	}
	if len(files) > maxStoneImages {
		return nil, fmt.Errorf("at most %d images are allowed", maxStoneImages)
	}

	urls := make([]string, 0, len(files))
	for _, file := range files {
		if file.Size > h.cfg.MaxUploadBytes {
			return nil, errors.New("each image must be smaller than 5MB")
		}
		if !allowedImageTypes[file.Header.Get("Content-Type")] {
			return nil, errors.New("only JPEG, PNG, and WebP images are allowed")
		}

		name := uploadName(file)
		if err := c.SaveFile(file, filepath.Join(h.cfg.UploadDir, name)); err != nil {
			return nil, fmt.Errorf("failed to save image: %w", err)
		}
		urls = append(urls, "/uploads/"+name)
	}
	return urls, nil
}

func uploadName(file *multipart.FileHeader) string {
	ext := filepath.Ext(file.Filename)
	if ext == "" {
		ext = ".jpg"
	}
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.New().String()[:8], ext)
}

func (h *StoneHandler) stoneError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrStoneNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Stone not found",
		})
	case errors.Is(err, services.ErrSlugTaken), errors.Is(err, services.ErrInvalidStoneType):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	default:
		slog.Error("stone operation failed", "error", err, "path", c.Path())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: fallback,
		})
	}
}
