package api

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nfnt/resize"

	"nurtureplan/internal/dietplan"
)

// maxImageWidth is the width uploaded meal photos are resized to.
const maxImageWidth = 800

var errInvalidImage = errors.New("failed to decode image")

var allowedExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
}

// ListMeals returns the meal template catalog keyed by slug.
func (h *Handler) ListMeals(c *gin.Context) {
	c.JSON(http.StatusOK, dietplan.Catalog())
}

// UploadMealImage stores a resized photo for a meal template.
func (h *Handler) UploadMealImage(c *gin.Context) {
	slug := c.Param("slug")
	if _, ok := dietplan.Catalog()[slug]; !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("meal %q not found", slug)})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("get form err: %s", err.Error()), "field": "file"})
		return
	}

	extension := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[extension] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file type. Only JPEG, JPG, and PNG images are allowed.", "field": "file"})
		return
	}

	src, err := file.Open()
	if err != nil {
		h.fail(c, err, "open file")
		return
	}
	defer src.Close()

	imageData, err := io.ReadAll(src)
	if err != nil {
		h.fail(c, err, "read image")
		return
	}

	imagePath, err := saveImage(imageData, filepath.Join(h.ImagesDir, "meals"), slug, extension)
	if err != nil {
		if errors.Is(err, errInvalidImage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "field": "file"})
			return
		}
		h.fail(c, err, "save image")
		return
	}

	logger(c).Info().Str("slug", slug).Str("path", imagePath).Msg("meal image saved")
	c.JSON(http.StatusOK, gin.H{"slug": slug, "image_url": path.Join("/images", "meals", slug+extension)})
}

func saveImage(imageData []byte, dir, name, originalExtension string) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return "", fmt.Errorf("%w: %v", errInvalidImage, err)
	}

	if img.Bounds().Dx() > maxImageWidth {
		img = resize.Resize(maxImageWidth, 0, img, resize.Lanczos3)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create images directory: %w", err)
	}

	imagePath := filepath.Join(dir, name+originalExtension)
	out, err := os.Create(imagePath)
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer out.Close()

	switch originalExtension {
	case ".jpeg", ".jpg":
		err = jpeg.Encode(out, img, nil)
	case ".png":
		err = png.Encode(out, img)
	default:
		return "", fmt.Errorf("unsupported image format: %s", originalExtension)
	}

	if err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}

	return imagePath, nil
}
