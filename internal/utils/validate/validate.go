package validate

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/utils/errs"
)

const (
	maxDimension = 4096
)

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpeg": true,
	".jpg":  true,
	".webp": true,
}

// ValidateVariantCount checks the requested number of output
// variations. Any positive integer is accepted, the UI's 2/4/6 choice
// is not a rule of this service.
func ValidateVariantCount(count int) error {
	if count < 1 {
		return fmt.Errorf("variant count must be a positive integer, got %d", count)
	}

	return nil
}

func ValidateImageExtension(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return errs.ErrInvalidImageType
	}

	return nil
}

func ValidateDimensions(width, height int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("dimensions must be positive, got %dx%d", width, height)
	}
	if width > maxDimension || height > maxDimension {
		return fmt.Errorf("dimensions must not exceed %d, got %dx%d", maxDimension, width, height)
	}

	return nil
}
