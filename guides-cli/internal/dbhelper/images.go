package dbhelper

import (
	"fmt"
	"strings"

	"local-guides/guides-cli/internal/domain"
)

var imageWidths = []string{"1024w", "640w", "320w"}

func URLForRestaurant(r domain.Restaurant) string {
	return fmt.Sprintf("./restaurant.html?id=%d", r.ID)
}

// ImageURLForRestaurant is empty when the restaurant has no photograph.
func ImageURLForRestaurant(r domain.Restaurant) string {
	if r.Photograph == "" {
		return ""
	}
	return fmt.Sprintf("public/img/jpg/320w/%s.jpg", r.Photograph)
}

func ImageSrcsetForRestaurant(r domain.Restaurant) string {
	return srcset(r.Photograph, "jpg")
}

func WebpSrcsetForRestaurant(r domain.Restaurant) string {
	return srcset(r.Photograph, "webp")
}

func srcset(photograph, format string) string {
	parts := make([]string, 0, len(imageWidths))
	for _, width := range imageWidths {
		parts = append(parts, fmt.Sprintf("public/img/%s/%s/%s.%s %s", format, width, photograph, format, width))
	}
	return strings.Join(parts, ", ")
}
