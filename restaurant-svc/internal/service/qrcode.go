package service

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

// DefaultQRGenerator encodes the public detail page of a restaurant.
type DefaultQRGenerator struct {
	SiteURL string
}

func (g DefaultQRGenerator) Generate(restaurantID int) ([]byte, error) {
	page := fmt.Sprintf("%s/restaurant.html?id=%d", strings.TrimSuffix(g.SiteURL, "/"), restaurantID)
	return qrcode.Encode(page, qrcode.Medium, 256)
}
