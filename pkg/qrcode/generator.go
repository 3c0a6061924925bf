package qrcode

import (
	"encoding/base64"
	"errors"
	"net/url"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

var (
	ErrEmptyContent             = errors.New("qrcode: content cannot be empty")
	ErrorFailedToGenerateQRCode = errors.New("qrcode: failed to generate QR code")
	ErrInvalidPhoneNumber       = errors.New("qrcode: invalid phone number")
)

// DefaultSize is used when size <= 0.
const DefaultSize = 256

// Generate encodes content as a size x size PNG.
func Generate(content string, size int) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if size <= 0 {
		size = DefaultSize
	}
	png, err := skipqrcode.Encode(content, skipqrcode.Medium, size)
	if err != nil {
		return nil, errors.Join(ErrorFailedToGenerateQRCode, err)
	}
	return png, nil
}

// GenerateBase64Image returns the PNG as a data URI usable in <img src>.
func GenerateBase64Image(content string, size int) (string, error) {
	png, err := Generate(content, size)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// WhatsAppLink builds a wa.me link for a local number. Non-digits and
// leading zeros are dropped and countryCode is prepended, unless the number
// starts with "+" and is already international.
func WhatsAppLink(countryCode, number, message string) (string, error) {
	international := strings.HasPrefix(strings.TrimSpace(number), "+")

	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)
	if !international {
		digits = strings.TrimLeft(digits, "0")
		if digits != "" {
			digits = strings.TrimLeft(countryCode, "+") + digits
		}
	}
	if len(digits) < 7 {
		return "", ErrInvalidPhoneNumber
	}

	link := "https://wa.me/" + digits
	if message = strings.TrimSpace(message); message != "" {
		link += "?text=" + url.QueryEscape(message)
	}
	return link, nil
}
