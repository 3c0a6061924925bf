package site

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/imic/handler"
	"github.com/dmitrymomot/imic/pkg/qrcode"
)

// qrMaxAge is how long browsers may cache the QR image, in seconds.
const qrMaxAge = 24 * 60 * 60

// AssetService serves generated images.
type AssetService struct {
	cfg          Config
	errorHandler handler.ErrorHandler[handler.Context]

	qrOnce sync.Once
	qr     []byte
	qrErr  error
}

// NewAssetService serves the brand assets.
func NewAssetService(cfg Config, errorHandler handler.ErrorHandler[handler.Context]) *AssetService {
	return &AssetService{cfg: cfg, errorHandler: errorHandler}
}

func (s *AssetService) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/whatsapp.png", handler.Wrap(s.whatsApp,
		handler.WithErrorHandler[handler.Context, PageRequest](s.errorHandler),
	))

	return r
}

// whatsApp renders the QR code of the WhatsApp chat link. The image only
// depends on configuration, so it is generated once.
func (s *AssetService) whatsApp(_ handler.Context, _ PageRequest) handler.Response {
	s.qrOnce.Do(func() {
		link, err := qrcode.WhatsAppLink(s.cfg.WhatsAppCountryCode, s.cfg.WhatsAppNumber, s.cfg.WhatsAppMessage)
		if err != nil {
			s.qrErr = err
			return
		}
		s.qr, s.qrErr = qrcode.Generate(link, s.cfg.WhatsAppQRSize)
	})
	if s.qrErr != nil {
		return handler.Error(s.qrErr)
	}
	return handler.Blob(s.qr, "image/png", qrMaxAge)
}
