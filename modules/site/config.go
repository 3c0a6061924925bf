package site

import "time"

// Config holds the site settings read from the environment.
type Config struct {
	ClientsAutoplay      time.Duration `env:"CLIENTS_AUTOPLAY" envDefault:"3s"`
	TestimonialsAutoplay time.Duration `env:"TESTIMONIALS_AUTOPLAY" envDefault:"5s"`
	HomeNewsLimit        int           `env:"HOME_NEWS_LIMIT" envDefault:"3"`
	HomeProjectsLimit    int           `env:"HOME_PROJECTS_LIMIT" envDefault:"6"`
	NewsExcerptLength    int           `env:"NEWS_EXCERPT_LENGTH" envDefault:"150"`

	WhatsAppNumber      string `env:"WHATSAPP_NUMBER" envDefault:"01208777757"`
	WhatsAppCountryCode string `env:"WHATSAPP_COUNTRY_CODE" envDefault:"20"`
	WhatsAppMessage     string `env:"WHATSAPP_MESSAGE" envDefault:"مرحباً! أريد الاستفسار عن خدمات التصميم الداخلي"`
	WhatsAppQRSize      int    `env:"WHATSAPP_QR_SIZE" envDefault:"256"`

	LangCookieName string `env:"LANG_COOKIE_NAME" envDefault:"lang"`

	FormRateCapacity int           `env:"FORM_RATE_CAPACITY" envDefault:"5"`
	FormRateInterval time.Duration `env:"FORM_RATE_INTERVAL" envDefault:"1m"`

	CarouselSessions   int           `env:"CAROUSEL_SESSIONS" envDefault:"1024"`
	CarouselSessionTTL time.Duration `env:"CAROUSEL_SESSION_TTL" envDefault:"30m"`
}

// DefaultConfig returns the values used when the environment is empty.
func DefaultConfig() Config {
	return Config{
		ClientsAutoplay:      3 * time.Second,
		TestimonialsAutoplay: 5 * time.Second,
		HomeNewsLimit:        3,
		HomeProjectsLimit:    6,
		NewsExcerptLength:    150,
		WhatsAppNumber:       "01208777757",
		WhatsAppCountryCode:  "20",
		WhatsAppMessage:      "مرحباً! أريد الاستفسار عن خدمات التصميم الداخلي",
		WhatsAppQRSize:       256,
		LangCookieName:       "lang",
		FormRateCapacity:     5,
		FormRateInterval:     time.Minute,
		CarouselSessions:     1024,
		CarouselSessionTTL:   30 * time.Minute,
	}
}
