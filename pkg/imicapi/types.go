package imicapi

import (
	"strings"
	"time"
)

// Timestamp parses the API's created_at/updated_at strings. It returns the
// zero time when s is not a recognized format.
func Timestamp(s string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05", time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Service is an interior design service.
type Service struct {
	ID        int    `json:"id"`
	NameEN    string `json:"name_en"`
	NameAR    string `json:"name_ar"`
	DescEN    string `json:"desc_en"`
	DescAR    string `json:"desc_ar"`
	Image     string `json:"img"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// Icon is the glyph shown next to a "why choose us" item.
type Icon string

const (
	IconStar  Icon = "star"
	IconAward Icon = "award"
	IconUsers Icon = "users"
	IconClock Icon = "clock"
)

// ParseIcon maps the server's icon field to an Icon. Unknown or empty
// values are IconStar.
func ParseIcon(s string) Icon {
	switch Icon(strings.ToLower(strings.TrimSpace(s))) {
	case IconAward:
		return IconAward
	case IconUsers:
		return IconUsers
	case IconClock:
		return IconClock
	default:
		return IconStar
	}
}

// WhyUs is one "why choose us" point.
type WhyUs struct {
	ID        int    `json:"id"`
	Icon      string `json:"icon"`
	NameEN    string `json:"name_en"`
	NameAR    string `json:"name_ar"`
	DescEN    string `json:"desc_en"`
	DescAR    string `json:"desc_ar"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// IconKind parses the icon name.
func (w WhyUs) IconKind() Icon {
	return ParseIcon(w.Icon)
}

// Company is a client company shown in the clients carousel.
type Company struct {
	ID        int    `json:"id"`
	NameEN    string `json:"name_en"`
	NameAR    string `json:"name_ar"`
	Image     string `json:"img"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ProjectCategory groups projects in the filter.
type ProjectCategory struct {
	ID        int    `json:"id"`
	NameEN    string `json:"name_en"`
	NameAR    string `json:"name_ar"`
	DescEN    string `json:"desc_en"`
	DescAR    string `json:"desc_ar"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// EngineerRef is the engineer summary embedded in a project.
type EngineerRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Project is a portfolio entry.
type Project struct {
	ID         int             `json:"id"`
	CategoryID int             `json:"category_id"`
	Cover      string          `json:"cover"`
	Images     []string        `json:"images"`
	TitleEN    string          `json:"title_en"`
	TitleAR    string          `json:"title_ar"`
	Video      string          `json:"video"`
	CreatedAt  string          `json:"created_at"`
	UpdatedAt  string          `json:"updated_at"`
	Category   ProjectCategory `json:"category"`
	Engineer   *EngineerRef    `json:"engineer,omitempty"`
}

// Engineer is a designer and the projects they led.
type Engineer struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
	Projects    []Project `json:"projects"`
}

// About is the company profile.
type About struct {
	ID        int    `json:"id"`
	DescEN    string `json:"desc_en"`
	DescAR    string `json:"desc_ar"`
	VisionEN  string `json:"vision_en"`
	VisionAR  string `json:"vision_ar"`
	MissionEN string `json:"mission_en"`
	MissionAR string `json:"mission_ar"`
	Image     string `json:"img"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

const MaxStars = 5

// Review is a customer testimonial.
type Review struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Text      string `json:"text"`
	NumStar   int    `json:"num_star"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// Stars returns NumStar clamped to 0..MaxStars.
func (r Review) Stars() int {
	return min(max(r.NumStar, 0), MaxStars)
}

// News is an article with bilingual title and body.
type News struct {
	ID        int    `json:"id"`
	TitleEN   string `json:"title_en"`
	TitleAR   string `json:"title_ar"`
	BodyEN    string `json:"body_en"`
	BodyAR    string `json:"body_ar"`
	ContentEN string `json:"content_en"`
	ContentAR string `json:"content_ar"`
	KeywordEN string `json:"keyword_en"`
	KeywordAR string `json:"keyword_ar"`
	Image     string `json:"image"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// NewsBar is the announcement strip above the header.
type NewsBar struct {
	ID       int    `json:"id"`
	Text     string `json:"text"`
	IsActive int    `json:"is_active"`
}

// Visible reports whether the bar should be shown.
func (b NewsBar) Visible() bool {
	return b.IsActive == 1 && strings.TrimSpace(b.Text) != ""
}

// ContactSubmission is the body of POST /contactus.
type ContactSubmission struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Msg      string `json:"msg"`
	Location string `json:"location"`
	TypeUnit string `json:"type_unit"`
}

// AppointmentRequest is the body of POST /appointments.
type AppointmentRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Date  string `json:"date"`
	Time  string `json:"time"`
}

// SubmitResult is the outcome of a write endpoint.
type SubmitResult struct {
	Message string `json:"message"`
}
