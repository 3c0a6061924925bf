package site

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/dmitrymomot/imic/pkg/i18n"
	"github.com/dmitrymomot/imic/pkg/imicapi"
	"github.com/dmitrymomot/imic/pkg/sanitizer"
)

// AllCategories is the project filter value that disables filtering.
const AllCategories = "all"

var headingPattern = regexp.MustCompile(`^\d+(\.|\s)`)

// NewsCard is a news item prepared for a listing in one language.
type NewsCard struct {
	ID        int
	Title     string
	Excerpt   string
	Image     string
	Published time.Time
}

// Block is one paragraph of an article body.
type Block struct {
	Heading bool
	Text    string
}

// Article is a news item prepared for the detail page.
type Article struct {
	ID        int
	Title     string
	Summary   string
	Keywords  string
	Image     string
	Blocks    []Block
	Published time.Time
	Updated   time.Time
}

// CategoryOption is one entry of the project filter.
type CategoryOption struct {
	ID     string
	Label  string
	Active bool
}

// ProjectListing is the projects grid with its category filter.
type ProjectListing struct {
	Categories []CategoryOption
	Active     string
	Projects   []imicapi.Project
	Filterable bool
}

// paragraphSeparator is the blank line the back office stores between
// paragraphs.
const paragraphSeparator = "\r\n\r\n"

// videoPlaceholder is stored for projects without a video.
const videoPlaceholder = "https://www.youtube.com"

// splitParagraphs splits body on sep, trimming and dropping empty parts.
func splitParagraphs(body, sep string) []string {
	parts := lo.Map(strings.Split(body, sep), func(p string, _ int) string {
		return strings.TrimSpace(p)
	})
	return lo.Compact(parts)
}

// Excerpt returns the first paragraph of body without markup, cut to
// limit runes with a trailing "...". Bodies without CRLF separators are
// split on plain blank lines.
func Excerpt(body string, limit int) string {
	sep := paragraphSeparator
	if !strings.Contains(body, sep) {
		sep = "\n\n"
	}
	paragraphs := splitParagraphs(body, sep)
	if len(paragraphs) == 0 {
		return ""
	}
	first := sanitizer.Apply(paragraphs[0], sanitizer.StripHTML, sanitizer.CollapseWhitespace)
	if limit <= 0 || utf8.RuneCountInString(first) <= limit {
		return first
	}
	return string([]rune(first)[:limit]) + "..."
}

// Blocks splits an article body into paragraphs on CRLF blank lines.
// Paragraphs that open with a number followed by a dot or a space are
// headings.
func Blocks(body string) []Block {
	return lo.Map(splitParagraphs(body, paragraphSeparator), func(p string, _ int) Block {
		return Block{Heading: headingPattern.MatchString(p), Text: p}
	})
}

// NewsCards prepares up to limit items for l's language. A limit of zero
// keeps every item.
func NewsCards(l i18n.Localizer, items []imicapi.News, limit, excerptLen int) []NewsCard {
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return lo.Map(items, func(n imicapi.News, _ int) NewsCard {
		return NewsCard{
			ID:        n.ID,
			Title:     l.Pick(n.TitleEN, n.TitleAR),
			Excerpt:   Excerpt(l.Pick(n.BodyEN, n.BodyAR), excerptLen),
			Image:     n.Image,
			Published: imicapi.Timestamp(n.CreatedAt),
		}
	})
}

// NewArticle prepares a news item for the detail page.
func NewArticle(l i18n.Localizer, n imicapi.News) Article {
	body := l.Pick(n.BodyEN, n.BodyAR)
	summary := l.Pick(n.ContentEN, n.ContentAR)
	if strings.TrimSpace(summary) == "" {
		summary = Excerpt(body, 0)
	}
	return Article{
		ID:        n.ID,
		Title:     l.Pick(n.TitleEN, n.TitleAR),
		Summary:   summary,
		Keywords:  l.Pick(n.KeywordEN, n.KeywordAR),
		Image:     n.Image,
		Blocks:    Blocks(body),
		Published: imicapi.Timestamp(n.CreatedAt),
		Updated:   imicapi.Timestamp(n.UpdatedAt),
	}
}

// ProjectVideo returns the project's video link, or "" when it is empty
// or the bare YouTube placeholder.
func ProjectVideo(url string) string {
	url = strings.TrimSpace(url)
	if url == "" || strings.EqualFold(strings.TrimRight(url, "/"), videoPlaceholder) {
		return ""
	}
	return url
}

// Categories lists "all" followed by each category in first-seen order.
func Categories(l i18n.Localizer, projects []imicapi.Project, active string) []CategoryOption {
	if active == "" {
		active = AllCategories
	}
	opts := []CategoryOption{{ID: AllCategories, Label: l.T("projects.all"), Active: active == AllCategories}}
	unique := lo.UniqBy(projects, func(p imicapi.Project) int { return p.CategoryID })
	for _, p := range unique {
		id := strconv.Itoa(p.CategoryID)
		label := l.Pick(p.Category.NameEN, p.Category.NameAR)
		if label == "" {
			label = id
		}
		opts = append(opts, CategoryOption{ID: id, Label: label, Active: active == id})
	}
	return opts
}

// FilterProjects keeps the projects of category. "all", an empty value and
// unknown values keep everything.
func FilterProjects(projects []imicapi.Project, category string) []imicapi.Project {
	if category == "" || category == AllCategories {
		return projects
	}
	id, err := strconv.Atoi(category)
	if err != nil {
		return projects
	}
	return lo.Filter(projects, func(p imicapi.Project, _ int) bool { return p.CategoryID == id })
}

// NewProjectListing filters projects by category and builds the filter.
// A positive limit cuts the list and hides the filter.
func NewProjectListing(l i18n.Localizer, projects []imicapi.Project, category string, limit int) ProjectListing {
	if limit > 0 {
		return ProjectListing{Projects: lo.Slice(projects, 0, limit), Active: AllCategories}
	}
	cats := Categories(l, projects, category)
	active, ok := lo.Find(cats, func(c CategoryOption) bool { return c.Active })
	if !ok {
		cats[0].Active = true
		active = cats[0]
	}
	return ProjectListing{
		Categories: cats,
		Active:     active.ID,
		Projects:   FilterProjects(projects, active.ID),
		Filterable: true,
	}
}
