package site_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/imic/modules/site"
	"github.com/dmitrymomot/imic/pkg/i18n"
	"github.com/dmitrymomot/imic/pkg/imicapi"
)

func TestExcerpt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		body  string
		limit int
		want  string
	}{
		{name: "empty", body: "", limit: 10, want: ""},
		{name: "short first paragraph", body: "Hello world\n\nSecond", limit: 50, want: "Hello world"},
		{name: "crlf paragraphs", body: "First\r\n\r\nSecond", limit: 50, want: "First"},
		{name: "truncated", body: "abcdefghij", limit: 4, want: "abcd..."},
		{name: "exact length kept", body: "abcd", limit: 4, want: "abcd"},
		{name: "no limit", body: "abcdefghij", limit: 0, want: "abcdefghij"},
		{name: "arabic runes", body: "مرحبا بكم", limit: 5, want: "مرحبا..."},
		{name: "leading blank paragraphs", body: "\n\n\n\nText", limit: 10, want: "Text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, site.Excerpt(tt.body, tt.limit))
		})
	}
}

func TestBlocks(t *testing.T) {
	t.Parallel()

	blocks := site.Blocks("Intro text\r\n\r\n1. First step\r\n\r\n2 Second step\r\n\r\n2024year plan\r\n\r\n  \r\n\r\nOutro")
	require.Len(t, blocks, 5)
	assert.Equal(t, site.Block{Text: "Intro text"}, blocks[0])
	assert.Equal(t, site.Block{Heading: true, Text: "1. First step"}, blocks[1])
	assert.Equal(t, site.Block{Heading: true, Text: "2 Second step"}, blocks[2])
	assert.False(t, blocks[3].Heading)
	assert.Equal(t, "Outro", blocks[4].Text)

	t.Run("plain blank lines stay in one block", func(t *testing.T) {
		t.Parallel()
		blocks := site.Blocks("Intro\n\n1. Step")
		require.Len(t, blocks, 1)
		assert.Equal(t, "Intro\n\n1. Step", blocks[0].Text)
		assert.False(t, blocks[0].Heading)
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, site.Blocks("  \r\n\r\n  "))
	})
}

func TestProjectVideo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "empty", url: "", want: ""},
		{name: "placeholder", url: "https://www.youtube.com/", want: ""},
		{name: "placeholder without slash", url: " https://www.youtube.com ", want: ""},
		{name: "real video", url: "https://www.youtube.com/watch?v=abc123", want: "https://www.youtube.com/watch?v=abc123"},
		{name: "other host", url: "https://vimeo.com/42", want: "https://vimeo.com/42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, site.ProjectVideo(tt.url))
		})
	}
}

func TestNewsCards(t *testing.T) {
	t.Parallel()

	items := []imicapi.News{
		{ID: 1, TitleEN: "One", TitleAR: "واحد", BodyEN: "Body one", BodyAR: "نص", CreatedAt: "2024-03-05 10:00:00"},
		{ID: 2, TitleEN: "Two", TitleAR: "اثنان"},
		{ID: 3, TitleEN: "Three", TitleAR: "ثلاثة"},
	}

	t.Run("limit and english", func(t *testing.T) {
		t.Parallel()
		cards := site.NewsCards(i18n.NewLocalizer(nil, i18n.English), items, 2, 150)
		require.Len(t, cards, 2)
		assert.Equal(t, "One", cards[0].Title)
		assert.Equal(t, "Body one", cards[0].Excerpt)
		assert.Equal(t, 2024, cards[0].Published.Year())
		assert.True(t, cards[1].Published.IsZero())
	})

	t.Run("no limit arabic", func(t *testing.T) {
		t.Parallel()
		cards := site.NewsCards(i18n.NewLocalizer(nil, i18n.Arabic), items, 0, 150)
		require.Len(t, cards, 3)
		assert.Equal(t, "واحد", cards[0].Title)
		assert.Equal(t, "نص", cards[0].Excerpt)
	})
}

func TestNewArticle(t *testing.T) {
	t.Parallel()

	n := imicapi.News{
		ID:        7,
		TitleEN:   "Title",
		BodyEN:    "First paragraph\r\n\r\n1. Heading\r\n\r\nDetails",
		KeywordEN: "design, villas",
		Image:     "https://cdn.example.com/a.jpg",
		CreatedAt: "2024-01-02T03:04:05Z",
		UpdatedAt: "2024-02-02",
	}

	a := site.NewArticle(i18n.NewLocalizer(nil, i18n.English), n)
	assert.Equal(t, 7, a.ID)
	assert.Equal(t, "Title", a.Title)
	assert.Equal(t, "First paragraph", a.Summary, "summary falls back to the first paragraph")
	assert.Equal(t, "design, villas", a.Keywords)
	require.Len(t, a.Blocks, 3)
	assert.True(t, a.Blocks[1].Heading)
	assert.Equal(t, 2024, a.Published.Year())
	assert.Equal(t, 2, int(a.Updated.Month()))

	n.ContentEN = "Explicit summary"
	assert.Equal(t, "Explicit summary", site.NewArticle(i18n.NewLocalizer(nil, i18n.English), n).Summary)
}

func testProjects() []imicapi.Project {
	return []imicapi.Project{
		{ID: 1, CategoryID: 10, TitleEN: "Villa", Category: imicapi.ProjectCategory{ID: 10, NameEN: "Residential", NameAR: "سكني"}},
		{ID: 2, CategoryID: 20, TitleEN: "Office", Category: imicapi.ProjectCategory{ID: 20, NameEN: "Commercial", NameAR: "تجاري"}},
		{ID: 3, CategoryID: 10, TitleEN: "Flat", Category: imicapi.ProjectCategory{ID: 10, NameEN: "Residential", NameAR: "سكني"}},
		{ID: 4, CategoryID: 30, TitleEN: "Shop"},
	}
}

func TestCategories(t *testing.T) {
	t.Parallel()

	cats := site.Categories(i18n.NewLocalizer(nil, i18n.Arabic), testProjects(), "20")
	require.Len(t, cats, 4)
	assert.Equal(t, site.AllCategories, cats[0].ID)
	assert.False(t, cats[0].Active)
	assert.Equal(t, site.CategoryOption{ID: "10", Label: "سكني"}, cats[1])
	assert.Equal(t, site.CategoryOption{ID: "20", Label: "تجاري", Active: true}, cats[2])
	assert.Equal(t, "30", cats[3].Label, "unnamed categories use their id")

	cats = site.Categories(i18n.NewLocalizer(nil, i18n.English), testProjects(), "")
	assert.True(t, cats[0].Active)
}

func TestFilterProjects(t *testing.T) {
	t.Parallel()

	projects := testProjects()
	assert.Len(t, site.FilterProjects(projects, ""), 4)
	assert.Len(t, site.FilterProjects(projects, site.AllCategories), 4)
	assert.Len(t, site.FilterProjects(projects, "abc"), 4)
	assert.Len(t, site.FilterProjects(projects, "10"), 2)
	assert.Empty(t, site.FilterProjects(projects, "99"))
}

func TestNewProjectListing(t *testing.T) {
	t.Parallel()
	l := i18n.NewLocalizer(nil, i18n.English)

	t.Run("limited listing hides the filter", func(t *testing.T) {
		t.Parallel()
		listing := site.NewProjectListing(l, testProjects(), "10", 3)
		assert.False(t, listing.Filterable)
		assert.Len(t, listing.Projects, 3)
		assert.Empty(t, listing.Categories)
	})

	t.Run("known category", func(t *testing.T) {
		t.Parallel()
		listing := site.NewProjectListing(l, testProjects(), "10", 0)
		assert.True(t, listing.Filterable)
		assert.Equal(t, "10", listing.Active)
		assert.Len(t, listing.Projects, 2)
	})

	t.Run("unknown category shows all", func(t *testing.T) {
		t.Parallel()
		listing := site.NewProjectListing(l, testProjects(), "99", 0)
		assert.Equal(t, site.AllCategories, listing.Active)
		assert.True(t, listing.Categories[0].Active)
		assert.Len(t, listing.Projects, 4)
	})
}
