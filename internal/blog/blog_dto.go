package blog

import (
	"strings"
	"unicode/utf8"
)

const ExcerptLength = 120

type BlogRequest struct {
	Title       string `json:"title" form:"title" binding:"required,notblank"`
	PublishedAt string `json:"published_at" form:"published_at" binding:"required,datetime=2006-01-02"`
	RevisedAt   string `json:"revised_at" form:"revised_at" binding:"required,datetime=2006-01-02"`
	Body        string `json:"body" form:"body" binding:"required,notblank"`
}

type (
	CreateBlogRequest = BlogRequest
	UpdateBlogRequest = BlogRequest
)

type BlogResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	PublishedAt string `json:"published_at"`
	RevisedAt   string `json:"revised_at"`
	Body        string `json:"body,omitempty"`
	Excerpt     string `json:"excerpt"`
	BannerPath  string `json:"banner_path"`
	BannerURL   string `json:"banner_url"`
}

// Excerpt shortens body to at most n runes on a word boundary.
func Excerpt(body string, n int) string {
	body = strings.Join(strings.Fields(body), " ")
	if utf8.RuneCountInString(body) <= n {
		return body
	}
	cut := string([]rune(body)[:n])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return cut + "..."
}
