package domain

import (
	"net/url"
	"strings"
)

// Images resolves poster paths to displayable URLs
type Images struct {
	BaseURL        string // CDN prefix, e.g. https://image.tmdb.org/t/p/w500
	PlaceholderURL string // placeholder service, parameterized with ?text=<title>
}

// PosterURL returns the CDN URL for the item, or a placeholder keyed on its title
func (im Images) PosterURL(item ResultItem) string {
	return im.resolve(item.PosterPath, item.Title)
}

// DetailPosterURL is PosterURL for an open detail
func (im Images) DetailPosterURL(d Detail) string {
	return im.resolve(d.PosterPath, d.Title)
}

func (im Images) resolve(path, title string) string {
	if path != "" {
		return strings.TrimRight(im.BaseURL, "/") + "/" + strings.TrimLeft(path, "/")
	}
	return im.PlaceholderURL + "?text=" + url.QueryEscape(title)
}
