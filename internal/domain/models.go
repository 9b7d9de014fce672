package domain

// ResultItem is one movie in a listing or search result
type ResultItem struct {
	ID             int     `json:"id"`
	Title          string  `json:"title"`
	PosterPath     string  `json:"poster_path"` // "" when the catalog has no poster
	VoteAverage    float64 `json:"vote_average"`
	RuntimeMinutes *int    `json:"runtime,omitempty"`
}

// HasPoster reports whether the catalog supplied a poster path
func (r ResultItem) HasPoster() bool {
	return r.PosterPath != ""
}

// Video is a trailer, teaser or clip attached to a movie detail
type Video struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Site string `json:"site"`
	Key  string `json:"key"`
	Type string `json:"type"`
}

// YouTubeSite is the site value of videos that can be embedded
const YouTubeSite = "YouTube"

// EmbedURL returns the player URL for a YouTube video
func (v Video) EmbedURL() string {
	return "https://www.youtube.com/embed/" + v.Key
}

// Detail is the extended record shown in the detail overlay
type Detail struct {
	ID             int
	Title          string
	Overview       string
	PosterPath     string
	VoteAverage    float64
	RuntimeMinutes *int
	Videos         []Video // collaborator order
}

// Runtime returns the runtime in minutes, or 0 when unknown
func (d Detail) Runtime() int {
	if d.RuntimeMinutes == nil {
		return 0
	}
	return *d.RuntimeMinutes
}

// Runtime returns the runtime in minutes, or 0 when unknown
func (r ResultItem) Runtime() int {
	if r.RuntimeMinutes == nil {
		return 0
	}
	return *r.RuntimeMinutes
}
