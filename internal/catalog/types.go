package catalog

import "moviezone/internal/domain"

// resultsResponse is the envelope of listing and search responses
type resultsResponse struct {
	Results []domain.ResultItem `json:"results"`
}

// detailResponse is the wire form of GET /api/movie/{id}
type detailResponse struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"poster_path"`
	VoteAverage float64 `json:"vote_average"`
	Runtime     *int    `json:"runtime"`
	Videos      *struct {
		Results []domain.Video `json:"results"`
	} `json:"videos"`
}

func (r detailResponse) toDomain() domain.Detail {
	d := domain.Detail{
		ID:             r.ID,
		Title:          r.Title,
		Overview:       r.Overview,
		PosterPath:     r.PosterPath,
		VoteAverage:    r.VoteAverage,
		RuntimeMinutes: r.Runtime,
	}
	if r.Videos != nil {
		d.Videos = r.Videos.Results
	}
	return d
}
