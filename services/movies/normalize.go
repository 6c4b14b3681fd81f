package movies

import (
	"fmt"
	"strings"

	"moviefinder/models"
	"moviefinder/services/metadata"
)

const (
	imdbTitleURL  = "https://www.imdb.com/title/%s"
	imdbPersonURL = "https://www.imdb.com/name/%s"
	tmdbPersonURL = "https://www.themoviedb.org/person/%d"
	youtubeEmbed  = "https://www.youtube.com/embed/%s"
)

func summarize(r metadata.MovieResult) models.MovieSummary {
	return models.MovieSummary{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Overview,
		PosterURL:   metadata.ImageURL(r.PosterPath, metadata.PosterSize),
		ReleaseYear: releaseYear(r.ReleaseDate),
	}
}

// releaseYear keeps the leading segment of a YYYY-MM-DD date.
func releaseYear(date string) string {
	date = strings.TrimSpace(date)
	if date == "" {
		return models.UnknownReleaseYear
	}
	year, _, _ := strings.Cut(date, "-")
	return year
}

func optionalURL(format string, id string) *string {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}
	u := fmt.Sprintf(format, id)
	return &u
}

func optionalImage(path, size string) *string {
	u := metadata.ImageURL(path, size)
	if u == "" {
		return nil
	}
	return &u
}

func imageURLs(files []metadata.ImageFile, size string) []string {
	urls := make([]string, 0, len(files))
	for _, f := range files {
		if u := metadata.ImageURL(f.FilePath, size); u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

func genreNames(genres []metadata.Genre) []string {
	names := make([]string, 0, len(genres))
	for _, g := range genres {
		names = append(names, g.Name)
	}
	return names
}

// trailerURL embeds the first YouTube trailer, or returns "".
func trailerURL(videos []metadata.Video) string {
	for _, v := range videos {
		if v.Site == "YouTube" && v.Type == "Trailer" && strings.TrimSpace(v.Key) != "" {
			return fmt.Sprintf(youtubeEmbed, strings.TrimSpace(v.Key))
		}
	}
	return ""
}
