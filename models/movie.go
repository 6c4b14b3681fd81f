package models

// UnknownReleaseYear is reported when the provider has no release date.
const UnknownReleaseYear = "N/A"

// MovieSummary is the card-level projection of a provider search result.
type MovieSummary struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	PosterURL   string `json:"posterUrl"`
	ReleaseYear string `json:"releaseYear"`
}

// MovieImages groups gallery URLs by kind.
type MovieImages struct {
	Backdrops []string `json:"backdrops"`
	Posters   []string `json:"posters"`
}

// CastMember is a billed performer. ProfileURL and IMDBURL are null when unknown.
type CastMember struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Character  string  `json:"character"`
	ProfileURL *string `json:"profileUrl"`
	IMDBURL    *string `json:"imdbUrl"`
	TMDBURL    string  `json:"tmdbUrl"`
}

// CrewMember is one of the headline crew roles (Director, Producer, Writer).
type CrewMember struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Job     string  `json:"job"`
	IMDBURL *string `json:"imdbUrl"`
}

// MovieDetail is the fully enriched view of a single movie.
type MovieDetail struct {
	MovieSummary
	Genres      []string     `json:"genres"`
	Rating      float64      `json:"rating"`
	VoteCount   int          `json:"voteCount"`
	BackdropURL string       `json:"backdropUrl"`
	Images      MovieImages  `json:"images"`
	TrailerURL  string       `json:"trailerUrl"`
	Cast        []CastMember `json:"cast"`
	Crew        []CrewMember `json:"crew"`
	IMDBID      string       `json:"imdbId"`
	IMDBURL     *string      `json:"imdbUrl"`
}
