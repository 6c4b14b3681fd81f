package movies

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"moviefinder/services/metadata"
)

func sampleDetails() *metadata.MovieDetails {
	d := &metadata.MovieDetails{
		ID:           27205,
		Title:        "Inception",
		Overview:     "Dreams within dreams.",
		PosterPath:   "/poster.jpg",
		BackdropPath: "/backdrop.jpg",
		ReleaseDate:  "2010-07-15",
		IMDBID:       "tt1375666",
		VoteAverage:  8.4,
		VoteCount:    35000,
		Genres:       []metadata.Genre{{ID: 28, Name: "Action"}, {ID: 878, Name: "Science Fiction"}},
	}
	d.Images.Backdrops = []metadata.ImageFile{{FilePath: "/b1.jpg"}, {FilePath: ""}}
	d.Images.Posters = []metadata.ImageFile{{FilePath: "/p1.jpg"}}
	d.Videos.Results = []metadata.Video{
		{Key: "teaser", Site: "YouTube", Type: "Teaser"},
		{Key: "vimeo", Site: "Vimeo", Type: "Trailer"},
		{Key: "yt-trailer", Site: "YouTube", Type: "Trailer"},
		{Key: "second", Site: "YouTube", Type: "Trailer"},
	}
	return d
}

func sampleCredits(castSize int) *metadata.Credits {
	credits := &metadata.Credits{ID: 27205}
	for i := 0; i < castSize; i++ {
		credits.Cast = append(credits.Cast, metadata.CastCredit{
			ID:          int64(i + 1),
			Name:        "Actor",
			Character:   "Role",
			ProfilePath: "/face.jpg",
		})
	}
	credits.Crew = []metadata.CrewCredit{
		{ID: 101, Name: "Emma Thomas", Job: "Producer"},
		{ID: 102, Name: "Christopher Nolan", Job: "Director"},
		{ID: 103, Name: "Second Director", Job: "Director"},
		{ID: 104, Name: "Christopher Nolan", Job: "Writer"},
		{ID: 105, Name: "Lee Smith", Job: "Editor"},
	}
	return credits
}

func TestEnrichAssemblesDetail(t *testing.T) {
	ctrl := gomock.NewController(t)
	meta := NewMockMetadataSource(ctrl)
	failures := NewMockFailureRecorder(ctrl)

	meta.EXPECT().MovieDetails(gomock.Any(), int64(27205)).Return(sampleDetails(), nil).Times(1)
	meta.EXPECT().MovieCredits(gomock.Any(), int64(27205)).Return(sampleCredits(12), nil).Times(1)
	meta.EXPECT().PersonIMDBID(gomock.Any(), gomock.Any()).Times(11).DoAndReturn(func(ctx context.Context, id int64) (string, error) {
		switch id {
		case 3:
			return "", errors.New("lookup failed")
		case 4:
			return "", nil
		case 102:
			return "nm0634240", nil
		}
		return "nm000000" + string(rune('0'+id%10)), nil
	})
	failures.EXPECT().RecordUpstreamFailure(callExternalIDs).Times(1)

	detail, err := NewService(nil, meta, failures, Options{}).Enrich(context.Background(), 27205)
	require.NoError(t, err)

	assert.Equal(t, int64(27205), detail.ID)
	assert.Equal(t, "Inception", detail.Title)
	assert.Equal(t, "2010", detail.ReleaseYear)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/poster.jpg", detail.PosterURL)
	assert.Equal(t, "https://image.tmdb.org/t/p/original/backdrop.jpg", detail.BackdropURL)
	assert.Equal(t, []string{"Action", "Science Fiction"}, detail.Genres)
	assert.Equal(t, 8.4, detail.Rating)
	assert.Equal(t, 35000, detail.VoteCount)
	assert.Equal(t, []string{"https://image.tmdb.org/t/p/w1280/b1.jpg"}, detail.Images.Backdrops)
	assert.Equal(t, []string{"https://image.tmdb.org/t/p/w500/p1.jpg"}, detail.Images.Posters)
	assert.Equal(t, "https://www.youtube.com/embed/yt-trailer", detail.TrailerURL)
	assert.Equal(t, "tt1375666", detail.IMDBID)
	require.NotNil(t, detail.IMDBURL)
	assert.Equal(t, "https://www.imdb.com/title/tt1375666", *detail.IMDBURL)

	require.Len(t, detail.Cast, 8)
	assert.Equal(t, int64(1), detail.Cast[0].ID)
	assert.Equal(t, "https://www.themoviedb.org/person/1", detail.Cast[0].TMDBURL)
	require.NotNil(t, detail.Cast[0].ProfileURL)
	assert.Equal(t, "https://image.tmdb.org/t/p/w185/face.jpg", *detail.Cast[0].ProfileURL)
	require.NotNil(t, detail.Cast[0].IMDBURL)
	assert.Equal(t, "https://www.imdb.com/name/nm0000001", *detail.Cast[0].IMDBURL)
	assert.Nil(t, detail.Cast[2].IMDBURL, "failed lookup is null")
	assert.Nil(t, detail.Cast[3].IMDBURL, "missing imdb id is null")
	assert.NotNil(t, detail.Cast[4].IMDBURL)

	require.Len(t, detail.Crew, 3)
	assert.Equal(t, "Director", detail.Crew[0].Job)
	assert.Equal(t, int64(102), detail.Crew[0].ID)
	require.NotNil(t, detail.Crew[0].IMDBURL)
	assert.Equal(t, "https://www.imdb.com/name/nm0634240", *detail.Crew[0].IMDBURL)
	assert.Equal(t, "Producer", detail.Crew[1].Job)
	assert.Equal(t, int64(101), detail.Crew[1].ID)
	assert.Equal(t, "Writer", detail.Crew[2].Job)
	assert.Equal(t, int64(104), detail.Crew[2].ID)
}

func TestEnrichOmitsMissingCrewJobs(t *testing.T) {
	ctrl := gomock.NewController(t)
	meta := NewMockMetadataSource(ctrl)

	credits := &metadata.Credits{Crew: []metadata.CrewCredit{
		{ID: 7, Name: "Only Writer", Job: "Writer"},
		{ID: 8, Name: "Sound", Job: "Sound Designer"},
	}}
	meta.EXPECT().MovieDetails(gomock.Any(), int64(5)).Return(&metadata.MovieDetails{ID: 5, Title: "Small"}, nil)
	meta.EXPECT().MovieCredits(gomock.Any(), int64(5)).Return(credits, nil)
	meta.EXPECT().PersonIMDBID(gomock.Any(), int64(7)).Return("nm7", nil).Times(1)

	detail, err := NewService(nil, meta, nil, Options{}).Enrich(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, detail.Crew, 1)
	assert.Equal(t, "Writer", detail.Crew[0].Job)
	assert.NotNil(t, detail.Cast)
	assert.Empty(t, detail.Cast)
}

func TestEnrichDetailsFailureIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	meta := NewMockMetadataSource(ctrl)

	upstream := &metadata.StatusError{StatusCode: http.StatusNotFound, Status: "404 Not Found"}
	meta.EXPECT().MovieDetails(gomock.Any(), int64(999)).Return(nil, upstream)
	meta.EXPECT().MovieCredits(gomock.Any(), int64(999)).Return(nil, upstream).AnyTimes()

	_, err := NewService(nil, meta, nil, Options{}).Enrich(context.Background(), 999)
	require.ErrorIs(t, err, ErrDetails)

	var statusErr *metadata.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
}

func TestEnrichCreditsFailureDegradesToEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	meta := NewMockMetadataSource(ctrl)
	failures := NewMockFailureRecorder(ctrl)

	meta.EXPECT().MovieDetails(gomock.Any(), int64(42)).Return(sampleDetails(), nil)
	meta.EXPECT().MovieCredits(gomock.Any(), int64(42)).Return(nil, errors.New("timeout"))
	failures.EXPECT().RecordUpstreamFailure(callCredits).Times(1)

	detail, err := NewService(nil, meta, failures, Options{}).Enrich(context.Background(), 42)
	require.NoError(t, err)
	assert.NotNil(t, detail.Cast)
	assert.NotNil(t, detail.Crew)
	assert.Empty(t, detail.Cast)
	assert.Empty(t, detail.Crew)
	assert.Equal(t, "Inception", detail.Title)
}

func TestEnrichWithoutTrailerOrImages(t *testing.T) {
	ctrl := gomock.NewController(t)
	meta := NewMockMetadataSource(ctrl)

	details := &metadata.MovieDetails{ID: 9, Title: "Bare"}
	details.Videos.Results = []metadata.Video{{Key: "x", Site: "YouTube", Type: "Featurette"}}
	meta.EXPECT().MovieDetails(gomock.Any(), int64(9)).Return(details, nil)
	meta.EXPECT().MovieCredits(gomock.Any(), int64(9)).Return(&metadata.Credits{
		Cast: []metadata.CastCredit{{ID: 1, Name: "No Face"}},
	}, nil)
	meta.EXPECT().PersonIMDBID(gomock.Any(), int64(1)).Return("", nil)

	detail, err := NewService(nil, meta, nil, Options{}).Enrich(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, "", detail.TrailerURL)
	assert.Equal(t, "", detail.PosterURL)
	assert.Equal(t, "", detail.BackdropURL)
	assert.Equal(t, "N/A", detail.ReleaseYear)
	assert.Nil(t, detail.IMDBURL)
	assert.Equal(t, "", detail.IMDBID)
	assert.NotNil(t, detail.Genres)
	assert.NotNil(t, detail.Images.Backdrops)
	assert.NotNil(t, detail.Images.Posters)
	require.Len(t, detail.Cast, 1)
	assert.Nil(t, detail.Cast[0].ProfileURL)
	assert.Nil(t, detail.Cast[0].IMDBURL)
}

func TestEnrichRejectsInvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	meta := NewMockMetadataSource(ctrl)

	for _, id := range []int64{0, -1} {
		_, err := NewService(nil, meta, nil, Options{}).Enrich(context.Background(), id)
		assert.ErrorIs(t, err, ErrMovieIDRequired)
	}
}

func TestHeadlineCrewOrder(t *testing.T) {
	picked := headlineCrew(sampleCredits(0).Crew)
	require.Len(t, picked, 3)
	assert.Equal(t, []string{"Director", "Producer", "Writer"}, []string{picked[0].Job, picked[1].Job, picked[2].Job})
	assert.Empty(t, headlineCrew(nil))
}
