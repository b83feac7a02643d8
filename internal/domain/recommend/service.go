// Package recommend derives song and playlist recommendations from a user's
// playback position and the catalog's like history.
package recommend

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/waveline/waveline/internal/domain/account"
	"github.com/waveline/waveline/internal/domain/library"
)

const (
	// MinListenedSeconds is how much of the current song must have played
	// before a song recommendation is drawn.
	MinListenedSeconds = 30

	// TopFanCount is how many fans feed the fan-club playlist.
	TopFanCount = 5
)

// Catalog is the read surface the engine needs from the platform.
type Catalog interface {
	Songs() []*library.Song
	Users() []*account.User
	ArtistByName(name string) *account.Artist
	Now() int
}

// Service is the recommendation engine.
type Service struct {
	catalog Catalog
}

// NewService creates a recommendation service over the given catalog.
func NewService(catalog Catalog) *Service {
	return &Service{catalog: catalog}
}

// currentSong returns the song the user is listening to, from whatever source
// carries it, or nil when the player is idle or on a podcast episode.
func currentSong(u *account.User) *library.Song {
	song, _ := u.Player.Current().(*library.Song)
	return song
}

// RecommendSong draws a deterministic same-genre recommendation once the user
// has listened to more than MinListenedSeconds of the current song. The draw
// is seeded with the listened time, so identical inputs always pick the same
// candidate. The chosen song's artist is marked as having listener interest.
func (s *Service) RecommendSong(u *account.User) string {
	song := currentSong(u)
	if song == nil {
		return "No song is playing at the moment."
	}

	listened := song.Duration - u.Player.Remaining()
	if listened > MinListenedSeconds {
		var candidates []*library.Song
		for _, candidate := range s.catalog.Songs() {
			if strings.EqualFold(candidate.Genre, song.Genre) {
				candidates = append(candidates, candidate)
			}
		}
		if len(candidates) > 0 {
			pick := candidates[rand.New(rand.NewSource(int64(listened))).Intn(len(candidates))]
			u.SongRecommendations = append(u.SongRecommendations, pick)
			if artist := s.catalog.ArtistByName(pick.Artist); artist != nil {
				artist.Interest = true
			}
			log.Debug().
				Str("user", u.Username).
				Str("song", pick.Title).
				Int("listened", listened).
				Msg("Added song recommendation")
		}
	}

	return "The recommendations for user " + u.Username + " have been updated successfully."
}

// RecommendPlaylist builds the "<Artist> Fan Club recommendations" playlist
// for the artist of the user's current song: the first liked song of each of
// the artist's top fans, sorted by like count descending.
func (s *Service) RecommendPlaylist(u *account.User) string {
	song := currentSong(u)
	if song == nil {
		return "No song is playing at the moment."
	}

	artistName := song.Artist
	picks := s.topFanSongs(artistName, TopFanCount)

	fanClub := library.NewPlaylist(artistName+" Fan Club recommendations", u.Username, s.catalog.Now())
	for _, pick := range picks {
		fanClub.AddSong(pick)
	}
	u.PlaylistRecommendations = append(u.PlaylistRecommendations, fanClub)

	if artist := s.catalog.ArtistByName(artistName); artist != nil {
		artist.Interest = true
	}
	log.Debug().
		Str("user", u.Username).
		Str("playlist", fanClub.Title).
		Int("songs", len(fanClub.Songs)).
		Msg("Added playlist recommendation")

	return "The recommendations for user " + u.Username + " have been updated successfully."
}

// topFanSongs picks each top fan's first liked song, sorted by likes
// descending. A fan's rank is how many of the artist's songs they liked, ties
// broken by username ascending.
func (s *Service) topFanSongs(artistName string, limit int) []*library.Song {
	fans := append([]*account.User(nil), s.catalog.Users()...)
	sort.SliceStable(fans, func(i, j int) bool {
		ci, cj := likedCountFor(fans[i], artistName), likedCountFor(fans[j], artistName)
		if ci != cj {
			return ci > cj
		}
		return fans[i].Username < fans[j].Username
	})
	if len(fans) > limit {
		fans = fans[:limit]
	}

	var picks []*library.Song
	for _, fan := range fans {
		if len(fan.LikedSongs) > 0 {
			picks = append(picks, fan.LikedSongs[0])
		}
	}
	sort.SliceStable(picks, func(i, j int) bool { return picks[i].Likes > picks[j].Likes })
	return picks
}

func likedCountFor(u *account.User, artistName string) int {
	count := 0
	for _, s := range u.LikedSongs {
		if strings.EqualFold(s.Artist, artistName) {
			count++
		}
	}
	return count
}
