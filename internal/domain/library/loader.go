package library

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

// SongSeed is the wire form of a song in the library file or in an addAlbum
// command.
type SongSeed struct {
	Name        string   `json:"name"`
	Duration    int      `json:"duration"`
	Album       string   `json:"album"`
	Tags        []string `json:"tags"`
	Lyrics      string   `json:"lyrics"`
	Genre       string   `json:"genre"`
	ReleaseYear int      `json:"releaseYear"`
	Artist      string   `json:"artist"`
}

// EpisodeSeed is the wire form of a podcast episode.
type EpisodeSeed struct {
	Name        string `json:"name"`
	Duration    int    `json:"duration"`
	Description string `json:"description"`
}

// PodcastSeed is the wire form of a podcast in the library file.
type PodcastSeed struct {
	Name     string        `json:"name"`
	Owner    string        `json:"owner"`
	Episodes []EpisodeSeed `json:"episodes"`
}

// UserSeed is the wire form of a registered user in the library file.
type UserSeed struct {
	Username string `json:"username"`
	Age      int    `json:"age"`
	City     string `json:"city"`
}

// Seed is the decoded library file: the initial catalog state before any
// command is processed.
type Seed struct {
	Users    []UserSeed    `json:"users"`
	Songs    []SongSeed    `json:"songs"`
	Podcasts []PodcastSeed `json:"podcasts"`
}

// LoadSeed reads and decodes a library file.
func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read library file: %w", err)
	}

	var seed Seed
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to unmarshal library file: %w", err)
	}

	log.Debug().
		Int("users", len(seed.Users)).
		Int("songs", len(seed.Songs)).
		Int("podcasts", len(seed.Podcasts)).
		Str("path", path).
		Msg("Loaded library seed")

	return &seed, nil
}

// NewSong builds a Song from its seed.
func NewSong(seed SongSeed) *Song {
	return &Song{
		Title:       seed.Name,
		Duration:    seed.Duration,
		Album:       seed.Album,
		Artist:      seed.Artist,
		Genre:       seed.Genre,
		ReleaseYear: seed.ReleaseYear,
		Tags:        append([]string(nil), seed.Tags...),
		Lyrics:      seed.Lyrics,
	}
}

// NewEpisode builds an Episode from its seed.
func NewEpisode(seed EpisodeSeed) *Episode {
	return &Episode{
		Title:       seed.Name,
		Duration:    seed.Duration,
		Description: seed.Description,
	}
}

// NewPodcast builds a Podcast and its episodes from a seed.
func NewPodcast(seed PodcastSeed) *Podcast {
	episodes := make([]*Episode, 0, len(seed.Episodes))
	for _, e := range seed.Episodes {
		episodes = append(episodes, NewEpisode(e))
	}
	return &Podcast{
		Title:    seed.Name,
		Host:     seed.Owner,
		Episodes: episodes,
	}
}
