// Package platform owns the whole simulation state - every account, the
// global song and podcast lists and the current timestamp - and exposes one
// handler per command. Handlers validate, mutate and answer with the status
// strings the serializer emits verbatim.
//
// A Catalog is built once per run and passed explicitly to whatever drives
// it; there is no ambient global. It is not safe for concurrent use: the
// dispatcher executes one command at a time.
package platform

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/waveline/waveline/internal/domain/account"
	"github.com/waveline/waveline/internal/domain/library"
	"github.com/waveline/waveline/internal/domain/ranking"
	"github.com/waveline/waveline/internal/domain/recommend"
	"github.com/waveline/waveline/internal/infra/history"
)

// ErrTimestampRegression is the single fatal condition: the command stream
// handed us a timestamp lower than the current one.
var ErrTimestampRegression = errors.New("timestamp moved backwards")

// Catalog is the process-wide simulation state.
type Catalog struct {
	users    []*account.User
	artists  []*account.Artist
	hosts    []*account.Host
	songs    []*library.Song
	podcasts []*library.Podcast

	timestamp int

	plays       *history.Store
	recommender *recommend.Service
	rankings    *ranking.Service
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithHistory attaches a persistent play-history store; every completed
// listen is appended to it.
func WithHistory(store *history.Store) Option {
	return func(c *Catalog) { c.plays = store }
}

// New builds a catalog from the loaded library seed.
func New(seed *library.Seed, opts ...Option) *Catalog {
	c := &Catalog{}
	for _, opt := range opts {
		opt(c)
	}

	for _, s := range seed.Songs {
		c.songs = append(c.songs, library.NewSong(s))
	}
	for _, p := range seed.Podcasts {
		c.podcasts = append(c.podcasts, library.NewPodcast(p))
	}
	for _, u := range seed.Users {
		c.users = append(c.users, c.newUser(u.Username, u.Age, u.City))
	}

	c.recommender = recommend.NewService(c)
	c.rankings = ranking.NewService(c)

	log.Info().
		Int("users", len(c.users)).
		Int("songs", len(c.songs)).
		Int("podcasts", len(c.podcasts)).
		Msg("Catalog initialized")
	return c
}

// newUser creates a listener whose player reports completions back into the
// listen tracker and the optional history store.
func (c *Catalog) newUser(username string, age int, city string) *account.User {
	var u *account.User
	u = account.NewUser(username, age, city, func(f library.AudioFile) {
		c.recordCompletion(u, f)
	})
	return u
}

func (c *Catalog) recordCompletion(u *account.User, f library.AudioFile) {
	u.Listens.RecordCompletion(f)

	if c.plays != nil {
		kind := "song"
		if _, ok := f.(*library.Episode); ok {
			kind = "episode"
		}
		if err := c.plays.RecordPlay(u.Username, f.Name(), kind, c.timestamp); err != nil {
			log.Warn().Err(err).Str("user", u.Username).Msg("Failed to persist play")
		}
	}
}

// Now returns the current simulation timestamp.
func (c *Catalog) Now() int { return c.timestamp }

// AdvanceTime moves the clock to newTimestamp and fans the elapsed delta out
// to every online user's player, in registration order. A regression is the
// one fatal input error.
func (c *Catalog) AdvanceTime(newTimestamp int) error {
	elapsed := newTimestamp - c.timestamp
	if elapsed < 0 {
		return fmt.Errorf("%w: %d < %d", ErrTimestampRegression, newTimestamp, c.timestamp)
	}
	c.timestamp = newTimestamp
	if elapsed == 0 {
		return nil
	}
	for _, u := range c.users {
		if u.Online {
			u.Player.Advance(elapsed)
		}
	}
	return nil
}

// Songs returns the global song list in catalog insertion order.
func (c *Catalog) Songs() []*library.Song {
	return append([]*library.Song(nil), c.songs...)
}

// Podcasts returns the global podcast list.
func (c *Catalog) Podcasts() []*library.Podcast {
	return append([]*library.Podcast(nil), c.podcasts...)
}

// Users returns the listeners in registration order.
func (c *Catalog) Users() []*account.User {
	return append([]*account.User(nil), c.users...)
}

// Artists returns the artists in registration order.
func (c *Catalog) Artists() []*account.Artist {
	return append([]*account.Artist(nil), c.artists...)
}

// Playlists returns every user's playlists, in creation order.
func (c *Catalog) Playlists() []*library.Playlist {
	var playlists []*library.Playlist
	for _, u := range c.users {
		playlists = append(playlists, u.Playlists...)
	}
	return playlists
}

// ArtistByName returns the artist with the given username, or nil.
func (c *Catalog) ArtistByName(name string) *account.Artist {
	for _, a := range c.artists {
		if a.Username == name {
			return a
		}
	}
	return nil
}

func (c *Catalog) findUser(username string) *account.User {
	for _, u := range c.users {
		if u.Username == username {
			return u
		}
	}
	return nil
}

func (c *Catalog) findHost(username string) *account.Host {
	for _, h := range c.hosts {
		if h.Username == username {
			return h
		}
	}
	return nil
}

// usernameTaken reports whether any account kind already uses the username.
func (c *Catalog) usernameTaken(username string) bool {
	return c.findUser(username) != nil ||
		c.ArtistByName(username) != nil ||
		c.findHost(username) != nil
}

func (c *Catalog) songByName(name string) *library.Song {
	for _, s := range c.songs {
		if s.Title == name {
			return s
		}
	}
	return nil
}

func (c *Catalog) podcastByName(name string) *library.Podcast {
	for _, p := range c.podcasts {
		if p.Title == name {
			return p
		}
	}
	return nil
}

func (c *Catalog) albumByName(name string) *library.Album {
	for _, a := range c.artists {
		if album := a.Album(name); album != nil {
			return album
		}
	}
	return nil
}

func (c *Catalog) playlistByName(owner, name string) *library.Playlist {
	for _, u := range c.users {
		if owner != "" && u.Username != owner {
			continue
		}
		if p := u.Playlist(name); p != nil {
			return p
		}
	}
	return nil
}
