// Package library defines the audio catalog entities: songs, episodes and the
// collections (albums, playlists, podcasts) that group them.
package library

// Visibility of a playlist.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// AudioFile is any playable item with a name and a duration in seconds.
type AudioFile interface {
	Name() string
	Length() int
}

// Collection is an ordered group of audio files with an owner.
type Collection interface {
	Name() string
	OwnedBy() string
	Tracks() []AudioFile
	Contains(f AudioFile) bool
}

// Song is a single track. Immutable after creation except for the like count.
type Song struct {
	Title       string
	Duration    int
	Album       string
	Artist      string
	Genre       string
	ReleaseYear int
	Tags        []string
	Lyrics      string
	Likes       int
}

// Name returns the song title.
func (s *Song) Name() string { return s.Title }

// Length returns the song duration in seconds.
func (s *Song) Length() int { return s.Duration }

// Like increments the like count.
func (s *Song) Like() { s.Likes++ }

// Dislike decrements the like count, never below zero.
func (s *Song) Dislike() {
	if s.Likes > 0 {
		s.Likes--
	}
}

// Episode is a single podcast episode.
type Episode struct {
	Title       string
	Duration    int
	Description string
}

// Name returns the episode title.
func (e *Episode) Name() string { return e.Title }

// Length returns the episode duration in seconds.
func (e *Episode) Length() int { return e.Duration }

// Album is an artist-owned collection with an immutable track list.
type Album struct {
	Title       string
	Artist      string
	Description string
	ReleaseYear int
	Songs       []*Song
}

// Name returns the album title.
func (a *Album) Name() string { return a.Title }

// OwnedBy returns the owning artist's username.
func (a *Album) OwnedBy() string { return a.Artist }

// Tracks returns the album songs as audio files, in order.
func (a *Album) Tracks() []AudioFile {
	tracks := make([]AudioFile, len(a.Songs))
	for i, s := range a.Songs {
		tracks[i] = s
	}
	return tracks
}

// Contains reports whether f is one of the album's songs.
func (a *Album) Contains(f AudioFile) bool {
	for _, s := range a.Songs {
		if AudioFile(s) == f {
			return true
		}
	}
	return false
}

// TotalLikes sums the likes of the album's songs.
func (a *Album) TotalLikes() int {
	total := 0
	for _, s := range a.Songs {
		total += s.Likes
	}
	return total
}

// Playlist is a user-owned mutable collection of songs.
type Playlist struct {
	Title      string
	Owner      string
	Visibility Visibility
	Followers  int
	CreatedAt  int
	Songs      []*Song
}

// NewPlaylist creates a public playlist owned by the given user.
func NewPlaylist(name, owner string, createdAt int) *Playlist {
	return &Playlist{
		Title:      name,
		Owner:      owner,
		Visibility: VisibilityPublic,
		CreatedAt:  createdAt,
	}
}

// Name returns the playlist title.
func (p *Playlist) Name() string { return p.Title }

// OwnedBy returns the owning user's username.
func (p *Playlist) OwnedBy() string { return p.Owner }

// Tracks returns the playlist songs as audio files, in order.
func (p *Playlist) Tracks() []AudioFile {
	tracks := make([]AudioFile, len(p.Songs))
	for i, s := range p.Songs {
		tracks[i] = s
	}
	return tracks
}

// Contains reports whether f is one of the playlist's songs.
func (p *Playlist) Contains(f AudioFile) bool {
	for _, s := range p.Songs {
		if AudioFile(s) == f {
			return true
		}
	}
	return false
}

// HasSong reports whether the exact song is in the playlist.
func (p *Playlist) HasSong(song *Song) bool {
	for _, s := range p.Songs {
		if s == song {
			return true
		}
	}
	return false
}

// AddSong appends a song to the playlist.
func (p *Playlist) AddSong(song *Song) {
	p.Songs = append(p.Songs, song)
}

// RemoveSong removes the exact song from the playlist if present.
func (p *Playlist) RemoveSong(song *Song) {
	for i, s := range p.Songs {
		if s == song {
			p.Songs = append(p.Songs[:i], p.Songs[i+1:]...)
			return
		}
	}
}

// Follow increments the follower count.
func (p *Playlist) Follow() { p.Followers++ }

// Unfollow decrements the follower count, never below zero.
func (p *Playlist) Unfollow() {
	if p.Followers > 0 {
		p.Followers--
	}
}

// ToggleVisibility flips the playlist between public and private and returns
// the new visibility.
func (p *Playlist) ToggleVisibility() Visibility {
	if p.Visibility == VisibilityPublic {
		p.Visibility = VisibilityPrivate
	} else {
		p.Visibility = VisibilityPublic
	}
	return p.Visibility
}

// TotalLikes sums the likes of the playlist's songs.
func (p *Playlist) TotalLikes() int {
	total := 0
	for _, s := range p.Songs {
		total += s.Likes
	}
	return total
}

// Podcast is a host-owned collection of episodes.
type Podcast struct {
	Title    string
	Host     string
	Episodes []*Episode
}

// Name returns the podcast title.
func (p *Podcast) Name() string { return p.Title }

// OwnedBy returns the owning host's username.
func (p *Podcast) OwnedBy() string { return p.Host }

// Tracks returns the podcast episodes as audio files, in order.
func (p *Podcast) Tracks() []AudioFile {
	tracks := make([]AudioFile, len(p.Episodes))
	for i, e := range p.Episodes {
		tracks[i] = e
	}
	return tracks
}

// Contains reports whether f is one of the podcast's episodes.
func (p *Podcast) Contains(f AudioFile) bool {
	for _, e := range p.Episodes {
		if AudioFile(e) == f {
			return true
		}
	}
	return false
}
