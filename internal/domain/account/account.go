// Package account models the three kinds of platform accounts - listeners
// (users), artists and hosts - plus the content they own, their pages and
// their notification plumbing.
package account

import (
	"github.com/waveline/waveline/internal/domain/library"
	"github.com/waveline/waveline/internal/domain/listening"
	"github.com/waveline/waveline/internal/domain/player"
)

// Kind tags the account variant.
type Kind string

const (
	KindUser   Kind = "user"
	KindArtist Kind = "artist"
	KindHost   Kind = "host"
)

// Identity is the record shared by every account kind.
type Identity struct {
	Username string
	Age      int
	City     string
	Online   bool
}

// Event is an artist-announced event.
type Event struct {
	Name        string
	Description string
	Date        string
}

// Merchandise is an item sold by an artist.
type Merchandise struct {
	Name        string
	Description string
	Price       float64
}

// Announcement is a host-published notice.
type Announcement struct {
	Name        string
	Description string
}

// User is a listener: the only kind that plays audio.
type User struct {
	Identity

	Playlists               []*library.Playlist
	LikedSongs              []*library.Song
	FollowedPlaylists       []*library.Playlist
	SongRecommendations     []*library.Song
	PlaylistRecommendations []*library.Playlist

	Player  *player.State
	Listens *listening.Record

	inbox []Notification

	currentPage Page
	backPages   []Page
	fwdPages    []Page
}

// NewUser creates an online user with an idle player on its home page.
// onComplete is wired into the player as the track-completion callback.
func NewUser(username string, age int, city string, onComplete func(f library.AudioFile)) *User {
	u := &User{
		Identity: Identity{Username: username, Age: age, City: city, Online: true},
		Listens:  listening.NewRecord(),
	}
	u.Player = player.NewState(onComplete)
	u.currentPage = &HomePage{User: u}
	return u
}

// ToggleStatus flips the user between online and offline and returns the new
// online state.
func (u *User) ToggleStatus() bool {
	u.Online = !u.Online
	return u.Online
}

// Likes reports whether the user has liked the exact song.
func (u *User) Likes(song *library.Song) bool {
	for _, s := range u.LikedSongs {
		if s == song {
			return true
		}
	}
	return false
}

// AddLike records a like for the song.
func (u *User) AddLike(song *library.Song) {
	u.LikedSongs = append(u.LikedSongs, song)
}

// RemoveLike forgets a like for the song.
func (u *User) RemoveLike(song *library.Song) {
	for i, s := range u.LikedSongs {
		if s == song {
			u.LikedSongs = append(u.LikedSongs[:i], u.LikedSongs[i+1:]...)
			return
		}
	}
}

// Follows reports whether the user follows the exact playlist.
func (u *User) Follows(p *library.Playlist) bool {
	for _, followed := range u.FollowedPlaylists {
		if followed == p {
			return true
		}
	}
	return false
}

// AddFollow records a followed playlist.
func (u *User) AddFollow(p *library.Playlist) {
	u.FollowedPlaylists = append(u.FollowedPlaylists, p)
}

// RemoveFollow forgets a followed playlist.
func (u *User) RemoveFollow(p *library.Playlist) {
	for i, followed := range u.FollowedPlaylists {
		if followed == p {
			u.FollowedPlaylists = append(u.FollowedPlaylists[:i], u.FollowedPlaylists[i+1:]...)
			return
		}
	}
}

// Playlist returns the user's playlist with the given name, or nil.
func (u *User) Playlist(name string) *library.Playlist {
	for _, p := range u.Playlists {
		if p.Title == name {
			return p
		}
	}
	return nil
}

// Artist owns albums, events and merchandise, and a subscriber list for
// publishing notifications.
type Artist struct {
	Identity

	Albums []*library.Album
	Events []*Event
	Merch  []*Merchandise

	// Interest marks that some listener engaged with the artist through a
	// recommendation or a page visit; only such artists appear in the
	// end-of-run summary.
	Interest bool

	subscribers []*User
	page        *ArtistPage
}

// NewArtist creates an artist account.
func NewArtist(username string, age int, city string) *Artist {
	a := &Artist{
		Identity: Identity{Username: username, Age: age, City: city, Online: true},
	}
	a.page = &ArtistPage{Artist: a}
	return a
}

// Page returns the artist's public page.
func (a *Artist) Page() *ArtistPage { return a.page }

// Album returns the artist's album with the given name, or nil.
func (a *Artist) Album(name string) *library.Album {
	for _, album := range a.Albums {
		if album.Title == name {
			return album
		}
	}
	return nil
}

// Event returns the artist's event with the given name, or nil.
func (a *Artist) Event(name string) *Event {
	for _, e := range a.Events {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// Merchandise returns the artist's merch item with the given name, or nil.
func (a *Artist) Merchandise(name string) *Merchandise {
	for _, m := range a.Merch {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// AllSongs flattens the artist's albums into one song list.
func (a *Artist) AllSongs() []*library.Song {
	var songs []*library.Song
	for _, album := range a.Albums {
		songs = append(songs, album.Songs...)
	}
	return songs
}

// TotalLikes sums the likes across all of the artist's songs.
func (a *Artist) TotalLikes() int {
	total := 0
	for _, album := range a.Albums {
		total += album.TotalLikes()
	}
	return total
}

// MerchRevenue sums the prices of the artist's merchandise.
func (a *Artist) MerchRevenue() float64 {
	total := 0.0
	for _, m := range a.Merch {
		total += m.Price
	}
	return total
}

// Host owns podcasts and announcements, and a subscriber list.
type Host struct {
	Identity

	Podcasts      []*library.Podcast
	Announcements []*Announcement

	subscribers []*User
	page        *HostPage
}

// NewHost creates a host account.
func NewHost(username string, age int, city string) *Host {
	h := &Host{
		Identity: Identity{Username: username, Age: age, City: city, Online: true},
	}
	h.page = &HostPage{Host: h}
	return h
}

// Page returns the host's public page.
func (h *Host) Page() *HostPage { return h.page }

// Podcast returns the host's podcast with the given name, or nil.
func (h *Host) Podcast(name string) *library.Podcast {
	for _, p := range h.Podcasts {
		if p.Title == name {
			return p
		}
	}
	return nil
}

// Announcement returns the host's announcement with the given name, or nil.
func (h *Host) Announcement(name string) *Announcement {
	for _, a := range h.Announcements {
		if a.Name == name {
			return a
		}
	}
	return nil
}
