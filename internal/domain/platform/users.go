package platform

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/waveline/waveline/internal/domain/account"
	"github.com/waveline/waveline/internal/domain/library"
)

// AddUser registers a new account of the given kind. Usernames are unique
// across all three kinds combined.
func (c *Catalog) AddUser(username string, kind account.Kind, age int, city string) string {
	if c.usernameTaken(username) {
		return fmt.Sprintf("The username %s is already taken.", username)
	}

	switch kind {
	case account.KindArtist:
		c.artists = append(c.artists, account.NewArtist(username, age, city))
	case account.KindHost:
		c.hosts = append(c.hosts, account.NewHost(username, age, city))
	default:
		c.users = append(c.users, c.newUser(username, age, city))
	}

	log.Debug().Str("username", username).Str("kind", string(kind)).Msg("Registered account")
	return fmt.Sprintf("The username %s has been added successfully.", username)
}

// DeleteUser removes an account of any kind, refusing while any other user's
// playback or page still references something it owns.
func (c *Catalog) DeleteUser(username string) string {
	if u := c.findUser(username); u != nil {
		return c.deleteListener(u)
	}
	if a := c.ArtistByName(username); a != nil {
		return c.deleteArtist(a)
	}
	if h := c.findHost(username); h != nil {
		return c.deleteHost(h)
	}
	return fmt.Sprintf("The username %s doesn't exist.", username)
}

func (c *Catalog) deleteListener(u *account.User) string {
	for _, p := range u.Playlists {
		for _, other := range c.users {
			if other == u || !other.Online {
				continue
			}
			if other.Player.CurrentCollection() == p {
				return fmt.Sprintf("%s can't be deleted.", u.Username)
			}
		}
	}

	for _, s := range u.LikedSongs {
		s.Dislike()
	}
	for _, p := range u.FollowedPlaylists {
		p.Unfollow()
	}
	for _, other := range c.users {
		if other == u {
			continue
		}
		for _, p := range u.Playlists {
			other.RemoveFollow(p)
		}
	}

	c.users = removeUser(c.users, u)
	log.Debug().Str("username", u.Username).Msg("Deleted listener")
	return fmt.Sprintf("%s was successfully deleted.", u.Username)
}

func (c *Catalog) deleteArtist(a *account.Artist) string {
	ownedSongs := a.AllSongs()
	for _, u := range c.users {
		if u.Online {
			if cur, ok := u.Player.Current().(*library.Song); ok {
				for _, s := range ownedSongs {
					if cur == s {
						return fmt.Sprintf("%s can't be deleted.", a.Username)
					}
				}
			}
			col := u.Player.CurrentCollection()
			for _, album := range a.Albums {
				if col == album {
					return fmt.Sprintf("%s can't be deleted.", a.Username)
				}
			}
		}
		if page, ok := u.CurrentPage().(*account.ArtistPage); ok && page.Artist == a {
			return fmt.Sprintf("%s can't be deleted.", a.Username)
		}
	}

	for _, u := range c.users {
		for _, s := range ownedSongs {
			u.RemoveLike(s)
			for _, p := range u.Playlists {
				p.RemoveSong(s)
			}
		}
	}
	for _, s := range ownedSongs {
		c.songs = removeSongFromList(c.songs, s)
	}

	c.artists = removeArtist(c.artists, a)
	log.Debug().Str("username", a.Username).Msg("Deleted artist")
	return fmt.Sprintf("%s was successfully deleted.", a.Username)
}

func (c *Catalog) deleteHost(h *account.Host) string {
	for _, u := range c.users {
		if u.Online {
			col := u.Player.CurrentCollection()
			for _, p := range h.Podcasts {
				if col == p {
					return fmt.Sprintf("%s can't be deleted.", h.Username)
				}
			}
		}
		if page, ok := u.CurrentPage().(*account.HostPage); ok && page.Host == h {
			return fmt.Sprintf("%s can't be deleted.", h.Username)
		}
	}

	for _, p := range h.Podcasts {
		c.podcasts = removePodcastFromList(c.podcasts, p)
	}

	c.hosts = removeHost(c.hosts, h)
	log.Debug().Str("username", h.Username).Msg("Deleted host")
	return fmt.Sprintf("%s was successfully deleted.", h.Username)
}

// SwitchStatus toggles a listener between online and offline.
func (c *Catalog) SwitchStatus(username string) string {
	if u := c.findUser(username); u != nil {
		u.ToggleStatus()
		return fmt.Sprintf("%s has changed status successfully.", username)
	}
	if c.usernameTaken(username) {
		return fmt.Sprintf("%s is not a normal user.", username)
	}
	return fmt.Sprintf("The username %s doesn't exist.", username)
}

// OnlineUsers returns the usernames of all online listeners, in registration
// order.
func (c *Catalog) OnlineUsers() []string {
	var names []string
	for _, u := range c.users {
		if u.Online {
			names = append(names, u.Username)
		}
	}
	return names
}

// AllUsers returns every username: listeners, then artists, then hosts, each
// in registration order.
func (c *Catalog) AllUsers() []string {
	names := make([]string, 0, len(c.users)+len(c.artists)+len(c.hosts))
	for _, u := range c.users {
		names = append(names, u.Username)
	}
	for _, a := range c.artists {
		names = append(names, a.Username)
	}
	for _, h := range c.hosts {
		names = append(names, h.Username)
	}
	return names
}

func removeUser(list []*account.User, u *account.User) []*account.User {
	for i, v := range list {
		if v == u {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

func removeArtist(list []*account.Artist, a *account.Artist) []*account.Artist {
	for i, v := range list {
		if v == a {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

func removeHost(list []*account.Host, h *account.Host) []*account.Host {
	for i, v := range list {
		if v == h {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

func removeSongFromList(list []*library.Song, s *library.Song) []*library.Song {
	for i, v := range list {
		if v == s {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

func removePodcastFromList(list []*library.Podcast, p *library.Podcast) []*library.Podcast {
	for i, v := range list {
		if v == p {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
