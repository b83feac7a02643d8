package platform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/waveline/waveline/internal/domain/account"
	"github.com/waveline/waveline/internal/domain/library"
)

// AddAlbum creates an album for an artist, registers its songs in the global
// list and notifies the artist's subscribers.
func (c *Catalog) AddAlbum(username, albumName, description string, releaseYear int, songSeeds []library.SongSeed) string {
	artist := c.ArtistByName(username)
	if artist == nil {
		if c.usernameTaken(username) {
			return fmt.Sprintf("%s is not an artist.", username)
		}
		return fmt.Sprintf("The username %s doesn't exist.", username)
	}

	if artist.Album(albumName) != nil {
		return fmt.Sprintf("%s has another album with the same name.", username)
	}

	seen := make(map[string]bool, len(songSeeds))
	newSongs := make([]*library.Song, 0, len(songSeeds))
	for _, seed := range songSeeds {
		if seen[seed.Name] {
			return fmt.Sprintf("%s has the same song at least twice in this album.", username)
		}
		seen[seed.Name] = true

		seed.Album = albumName
		seed.Artist = username
		newSongs = append(newSongs, library.NewSong(seed))
	}

	c.songs = append(c.songs, newSongs...)
	artist.Albums = append(artist.Albums, &library.Album{
		Title:       albumName,
		Artist:      username,
		Description: description,
		ReleaseYear: releaseYear,
		Songs:       newSongs,
	})

	artist.Publish(account.NewNotification("New Album", "New Album from "+username+"."))
	log.Debug().Str("artist", username).Str("album", albumName).Int("songs", len(newSongs)).Msg("Added album")
	return fmt.Sprintf("%s has added new album successfully.", username)
}

// RemoveAlbum deletes an artist's album unless any user's playback still
// references the album or one of its songs.
func (c *Catalog) RemoveAlbum(username, albumName string) string {
	artist := c.ArtistByName(username)
	if artist == nil {
		if c.usernameTaken(username) {
			return fmt.Sprintf("%s is not an artist.", username)
		}
		return fmt.Sprintf("The username %s doesn't exist.", username)
	}

	album := artist.Album(albumName)
	if album == nil {
		return fmt.Sprintf("%s doesn't have an album with the given name.", username)
	}

	for _, u := range c.users {
		if !u.Online {
			continue
		}
		if u.Player.CurrentCollection() == album {
			return fmt.Sprintf("%s can't delete this album.", username)
		}
		col := u.Player.CurrentCollection()
		cur := u.Player.Current()
		for _, s := range album.Songs {
			if cur == library.AudioFile(s) {
				return fmt.Sprintf("%s can't delete this album.", username)
			}
			if col != nil && col.Contains(s) {
				return fmt.Sprintf("%s can't delete this album.", username)
			}
		}
	}

	for _, s := range album.Songs {
		for _, u := range c.users {
			u.RemoveLike(s)
			for _, p := range u.Playlists {
				p.RemoveSong(s)
			}
		}
		c.songs = removeSongFromList(c.songs, s)
	}

	for i, a := range artist.Albums {
		if a == album {
			artist.Albums = append(artist.Albums[:i], artist.Albums[i+1:]...)
			break
		}
	}
	log.Debug().Str("artist", username).Str("album", albumName).Msg("Removed album")
	return fmt.Sprintf("%s deleted the album successfully.", username)
}

// AddPodcast creates a podcast for a host and registers it globally.
func (c *Catalog) AddPodcast(username, podcastName string, episodeSeeds []library.EpisodeSeed) string {
	host := c.findHost(username)
	if host == nil {
		if c.usernameTaken(username) {
			return fmt.Sprintf("%s is not a host.", username)
		}
		return fmt.Sprintf("The username %s doesn't exist.", username)
	}

	if host.Podcast(podcastName) != nil {
		return fmt.Sprintf("%s has another podcast with the same name.", username)
	}

	seen := make(map[string]bool, len(episodeSeeds))
	episodes := make([]*library.Episode, 0, len(episodeSeeds))
	for _, seed := range episodeSeeds {
		if seen[seed.Name] {
			return fmt.Sprintf("%s has the same episode in this podcast.", username)
		}
		seen[seed.Name] = true
		episodes = append(episodes, library.NewEpisode(seed))
	}

	podcast := &library.Podcast{Title: podcastName, Host: username, Episodes: episodes}
	host.Podcasts = append(host.Podcasts, podcast)
	c.podcasts = append(c.podcasts, podcast)

	log.Debug().Str("host", username).Str("podcast", podcastName).Msg("Added podcast")
	return fmt.Sprintf("%s has added new podcast successfully.", username)
}

// RemovePodcast deletes a host's podcast unless some user is playing it.
func (c *Catalog) RemovePodcast(username, podcastName string) string {
	host := c.findHost(username)
	if host == nil {
		if c.usernameTaken(username) {
			return fmt.Sprintf("%s is not a host.", username)
		}
		return fmt.Sprintf("The username %s doesn't exist.", username)
	}

	podcast := host.Podcast(podcastName)
	if podcast == nil {
		return fmt.Sprintf("%s doesn't have a podcast with the given name.", username)
	}

	for _, u := range c.users {
		if u.Online && u.Player.CurrentCollection() == podcast {
			return fmt.Sprintf("%s can't delete this podcast.", username)
		}
	}

	for i, p := range host.Podcasts {
		if p == podcast {
			host.Podcasts = append(host.Podcasts[:i], host.Podcasts[i+1:]...)
			break
		}
	}
	c.podcasts = removePodcastFromList(c.podcasts, podcast)
	return fmt.Sprintf("%s deleted the podcast successfully.", username)
}

// AddEvent records an artist event after validating the date and notifies
// subscribers.
func (c *Catalog) AddEvent(username, eventName, description, date string) string {
	artist := c.ArtistByName(username)
	if artist == nil {
		if c.usernameTaken(username) {
			return fmt.Sprintf("%s is not an artist.", username)
		}
		return fmt.Sprintf("The username %s doesn't exist.", username)
	}

	if artist.Event(eventName) != nil {
		return fmt.Sprintf("%s has another event with the same name.", username)
	}
	if !validEventDate(date) {
		return fmt.Sprintf("Event for %s does not have a valid date.", username)
	}

	artist.Events = append(artist.Events, &account.Event{
		Name:        eventName,
		Description: description,
		Date:        date,
	})
	artist.Publish(account.NewNotification("New Event", "New Event from "+username+"."))
	return fmt.Sprintf("%s has added new event successfully.", username)
}

// RemoveEvent deletes an artist's event.
func (c *Catalog) RemoveEvent(username, eventName string) string {
	artist := c.ArtistByName(username)
	if artist == nil {
		if c.usernameTaken(username) {
			return fmt.Sprintf("%s is not an artist.", username)
		}
		return fmt.Sprintf("The username %s doesn't exist.", username)
	}

	event := artist.Event(eventName)
	if event == nil {
		return fmt.Sprintf("%s doesn't have an event with the given name.", username)
	}

	for i, e := range artist.Events {
		if e == event {
			artist.Events = append(artist.Events[:i], artist.Events[i+1:]...)
			break
		}
	}
	return fmt.Sprintf("%s deleted the event successfully.", username)
}

// AddMerch records a merchandise item and notifies subscribers. Negative
// prices are rejected.
func (c *Catalog) AddMerch(username, merchName, description string, price float64) string {
	artist := c.ArtistByName(username)
	if artist == nil {
		if c.usernameTaken(username) {
			return fmt.Sprintf("%s is not an artist.", username)
		}
		return fmt.Sprintf("The username %s doesn't exist.", username)
	}

	if artist.Merchandise(merchName) != nil {
		return fmt.Sprintf("%s has merchandise with the same name.", username)
	}
	if price < 0 {
		return "Price for merchandise can not be negative."
	}

	artist.Merch = append(artist.Merch, &account.Merchandise{
		Name:        merchName,
		Description: description,
		Price:       price,
	})
	artist.Publish(account.NewNotification("New Merchandise", "New Merchandise from "+username+"."))
	return fmt.Sprintf("%s has added new merchandise successfully.", username)
}

// AddAnnouncement records a host announcement.
func (c *Catalog) AddAnnouncement(username, name, description string) string {
	host := c.findHost(username)
	if host == nil {
		if c.usernameTaken(username) {
			return fmt.Sprintf("%s is not a host.", username)
		}
		return fmt.Sprintf("The username %s doesn't exist.", username)
	}

	if host.Announcement(name) != nil {
		return fmt.Sprintf("%s has already added an announcement with this name.", username)
	}

	host.Announcements = append(host.Announcements, &account.Announcement{
		Name:        name,
		Description: description,
	})
	return fmt.Sprintf("%s has successfully added new announcement.", username)
}

// RemoveAnnouncement deletes a host announcement.
func (c *Catalog) RemoveAnnouncement(username, name string) string {
	host := c.findHost(username)
	if host == nil {
		if c.usernameTaken(username) {
			return fmt.Sprintf("%s is not a host.", username)
		}
		return fmt.Sprintf("The username %s doesn't exist.", username)
	}

	announcement := host.Announcement(name)
	if announcement == nil {
		return fmt.Sprintf("%s has no announcement with the given name.", username)
	}

	for i, a := range host.Announcements {
		if a == announcement {
			host.Announcements = append(host.Announcements[:i], host.Announcements[i+1:]...)
			break
		}
	}
	return fmt.Sprintf("%s has successfully deleted the announcement.", username)
}

// validEventDate accepts dd-mm-yyyy dates between 1900 and 2023, with at most
// 28 days in February.
func validEventDate(date string) bool {
	parts := strings.Split(date, "-")
	if len(date) != 10 || len(parts) != 3 {
		return false
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return false
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return false
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return false
	}

	switch {
	case day < 1 || day > 31,
		month == 2 && day > 28,
		month < 1 || month > 12,
		year < 1900 || year > 2023:
		return false
	}
	return true
}
