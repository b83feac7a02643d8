package platform

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/waveline/waveline/internal/domain/account"
	"github.com/waveline/waveline/internal/domain/library"
	"github.com/waveline/waveline/internal/domain/player"
)

// onlineUser resolves a username to an online listener, or returns the status
// string explaining why it can't.
func (c *Catalog) onlineUser(username string) (*account.User, string) {
	u := c.findUser(username)
	if u == nil {
		if c.usernameTaken(username) {
			return nil, fmt.Sprintf("%s is not a normal user.", username)
		}
		return nil, fmt.Sprintf("The username %s doesn't exist.", username)
	}
	if !u.Online {
		return nil, fmt.Sprintf("%s is offline.", username)
	}
	return u, ""
}

// Load loads a source into the user's player by kind and name.
func (c *Catalog) Load(username, sourceType, name string) string {
	u, errMsg := c.onlineUser(username)
	if u == nil {
		return errMsg
	}

	switch sourceType {
	case "song":
		song := c.songByName(name)
		if song == nil {
			return "The selected source doesn't exist."
		}
		u.Player.LoadFile(song)
	case "playlist":
		playlist := c.playlistByName(username, name)
		if playlist == nil {
			playlist = c.playlistByName("", name)
		}
		if playlist == nil {
			return "The selected source doesn't exist."
		}
		if !u.Player.LoadCollection(player.SourcePlaylist, playlist) {
			return "You can't load an empty audio collection!"
		}
	case "album":
		album := c.albumByName(name)
		if album == nil {
			return "The selected source doesn't exist."
		}
		if !u.Player.LoadCollection(player.SourceAlbum, album) {
			return "You can't load an empty audio collection!"
		}
	case "podcast":
		podcast := c.podcastByName(name)
		if podcast == nil {
			return "The selected source doesn't exist."
		}
		if !u.Player.LoadCollection(player.SourcePodcast, podcast) {
			return "You can't load an empty audio collection!"
		}
	default:
		return "The selected source doesn't exist."
	}

	log.Debug().Str("user", username).Str("type", sourceType).Str("name", name).Msg("Loaded playback source")
	return "Playback loaded successfully."
}

// PlayPause toggles pause on the user's player.
func (c *Catalog) PlayPause(username string) string {
	u, errMsg := c.onlineUser(username)
	if u == nil {
		return errMsg
	}
	paused, err := u.Player.TogglePause()
	if err != nil {
		return "Please load a source before attempting to pause or resume playback."
	}
	if paused {
		return "Playback paused successfully."
	}
	return "Playback resumed successfully."
}

// CycleRepeat advances the repeat mode of the user's player.
func (c *Catalog) CycleRepeat(username string) string {
	u, errMsg := c.onlineUser(username)
	if u == nil {
		return errMsg
	}
	mode, err := u.Player.CycleRepeat()
	if err != nil {
		return "Please load a source before setting the repeat status."
	}
	return fmt.Sprintf("Repeat mode changed to %s.", strings.ToLower(mode.String()))
}

// ToggleShuffle flips shuffle with the given seed.
func (c *Catalog) ToggleShuffle(username string, seed int64) string {
	u, errMsg := c.onlineUser(username)
	if u == nil {
		return errMsg
	}
	on, err := u.Player.ToggleShuffle(seed)
	switch err {
	case player.ErrNoSource:
		return "Please load a source before using the shuffle function."
	case player.ErrNotShuffleable:
		return "The loaded source is not a playlist or an album."
	}
	if on {
		return "Shuffle function activated successfully."
	}
	return "Shuffle function deactivated successfully."
}

// Next skips to the next logical track.
func (c *Catalog) Next(username string) string {
	u, errMsg := c.onlineUser(username)
	if u == nil {
		return errMsg
	}
	track, err := u.Player.SkipNext()
	if err != nil || track == nil {
		return "Please load a source before skipping to the next track."
	}
	return fmt.Sprintf("Skipped to next track successfully. The current track is %s.", track.Name())
}

// Prev returns to the previous logical track, or restarts the current one
// when enough of it has played.
func (c *Catalog) Prev(username string) string {
	u, errMsg := c.onlineUser(username)
	if u == nil {
		return errMsg
	}
	track, err := u.Player.SkipPrev()
	if err != nil {
		return "Please load a source before returning to the previous track."
	}
	return fmt.Sprintf("Returned to previous track successfully. The current track is %s.", track.Name())
}

// Forward jumps ahead inside a podcast episode.
func (c *Catalog) Forward(username string) string {
	u, errMsg := c.onlineUser(username)
	if u == nil {
		return errMsg
	}
	switch err := u.Player.Forward(); err {
	case player.ErrNoSource:
		return "Please load a source before attempting to forward."
	case player.ErrNotPodcast:
		return "The loaded source is not a podcast."
	}
	return "Skipped forward successfully."
}

// Backward jumps back inside a podcast episode.
func (c *Catalog) Backward(username string) string {
	u, errMsg := c.onlineUser(username)
	if u == nil {
		return errMsg
	}
	switch err := u.Player.Backward(); err {
	case player.ErrNoSource:
		return "Please select a source before rewinding."
	case player.ErrNotPodcast:
		return "The loaded source is not a podcast."
	}
	return "Rewound successfully."
}

// PlayerStatus snapshots the user's playback state.
func (c *Catalog) PlayerStatus(username string) (player.Status, string) {
	u := c.findUser(username)
	if u == nil {
		return player.Status{}, fmt.Sprintf("The username %s doesn't exist.", username)
	}
	return u.Player.Snapshot(), ""
}

// Like toggles a like on the song the user is playing.
func (c *Catalog) Like(username string) string {
	u, errMsg := c.onlineUser(username)
	if u == nil {
		return errMsg
	}
	if !u.Player.HasSource() {
		return "Please load a source before liking or unliking."
	}
	song, ok := u.Player.Current().(*library.Song)
	if !ok {
		return "Loaded source is not a song."
	}

	if u.Likes(song) {
		u.RemoveLike(song)
		song.Dislike()
		return "Unlike registered successfully."
	}
	u.AddLike(song)
	song.Like()
	return "Like registered successfully."
}

// CreatePlaylist creates a new public playlist owned by the user.
func (c *Catalog) CreatePlaylist(username, playlistName string) string {
	u, errMsg := c.onlineUser(username)
	if u == nil {
		return errMsg
	}
	if u.Playlist(playlistName) != nil {
		return "A playlist with the same name already exists."
	}
	u.Playlists = append(u.Playlists, library.NewPlaylist(playlistName, username, c.timestamp))
	return "Playlist created successfully."
}

// AddRemoveInPlaylist toggles the currently playing song's membership in the
// user's playlist with the given 1-based ID.
func (c *Catalog) AddRemoveInPlaylist(username string, playlistID int) string {
	u, errMsg := c.onlineUser(username)
	if u == nil {
		return errMsg
	}
	if !u.Player.HasSource() {
		return "Please load a source before adding to or removing from the playlist."
	}
	song, ok := u.Player.Current().(*library.Song)
	if !ok {
		return "The loaded source is not a song."
	}
	if playlistID < 1 || playlistID > len(u.Playlists) {
		return "The specified playlist does not exist."
	}

	playlist := u.Playlists[playlistID-1]
	if playlist.HasSong(song) {
		playlist.RemoveSong(song)
		return "Successfully removed from playlist."
	}
	playlist.AddSong(song)
	return "Successfully added to playlist."
}

// SwitchVisibility flips a playlist between public and private.
func (c *Catalog) SwitchVisibility(username string, playlistID int) string {
	u, errMsg := c.onlineUser(username)
	if u == nil {
		return errMsg
	}
	if playlistID < 1 || playlistID > len(u.Playlists) {
		return "The specified playlist ID is too high."
	}
	visibility := u.Playlists[playlistID-1].ToggleVisibility()
	return fmt.Sprintf("Visibility status updated successfully to %s.", visibility)
}

// FollowPlaylist toggles following another user's playlist.
func (c *Catalog) FollowPlaylist(username, owner, playlistName string) string {
	u, errMsg := c.onlineUser(username)
	if u == nil {
		return errMsg
	}
	playlist := c.playlistByName(owner, playlistName)
	if playlist == nil {
		return "The selected source doesn't exist."
	}
	if playlist.Owner == username {
		return "You cannot follow or unfollow your own playlist."
	}

	if u.Follows(playlist) {
		u.RemoveFollow(playlist)
		playlist.Unfollow()
		return "Playlist unfollowed successfully."
	}
	u.AddFollow(playlist)
	playlist.Follow()
	return "Playlist followed successfully."
}
