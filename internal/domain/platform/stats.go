package platform

import (
	"fmt"

	"github.com/waveline/waveline/internal/domain/listening"
	"github.com/waveline/waveline/internal/domain/ranking"
)

// Wrapped returns the user's accumulated listen summary, or a status string
// when there is nothing to report.
func (c *Catalog) Wrapped(username string) (listening.Summary, string) {
	u := c.findUser(username)
	if u == nil {
		return listening.Summary{}, fmt.Sprintf("The username %s doesn't exist.", username)
	}
	if u.Listens.Empty() {
		return listening.Summary{}, fmt.Sprintf("No data to show for user %s.", username)
	}
	return u.Listens.Wrapped(), ""
}

// Recommendation type selectors accepted by UpdateRecommendations.
const (
	RecommendationRandomSong   = "random_song"
	RecommendationFansPlaylist = "fans_playlist"
)

// UpdateRecommendations refreshes the user's song or playlist
// recommendations from their current playback.
func (c *Catalog) UpdateRecommendations(username, recommendationType string) string {
	u := c.findUser(username)
	if u == nil {
		if c.usernameTaken(username) {
			return fmt.Sprintf("%s is not a normal user.", username)
		}
		return fmt.Sprintf("The username %s doesn't exist.", username)
	}

	switch recommendationType {
	case RecommendationRandomSong:
		return c.recommender.RecommendSong(u)
	case RecommendationFansPlaylist:
		return c.recommender.RecommendPlaylist(u)
	default:
		return "Invalid recommendation type."
	}
}

// Top5Songs delegates to the ranking engine.
func (c *Catalog) Top5Songs() []string { return c.rankings.Top5Songs() }

// Top5Albums delegates to the ranking engine.
func (c *Catalog) Top5Albums() []string { return c.rankings.Top5Albums() }

// Top5Artists delegates to the ranking engine.
func (c *Catalog) Top5Artists() []string { return c.rankings.Top5Artists() }

// Top5Playlists delegates to the ranking engine.
func (c *Catalog) Top5Playlists() []string { return c.rankings.Top5Playlists() }

// EndProgram builds the end-of-run artist revenue summary.
func (c *Catalog) EndProgram() map[string]ranking.ArtistSummary {
	return c.rankings.EndProgram()
}
