package platform

import (
	"fmt"

	"github.com/waveline/waveline/internal/domain/account"
	"github.com/waveline/waveline/internal/domain/library"
	"github.com/waveline/waveline/internal/domain/player"
)

// ChangePage navigates the user to a named page. The Artist and Host pages
// are resolved through the user's current playback source; landing on an
// artist page marks that artist as having listener interest.
func (c *Catalog) ChangePage(username, nextPage string) string {
	u, errMsg := c.onlineUser(username)
	if u == nil {
		return errMsg
	}

	switch nextPage {
	case "Home":
		u.VisitPage(u.HomePage())
	case "LikedContent":
		u.VisitPage(u.LikedContentPage())
	case "Artist":
		song, ok := u.Player.Current().(*library.Song)
		if !ok {
			return fmt.Sprintf("%s is trying to access a non-existent page.", username)
		}
		artist := c.ArtistByName(song.Artist)
		if artist == nil {
			return fmt.Sprintf("%s is trying to access a non-existent page.", username)
		}
		u.VisitPage(artist.Page())
		artist.Interest = true
	case "Host":
		kind, _ := u.Player.Kind()
		podcast, ok := u.Player.CurrentCollection().(*library.Podcast)
		if kind != player.SourcePodcast || !ok {
			return fmt.Sprintf("%s is trying to access a non-existent page.", username)
		}
		host := c.findHost(podcast.Host)
		if host == nil {
			return fmt.Sprintf("%s is trying to access a non-existent page.", username)
		}
		u.VisitPage(host.Page())
	default:
		return fmt.Sprintf("%s is trying to access a non-existent page.", username)
	}

	return fmt.Sprintf("%s accessed %s successfully.", username, nextPage)
}

// PrintCurrentPage renders the page the user is on.
func (c *Catalog) PrintCurrentPage(username string) string {
	u, errMsg := c.onlineUser(username)
	if u == nil {
		return errMsg
	}
	return u.CurrentPage().Print()
}

// PreviousPage steps back through the user's page history.
func (c *Catalog) PreviousPage(username string) string {
	u := c.findUser(username)
	if u == nil {
		return fmt.Sprintf("The username %s doesn't exist.", username)
	}
	if !u.GoBack() {
		return "There are no pages left to go back."
	}
	return fmt.Sprintf("The user %s has navigated successfully to the previous page.", username)
}

// NextPage steps forward through the user's page history.
func (c *Catalog) NextPage(username string) string {
	u := c.findUser(username)
	if u == nil {
		return fmt.Sprintf("The username %s doesn't exist.", username)
	}
	if !u.GoForward() {
		return "There are no pages left to go forward."
	}
	return fmt.Sprintf("The user %s has navigated successfully to the next page.", username)
}

// Subscribe toggles the user's subscription to the creator whose page they
// are currently on.
func (c *Catalog) Subscribe(username string) string {
	u, errMsg := c.onlineUser(username)
	if u == nil {
		return errMsg
	}

	switch page := u.CurrentPage().(type) {
	case *account.ArtistPage:
		artist := page.Artist
		if artist.Subscribed(u) {
			artist.Unsubscribe(u)
			return fmt.Sprintf("%s unsubscribed from %s successfully.", username, artist.Username)
		}
		artist.Subscribe(u)
		return fmt.Sprintf("%s subscribed to %s successfully.", username, artist.Username)
	case *account.HostPage:
		host := page.Host
		if host.Subscribed(u) {
			host.Unsubscribe(u)
			return fmt.Sprintf("%s unsubscribed from %s successfully.", username, host.Username)
		}
		host.Subscribe(u)
		return fmt.Sprintf("%s subscribed to %s successfully.", username, host.Username)
	default:
		return "To subscribe you need to be on the page of an artist or host."
	}
}

// Notifications drains and returns the user's notification inbox.
func (c *Catalog) Notifications(username string) ([]account.Notification, string) {
	u := c.findUser(username)
	if u == nil {
		return nil, fmt.Sprintf("The username %s doesn't exist.", username)
	}
	return u.Notifications(), ""
}
