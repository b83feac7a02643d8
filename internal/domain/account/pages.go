package account

import (
	"fmt"
	"sort"
	"strings"

	"github.com/waveline/waveline/internal/domain/library"
)

// Page is anything a user can be looking at.
type Page interface {
	Print() string
}

// HomePage shows a user's likes, follows and recommendations.
type HomePage struct {
	User *User
}

// LikedContentPage lists everything a user has liked or followed.
type LikedContentPage struct {
	User *User
}

// ArtistPage is an artist's public page.
type ArtistPage struct {
	Artist *Artist
}

// HostPage is a host's public page.
type HostPage struct {
	Host *Host
}

// CurrentPage returns the page the user is on.
func (u *User) CurrentPage() Page { return u.currentPage }

// HomePage returns the user's own home page.
func (u *User) HomePage() *HomePage { return &HomePage{User: u} }

// LikedContentPage returns the user's liked-content page.
func (u *User) LikedContentPage() *LikedContentPage { return &LikedContentPage{User: u} }

// VisitPage navigates to a page, recording the previous one in the back
// history and clearing the forward history.
func (u *User) VisitPage(p Page) {
	u.backPages = append(u.backPages, u.currentPage)
	u.fwdPages = nil
	u.currentPage = p
}

// GoBack steps to the previously visited page; false when there is none.
func (u *User) GoBack() bool {
	if len(u.backPages) == 0 {
		return false
	}
	u.fwdPages = append(u.fwdPages, u.currentPage)
	u.currentPage = u.backPages[len(u.backPages)-1]
	u.backPages = u.backPages[:len(u.backPages)-1]
	return true
}

// GoForward undoes a GoBack; false when there is nothing ahead.
func (u *User) GoForward() bool {
	if len(u.fwdPages) == 0 {
		return false
	}
	u.backPages = append(u.backPages, u.currentPage)
	u.currentPage = u.fwdPages[len(u.fwdPages)-1]
	u.fwdPages = u.fwdPages[:len(u.fwdPages)-1]
	return true
}

const pageListLimit = 5

// Print renders the home page: top liked songs, top followed playlists and
// the current recommendations.
func (p *HomePage) Print() string {
	liked := append([]*library.Song(nil), p.User.LikedSongs...)
	sort.SliceStable(liked, func(i, j int) bool { return liked[i].Likes > liked[j].Likes })
	likedNames := songNames(liked, pageListLimit)

	followed := append([]*library.Playlist(nil), p.User.FollowedPlaylists...)
	sort.SliceStable(followed, func(i, j int) bool {
		return followed[i].TotalLikes() > followed[j].TotalLikes()
	})
	followedNames := playlistNames(followed, pageListLimit)

	recs := append([]*library.Song(nil), p.User.SongRecommendations...)
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Title < recs[j].Title })
	recNames := songNames(recs, 1)

	playlistRecs := append([]*library.Playlist(nil), p.User.PlaylistRecommendations...)
	sort.SliceStable(playlistRecs, func(i, j int) bool {
		return playlistRecs[i].Title < playlistRecs[j].Title
	})
	playlistRecNames := playlistNames(playlistRecs, pageListLimit)

	return fmt.Sprintf("Liked songs:\n\t%s\n\nFollowed playlists:\n\t%s\n\n"+
		"Song recommendations:\n\t%s\n\nPlaylists recommendations:\n\t%s",
		bracketed(likedNames), bracketed(followedNames),
		bracketed(recNames), bracketed(playlistRecNames))
}

// Print renders the liked-content page with song and playlist attributions.
func (p *LikedContentPage) Print() string {
	songs := make([]string, 0, len(p.User.LikedSongs))
	for _, s := range p.User.LikedSongs {
		songs = append(songs, fmt.Sprintf("%s - %s", s.Title, s.Artist))
	}
	playlists := make([]string, 0, len(p.User.FollowedPlaylists))
	for _, pl := range p.User.FollowedPlaylists {
		playlists = append(playlists, fmt.Sprintf("%s - %s", pl.Title, pl.Owner))
	}
	return fmt.Sprintf("Liked songs:\n\t%s\n\nFollowed playlists:\n\t%s",
		bracketed(songs), bracketed(playlists))
}

// Print renders an artist page: albums, merchandise and events.
func (p *ArtistPage) Print() string {
	albums := make([]string, 0, len(p.Artist.Albums))
	for _, a := range p.Artist.Albums {
		albums = append(albums, a.Title)
	}
	merch := make([]string, 0, len(p.Artist.Merch))
	for _, m := range p.Artist.Merch {
		merch = append(merch, fmt.Sprintf("%s - %.0f:\n\t%s", m.Name, m.Price, m.Description))
	}
	events := make([]string, 0, len(p.Artist.Events))
	for _, e := range p.Artist.Events {
		events = append(events, fmt.Sprintf("%s - %s:\n\t%s", e.Name, e.Date, e.Description))
	}
	return fmt.Sprintf("Albums:\n\t%s\n\nMerch:\n\t%s\n\nEvents:\n\t%s",
		bracketed(albums), bracketed(merch), bracketed(events))
}

// Print renders a host page: podcasts with episodes, then announcements.
func (p *HostPage) Print() string {
	podcasts := make([]string, 0, len(p.Host.Podcasts))
	for _, pod := range p.Host.Podcasts {
		episodes := make([]string, 0, len(pod.Episodes))
		for _, e := range pod.Episodes {
			episodes = append(episodes, fmt.Sprintf("%s - %s", e.Title, e.Description))
		}
		podcasts = append(podcasts, fmt.Sprintf("%s:\n\t%s\n", pod.Title, bracketed(episodes)))
	}
	announcements := make([]string, 0, len(p.Host.Announcements))
	for _, a := range p.Host.Announcements {
		announcements = append(announcements, fmt.Sprintf("%s:\n\t%s\n", a.Name, a.Description))
	}
	return fmt.Sprintf("Podcasts:\n\t%s\n\nAnnouncements:\n\t%s",
		bracketed(podcasts), bracketed(announcements))
}

func songNames(songs []*library.Song, limit int) []string {
	names := make([]string, 0, limit)
	for _, s := range songs {
		if len(names) == limit {
			break
		}
		names = append(names, s.Title)
	}
	return names
}

func playlistNames(playlists []*library.Playlist, limit int) []string {
	names := make([]string, 0, limit)
	for _, p := range playlists {
		if len(names) == limit {
			break
		}
		names = append(names, p.Title)
	}
	return names
}

func bracketed(items []string) string {
	return "[" + strings.Join(items, ", ") + "]"
}
