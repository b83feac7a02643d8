// Package ranking computes the global top-5 leaderboards and the end-of-run
// artist revenue summary. Every query is a pure read over the catalog.
package ranking

import (
	"sort"

	"github.com/waveline/waveline/internal/domain/account"
	"github.com/waveline/waveline/internal/domain/library"
)

// TopLimit is the leaderboard size.
const TopLimit = 5

// Catalog is the read surface the engine needs from the platform.
type Catalog interface {
	// Songs in catalog insertion order.
	Songs() []*library.Song
	// Artists in registration order.
	Artists() []*account.Artist
	// Playlists of every user, in creation order.
	Playlists() []*library.Playlist
}

// Service is the ranking engine.
type Service struct {
	catalog Catalog
}

// NewService creates a ranking service over the given catalog.
func NewService(catalog Catalog) *Service {
	return &Service{catalog: catalog}
}

// Top5Songs ranks songs by like count descending; ties keep catalog insertion
// order.
func (s *Service) Top5Songs() []string {
	songs := append([]*library.Song(nil), s.catalog.Songs()...)
	sort.SliceStable(songs, func(i, j int) bool { return songs[i].Likes > songs[j].Likes })

	names := make([]string, 0, TopLimit)
	for _, song := range songs {
		if len(names) == TopLimit {
			break
		}
		names = append(names, song.Title)
	}
	return names
}

// Top5Albums ranks albums by the summed likes of their songs descending; ties
// break by album name ascending.
func (s *Service) Top5Albums() []string {
	var albums []*library.Album
	for _, artist := range s.catalog.Artists() {
		albums = append(albums, artist.Albums...)
	}
	sort.SliceStable(albums, func(i, j int) bool {
		li, lj := albums[i].TotalLikes(), albums[j].TotalLikes()
		if li != lj {
			return li > lj
		}
		return albums[i].Title < albums[j].Title
	})

	names := make([]string, 0, TopLimit)
	for _, album := range albums {
		if len(names) == TopLimit {
			break
		}
		names = append(names, album.Title)
	}
	return names
}

// Top5Artists ranks artists by the summed likes across all their songs
// descending; ties break by username ascending.
func (s *Service) Top5Artists() []string {
	artists := append([]*account.Artist(nil), s.catalog.Artists()...)
	sort.SliceStable(artists, func(i, j int) bool {
		li, lj := artists[i].TotalLikes(), artists[j].TotalLikes()
		if li != lj {
			return li > lj
		}
		return artists[i].Username < artists[j].Username
	})

	names := make([]string, 0, TopLimit)
	for _, artist := range artists {
		if len(names) == TopLimit {
			break
		}
		names = append(names, artist.Username)
	}
	return names
}

// Top5Playlists ranks playlists by the summed likes of their songs
// descending; ties break by creation timestamp ascending.
func (s *Service) Top5Playlists() []string {
	playlists := append([]*library.Playlist(nil), s.catalog.Playlists()...)
	sort.SliceStable(playlists, func(i, j int) bool {
		li, lj := playlists[i].TotalLikes(), playlists[j].TotalLikes()
		if li != lj {
			return li > lj
		}
		return playlists[i].CreatedAt < playlists[j].CreatedAt
	})

	names := make([]string, 0, TopLimit)
	for _, playlist := range playlists {
		if len(names) == TopLimit {
			break
		}
		names = append(names, playlist.Title)
	}
	return names
}

// ArtistSummary is one artist's end-of-run revenue line.
//
// Song revenue and the most profitable song are intentional placeholders
// (0 and "N/A") pending a real revenue model.
type ArtistSummary struct {
	MerchRevenue       float64 `json:"merchRevenue"`
	SongRevenue        float64 `json:"songRevenue"`
	Ranking            int     `json:"ranking"`
	MostProfitableSong string  `json:"mostProfitableSong"`
}

// EndProgram summarizes every artist that gathered listener interest, ranked
// by merchandise revenue descending with name-ascending tie-break, 1-based.
// Artists that never gathered interest are omitted entirely.
func (s *Service) EndProgram() map[string]ArtistSummary {
	var interested []*account.Artist
	for _, artist := range s.catalog.Artists() {
		if artist.Interest {
			interested = append(interested, artist)
		}
	}
	sort.SliceStable(interested, func(i, j int) bool {
		ri, rj := interested[i].MerchRevenue(), interested[j].MerchRevenue()
		if ri != rj {
			return ri > rj
		}
		return interested[i].Username < interested[j].Username
	})

	summary := make(map[string]ArtistSummary, len(interested))
	for rank, artist := range interested {
		summary[artist.Username] = ArtistSummary{
			MerchRevenue:       artist.MerchRevenue(),
			SongRevenue:        0.0,
			Ranking:            rank + 1,
			MostProfitableSong: "N/A",
		}
	}
	return summary
}
