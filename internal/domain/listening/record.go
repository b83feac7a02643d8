// Package listening accumulates per-user play counts and derives the
// "wrapped" top-listen summaries from them.
package listening

import (
	"sort"

	"github.com/waveline/waveline/internal/domain/library"
)

// TopLimit is how many entries each wrapped category reports.
const TopLimit = 5

// Record holds one user's accumulated play counts. Counters only ever grow;
// there is no deduplication, every completion is one listen.
type Record struct {
	songs    map[string]int
	artists  map[string]int
	genres   map[string]int
	albums   map[string]int
	episodes map[string]int
}

// NewRecord creates an empty listen record.
func NewRecord() *Record {
	return &Record{
		songs:    make(map[string]int),
		artists:  make(map[string]int),
		genres:   make(map[string]int),
		albums:   make(map[string]int),
		episodes: make(map[string]int),
	}
}

// RecordCompletion registers one full listen of the given file. Songs count
// toward the song, artist, genre and album tallies; episodes only toward the
// episode tally.
func (r *Record) RecordCompletion(f library.AudioFile) {
	switch item := f.(type) {
	case *library.Song:
		r.songs[item.Title]++
		r.artists[item.Artist]++
		r.genres[item.Genre]++
		r.albums[item.Album]++
	case *library.Episode:
		r.episodes[item.Title]++
	}
}

// Songs returns a copy of the per-song play counts.
func (r *Record) Songs() map[string]int { return copyCounts(r.songs) }

// Artists returns a copy of the per-artist play counts.
func (r *Record) Artists() map[string]int { return copyCounts(r.artists) }

// Genres returns a copy of the per-genre play counts.
func (r *Record) Genres() map[string]int { return copyCounts(r.genres) }

// Albums returns a copy of the per-album play counts.
func (r *Record) Albums() map[string]int { return copyCounts(r.albums) }

// Episodes returns a copy of the per-episode play counts.
func (r *Record) Episodes() map[string]int { return copyCounts(r.episodes) }

// Entry is one name with its play count.
type Entry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Summary is the wrapped result: the top listens per category, counts
// descending with name-ascending tie-break, at most TopLimit entries each.
type Summary struct {
	TopSongs    []Entry `json:"topSongs"`
	TopArtists  []Entry `json:"topArtists"`
	TopGenres   []Entry `json:"topGenres"`
	TopAlbums   []Entry `json:"topAlbums"`
	TopEpisodes []Entry `json:"topEpisodes"`
}

// Wrapped builds the summary from the current counters.
func (r *Record) Wrapped() Summary {
	return Summary{
		TopSongs:    topEntries(r.songs),
		TopArtists:  topEntries(r.artists),
		TopGenres:   topEntries(r.genres),
		TopAlbums:   topEntries(r.albums),
		TopEpisodes: topEntries(r.episodes),
	}
}

// Empty reports whether nothing has been listened to yet.
func (r *Record) Empty() bool {
	return len(r.songs) == 0 && len(r.episodes) == 0
}

func copyCounts(counts map[string]int) map[string]int {
	out := make(map[string]int, len(counts))
	for name, n := range counts {
		out[name] = n
	}
	return out
}

func topEntries(counts map[string]int) []Entry {
	entries := make([]Entry, 0, len(counts))
	for name, n := range counts {
		entries = append(entries, Entry{Name: name, Count: n})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Name < entries[j].Name
	})
	if len(entries) > TopLimit {
		entries = entries[:TopLimit]
	}
	return entries
}
