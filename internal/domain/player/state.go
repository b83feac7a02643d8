// Package player implements the per-user playback state machine: the current
// audio source, elapsed-time simulation, shuffle and repeat policies.
//
// A State is not safe for concurrent use. The command dispatcher runs a single
// command at a time, which is the only execution model this package supports.
package player

import (
	"errors"
	"math/rand"

	"github.com/waveline/waveline/internal/domain/library"
)

// Sentinel errors returned by player operations.
var (
	ErrNoSource       = errors.New("no active source")
	ErrNotShuffleable = errors.New("source is not a playlist or an album")
	ErrNotPodcast     = errors.New("source is not a podcast")
)

// SourceType identifies what kind of entity is loaded in the player.
type SourceType string

const (
	SourceLibrary  SourceType = "library"
	SourcePlaylist SourceType = "playlist"
	SourcePodcast  SourceType = "podcast"
	SourceAlbum    SourceType = "album"
)

// RepeatMode is the active repeat policy.
//
// RepeatOnce and RepeatInfinite apply to library songs and podcasts: on
// exhaustion the source restarts from the first track, once or indefinitely.
// RepeatAll and RepeatCurrent apply to playlists and albums: the source wraps
// at the end, or the current track replays indefinitely.
type RepeatMode int

const (
	RepeatNone RepeatMode = iota
	RepeatOnce
	RepeatInfinite
	RepeatAll
	RepeatCurrent
)

// String returns the user-facing repeat mode label.
func (m RepeatMode) String() string {
	switch m {
	case RepeatOnce:
		return "Repeat Once"
	case RepeatInfinite:
		return "Repeat Infinite"
	case RepeatAll:
		return "Repeat All"
	case RepeatCurrent:
		return "Repeat Current Song"
	default:
		return "No Repeat"
	}
}

const (
	// PrevRestartThreshold is how many seconds of the current track must have
	// played before SkipPrev restarts it instead of moving to the previous
	// track.
	PrevRestartThreshold = 3

	// PodcastSkipStep is the forward/backward jump, in seconds, within a
	// podcast episode.
	PodcastSkipStep = 90
)

// Status is a read-only snapshot of the player.
type Status struct {
	Name      string
	Remaining int
	Repeat    RepeatMode
	Shuffle   bool
	Paused    bool
}

// source is the loaded entity plus the playback cursor.
type source struct {
	kind       SourceType
	collection library.Collection // nil for SourceLibrary
	tracks     []library.AudioFile
	pos        int // logical position; an index into order when shuffled
	remaining  int // seconds left in the current track
}

// State is one user's playback state machine.
type State struct {
	src        *source
	paused     bool
	shuffle    bool
	order      []int // playback-order permutation; nil when shuffle is off
	repeat     RepeatMode
	onComplete func(f library.AudioFile)
}

// NewState creates an idle player. onComplete, if non-nil, is invoked once for
// every track that plays to the end during Advance.
func NewState(onComplete func(f library.AudioFile)) *State {
	return &State{onComplete: onComplete}
}

// LoadFile loads a single audio file as the current source.
func (s *State) LoadFile(f library.AudioFile) bool {
	if f == nil {
		return false
	}
	s.load(&source{
		kind:      SourceLibrary,
		tracks:    []library.AudioFile{f},
		remaining: f.Length(),
	})
	return true
}

// LoadCollection loads a collection as the current source. Loading an empty
// collection is a no-op and returns false.
func (s *State) LoadCollection(kind SourceType, c library.Collection) bool {
	if c == nil {
		return false
	}
	tracks := c.Tracks()
	if len(tracks) == 0 {
		return false
	}
	s.load(&source{
		kind:       kind,
		collection: c,
		tracks:     tracks,
		remaining:  tracks[0].Length(),
	})
	return true
}

// load replaces the source and resets every playback flag.
func (s *State) load(src *source) {
	s.src = src
	s.paused = false
	s.shuffle = false
	s.order = nil
	s.repeat = RepeatNone
}

// Stop clears the source, leaving the player idle.
func (s *State) Stop() {
	s.src = nil
	s.paused = false
	s.shuffle = false
	s.order = nil
	s.repeat = RepeatNone
}

// HasSource reports whether anything is loaded.
func (s *State) HasSource() bool { return s.src != nil }

// Kind returns the type of the loaded source; ok is false when idle.
func (s *State) Kind() (SourceType, bool) {
	if s.src == nil {
		return "", false
	}
	return s.src.kind, true
}

// Current returns the track under the cursor, or nil when idle.
func (s *State) Current() library.AudioFile {
	if s.src == nil {
		return nil
	}
	return s.src.tracks[s.trackIndex()]
}

// CurrentCollection returns the loaded collection, or nil for single files and
// idle players.
func (s *State) CurrentCollection() library.Collection {
	if s.src == nil {
		return nil
	}
	return s.src.collection
}

// Remaining returns the seconds left in the current track, 0 when idle.
func (s *State) Remaining() int {
	if s.src == nil {
		return 0
	}
	return s.src.remaining
}

// IsPaused reports whether playback is paused.
func (s *State) IsPaused() bool { return s.paused }

// IsShuffled reports whether shuffle is active.
func (s *State) IsShuffled() bool { return s.shuffle }

// Repeat returns the active repeat mode.
func (s *State) Repeat() RepeatMode { return s.repeat }

// Snapshot returns the current playback status.
func (s *State) Snapshot() Status {
	st := Status{Repeat: s.repeat, Shuffle: s.shuffle, Paused: s.paused}
	if s.src != nil {
		st.Name = s.Current().Name()
		st.Remaining = s.src.remaining
	} else {
		// an idle player reports paused, matching a stopped deck
		st.Paused = true
	}
	return st
}

// TogglePause flips the paused flag. The remaining duration is preserved
// exactly across a pause/resume cycle.
func (s *State) TogglePause() (bool, error) {
	if s.src == nil {
		return false, ErrNoSource
	}
	s.paused = !s.paused
	return s.paused, nil
}

// CycleRepeat advances the repeat mode. Single files and podcasts cycle
// none -> once -> infinite, playlists and albums cycle none -> all -> current.
func (s *State) CycleRepeat() (RepeatMode, error) {
	if s.src == nil {
		return RepeatNone, ErrNoSource
	}
	switch s.src.kind {
	case SourcePlaylist, SourceAlbum:
		switch s.repeat {
		case RepeatNone:
			s.repeat = RepeatAll
		case RepeatAll:
			s.repeat = RepeatCurrent
		default:
			s.repeat = RepeatNone
		}
	default:
		switch s.repeat {
		case RepeatNone:
			s.repeat = RepeatOnce
		case RepeatOnce:
			s.repeat = RepeatInfinite
		default:
			s.repeat = RepeatNone
		}
	}
	return s.repeat, nil
}

// ToggleShuffle enables or disables shuffle on a playlist or album source.
// Enabling builds a permutation from the given seed that stays fixed until
// shuffle is toggled off; the current track keeps playing and becomes the
// cursor position inside the permutation. Disabling restores sequential order
// from the current track.
func (s *State) ToggleShuffle(seed int64) (bool, error) {
	if s.src == nil {
		return false, ErrNoSource
	}
	if s.src.kind != SourcePlaylist && s.src.kind != SourceAlbum {
		return false, ErrNotShuffleable
	}

	if s.shuffle {
		s.src.pos = s.order[s.src.pos]
		s.order = nil
		s.shuffle = false
		return false, nil
	}

	s.order = rand.New(rand.NewSource(seed)).Perm(len(s.src.tracks))
	for p, idx := range s.order {
		if idx == s.src.pos {
			s.src.pos = p
			break
		}
	}
	s.shuffle = true
	return true, nil
}

// Advance consumes elapsed seconds of playback. Each track that plays to the
// end fires the completion callback exactly once; leftover time carries into
// the following track per the repeat and shuffle policy. Time left over after
// the source is exhausted under RepeatNone is discarded.
func (s *State) Advance(elapsed int) {
	if s.src == nil || s.paused || elapsed <= 0 {
		return
	}
	for s.src != nil && elapsed >= s.src.remaining {
		elapsed -= s.src.remaining
		s.complete()
	}
	if s.src != nil {
		s.src.remaining -= elapsed
	}
}

// complete finishes the current track and positions the cursor on whatever
// plays next, clearing the source on exhaustion under RepeatNone. A source
// with no playable time is never looped: repeating it could not consume any
// elapsed time, so playback stops instead.
func (s *State) complete() {
	cur := s.Current()
	if s.onComplete != nil {
		s.onComplete(cur)
	}

	if s.repeat == RepeatCurrent {
		if cur.Length() == 0 {
			s.Stop()
			return
		}
		s.src.remaining = cur.Length()
		return
	}

	if s.advancePos() {
		s.src.remaining = s.Current().Length()
		return
	}

	switch s.repeat {
	case RepeatOnce:
		s.repeat = RepeatNone
		s.restart()
	case RepeatInfinite, RepeatAll:
		if s.sourceLength() == 0 {
			s.Stop()
			return
		}
		s.restart()
	default:
		s.Stop()
	}
}

// SkipNext moves the cursor one logical step forward and resumes playback.
// Returns nil when the skip exhausted the source.
func (s *State) SkipNext() (library.AudioFile, error) {
	if s.src == nil {
		return nil, ErrNoSource
	}
	s.paused = false

	if s.repeat == RepeatCurrent {
		s.src.remaining = s.Current().Length()
		return s.Current(), nil
	}

	if !s.advancePos() {
		switch s.repeat {
		case RepeatOnce:
			s.repeat = RepeatNone
			s.restart()
		case RepeatInfinite, RepeatAll:
			s.restart()
		default:
			s.Stop()
			return nil, nil
		}
		return s.Current(), nil
	}

	s.src.remaining = s.Current().Length()
	return s.Current(), nil
}

// SkipPrev restarts the current track when more than PrevRestartThreshold
// seconds of it have played, otherwise moves one logical step back. At the
// first track it restarts regardless. Resumes playback.
func (s *State) SkipPrev() (library.AudioFile, error) {
	if s.src == nil {
		return nil, ErrNoSource
	}
	s.paused = false

	played := s.Current().Length() - s.src.remaining
	if played <= PrevRestartThreshold && s.retreatPos() {
		s.src.remaining = s.Current().Length()
		return s.Current(), nil
	}

	s.src.remaining = s.Current().Length()
	return s.Current(), nil
}

// Forward jumps PodcastSkipStep seconds ahead in the current episode, rolling
// into the next episode when fewer seconds remain.
func (s *State) Forward() error {
	if s.src == nil {
		return ErrNoSource
	}
	if s.src.kind != SourcePodcast {
		return ErrNotPodcast
	}
	if s.src.remaining > PodcastSkipStep {
		s.src.remaining -= PodcastSkipStep
		return nil
	}
	_, err := s.SkipNext()
	return err
}

// Backward jumps PodcastSkipStep seconds back in the current episode,
// restarting it when fewer seconds have played.
func (s *State) Backward() error {
	if s.src == nil {
		return ErrNoSource
	}
	if s.src.kind != SourcePodcast {
		return ErrNotPodcast
	}
	cur := s.Current()
	played := cur.Length() - s.src.remaining
	if played > PodcastSkipStep {
		s.src.remaining += PodcastSkipStep
	} else {
		s.src.remaining = cur.Length()
	}
	return nil
}

// trackIndex resolves the logical position to an actual track index.
func (s *State) trackIndex() int {
	if s.order != nil {
		return s.order[s.src.pos]
	}
	return s.src.pos
}

// advancePos moves one logical step forward; false at the end of the source.
func (s *State) advancePos() bool {
	if s.src.kind == SourceLibrary {
		return false
	}
	if s.src.pos+1 >= len(s.src.tracks) {
		return false
	}
	s.src.pos++
	return true
}

// retreatPos moves one logical step back; false at the first track.
func (s *State) retreatPos() bool {
	if s.src.kind == SourceLibrary || s.src.pos == 0 {
		return false
	}
	s.src.pos--
	return true
}

// sourceLength sums the durations of the loaded source's tracks.
func (s *State) sourceLength() int {
	total := 0
	for _, f := range s.src.tracks {
		total += f.Length()
	}
	return total
}

// restart rewinds the source to its first logical track.
func (s *State) restart() {
	s.src.pos = 0
	s.src.remaining = s.Current().Length()
}
