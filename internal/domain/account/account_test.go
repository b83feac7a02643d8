package account_test

import (
	"strings"
	"testing"

	"github.com/waveline/waveline/internal/domain/account"
	"github.com/waveline/waveline/internal/domain/library"
)

func TestUserLikesAndFollows(t *testing.T) {
	u := account.NewUser("alice", 25, "Berlin", nil)
	song := &library.Song{Title: "Aurora", Artist: "nova"}
	playlist := library.NewPlaylist("Mix", "bob", 0)

	t.Run("like round-trip", func(t *testing.T) {
		if u.Likes(song) {
			t.Error("Expected no like yet")
		}
		u.AddLike(song)
		if !u.Likes(song) {
			t.Error("Expected like recorded")
		}
		u.RemoveLike(song)
		if u.Likes(song) {
			t.Error("Expected like removed")
		}
	})

	t.Run("follow round-trip", func(t *testing.T) {
		u.AddFollow(playlist)
		if !u.Follows(playlist) {
			t.Error("Expected follow recorded")
		}
		u.RemoveFollow(playlist)
		if u.Follows(playlist) {
			t.Error("Expected follow removed")
		}
	})

	t.Run("toggle status", func(t *testing.T) {
		if !u.Online {
			t.Fatal("Expected new user online")
		}
		if u.ToggleStatus() {
			t.Error("Expected user offline after toggle")
		}
		if !u.ToggleStatus() {
			t.Error("Expected user back online")
		}
	})
}

func TestArtistLookups(t *testing.T) {
	a := account.NewArtist("nova", 30, "Oslo")
	album := &library.Album{Title: "Dawn", Artist: "nova", Songs: []*library.Song{
		{Title: "One", Likes: 2}, {Title: "Two", Likes: 3},
	}}
	a.Albums = append(a.Albums, album)
	a.Events = append(a.Events, &account.Event{Name: "Tour", Date: "10-10-2022"})
	a.Merch = append(a.Merch, &account.Merchandise{Name: "Shirt", Price: 25}, &account.Merchandise{Name: "Poster", Price: 10})

	if a.Album("Dawn") != album || a.Album("Missing") != nil {
		t.Error("Album lookup failed")
	}
	if a.Event("Tour") == nil || a.Event("Missing") != nil {
		t.Error("Event lookup failed")
	}
	if a.Merchandise("Shirt") == nil || a.Merchandise("Missing") != nil {
		t.Error("Merchandise lookup failed")
	}
	if got := len(a.AllSongs()); got != 2 {
		t.Errorf("Expected 2 songs, got %d", got)
	}
	if got := a.TotalLikes(); got != 5 {
		t.Errorf("Expected 5 total likes, got %d", got)
	}
	if got := a.MerchRevenue(); got != 35 {
		t.Errorf("Expected revenue 35, got %v", got)
	}
}

func TestNotifications(t *testing.T) {
	t.Run("publish reaches every subscriber once", func(t *testing.T) {
		a := account.NewArtist("nova", 30, "Oslo")
		u1 := account.NewUser("alice", 25, "Berlin", nil)
		u2 := account.NewUser("bob", 28, "Paris", nil)
		a.Subscribe(u1)
		a.Subscribe(u2)

		a.Publish(account.NewNotification("New Album", "New Album from nova."))

		for _, u := range []*account.User{u1, u2} {
			got := u.Notifications()
			if len(got) != 1 || got[0].Name != "New Album" {
				t.Errorf("Expected one New Album notification for %s, got %v", u.Username, got)
			}
		}
	})

	t.Run("inbox drains on read", func(t *testing.T) {
		u := account.NewUser("alice", 25, "Berlin", nil)
		u.Deliver(account.NewNotification("New Event", "New Event from nova."))
		if got := u.Notifications(); len(got) != 1 {
			t.Fatalf("Expected one notification, got %d", len(got))
		}
		if got := u.Notifications(); len(got) != 0 {
			t.Errorf("Expected drained inbox, got %v", got)
		}
	})

	t.Run("unsubscribe stops delivery", func(t *testing.T) {
		h := account.NewHost("dan", 40, "Rome")
		u := account.NewUser("alice", 25, "Berlin", nil)
		h.Subscribe(u)
		if !h.Subscribed(u) {
			t.Fatal("Expected subscription recorded")
		}
		h.Unsubscribe(u)
		h.Publish(account.NewNotification("New Announcement", "hello"))
		if got := u.Notifications(); len(got) != 0 {
			t.Errorf("Expected no delivery after unsubscribe, got %v", got)
		}
	})
}

func TestPageNavigation(t *testing.T) {
	u := account.NewUser("alice", 25, "Berlin", nil)
	artist := account.NewArtist("nova", 30, "Oslo")

	t.Run("starts on the home page", func(t *testing.T) {
		if _, ok := u.CurrentPage().(*account.HomePage); !ok {
			t.Errorf("Expected home page, got %T", u.CurrentPage())
		}
	})

	t.Run("back and forward walk the history", func(t *testing.T) {
		u.VisitPage(artist.Page())
		u.VisitPage(u.LikedContentPage())

		if !u.GoBack() {
			t.Fatal("Expected back to succeed")
		}
		if _, ok := u.CurrentPage().(*account.ArtistPage); !ok {
			t.Errorf("Expected artist page after back, got %T", u.CurrentPage())
		}
		if !u.GoForward() {
			t.Fatal("Expected forward to succeed")
		}
		if _, ok := u.CurrentPage().(*account.LikedContentPage); !ok {
			t.Errorf("Expected liked content page after forward, got %T", u.CurrentPage())
		}
		if u.GoForward() {
			t.Error("Expected forward history exhausted")
		}
	})

	t.Run("visiting clears the forward history", func(t *testing.T) {
		u.GoBack()
		u.VisitPage(u.HomePage())
		if u.GoForward() {
			t.Error("Expected forward history cleared by a visit")
		}
	})
}

func TestPagePrinting(t *testing.T) {
	t.Run("home page lists likes, follows and recommendations", func(t *testing.T) {
		u := account.NewUser("alice", 25, "Berlin", nil)
		u.AddLike(&library.Song{Title: "Quiet", Likes: 1})
		u.AddLike(&library.Song{Title: "Loud", Likes: 9})
		mix := library.NewPlaylist("Mix", "bob", 0)
		u.AddFollow(mix)

		out := u.HomePage().Print()
		if !strings.Contains(out, "Liked songs:\n\t[Loud, Quiet]") {
			t.Errorf("Expected likes sorted by like count, got:\n%s", out)
		}
		if !strings.Contains(out, "Followed playlists:\n\t[Mix]") {
			t.Errorf("Expected followed playlists, got:\n%s", out)
		}
		if !strings.Contains(out, "Song recommendations:\n\t[]") {
			t.Errorf("Expected empty song recommendations, got:\n%s", out)
		}
	})

	t.Run("liked content page includes attributions", func(t *testing.T) {
		u := account.NewUser("alice", 25, "Berlin", nil)
		u.AddLike(&library.Song{Title: "Aurora", Artist: "nova"})

		out := u.LikedContentPage().Print()
		if !strings.Contains(out, "[Aurora - nova]") {
			t.Errorf("Expected song attribution, got:\n%s", out)
		}
	})

	t.Run("artist page renders albums, merch and events", func(t *testing.T) {
		a := account.NewArtist("nova", 30, "Oslo")
		a.Albums = append(a.Albums, &library.Album{Title: "Dawn"})
		a.Merch = append(a.Merch, &account.Merchandise{Name: "Shirt", Price: 25, Description: "tour tee"})
		a.Events = append(a.Events, &account.Event{Name: "Tour", Date: "10-10-2022", Description: "world tour"})

		out := a.Page().Print()
		if !strings.Contains(out, "Albums:\n\t[Dawn]") {
			t.Errorf("Expected album list, got:\n%s", out)
		}
		if !strings.Contains(out, "Shirt - 25:\n\ttour tee") {
			t.Errorf("Expected merch line, got:\n%s", out)
		}
		if !strings.Contains(out, "Tour - 10-10-2022:\n\tworld tour") {
			t.Errorf("Expected event line, got:\n%s", out)
		}
	})

	t.Run("host page renders podcasts and announcements", func(t *testing.T) {
		h := account.NewHost("dan", 40, "Rome")
		h.Podcasts = append(h.Podcasts, &library.Podcast{
			Title:    "Talks",
			Host:     "dan",
			Episodes: []*library.Episode{{Title: "Pilot", Description: "the beginning"}},
		})
		h.Announcements = append(h.Announcements, &account.Announcement{Name: "Break", Description: "back soon"})

		out := h.Page().Print()
		if !strings.Contains(out, "Pilot - the beginning") {
			t.Errorf("Expected episode line, got:\n%s", out)
		}
		if !strings.Contains(out, "Break:\n\tback soon") {
			t.Errorf("Expected announcement, got:\n%s", out)
		}
	})
}
