package platform_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/waveline/waveline/internal/domain/library"
	"github.com/waveline/waveline/internal/domain/platform"
)

func newCatalog() *platform.Catalog {
	return platform.New(&library.Seed{
		Users: []library.UserSeed{
			{Username: "alice", Age: 25, City: "Berlin"},
			{Username: "bob", Age: 28, City: "Paris"},
		},
		Songs: []library.SongSeed{
			{Name: "Aurora", Duration: 200, Album: "Dawn", Genre: "Pop", ReleaseYear: 2020, Artist: "nova"},
			{Name: "Polar", Duration: 150, Album: "Dawn", Genre: "Pop", ReleaseYear: 2020, Artist: "nova"},
			{Name: "Ember", Duration: 180, Album: "Ash", Genre: "Rock", ReleaseYear: 2018, Artist: "mira"},
		},
		Podcasts: []library.PodcastSeed{
			{Name: "Talks", Owner: "dan", Episodes: []library.EpisodeSeed{
				{Name: "Pilot", Duration: 900, Description: "intro"},
				{Name: "Follow-up", Duration: 600, Description: "more"},
			}},
		},
	})
}

func TestAddUser(t *testing.T) {
	c := newCatalog()

	t.Run("registers each kind", func(t *testing.T) {
		if got := c.AddUser("nova", "artist", 30, "Oslo"); got != "The username nova has been added successfully." {
			t.Errorf("Unexpected message: %s", got)
		}
		if got := c.AddUser("dan", "host", 40, "Rome"); got != "The username dan has been added successfully." {
			t.Errorf("Unexpected message: %s", got)
		}
		if got := c.AddUser("carl", "user", 22, "Lyon"); got != "The username carl has been added successfully." {
			t.Errorf("Unexpected message: %s", got)
		}
	})

	t.Run("usernames are unique across kinds", func(t *testing.T) {
		if got := c.AddUser("nova", "user", 20, "Oslo"); got != "The username nova is already taken." {
			t.Errorf("Unexpected message: %s", got)
		}
		if got := c.AddUser("alice", "artist", 20, "Berlin"); got != "The username alice is already taken." {
			t.Errorf("Unexpected message: %s", got)
		}
	})

	t.Run("all users lists listeners then artists then hosts", func(t *testing.T) {
		want := []string{"alice", "bob", "carl", "nova", "dan"}
		if got := c.AllUsers(); !reflect.DeepEqual(got, want) {
			t.Errorf("Expected %v, got %v", want, got)
		}
	})
}

func TestSwitchStatus(t *testing.T) {
	c := newCatalog()
	c.AddUser("nova", "artist", 30, "Oslo")

	if got := c.SwitchStatus("alice"); got != "alice has changed status successfully." {
		t.Errorf("Unexpected message: %s", got)
	}
	if got := c.OnlineUsers(); !reflect.DeepEqual(got, []string{"bob"}) {
		t.Errorf("Expected only bob online, got %v", got)
	}
	if got := c.SwitchStatus("nova"); got != "nova is not a normal user." {
		t.Errorf("Unexpected message: %s", got)
	}
	if got := c.SwitchStatus("ghost"); got != "The username ghost doesn't exist." {
		t.Errorf("Unexpected message: %s", got)
	}
}

func TestAdvanceTime(t *testing.T) {
	t.Run("regression is fatal", func(t *testing.T) {
		c := newCatalog()
		if err := c.AdvanceTime(100); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		err := c.AdvanceTime(50)
		if err == nil {
			t.Fatal("Expected an error for a timestamp regression")
		}
		if got := c.Now(); got != 100 {
			t.Errorf("Expected clock unchanged at 100, got %d", got)
		}
	})

	t.Run("offline players do not consume time", func(t *testing.T) {
		c := newCatalog()
		c.Load("alice", "song", "Aurora")
		c.Load("bob", "song", "Aurora")
		c.SwitchStatus("bob")

		c.AdvanceTime(50)

		aliceStatus, _ := c.PlayerStatus("alice")
		bobStatus, _ := c.PlayerStatus("bob")
		if aliceStatus.Remaining != 150 {
			t.Errorf("Expected alice at 150 remaining, got %d", aliceStatus.Remaining)
		}
		if bobStatus.Remaining != 200 {
			t.Errorf("Expected bob frozen at 200 remaining, got %d", bobStatus.Remaining)
		}
	})
}

func TestLoadAndStatus(t *testing.T) {
	c := newCatalog()

	t.Run("load a song", func(t *testing.T) {
		if got := c.Load("alice", "song", "Aurora"); got != "Playback loaded successfully." {
			t.Errorf("Unexpected message: %s", got)
		}
		status, errMsg := c.PlayerStatus("alice")
		if errMsg != "" {
			t.Fatalf("Unexpected error: %s", errMsg)
		}
		if status.Name != "Aurora" || status.Remaining != 200 || status.Paused {
			t.Errorf("Unexpected status: %+v", status)
		}
	})

	t.Run("missing source", func(t *testing.T) {
		if got := c.Load("alice", "song", "Nope"); got != "The selected source doesn't exist." {
			t.Errorf("Unexpected message: %s", got)
		}
	})

	t.Run("empty playlist refuses to load", func(t *testing.T) {
		c.CreatePlaylist("alice", "Empty")
		if got := c.Load("alice", "playlist", "Empty"); got != "You can't load an empty audio collection!" {
			t.Errorf("Unexpected message: %s", got)
		}
	})

	t.Run("offline users cannot load", func(t *testing.T) {
		c.SwitchStatus("bob")
		if got := c.Load("bob", "song", "Aurora"); got != "bob is offline." {
			t.Errorf("Unexpected message: %s", got)
		}
	})

	t.Run("unknown and non-listener usernames", func(t *testing.T) {
		if got := c.Load("ghost", "song", "Aurora"); got != "The username ghost doesn't exist." {
			t.Errorf("Unexpected message: %s", got)
		}
		c.AddUser("nova", "artist", 30, "Oslo")
		if got := c.Load("nova", "song", "Aurora"); got != "nova is not a normal user." {
			t.Errorf("Unexpected message: %s", got)
		}
	})
}

func TestPlaybackControls(t *testing.T) {
	c := newCatalog()
	c.Load("alice", "podcast", "Talks")

	t.Run("play pause", func(t *testing.T) {
		if got := c.PlayPause("alice"); got != "Playback paused successfully." {
			t.Errorf("Unexpected message: %s", got)
		}
		if got := c.PlayPause("alice"); got != "Playback resumed successfully." {
			t.Errorf("Unexpected message: %s", got)
		}
	})

	t.Run("repeat mode message is lowercased", func(t *testing.T) {
		if got := c.CycleRepeat("alice"); got != "Repeat mode changed to repeat once." {
			t.Errorf("Unexpected message: %s", got)
		}
		c.CycleRepeat("alice")
		if got := c.CycleRepeat("alice"); got != "Repeat mode changed to no repeat." {
			t.Errorf("Unexpected message: %s", got)
		}
	})

	t.Run("podcasts cannot shuffle", func(t *testing.T) {
		if got := c.ToggleShuffle("alice", 7); got != "The loaded source is not a playlist or an album." {
			t.Errorf("Unexpected message: %s", got)
		}
	})

	t.Run("forward and backward", func(t *testing.T) {
		if got := c.Forward("alice"); got != "Skipped forward successfully." {
			t.Errorf("Unexpected message: %s", got)
		}
		if got := c.Backward("alice"); got != "Rewound successfully." {
			t.Errorf("Unexpected message: %s", got)
		}
	})

	t.Run("next and prev report the current track", func(t *testing.T) {
		if got := c.Next("alice"); got != "Skipped to next track successfully. The current track is Follow-up." {
			t.Errorf("Unexpected message: %s", got)
		}
		if got := c.Prev("alice"); got != "Returned to previous track successfully. The current track is Pilot." {
			t.Errorf("Unexpected message: %s", got)
		}
	})

	t.Run("controls require a source", func(t *testing.T) {
		if got := c.PlayPause("bob"); got != "Please load a source before attempting to pause or resume playback." {
			t.Errorf("Unexpected message: %s", got)
		}
		if got := c.Next("bob"); got != "Please load a source before skipping to the next track." {
			t.Errorf("Unexpected message: %s", got)
		}
		if got := c.Forward("bob"); got != "Please load a source before attempting to forward." {
			t.Errorf("Unexpected message: %s", got)
		}
	})
}

func TestLikes(t *testing.T) {
	c := newCatalog()
	c.Load("alice", "song", "Aurora")

	if got := c.Like("alice"); got != "Like registered successfully." {
		t.Errorf("Unexpected message: %s", got)
	}
	if got := c.Like("alice"); got != "Unlike registered successfully." {
		t.Errorf("Unexpected message: %s", got)
	}

	c.Load("alice", "podcast", "Talks")
	if got := c.Like("alice"); got != "Loaded source is not a song." {
		t.Errorf("Unexpected message: %s", got)
	}

	if got := c.Like("bob"); got != "Please load a source before liking or unliking." {
		t.Errorf("Unexpected message: %s", got)
	}
}

func TestPlaylists(t *testing.T) {
	c := newCatalog()

	t.Run("create and duplicate", func(t *testing.T) {
		if got := c.CreatePlaylist("alice", "Mix"); got != "Playlist created successfully." {
			t.Errorf("Unexpected message: %s", got)
		}
		if got := c.CreatePlaylist("alice", "Mix"); got != "A playlist with the same name already exists." {
			t.Errorf("Unexpected message: %s", got)
		}
	})

	t.Run("add and remove the playing song", func(t *testing.T) {
		c.Load("alice", "song", "Aurora")
		if got := c.AddRemoveInPlaylist("alice", 1); got != "Successfully added to playlist." {
			t.Errorf("Unexpected message: %s", got)
		}
		if got := c.AddRemoveInPlaylist("alice", 1); got != "Successfully removed from playlist." {
			t.Errorf("Unexpected message: %s", got)
		}
		if got := c.AddRemoveInPlaylist("alice", 9); got != "The specified playlist does not exist." {
			t.Errorf("Unexpected message: %s", got)
		}
	})

	t.Run("visibility", func(t *testing.T) {
		if got := c.SwitchVisibility("alice", 1); got != "Visibility status updated successfully to private." {
			t.Errorf("Unexpected message: %s", got)
		}
		if got := c.SwitchVisibility("alice", 9); got != "The specified playlist ID is too high." {
			t.Errorf("Unexpected message: %s", got)
		}
	})

	t.Run("follow another user's playlist", func(t *testing.T) {
		if got := c.FollowPlaylist("bob", "alice", "Mix"); got != "Playlist followed successfully." {
			t.Errorf("Unexpected message: %s", got)
		}
		if got := c.FollowPlaylist("bob", "alice", "Mix"); got != "Playlist unfollowed successfully." {
			t.Errorf("Unexpected message: %s", got)
		}
		if got := c.FollowPlaylist("alice", "alice", "Mix"); got != "You cannot follow or unfollow your own playlist." {
			t.Errorf("Unexpected message: %s", got)
		}
		if got := c.FollowPlaylist("bob", "", "Nope"); got != "The selected source doesn't exist." {
			t.Errorf("Unexpected message: %s", got)
		}
	})
}

func TestAlbums(t *testing.T) {
	c := newCatalog()
	c.AddUser("ray", "artist", 33, "Oslo")
	seeds := []library.SongSeed{
		{Name: "One", Duration: 100, Genre: "Pop"},
		{Name: "Two", Duration: 120, Genre: "Pop"},
	}

	t.Run("add album registers songs globally", func(t *testing.T) {
		if got := c.AddAlbum("ray", "First", "debut", 2021, seeds); got != "ray has added new album successfully." {
			t.Errorf("Unexpected message: %s", got)
		}
		if got := c.Load("alice", "album", "First"); got != "Playback loaded successfully." {
			t.Errorf("Expected album loadable, got: %s", got)
		}
		if got := c.Load("bob", "song", "One"); got != "Playback loaded successfully." {
			t.Errorf("Expected album song in the global list, got: %s", got)
		}
	})

	t.Run("duplicate names are rejected", func(t *testing.T) {
		if got := c.AddAlbum("ray", "First", "again", 2021, nil); got != "ray has another album with the same name." {
			t.Errorf("Unexpected message: %s", got)
		}
		dup := []library.SongSeed{{Name: "Same"}, {Name: "Same"}}
		if got := c.AddAlbum("ray", "Second", "x", 2021, dup); got != "ray has the same song at least twice in this album." {
			t.Errorf("Unexpected message: %s", got)
		}
	})

	t.Run("non-artists cannot add albums", func(t *testing.T) {
		if got := c.AddAlbum("alice", "Nope", "x", 2021, nil); got != "alice is not an artist." {
			t.Errorf("Unexpected message: %s", got)
		}
		if got := c.AddAlbum("ghost", "Nope", "x", 2021, nil); got != "The username ghost doesn't exist." {
			t.Errorf("Unexpected message: %s", got)
		}
	})

	t.Run("removal is blocked while referenced", func(t *testing.T) {
		// alice still has the album loaded, bob plays one of its songs
		if got := c.RemoveAlbum("ray", "First"); got != "ray can't delete this album." {
			t.Errorf("Unexpected message: %s", got)
		}
	})

	t.Run("removal cascades once unreferenced", func(t *testing.T) {
		c.Load("alice", "song", "Aurora")
		c.Load("bob", "song", "Ember")
		if got := c.RemoveAlbum("ray", "First"); got != "ray deleted the album successfully." {
			t.Errorf("Unexpected message: %s", got)
		}
		if got := c.Load("alice", "song", "One"); got != "The selected source doesn't exist." {
			t.Errorf("Expected album songs gone from the global list, got: %s", got)
		}
	})

	t.Run("missing album", func(t *testing.T) {
		if got := c.RemoveAlbum("ray", "Nope"); got != "ray doesn't have an album with the given name." {
			t.Errorf("Unexpected message: %s", got)
		}
	})
}

func TestPodcasts(t *testing.T) {
	c := newCatalog()
	c.AddUser("dan", "host", 40, "Rome")
	episodes := []library.EpisodeSeed{{Name: "Intro", Duration: 300, Description: "hello"}}

	if got := c.AddPodcast("dan", "Waves", episodes); got != "dan has added new podcast successfully." {
		t.Errorf("Unexpected message: %s", got)
	}
	if got := c.AddPodcast("dan", "Waves", episodes); got != "dan has another podcast with the same name." {
		t.Errorf("Unexpected message: %s", got)
	}
	if got := c.AddPodcast("alice", "Nope", episodes); got != "alice is not a host." {
		t.Errorf("Unexpected message: %s", got)
	}

	t.Run("removal is blocked while playing", func(t *testing.T) {
		c.Load("alice", "podcast", "Waves")
		if got := c.RemovePodcast("dan", "Waves"); got != "dan can't delete this podcast." {
			t.Errorf("Unexpected message: %s", got)
		}
		c.Load("alice", "song", "Aurora")
		if got := c.RemovePodcast("dan", "Waves"); got != "dan deleted the podcast successfully." {
			t.Errorf("Unexpected message: %s", got)
		}
	})
}

func TestEvents(t *testing.T) {
	c := newCatalog()
	c.AddUser("ray", "artist", 33, "Oslo")

	tests := []struct {
		name string
		date string
		want string
	}{
		{"Launch", "10-05-2022", "ray has added new event successfully."},
		{"BadFeb", "30-02-2022", "Event for ray does not have a valid date."},
		{"BadYear", "10-05-2024", "Event for ray does not have a valid date."},
		{"BadFormat", "2022-05-10", "Event for ray does not have a valid date."},
		{"Garbage", "aa-bb-cccc", "Event for ray does not have a valid date."},
	}
	for _, tt := range tests {
		if got := c.AddEvent("ray", tt.name, "desc", tt.date); got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.want, got)
		}
	}

	if got := c.AddEvent("ray", "Launch", "desc", "10-05-2022"); got != "ray has another event with the same name." {
		t.Errorf("Unexpected message: %s", got)
	}
	if got := c.RemoveEvent("ray", "Launch"); got != "ray deleted the event successfully." {
		t.Errorf("Unexpected message: %s", got)
	}
	if got := c.RemoveEvent("ray", "Launch"); got != "ray doesn't have an event with the given name." {
		t.Errorf("Unexpected message: %s", got)
	}
}

func TestMerch(t *testing.T) {
	c := newCatalog()
	c.AddUser("ray", "artist", 33, "Oslo")

	if got := c.AddMerch("ray", "Shirt", "tour tee", 25); got != "ray has added new merchandise successfully." {
		t.Errorf("Unexpected message: %s", got)
	}
	if got := c.AddMerch("ray", "Shirt", "again", 30); got != "ray has merchandise with the same name." {
		t.Errorf("Unexpected message: %s", got)
	}
	if got := c.AddMerch("ray", "Hat", "x", -5); got != "Price for merchandise can not be negative." {
		t.Errorf("Unexpected message: %s", got)
	}
}

func TestAnnouncements(t *testing.T) {
	c := newCatalog()
	c.AddUser("dan", "host", 40, "Rome")

	if got := c.AddAnnouncement("dan", "Break", "back soon"); got != "dan has successfully added new announcement." {
		t.Errorf("Unexpected message: %s", got)
	}
	if got := c.AddAnnouncement("dan", "Break", "again"); got != "dan has already added an announcement with this name." {
		t.Errorf("Unexpected message: %s", got)
	}
	if got := c.RemoveAnnouncement("dan", "Break"); got != "dan has successfully deleted the announcement." {
		t.Errorf("Unexpected message: %s", got)
	}
	if got := c.RemoveAnnouncement("dan", "Break"); got != "dan has no announcement with the given name." {
		t.Errorf("Unexpected message: %s", got)
	}
}

func TestDeleteUser(t *testing.T) {
	t.Run("listener with a loaded playlist is protected", func(t *testing.T) {
		c := newCatalog()
		c.CreatePlaylist("alice", "Mix")
		c.Load("alice", "song", "Aurora")
		c.AddRemoveInPlaylist("alice", 1)
		c.Load("bob", "playlist", "Mix")

		if got := c.DeleteUser("alice"); got != "alice can't be deleted." {
			t.Errorf("Unexpected message: %s", got)
		}

		// once bob goes offline the playback reference no longer counts
		c.SwitchStatus("bob")
		if got := c.DeleteUser("alice"); got != "alice was successfully deleted." {
			t.Errorf("Unexpected message: %s", got)
		}
	})

	t.Run("deleting a listener unwinds likes and follows", func(t *testing.T) {
		c := newCatalog()
		c.CreatePlaylist("bob", "Grooves")
		c.Load("bob", "song", "Ember")
		c.AddRemoveInPlaylist("bob", 1)
		c.Load("alice", "song", "Aurora")
		c.Like("alice")
		c.FollowPlaylist("alice", "bob", "Grooves")

		if got := c.DeleteUser("alice"); got != "alice was successfully deleted." {
			t.Fatalf("Unexpected message: %s", got)
		}
		for _, s := range c.Songs() {
			if s.Title == "Aurora" && s.Likes != 0 {
				t.Errorf("Expected alice's like unwound, got %d", s.Likes)
			}
		}
		for _, p := range c.Playlists() {
			if p.Title == "Grooves" && p.Followers != 0 {
				t.Errorf("Expected alice's follow unwound, got %d", p.Followers)
			}
		}
	})

	t.Run("artist with playback references is protected", func(t *testing.T) {
		c := newCatalog()
		c.AddUser("ray", "artist", 33, "Oslo")
		c.AddAlbum("ray", "First", "debut", 2021, []library.SongSeed{{Name: "One", Duration: 100}})
		c.Load("alice", "song", "One")

		if got := c.DeleteUser("ray"); got != "ray can't be deleted." {
			t.Errorf("Unexpected message: %s", got)
		}

		c.Load("alice", "song", "Aurora")
		if got := c.DeleteUser("ray"); got != "ray was successfully deleted." {
			t.Errorf("Unexpected message: %s", got)
		}
		if got := c.Load("alice", "song", "One"); got != "The selected source doesn't exist." {
			t.Errorf("Expected the artist's songs removed, got: %s", got)
		}
	})

	t.Run("host with a visited page is protected", func(t *testing.T) {
		c := newCatalog()
		c.AddUser("dan", "host", 40, "Rome")
		c.AddPodcast("dan", "Waves", []library.EpisodeSeed{{Name: "Intro", Duration: 300}})
		c.Load("alice", "podcast", "Waves")
		c.ChangePage("alice", "Host")
		c.Load("alice", "song", "Aurora")

		if got := c.DeleteUser("dan"); got != "dan can't be deleted." {
			t.Errorf("Unexpected message: %s", got)
		}

		c.ChangePage("alice", "Home")
		if got := c.DeleteUser("dan"); got != "dan was successfully deleted." {
			t.Errorf("Unexpected message: %s", got)
		}
	})

	t.Run("unknown username", func(t *testing.T) {
		c := newCatalog()
		if got := c.DeleteUser("ghost"); got != "The username ghost doesn't exist." {
			t.Errorf("Unexpected message: %s", got)
		}
	})
}

func TestPages(t *testing.T) {
	c := newCatalog()
	c.AddUser("nova", "artist", 30, "Oslo")

	t.Run("artist page resolves through the playing song", func(t *testing.T) {
		c.Load("alice", "song", "Aurora")
		if got := c.ChangePage("alice", "Artist"); got != "alice accessed Artist successfully." {
			t.Errorf("Unexpected message: %s", got)
		}
	})

	t.Run("subscribe toggles on the creator page", func(t *testing.T) {
		if got := c.Subscribe("alice"); got != "alice subscribed to nova successfully." {
			t.Errorf("Unexpected message: %s", got)
		}
		if got := c.Subscribe("alice"); got != "alice unsubscribed from nova successfully." {
			t.Errorf("Unexpected message: %s", got)
		}
		if got := c.Subscribe("bob"); got != "To subscribe you need to be on the page of an artist or host." {
			t.Errorf("Unexpected message: %s", got)
		}
	})

	t.Run("navigation history", func(t *testing.T) {
		c.ChangePage("alice", "Home")
		if got := c.PreviousPage("alice"); got != "The user alice has navigated successfully to the previous page." {
			t.Errorf("Unexpected message: %s", got)
		}
		if got := c.NextPage("alice"); got != "The user alice has navigated successfully to the next page." {
			t.Errorf("Unexpected message: %s", got)
		}
		if got := c.NextPage("alice"); got != "There are no pages left to go forward." {
			t.Errorf("Unexpected message: %s", got)
		}
	})

	t.Run("unknown pages are rejected", func(t *testing.T) {
		if got := c.ChangePage("alice", "Nope"); got != "alice is trying to access a non-existent page." {
			t.Errorf("Unexpected message: %s", got)
		}
		c.Load("bob", "podcast", "Talks")
		if got := c.ChangePage("bob", "Artist"); got != "bob is trying to access a non-existent page." {
			t.Errorf("Unexpected message: %s", got)
		}
	})

	t.Run("print current page", func(t *testing.T) {
		c.ChangePage("alice", "Home")
		out := c.PrintCurrentPage("alice")
		if !strings.Contains(out, "Liked songs:") || !strings.Contains(out, "Playlists recommendations:") {
			t.Errorf("Unexpected home page output:\n%s", out)
		}
	})
}

func TestNotificationsFlow(t *testing.T) {
	c := newCatalog()
	c.AddUser("nova", "artist", 30, "Oslo")
	c.Load("alice", "song", "Aurora")
	c.ChangePage("alice", "Artist")
	c.Subscribe("alice")

	c.AddAlbum("nova", "Dusk", "second", 2022, nil)
	c.AddMerch("nova", "Shirt", "tee", 20)

	notifications, errMsg := c.Notifications("alice")
	if errMsg != "" {
		t.Fatalf("Unexpected error: %s", errMsg)
	}
	if len(notifications) != 2 {
		t.Fatalf("Expected 2 notifications, got %d", len(notifications))
	}
	if notifications[0].Name != "New Album" || notifications[1].Name != "New Merchandise" {
		t.Errorf("Unexpected notifications: %v", notifications)
	}

	// a second read finds the inbox drained
	notifications, _ = c.Notifications("alice")
	if len(notifications) != 0 {
		t.Errorf("Expected drained inbox, got %v", notifications)
	}

	if _, errMsg := c.Notifications("ghost"); errMsg != "The username ghost doesn't exist." {
		t.Errorf("Unexpected error: %s", errMsg)
	}
}

func TestWrappedAndRecommendations(t *testing.T) {
	c := newCatalog()
	c.AddUser("nova", "artist", 30, "Oslo")

	t.Run("no data before any completion", func(t *testing.T) {
		if _, errMsg := c.Wrapped("alice"); errMsg != "No data to show for user alice." {
			t.Errorf("Unexpected error: %s", errMsg)
		}
	})

	t.Run("completions feed the summary", func(t *testing.T) {
		c.Load("alice", "song", "Aurora")
		c.AdvanceTime(200) // Aurora plays out
		summary, errMsg := c.Wrapped("alice")
		if errMsg != "" {
			t.Fatalf("Unexpected error: %s", errMsg)
		}
		if len(summary.TopSongs) != 1 || summary.TopSongs[0].Name != "Aurora" {
			t.Errorf("Unexpected top songs: %v", summary.TopSongs)
		}
		if len(summary.TopArtists) != 1 || summary.TopArtists[0].Name != "nova" {
			t.Errorf("Unexpected top artists: %v", summary.TopArtists)
		}
	})

	t.Run("song recommendation marks artist interest", func(t *testing.T) {
		c.Load("alice", "song", "Aurora")
		c.AdvanceTime(260) // 60s listened
		if got := c.UpdateRecommendations("alice", "random_song"); got != "The recommendations for user alice have been updated successfully." {
			t.Errorf("Unexpected message: %s", got)
		}

		summary := c.EndProgram()
		if _, ok := summary["nova"]; !ok {
			t.Errorf("Expected nova in the end-of-run summary, got %v", summary)
		}
	})

	t.Run("invalid recommendation type", func(t *testing.T) {
		if got := c.UpdateRecommendations("alice", "nope"); got != "Invalid recommendation type." {
			t.Errorf("Unexpected message: %s", got)
		}
		if got := c.UpdateRecommendations("nova", "random_song"); got != "nova is not a normal user." {
			t.Errorf("Unexpected message: %s", got)
		}
	})
}

func TestTop5(t *testing.T) {
	c := newCatalog()
	c.Load("alice", "song", "Ember")
	c.Like("alice")
	c.Load("bob", "song", "Ember")
	c.Like("bob")
	c.Load("alice", "song", "Aurora")
	c.Like("alice")

	want := []string{"Ember", "Aurora", "Polar"}
	if got := c.Top5Songs(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}
