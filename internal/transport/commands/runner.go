// Package commands decodes the timestamped command stream, dispatches each
// record to the platform handlers and accumulates the JSON-serializable
// output nodes.
package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/waveline/waveline/internal/domain/account"
	"github.com/waveline/waveline/internal/domain/library"
	"github.com/waveline/waveline/internal/domain/platform"
)

// Command is one decoded input record. Only the fields relevant to the given
// command type are populated.
type Command struct {
	Command   string `json:"command"`
	Username  string `json:"username,omitempty"`
	Timestamp int    `json:"timestamp"`

	Type        string  `json:"type,omitempty"`
	Name        string  `json:"name,omitempty"`
	Age         int     `json:"age,omitempty"`
	City        string  `json:"city,omitempty"`
	Description string  `json:"description,omitempty"`
	Date        string  `json:"date,omitempty"`
	Price       float64 `json:"price,omitempty"`
	ReleaseYear int     `json:"releaseYear,omitempty"`

	Songs    []library.SongSeed    `json:"songs,omitempty"`
	Episodes []library.EpisodeSeed `json:"episodes,omitempty"`

	PlaylistName string `json:"playlistName,omitempty"`
	PlaylistID   int    `json:"playlistId,omitempty"`
	Owner        string `json:"owner,omitempty"`

	Seed               int64  `json:"seed,omitempty"`
	NextPage           string `json:"nextPage,omitempty"`
	RecommendationType string `json:"recommendationType,omitempty"`
}

// Read decodes a command file: a JSON array of records in timestamp
// non-decreasing order.
func Read(path string) ([]Command, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read commands file: %w", err)
	}
	var cmds []Command
	if err := json.Unmarshal(data, &cmds); err != nil {
		return nil, fmt.Errorf("failed to unmarshal commands file: %w", err)
	}
	return cmds, nil
}

// Runner drives a catalog through a command stream.
type Runner struct {
	catalog *platform.Catalog
}

// NewRunner creates a runner over the given catalog.
func NewRunner(catalog *platform.Catalog) *Runner {
	return &Runner{catalog: catalog}
}

// Run executes every command in order, advancing the simulation clock before
// each one, and finishes with the end-of-run artist summary node. The only
// error it returns is a timestamp regression, which aborts the run.
func (r *Runner) Run(cmds []Command) ([]map[string]any, error) {
	results := make([]map[string]any, 0, len(cmds)+1)

	for _, cmd := range cmds {
		if err := r.catalog.AdvanceTime(cmd.Timestamp); err != nil {
			return nil, err
		}
		results = append(results, r.dispatch(cmd))
	}

	results = append(results, map[string]any{
		"command": "endProgram",
		"result":  r.catalog.EndProgram(),
	})
	return results, nil
}

// dispatch routes a single command to its handler and shapes the output node.
func (r *Runner) dispatch(cmd Command) map[string]any {
	log.Debug().Str("command", cmd.Command).Str("user", cmd.Username).Int("timestamp", cmd.Timestamp).Msg("Dispatching command")

	c := r.catalog
	switch cmd.Command {
	case "addUser":
		return message(cmd, c.AddUser(cmd.Username, account.Kind(cmd.Type), cmd.Age, cmd.City))
	case "deleteUser":
		return message(cmd, c.DeleteUser(cmd.Username))
	case "switchConnectionStatus":
		return message(cmd, c.SwitchStatus(cmd.Username))
	case "getOnlineUsers":
		return result(cmd, stringList(c.OnlineUsers()))
	case "getAllUsers":
		return result(cmd, stringList(c.AllUsers()))

	case "addAlbum":
		return message(cmd, c.AddAlbum(cmd.Username, cmd.Name, cmd.Description, cmd.ReleaseYear, cmd.Songs))
	case "removeAlbum":
		return message(cmd, c.RemoveAlbum(cmd.Username, cmd.Name))
	case "addPodcast":
		return message(cmd, c.AddPodcast(cmd.Username, cmd.Name, cmd.Episodes))
	case "removePodcast":
		return message(cmd, c.RemovePodcast(cmd.Username, cmd.Name))
	case "addEvent":
		return message(cmd, c.AddEvent(cmd.Username, cmd.Name, cmd.Description, cmd.Date))
	case "removeEvent":
		return message(cmd, c.RemoveEvent(cmd.Username, cmd.Name))
	case "addMerch":
		return message(cmd, c.AddMerch(cmd.Username, cmd.Name, cmd.Description, cmd.Price))
	case "addAnnouncement":
		return message(cmd, c.AddAnnouncement(cmd.Username, cmd.Name, cmd.Description))
	case "removeAnnouncement":
		return message(cmd, c.RemoveAnnouncement(cmd.Username, cmd.Name))

	case "changePage":
		return message(cmd, c.ChangePage(cmd.Username, cmd.NextPage))
	case "printCurrentPage":
		return message(cmd, c.PrintCurrentPage(cmd.Username))
	case "previousPage":
		return message(cmd, c.PreviousPage(cmd.Username))
	case "nextPage":
		return message(cmd, c.NextPage(cmd.Username))
	case "subscribe":
		return message(cmd, c.Subscribe(cmd.Username))
	case "getNotifications":
		notifications, errMsg := c.Notifications(cmd.Username)
		if errMsg != "" {
			return message(cmd, errMsg)
		}
		node := base(cmd)
		node["notifications"] = notifications
		return node

	case "createPlaylist":
		return message(cmd, c.CreatePlaylist(cmd.Username, cmd.PlaylistName))
	case "addRemoveInPlaylist":
		return message(cmd, c.AddRemoveInPlaylist(cmd.Username, cmd.PlaylistID))
	case "switchVisibility":
		return message(cmd, c.SwitchVisibility(cmd.Username, cmd.PlaylistID))
	case "follow":
		return message(cmd, c.FollowPlaylist(cmd.Username, cmd.Owner, cmd.PlaylistName))
	case "like":
		return message(cmd, c.Like(cmd.Username))

	case "load":
		return message(cmd, c.Load(cmd.Username, cmd.Type, cmd.Name))
	case "playPause":
		return message(cmd, c.PlayPause(cmd.Username))
	case "repeat":
		return message(cmd, c.CycleRepeat(cmd.Username))
	case "shuffle":
		return message(cmd, c.ToggleShuffle(cmd.Username, cmd.Seed))
	case "next":
		return message(cmd, c.Next(cmd.Username))
	case "prev":
		return message(cmd, c.Prev(cmd.Username))
	case "forward":
		return message(cmd, c.Forward(cmd.Username))
	case "backward":
		return message(cmd, c.Backward(cmd.Username))
	case "status":
		status, errMsg := c.PlayerStatus(cmd.Username)
		if errMsg != "" {
			return message(cmd, errMsg)
		}
		node := base(cmd)
		node["stats"] = map[string]any{
			"name":         status.Name,
			"remainedTime": status.Remaining,
			"repeat":       status.Repeat.String(),
			"shuffle":      status.Shuffle,
			"paused":       status.Paused,
		}
		return node

	case "wrapped":
		summary, errMsg := c.Wrapped(cmd.Username)
		if errMsg != "" {
			return message(cmd, errMsg)
		}
		node := base(cmd)
		node["result"] = summary
		return node
	case "updateRecommendations":
		return message(cmd, c.UpdateRecommendations(cmd.Username, cmd.RecommendationType))

	case "getTop5Songs":
		return result(cmd, stringList(c.Top5Songs()))
	case "getTop5Albums":
		return result(cmd, stringList(c.Top5Albums()))
	case "getTop5Artists":
		return result(cmd, stringList(c.Top5Artists()))
	case "getTop5Playlists":
		return result(cmd, stringList(c.Top5Playlists()))
	}

	log.Warn().Str("command", cmd.Command).Msg("Unknown command")
	return message(cmd, fmt.Sprintf("Unknown command %s.", cmd.Command))
}

// WriteResults renders the output nodes as indented JSON.
func WriteResults(path string, results []map[string]any) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write results file: %w", err)
	}
	return nil
}

func base(cmd Command) map[string]any {
	node := map[string]any{
		"command":   cmd.Command,
		"timestamp": cmd.Timestamp,
	}
	if cmd.Username != "" {
		node["user"] = cmd.Username
	}
	return node
}

func message(cmd Command, msg string) map[string]any {
	node := base(cmd)
	node["message"] = msg
	return node
}

func result(cmd Command, value any) map[string]any {
	node := base(cmd)
	node["result"] = value
	return node
}

// stringList keeps empty query results serializing as [] instead of null.
func stringList(names []string) []string {
	if names == nil {
		return []string{}
	}
	return names
}
