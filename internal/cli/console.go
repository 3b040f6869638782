package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	json "github.com/goccy/go-json"
)

// Console defaults.
const (
	consoleTopK    = 5
	exportFile     = "events_export.json"
	historyTail    = 5
	exportFileMode = 0o600

	// descriptionPreview caps how much of an event description a
	// recommendation card prints.
	descriptionPreview = 150
)

// Console runs the interactive command loop against a Client.
type Console struct {
	client *Client
	in     io.Reader
	out    io.Writer
}

// NewConsole creates a console bound to the given client and streams.
func NewConsole(client *Client, in io.Reader, out io.Writer) *Console {
	return &Console{client: client, in: in, out: out}
}

// Run reads commands until EOF or "quit". Unknown input is treated as a
// profile description and answered with recommendations.
func (c *Console) Run(ctx context.Context) error {
	c.banner()

	scanner := bufio.NewScanner(c.in)
	for {
		fmt.Fprint(c.out, "\nEnter your profile or command: ")
		if !scanner.Scan() {
			fmt.Fprintln(c.out)
			return scanner.Err()
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		switch {
		case strings.EqualFold(input, "quit"):
			fmt.Fprintln(c.out, "\nThank you for using the Davos Event Navigator!")
			return nil
		case strings.EqualFold(input, "tracks"):
			c.showTracks(ctx)
		case strings.EqualFold(input, "all"):
			c.showAllEvents(ctx)
		case strings.EqualFold(input, "export"):
			c.exportEvents(ctx)
		case strings.EqualFold(input, "history"):
			c.showHistory(ctx)
		case strings.HasPrefix(strings.ToLower(input), "search "):
			c.search(ctx, strings.TrimSpace(input[len("search "):]))
		default:
			c.recommend(ctx, input)
		}
	}
}

func (c *Console) banner() {
	fmt.Fprintln(c.out, strings.Repeat("=", 70))
	fmt.Fprintln(c.out, "   DAVOS 2026 - INTELLIGENT EVENT RECOMMENDATION SYSTEM")
	fmt.Fprintln(c.out, strings.Repeat("=", 70))
	fmt.Fprintln(c.out, "\nCommands:")
	fmt.Fprintln(c.out, "  - Enter your profile description for personalized recommendations")
	fmt.Fprintln(c.out, "  - Paste your LinkedIn URL (e.g., linkedin.com/in/yourname)")
	fmt.Fprintln(c.out, "  - 'search <query>'  search for specific topics")
	fmt.Fprintln(c.out, "  - 'tracks'          list all event tracks")
	fmt.Fprintln(c.out, "  - 'all'             list all events")
	fmt.Fprintln(c.out, "  - 'export'          export events as JSON")
	fmt.Fprintln(c.out, "  - 'history'         show recent interactions")
	fmt.Fprintln(c.out, "  - 'quit'            exit")
	fmt.Fprintln(c.out, strings.Repeat("=", 70))
}

func (c *Console) showTracks(ctx context.Context) {
	res, err := c.client.Tracks(ctx)
	if err != nil {
		c.fail(err)
		return
	}
	fmt.Fprintln(c.out, "\nAvailable Tracks:")
	for _, t := range res.Tracks {
		fmt.Fprintf(c.out, "   - %s (%d events)\n", t.Name, t.Count)
	}
}

func (c *Console) showAllEvents(ctx context.Context) {
	res, err := c.client.Events(ctx)
	if err != nil {
		c.fail(err)
		return
	}
	fmt.Fprintln(c.out, "\nAll Events:")
	for _, e := range res.Events {
		fmt.Fprintf(c.out, "   [%s] %s\n", e.ID, e.Title)
		fmt.Fprintf(c.out, "       %s | %s\n", e.Venue, e.StartTime)
	}
}

func (c *Console) exportEvents(ctx context.Context) {
	res, err := c.client.Events(ctx)
	if err != nil {
		c.fail(err)
		return
	}
	data, err := json.MarshalIndent(res.Events, "", "  ")
	if err != nil {
		c.fail(err)
		return
	}
	if err := os.WriteFile(exportFile, data, exportFileMode); err != nil {
		c.fail(err)
		return
	}
	fmt.Fprintf(c.out, "\nEvents exported to %s\n", exportFile)
}

func (c *Console) showHistory(ctx context.Context) {
	res, err := c.client.History(ctx)
	if err != nil {
		c.fail(err)
		return
	}
	fmt.Fprintf(c.out, "\nInteraction History (%d entries):\n", res.Count)
	entries := res.History
	if len(entries) > historyTail {
		entries = entries[len(entries)-historyTail:]
	}
	for _, entry := range entries {
		fmt.Fprintf(c.out, "   %s: %s\n", entry.Timestamp, entry.Action)
	}
}

func (c *Console) search(ctx context.Context, query string) {
	if query == "" {
		fmt.Fprintln(c.out, "\nUsage: search <query>")
		return
	}
	res, err := c.client.Search(ctx, query, consoleTopK)
	if err != nil {
		c.fail(err)
		return
	}
	fmt.Fprintf(c.out, "\nSearch Results for '%s':\n", query)
	for _, r := range res.Results {
		fmt.Fprintf(c.out, "\n   %s\n", r.Title)
		fmt.Fprintf(c.out, "      Score: %.1f%% | Track: %s\n", r.Score, r.Track)
		fmt.Fprintf(c.out, "      %s\n", r.Venue)
	}
}

func (c *Console) recommend(ctx context.Context, profileText string) {
	res, err := c.client.Recommend(ctx, profileText, consoleTopK)
	if err != nil {
		c.fail(err)
		return
	}

	if res.IsLinkedIn {
		fmt.Fprintln(c.out, "\nLinkedIn URL detected! Analyzing your professional profile...")
		if len(res.ProfileParsed.Skills) > 0 {
			fmt.Fprintf(c.out, "   Skills: %s\n", strings.Join(res.ProfileParsed.Skills, ", "))
		}
	}

	if len(res.Recommendations) == 0 {
		fmt.Fprintln(c.out, "\nNo matching events found. Try a different description.")
		return
	}

	source := "Your Profile"
	if res.IsLinkedIn {
		source = "LinkedIn Profile"
	}
	fmt.Fprintf(c.out, "\nTop %d Recommended Events (based on %s):\n", len(res.Recommendations), source)
	fmt.Fprintln(c.out, strings.Repeat("-", 70))

	for i, rec := range res.Recommendations {
		fmt.Fprintf(c.out, "\n%d. %s\n", i+1, rec.Title)
		fmt.Fprintf(c.out, "   Match: %.1f%% | Track: %s\n", rec.MatchPercentage, rec.Track)
		fmt.Fprintf(c.out, "   %s (%s)\n", rec.Venue, rec.Location)
		fmt.Fprintf(c.out, "   %s - %s\n", rec.StartTime, rec.EndTime)
		fmt.Fprintf(c.out, "   %s\n", rec.Explanation)
		if len(rec.Speakers) > 0 {
			fmt.Fprintf(c.out, "   Speakers: %s\n", strings.Join(rec.Speakers, ", "))
		}
		desc := rec.Description
		if len(desc) > descriptionPreview {
			desc = desc[:descriptionPreview] + "..."
		}
		fmt.Fprintf(c.out, "   %s\n", desc)
		fmt.Fprintln(c.out, strings.Repeat("-", 70))
	}
}

func (c *Console) fail(err error) {
	fmt.Fprintf(c.out, "\nAn error occurred: %v\n", err)
}
