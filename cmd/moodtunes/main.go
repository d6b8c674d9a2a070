// Command moodtunes generates music from moods. It renders tracks from
// the command line or serves the track library over HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/rbrindha8-hub/moodtunes/internal/db"
	"github.com/rbrindha8-hub/moodtunes/internal/encode"
	"github.com/rbrindha8-hub/moodtunes/internal/mood"
	"github.com/rbrindha8-hub/moodtunes/internal/playback"
	"github.com/rbrindha8-hub/moodtunes/internal/synth"
	"github.com/rbrindha8-hub/moodtunes/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) < 2 {
		usage()
		return fmt.Errorf("missing command")
	}

	switch os.Args[1] {
	case "serve":
		return runServe(os.Args[2:])
	case "render":
		return runRender(os.Args[2:])
	default:
		usage()
		return fmt.Errorf("unknown command %q", os.Args[1])
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage:
  moodtunes serve [-addr host:port]
  moodtunes render (-text "..." | -mood name) [-out file.wav] [-play] [-seed n]`)
}

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := fs.String("addr", web.DefaultAddr, "listen address")
	if err := fs.Parse(args); err != nil {
		return err
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("please set the DATABASE_URL environment variable")
	}

	ctx := context.Background()
	database, err := db.New(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("preparing schema: %w", err)
	}

	server := web.NewServer(web.ServerConfig{
		Addr:  *addr,
		Store: database.Tracks(),
	})
	return server.Run()
}

func runRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	text := fs.String("text", "", "free text describing how you feel")
	moodName := fs.String("mood", "", "explicit mood name (see -mood list)")
	out := fs.String("out", "", "write the rendered track to this WAV file")
	play := fs.Bool("play", false, "play the rendered track")
	seed := fs.Int64("seed", 0, "noise seed; 0 uses the clock")
	workers := fs.Int("workers", 1, "parallel render workers")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *moodName == "list" {
		for _, m := range mood.All {
			p := mood.ParamsFor(m)
			fmt.Printf("%-12s %3d bpm, %s %s, %s\n", m, p.Tempo, p.Key, p.Scale, p.Rhythm)
		}
		return nil
	}

	if (*text == "") == (*moodName == "") {
		return fmt.Errorf("provide exactly one of -text or -mood")
	}
	if *out == "" && !*play {
		return fmt.Errorf("nothing to do: pass -out, -play, or both")
	}

	var m mood.Mood
	if *text != "" {
		var confidence float64
		m, confidence = mood.Classify(*text)
		log.Printf("Classified mood: %s (confidence %.2f)", m, confidence)
	} else {
		m = mood.Mood(strings.ToLower(*moodName))
	}

	params := mood.ParamsFor(m)
	log.Printf("Rendering: %d bpm, %s %s, %s rhythm", params.Tempo, params.Key, params.Scale, params.Rhythm)

	renderer := &synth.Renderer{
		Workers: *workers,
		Seed:    *seed,
	}
	buf, err := renderer.Render(context.Background(), params)
	if err != nil {
		return fmt.Errorf("rendering: %w", err)
	}

	if *out != "" {
		if err := writeWAVFile(*out, buf); err != nil {
			return err
		}
		log.Printf("Wrote %s (%.0fs)", *out, buf.Duration())
	}

	if *play {
		player, err := playback.NewPlayer(buf)
		if err != nil {
			return fmt.Errorf("starting playback: %w", err)
		}
		log.Printf("Playing %.0fs track...", buf.Duration())
		player.Play()
		player.Wait()
	}
	return nil
}

func writeWAVFile(path string, buf *synth.Buffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := encode.WriteWAV(f, buf); err != nil {
		f.Close()
		return fmt.Errorf("encoding WAV: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}
	return nil
}
