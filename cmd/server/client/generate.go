package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/junglerando/rando-api/internal/artifact"
	"github.com/junglerando/rando-api/internal/errors"
	"github.com/junglerando/rando-api/internal/orchestrators/generation"
	"github.com/junglerando/rando-api/internal/patch"
	"github.com/junglerando/rando-api/internal/pkg/clock"
	"github.com/junglerando/rando-api/internal/pkg/idgen"
)

var (
	settingsFile string
	outDir       string
	romFile      string
	pollInterval time.Duration
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a seed and save the patch and spoiler log",
	Long: `Submit settings, poll until the seed is ready and unpack the artifact. Examples:

  client generate --settings settings.json --out seeds/
  client generate --rom base.z64 --out seeds/`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&settingsFile, "settings", "", "Settings JSON file (random seed with defaults when empty)")
	generateCmd.Flags().StringVar(&outDir, "out", ".", "Directory to write results to")
	generateCmd.Flags().StringVar(&romFile, "rom", "", "Base ROM to apply the patch to")
	generateCmd.Flags().DurationVar(&pollInterval, "interval", 2*time.Second, "Poll interval")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	var body []byte
	if settingsFile != "" {
		data, err := os.ReadFile(settingsFile)
		if err != nil {
			return fmt.Errorf("failed to read settings: %w", err)
		}
		body = data
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	key := idgen.NewTimestamp(clock.New()).Generate()
	colorSubtle.Printf("gen_key %s\n", key)

	a, err := Generate(ctx, &GenerateRequest{
		Client:   newHTTPClient(),
		BaseURL:  serverAddr,
		GenKey:   key,
		Settings: body,
		Interval: pollInterval,
		Progress: printProgress,
	})
	if err != nil {
		colorFailed.Printf("generation failed: %s\n", errors.GetMessage(err))
		return err
	}

	written, err := Save(a, outDir, romFile)
	if err != nil {
		return err
	}

	colorDone.Printf("seed %s ready\n", a.SeedID)
	fmt.Printf("  hash: %s\n", a.Hash)
	for _, path := range written {
		fmt.Printf("  wrote %s\n", path)
	}
	return nil
}

func printProgress(code int, body []byte) {
	switch code {
	case generation.StatusStarted:
		colorStatus.Println("job started")
	case generation.StatusQueued:
		var status struct {
			Position int `json:"position"`
		}
		_ = json.Unmarshal(body, &status)
		colorStatus.Printf("queued at position %d\n", status.Position)
	case generation.StatusRunning:
		colorStatus.Println("generating...")
	}
}

// GenerateRequest describes one generation round trip
type GenerateRequest struct {
	Client   *http.Client
	BaseURL  string
	GenKey   string
	Settings []byte
	Interval time.Duration
	// Progress is called with every non-terminal response. Optional.
	Progress func(code int, body []byte)
}

// Generate posts the settings, polls until the job is terminal and decodes
// the artifact
func Generate(ctx context.Context, req *GenerateRequest) (*artifact.Artifact, error) {
	endpoint, err := url.Parse(req.BaseURL)
	if err != nil {
		return nil, errors.InvalidArgumentf("invalid server address %q: %v", req.BaseURL, err)
	}
	endpoint = endpoint.JoinPath("generate")
	endpoint.RawQuery = url.Values{"gen_key": []string{req.GenKey}}.Encode()

	method, body := http.MethodPost, req.Settings
	if len(bytes.TrimSpace(body)) == 0 {
		// the server only starts a job for a request that carries settings
		body = []byte("{}")
	}
	for {
		code, data, err := send(ctx, req.Client, method, endpoint.String(), body)
		if err != nil {
			return nil, err
		}

		switch code {
		case generation.StatusReady:
			return artifact.Read(string(data))
		case generation.StatusFailed:
			return nil, errors.Newf(errors.CodeAborted, "%s", string(data))
		case generation.StatusMissingKey:
			return nil, errors.InvalidArgument("server did not receive a gen key")
		case generation.StatusStarted, generation.StatusQueued, generation.StatusRunning:
			if req.Progress != nil {
				req.Progress(code, data)
			}
		default:
			return nil, errors.Internalf("unexpected response %d: %s", code, bytes.TrimSpace(data))
		}

		// only the first request carries settings
		method, body = http.MethodGet, nil

		select {
		case <-ctx.Done():
			return nil, errors.FromContext(ctx)
		case <-time.After(req.Interval):
		}
	}
}

func send(ctx context.Context, client *http.Client, method, target string, body []byte) (int, []byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(body))
	if err != nil {
		return 0, nil, errors.Wrapf(err, "failed to build request")
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		if ctxErr := errors.FromContext(ctx); ctxErr != nil {
			return 0, nil, ctxErr
		}
		return 0, nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to reach server")
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, errors.Wrapf(err, "failed to read response")
	}
	return resp.StatusCode, data, nil
}

// Save writes the artifact's files to dir and returns their paths. With a
// base ROM the patched ROM is written too.
func Save(a *artifact.Artifact, dir, rom string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}

	files := []struct {
		name string
		data []byte
	}{
		{name: a.SeedID + ".patch", data: a.Patch},
		{name: a.SeedID + ".spoiler.json", data: a.SpoilerLog},
	}

	if rom != "" {
		base, err := os.ReadFile(rom)
		if err != nil {
			return nil, fmt.Errorf("failed to read rom: %w", err)
		}
		p, err := patch.Decode(a.Patch)
		if err != nil {
			return nil, fmt.Errorf("failed to decode patch: %w", err)
		}
		patched, err := p.Apply(base)
		if err != nil {
			return nil, fmt.Errorf("failed to apply patch: %w", err)
		}
		files = append(files, struct {
			name string
			data []byte
		}{name: a.SeedID + filepath.Ext(rom), data: patched})
	}

	written := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, f.data, 0o600); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
