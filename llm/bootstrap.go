package llm

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"
)

// SetupResult reports the outcome of the one-shot provider bootstrap.
type SetupResult struct {
	OK      bool
	Message string
}

// EnsureOllamaReady verifies the configured Ollama backend is usable.
//
// Cloud mode (base URL on ollama.com): requires an API key and only checks
// connectivity. Local mode: probes the server, starts `ollama serve` when it
// is down, and pulls the model when it is missing. Progress lines go to the
// callback; the call blocks until the backend is ready or unrecoverable.
func EnsureOllamaReady(ctx context.Context, baseURL, apiKey, model string, progress func(string), logger *zap.Logger) SetupResult {
	if logger == nil {
		logger = zap.NewNop()
	}
	log := func(line string) {
		logger.Info(line)
		if progress != nil {
			progress(line)
		}
	}

	baseURL = strings.TrimSpace(baseURL)
	model = strings.TrimSpace(model)

	if strings.Contains(strings.ToLower(baseURL), "ollama.com") {
		return ensureOllamaCloud(ctx, baseURL, apiKey, model, log)
	}
	return ensureOllamaLocal(ctx, baseURL, model, log)
}

func ensureOllamaCloud(ctx context.Context, baseURL, apiKey, model string, log func(string)) SetupResult {
	if apiKey == "" {
		return SetupResult{
			OK: false,
			Message: "Používáš Ollama Cloud (ollama.com), ale chybí OLLAMA_API_KEY. " +
				"Vytvoř API key na ollama.com, ulož ho do .env a restartuj aplikaci.",
		}
	}

	log("Kontroluji připojení k Ollama Cloud…")
	if err := probeTags(ctx, baseURL, apiKey, 30*time.Second); err != nil {
		return SetupResult{OK: false, Message: fmt.Sprintf("Nelze se připojit k Ollama Cloud: %v", err)}
	}
	log("Ollama Cloud je dostupná.")
	return SetupResult{OK: true, Message: fmt.Sprintf("Ollama Cloud připravena (model: %s).", model)}
}

func ensureOllamaLocal(ctx context.Context, baseURL, model string, log func(string)) SetupResult {
	cli := findOllamaCLI()
	if cli == "" {
		return SetupResult{
			OK:      false,
			Message: "Ollama není nainstalovaná nebo ji nemohu najít. Nainstaluj Ollamu a zkus to znovu.",
		}
	}

	// 1. Server reachability; try to start it when down.
	log("Kontroluji Ollama server…")
	if err := probeTags(ctx, baseURL, "", 5*time.Second); err != nil {
		log("Server neběží, zkouším spustit…")
		if err := startOllamaServer(cli); err != nil {
			return SetupResult{OK: false, Message: "Nepodařilo se spustit Ollama server."}
		}
		time.Sleep(1500 * time.Millisecond)
		if err := probeTags(ctx, baseURL, "", 10*time.Second); err != nil {
			return SetupResult{OK: false, Message: "Ollama server neběží ani po spuštění."}
		}
	}
	log("Server běží.")

	// 2. Model presence; pull when missing.
	names, err := listModels(ctx, baseURL)
	if err != nil {
		return SetupResult{OK: false, Message: fmt.Sprintf("Nepodařilo se ověřit dostupné modely: %v", err)}
	}
	if !containsModel(names, model) {
		log(fmt.Sprintf("Model %s není stažený, stahuji… (může to trvat)", model))
		if err := pullModel(ctx, cli, model, log); err != nil {
			return SetupResult{
				OK:      false,
				Message: fmt.Sprintf("Stažení modelu selhalo: %v. Zkus v terminálu: ollama pull %s", err, model),
			}
		}
		log("Model stažen.")
	} else {
		log("Model už je k dispozici.")
	}

	return SetupResult{OK: true, Message: fmt.Sprintf("Ollama připravena (model: %s).", model)}
}

// findOllamaCLI locates the ollama executable on PATH, with an env override
// for installs the PATH misses.
func findOllamaCLI() string {
	if path, err := exec.LookPath("ollama"); err == nil {
		return path
	}
	if envPath := strings.TrimSpace(os.Getenv("OLLAMA_CLI_PATH")); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	return ""
}

// startOllamaServer spawns `ollama serve` detached. If the server is already
// running the spawned process exits on its own.
func startOllamaServer(cli string) error {
	cmd := exec.Command(cli, "serve")
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Start()
}

// pullModel runs `ollama pull` and streams its output to the progress log.
func pullModel(ctx context.Context, cli, model string, log func(string)) error {
	cmd := exec.CommandContext(ctx, cli, "pull", model)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return err
	}
	cmd.Stderr = cmd.Stdout
	if err := cmd.Start(); err != nil {
		return err
	}

	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			log(line)
		}
	}
	return cmd.Wait()
}

type ollamaTagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

func fetchTags(ctx context.Context, baseURL, apiKey string, timeout time.Duration) (*ollamaTagsResponse, error) {
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, ollamaAPIURL(baseURL, "/tags"), nil)
	if err != nil {
		return nil, err
	}
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned %d", resp.StatusCode)
	}

	var tags ollamaTagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return nil, err
	}
	return &tags, nil
}

func probeTags(ctx context.Context, baseURL, apiKey string, timeout time.Duration) error {
	_, err := fetchTags(ctx, baseURL, apiKey, timeout)
	return err
}

func listModels(ctx context.Context, baseURL string) ([]string, error) {
	tags, err := fetchTags(ctx, baseURL, "", 10*time.Second)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(tags.Models))
	for _, m := range tags.Models {
		names = append(names, m.Name)
	}
	return names, nil
}

func containsModel(names []string, model string) bool {
	want := strings.ToLower(strings.TrimSpace(model))
	for _, name := range names {
		if strings.ToLower(strings.TrimSpace(name)) == want {
			return true
		}
	}
	return false
}
