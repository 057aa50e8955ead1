package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/quotient/internal/adapters/driven/config/file"
	"github.com/custodia-labs/quotient/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/quotient/internal/adapters/driven/fetch/web"
	"github.com/custodia-labs/quotient/internal/core/domain"
	"github.com/custodia-labs/quotient/internal/core/ports/driven"
	"github.com/custodia-labs/quotient/internal/core/ports/driving"
	"github.com/custodia-labs/quotient/internal/core/services"
	"github.com/custodia-labs/quotient/internal/logger"
	"github.com/custodia-labs/quotient/internal/normalisers"
)

// KeyLogJSON switches log output to JSON lines.
const KeyLogJSON = "log.json"

var (
	configDir    string
	verbose      bool
	outputAsJSON bool
	fetchRetries int
	fetchTimeout time.Duration
)

// Injected in tests. When nil they are built from configuration.
var (
	pipelineService driving.PipelineService
	configStore     driven.ConfigStore

	defaultConfigDir = file.DefaultDir
)

var rootCmd = &cobra.Command{
	Use:   "quotient <url> <mode> <quotient>",
	Short: "Chunk the sorted letters and digits of a web page",
	Long: `Fetches a URL, optionally strips HTML tags, then keeps only ASCII letters
and digits. Letters are sorted case-insensitively, digits ascending, and the
two are interleaved letter-first. The result is split into chunks of
<quotient> characters; a short final chunk is reported as the remainder.

Modes:
  html  - remove <...> tags before extraction
  text  - use the response body as-is`,
	Example: `  quotient http://example.com html 5
  quotient --json https://example.com/robots.txt text 3`,
	Args:          cobra.ExactArgs(3),
	SilenceUsage:  true,
	RunE:          runRoot,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default ~/.quotient)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log pipeline progress to stderr")

	rootCmd.Flags().BoolVar(&outputAsJSON, "json", false, "output the full report as JSON")
	rootCmd.Flags().IntVar(&fetchRetries, "retries", web.DefaultMaxRetries, "retries after a failed request")
	rootCmd.Flags().DurationVar(&fetchTimeout, "timeout", web.DefaultTimeout, "timeout for a single request")
}

// ExecuteContext runs the root command with ctx, so an interrupt
// cancels an in-flight fetch.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func runRoot(cmd *cobra.Command, args []string) error {
	req, err := parseRequest(args)
	if err != nil {
		return err
	}

	svc, err := resolvePipelineService(cmd)
	if err != nil {
		return err
	}

	report, err := svc.Run(cmd.Context(), req)
	if err != nil {
		return err
	}

	if outputAsJSON {
		return outputReportJSON(cmd, report)
	}
	return outputReport(cmd, report)
}

// parseRequest validates the positional arguments before anything
// touches the network.
func parseRequest(args []string) (domain.Request, error) {
	mode, err := domain.ParseMode(args[1])
	if err != nil {
		return domain.Request{}, err
	}

	n, err := strconv.Atoi(args[2])
	if err != nil {
		return domain.Request{}, fmt.Errorf("%w: %q is not an integer", domain.ErrInvalidChunkSize, args[2])
	}

	req := domain.Request{URL: args[0], Mode: mode, ChunkSize: n}
	if err := req.Validate(); err != nil {
		return domain.Request{}, err
	}
	return req, nil
}

func resolveConfigStore() (driven.ConfigStore, error) {
	if configStore != nil {
		return configStore, nil
	}
	dir := configDir
	if dir == "" {
		d, err := defaultConfigDir()
		if err != nil {
			// No home directory: run on defaults.
			return memory.NewConfigStore(nil), nil
		}
		dir = d
	}
	store, err := file.NewConfigStore(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return store, nil
}

func resolvePipelineService(cmd *cobra.Command) (driving.PipelineService, error) {
	if pipelineService != nil {
		return pipelineService, nil
	}

	store, err := resolveConfigStore()
	if err != nil {
		return nil, err
	}

	log := logger.New(logger.Options{
		Output:     cmd.ErrOrStderr(),
		Verbose:    verbose,
		JSON:       store.GetBool(KeyLogJSON),
		TimeFormat: time.TimeOnly,
	})

	fetcher := web.New(fetchConfig(cmd, store), web.WithLogger(log))
	fetchCfg := fetcher.Config()
	log.Debug("Fetch settings",
		"retries", fetchCfg.MaxRetries,
		"timeout", fetchCfg.Timeout,
		"rate", fetchCfg.RatePerSecond,
		"user_agent", fetchCfg.UserAgent,
	)
	return services.NewPipelineService(fetcher, normalisers.NewDefaultRegistry(), log), nil
}

// fetchConfig layers explicitly set flags over the config file.
func fetchConfig(cmd *cobra.Command, store driven.ConfigStore) web.Config {
	cfg := web.ConfigFromStore(store)
	if cmd.Flags().Changed("retries") {
		cfg.MaxRetries = fetchRetries
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = fetchTimeout
	}
	return cfg
}
