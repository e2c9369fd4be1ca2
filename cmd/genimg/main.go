package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/turricr/genimg/internal/artifact"
	"github.com/turricr/genimg/internal/config"
	"github.com/turricr/genimg/internal/detect"
	"github.com/turricr/genimg/internal/history"
	"github.com/turricr/genimg/internal/provider"
	"github.com/turricr/genimg/internal/provider/gemini"
	"github.com/turricr/genimg/internal/reference"
	"github.com/turricr/genimg/pkg/models"
)

var (
	version = "dev"
	commit  = "none"
)

var (
	flagOutput           string
	flagAsk              bool
	flagReferences       []string
	flagModel            string
	flagAspectRatio      string
	flagSize             string
	flagPersonGeneration string
	flagNoPeople         bool
	flagListModels       bool
	flagAPIKey           string
	flagHistoryLimit     int
)

type App struct {
	Out            io.Writer
	Err            io.Writer
	Registry       *models.Registry
	GetEnv         func(string) string
	Getwd          func() (string, error)
	Now            func() time.Time
	NewProvider    func(ctx context.Context, cfg *provider.Config) (provider.Provider, error)
	NewWriter      func() *artifact.Writer
	NewPrompter    func() artifact.Prompter
	LoadReferences func(paths []string) ([]models.Reference, error)
	OpenHistory    func() (*history.Store, error)
}

func DefaultApp() *App {
	return &App{
		Out:      os.Stdout,
		Err:      os.Stderr,
		Registry: models.DefaultRegistry(),
		GetEnv:   os.Getenv,
		Getwd:    os.Getwd,
		Now:      time.Now,
		NewProvider: func(ctx context.Context, cfg *provider.Config) (provider.Provider, error) {
			return gemini.New(ctx, cfg)
		},
		NewWriter: artifact.NewWriter,
		NewPrompter: func() artifact.Prompter {
			return artifact.NewStdinPrompter()
		},
		LoadReferences: reference.Load,
		OpenHistory:    history.NewStore,
	}
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	config.LoadDotenv()
	app := DefaultApp()
	rootCmd := newRootCmd(app)
	return rootCmd.Execute()
}

func newRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genimg [prompt]",
		Short: "Generate and edit images using Google's Gemini image models",
		Long: `genimg is a CLI tool for generating and editing images with Google's
Gemini image models.

Model tiers:
  - flash (gemini-2.5-flash-image): fast, no reference images, up to 2K
  - pro   (gemini-3-pro-image-preview): editing, up to 14 references, up to 4K

Examples:
  genimg "a sunset over mountains"
  genimg "a cat wearing sunglasses" -o ~/Desktop/cool-cat.png
  genimg "abstract art" --model pro --size 4K
  genimg "futuristic city" --ask
  genimg "pristine landscape" --no-people
  genimg "make it more vibrant" -r photo.jpg
  genimg "in watercolor style" -r ref1.jpg -r ref2.jpg`,
		Args:    cobra.MaximumNArgs(1),
		Version: fmt.Sprintf("%s (commit: %s)", version, commit),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, app)
		},
	}

	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output file path (auto-generated if not specified)")
	cmd.Flags().BoolVar(&flagAsk, "ask", false, "always ask for save location")
	cmd.Flags().StringArrayVarP(&flagReferences, "reference", "r", nil, "reference image(s) for style/content guidance (repeatable)")
	cmd.Flags().StringVar(&flagModel, "model", "pro", "model tier or full model name (flash, pro)")
	cmd.Flags().StringVar(&flagAspectRatio, "aspect-ratio", "1:1", "aspect ratio (1:1, 16:9, 9:16, 4:3, 3:4)")
	cmd.Flags().StringVar(&flagSize, "size", "2K", "image size (1K, 2K, or 4K on the pro tier)")
	cmd.Flags().StringVar(&flagPersonGeneration, "person-generation", "allow_adult", "people in images (dont_allow, allow_adult, allow_all)")
	cmd.Flags().BoolVar(&flagNoPeople, "no-people", false, "shortcut for --person-generation dont_allow")
	cmd.Flags().BoolVar(&flagListModels, "list-models", false, "list available models and exit")
	cmd.Flags().StringVar(&flagAPIKey, "api-key", "", "API key (defaults to GOOGLE_AI_API_KEY)")

	cmd.AddCommand(newHistoryCmd(app))

	return cmd
}

func runGenerate(_ *cobra.Command, args []string, app *App) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if flagListModels {
		printModelList(app)
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("missing required argument: prompt")
	}
	prompt := args[0]

	apiKey, _, err := config.ResolveAPIKey(flagAPIKey, app.GetEnv)
	if err != nil {
		return err
	}

	spec, ok := app.Registry.Resolve(flagModel)
	if !ok {
		return fmt.Errorf("unknown model %q: available models: %v", flagModel, app.Registry.Aliases())
	}

	req := models.NewRequest(prompt)
	req.AspectRatio = models.AspectRatio(flagAspectRatio)
	req.Resolution = models.Resolution(flagSize)
	req.PersonPolicy = models.PersonPolicy(flagPersonGeneration)
	if flagNoPeople {
		req.PersonPolicy = models.PersonDontAllow
	}
	req.References = flagReferences

	spec.ApplyDefaults(req)

	if err := spec.Validate(req); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}

	refs, err := app.LoadReferences(req.References)
	if err != nil {
		return err
	}

	prov, err := app.NewProvider(ctx, &provider.Config{APIKey: apiKey})
	if err != nil {
		return fmt.Errorf("failed to create provider: %w", err)
	}

	fmt.Fprintf(app.Out, "Generating image with prompt: %q\n", prompt)
	fmt.Fprintf(app.Out, "Model: %s\n", req.Model)
	fmt.Fprintf(app.Out, "Aspect ratio: %s\n", req.AspectRatio)
	fmt.Fprintf(app.Out, "Size: %s\n", req.Resolution)
	fmt.Fprintf(app.Out, "Person generation: %s\n", req.PersonPolicy)
	if len(refs) > 0 {
		fmt.Fprintf(app.Out, "Reference images: %d\n", len(refs))
	}

	img, err := prov.Generate(ctx, req, refs)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	cwd, err := app.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	resolver := artifact.NewResolver(detect.New(detect.DefaultRules()), app.NewPrompter(), app.Now)
	savePath, err := resolver.Resolve(artifact.ResolveOptions{
		Output:  flagOutput,
		Ask:     flagAsk,
		Prompt:  prompt,
		Edit:    req.Mode == models.ModeEdit,
		WorkDir: cwd,
	})
	if err != nil {
		return err
	}

	writer := app.NewWriter()
	if err := writer.WriteImage(savePath, img.Data); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	fmt.Fprintf(app.Out, "Saved: %s\n", savePath)

	meta := &artifact.Metadata{
		Prompt:      prompt,
		Model:       req.Model,
		Resolution:  req.Resolution.String(),
		AspectRatio: req.AspectRatio.String(),
		References:  req.References,
		GeneratedAt: app.Now(),
	}
	metadataPath, err := writer.WriteMetadata(savePath, meta)
	if err != nil {
		fmt.Fprintf(app.Err, "Warning: could not create metadata file: %v\n", err)
	} else {
		fmt.Fprintf(app.Out, "Metadata: %s\n", metadataPath)
	}

	recordHistory(ctx, app, req, savePath, metadataPath)

	fmt.Fprintln(app.Out, "Done!")
	return nil
}

// recordHistory logs the generation. Failures are warnings: the image is
// already on disk and the invocation has succeeded.
func recordHistory(ctx context.Context, app *App, req *models.Request, imagePath, metadataPath string) {
	store, err := app.OpenHistory()
	if err != nil {
		fmt.Fprintf(app.Err, "Warning: history unavailable: %v\n", err)
		return
	}
	defer store.Close()

	gen := &history.Generation{
		Prompt:         req.Prompt,
		Mode:           string(req.Mode),
		Model:          req.Model,
		AspectRatio:    req.AspectRatio.String(),
		Resolution:     req.Resolution.String(),
		ReferenceCount: len(req.References),
		ImagePath:      imagePath,
		MetadataPath:   metadataPath,
		CreatedAt:      app.Now(),
	}
	if err := store.Record(ctx, gen); err != nil {
		fmt.Fprintf(app.Err, "Warning: could not record history: %v\n", err)
	}
}

func printModelList(app *App) {
	fmt.Fprintln(app.Out, "Available models:")
	fmt.Fprintln(app.Out)
	for _, alias := range app.Registry.Aliases() {
		spec, _ := app.Registry.Resolve(alias)
		fmt.Fprintf(app.Out, "  %s\n", alias)
		fmt.Fprintf(app.Out, "    Full name: %s\n", spec.Name)
		fmt.Fprintf(app.Out, "    Description: %s\n", spec.Description)
		fmt.Fprintf(app.Out, "    Best for: %s\n", spec.UseCase)
		fmt.Fprintf(app.Out, "    Max references: %d\n", spec.MaxRefs)
		fmt.Fprintf(app.Out, "    Max resolution: %s\n", spec.MaxResolution)
		fmt.Fprintln(app.Out)
	}
	fmt.Fprintln(app.Out, `Usage: genimg "prompt" --model [model-name]`)
}

func newHistoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent generations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd.Context(), app)
		},
	}

	cmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 20, "maximum number of entries to show")

	return cmd
}

func runHistory(ctx context.Context, app *App) error {
	if ctx == nil {
		ctx = context.Background()
	}

	store, err := app.OpenHistory()
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer store.Close()

	gens, err := store.List(ctx, flagHistoryLimit)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	if len(gens) == 0 {
		fmt.Fprintln(app.Out, "No generations recorded yet.")
		return nil
	}

	for _, gen := range gens {
		fmt.Fprintf(app.Out, "%s  %-8s  %s\n", history.FormatTimestamp(gen.CreatedAt), gen.Mode, gen.ImagePath)
		fmt.Fprintf(app.Out, "%19s %s (%s, %s)\n", "", gen.Prompt, gen.Model, gen.Resolution)
	}

	return nil
}
