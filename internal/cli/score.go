package cli

import (
	"context"
	"fmt"

	"cvscore/internal/common"
	"cvscore/internal/engine"
	"cvscore/internal/types"

	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score [resume-file] [job-description-file]",
	Short: "Score a resume against a job description",
	Long: `Score a resume with the rule-based analysis engine. The resume is checked
for contact information, standard sections, quantifiable metrics, length, and
keyword coverage.

When a job description file is provided, the keyword vocabulary is derived from
it. Without one, a default vocabulary of common industry keywords is used.

The analysis includes:
- An overall 0-100 score and summary
- Per-category scores with actionable feedback
- A keyword gap analysis (present and missing keywords)`,
	Args: cobra.RangeArgs(1, 2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfigFromContext(cmd.Context())
		if err != nil {
			return err
		}
		// Apply default format if not specified
		if scoreConfig.OutputFormat == "" {
			scoreConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(scoreConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runScore,
}

var scoreConfig common.CommandConfig

func init() {
	scoreCmd.Flags().StringVarP(&scoreConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	scoreCmd.Flags().StringVar(&scoreConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	// Add completion for format flag
	_ = scoreCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg, err := getConfigFromContext(cmd.Context())
		if err != nil {
			return []string{}, cobra.ShellCompDirectiveError
		}
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runScore(cmd *cobra.Command, args []string) error {
	logger, err := getLoggerFromContext(cmd.Context())
	if err != nil {
		return err
	}

	createInput := func(contents []string) (types.ScoreResumeInput, error) {
		switch len(contents) {
		case 1:
			return types.ScoreResumeInput{Content: contents[0]}, nil
		case 2:
			return types.ScoreResumeInput{
				Content:        contents[0],
				JobDescription: contents[1],
			}, nil
		default:
			return types.ScoreResumeInput{}, fmt.Errorf("expected 1 or 2 file paths, got %d", len(contents))
		}
	}

	logDetails := func(input types.ScoreResumeInput, cfg common.CommandConfig) {
		logger.Info("Starting resume scoring",
			"resume_chars", len(input.Content),
			"has_job_description", input.JobDescription != "",
			"output_format", cfg.OutputFormat)
	}

	scoreOperation := func(ctx context.Context, input types.ScoreResumeInput) (types.AnalysisResult, error) {
		return engine.Analyze(input.Content, input.JobDescription)
	}

	err = common.RunEngineCommand(
		cmd.Context(),
		logger,
		scoreConfig,
		args,
		createInput,
		scoreOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to score resume: %w", err)
	}
	logger.Info("Resume scoring completed successfully")
	return nil
}
