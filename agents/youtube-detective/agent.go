package youtubedetective

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"video-detective/agents/youtube-detective/youtube"
	"video-detective/internal/models"
	"video-detective/shared/ai"
	"video-detective/shared/logging"
	"video-detective/shared/monitoring"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// VideoFetcher looks up catalog metadata. *youtube.Client satisfies it.
type VideoFetcher interface {
	FetchVideo(ctx context.Context, videoID string) (*models.Video, error)
}

// Assessor turns a prompt into free text. *ai.Analyzer satisfies it.
type Assessor interface {
	Assess(ctx context.Context, prompt string) (string, error)
}

// Stage is reported through the progress callback as the pipeline advances.
type Stage int

const (
	StageAnalyzing Stage = iota + 1
)

type ErrorKind int

const (
	InvalidLink ErrorKind = iota + 1
	NotFound
	FetchError
	AnalysisError
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidLink:
		return "invalid link"
	case NotFound:
		return "not found"
	case FetchError:
		return "fetch error"
	case AnalysisError:
		return "analysis error"
	default:
		return "unknown"
	}
}

// InvestigationError ends a single investigation. None of them are retried.
type InvestigationError struct {
	Kind ErrorKind
	Err  error
}

func (e *InvestigationError) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *InvestigationError) Unwrap() error {
	return e.Err
}

// UserMessage is the line shown to the user in place of the report.
func (e *InvestigationError) UserMessage() string {
	switch e.Kind {
	case InvalidLink:
		return "❌ *Invalid Evidence:* That's not a valid YouTube link. Please provide a proper URL."
	case NotFound:
		return "❌ *Video Not Found:* This video is unavailable or has been removed."
	case FetchError:
		return fmt.Sprintf("❌ *Fetch Error:* Unable to retrieve video data: %v", e.Err)
	default:
		return fmt.Sprintf("❌ *Analysis Error:* %v", e.Err)
	}
}

func (e *InvestigationError) outcome() monitoring.Outcome {
	switch e.Kind {
	case InvalidLink:
		return monitoring.OutcomeInvalidLink
	case NotFound:
		return monitoring.OutcomeNotFound
	case FetchError:
		return monitoring.OutcomeFetchError
	default:
		return monitoring.OutcomeAnalysisError
	}
}

// Detective runs the link -> metadata -> assessment -> report pipeline.
// It holds no per-request state and is safe for concurrent use.
type Detective struct {
	fetcher  VideoFetcher
	assessor Assessor
	monitor  *monitoring.Monitor
	dice     *dice
	logger   zerolog.Logger
}

type Option func(*Detective)

// WithRand fixes the source used for report numbers and reactions.
func WithRand(rng *rand.Rand) Option {
	return func(d *Detective) {
		d.dice = newDice(rng)
	}
}

func NewDetective(fetcher VideoFetcher, assessor Assessor, monitor *monitoring.Monitor, opts ...Option) *Detective {
	if monitor == nil {
		monitor = monitoring.NewMonitor()
	}
	d := &Detective{
		fetcher:  fetcher,
		assessor: assessor,
		monitor:  monitor,
		logger:   logging.WithComponent("detective"),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.dice == nil {
		d.dice = newDice(nil)
	}
	return d
}

func (d *Detective) Name() string {
	return "Detective Jaime"
}

// Investigate runs the whole pipeline for text and returns the report.
// progress may be nil. Failures are returned as *InvestigationError.
func (d *Detective) Investigate(ctx context.Context, text string, progress func(Stage)) (string, error) {
	startTime := time.Now()
	logger := d.logger.With().Str("case_id", uuid.NewString()).Logger()

	report, err := d.investigate(ctx, logger, text, progress)

	outcome := monitoring.OutcomeReport
	var invErr *InvestigationError
	if errors.As(err, &invErr) {
		outcome = invErr.outcome()
		logger.Info().Str("kind", invErr.Kind.String()).Err(invErr.Err).Msg("investigation closed without report")
	}
	d.monitor.RecordInvestigation(outcome, time.Since(startTime))

	return report, err
}

func (d *Detective) investigate(ctx context.Context, logger zerolog.Logger, text string, progress func(Stage)) (string, error) {
	videoID, ok := youtube.ExtractVideoID(text)
	if !ok {
		return "", &InvestigationError{Kind: InvalidLink}
	}
	logger = logger.With().Str("video_id", videoID).Logger()

	video, err := d.fetcher.FetchVideo(ctx, videoID)
	if err != nil {
		if errors.Is(err, youtube.ErrVideoNotFound) {
			return "", &InvestigationError{Kind: NotFound, Err: err}
		}
		return "", &InvestigationError{Kind: FetchError, Err: err}
	}
	logger.Debug().Str("title", video.Title).Str("channel", video.ChannelTitle).Msg("metadata fetched")

	if progress != nil {
		progress(StageAnalyzing)
	}

	analysis, err := d.assessor.Assess(ctx, ai.BuildInvestigationPrompt(video))
	if err != nil {
		return "", &InvestigationError{Kind: AnalysisError, Err: err}
	}

	verdict := ai.ParseVerdict(analysis)
	category := ai.Classify(verdict)
	logger.Info().
		Str("bias", verdict.Bias).
		Str("factuality", verdict.Factuality).
		Stringer("category", category).
		Msg("investigation complete")

	return ComposeReport(d.dice.reportNumber(), video, analysis, ai.PickReaction(category, d.dice)), nil
}
