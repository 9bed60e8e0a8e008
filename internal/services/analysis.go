package services

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"alfredoptarigan/hrms-assistant/internal/models"
)

const (
	AnalysisPlaceholder    = "Unable to generate analysis at this time."
	AnalysisFailureMessage = "Error analyzing candidate. Please try again later."
)

// AnalysisPipeline owns the visible analysis state of one presentation
// context (an open analysis dialog). Only the most recently started request
// may update that state.
type AnalysisPipeline struct {
	generator TextGenerator
	prompts   *PromptBuilder
	logger    *zap.Logger

	mu    sync.Mutex
	seq   uint64
	state models.RequestState
	wg    sync.WaitGroup
}

func NewAnalysisPipeline(generator TextGenerator, logger *zap.Logger) *AnalysisPipeline {
	return &AnalysisPipeline{
		generator: generator,
		prompts:   NewPromptBuilder(),
		logger:    logger.Named("analysis"),
		state:     models.Idle(),
	}
}

// Analyze moves the state to Loading before returning and resolves the
// request in the background. The returned channel is closed once this
// request has resolved, whether or not its result was applied.
func (p *AnalysisPipeline) Analyze(ctx context.Context, profile models.CandidateProfile) <-chan struct{} {
	prompt := p.prompts.BuildCandidateAnalysisPrompt(profile)

	p.mu.Lock()
	p.seq++
	seq := p.seq
	p.state = models.Loading()
	p.wg.Add(1)
	p.mu.Unlock()

	// In-flight calls are never cancelled; superseded results are dropped.
	ctx = context.WithoutCancel(ctx)

	done := make(chan struct{})
	go func() {
		defer p.wg.Done()
		defer close(done)

		p.apply(seq, p.resolve(ctx, profile, prompt))
	}()

	return done
}

func (p *AnalysisPipeline) resolve(ctx context.Context, profile models.CandidateProfile, prompt string) models.RequestState {
	text, err := p.generator.GenerateText(ctx, prompt, &GenerateOptions{Operation: "analysis"})
	if err != nil {
		p.logger.Debug("analysis request failed", zap.String("candidate", profile.Name))
		return models.Failed(AnalysisFailureMessage)
	}

	if text == "" {
		p.logger.Warn("empty analysis returned, using placeholder", zap.String("candidate", profile.Name))
		return models.Ready(AnalysisPlaceholder)
	}

	return models.Ready(text)
}

func (p *AnalysisPipeline) apply(seq uint64, state models.RequestState) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if seq != p.seq {
		p.logger.Debug("discarding superseded analysis result", zap.Uint64("seq", seq), zap.Uint64("current", p.seq))
		return
	}

	p.state = state
}

func (p *AnalysisPipeline) State() models.RequestState {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.state
}

// Reset returns the pipeline to Idle. Results of requests still in flight
// are discarded.
func (p *AnalysisPipeline) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.seq++
	p.state = models.Idle()
}

// Wait blocks until every request started so far has resolved.
func (p *AnalysisPipeline) Wait() {
	p.wg.Wait()
}
