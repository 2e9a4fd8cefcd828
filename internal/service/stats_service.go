package service

import (
	"context"

	"episode-service/internal/models"
	"episode-service/internal/repository"

	"golang.org/x/sync/errgroup"
)

type StatsService struct {
	Episodes     *repository.EpisodeRepository
	Events       *repository.EventRepository
	Participants *repository.ParticipantRepository
}

func NewStatsService(episodes *repository.EpisodeRepository, events *repository.EventRepository, participants *repository.ParticipantRepository) *StatsService {
	return &StatsService{Episodes: episodes, Events: events, Participants: participants}
}

// ShowStats runs the per-show aggregations concurrently and combines them.
// Aggregations with no groups contribute zeros and empty lists.
func (s *StatsService) ShowStats(ctx context.Context) (*models.ShowStats, error) {
	var (
		links          []models.EpisodeLink
		questionCount  int64
		correctCount   int64
		correctAnswers []string
		amountWon      float64
		pool           []models.ParticipantProfile
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		links, err = s.Episodes.LinkIndex(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		questionCount, _, err = s.Events.QuestionSummary(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		correctCount, correctAnswers, err = s.Events.CorrectAnswerSummary(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		amountWon, err = s.Episodes.TotalAmountWon(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		pool, err = s.Participants.ProfilesByStatus(ctx, models.StatusPending)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if links == nil {
		links = []models.EpisodeLink{}
	}
	if correctAnswers == nil {
		correctAnswers = []string{}
	}
	if pool == nil {
		pool = []models.ParticipantProfile{}
	}

	return &models.ShowStats{
		TotalEpisodes:       len(links),
		EpisodeLinks:        links,
		TotalAskedQuestions: questionCount,
		TotalCorrectAnswers: correctCount,
		CorrectAnswers:      correctAnswers,
		TotalAmountWon:      amountWon,
		RequestPool: models.RequestPool{
			Total:        len(pool),
			Participants: pool,
		},
	}, nil
}

// PerformanceStats runs the global event aggregations concurrently. Both
// question-type buckets are always present in the output, zero-filled when
// the type has no matching records.
func (s *StatsService) PerformanceStats(ctx context.Context) (*models.PerformanceStats, error) {
	var (
		won           map[string]models.TypeWinnings
		lost          map[string]models.TypeLosses
		questionCount int64
		wordLoss      []models.CodemixLoss
		responses     []models.CodemixResponseCount
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		won, err = s.Events.AmountWonByType(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		lost, err = s.Events.AmountLostByType(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		questionCount, err = s.Events.CountQuestions(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		wordLoss, err = s.Events.CodemixLossByResponse(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		responses, err = s.Events.CodemixResponseCounts(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if wordLoss == nil {
		wordLoss = []models.CodemixLoss{}
	}
	if responses == nil {
		responses = []models.CodemixResponseCount{}
	}

	return &models.PerformanceStats{
		TotalAmountWon:        fillWinnings(won),
		TotalAmountLost:       fillLosses(lost),
		TotalAskedQuestions:   questionCount,
		CodemixWordLoss:       wordLoss,
		TotalCodemixResponses: responses,
	}, nil
}

func fillWinnings(byType map[string]models.TypeWinnings) map[string]models.TypeWinnings {
	filled := map[string]models.TypeWinnings{
		models.TypeQuestion:       {},
		models.TypeQuestionNumber: {},
	}
	for eventType, winnings := range byType {
		filled[eventType] = winnings
	}
	return filled
}

func fillLosses(byType map[string]models.TypeLosses) map[string]models.TypeLosses {
	filled := map[string]models.TypeLosses{
		models.TypeQuestion:       {},
		models.TypeQuestionNumber: {},
	}
	for eventType, losses := range byType {
		filled[eventType] = losses
	}
	return filled
}
