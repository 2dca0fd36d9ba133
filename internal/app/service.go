package app

import (
	"context"
	"fmt"
	"time"

	"franceMiningCounter/config"
	"franceMiningCounter/internal/domain"
	"franceMiningCounter/internal/ports"
	"franceMiningCounter/internal/powerlaw"
	"franceMiningCounter/internal/render"
	"franceMiningCounter/internal/reward"
)

// Feed is the fallback-masked view of the live sources.
type Feed interface {
	BlockHeight(ctx context.Context) int64
	PriceEUR(ctx context.Context) float64
	HashRateTHs(ctx context.Context) float64
	History(ctx context.Context, end time.Time, stride int) []domain.Point
}

// Service runs the fetch -> compute -> render -> write pipeline once.
type Service struct {
	cfg       *config.Config
	logger    ports.Logger
	feed      Feed
	renderer  *render.Renderer
	endpoints render.Endpoints
}

// NewService creates a new application service instance.
func NewService(cfg *config.Config, logger ports.Logger, feed Feed, renderer *render.Renderer) (*Service, error) {
	if cfg == nil || logger == nil || feed == nil || renderer == nil {
		return nil, fmt.Errorf("missing required dependencies for Service")
	}
	if cfg.Share <= 0 || cfg.Share > 1 {
		return nil, fmt.Errorf("configuration Share must be in (0, 1]")
	}
	return &Service{
		cfg:       cfg,
		logger:    logger,
		feed:      feed,
		renderer:  renderer,
		endpoints: BrowserEndpoints(cfg),
	}, nil
}

// BrowserEndpoints derives the URLs the generated page polls.
func BrowserEndpoints(cfg *config.Config) render.Endpoints {
	ep := render.Endpoints{
		BlockHeight: cfg.BlockstreamURL + "/blocks/tip/height",
		SpotPrice:   cfg.CoinGeckoURL + "/simple/price?ids=bitcoin&vs_currencies=eur",
		PriceKind:   render.PriceKindCoinGecko,
		HashRate:    cfg.BlockchainInfoURL + "/charts/hash-rate?format=json&cors=true",
	}
	if cfg.PriceSource == config.PriceSourceBinance {
		ep.SpotPrice = cfg.BinanceURL + "/api/v3/ticker/price?symbol=" + cfg.BinanceSymbol
		ep.PriceKind = render.PriceKindBinance
	}
	return ep
}

// Compute fetches the live inputs and aggregates them. today sets both the
// power-law anchor day and the end of the historical range.
func (s *Service) Compute(ctx context.Context, today time.Time) domain.Result {
	live := domain.LiveData{
		BlockHeight: s.feed.BlockHeight(ctx),
		PriceEUR:    s.feed.PriceEUR(ctx),
	}
	hist := s.feed.History(ctx, today, s.cfg.HistoryStride)
	live.HashRateTHs = s.feed.HashRateTHs(ctx)

	s.logger.Info(ctx, "Live data collected", map[string]interface{}{
		"blockHeight": live.BlockHeight,
		"priceEUR":    live.PriceEUR,
		"hashRateTHs": live.HashRateTHs,
		"histPoints":  len(hist),
	})

	return Aggregate(Inputs{
		Live:          live,
		DaysSinceGen:  powerlaw.DaysSinceGenesis(today),
		HistoryPoints: hist,
	}, s.params())
}

// Generate computes the result and writes the page to cfg.OutputPath.
// The only error it returns is a render or write failure.
func (s *Service) Generate(ctx context.Context, today time.Time) (domain.Result, error) {
	res := s.Compute(ctx, today)
	page := s.renderer.NewPage(res, s.pageOptions())

	if err := s.renderer.WriteFile(s.cfg.OutputPath, page); err != nil {
		s.logger.Error(ctx, err, "Failed to write page", map[string]interface{}{"path": s.cfg.OutputPath})
		return res, err
	}

	s.logger.Info(ctx, s.renderer.Summary(s.cfg.OutputPath, res), map[string]interface{}{
		"variant":       s.cfg.Variant,
		"totalMinedBTC": res.TotalMinedBTC,
	})
	return res, nil
}

func (s *Service) params() Params {
	return Params{
		Share:            s.cfg.Share,
		StartBlock:       s.cfg.StartBlock,
		Schedule:         reward.DefaultSchedule,
		Exponent:         s.cfg.PowerLawExponent,
		YearsAhead:       s.cfg.PowerLawYearsAhead,
		EfficiencyJPerTH: s.cfg.EfficiencyJPerTH,
	}
}

func (s *Service) pageOptions() render.Options {
	return render.Options{
		Variant:          s.cfg.Variant,
		ShareChoices:     s.cfg.ShareChoices,
		Schedule:         reward.DefaultSchedule,
		RefreshInterval:  s.cfg.RefreshInterval,
		EfficiencyJPerTH: s.cfg.EfficiencyJPerTH,
		Endpoints:        s.endpoints,
	}
}
