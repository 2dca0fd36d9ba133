package app

import (
	"fmt"

	"franceMiningCounter/config"
	"franceMiningCounter/internal/adapters/binanceclient"
	"franceMiningCounter/internal/adapters/blockchaininfo"
	"franceMiningCounter/internal/adapters/blockstream"
	"franceMiningCounter/internal/adapters/coingecko"
	"franceMiningCounter/internal/adapters/webapi"
	"franceMiningCounter/internal/ports"
)

// Sources groups the three live data adapters selected by the configuration.
type Sources struct {
	Blocks ports.BlockSource
	Prices ports.PriceSource
	Hashes ports.HashRateSource
}

// NewSources builds the adapters for cfg. The price source is CoinGecko
// unless PRICE_SOURCE selects Binance.
func NewSources(cfg *config.Config, logger ports.Logger) (*Sources, error) {
	api, err := webapi.New(webapi.Config{Logger: logger, UserAgent: cfg.UserAgent})
	if err != nil {
		return nil, err
	}

	blocks, err := blockstream.New(api, cfg.BlockstreamURL)
	if err != nil {
		return nil, err
	}
	hashes, err := blockchaininfo.New(api, cfg.BlockchainInfoURL)
	if err != nil {
		return nil, err
	}

	var prices ports.PriceSource
	switch cfg.PriceSource {
	case config.PriceSourceBinance:
		prices, err = binanceclient.New(binanceclient.Config{
			BaseURL: cfg.BinanceURL,
			Symbol:  cfg.BinanceSymbol,
			Logger:  logger,
		})
	case config.PriceSourceCoinGecko, "":
		prices, err = coingecko.New(api, cfg.CoinGeckoURL)
	default:
		return nil, fmt.Errorf("%w: unknown price source %q", ports.ErrConfigurationError, cfg.PriceSource)
	}
	if err != nil {
		return nil, err
	}

	return &Sources{Blocks: blocks, Prices: prices, Hashes: hashes}, nil
}
