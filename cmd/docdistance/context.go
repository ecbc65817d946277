package main

import (
	"log/slog"

	"docdistance/internal/config"
	"docdistance/internal/loader"
	"docdistance/internal/logging"
	"docdistance/internal/normalize"
	"docdistance/internal/service"
	"docdistance/internal/store/memory"
)

type commandContext struct {
	configFlag *string
	cfg        *config.AppConfig
	logger     *slog.Logger
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.AppConfig, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	var (
		cfg *config.AppConfig
		err error
	)
	if c.configFlag == nil || *c.configFlag == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(*c.configFlag)
	}
	if err != nil {
		return nil, err
	}
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	c.cfg = cfg
	c.logger = logger
	return cfg, nil
}

func (c *commandContext) newService() (*service.CorpusServiceImpl, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	tok := c.tokenizer()
	src := loader.New(cfg.Loader.Extensions)
	st := memory.NewStorage()
	if err := st.Init(); err != nil {
		return nil, err
	}
	return service.NewCorpusService(tok, src, st, c.logger), nil
}

// tokenizer builds the configured normalizer; ensureConfig must have run.
func (c *commandContext) tokenizer() *normalize.Normalizer {
	return normalize.New(c.cfg.PunctuationSet(), c.cfg.Lowercase())
}
