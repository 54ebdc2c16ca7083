package main

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/simonhull/flactag"
	"github.com/simonhull/flactag/internal/config"
)

type commandContext struct {
	configFlag *string
	verbose    *bool
	logOutput  io.Writer

	configOnce sync.Once
	config     *config.Config
	configErr  error
	logger     *slog.Logger
}

func newCommandContext(configFlag *string, verbose *bool) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		verbose:    verbose,
		logOutput:  os.Stderr,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg

		level := cfg.Level()
		if c.verbose != nil && *c.verbose {
			level = slog.LevelDebug
		}
		c.logger = slog.New(slog.NewTextHandler(c.logOutput, &slog.HandlerOptions{Level: level}))
	})
	return c.config, c.configErr
}

func (c *commandContext) log() *slog.Logger {
	if _, err := c.ensureConfig(); err != nil || c.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.logger
}

// read reads path with the command's logger attached.
func (c *commandContext) read(path string) (*flactag.Tag, error) {
	return flactag.ReadFile(path, flactag.WithLogger(c.log()))
}

// edit reads path, applies fn and saves with the configured options.
func (c *commandContext) edit(path string, fn func(*flactag.Tag) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	tag, err := c.read(path)
	if err != nil {
		return err
	}
	if err := fn(tag); err != nil {
		return err
	}
	if err := tag.Save(cfg.SaveOptions()...); err != nil {
		return err
	}
	c.log().Info("saved", "path", path)
	return nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
