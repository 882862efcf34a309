package main

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"slate/internal/config"
	"slate/internal/logging"
	"slate/internal/project"
	"slate/internal/session"
	"slate/internal/timeline"
)

type commandContext struct {
	configFlag   *string
	timelineFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, timelineFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		timelineFlag: timelineFlag,
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
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// withSession opens the project store, builds a session around it, and closes
// the store when fn returns.
func (c *commandContext) withSession(fn func(*session.Session) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}

	store, err := project.Open(cfg)
	if err != nil {
		if errors.Is(err, project.ErrProjectLocked) {
			return fmt.Errorf("project at %s is in use by another slate process", cfg.DatabasePath())
		}
		return err
	}
	defer store.Close()

	return fn(session.New(cfg, store, logger))
}

// timelineType resolves the --timeline flag, falling back to the configured
// default and then to the main timeline.
func (c *commandContext) timelineType() (timeline.Type, error) {
	value := ""
	if c.timelineFlag != nil {
		value = strings.TrimSpace(*c.timelineFlag)
	}
	if value == "" && c.config != nil {
		value = c.config.Project.DefaultTimeline
	}
	if value == "" {
		return timeline.Main, nil
	}
	t, ok := timeline.ParseType(value)
	if !ok {
		return "", fmt.Errorf("unknown timeline %q (expected one of %s)", value, timelineNames())
	}
	return t, nil
}

func parseTimelineArg(value string) (timeline.Type, error) {
	t, ok := timeline.ParseType(value)
	if !ok {
		return "", fmt.Errorf("unknown timeline %q (expected one of %s)", value, timelineNames())
	}
	return t, nil
}

func timelineNames() string {
	names := make([]string, 0, 4)
	for _, t := range timeline.AllTypes() {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
