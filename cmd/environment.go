package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/zjrosen/modelstore/internal/cachemanager"
	"github.com/zjrosen/modelstore/internal/config"
	"github.com/zjrosen/modelstore/internal/loader"
	"github.com/zjrosen/modelstore/internal/registry"
	"github.com/zjrosen/modelstore/internal/tracing"
)

// environment bundles the loaded provider chain for a single command run.
//
// The chain is built inside-out: the primary environment service, any extra
// environment files behind a multiplexer, a read-through cache, and a tracing
// wrapper on the outside so cache hits are recorded too.
type environment struct {
	svc      *loader.Service
	provider registry.ObjectProvider
	traces   *tracing.Provider
}

// store returns the primary environment's store for whole-store queries.
// Traversal operations work on the store directly; the provider chain only
// answers identifier lookups.
func (e *environment) store() *registry.Store {
	return e.svc.Store()
}

func (e *environment) close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.traces.Shutdown(ctx); err != nil {
		return err
	}
	return e.svc.Close()
}

// buildEnvironment loads the configured environment file and assembles the
// provider chain around it.
func buildEnvironment(cmd *cobra.Command) (*environment, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	svc, err := loader.NewService(cfg.EnvironmentPath)
	if err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	var provider registry.ObjectProvider = svc
	if len(cfg.Providers) > 0 {
		providers := []registry.ObjectProvider{svc}
		for _, path := range cfg.Providers {
			store, err := loader.NewStoreFromFile(path)
			if err != nil {
				_ = svc.Close()
				return nil, fmt.Errorf("loading provider %s: %w", path, err)
			}
			providers = append(providers, store)
		}
		provider = registry.NewMultiplexer(providers...)
	}

	skipCache := !cfg.Cache.IsEnabled()
	if noCache, _ := cmd.Flags().GetBool("no-cache"); noCache {
		skipCache = true
	}
	ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second
	cache := cachemanager.NewInMemoryCacheManager[string, registry.Identifiable](
		"lookup", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval)
	provider = cachemanager.NewCachingProvider(provider, cache, ttl, skipCache)

	traces, err := tracing.NewProvider(tracingConfig(cfg.Tracing))
	if err != nil {
		_ = svc.Close()
		return nil, fmt.Errorf("initializing tracing: %w", err)
	}
	if traces.Enabled() {
		provider = tracing.NewTracedProvider(provider, traces.Tracer())
	}

	return &environment{
		svc:      svc,
		provider: provider,
		traces:   traces,
	}, nil
}

// tracingConfig converts user configuration into the tracing subsystem's
// config, filling in the default trace file path.
func tracingConfig(tc config.TracingConfig) tracing.Config {
	out := tracing.DefaultConfig()
	out.Enabled = tc.Enabled
	if tc.Exporter != "" {
		out.Exporter = tc.Exporter
	}
	out.FilePath = tc.FilePath
	if out.FilePath == "" {
		out.FilePath = config.DefaultTracesFilePath()
	}
	if tc.OTLPEndpoint != "" {
		out.OTLPEndpoint = tc.OTLPEndpoint
	}
	if tc.SampleRate > 0 {
		out.SampleRate = tc.SampleRate
	}
	return out
}
