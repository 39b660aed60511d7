// scenelint loads scene files, instantiates every component through the
// registry, and checks serialized numeric properties against their
// inspector schema ranges. Files are checked concurrently; any violation
// or load failure exits nonzero.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"kinetic/internal/components"
	"kinetic/internal/log"
	"kinetic/internal/scene"
)

func main() {
	level := flag.String("log-level", "info", "log level")
	flag.Parse()

	logger := log.New(*level)
	defer logger.Sync()

	paths := flag.Args()
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "usage: scenelint [-log-level level] scene.json [scene.yaml ...]")
		os.Exit(2)
	}

	var g errgroup.Group
	for _, path := range paths {
		path := path
		g.Go(func() error {
			return lintScene(path, logger)
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("lint failed", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("all scenes clean", zap.Int("files", len(paths)))
}

func lintScene(path string, logger *zap.Logger) error {
	s, err := scene.LoadScene(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	violations := 0
	for _, o := range s.Objects {
		for _, c := range o.Components() {
			provider, ok := c.(components.SchemaProvider)
			if !ok {
				continue
			}
			violations += lintComponent(path, o.Name, c, provider.GetSchema(), logger)
		}
	}
	if violations > 0 {
		return fmt.Errorf("%s: %d schema violation(s)", path, violations)
	}
	logger.Info("scene ok", zap.String("path", path), zap.Int("objects", len(s.Objects)))
	return nil
}

func lintComponent(path, object string, c scene.Component, schema components.Schema, logger *zap.Logger) int {
	record := c.Serialize()
	violations := 0
	for field, spec := range schema {
		if spec.Min == 0 && spec.Max == 0 {
			continue
		}
		value, ok := numericField(record[field])
		if !ok {
			continue
		}
		if value < spec.Min || value > spec.Max {
			violations++
			logger.Warn("property out of range",
				zap.String("path", path),
				zap.String("object", object),
				zap.String("component", c.TypeName()),
				zap.String("field", field),
				zap.Float32("value", value),
				zap.Float32("min", spec.Min),
				zap.Float32("max", spec.Max))
		}
	}
	return violations
}

func numericField(v any) (float32, bool) {
	switch n := v.(type) {
	case float32:
		return n, true
	case float64:
		return float32(n), true
	case int:
		return float32(n), true
	default:
		return 0, false
	}
}
