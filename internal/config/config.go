// Package config loads runtime settings from an optional YAML file with
// environment-variable overrides. Every getter carries a usable default,
// so commands run with no config file at all.
package config

import (
	"go.uber.org/zap"

	"github.com/spf13/viper"

	"kinetic/internal/log"
)

const envPrefix = "KINETIC"

type Config struct {
	config *viper.Viper
}

// Load reads the config file at path if it exists. An empty path or a
// missing file is not an error; environment variables (KINETIC_*) and
// defaults still apply.
func Load(path string) *Config {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("log.level", "info")
	v.SetDefault("stress.bodies_2d", 200)
	v.SetDefault("stress.bodies_3d", 200)
	v.SetDefault("stress.steps", 600)
	v.SetDefault("stress.dt", 1.0/60.0)
	v.SetDefault("stress.seed", 42)
	v.SetDefault("stress.spawn_extent", 50.0)
	v.SetDefault("stress.gravity_2d_y", 980.0)
	v.SetDefault("stress.gravity_3d_y", -9.8)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			log.Provide().Warn("config file not read, using defaults",
				zap.String("path", path), zap.Error(err))
		}
	}

	return &Config{config: v}
}

func (c *Config) LogLevel() string { return c.config.GetString("log.level") }

func (c *Config) StressBodies2D() int { return c.config.GetInt("stress.bodies_2d") }

func (c *Config) StressBodies3D() int { return c.config.GetInt("stress.bodies_3d") }

func (c *Config) StressSteps() int { return c.config.GetInt("stress.steps") }

func (c *Config) StressDt() float32 { return float32(c.config.GetFloat64("stress.dt")) }

func (c *Config) StressSeed() int64 { return c.config.GetInt64("stress.seed") }

func (c *Config) StressSpawnExtent() float32 {
	return float32(c.config.GetFloat64("stress.spawn_extent"))
}

// StressGravity2DY is the 2D gravity in pixels per second squared,
// positive downward.
func (c *Config) StressGravity2DY() float32 {
	return float32(c.config.GetFloat64("stress.gravity_2d_y"))
}

// StressGravity3DY is the 3D gravity in meters per second squared,
// negative downward.
func (c *Config) StressGravity3DY() float32 {
	return float32(c.config.GetFloat64("stress.gravity_3d_y"))
}
