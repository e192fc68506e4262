package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rosterlab/tradescout/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLoadDefaults(t *testing.T) {
	Convey("Given no file or env overrides", t, func() {
		cfg, err := config.Load(context.Background())

		Convey("Then the hand-tuned defaults apply", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":9090")
			So(cfg.LogLevel, ShouldEqual, "info")
			So(cfg.FairnessWindow, ShouldEqual, 0.25)
			So(cfg.ScoreCutoff, ShouldEqual, 55)
			So(cfg.FastMaxPartners, ShouldEqual, 5)
			So(cfg.DeepMaxResults, ShouldEqual, 15)
			So(cfg.MatchMaxResults, ShouldEqual, 5)
		})
	})
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TRADESCOUT_ADDR", ":8080")
	t.Setenv("TRADESCOUT_SCORE_CUTOFF", "60")

	Convey("Given env overrides with the service prefix", t, func() {
		cfg, err := config.Load(context.Background())

		Convey("Then env wins over defaults", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":8080")
			So(cfg.ScoreCutoff, ShouldEqual, 60)
			So(cfg.LogLevel, ShouldEqual, "info")
		})
	})
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("log_level: debug\nfairness_window: 0.3\n"), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	t.Setenv("TRADESCOUT_CONFIG", path)
	t.Setenv("TRADESCOUT_LOG_LEVEL", "warn")

	Convey("Given both a config file and an env override", t, func() {
		cfg, err := config.Load(context.Background())

		Convey("Then the file overrides defaults and env overrides the file", func() {
			So(err, ShouldBeNil)
			So(cfg.FairnessWindow, ShouldEqual, 0.3)
			So(cfg.LogLevel, ShouldEqual, "warn")
		})
	})
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("TRADESCOUT_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	Convey("Given a config path that does not exist", t, func() {
		_, err := config.Load(context.Background())

		Convey("Then loading fails with the load sentinel", func() {
			So(err, ShouldNotBeNil)
			So(errors.Is(err, config.ErrLoadConfig), ShouldBeTrue)
		})
	})
}

func TestLoadValidation(t *testing.T) {
	t.Setenv("TRADESCOUT_FAIRNESS_WINDOW", "1.5")

	Convey("Given an out-of-range fairness window", t, func() {
		_, err := config.Load(context.Background())

		Convey("Then loading fails with the validation sentinel", func() {
			So(err, ShouldNotBeNil)
			So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
		})
	})
}
