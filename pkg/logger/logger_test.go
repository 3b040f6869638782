package logger_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	logger "github.com/okian/davos/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGlobalLogger(t *testing.T) {
	Convey("Given the global logger", t, func() {
		So(logger.Init(), ShouldBeNil)
		log := logger.Get()

		Convey("When logging at each level", func() {
			ctx := context.Background()

			Convey("Then calls do not panic", func() {
				So(func() {
					log.Debug(ctx, "debug message", logger.String("k", "v"))
					log.Info(ctx, "info message", logger.Int("n", 1))
					log.Warn(ctx, "warn message", logger.Bool("flag", true))
					log.Error(ctx, "error message", logger.Error(errors.New("boom")))
				}, ShouldNotPanic)
			})
		})

		Convey("When deriving a named logger", func() {
			named := log.Named("catalog")

			Convey("Then it remains usable", func() {
				So(named, ShouldNotBeNil)
				So(func() { named.Info(context.Background(), "scoped") }, ShouldNotPanic)
			})
		})

		Convey("When Get is called before Init", func() {
			Convey("Then it lazily initializes", func() {
				So(logger.Get(), ShouldNotBeNil)
			})
		})
	})
}

func TestSetLevelString(t *testing.T) {
	Convey("Given the level parser", t, func() {
		So(logger.Init(), ShouldBeNil)

		Convey("When setting known levels", func() {
			Convey("Then all aliases are accepted", func() {
				So(logger.SetLevelString("debug"), ShouldBeNil)
				So(logger.SetLevelString("INFO"), ShouldBeNil)
				So(logger.SetLevelString("warning"), ShouldBeNil)
				So(logger.SetLevelString(" error "), ShouldBeNil)
				So(logger.SetLevelString(""), ShouldBeNil)
			})
		})

		Convey("When setting an unknown level", func() {
			err := logger.SetLevelString("verbose")

			Convey("Then it is rejected", func() {
				So(err, ShouldNotBeNil)
			})
		})

		Convey("When setting a level directly", func() {
			Convey("Then it does not panic", func() {
				So(func() { logger.SetLevel(slog.LevelWarn) }, ShouldNotPanic)
			})
		})
	})
}

func TestFieldConstructors(t *testing.T) {
	Convey("Given the field constructors", t, func() {
		Convey("When building fields", func() {
			Convey("Then keys and values round-trip", func() {
				So(logger.String("a", "b"), ShouldResemble, logger.Field{Key: "a", Value: "b"})
				So(logger.Int("n", 3).Value, ShouldEqual, 3)
				So(logger.Float64("f", 1.5).Value, ShouldEqual, 1.5)
				So(logger.Bool("ok", true).Value, ShouldEqual, true)
				So(logger.Any("x", []int{1}).Key, ShouldEqual, "x")
				So(logger.Error(errors.New("e")).Key, ShouldEqual, "error")
			})
		})
	})
}
