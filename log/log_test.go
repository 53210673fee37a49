package log

import (
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/tintkit/tint/filesystem"
	"github.com/tintkit/tint/key"
	"github.com/tintkit/tint/where"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging configuration", t, func() {
		path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")

		Convey("When logging is disabled", func() {
			viper.Set(key.LogsWrite, false)
			So(Setup(), ShouldBeNil)
			Error("ignored")

			Convey("Then no file is created", func() {
				exists, _ := filesystem.API().Exists(path)
				So(exists, ShouldBeFalse)
			})
		})

		Convey("When logging is enabled with json output", func() {
			viper.Set(key.LogsWrite, true)
			viper.Set(key.LogsJson, true)
			viper.Set(key.LogsLevel, "debug")
			defer viper.Set(key.LogsWrite, false)

			So(Setup(), ShouldBeNil)
			Debugf("darkened %s", "#ff000000")
			WithColor("#ffabcdef").Info("inspected")

			Convey("Then entries are appended to today's file", func() {
				data, err := filesystem.API().ReadFile(path)
				So(err, ShouldBeNil)
				So(string(data), ShouldContainSubstring, `"msg":"darkened #ff000000"`)
				So(string(data), ShouldContainSubstring, `"color":"#ffabcdef"`)
			})
		})

		Convey("When the level is unknown it falls back to info", func() {
			viper.Set(key.LogsWrite, true)
			viper.Set(key.LogsLevel, "loud")
			defer viper.Set(key.LogsWrite, false)

			So(Setup(), ShouldBeNil)
			So(logger.GetLevel().String(), ShouldEqual, "info")
		})
	})
}
