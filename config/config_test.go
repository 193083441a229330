package config

import (
	"testing"

	"github.com/KRTirtho/NewPipeCLI/filesystem"
	"github.com/KRTirtho/NewPipeCLI/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetString(key.ExtractorCountry), ShouldEqual, "US")
			So(viper.GetInt(key.NetworkTimeout), ShouldEqual, 60)
		})

		Convey("Environment variables override defaults", func() {
			t.Setenv("NEWPIPE_EXTRACTOR_COUNTRY", "DE")
			_ = Setup()
			So(viper.GetString(key.ExtractorCountry), ShouldEqual, "DE")
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("network.tls_fingerprint"), ShouldEqual, "network_tls_fingerprint")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given the output.pretty field", t, func() {
		f := Default[key.OutputPretty]

		Convey("Env is prefixed and upper-cased", func() {
			So(f.Env(), ShouldEqual, "NEWPIPE_OUTPUT_PRETTY")
		})

		Convey("typeName reflects the default value", func() {
			So(f.typeName(), ShouldEqual, "bool")
			network := Default[key.NetworkTimeout]
			So(network.typeName(), ShouldEqual, "int")
		})

		Convey("Pretty mentions the key", func() {
			So(f.Pretty(80), ShouldContainSubstring, key.OutputPretty)
		})
	})
}
