package icon

import (
	"testing"

	"github.com/KRTirtho/NewPipeCLI/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Given a registered icon", t, func() {
		target := Success

		Convey("It renders for each variant", func() {
			for _, variant := range AvailableVariants() {
				Convey("variant="+variant, func() {
					viper.Set(key.CliIcons, variant)
					So(Get(target), ShouldNotBeEmpty)
				})
			}
		})

		Convey("Variants differ", func() {
			viper.Set(key.CliIcons, "plain")
			plainIcon := Get(Fail)
			viper.Set(key.CliIcons, "emoji")
			So(Get(Fail), ShouldNotEqual, plainIcon)
		})

		Convey("It returns empty for an unknown variant", func() {
			viper.Set(key.CliIcons, "")
			So(Get(target), ShouldBeEmpty)
		})
	})
}
