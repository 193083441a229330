// Package cmd implements the command-line interface for newpipe.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/KRTirtho/NewPipeCLI/argv"
	"github.com/KRTirtho/NewPipeCLI/color"
	"github.com/KRTirtho/NewPipeCLI/constant"
	"github.com/KRTirtho/NewPipeCLI/downloader"
	"github.com/KRTirtho/NewPipeCLI/extractor"
	"github.com/KRTirtho/NewPipeCLI/icon"
	"github.com/KRTirtho/NewPipeCLI/inline"
	"github.com/KRTirtho/NewPipeCLI/key"
	"github.com/KRTirtho/NewPipeCLI/log"
	"github.com/KRTirtho/NewPipeCLI/network"
	"github.com/KRTirtho/NewPipeCLI/provider"
	"github.com/KRTirtho/NewPipeCLI/style"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Process exit codes.
const (
	exitOK        = 0
	exitFailure   = 1
	exitChallenge = 2
)

// rootCmd runs the streams and search operations. Its arguments follow the argv
// grammar, which cobra's flag parser cannot express, so flag parsing is left to argv.
var rootCmd = &cobra.Command{
	Use:   constant.App + " [--streams <url_or_id> | --search <query> [--content-filters f1 f2 ...] [--sort-filter sort]]",
	Short: "Query video platforms and print normalized JSON",
	Long: style.New().Bold(true).Foreground(color.HiRed).Render(constant.App) + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Fetch stream info and search results as JSON"),
	Example: strings.Join([]string{
		"  " + constant.App + " --streams dQw4w9WgXcQ",
		"  " + constant.App + " --search lofi --content-filters=videos --sort-filter upload_date",
	}, "\n"),
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	Run: func(cmd *cobra.Command, args []string) {
		if code := exitCode(runRoot(cmd, args)); code != exitOK {
			os.Exit(code)
		}
	},
}

func runRoot(cmd *cobra.Command, args []string) error {
	parsed := argv.Parse(args)
	if parsed.Has(inline.FlagHelp) || lo.Contains(args, "-h") {
		return cmd.Help()
	}

	options := inline.OptionsFromArgs(parsed)
	options.Out = cmd.OutOrStdout()
	options.Err = cmd.ErrOrStderr()

	if !options.Requested() {
		inline.Usage(options.Out)
		return nil
	}

	engine := provider.Init(newDownloader())
	service, err := selectService(engine, options.ServiceName)
	if err != nil {
		return inline.Fail(options.Err, err)
	}
	options.Service = service

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return inline.Run(ctx, options)
}

func newDownloader() *downloader.Downloader {
	client := network.New(network.OptionsFromConfig())
	return downloader.New(client, viper.GetString(key.NetworkUserAgent))
}

func selectService(engine *provider.Engine, name mo.Option[string]) (extractor.Service, error) {
	if name.IsPresent() {
		return engine.ServiceByName(name.MustGet())
	}
	return engine.Default()
}

// exitCode maps a run error to the process status. Challenges get their own code
// so scripts can back off instead of retrying.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}

	var challenge *extractor.ReCaptchaError
	if errors.As(err, &challenge) {
		return exitChallenge
	}
	return exitFailure
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	// An operation starts with a flag. Routing it through cobra would let a
	// value such as "--search lofi version" be taken for a subcommand.
	if args := os.Args[1:]; len(args) > 0 && strings.HasPrefix(args[0], "-") {
		os.Exit(exitCode(runRoot(rootCmd, args)))
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(exitFailure)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", style.Fg(color.Red)(icon.Get(icon.Fail)), strings.Trim(err.Error(), " \n"))
		os.Exit(exitCode(err))
	}
}
