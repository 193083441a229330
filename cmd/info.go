package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/KRTirtho/NewPipeCLI/color"
	"github.com/KRTirtho/NewPipeCLI/constant"
	"github.com/KRTirtho/NewPipeCLI/extractor"
	"github.com/KRTirtho/NewPipeCLI/provider"
	"github.com/KRTirtho/NewPipeCLI/style"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().StringP("service", "S", "", "Service to query, by name or index")
	infoCmd.SetOut(os.Stdout)
}

// infoCmd prints a readable summary of one stream instead of JSON.
var infoCmd = &cobra.Command{
	Use:     "info <url_or_id>",
	Short:   "Display the title, uploader and streams of a video",
	Example: "  " + constant.App + " info https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := lo.Must(cmd.Flags().GetString("service"))

		engine := provider.Init(newDownloader())
		service, err := selectService(engine, mo.EmptyableToOption(name))
		handleErr(err)

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		info, err := service.StreamInfo(ctx, args[0])
		handleErr(err)

		printInfo(cmd.OutOrStdout(), info)
	},
}

func formatName(f *extractor.MediaFormat) string {
	if f == nil {
		return "unknown"
	}
	return f.String()
}

func printInfo(w io.Writer, info *extractor.StreamInfo) {
	label := style.New().Bold(true).Foreground(color.Purple).Render
	section := style.Header

	description := ""
	if info.Description != nil {
		description = info.Description.Content
	}

	_, _ = fmt.Fprintf(w, "%s %s\n", label("Title:"), info.Name)
	_, _ = fmt.Fprintf(w, "%s %s\n", label("Uploader:"), info.UploaderName)
	_, _ = fmt.Fprintf(w, "%s %s\n", label("Description:"), description)

	_, _ = fmt.Fprintf(w, "\n%s\n", section("Audio Streams:"))
	for _, s := range info.AudioStreams {
		_, _ = fmt.Fprintf(w, "- %s (%dkbps): %s\n", formatName(s.Format), s.AverageBitrate, s.Content)
	}

	_, _ = fmt.Fprintf(w, "\n%s\n", section("Video Streams:"))
	for _, s := range append(append([]*extractor.VideoStream{}, info.VideoStreams...), info.VideoOnlyStreams...) {
		_, _ = fmt.Fprintf(w, "- %s (%s): %s\n", s.Resolution, formatName(s.Format), s.Content)
	}
}
