package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/KRTirtho/NewPipeCLI/color"
	"github.com/KRTirtho/NewPipeCLI/extractor"
	"github.com/KRTirtho/NewPipeCLI/icon"
	"github.com/KRTirtho/NewPipeCLI/provider"
	"github.com/KRTirtho/NewPipeCLI/style"
	"github.com/KRTirtho/NewPipeCLI/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(servicesCmd)

	servicesCmd.Flags().BoolP("raw", "r", false, "Print only service names")
	servicesCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")

	servicesCmd.MarkFlagsMutuallyExclusive("raw", "json")
	servicesCmd.SetOut(os.Stdout)
}

type serviceSummary struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	BaseURL        string   `json:"baseUrl"`
	ContentFilters []string `json:"contentFilters"`
	SortFilters    []string `json:"sortFilters"`
}

func summarize(s extractor.Service) serviceSummary {
	return serviceSummary{
		ID:             s.ID(),
		Name:           s.Name(),
		BaseURL:        s.BaseURL(),
		ContentFilters: s.ContentFilters(),
		SortFilters:    s.SortFilters(),
	}
}

// servicesCmd lists the registered services with the filters their search accepts.
var servicesCmd = &cobra.Command{
	Use:     "services",
	Short:   "List the registered services and their search filters",
	Aliases: []string{"ls"},
	Run: func(cmd *cobra.Command, args []string) {
		summaries := lo.Map(provider.Init(newDownloader()).Services(), func(s extractor.Service, _ int) serviceSummary {
			return summarize(s)
		})

		switch {
		case lo.Must(cmd.Flags().GetBool("json")):
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(summaries))
		case lo.Must(cmd.Flags().GetBool("raw")):
			for _, s := range summaries {
				cmd.Println(s.Name)
			}
		default:
			cmd.Println(style.Faint(util.Quantify(len(summaries), "service", "services") + " registered"))
			cmd.Println()
			printServices(cmd, summaries)
		}
	},
}

func printServices(cmd *cobra.Command, summaries []serviceSummary) {
	label := style.Fg(color.Yellow)

	for i, s := range summaries {
		cmd.Printf("%s %s %s\n",
			style.Fg(color.Purple)(icon.Get(icon.Service)),
			style.Header(s.Name),
			style.Faint(fmt.Sprintf("#%d", s.ID)),
		)
		cmd.Printf("  %s %s\n", label("url:"), s.BaseURL)
		cmd.Printf("  %s %s\n", label("content filters:"), strings.Join(s.ContentFilters, ", "))
		cmd.Printf("  %s %s\n", label("sort filters:"), strings.Join(s.SortFilters, ", "))

		if i < len(summaries)-1 {
			cmd.Println()
		}
	}
}
