package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/decker502/fonolt/data"
	"github.com/decker502/fonolt/internal/linkcsv"
	"github.com/decker502/fonolt/pkg/app"
	"github.com/decker502/fonolt/pkg/embedded"
)

var flagShowRows bool

var linksCmd = &cobra.Command{
	Use:   "links [path]",
	Short: "Validate a links CSV",
	Long: `Parses a links CSV the same way the game does and prints how many
legitimate and phishing links it contains. Without a path the bundled
data/links.csv is checked.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runLinks,
}

func init() {
	linksCmd.Flags().BoolVar(&flagShowRows, "rows", false, "Also print every link")
}

var (
	linksTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFD700")).
			MarginBottom(1)
	linksLabelStyle = lipgloss.NewStyle().
			Width(10).
			Foreground(lipgloss.Color("#888888"))
	linksLegitStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF7F"))
	linksPhishingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F"))
	linksBoxStyle      = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#5F87FF")).
				Padding(0, 2)
)

func runLinks(cmd *cobra.Command, args []string) error {
	path := flagLinks
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		embedded.Init(data.FS)
	}

	links, err := app.LoadLinks(path)
	if err != nil {
		return err
	}

	source := path
	if source == "" {
		source = app.DefaultLinksPath + " (bundled)"
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderLinksSummary(source, links, flagShowRows))
	return nil
}

// renderLinksSummary 生成链接统计的终端输出
//
// 参数：
//   - source: 显示的文件来源
//   - links: 已解析的链接
//   - rows: 是否逐行列出链接
func renderLinksSummary(source string, links []linkcsv.Link, rows bool) string {
	stats := linkcsv.Summarize(links)

	summary := lipgloss.JoinVertical(lipgloss.Left,
		linksTitleStyle.Render(source),
		linksLabelStyle.Render("Total")+fmt.Sprintf("%d", stats.Total),
		linksLabelStyle.Render("Legit")+linksLegitStyle.Render(fmt.Sprintf("%d", stats.Legit)),
		linksLabelStyle.Render("Phishing")+linksPhishingStyle.Render(fmt.Sprintf("%d", stats.Phishing)),
	)

	if rows {
		lines := make([]string, 0, len(links))
		for _, l := range links {
			if l.IsLegit {
				lines = append(lines, linksLegitStyle.Render("✓ "+l.Text))
			} else {
				lines = append(lines, linksPhishingStyle.Render("✗ "+l.Text))
			}
		}
		summary = lipgloss.JoinVertical(lipgloss.Left, summary, "", lipgloss.JoinVertical(lipgloss.Left, lines...))
	}

	return linksBoxStyle.Render(summary)
}
