// fonolt is a phishing-awareness arcade game.
//
// Usage:
//
//	fonolt                   - Start the game at the home screen
//	fonolt --level level2    - Skip the home screen and start at a level
//	fonolt links [path]      - Validate a links CSV and print a summary
//
// Global flags:
//
//	--verbose        - Enable debug logging
//	--links <path>   - Links CSV for the falling-links minigame (default: bundled)
//	--assets <dir>   - Image/audio/font directory (default: assets)
//	--seed <value>   - RNG seed for reproducible link spawning
package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/decker502/fonolt/data"
	"github.com/decker502/fonolt/pkg/app"
	"github.com/decker502/fonolt/pkg/config"
	"github.com/decker502/fonolt/pkg/embedded"
)

var (
	flagVerbose bool
	flagLinks   string
	flagAssets  string
	flagLevel   string
	flagSeed    uint64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fonolt",
	Short: "Fonolt - a phishing awareness game",
	Long: `Fonolt teaches how to recognise phishing through a short campaign:
an introduction, a falling-links minigame and two email quizzes.

Examples:
  fonolt
  fonolt --level level3
  fonolt --links my_links.csv --seed 7
  fonolt links my_links.csv`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGame,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagLinks, "links", "", "Links CSV path (empty = bundled data/links.csv)")
	rootCmd.Flags().StringVar(&flagAssets, "assets", app.DefaultAssetsDir, "Directory with images, sounds and fonts")
	rootCmd.Flags().StringVar(&flagLevel, "level", "", "Start directly at a level ID (e.g. level2)")
	rootCmd.Flags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(linksCmd)
}

func runGame(cmd *cobra.Command, args []string) error {
	// 嵌入数据必须在任何配置加载之前初始化
	embedded.Init(data.FS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    flagVerbose,
		LinksPath:  flagLinks,
		AssetsDir:  flagAssets,
		StartLevel: flagLevel,
		Seed:       flagSeed,
	})
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil && !app.IsTermination(err) {
		return err
	}
	return nil
}
