package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/go-arcade/navtree/internal/engine/bootstrap"
	"github.com/go-arcade/navtree/pkg/version"
)

/**
 * @author: gagral.x@gmail.com
 * @time: 2024/9/4 19:51
 * @file: main.go
 * @description: navtree server and compiler cli
 */

var configFile string

var rootCmd = &cobra.Command{
	Use:   "navtree",
	Short: "navtree compiles backend menu lists into frontend route and menu trees",
	Long:  "navtree compiles backend menu lists into frontend route and menu trees",
	Run: func(cmd *cobra.Command, args []string) {
		err := cmd.Help()
		if err != nil {
			return
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the navtree http server",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Bootstrap 初始化应用
		app, cleanup, err := bootstrap.Bootstrap(configFile, initApp)
		if err != nil {
			return err
		}

		// 启动应用并等待退出信号
		bootstrap.Run(app, cleanup)
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVarP(&configFile, "conf", "c", "conf.d/config.toml", "conf file path, e.g. -c ./conf.d/config.toml")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(newCompileCmd())
	rootCmd.AddCommand(version.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
