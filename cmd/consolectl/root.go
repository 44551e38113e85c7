/*
 * @author: sun977
 * @date: 2026.08.29
 * @description: Cobra Root Command 定义
 */

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"neoconsole/internal/catalog"
	"neoconsole/internal/config"
	"neoconsole/internal/pkg/client"
)

var (
	cfgFile string
	cfgEnv  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "consolectl",
	Short: "NeoConsole 扫描控制台命令行工具",
	Long: `consolectl 是 NeoConsole 的命令行入口。
它复用控制台的模块目录与扫描引擎客户端，适合脚本化提交和跟踪扫描。

示例:
  1.查看资产
	consolectl assets
  2.查看模块目录
	consolectl modules --category Network
  3.提交扫描
	consolectl scan start -a <asset_id> -n "夜间扫描" --preset "Quick Security Assessment"
	consolectl scan start -a <asset_id> -n "定向扫描" --modules network_scan,web_application_scan --param network_scan.port_range=1-1024
  4.跟踪扫描直到结束
	consolectl scan watch <scan_id>
`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "配置文件目录 (默认: ./configs)")
	rootCmd.PersistentFlags().StringVar(&cfgEnv, "env", "", "运行环境 (dev, test, prod)")

	rootCmd.AddCommand(newAssetsCmd())
	rootCmd.AddCommand(newScansCmd())
	rootCmd.AddCommand(newModulesCmd())
	rootCmd.AddCommand(newScanCmd())
}

// loadConfig 加载CLI使用的配置
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(cfgFile, cfgEnv)
	if err != nil {
		return nil, fmt.Errorf("加载配置失败: %w", err)
	}
	return cfg, nil
}

// newEngineClient 根据配置构建引擎客户端
func newEngineClient(cfg *config.Config) client.EngineClient {
	credentials := client.NewStaticCredentialProvider(cfg.Engine.AuthToken)
	return client.NewEngineClient(&cfg.Engine, credentials)
}

// loadCatalog 构建内置模块目录
func loadCatalog() (*catalog.Catalog, error) {
	cat, err := catalog.New()
	if err != nil {
		return nil, fmt.Errorf("构建模块目录失败: %w", err)
	}
	return cat, nil
}
