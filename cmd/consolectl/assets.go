/*
 * @author: sun977
 * @date: 2026.08.29
 * @description: 资产列表命令
 */

package main

import (
	"context"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newAssetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assets",
		Short: "列出扫描引擎维护的资产",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			engineClient := newEngineClient(cfg)

			assets, err := engineClient.ListAssets(context.Background())
			if err != nil {
				return err
			}
			if len(assets) == 0 {
				pterm.Info.Println("没有可用资产")
				return nil
			}

			rows := pterm.TableData{{"ID", "类型", "值", "名称"}}
			for _, asset := range assets {
				rows = append(rows, []string{asset.AssetID, string(asset.Type), asset.Value, asset.Name})
			}
			return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
		},
	}
}
