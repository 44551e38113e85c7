/*
 * @author: sun977
 * @date: 2026.08.29
 * @description: 扫描列表命令
 */

package main

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newScansCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scans",
		Short: "列出扫描及其状态",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			engineClient := newEngineClient(cfg)

			scans, err := engineClient.ListScans(context.Background())
			if err != nil {
				return err
			}
			if len(scans) == 0 {
				pterm.Info.Println("没有扫描记录")
				return nil
			}

			rows := pterm.TableData{{"ID", "名称", "状态", "进度", "发现", "攻击路径"}}
			for _, scan := range scans {
				rows = append(rows, []string{
					scan.ScanID,
					scan.ScanName,
					string(scan.Status),
					fmt.Sprintf("%d%%", scan.Progress),
					fmt.Sprintf("%d", scan.TotalFindingsCount),
					fmt.Sprintf("%d", scan.TotalAttackPathsCount),
				})
			}
			return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
		},
	}
}
