/*
 * @author: sun977
 * @date: 2026.08.29
 * @description: 模块目录命令
 */

package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"neoconsole/internal/model"
)

func newModulesCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "modules",
		Short: "打印扫描模块目录",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog()
			if err != nil {
				return err
			}

			var modules []model.ScanModuleDefinition
			if category != "" {
				modules = cat.GetByCategory(category)
				if len(modules) == 0 {
					pterm.Warning.Printf("分类 %q 下没有模块，可用分类: %v\n", category, cat.ListCategories())
					return nil
				}
			} else {
				modules = cat.Definitions()
			}

			rows := pterm.TableData{{"Key", "名称", "分类", "参数数"}}
			for _, def := range modules {
				rows = append(rows, []string{
					def.Key,
					def.Name,
					def.Category,
					fmt.Sprintf("%d", len(def.Parameters)),
				})
			}
			if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
				return err
			}

			pterm.Info.Printf("共 %d 个模块\n", len(modules))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "按分类过滤模块")
	return cmd
}
