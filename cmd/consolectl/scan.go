/*
 * @author: sun977
 * @date: 2026.08.29
 * @description: 扫描子命令(start/watch/cancel)
 */

package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"neoconsole/internal/catalog"
	"neoconsole/internal/model"
	"neoconsole/internal/service/builder"
	"neoconsole/internal/service/schema"
	"neoconsole/internal/service/tracker"
)

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "扫描操作",
	}
	cmd.AddCommand(newScanStartCmd())
	cmd.AddCommand(newScanWatchCmd())
	cmd.AddCommand(newScanCancelCmd())
	return cmd
}

func newScanStartCmd() *cobra.Command {
	var (
		assetID    string
		scanName   string
		presetName string
		moduleKeys []string
		params     []string
	)

	cmd := &cobra.Command{
		Use:   "start",
		Short: "组装并提交扫描",
		Long: `从内置模块目录组装扫描请求并提交给引擎。
不指定 --preset 和 --modules 时使用默认模块选择。`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			cat, err := loadCatalog()
			if err != nil {
				return err
			}
			engineClient := newEngineClient(cfg)
			ctx := context.Background()

			// 模块选择：默认选择 → 预设 → 显式列表
			selection := cat.DefaultSelection()
			if presetName != "" {
				presetSelection, ok := cat.PresetSelection(presetName)
				if !ok {
					return fmt.Errorf("预设 %q 不存在", presetName)
				}
				selection = presetSelection
			}
			if len(moduleKeys) > 0 {
				for key := range selection {
					selection[key] = false
				}
				for _, key := range moduleKeys {
					if _, ok := cat.GetByKey(key); !ok {
						return fmt.Errorf("扫描模块 %q 不存在", key)
					}
					selection[key] = true
				}
			}

			moduleConfigs, err := parseParamFlags(cat, params)
			if err != nil {
				return err
			}

			asset, err := engineClient.GetAsset(ctx, assetID)
			if err != nil {
				return err
			}

			requestBuilder := builder.New(cat, schema.NewEngine())
			scanReq, validationErrs := requestBuilder.Build(asset, scanName, selection, moduleConfigs)
			if validationErrs.HasErrors() {
				for _, fieldErr := range validationErrs {
					pterm.Warning.Printf("%s: %s\n", fieldErr.Field, fieldErr.Reason)
				}
				return fmt.Errorf("扫描请求校验失败，共 %d 个字段错误", len(validationErrs))
			}

			result, err := engineClient.SubmitScan(ctx, scanReq)
			if err != nil {
				return err
			}

			pterm.Success.Printf("扫描已提交: %s\n", result.ScanID)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&assetID, "asset", "a", "", "目标资产ID")
	flags.StringVarP(&scanName, "name", "n", "", "扫描名称")
	flags.StringVar(&presetName, "preset", "", "模块选择预设名称")
	flags.StringSliceVar(&moduleKeys, "modules", nil, "启用的模块key列表(逗号分隔)")
	flags.StringArrayVar(&params, "param", nil, "模块参数，格式 module.field=value，可重复")

	cmd.MarkFlagRequired("asset")
	cmd.MarkFlagRequired("name")

	return cmd
}

// parseParamFlags 解析 module.field=value 形式的参数
// 按目录中的字段类型预转换布尔值，其余值按字符串传入由参数模式引擎转换
func parseParamFlags(cat *catalog.Catalog, params []string) (map[string]map[string]interface{}, error) {
	if len(params) == 0 {
		return nil, nil
	}

	moduleConfigs := make(map[string]map[string]interface{})
	for _, param := range params {
		kv := strings.SplitN(param, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("参数格式错误 %q，应为 module.field=value", param)
		}
		path := strings.SplitN(kv[0], ".", 2)
		if len(path) != 2 || path[0] == "" || path[1] == "" {
			return nil, fmt.Errorf("参数格式错误 %q，应为 module.field=value", param)
		}
		moduleKey, fieldName := path[0], path[1]

		def, ok := cat.GetByKey(moduleKey)
		if !ok {
			return nil, fmt.Errorf("扫描模块 %q 不存在", moduleKey)
		}
		field, ok := def.GetField(fieldName)
		if !ok {
			return nil, fmt.Errorf("模块 %s 没有参数字段 %q", moduleKey, fieldName)
		}

		var value interface{} = kv[1]
		if field.Type == model.FieldTypeBoolean {
			parsed, err := strconv.ParseBool(kv[1])
			if err != nil {
				return nil, fmt.Errorf("参数 %s 应为布尔值，收到 %q", kv[0], kv[1])
			}
			value = parsed
		}

		if moduleConfigs[moduleKey] == nil {
			moduleConfigs[moduleKey] = make(map[string]interface{})
		}
		moduleConfigs[moduleKey][fieldName] = value
	}
	return moduleConfigs, nil
}

func newScanWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <scan_id>",
		Short: "跟踪扫描直到终态",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			engineClient := newEngineClient(cfg)
			scanID := args[0]

			scanTracker := tracker.NewTracker(engineClient, &cfg.Tracker)
			sub := scanTracker.WatchScan(context.Background(), scanID)
			defer sub.Close()

			pterm.Info.Printf("开始跟踪扫描 %s，轮询间隔 %s\n", scanID, cfg.Tracker.DetailPollInterval)

			printed := 0
			for scan := range sub.Updates() {
				// 进度序列按服务端返回的顺序渲染，只打印新增部分
				if len(scan.ProgressUpdates) < printed {
					printed = 0
				}
				for _, update := range scan.ProgressUpdates[printed:] {
					pterm.Info.Printf("[%s] %s\n", update.Timestamp.Format("15:04:05"), update.Message)
				}
				printed = len(scan.ProgressUpdates)

				if scan.Status.IsTerminal() {
					pterm.Success.Printf("扫描结束: %s (发现 %d, 攻击路径 %d)\n",
						scan.Status, scan.TotalFindingsCount, scan.TotalAttackPathsCount)
				}
			}

			if snapshot := sub.Snapshot(); snapshot == nil {
				return fmt.Errorf("无法获取扫描 %s 的状态", scanID)
			}
			return nil
		},
	}
}

func newScanCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <scan_id>",
		Short: "请求取消扫描",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			engineClient := newEngineClient(cfg)

			if err := engineClient.CancelScan(context.Background(), args[0]); err != nil {
				return err
			}

			// 取消是异步的，实际状态以引擎后续上报为准
			pterm.Success.Println("取消请求已发送，可用 scan watch 跟踪最终状态")
			return nil
		},
	}
}
