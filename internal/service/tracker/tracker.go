/**
 * 扫描生命周期追踪服务
 * @author: sun977
 * @date: 2026.08.29
 * @description: 按固定间隔轮询引擎的扫描状态，直到扫描到达终态
 * @func: 单扫描顺序轮询 + 列表轮询 + 订阅句柄管理
 */
package tracker

import (
	"context"
	"sync"
	"time"

	"neoconsole/internal/config"
	"neoconsole/internal/model"
	"neoconsole/internal/pkg/client"
	"neoconsole/internal/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Tracker 扫描生命周期追踪器
// 每个订阅一个顺序轮询循环：下一次轮询在上一次轮询完成后等待固定间隔，
// 轮询之间不会重叠。状态到达终态后轮询无条件停止。
type Tracker struct {
	client         client.EngineClient
	detailInterval time.Duration // 详情视图轮询间隔
	listInterval   time.Duration // 列表视图轮询间隔
}

// NewTracker 创建扫描生命周期追踪器
func NewTracker(engineClient client.EngineClient, cfg *config.TrackerConfig) *Tracker {
	detailInterval := cfg.DetailPollInterval
	if detailInterval <= 0 {
		detailInterval = 3 * time.Second
	}
	listInterval := cfg.ListPollInterval
	if listInterval <= 0 {
		listInterval = 10 * time.Second
	}
	return &Tracker{
		client:         engineClient,
		detailInterval: detailInterval,
		listInterval:   listInterval,
	}
}

// Subscription 单个扫描的订阅句柄
// 持有方通过 Updates 接收最新快照，视图销毁时调用 Close；
// Close 之后在途的轮询响应会被直接丢弃，不再更新任何状态。
type Subscription struct {
	scanID    string
	updates   chan *model.Scan
	done      chan struct{}
	closeOnce sync.Once

	mu           sync.RWMutex
	snapshot     *model.Scan
	terminalSeen bool
}

// ScanID 返回订阅的扫描ID
func (s *Subscription) ScanID() string {
	return s.scanID
}

// Updates 返回快照推送通道，轮询停止后通道关闭
func (s *Subscription) Updates() <-chan *model.Scan {
	return s.updates
}

// Snapshot 返回最近一次成功轮询的快照，轮询失败时保留上一次的结果
func (s *Subscription) Snapshot() *model.Scan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Close 关闭订阅，停止轮询并丢弃在途响应
func (s *Subscription) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
	})
}

// closed 检查订阅是否已关闭
func (s *Subscription) closed() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// apply 应用一次轮询结果，返回是否到达终态
// 终态之后再观察到非终态属于过期读，记录日志后忽略
func (s *Subscription) apply(scan *model.Scan) (terminal bool, applied bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.terminalSeen && !scan.Status.IsTerminal() {
		logger.LogSystemEvent("tracker", "stale_status", "终态之后收到非终态状态，忽略", logrus.WarnLevel, map[string]interface{}{
			"scan_id": s.scanID,
			"status":  string(scan.Status),
		})
		return true, false
	}

	s.snapshot = scan
	if scan.Status.IsTerminal() {
		s.terminalSeen = true
	}
	return s.terminalSeen, true
}

// WatchScan 订阅单个扫描的状态变化
// 轮询循环在返回的订阅被 Close、ctx 取消或扫描到达终态时结束
func (t *Tracker) WatchScan(ctx context.Context, scanID string) *Subscription {
	sub := &Subscription{
		scanID:  scanID,
		updates: make(chan *model.Scan, 1),
		done:    make(chan struct{}),
	}
	go t.pollScan(ctx, sub)
	return sub
}

func (t *Tracker) pollScan(ctx context.Context, sub *Subscription) {
	defer close(sub.updates)

	for {
		scan, err := t.client.GetScan(ctx, sub.scanID)

		// 轮询完成后先检查订阅状态，已关闭则丢弃响应
		if sub.closed() || ctx.Err() != nil {
			return
		}

		if err != nil {
			// 失败的轮询保留上一次成功的快照
			logger.LogSystemEvent("tracker", "poll_failed", err.Error(), logrus.WarnLevel, map[string]interface{}{
				"scan_id": sub.scanID,
			})
		} else {
			terminal, applied := sub.apply(scan)
			if applied {
				t.deliver(sub, scan)
			}
			if terminal {
				return
			}
		}

		// 间隔从本次轮询完成时开始计算
		select {
		case <-sub.done:
			return
		case <-ctx.Done():
			return
		case <-time.After(t.detailInterval):
		}
	}
}

// deliver 推送最新快照，未被消费的旧快照会被新快照顶替
func (t *Tracker) deliver(sub *Subscription, scan *model.Scan) {
	for {
		select {
		case sub.updates <- scan:
			return
		case <-sub.done:
			return
		default:
			select {
			case <-sub.updates:
			default:
			}
		}
	}
}

// ListSubscription 扫描列表的订阅句柄
type ListSubscription struct {
	updates   chan []model.Scan
	done      chan struct{}
	closeOnce sync.Once

	mu       sync.RWMutex
	snapshot []model.Scan
}

// Updates 返回列表快照推送通道
func (s *ListSubscription) Updates() <-chan []model.Scan {
	return s.updates
}

// Snapshot 返回最近一次成功轮询的列表快照
func (s *ListSubscription) Snapshot() []model.Scan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Close 关闭列表订阅
func (s *ListSubscription) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
	})
}

func (s *ListSubscription) closed() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// WatchScanList 订阅扫描列表，按列表轮询间隔持续刷新直到订阅关闭
func (t *Tracker) WatchScanList(ctx context.Context) *ListSubscription {
	sub := &ListSubscription{
		updates: make(chan []model.Scan, 1),
		done:    make(chan struct{}),
	}
	go t.pollScanList(ctx, sub)
	return sub
}

func (t *Tracker) pollScanList(ctx context.Context, sub *ListSubscription) {
	defer close(sub.updates)

	for {
		scans, err := t.client.ListScans(ctx)

		if sub.closed() || ctx.Err() != nil {
			return
		}

		if err != nil {
			logger.LogSystemEvent("tracker", "list_poll_failed", err.Error(), logrus.WarnLevel, nil)
		} else {
			sub.mu.Lock()
			sub.snapshot = scans
			sub.mu.Unlock()

			select {
			case sub.updates <- scans:
			case <-sub.done:
				return
			default:
				select {
				case <-sub.updates:
				default:
				}
				select {
				case sub.updates <- scans:
				default:
				}
			}
		}

		select {
		case <-sub.done:
			return
		case <-ctx.Done():
			return
		case <-time.After(t.listInterval):
		}
	}
}
