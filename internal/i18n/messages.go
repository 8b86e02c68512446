package i18n

var messages = map[Locale]map[string]string{
	EnUS: {
		"dashboard.title":         "Server Status",
		"dashboard.loading":       "Loading...",
		"dashboard.fetchError":    "Failed to load server data",
		"dashboard.refreshFailed": "Refresh failed, showing last data",
		"dashboard.retryHint":     "Press r to retry",
		"dashboard.noServers":     "No servers match the current filters",
		"dashboard.updated":       "updated",
		"dashboard.hosts":         "%d hosts",
		"dashboard.online":        "%d online",
		"dashboard.max":           "Max",
		"dashboard.avg":           "Avg",
		"dashboard.current":       "Now",

		"summary.total":        "Total",
		"summary.online":       "Online",
		"summary.offline":      "Offline",
		"summary.offlineHosts": "Offline hosts",

		"filters.status":   "Status",
		"filters.location": "Location",
		"filters.type":     "Type",
		"filters.all":      "All",

		"status.online":  "online",
		"status.offline": "offline",

		"server.uptime":       "Uptime",
		"server.offlineSince": "Offline since",
		"server.load":         "Load",
		"server.latency":      "Latency",
		"server.cpu":          "CPU",
		"server.cpuUsage":     "CPU usage",
		"server.memory":       "RAM",
		"server.swap":         "Swap",
		"server.disk":         "Disk",
		"server.network":      "Net",
		"server.monthly":      "Month",
		"server.total":        "Total",
		"server.connections":  "TCP/UDP",
		"server.processes":    "Proc",
		"server.threads":      "Threads",
		"server.timeout":      "timeout",
		"server.unavailable":  "n/a",
		"server.expires":      "Expires",
		"server.expired":      "expired",
		"server.os":           "OS",
		"server.spec":         "Spec",
		"server.labels":       "Labels",

		"sort.label":    "Sort",
		"sort.default":  "Default",
		"sort.name":     "Name",
		"sort.location": "Location",
		"sort.cpu":      "CPU",
		"sort.memory":   "Memory",
		"sort.disk":     "Disk",
		"sort.uptime":   "Uptime",
		"sort.load":     "Load",

		"display.card": "Cards",
		"display.row":  "Rows",
		"chart.window": "CPU %dm",

		"server.download":   "Down",
		"server.upload":     "Up",
		"server.monthTotal": "Month/Total",
		"help.title":        "Keyboard Shortcuts",
		"help.close":        "Press ? to close",
		"help.quit":         "Quit",
		"help.refresh":      "Refresh now",
		"help.sort":         "Cycle sort key",
		"help.direction":    "Flip sort direction",
		"help.window":       "Cycle CPU chart window",
		"help.chart":        "Toggle CPU chart",
		"help.units":        "Toggle binary/decimal units",
		"help.theme":        "Cycle theme",
		"help.locale":       "Cycle language",
		"help.display":      "Toggle cards/rows",
		"help.summary":      "Toggle summary",
		"help.filters":      "Toggle filter bar",
		"help.status":       "Cycle status filter",
		"help.location":     "Cycle location filter",
		"help.type":         "Cycle type filter",
		"help.navigate":     "Move selection",
		"help.detail":       "Open host detail",
		"help.back":         "Back / close",
		"help.help":         "Toggle help",

		"common.noData": "No data",
	},
	ZhCN: {
		"dashboard.title":         "服务器状态",
		"dashboard.loading":       "加载中...",
		"dashboard.fetchError":    "获取服务器数据失败",
		"dashboard.refreshFailed": "刷新失败，显示上次数据",
		"dashboard.retryHint":     "按 r 重试",
		"dashboard.noServers":     "没有符合筛选条件的服务器",
		"dashboard.updated":       "更新于",
		"dashboard.hosts":         "%d 台主机",
		"dashboard.online":        "%d 台在线",
		"dashboard.max":           "最大",
		"dashboard.avg":           "平均",
		"dashboard.current":       "当前",

		"summary.total":        "总数",
		"summary.online":       "在线",
		"summary.offline":      "离线",
		"summary.offlineHosts": "离线主机",

		"filters.status":   "状态",
		"filters.location": "位置",
		"filters.type":     "类型",
		"filters.all":      "全部",

		"status.online":  "在线",
		"status.offline": "离线",

		"server.uptime":       "在线时间",
		"server.offlineSince": "离线于",
		"server.load":         "负载",
		"server.latency":      "延迟",
		"server.cpu":          "CPU",
		"server.cpuUsage":     "CPU 使用率",
		"server.memory":       "内存",
		"server.swap":         "交换",
		"server.disk":         "硬盘",
		"server.network":      "网络",
		"server.monthly":      "本月",
		"server.total":        "总计",
		"server.connections":  "TCP/UDP",
		"server.processes":    "进程",
		"server.threads":      "线程",
		"server.timeout":      "超时",
		"server.unavailable":  "不可用",
		"server.expires":      "到期",
		"server.expired":      "已过期",
		"server.os":           "系统",
		"server.spec":         "配置",
		"server.labels":       "标签",

		"sort.label":    "排序",
		"sort.default":  "默认",
		"sort.name":     "名称",
		"sort.location": "位置",
		"sort.cpu":      "CPU",
		"sort.memory":   "内存",
		"sort.disk":     "硬盘",
		"sort.uptime":   "在线时间",
		"sort.load":     "负载",

		"display.card": "卡片",
		"display.row":  "列表",
		"chart.window": "CPU %d 分钟",

		"server.download":   "下载",
		"server.upload":     "上传",
		"server.monthTotal": "月/总",
		"help.title":        "快捷键",
		"help.close":        "按 ? 关闭",
		"help.quit":         "退出",
		"help.refresh":      "立即刷新",
		"help.sort":         "切换排序字段",
		"help.direction":    "切换排序方向",
		"help.window":       "切换 CPU 图表时长",
		"help.chart":        "显示/隐藏 CPU 图表",
		"help.units":        "切换二进制/十进制单位",
		"help.theme":        "切换主题",
		"help.locale":       "切换语言",
		"help.display":      "切换卡片/列表",
		"help.summary":      "显示/隐藏概览",
		"help.filters":      "显示/隐藏筛选栏",
		"help.status":       "切换状态筛选",
		"help.location":     "切换位置筛选",
		"help.type":         "切换类型筛选",
		"help.navigate":     "移动选择",
		"help.detail":       "查看主机详情",
		"help.back":         "返回 / 关闭",
		"help.help":         "显示/隐藏帮助",

		"common.noData": "暂无数据",
	},
	ZhTW: {
		"dashboard.title":         "伺服器狀態",
		"dashboard.loading":       "載入中...",
		"dashboard.fetchError":    "獲取伺服器資料失敗",
		"dashboard.refreshFailed": "重新整理失敗，顯示上次資料",
		"dashboard.retryHint":     "按 r 重試",
		"dashboard.noServers":     "沒有符合篩選條件的伺服器",
		"dashboard.updated":       "更新於",
		"dashboard.hosts":         "%d 台主機",
		"dashboard.online":        "%d 台在線",
		"dashboard.max":           "最大",
		"dashboard.avg":           "平均",
		"dashboard.current":       "目前",

		"summary.total":        "總數",
		"summary.online":       "在線",
		"summary.offline":      "離線",
		"summary.offlineHosts": "離線主機",

		"filters.status":   "狀態",
		"filters.location": "位置",
		"filters.type":     "類型",
		"filters.all":      "全部",

		"status.online":  "在線",
		"status.offline": "離線",

		"server.uptime":       "在線時間",
		"server.offlineSince": "離線於",
		"server.load":         "負載",
		"server.latency":      "延遲",
		"server.cpu":          "CPU",
		"server.cpuUsage":     "CPU 使用率",
		"server.memory":       "記憶體",
		"server.swap":         "交換",
		"server.disk":         "硬碟",
		"server.network":      "網路",
		"server.monthly":      "本月",
		"server.total":        "總計",
		"server.connections":  "TCP/UDP",
		"server.processes":    "程序",
		"server.threads":      "執行緒",
		"server.timeout":      "逾時",
		"server.unavailable":  "不可用",
		"server.expires":      "到期",
		"server.expired":      "已過期",
		"server.os":           "系統",
		"server.spec":         "規格",
		"server.labels":       "標籤",

		"sort.label":    "排序",
		"sort.default":  "預設",
		"sort.name":     "名稱",
		"sort.location": "位置",
		"sort.cpu":      "CPU",
		"sort.memory":   "記憶體",
		"sort.disk":     "硬碟",
		"sort.uptime":   "在線時間",
		"sort.load":     "負載",

		"display.card": "卡片",
		"display.row":  "列表",
		"chart.window": "CPU %d 分鐘",

		"server.download":   "下載",
		"server.upload":     "上傳",
		"server.monthTotal": "月/總",
		"help.title":        "快捷鍵",
		"help.close":        "按 ? 關閉",
		"help.quit":         "退出",
		"help.refresh":      "立即重新整理",
		"help.sort":         "切換排序欄位",
		"help.direction":    "切換排序方向",
		"help.window":       "切換 CPU 圖表時長",
		"help.chart":        "顯示/隱藏 CPU 圖表",
		"help.units":        "切換二進位/十進位單位",
		"help.theme":        "切換主題",
		"help.locale":       "切換語言",
		"help.display":      "切換卡片/列表",
		"help.summary":      "顯示/隱藏概覽",
		"help.filters":      "顯示/隱藏篩選列",
		"help.status":       "切換狀態篩選",
		"help.location":     "切換位置篩選",
		"help.type":         "切換類型篩選",
		"help.navigate":     "移動選擇",
		"help.detail":       "查看主機詳情",
		"help.back":         "返回 / 關閉",
		"help.help":         "顯示/隱藏說明",

		"common.noData": "暫無資料",
	},
}
