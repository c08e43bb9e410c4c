package plugin

import (
	"github.com/BB0813/astrbot-plugin-weather-Amap/internal/domain/models"
)

// 子命令名称
const (
	CommandCurrent  = "current"
	CommandForecast = "forecast"
	CommandAlerts   = "alerts"
	CommandHelp     = "help"
)

// CommandHandler 定义天气插件的聊天子命令集
// 命令分发与回复信封由宿主机器人框架负责，这里只做单条命令的编排
type CommandHandler interface {
	// Current 查询当前天气，返回图片回复或失败文本
	Current(city string) models.Reply
	// Forecast 查询多日预报，返回图片回复或失败文本
	Forecast(city string) models.Reply
	// Alerts 查询天气预警，当前 API 版本一律回复暂不支持
	Alerts(city string) models.Reply
	// Help 返回固定的用法说明
	Help() models.Reply
}

// resolveCity 取命令参数中的城市，未携带时回落到配置的默认城市
func resolveCity(city, defaultCity string) string {
	if city == "" {
		return defaultCity
	}
	return city
}
