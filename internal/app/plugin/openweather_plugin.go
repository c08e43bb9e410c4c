package plugin

import (
	"fmt"

	"github.com/BB0813/astrbot-plugin-weather-Amap/internal/domain/models"
	"github.com/BB0813/astrbot-plugin-weather-Amap/internal/domain/services"
	"github.com/BB0813/astrbot-plugin-weather-Amap/internal/infrastructure/config"
	"github.com/BB0813/astrbot-plugin-weather-Amap/pkg/logger"
)

// OpenWeatherMap 版插件的固定文案
const (
	openWeatherSource = "OpenWeatherMap API 2.5"

	openWeatherMissingKeyMsg = "未配置 OpenWeatherMap API Key，无法查询天气。请在管理面板中配置后再试。"
	openWeatherAlertsMsg     = "抱歉，当前使用的 2.5 API 不支持天气预警功能。"

	openWeatherHelpMsg = "=== 天气插件命令列表 ===\n" +
		"/weather current <城市>  查看当前天气\n" +
		"/weather forecast <城市> 查看未来 3 天预报\n" +
		"/weather alerts <城市>   (2.5 API 暂不支持)\n" +
		"/weather help            显示本帮助\n"
)

// OpenWeatherPlugin 基于 OpenWeatherMap v2.5 接口的天气命令处理器
type OpenWeatherPlugin struct {
	Config  *config.Config
	Weather *services.OpenWeatherService
	Render  *services.RenderService
}

var _ CommandHandler = (*OpenWeatherPlugin)(nil)

// NewOpenWeatherPlugin 创建 OpenWeatherMap 版插件
func NewOpenWeatherPlugin(cfg *config.Config, weather *services.OpenWeatherService, render *services.RenderService) *OpenWeatherPlugin {
	return &OpenWeatherPlugin{
		Config:  cfg,
		Weather: weather,
		Render:  render,
	}
}

// Current 查询当前天气并渲染为图片
func (p *OpenWeatherPlugin) Current(city string) models.Reply {
	city = resolveCity(city, p.Config.DefaultCity)
	logger.Info("处理 current 命令, 城市: %s", city)

	if p.Config.OpenWeatherAPIKey == "" {
		logger.Warning("OpenWeatherMap API Key 未配置，跳过查询")
		return models.PlainReply(openWeatherMissingKeyMsg)
	}

	data, err := p.Weather.GetCurrentWeather(city)
	if err != nil {
		logger.Error("查询城市[%s]当前天气失败: %v", city, err)
		return models.PlainReply(fmt.Sprintf("查询 [%s] 的当前天气失败，请稍后再试。", city))
	}

	imgURL, err := p.Render.RenderCurrentWeather(data, openWeatherSource)
	if err != nil {
		logger.Error("渲染城市[%s]当前天气失败: %v", city, err)
		return models.PlainReply(fmt.Sprintf("查询 [%s] 的当前天气失败，请稍后再试。", city))
	}

	return models.ImageReply(imgURL)
}

// Forecast 查询未来 3 天预报并渲染为图片
func (p *OpenWeatherPlugin) Forecast(city string) models.Reply {
	city = resolveCity(city, p.Config.DefaultCity)
	logger.Info("处理 forecast 命令, 城市: %s", city)

	if p.Config.OpenWeatherAPIKey == "" {
		logger.Warning("OpenWeatherMap API Key 未配置，跳过查询")
		return models.PlainReply(openWeatherMissingKeyMsg)
	}

	days, err := p.Weather.GetForecastWeather(city)
	if err != nil {
		logger.Error("查询城市[%s]预报失败: %v", city, err)
		return models.PlainReply(fmt.Sprintf("查询 [%s] 的未来天气失败，请稍后再试。", city))
	}

	imgURL, err := p.Render.RenderForecast(city, days, openWeatherSource)
	if err != nil {
		logger.Error("渲染城市[%s]预报失败: %v", city, err)
		return models.PlainReply(fmt.Sprintf("查询 [%s] 的未来天气失败，请稍后再试。", city))
	}

	return models.ImageReply(imgURL)
}

// Alerts v2.5 接口不提供预警数据，固定回复暂不支持
func (p *OpenWeatherPlugin) Alerts(city string) models.Reply {
	logger.Info("处理 alerts 命令, 城市: %s", city)
	return models.PlainReply(openWeatherAlertsMsg)
}

// Help 返回命令用法说明
func (p *OpenWeatherPlugin) Help() models.Reply {
	return models.PlainReply(openWeatherHelpMsg)
}
