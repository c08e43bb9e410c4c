package plugin

import (
	"fmt"

	"github.com/BB0813/astrbot-plugin-weather-Amap/internal/domain/models"
	"github.com/BB0813/astrbot-plugin-weather-Amap/internal/domain/services"
	"github.com/BB0813/astrbot-plugin-weather-Amap/internal/infrastructure/config"
	"github.com/BB0813/astrbot-plugin-weather-Amap/pkg/logger"
)

// 心知天气版插件的固定文案
const (
	seniverseSource = "心知天气 API v3"

	seniverseMissingKeyMsg = "未配置心知天气 API Key，无法查询天气。请在管理面板中配置后再试。"
	seniverseAlertsMsg     = "抱歉，当前使用的心知天气 API 暂不支持天气预警功能。"

	seniverseHelpMsg = "=== 天气插件命令列表 ===\n" +
		"/weather current <城市>  查看当前天气\n" +
		"/weather forecast <城市> 查看未来 3 天预报与生活指数\n" +
		"/weather alerts <城市>   (暂不支持)\n" +
		"/weather help            显示本帮助\n"
)

// SeniversePlugin 基于心知天气 v3 接口的天气命令处理器
type SeniversePlugin struct {
	Config  *config.Config
	Weather *services.SeniverseService
	Render  *services.RenderService
}

var _ CommandHandler = (*SeniversePlugin)(nil)

// NewSeniversePlugin 创建心知天气版插件
func NewSeniversePlugin(cfg *config.Config, weather *services.SeniverseService, render *services.RenderService) *SeniversePlugin {
	return &SeniversePlugin{
		Config:  cfg,
		Weather: weather,
		Render:  render,
	}
}

// Current 查询实况天气并渲染为图片
func (p *SeniversePlugin) Current(city string) models.Reply {
	city = resolveCity(city, p.Config.DefaultCity)
	logger.Info("处理 current 命令, 城市: %s", city)

	if p.Config.SeniverseAPIKey == "" {
		logger.Warning("心知天气 API Key 未配置，跳过查询")
		return models.PlainReply(seniverseMissingKeyMsg)
	}

	data, err := p.Weather.GetNowWeather(city)
	if err != nil {
		logger.Error("查询城市[%s]实况天气失败: %v", city, err)
		return models.PlainReply(fmt.Sprintf("查询 [%s] 的当前天气失败，请稍后再试。", city))
	}

	imgURL, err := p.Render.RenderCurrentWeather(data, seniverseSource)
	if err != nil {
		logger.Error("渲染城市[%s]实况天气失败: %v", city, err)
		return models.PlainReply(fmt.Sprintf("查询 [%s] 的当前天气失败，请稍后再试。", city))
	}

	return models.ImageReply(imgURL)
}

// Forecast 查询 3 天预报与生活指数并渲染为图片
// 生活指数查询失败只降级为空列表，不影响预报回复
func (p *SeniversePlugin) Forecast(city string) models.Reply {
	city = resolveCity(city, p.Config.DefaultCity)
	logger.Info("处理 forecast 命令, 城市: %s", city)

	if p.Config.SeniverseAPIKey == "" {
		logger.Warning("心知天气 API Key 未配置，跳过查询")
		return models.PlainReply(seniverseMissingKeyMsg)
	}

	days, err := p.Weather.GetDailyForecast(city)
	if err != nil {
		logger.Error("查询城市[%s]预报失败: %v", city, err)
		return models.PlainReply(fmt.Sprintf("查询 [%s] 的未来天气失败，请稍后再试。", city))
	}

	suggestions, err := p.Weather.GetLifeSuggestion(city)
	if err != nil {
		logger.Warning("查询城市[%s]生活指数失败，降级为空列表: %v", city, err)
		suggestions = nil
	}

	imgURL, err := p.Render.RenderSeniverseForecast(city, days, suggestions, seniverseSource)
	if err != nil {
		logger.Error("渲染城市[%s]预报失败: %v", city, err)
		return models.PlainReply(fmt.Sprintf("查询 [%s] 的未来天气失败，请稍后再试。", city))
	}

	return models.ImageReply(imgURL)
}

// Alerts 心知天气当前套餐不提供预警数据，固定回复暂不支持
func (p *SeniversePlugin) Alerts(city string) models.Reply {
	logger.Info("处理 alerts 命令, 城市: %s", city)
	return models.PlainReply(seniverseAlertsMsg)
}

// Help 返回命令用法说明
func (p *SeniversePlugin) Help() models.Reply {
	return models.PlainReply(seniverseHelpMsg)
}
