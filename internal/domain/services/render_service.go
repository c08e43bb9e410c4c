package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/flosch/pongo2/v6"
	"github.com/google/uuid"

	"github.com/BB0813/astrbot-plugin-weather-Amap/internal/domain/models"
	"github.com/BB0813/astrbot-plugin-weather-Amap/internal/infrastructure/config"
	"github.com/BB0813/astrbot-plugin-weather-Amap/pkg/logger"
)

// RenderService 负责模板填充并调用外部 HTML 转图片服务
// 每次渲染都是 (模板, 数据) 的无状态转换，结果为托管图片的 URL
type RenderService struct {
	Config *config.Config
	client *http.Client
}

// NewRenderService 创建渲染服务
func NewRenderService(cfg *config.Config) *RenderService {
	return &RenderService{
		Config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.HTTPTimeoutSeconds) * time.Second,
		},
	}
}

// renderRequest 是发送给渲染服务的请求体
type renderRequest struct {
	HTML      string `json:"html"`
	ReturnURL bool   `json:"return_url"`
}

// renderResponse 是渲染服务的响应体
type renderResponse struct {
	URL string `json:"url"`
}

// RenderTemplate 将数据代入指定模板，返回填充后的 HTML
// 字段完整性由天气服务保证，模板对缺失键渲染为空
func (s *RenderService) RenderTemplate(templateID string, data pongo2.Context) (string, error) {
	tmpl, ok := compiledTemplates[templateID]
	if !ok {
		return "", fmt.Errorf("未知的模板标识: %s", templateID)
	}

	html, err := tmpl.Execute(data)
	if err != nil {
		return "", fmt.Errorf("模板[%s]渲染失败: %w", templateID, err)
	}
	return html, nil
}

// RenderToImage 填充模板并提交渲染服务，返回图片 URL
func (s *RenderService) RenderToImage(templateID string, data pongo2.Context) (string, error) {
	html, err := s.RenderTemplate(templateID, data)
	if err != nil {
		return "", err
	}

	requestID := uuid.New().String()
	logger.Debug("渲染请求 %s: 模板=%s", requestID, templateID)

	body, err := json.Marshal(renderRequest{HTML: html, ReturnURL: true})
	if err != nil {
		return "", fmt.Errorf("构造渲染请求失败: %w", err)
	}

	resp, err := s.client.Post(s.Config.RenderAPIURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("渲染服务请求失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Error("渲染请求 %s: 渲染服务返回非 200 状态: %d", requestID, resp.StatusCode)
		return "", fmt.Errorf("渲染服务返回状态码 %d", resp.StatusCode)
	}

	var result renderResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("解析渲染响应失败: %w", err)
	}

	if result.URL == "" {
		return "", fmt.Errorf("渲染服务未返回图片地址")
	}

	logger.Debug("渲染请求 %s: 图片地址 %s", requestID, result.URL)
	return result.URL, nil
}

// RenderCurrentWeather 渲染当前天气图片
func (s *RenderService) RenderCurrentWeather(data *models.CurrentWeather, source string) (string, error) {
	return s.RenderToImage(TemplateCurrentWeather, pongo2.Context{
		"city":       data.City,
		"desc":       data.Desc,
		"temp":       data.Temp,
		"feels_like": data.FeelsLike,
		"humidity":   data.Humidity,
		"wind_speed": data.WindSpeed,
		"source":     source,
	})
}

// RenderForecast 渲染多日预报图片
func (s *RenderService) RenderForecast(city string, days []models.ForecastDay, source string) (string, error) {
	return s.RenderToImage(TemplateForecast, pongo2.Context{
		"city":       city,
		"days":       forecastDaysContext(days),
		"total_days": len(days),
		"source":     source,
	})
}

// RenderSeniverseForecast 渲染心知天气版预报图片，附带生活指数
func (s *RenderService) RenderSeniverseForecast(city string, days []models.ForecastDay, suggestions []models.LifeSuggestion, source string) (string, error) {
	sgs := make([]pongo2.Context, 0, len(suggestions))
	for _, sg := range suggestions {
		sgs = append(sgs, pongo2.Context{"name": sg.Name, "brief": sg.Brief})
	}

	return s.RenderToImage(TemplateSeniverseForecast, pongo2.Context{
		"city":        city,
		"days":        forecastDaysContext(days),
		"total_days":  len(days),
		"suggestions": sgs,
		"source":      source,
	})
}

// RenderAlerts 渲染天气预警图片
func (s *RenderService) RenderAlerts(city string, alerts []models.WeatherAlert, source string) (string, error) {
	items := make([]pongo2.Context, 0, len(alerts))
	for _, a := range alerts {
		items = append(items, pongo2.Context{
			"event":       a.Event,
			"start_str":   a.StartStr,
			"end_str":     a.EndStr,
			"description": a.Description,
		})
	}

	return s.RenderToImage(TemplateAlerts, pongo2.Context{
		"city":   city,
		"alerts": items,
		"source": source,
	})
}

// forecastDaysContext 将预报天列表转换为模板上下文
func forecastDaysContext(days []models.ForecastDay) []pongo2.Context {
	out := make([]pongo2.Context, 0, len(days))
	for _, day := range days {
		out = append(out, pongo2.Context{
			"date_str":    day.DateStr,
			"weekday_str": day.WeekdayStr,
			"desc":        day.Desc,
			"desc_night":  day.DescNight,
			"temp_day":    day.TempDay,
			"temp_night":  day.TempNight,
			"temp_min":    day.TempMin,
			"temp_max":    day.TempMax,
			"humidity":    day.Humidity,
			"wind_speed":  day.WindSpeed,
		})
	}
	return out
}
