package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/BB0813/astrbot-plugin-weather-Amap/internal/domain/models"
	"github.com/BB0813/astrbot-plugin-weather-Amap/internal/infrastructure/config"
	"github.com/BB0813/astrbot-plugin-weather-Amap/pkg/logger"
	"github.com/BB0813/astrbot-plugin-weather-Amap/utils"
)

// 心知天气 v3 固定请求参数
const (
	seniverseLang = "zh-Hans"
	seniverseUnit = "c"

	// daily 接口从当天开始取 3 天
	seniverseForecastDays = 3
)

// SeniverseService 调用心知天气 v3 接口获取天气数据
// 该接口直接按城市名查询，无需地理编码
type SeniverseService struct {
	Config *config.Config
	client *http.Client
}

// NewSeniverseService 创建心知天气服务
func NewSeniverseService(cfg *config.Config) *SeniverseService {
	return &SeniverseService{
		Config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.HTTPTimeoutSeconds) * time.Second,
		},
	}
}

// seniverseNowResponse 表示 /v3/weather/now.json 的响应
// 心知天气的数值字段均为字符串
type seniverseNowResponse struct {
	Results []struct {
		Location struct {
			Name string `json:"name"`
		} `json:"location"`
		Now struct {
			Text        string `json:"text"`
			Temperature string `json:"temperature"`
			FeelsLike   string `json:"feels_like"`
			Humidity    string `json:"humidity"`
			WindSpeed   string `json:"wind_speed"`
		} `json:"now"`
	} `json:"results"`
}

// seniverseDailyResponse 表示 /v3/weather/daily.json 的响应
type seniverseDailyResponse struct {
	Results []struct {
		Location struct {
			Name string `json:"name"`
		} `json:"location"`
		Daily []struct {
			Date      string `json:"date"`
			TextDay   string `json:"text_day"`
			TextNight string `json:"text_night"`
			High      string `json:"high"`
			Low       string `json:"low"`
			WindSpeed string `json:"wind_speed"`
			Humidity  string `json:"humidity"`
		} `json:"daily"`
	} `json:"results"`
}

// seniverseSuggestionItem 表示一项生活指数
type seniverseSuggestionItem struct {
	Brief string `json:"brief"`
}

// seniverseSuggestionResponse 表示 /v3/life/suggestion.json 的响应
type seniverseSuggestionResponse struct {
	Results []struct {
		Suggestion struct {
			Dressing   seniverseSuggestionItem `json:"dressing"`
			Umbrella   seniverseSuggestionItem `json:"umbrella"`
			CarWashing seniverseSuggestionItem `json:"car_washing"`
			Flu        seniverseSuggestionItem `json:"flu"`
			Sport      seniverseSuggestionItem `json:"sport"`
			UV         seniverseSuggestionItem `json:"uv"`
		} `json:"suggestion"`
	} `json:"results"`
}

// GetNowWeather 获取指定城市的实况天气
func (s *SeniverseService) GetNowWeather(city string) (*models.CurrentWeather, error) {
	reqURL := s.buildURL("/v3/weather/now.json", city, nil)

	var resp seniverseNowResponse
	if err := s.getJSON(reqURL, &resp); err != nil {
		return nil, fmt.Errorf("实况天气请求失败: %w", err)
	}

	if len(resp.Results) == 0 {
		return nil, fmt.Errorf("实况天气：城市[%s]无结果", city)
	}

	now := resp.Results[0].Now
	desc := now.Text
	if desc == "" {
		desc = defaultWeatherDesc
	}

	return &models.CurrentWeather{
		City:      city,
		Desc:      desc,
		Temp:      parseNumber(now.Temperature),
		FeelsLike: parseNumber(now.FeelsLike),
		Humidity:  parseNumber(now.Humidity),
		WindSpeed: parseNumber(now.WindSpeed),
	}, nil
}

// GetDailyForecast 获取指定城市从当天起 3 天的预报
func (s *SeniverseService) GetDailyForecast(city string) ([]models.ForecastDay, error) {
	extra := url.Values{}
	extra.Set("start", "0")
	extra.Set("days", strconv.Itoa(seniverseForecastDays))
	reqURL := s.buildURL("/v3/weather/daily.json", city, extra)

	var resp seniverseDailyResponse
	if err := s.getJSON(reqURL, &resp); err != nil {
		return nil, fmt.Errorf("预报请求失败: %w", err)
	}

	if len(resp.Results) == 0 || len(resp.Results[0].Daily) == 0 {
		return nil, fmt.Errorf("预报：城市[%s]无结果", city)
	}

	daily := resp.Results[0].Daily
	days := make([]models.ForecastDay, 0, len(daily))
	for _, item := range daily {
		descDay := item.TextDay
		if descDay == "" {
			descDay = defaultWeatherDesc
		}
		descNight := item.TextNight
		if descNight == "" {
			descNight = defaultWeatherDesc
		}

		days = append(days, models.ForecastDay{
			DateStr:    item.Date,
			WeekdayStr: utils.WeekdayOfDate(item.Date),
			Desc:       descDay,
			DescNight:  descNight,
			TempDay:    parseNumber(item.High),
			TempNight:  parseNumber(item.Low),
			TempMin:    parseNumber(item.Low),
			TempMax:    parseNumber(item.High),
			Humidity:   parseNumber(item.Humidity),
			WindSpeed:  parseNumber(item.WindSpeed),
		})
	}

	return days, nil
}

// GetLifeSuggestion 获取指定城市的生活指数，固定取 6 项
// 调用失败时由上层降级处理，不影响预报命令
func (s *SeniverseService) GetLifeSuggestion(city string) ([]models.LifeSuggestion, error) {
	reqURL := s.buildURL("/v3/life/suggestion.json", city, nil)

	var resp seniverseSuggestionResponse
	if err := s.getJSON(reqURL, &resp); err != nil {
		return nil, fmt.Errorf("生活指数请求失败: %w", err)
	}

	if len(resp.Results) == 0 {
		return nil, fmt.Errorf("生活指数：城市[%s]无结果", city)
	}

	sg := resp.Results[0].Suggestion
	return []models.LifeSuggestion{
		{Name: "穿衣", Brief: sg.Dressing.Brief},
		{Name: "雨伞", Brief: sg.Umbrella.Brief},
		{Name: "洗车", Brief: sg.CarWashing.Brief},
		{Name: "感冒", Brief: sg.Flu.Brief},
		{Name: "运动", Brief: sg.Sport.Brief},
		{Name: "紫外线", Brief: sg.UV.Brief},
	}, nil
}

// buildURL 拼接心知天气请求地址，附加公共参数
func (s *SeniverseService) buildURL(path, city string, extra url.Values) string {
	query := url.Values{}
	query.Set("key", s.Config.SeniverseAPIKey)
	query.Set("location", city)
	query.Set("language", seniverseLang)
	query.Set("unit", seniverseUnit)
	for k, vs := range extra {
		for _, v := range vs {
			query.Set(k, v)
		}
	}
	return fmt.Sprintf("%s%s?%s", s.Config.SeniverseBaseURL, path, query.Encode())
}

// getJSON 发起 GET 请求并解析 JSON 响应，非 200 状态与网络错误统一返回 error
func (s *SeniverseService) getJSON(reqURL string, dest interface{}) error {
	resp, err := s.client.Get(reqURL)
	if err != nil {
		return fmt.Errorf("请求发送失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Error("心知天气返回非 200 状态: %d", resp.StatusCode)
		return fmt.Errorf("上游返回状态码 %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("解析 JSON 响应失败: %w", err)
	}

	return nil
}

// parseNumber 解析心知天气的字符串数值字段，缺失或格式异常时取 0
func parseNumber(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
