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

// OpenWeatherMap v2.5 固定请求参数
const (
	openWeatherUnits = "metric"
	openWeatherLang  = "zh_cn"

	// forecast/daily 请求 今天+后3天 共4天，第0项为当天，渲染时丢弃
	openWeatherForecastCnt = 4

	// 上游缺失天气描述时的占位文案
	defaultWeatherDesc = "暂无描述"
)

// OpenWeatherService 调用 OpenWeatherMap v2.5 接口获取天气数据
// 该接口按经纬度查询，因此每次查询前先走一次地理编码
type OpenWeatherService struct {
	Config *config.Config
	client *http.Client
}

// NewOpenWeatherService 创建 OpenWeatherMap 天气服务
func NewOpenWeatherService(cfg *config.Config) *OpenWeatherService {
	return &OpenWeatherService{
		Config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.HTTPTimeoutSeconds) * time.Second,
		},
	}
}

// geocodingResult 表示 /geo/1.0/direct 返回的单条结果
type geocodingResult struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// currentWeatherResponse 表示 /data/2.5/weather 的响应
type currentWeatherResponse struct {
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// dailyForecastResponse 表示 /data/2.5/forecast/daily 的响应
type dailyForecastResponse struct {
	List []struct {
		Dt      int64 `json:"dt"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
		Temp struct {
			Day   float64 `json:"day"`
			Night float64 `json:"night"`
			Min   float64 `json:"min"`
			Max   float64 `json:"max"`
		} `json:"temp"`
		Humidity float64 `json:"humidity"`
		// daily 接口中风速字段名为 speed
		Speed float64 `json:"speed"`
	} `json:"list"`
}

// GetCityCoords 根据城市名调用地理编码接口获取经纬度，取第一条匹配结果
func (s *OpenWeatherService) GetCityCoords(city string) (*models.Coordinates, error) {
	query := url.Values{}
	query.Set("q", city)
	query.Set("limit", "1")
	query.Set("appid", s.Config.OpenWeatherAPIKey)

	reqURL := fmt.Sprintf("%s/geo/1.0/direct?%s", s.Config.GeocodingBaseURL, query.Encode())

	var results []geocodingResult
	if err := s.getJSON(reqURL, &results); err != nil {
		return nil, fmt.Errorf("地理编码请求失败: %w", err)
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("地理编码：城市[%s]未找到坐标", city)
	}

	logger.Debug("城市[%s]坐标: lat=%f, lon=%f", city, results[0].Lat, results[0].Lon)
	return &models.Coordinates{Lat: results[0].Lat, Lon: results[0].Lon}, nil
}

// GetCurrentWeather 获取指定城市的当前天气
// 先做地理编码，再调用 /data/2.5/weather，坐标获取失败直接短路返回错误
func (s *OpenWeatherService) GetCurrentWeather(city string) (*models.CurrentWeather, error) {
	coords, err := s.GetCityCoords(city)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(coords.Lat, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(coords.Lon, 'f', -1, 64))
	query.Set("appid", s.Config.OpenWeatherAPIKey)
	query.Set("units", openWeatherUnits)
	query.Set("lang", openWeatherLang)

	reqURL := fmt.Sprintf("%s/data/2.5/weather?%s", s.Config.OpenWeatherBaseURL, query.Encode())

	var resp currentWeatherResponse
	if err := s.getJSON(reqURL, &resp); err != nil {
		return nil, fmt.Errorf("当前天气请求失败: %w", err)
	}

	desc := defaultWeatherDesc
	if len(resp.Weather) > 0 && resp.Weather[0].Description != "" {
		desc = resp.Weather[0].Description
	}

	return &models.CurrentWeather{
		City:      city,
		Desc:      desc,
		Temp:      resp.Main.Temp,
		FeelsLike: resp.Main.FeelsLike,
		Humidity:  resp.Main.Humidity,
		WindSpeed: resp.Wind.Speed,
	}, nil
}

// GetForecastWeather 获取指定城市未来 3 天的预报
// daily 接口按约定第 0 项为当天，这里丢弃后返回剩余 cnt-1 天
func (s *OpenWeatherService) GetForecastWeather(city string) ([]models.ForecastDay, error) {
	coords, err := s.GetCityCoords(city)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(coords.Lat, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(coords.Lon, 'f', -1, 64))
	query.Set("cnt", strconv.Itoa(openWeatherForecastCnt))
	query.Set("appid", s.Config.OpenWeatherAPIKey)
	query.Set("units", openWeatherUnits)
	query.Set("lang", openWeatherLang)

	reqURL := fmt.Sprintf("%s/data/2.5/forecast/daily?%s", s.Config.OpenWeatherBaseURL, query.Encode())

	var resp dailyForecastResponse
	if err := s.getJSON(reqURL, &resp); err != nil {
		return nil, fmt.Errorf("预报请求失败: %w", err)
	}

	if len(resp.List) < 2 {
		return nil, fmt.Errorf("预报数据不足: 城市[%s]返回 %d 天", city, len(resp.List))
	}

	days := make([]models.ForecastDay, 0, len(resp.List)-1)
	for _, item := range resp.List[1:] {
		desc := defaultWeatherDesc
		if len(item.Weather) > 0 && item.Weather[0].Description != "" {
			desc = item.Weather[0].Description
		}

		dateStr, weekdayStr := utils.FormatDay(item.Dt)
		days = append(days, models.ForecastDay{
			DateStr:    dateStr,
			WeekdayStr: weekdayStr,
			Desc:       desc,
			TempDay:    item.Temp.Day,
			TempNight:  item.Temp.Night,
			TempMin:    item.Temp.Min,
			TempMax:    item.Temp.Max,
			Humidity:   item.Humidity,
			WindSpeed:  item.Speed,
		})
	}

	return days, nil
}

// getJSON 发起 GET 请求并解析 JSON 响应，非 200 状态与网络错误统一返回 error
func (s *OpenWeatherService) getJSON(reqURL string, dest interface{}) error {
	resp, err := s.client.Get(reqURL)
	if err != nil {
		return fmt.Errorf("请求发送失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// 5xx 与其它失败暂不区分处理，仅在日志中保留状态码以便排查
		logger.Error("OpenWeatherMap 返回非 200 状态: %d", resp.StatusCode)
		return fmt.Errorf("上游返回状态码 %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("解析 JSON 响应失败: %w", err)
	}

	return nil
}
