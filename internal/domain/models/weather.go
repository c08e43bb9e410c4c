package models

// CurrentWeather 表示一次当前天气查询的结果，仅在单次回复的生命周期内有效
type CurrentWeather struct {
	City      string  `json:"city"`
	Desc      string  `json:"desc"`
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Humidity  float64 `json:"humidity"`
	WindSpeed float64 `json:"wind_speed"`
}

// ForecastDay 表示预报中的一天
type ForecastDay struct {
	DateStr    string  `json:"date_str"`    // 日期，如 2025-04-15
	WeekdayStr string  `json:"weekday_str"` // 星期，如 周二
	Desc       string  `json:"desc"`        // 白天天气描述
	DescNight  string  `json:"desc_night"`  // 夜间天气描述（心知天气独有）
	TempDay    float64 `json:"temp_day"`
	TempNight  float64 `json:"temp_night"`
	TempMin    float64 `json:"temp_min"`
	TempMax    float64 `json:"temp_max"`
	Humidity   float64 `json:"humidity"`
	WindSpeed  float64 `json:"wind_speed"`
}

// LifeSuggestion 表示心知天气的一项生活指数建议
type LifeSuggestion struct {
	Name  string `json:"name"`  // 指数名称，如 穿衣
	Brief string `json:"brief"` // 简要建议，如 较冷
}

// Coordinates 表示地理编码得到的经纬度，单次请求内使用，不做缓存
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// WeatherAlert 表示一条天气预警（当前 API 版本不提供，仅用于模板渲染）
type WeatherAlert struct {
	Event       string `json:"event"`
	StartStr    string `json:"start_str"`
	EndStr      string `json:"end_str"`
	Description string `json:"description"`
}
