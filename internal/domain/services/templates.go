package services

import (
	"github.com/flosch/pongo2/v6"
)

// 三类固定 HTML 模板，由渲染服务填充后交给外部 HTML 转图片服务
// 模板语法与渲染侧约定一致（Jinja 风格），缺失字段渲染为空

const currentWeatherTemplate = `
<div style="width: 720px; padding: 16px; background-color: #ffffff; color: #333; font-family: sans-serif; border: 1px solid #ddd; border-radius: 8px;">
  <h2 style="margin-top: 0; color: #4e6ef2; text-align: center;">
    当前天气
  </h2>
  <div style="margin-bottom: 8px;">
    <strong>城市:</strong> {{ city }}
  </div>
  <div style="margin-bottom: 8px;">
    <strong>天气:</strong> {{ desc }}
  </div>
  <div style="margin-bottom: 8px;">
    <strong>温度:</strong> {{ temp }}℃
    <span style="font-size: 12px; color: #888;">(体感: {{ feels_like }}℃)</span>
  </div>
  <div style="margin-bottom: 8px;">
    <strong>湿度:</strong> {{ humidity }}%
  </div>
  <div style="margin-bottom: 8px;">
    <strong>风速:</strong> {{ wind_speed }} m/s
  </div>
  <div style="border-top: 1px solid #ddd; margin-top: 12px; padding-top: 12px; font-size: 12px; color: #999;">
    数据来源: {{ source }}
  </div>
</div>
`

const forecastTemplate = `
<div style="width: 720px; background-color: #fff; color: #333; font-family: sans-serif; border: 1px solid #ddd; border-radius: 8px; padding: 16px;">
  <h2 style="margin-top: 0; color: #4e6ef2; text-align: center;">
    未来{{ total_days }}天天气预报
  </h2>
  <div style="margin-bottom: 8px;"><strong>城市:</strong> {{ city }}</div>

  {% for day in days %}
  <div style="margin-bottom: 12px; border-bottom: 1px solid #eee; padding-bottom: 8px;">
    <div style="font-weight: bold; color: #4e6ef2;">
      {{ day.date_str }} ({{ day.weekday_str }})
    </div>
    <div><strong>天气:</strong> {{ day.desc }}</div>
    <div><strong>温度范围:</strong> {{ day.temp_min }}℃ ~ {{ day.temp_max }}℃</div>
    <div><strong>白天:</strong> {{ day.temp_day }}℃  <strong>夜晚:</strong> {{ day.temp_night }}℃</div>
    <div><strong>湿度:</strong> {{ day.humidity }}%  <strong>风速:</strong> {{ day.wind_speed }} m/s</div>
  </div>
  {% endfor %}

  <div style="font-size: 12px; color: #999; margin-top: 8px; border-top: 1px solid #ddd; padding-top: 8px;">
    数据来源: {{ source }}
  </div>
</div>
`

// 心知天气版预报模板：带昼夜天气描述与生活指数
const seniverseForecastTemplate = `
<div style="width: 720px; background-color: #fff; color: #333; font-family: sans-serif; border: 1px solid #ddd; border-radius: 8px; padding: 16px;">
  <h2 style="margin-top: 0; color: #4e6ef2; text-align: center;">
    未来{{ total_days }}天天气预报
  </h2>
  <div style="margin-bottom: 8px;"><strong>城市:</strong> {{ city }}</div>

  {% for day in days %}
  <div style="margin-bottom: 12px; border-bottom: 1px solid #eee; padding-bottom: 8px;">
    <div style="font-weight: bold; color: #4e6ef2;">
      {{ day.date_str }} ({{ day.weekday_str }})
    </div>
    <div><strong>白天:</strong> {{ day.desc }}  <strong>夜间:</strong> {{ day.desc_night }}</div>
    <div><strong>温度范围:</strong> {{ day.temp_min }}℃ ~ {{ day.temp_max }}℃</div>
    <div><strong>湿度:</strong> {{ day.humidity }}%  <strong>风速:</strong> {{ day.wind_speed }} km/h</div>
  </div>
  {% endfor %}

  {% if suggestions|length > 0 %}
  <div style="margin-top: 8px;">
    <div style="font-weight: bold; color: #4e6ef2; margin-bottom: 6px;">生活指数</div>
    {% for sg in suggestions %}
    <div style="margin-bottom: 4px;"><strong>{{ sg.name }}:</strong> {{ sg.brief }}</div>
    {% endfor %}
  </div>
  {% endif %}

  <div style="font-size: 12px; color: #999; margin-top: 8px; border-top: 1px solid #ddd; padding-top: 8px;">
    数据来源: {{ source }}
  </div>
</div>
`

const alertsTemplate = `
<div style="width: 720px; background-color: #fff; color: #333; font-family: sans-serif; border: 1px solid #ddd; border-radius: 8px; padding: 16px;">
  <h2 style="margin-top: 0; color: #ff4e4e; text-align: center;">
    天气预警
  </h2>
  <div style="margin-bottom: 8px;"><strong>城市:</strong> {{ city }}</div>

  {% if alerts|length == 0 %}
    <div>目前没有预警信息或暂不支持此功能</div>
  {% else %}
    {% for alert in alerts %}
      <div style="margin-bottom: 12px; border-bottom: 1px solid #eee; padding-bottom: 8px;">
        <div style="font-weight: bold; color: #ff4e4e;">
          {{ alert.event }}
        </div>
        <div><strong>开始:</strong> {{ alert.start_str }}</div>
        <div><strong>结束:</strong> {{ alert.end_str }}</div>
        <div style="white-space: pre-wrap; margin-top: 6px;">
          {{ alert.description }}
        </div>
      </div>
    {% endfor %}
  {% endif %}

  <div style="font-size: 12px; color: #999; margin-top: 8px; border-top: 1px solid #ddd; padding-top: 8px;">
    数据来源: {{ source }}
  </div>
</div>
`

// 模板标识
const (
	TemplateCurrentWeather    = "current-weather"
	TemplateForecast          = "forecast"
	TemplateSeniverseForecast = "seniverse-forecast"
	TemplateAlerts            = "alerts"
)

// 启动时编译全部模板，模板固定不变，编译失败属于编码错误直接 panic
var compiledTemplates = map[string]*pongo2.Template{
	TemplateCurrentWeather:    pongo2.Must(pongo2.FromString(currentWeatherTemplate)),
	TemplateForecast:          pongo2.Must(pongo2.FromString(forecastTemplate)),
	TemplateSeniverseForecast: pongo2.Must(pongo2.FromString(seniverseForecastTemplate)),
	TemplateAlerts:            pongo2.Must(pongo2.FromString(alertsTemplate)),
}
