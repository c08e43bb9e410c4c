package utils

import (
	"time"
)

// 中文星期，Weekday() 周日为 0
var weekdayNames = [7]string{"周日", "周一", "周二", "周三", "周四", "周五", "周六"}

// FormatDay 将 Unix 时间戳格式化为日期和星期
// daily 预报接口不携带时区偏移，这里按 UTC 时间戳处理
func FormatDay(unixTs int64) (dateStr string, weekdayStr string) {
	t := time.Unix(unixTs, 0).UTC()
	return t.Format("2006-01-02"), weekdayNames[int(t.Weekday())]
}

// WeekdayOfDate 返回 yyyy-MM-dd 格式日期对应的中文星期，解析失败时返回空串
func WeekdayOfDate(dateStr string) string {
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return ""
	}
	return weekdayNames[int(t.Weekday())]
}

// FormatTimestamp 将 Unix 时间戳按时区偏移格式化为分钟精度的时间，预警模板使用
func FormatTimestamp(unixTs int64, tzOffset int64) string {
	if unixTs == 0 {
		return "N/A"
	}
	t := time.Unix(unixTs+tzOffset, 0).UTC()
	return t.Format("2006-01-02 15:04")
}
