package models

// 回复类型
const (
	ReplyTypePlain = "plain"
	ReplyTypeImage = "image"
)

// Reply 表示插件对一条聊天命令的回复，由宿主框架包装进消息信封
type Reply struct {
	Type     string `json:"type"`                // plain 或 image
	Text     string `json:"text,omitempty"`      // 纯文本内容
	ImageURL string `json:"image_url,omitempty"` // 渲染服务返回的图片地址
}

// PlainReply 构造一条纯文本回复
func PlainReply(text string) Reply {
	return Reply{Type: ReplyTypePlain, Text: text}
}

// ImageReply 构造一条图片回复
func ImageReply(url string) Reply {
	return Reply{Type: ReplyTypeImage, ImageURL: url}
}
