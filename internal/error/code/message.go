package code

// 错误码消息映射
var codeMessageMap = map[int]string{
	// 通用错误码
	ErrSuccess:    "成功",
	ErrUnknown:    "未知错误",
	ErrBind:       "请求参数绑定错误",
	ErrValidation: "请求参数验证错误",

	// 天气相关错误码
	ErrToolNotFound: "未知的工具名称",
}

// 错误码HTTP状态码映射
var codeStatusMap = map[int]int{
	// 通用错误码
	ErrSuccess:    StatusOK,
	ErrUnknown:    StatusInternalServerError,
	ErrBind:       StatusBadRequest,
	ErrValidation: StatusBadRequest,

	// 天气相关错误码
	ErrToolNotFound: StatusNotFound,
}
