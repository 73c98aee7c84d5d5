package code

// 错误码消息映射
var codeMessageMap = map[int]string{
	// 通用错误码
	ErrSuccess:          "成功",
	ErrUnknown:          "服务器错误，请稍后再试",
	ErrBind:             "请求参数绑定错误",
	ErrValidation:       "请求参数验证错误",
	ErrTokenMissing:     "未提供认证令牌",
	ErrTokenInvalid:     "无效的令牌",
	ErrTooManyRequests:  "请求过于频繁，请稍后再试",
	ErrPermissionDenied: "权限不足",

	// 账户相关错误码
	ErrInvalidCredentials: "用户名或密码不正确",
	ErrMissingCredentials: "用户名和密码不能为空",
	ErrUsernameExists:     "用户名已存在",
	ErrEmailExists:        "邮箱已被注册",
	ErrInvalidRole:        "无效的用户角色，必须是student、teacher或admin",
	ErrResetTokenInvalid:  "无效或已过期的重置令牌",
	ErrMissingIdentity:    "缺少用户ID或角色",
	ErrUnsupportedRole:    "不支持的角色",
	ErrIdentityMismatch:   "只能修改本人的资料",
	ErrUserNotFound:       "用户不存在",

	// 教学数据相关错误码
	ErrStudentNotFound:  "学生不存在",
	ErrTeacherNotFound:  "教师不存在",
	ErrClassNotFound:    "未找到该班级",
	ErrCourseNotFound:   "未找到该课程",
	ErrGradeNotFound:    "成绩不存在",
	ErrGradeExists:      "该学生成绩已存在",
	ErrCourseNoStudents: "该课程暂无学生",

	// 数据库相关错误码
	ErrDatabase:       "服务器错误，请稍后再试",
	ErrRecordNotFound: "记录不存在",
}

// 错误码HTTP状态码映射
var codeStatusMap = map[int]int{
	// 通用错误码
	ErrSuccess:          StatusOK,
	ErrUnknown:          StatusInternalServerError,
	ErrBind:             StatusBadRequest,
	ErrValidation:       StatusBadRequest,
	ErrTokenMissing:     StatusUnauthorized,
	ErrTokenInvalid:     StatusForbidden,
	ErrTooManyRequests:  StatusTooManyRequests,
	ErrPermissionDenied: StatusForbidden,

	// 账户相关错误码
	ErrInvalidCredentials: StatusUnauthorized,
	ErrMissingCredentials: StatusBadRequest,
	ErrUsernameExists:     StatusBadRequest,
	ErrEmailExists:        StatusBadRequest,
	ErrInvalidRole:        StatusBadRequest,
	ErrResetTokenInvalid:  StatusBadRequest,
	ErrMissingIdentity:    StatusBadRequest,
	ErrUnsupportedRole:    StatusBadRequest,
	ErrIdentityMismatch:   StatusForbidden,
	ErrUserNotFound:       StatusNotFound,

	// 教学数据相关错误码
	ErrStudentNotFound:  StatusNotFound,
	ErrTeacherNotFound:  StatusNotFound,
	ErrClassNotFound:    StatusNotFound,
	ErrCourseNotFound:   StatusNotFound,
	ErrGradeNotFound:    StatusNotFound,
	ErrGradeExists:      StatusBadRequest,
	ErrCourseNoStudents: StatusBadRequest,

	// 数据库相关错误码
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage 获取错误码对应的消息
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "服务器错误，请稍后再试"
}

// GetStatus 获取错误码对应的HTTP状态码
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
