package code

// HTTP状态码.
const (
	// StatusOK - 200: 成功.
	StatusOK = 200
	// StatusCreated - 201: 创建成功.
	StatusCreated = 201
	// StatusBadRequest - 400: 请求参数错误.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: 未授权.
	StatusUnauthorized = 401
	// StatusForbidden - 403: 禁止访问.
	StatusForbidden = 403
	// StatusNotFound - 404: 资源不存在.
	StatusNotFound = 404
	// StatusInternalServerError - 500: 服务器内部错误.
	StatusInternalServerError = 500
	// StatusTooManyRequests - 429: 请求过多.
	StatusTooManyRequests = 429
)

// 通用错误码 (100xxx).
const (
	// ErrSuccess - 200: 成功.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: 服务器错误.
	ErrUnknown
	// ErrBind - 400: 请求参数绑定错误.
	ErrBind
	// ErrValidation - 400: 请求参数验证错误.
	ErrValidation
	// ErrTokenMissing - 401: 未提供认证令牌.
	ErrTokenMissing
	// ErrTokenInvalid - 403: 令牌无效或已过期.
	ErrTokenInvalid
	// ErrTooManyRequests - 429: 请求频率过高.
	ErrTooManyRequests
	// ErrPermissionDenied - 403: 权限不足.
	ErrPermissionDenied
)

// 账户相关错误码 (101xxx).
const (
	// ErrInvalidCredentials - 401: 用户名或密码不正确.
	ErrInvalidCredentials int = iota + 101000
	// ErrMissingCredentials - 400: 用户名和密码不能为空.
	ErrMissingCredentials
	// ErrUsernameExists - 400: 用户名已存在.
	ErrUsernameExists
	// ErrEmailExists - 400: 邮箱已被注册.
	ErrEmailExists
	// ErrInvalidRole - 400: 无效的用户角色.
	ErrInvalidRole
	// ErrResetTokenInvalid - 400: 无效或已过期的重置令牌.
	ErrResetTokenInvalid
	// ErrMissingIdentity - 400: 缺少用户ID或角色.
	ErrMissingIdentity
	// ErrUnsupportedRole - 400: 不支持的角色.
	ErrUnsupportedRole
	// ErrIdentityMismatch - 403: 只能修改本人的资料.
	ErrIdentityMismatch
	// ErrUserNotFound - 404: 用户不存在.
	ErrUserNotFound
)

// 教学数据相关错误码 (102xxx).
const (
	// ErrStudentNotFound - 404: 学生不存在.
	ErrStudentNotFound int = iota + 102000
	// ErrTeacherNotFound - 404: 教师不存在.
	ErrTeacherNotFound
	// ErrClassNotFound - 404: 班级不存在.
	ErrClassNotFound
	// ErrCourseNotFound - 404: 课程不存在.
	ErrCourseNotFound
	// ErrGradeNotFound - 404: 成绩不存在.
	ErrGradeNotFound
	// ErrGradeExists - 400: 该学生成绩已存在.
	ErrGradeExists
	// ErrCourseNoStudents - 400: 该课程暂无学生.
	ErrCourseNoStudents
)

// 数据库相关错误码 (105xxx).
const (
	// ErrDatabase - 500: 数据库错误.
	ErrDatabase int = iota + 105000
	// ErrRecordNotFound - 404: 记录不存在.
	ErrRecordNotFound
)
