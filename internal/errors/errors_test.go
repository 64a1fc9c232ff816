package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ErrorsTestSuite 错误包测试套件
type ErrorsTestSuite struct {
	suite.Suite
}

// 测试创建新错误
func (suite *ErrorsTestSuite) TestNew() {
	// 测试基本错误创建
	err := New(ErrInvalidParam)
	suite.NotNil(err)
	suite.Equal(ErrInvalidParam, err.Code)
	suite.Equal("无效的参数", err.Message)
	suite.Empty(err.Details)

	// 测试带详情的错误
	err = New(ErrVersionMismatch, "请求版本 1.0.0")
	suite.NotNil(err)
	suite.Equal(ErrVersionMismatch, err.Code)
	suite.Equal("卷轴版本不匹配", err.Message)
	suite.Equal("请求版本 1.0.0", err.Details)

	// 测试多个详情
	err = New(ErrDatabaseConnect, "连接失败", "主机: localhost", "文件: audit.db")
	suite.Equal("连接失败; 主机: localhost; 文件: audit.db", err.Details)
}

// 测试格式化错误创建
func (suite *ErrorsTestSuite) TestNewf() {
	err := Newf(ErrOutOfRange, "列索引 %d 超出有效范围 [0,%d)", 6, 6)
	suite.NotNil(err)
	suite.Equal(ErrOutOfRange, err.Code)
	suite.Equal("列索引 6 超出有效范围 [0,6)", err.Details)
}

// 测试错误包装
func (suite *ErrorsTestSuite) TestWrap() {
	// 包装标准错误
	originalErr := errors.New("原始错误")
	wrappedErr := Wrap(originalErr, ErrDatabaseQuery)
	suite.NotNil(wrappedErr)
	suite.Equal(ErrDatabaseQuery, wrappedErr.Code)
	suite.Equal("原始错误", wrappedErr.Details)
	suite.Equal(originalErr, wrappedErr.Cause)

	// 包装nil错误
	nilErr := Wrap(nil, ErrUnknown)
	suite.Nil(nilErr)

	// 包装已有的AppError
	appErr := New(ErrVersionMismatch, "版本不符")
	wrappedAppErr := Wrap(appErr, ErrInvalidParam, "额外信息")
	suite.Equal(ErrVersionMismatch, wrappedAppErr.Code) // 保留原始错误码
	suite.Contains(wrappedAppErr.Details, "额外信息")
}

// 测试格式化错误包装
func (suite *ErrorsTestSuite) TestWrapf() {
	originalErr := errors.New("文件被锁定")
	wrappedErr := Wrapf(originalErr, ErrDatabaseConnect, "数据库 %s 连接失败", "audit.db")
	suite.NotNil(wrappedErr)
	suite.Equal(ErrDatabaseConnect, wrappedErr.Code)
	suite.Equal("数据库 audit.db 连接失败", wrappedErr.Details)
	suite.Equal(originalErr, wrappedErr.Cause)
}

// 测试错误码判断
func (suite *ErrorsTestSuite) TestIs() {
	err := New(ErrStructuralValidation)
	suite.True(Is(err, ErrStructuralValidation))
	suite.False(Is(err, ErrNotFound))
	suite.False(Is(nil, ErrStructuralValidation))

	// 测试标准错误
	standardErr := errors.New("标准错误")
	suite.False(Is(standardErr, ErrUnknown))
}

// 测试获取错误码
func (suite *ErrorsTestSuite) TestGetCode() {
	// AppError
	appErr := New(ErrScatterBand)
	suite.Equal(ErrScatterBand, GetCode(appErr))

	// 标准错误
	standardErr := errors.New("标准错误")
	suite.Equal(ErrUnknown, GetCode(standardErr))

	// nil错误
	suite.Equal(ErrorCode(0), GetCode(nil))
}

// 测试错误消息
func (suite *ErrorsTestSuite) TestError() {
	// 只有消息
	err := &AppError{
		Code:    ErrNotFound,
		Message: "资源未找到",
	}
	suite.Equal("[1002] 资源未找到", err.Error())

	// 有详情
	err.Details = "卷轴版本: 1.0.0"
	suite.Equal("[1002] 资源未找到: 卷轴版本: 1.0.0", err.Error())
}

// 测试Unwrap
func (suite *ErrorsTestSuite) TestUnwrap() {
	originalErr := errors.New("原始错误")
	wrappedErr := Wrap(originalErr, ErrUnknown)
	suite.Equal(originalErr, wrappedErr.Unwrap())

	// 没有原因的错误
	err := New(ErrUnknown)
	suite.Nil(err.Unwrap())
}

// 测试WithDetails
func (suite *ErrorsTestSuite) TestWithDetails() {
	err := New(ErrInvalidParam)
	err.WithDetails("参数不能为空")
	suite.Equal("参数不能为空", err.Details)
}

// 测试WithCause
func (suite *ErrorsTestSuite) TestWithCause() {
	err := New(ErrDatabaseQuery)
	cause := errors.New("SQL语法错误")
	err.WithCause(cause)
	suite.Equal(cause, err.Cause)
	suite.Equal("SQL语法错误", err.Details)

	// 已有Details的情况
	err2 := New(ErrDatabaseQuery, "查询失败")
	err2.WithCause(cause)
	suite.Equal(cause, err2.Cause)
	suite.Equal("查询失败", err2.Details) // 保留原有Details
}

// 测试严重错误判断
func (suite *ErrorsTestSuite) TestIsCritical() {
	criticalErrors := []ErrorCode{
		ErrStructuralValidation,
		ErrDatabaseConnect,
		ErrConfigLoad,
		ErrConfigMissing,
		ErrDataIntegrity,
	}

	for _, code := range criticalErrors {
		err := New(code)
		suite.True(IsCritical(err), "错误码 %d 应该是严重错误", code)
	}

	// 非严重错误
	nonCriticalErrors := []ErrorCode{
		ErrInvalidParam,
		ErrNotFound,
		ErrScatterBand,
		ErrVersionMismatch,
	}

	for _, code := range nonCriticalErrors {
		err := New(code)
		suite.False(IsCritical(err), "错误码 %d 不应该是严重错误", code)
	}

	// nil错误
	suite.False(IsCritical(nil))
}

// 测试建议级错误判断
func (suite *ErrorsTestSuite) TestIsAdvisory() {
	suite.True(IsAdvisory(New(ErrScatterBand)))
	suite.False(IsAdvisory(New(ErrStructuralValidation)))
	suite.False(IsAdvisory(nil))
}

// 测试调用栈捕获
func (suite *ErrorsTestSuite) TestStackCapture() {
	err := New(ErrUnknown)
	suite.NotNil(err.Stack)
	suite.Greater(len(err.Stack), 0)

	// 获取格式化的调用栈
	stackStr := err.GetStack()
	suite.NotEmpty(stackStr)
	// 栈信息可能不包含测试方法名，只验证不为空即可
}

// 测试未知错误码
func (suite *ErrorsTestSuite) TestUnknownErrorCode() {
	// 使用未定义的错误码
	err := New(ErrorCode(99999))
	suite.Equal(ErrorCode(99999), err.Code)
	suite.Equal("未知错误", err.Message) // 应该使用默认消息
}

// 测试生成核心相关错误
func (suite *ErrorsTestSuite) TestCoreErrors() {
	coreErrors := map[ErrorCode]string{
		ErrOutOfRange:           "索引超出有效范围",
		ErrVersionMismatch:      "卷轴版本不匹配",
		ErrInvalidInput:         "无效的输入数据",
		ErrStructuralValidation: "卷轴结构校验失败",
		ErrScatterBand:          "scatter数量超出审计区间",
		ErrEngineNotReady:       "生成引擎未就绪",
	}

	for code, expectedMsg := range coreErrors {
		err := New(code)
		suite.Equal(expectedMsg, err.Message)
	}
}

// 测试审计相关错误
func (suite *ErrorsTestSuite) TestAuditErrors() {
	auditErrors := map[ErrorCode]string{
		ErrAuditSinkWrite:  "审计事件写入失败",
		ErrAuditSinkClosed: "审计接收器已关闭",
		ErrAuditBufferFull: "审计缓冲区已满",
	}

	for code, expectedMsg := range auditErrors {
		err := New(code)
		suite.Equal(expectedMsg, err.Message)
	}
}

// 测试数据库相关错误
func (suite *ErrorsTestSuite) TestDatabaseErrors() {
	dbErrors := map[ErrorCode]string{
		ErrDatabaseConnect: "数据库连接失败",
		ErrDatabaseQuery:   "数据库查询失败",
		ErrDatabaseInsert:  "数据库插入失败",
		ErrDatabaseDelete:  "数据库删除失败",
		ErrDataIntegrity:   "数据完整性错误",
	}

	for code, expectedMsg := range dbErrors {
		err := New(code)
		suite.Equal(expectedMsg, err.Message)
	}
}

// 测试配置相关错误
func (suite *ErrorsTestSuite) TestConfigErrors() {
	configErrors := map[ErrorCode]string{
		ErrConfigLoad:     "配置加载失败",
		ErrConfigParse:    "配置解析失败",
		ErrConfigValidate: "配置验证失败",
		ErrConfigMissing:  "配置项缺失",
	}

	for code, expectedMsg := range configErrors {
		err := New(code)
		suite.Equal(expectedMsg, err.Message)
	}
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}
