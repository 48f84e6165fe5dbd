package common

import (
	"errors"
	"fmt"
	"net/http"
	"unicode/utf8"
)

// ErrorResponse 定義 API 錯誤響應結構
type ErrorResponse struct {
	Error   string `json:"error"`             // 錯誤信息
	Code    string `json:"code"`              // 錯誤代碼
	Details string `json:"details,omitempty"` // 詳細信息（僅在開發模式顯示）
}

// CustomError 定義自定義錯誤類型
type CustomError struct {
	Code    string // 錯誤代碼
	Message string // 錯誤信息
	Err     error  // 原始錯誤
	Status  int    // HTTP 狀態碼
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewError 創建新的自定義錯誤
func NewError(code string, message string, status int, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// ValidationError 表示驗證錯誤
type ValidationError struct {
	message string
}

// Error 實現 error 介面
func (e *ValidationError) Error() string {
	return e.message
}

// NewValidationError 創建新的驗證錯誤
func NewValidationError(message string) error {
	return &ValidationError{
		message: message,
	}
}

// IsValidationError 檢查是否為驗證錯誤
func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// ConfigurationError 生成式後端缺少必要設定（例如 API Key），不重試
type ConfigurationError struct {
	Setting string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s chưa được cấu hình", e.Setting)
}

// NewConfigurationError 創建設定錯誤
func NewConfigurationError(setting string) error {
	return &ConfigurationError{Setting: setting}
}

// IsConfigurationError 檢查是否為設定錯誤
func IsConfigurationError(err error) bool {
	var target *ConfigurationError
	return errors.As(err, &target)
}

// BackendError 生成式後端呼叫失敗：連線失敗、非成功狀態、回應格式不符或逾時
type BackendError struct {
	Provider   string // 後端名稱
	StatusCode int    // HTTP 狀態碼，傳輸層失敗時為 0
	Payload    string // 回應內容（已截斷）
	Err        error  // 原始錯誤
}

func (e *BackendError) Error() string {
	msg := fmt.Sprintf("%s API error", e.Provider)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s: %d", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Payload != "" {
		msg = fmt.Sprintf("%s - %s", msg, e.Payload)
	}
	return msg
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// NewBackendError 創建後端錯誤，payload 最多保留 maxPayloadLen 個位元組
func NewBackendError(provider string, status int, payload string, err error) *BackendError {
	return &BackendError{
		Provider:   provider,
		StatusCode: status,
		Payload:    Truncate(payload, maxPayloadLen),
		Err:        err,
	}
}

// IsBackendError 檢查是否為後端錯誤
func IsBackendError(err error) bool {
	var target *BackendError
	return errors.As(err, &target)
}

const maxPayloadLen = 512

// Truncate 截斷字串，超過 n 個位元組時以 ... 結尾。
// 截斷點會退到字元邊界，不會切開多位元組字元。
func Truncate(s string, n int) string {
	if len(s) <= n || n < 4 {
		return s
	}
	cut := n - 3
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

// 預定義錯誤代碼
const (
	// 客戶端錯誤 (4xx)
	ErrCodeInvalidRequest  = "INVALID_REQUEST"   // 400
	ErrCodeRequestTimeout  = "REQUEST_TIMEOUT"   // 408
	ErrCodeTooManyRequests = "TOO_MANY_REQUESTS" // 429

	// 服務器錯誤 (5xx)
	ErrCodeInternalError      = "INTERNAL_ERROR"      // 500
	ErrCodeConfigurationError = "CONFIGURATION_ERROR" // 500
	ErrCodeAIServiceError     = "AI_SERVICE_ERROR"    // 500
	ErrCodeCatalogError       = "CATALOG_ERROR"       // 500
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE" // 503
	ErrCodeGatewayTimeout     = "GATEWAY_TIMEOUT"     // 504
)

// 預定義錯誤
var (
	ErrInvalidRequest     = NewError(ErrCodeInvalidRequest, "無效的請求", http.StatusBadRequest, nil)
	ErrTooManyRequests    = NewError(ErrCodeTooManyRequests, "請求過於頻繁", http.StatusTooManyRequests, nil)
	ErrInternalError      = NewError(ErrCodeInternalError, "服務器內部錯誤", http.StatusInternalServerError, nil)
	ErrServiceUnavailable = NewError(ErrCodeServiceUnavailable, "服務暫時不可用", http.StatusServiceUnavailable, nil)
	ErrCatalogUnavailable = NewError(ErrCodeCatalogError, "食譜目錄無法讀取", http.StatusInternalServerError, nil)
)

// CodeFor 將錯誤對應到 API 錯誤代碼
func CodeFor(err error) string {
	var custom *CustomError
	switch {
	case IsValidationError(err):
		return ErrCodeInvalidRequest
	case IsConfigurationError(err):
		return ErrCodeConfigurationError
	case IsBackendError(err):
		return ErrCodeAIServiceError
	case errors.As(err, &custom):
		return custom.Code
	default:
		return ErrCodeInternalError
	}
}

// StatusFor 將錯誤對應到 HTTP 狀態碼
// 後端與設定錯誤一律回 500，與原本聊天端點的行為一致
func StatusFor(err error) int {
	var custom *CustomError
	switch {
	case IsValidationError(err):
		return http.StatusBadRequest
	case errors.As(err, &custom) && custom.Status != 0:
		return custom.Status
	default:
		return http.StatusInternalServerError
	}
}
