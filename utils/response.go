package utils

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
)

// APIResponse is the envelope every JSON endpoint answers with
type APIResponse struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       interface{}     `json:"data,omitempty"`
	Error      string          `json:"error,omitempty"`
	Pagination *PaginationMeta `json:"pagination,omitempty"`
}

// exposeErrorDetails controls whether underlying error text reaches clients
var exposeErrorDetails = true

// ExposeErrorDetails is switched off in production
func ExposeErrorDetails(v bool) {
	exposeErrorDetails = v
}

// Success sends a standardized success response
func Success(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Created sends a standardized created response (201)
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// SuccessWithPagination sends a paginated success response
func SuccessWithPagination(c *gin.Context, message string, data interface{}, p *Pagination) {
	meta := p.Meta()
	c.JSON(http.StatusOK, APIResponse{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: &meta,
	})
}

// Error sends a standardized error response
func Error(c *gin.Context, statusCode int, message string, detail string) {
	response := APIResponse{
		Success: false,
		Message: message,
	}
	if detail != "" && (exposeErrorDetails || statusCode < http.StatusInternalServerError) {
		response.Error = detail
	}
	c.JSON(statusCode, response)
}

// RespondError converts any error into the envelope. Errors that are not
// AppErrors are treated as internal failures.
func RespondError(c *gin.Context, err error) {
	appErr := GetAppError(err)
	if appErr == nil {
		LogError("Unhandled error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		Error(c, http.StatusInternalServerError, ErrInternalServer, err.Error())
		return
	}

	if len(appErr.Fields) > 0 {
		c.JSON(appErr.Code, APIResponse{
			Success: false,
			Message: appErr.Message,
			Data:    gin.H{"fields": appErr.Fields},
			Error:   joinFields(appErr.Fields),
		})
		return
	}

	detail := ""
	if appErr.Err != nil {
		detail = appErr.Err.Error()
	}
	Error(c, appErr.Code, appErr.Message, detail)
}

func joinFields(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fields[k])
	}
	return strings.Join(parts, ", ")
}

// BadRequest sends a 400 Bad Request response
func BadRequest(c *gin.Context, message string, detail string) {
	Error(c, http.StatusBadRequest, message, detail)
}

// Unauthorized sends a 401 Unauthorized response
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message, "")
}

// Forbidden sends a 403 Forbidden response
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message, "")
}
