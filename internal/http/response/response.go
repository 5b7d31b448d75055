package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every response is a JSON envelope with a success flag. Errors carry a
// message and never a stack trace; extra fields (token, admin, count, data)
// are merged in by the caller.

// OK writes a 200 envelope with the given extra fields.
func OK(c *gin.Context, fields gin.H) {
	write(c, http.StatusOK, true, fields)
}

// OKWithMsg writes a 200 envelope with a message and extra fields.
func OKWithMsg(c *gin.Context, msg string, fields gin.H) {
	if fields == nil {
		fields = gin.H{}
	}
	fields["message"] = msg
	write(c, http.StatusOK, true, fields)
}

// Data writes a 200 envelope with a data payload.
func Data(c *gin.Context, data interface{}) {
	write(c, http.StatusOK, true, gin.H{"data": data})
}

// List writes a 200 envelope with a data payload and its count.
func List(c *gin.Context, count int, data interface{}) {
	write(c, http.StatusOK, true, gin.H{"count": count, "data": data})
}

// Created writes a 201 envelope with a message and data payload.
func Created(c *gin.Context, msg string, data interface{}) {
	write(c, http.StatusCreated, true, gin.H{"message": msg, "data": data})
}

// Error writes a failure envelope on the given HTTP status.
func Error(c *gin.Context, statusCode int, msg string) {
	fields := gin.H{"message": msg}
	attachRequestID(c, fields)
	write(c, statusCode, false, fields)
}

// ErrorWithFields writes a failure envelope with extra fields
// (e.g. the violated field names of a validation error).
func ErrorWithFields(c *gin.Context, statusCode int, msg string, extra gin.H) {
	fields := gin.H{"message": msg}
	for k, v := range extra {
		fields[k] = v
	}
	attachRequestID(c, fields)
	write(c, statusCode, false, fields)
}

// NotFound writes a 404 failure envelope.
func NotFound(c *gin.Context, msg string) {
	Error(c, CodeNotFound, msg)
}

// Unauthorized writes a 401 failure envelope.
func Unauthorized(c *gin.Context, msg string) {
	Error(c, CodeUnauthorized, msg)
}

// BadRequest writes a 400 failure envelope.
func BadRequest(c *gin.Context, msg string) {
	Error(c, CodeBadRequest, msg)
}

func write(c *gin.Context, status int, success bool, fields gin.H) {
	body := gin.H{"success": success}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(status, body)
}

func attachRequestID(c *gin.Context, fields gin.H) {
	if c == nil {
		return
	}
	if value, ok := c.Get("request_id"); ok {
		if id, ok := value.(string); ok && id != "" {
			fields["request_id"] = id
		}
	}
}
