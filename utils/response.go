package utils

import "github.com/gin-gonic/gin"

// Envelope is the uniform response body returned by every endpoint, success
// or failure. Data and Error are omitted when empty.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func JSONSuccess(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Envelope{Success: true, Message: message, Data: data})
}

// JSONError writes a failure envelope. data may carry caller context (for
// example the existing record on a duplicate-key conflict); detail is the
// optional debug string placed in the error field.
func JSONError(c *gin.Context, code int, message string, data interface{}, detail string) {
	c.JSON(code, Envelope{Success: false, Message: message, Data: data, Error: detail})
}
