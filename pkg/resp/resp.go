package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success ใช้กับ route เดิมของหน้าร้าน: {"message":"success","data":...}
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"message": "success", "data": data})
}

func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}
