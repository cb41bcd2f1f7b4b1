package response

import (
	"github.com/gin-gonic/gin"
	apiError "github.com/moin-shk/imr-portal/errors"
)

// JSON writes data as the response body.
func JSON(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Message writes a {"message": ...} body.
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// Err writes an API error as {"message": ...} with its status.
func Err(c *gin.Context, err *apiError.Error) {
	if err == nil {
		err = apiError.ErrInternalServerError
	}
	c.JSON(err.Status, gin.H{"message": err.Message})
}
