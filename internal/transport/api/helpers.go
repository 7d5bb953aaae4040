package api

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ralexrdz/opencollective-api/internal/transport/api/middlewares"
)

// getUserIDFromContext берет из контекста gin ID текущего юзера. ID
// устанавливается в middlewares.AuthRequired. В случае, если значения в
// контексте нет или ошибка утверждения типа - вернется 0.
func getUserIDFromContext(c *gin.Context) int64 {
	userIDStr, exist := c.Get(middlewares.CurrentUserIDKey)
	if !exist {
		return 0
	}
	userID, ok := userIDStr.(int64)
	if !ok {
		return 0
	}
	return userID
}

// getIDParam парсит числовой path-параметр. Возвращает 0 для нечисловых
// значений, обработчики отвечают на это 404.
func getIDParam(c *gin.Context, name string) int64 {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
