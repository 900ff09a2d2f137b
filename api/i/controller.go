// Package i defines the interfaces the API layer is wired through.
package i

import "github.com/gin-gonic/gin"

// Controller registers a feature's routes on a router group.
type Controller interface {
	RegisterRoutes(route *gin.RouterGroup)
}
