// Package gin wraps the gin-gonic engine behind local aliases, so the
// resource packages and the roleauth middleware depend on this package
// instead of importing the framework everywhere.
package gin

import "github.com/gin-gonic/gin"

type HandlerFunc = gin.HandlerFunc
type Engine = gin.Engine

// New instantiates an engine with the given middlewares. The server
// entry point passes Logger and Recovery here before routes.Register
// mounts the role claim extractor and the resources under it.
func New(middlewares ...HandlerFunc) *Engine {
	e := gin.New()
	e.Use(middlewares...)
	return e
}

func Logger() HandlerFunc {
	return gin.Logger()
}

func Recovery() HandlerFunc {
	return gin.Recovery()
}
