package router

import (
	auth "VideoTube.com/cmd/api/handlers/auth"
	video "VideoTube.com/cmd/api/handlers/video"
	"VideoTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app/server"
)

// Register wires the HTTP surface. Read routes are public; every mutating
// route sits behind the bearer-token middleware.
func Register(r *server.Hertz) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", auth.Signup)
		authGroup.POST("/login", auth.Login)
	}

	videoGroup := r.Group("/videos")
	{
		videoGroup.GET("/feed", video.Feed)
		videoGroup.GET("/user/:userId", video.UserVideos)

		videoGroup.POST("/upload", jwt.AuthMiddleware.MiddlewareFunc(), video.Upload)
		videoGroup.POST("/like", jwt.AuthMiddleware.MiddlewareFunc(), video.LikeAction)
		videoGroup.POST("/comment", jwt.AuthMiddleware.MiddlewareFunc(), video.CreateComment)
	}
}
