package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/akravets/talkroom-server/internal/auth"
	"github.com/akravets/talkroom-server/internal/config"
	"github.com/akravets/talkroom-server/internal/service/messages"
	"github.com/akravets/talkroom-server/internal/service/people"
	"github.com/akravets/talkroom-server/internal/service/roles"
	"github.com/akravets/talkroom-server/internal/service/rooms"
)

// Services bundles the domain services the HTTP layer exposes.
type Services struct {
	Auth     *auth.Service
	People   *people.Service
	Roles    *roles.Service
	Rooms    *rooms.Service
	Messages *messages.Service
}

// NewServer builds the HTTP server with all REST routes registered.
// Login and sign-up are the only anonymous endpoints; everything else
// runs behind RequireIdentity.
func NewServer(svcs Services, cfg *config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(RequestID(), Logger(logger), CORS(), gin.Recovery(), Authenticate(svcs.Auth, logger))

	authH := NewAuthHandlers(svcs.Auth, logger)
	personH := NewPersonHandlers(svcs.People, logger)
	roleH := NewRoleHandlers(svcs.Roles, logger)
	roomH := NewRoomHandlers(svcs.Rooms, logger)
	messageH := NewMessageHandlers(svcs.Messages, logger)

	r.GET("/health", func(c *gin.Context) { c.String(stdhttp.StatusOK, "ok") })
	r.POST("/login", authH.Login)
	r.POST("/users/sign-up", authH.SignUp)

	users := r.Group("/users", RequireIdentity())
	{
		users.GET("/all", personH.List)
		users.GET("/:id", personH.Get)
		users.PUT("/", personH.Update)
		users.DELETE("/:id", personH.Delete)
		users.PATCH("/", personH.Patch)
	}

	role := r.Group("/role", RequireIdentity())
	{
		role.GET("/", roleH.List)
		role.GET("/:id", roleH.Get)
		role.POST("/", roleH.Create)
		role.PUT("/", roleH.Update)
		role.DELETE("/:id", roleH.Delete)
		role.PATCH("/", roleH.Patch)
	}

	room := r.Group("/room", RequireIdentity())
	{
		room.GET("/", roomH.List)
		room.GET("/:id", roomH.Get)
		room.POST("/", roomH.Create)
		room.PUT("/", roomH.Update)
		room.DELETE("/:id", roomH.Delete)
		room.PATCH("/", roomH.Patch)
	}

	message := r.Group("/message", RequireIdentity())
	{
		message.GET("/", messageH.List)
		message.GET("/:id", messageH.Get)
		message.POST("/", messageH.Create)
		message.PUT("/", messageH.Update)
		message.DELETE("/:id", messageH.Delete)
		message.PATCH("/", messageH.Patch)
	}

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}
