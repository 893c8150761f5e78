// README: Route table and middleware wiring for the API server.
package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"tripmate/internal/http/handlers"
	"tripmate/internal/http/middleware"
	"tripmate/internal/infra"
)

// RouterDeps carries everything the route table needs. Verifier may be nil,
// in which case the /api group is open.
type RouterDeps struct {
	Users    handlers.UserService
	Chat     handlers.ChatService
	Vault    handlers.VaultService
	DB       *pgxpool.Pool
	Redis    *redis.Client
	Verifier infra.TokenVerifier
	Log      zerolog.Logger
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(deps.Log))
	r.Use(middleware.Logging(deps.Log))
	r.Use(middleware.CORS())

	health := handlers.NewHealthHandler(deps.DB, deps.Redis)
	r.GET("/", health.Root)
	r.GET("/test", health.Status)

	api := r.Group("/api")
	if deps.Verifier != nil {
		api.Use(middleware.Auth(deps.Verifier))
	}

	users := handlers.NewUserHandler(deps.Users)
	api.POST("/init", users.Init)
	api.GET("/profile/:user_id", users.Profile)
	api.GET("/coins/:user_id", users.Coins)
	api.POST("/reward", users.Reward)
	api.POST("/redeem", users.Redeem)
	api.GET("/passes/:user_id", users.Passes)

	chat := handlers.NewChatHandler(deps.Users, deps.Chat)
	api.POST("/chat", chat.Chat)
	api.GET("/history/:user_id", chat.History)
	api.GET("/tips", chat.Tips)
	api.POST("/translate", chat.Translate)

	budget := handlers.NewBudgetHandler(deps.Users)
	api.POST("/budget", budget.Estimate)

	vault := handlers.NewVaultHandler(deps.Users, deps.Vault, deps.Chat)
	api.POST("/image", vault.Image)
	api.POST("/voice", vault.Voice)

	return r
}
