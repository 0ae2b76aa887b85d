// Package httpserver manages server creation and api routing.
package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/bookleaf/internal/authordelivery"
	"github.com/go-petr/bookleaf/internal/authorservice"
	"github.com/go-petr/bookleaf/internal/earnings"
	"github.com/go-petr/bookleaf/internal/ledgerrepo"
	"github.com/go-petr/bookleaf/internal/middleware"
	"github.com/go-petr/bookleaf/internal/withdrawaldelivery"
	"github.com/go-petr/bookleaf/internal/withdrawalservice"
	"github.com/go-petr/bookleaf/pkg/configpkg"
	"github.com/go-petr/bookleaf/pkg/web"
)

// LivenessMessage is served on the root path.
const LivenessMessage = "BookLeaf API Running Successfully"

// Server holds the ledger, handlers router and configuration.
type Server struct {
	Ledger *ledgerrepo.RepoMem
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(ledger *ledgerrepo.RepoMem, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	calculator := earnings.New(ledger)

	authorService := authorservice.New(ledger, calculator)
	withdrawalService := withdrawalservice.New(ledger, calculator)

	authorHandler := authordelivery.NewHandler(authorService)
	withdrawalHandler := withdrawaldelivery.NewHandler(withdrawalService)

	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())
	engine.Use(middleware.CORS())

	engine.GET("/", func(gctx *gin.Context) {
		gctx.String(http.StatusOK, LivenessMessage)
	})

	engine.GET("/authors", authorHandler.List)
	engine.GET("/authors/:id", authorHandler.Get)
	engine.GET("/authors/:id/sales", authorHandler.ListSales)
	engine.GET("/authors/:id/withdrawals", authorHandler.ListWithdrawals)

	engine.POST("/withdrawals", withdrawalHandler.Create)

	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil, errors.New("cannot register validation field names")
	}

	v.RegisterTagNameFunc(web.JSONTagName)

	server := &Server{
		Ledger: ledger,
		Engine: engine,
		Config: config,
	}

	return server, nil
}
