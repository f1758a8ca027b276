package httpx

import (
  "context"
  "net/http"

  "github.com/gin-gonic/gin"
  "github.com/jackc/pgx/v5"
)

// Querier is the slice of pgxpool.Pool the handlers use. Tests
// substitute a pgxmock pool.
type Querier interface {
  Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type Server struct {
  R  *gin.Engine
  DB Querier
}

func NewServer(db Querier) *Server {
  gin.SetMode(gin.ReleaseMode)
  r := gin.Default()
  r.Use(CORS())

  s := &Server{R: r, DB: db}

  api := r.Group("/api")
  {
    api.GET("/test", s.health)
    api.GET("/personas", s.listPersonas)
    api.POST("/personas", s.createPersona)
  }

  return s
}

func (s *Server) health(c *gin.Context) {
  c.JSON(http.StatusOK, gin.H{"status": StatusMessage})
}
