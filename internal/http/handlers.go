package httpx

import (
  "log"
  "net/http"

  "github.com/gin-gonic/gin"
  "github.com/jackc/pgx/v5"
)

// Fixed client-facing messages. Storage error detail is logged
// server-side only.
const (
  StatusMessage   = "Conexión exitosa con el servidor"
  ErrFetchPersons = "Error al obtener las personas"
  ErrCreatePerson = "Error al crear la persona"
  ErrBadJSON      = "Cuerpo JSON inválido"
)

type Persona struct {
  IDPersona       int    `json:"id_persona"`
  Nombre          string `json:"nombre"`
  ApellidoPaterno string `json:"apellido_paterno"`
}

func (s *Server) listPersonas(c *gin.Context) {
  ctx := c.Request.Context()
  rows, err := s.DB.Query(ctx, `select id_persona, nombre, apellido_paterno from personas order by id_persona limit 10`)
  if err != nil {
    log.Printf("listar personas: %v", err)
    c.JSON(http.StatusInternalServerError, gin.H{"error": ErrFetchPersons})
    return
  }
  defer rows.Close()

  out := []Persona{}
  for rows.Next() {
    var p Persona
    if err := rows.Scan(&p.IDPersona, &p.Nombre, &p.ApellidoPaterno); err != nil {
      log.Printf("listar personas: %v", err)
      c.JSON(http.StatusInternalServerError, gin.H{"error": ErrFetchPersons})
      return
    }
    out = append(out, p)
  }
  if err := rows.Err(); err != nil {
    log.Printf("listar personas: %v", err)
    c.JSON(http.StatusInternalServerError, gin.H{"error": ErrFetchPersons})
    return
  }
  c.JSON(http.StatusOK, out)
}

func (s *Server) createPersona(c *gin.Context) {
  // Pointers so absent fields reach storage as NULL; the schema's
  // constraints decide whether that is acceptable.
  var req struct {
    Nombre          *string `json:"nombre"`
    ApellidoPaterno *string `json:"apellido_paterno"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": ErrBadJSON})
    return
  }

  ctx := c.Request.Context()
  rows, err := s.DB.Query(ctx, `insert into personas (nombre, apellido_paterno) values ($1, $2) returning *`,
    req.Nombre, req.ApellidoPaterno)
  if err != nil {
    log.Printf("crear persona: %v", err)
    c.JSON(http.StatusInternalServerError, gin.H{"error": ErrCreatePerson})
    return
  }
  // RETURNING * keeps the response aligned with whatever columns the
  // schema defines, defaults included.
  persona, err := pgx.CollectOneRow(rows, pgx.RowToMap)
  if err != nil {
    log.Printf("crear persona: %v", err)
    c.JSON(http.StatusInternalServerError, gin.H{"error": ErrCreatePerson})
    return
  }
  c.JSON(http.StatusOK, persona)
}
