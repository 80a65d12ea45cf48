// Package server exposes the layout engine over HTTP with gin.
package server

import (
	"bytes"
	"context"
	"html/template"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"roomplanner/catalog"
	"roomplanner/config"
	"roomplanner/layout"
	"roomplanner/models"
	"roomplanner/render"
	"roomplanner/suggest"
	"roomplanner/utils"
)

const requestIDHeader = "X-Request-ID"

// Suggester is the optional AI collaborator.
type Suggester interface {
	IsConfigured() bool
	Suggest(ctx context.Context, room models.RoomSpec, items []models.FurnitureItem) models.Suggestion
	TestConnection(ctx context.Context) bool
}

var _ Suggester = (*suggest.Client)(nil)

type Server struct {
	cfg     config.Config
	engine  *layout.Engine
	catalog catalog.Provider
	ai      Suggester
	logger  *log.Logger
}

func New(cfg config.Config, provider catalog.Provider, ai Suggester, logger *log.Logger) *Server {
	return &Server{
		cfg:     cfg,
		engine:  layout.New(logger.WithPrefix("layout")),
		catalog: provider,
		ai:      ai,
		logger:  logger,
	}
}

// Router wires routes and middleware.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), s.accessLog(), cors(s.cfg.Server.AllowedOrigin))
	r.SetHTMLTemplate(pages)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/", s.handleForm)
	r.POST("/layout", s.handleFormLayout)

	api := r.Group("/api")
	api.GET("/furniture", s.handleFurniture)
	api.POST("/layout", s.handleLayout)
	api.POST("/layout/chart", s.handleChart)
	api.POST("/layout/png", s.handlePNG)
	api.POST("/layout/export", s.handleExport)
	api.POST("/layout/suggest", s.handleSuggest)
	api.GET("/ai/status", s.handleAIStatus)

	if dir := s.cfg.Server.StaticDir; dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			r.Static("/static", dir)
		}
	}
	return r
}

// Run serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.cfg.Server.Addr, Handler: s.Router()}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server running", "addr", s.cfg.Server.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

// layoutFor binds the room from the JSON body and runs the engine. It writes
// the error response itself and reports false on failure.
func (s *Server) layoutFor(c *gin.Context) (models.LayoutResult, []models.FurnitureItem, bool) {
	var room models.RoomSpec
	if err := c.ShouldBindJSON(&room); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room", "details": validationMessages(err)})
		return models.LayoutResult{}, nil, false
	}
	items, err := s.catalog.List(c.Request.Context())
	if err != nil {
		s.logger.Error("list catalog", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return models.LayoutResult{}, nil, false
	}
	return s.engine.Generate(room, items), items, true
}

func (s *Server) handleFurniture(c *gin.Context) {
	items, err := s.catalog.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (s *Server) handleLayout(c *gin.Context) {
	result, _, ok := s.layoutFor(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleChart(c *gin.Context) {
	result, _, ok := s.layoutFor(c)
	if !ok {
		return
	}
	s.writeRendered(c, "text/html; charset=utf-8", func(buf *bytes.Buffer) error {
		return render.Chart(buf, result)
	})
}

func (s *Server) handlePNG(c *gin.Context) {
	result, _, ok := s.layoutFor(c)
	if !ok {
		return
	}
	s.writeRendered(c, "image/png", func(buf *bytes.Buffer) error {
		return render.PNG(buf, result, s.cfg.Render.Scale)
	})
}

func (s *Server) handleExport(c *gin.Context) {
	result, _, ok := s.layoutFor(c)
	if !ok {
		return
	}
	c.Header("Content-Disposition", `attachment; filename="layout.xlsx"`)
	s.writeRendered(c, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", func(buf *bytes.Buffer) error {
		return utils.WriteLayoutExcel(buf, result)
	})
}

func (s *Server) writeRendered(c *gin.Context, contentType string, fn func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		s.logger.Error("render layout", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

func (s *Server) handleSuggest(c *gin.Context) {
	result, items, ok := s.layoutFor(c)
	if !ok {
		return
	}
	configured := s.ai != nil && s.ai.IsConfigured()
	suggestion := models.Suggestion{SuggestedFurniture: []models.SuggestedFurniture{}}
	if configured {
		suggestion = s.ai.Suggest(c.Request.Context(), result.Room, items)
	}
	c.JSON(http.StatusOK, gin.H{
		"layout":       result,
		"suggestion":   suggestion,
		"aiConfigured": configured,
	})
}

func (s *Server) handleAIStatus(c *gin.Context) {
	configured := s.ai != nil && s.ai.IsConfigured()
	body := gin.H{"configured": configured}
	if c.Query("probe") == "1" {
		body["reachable"] = configured && s.ai.TestConnection(c.Request.Context())
	}
	c.JSON(http.StatusOK, body)
}

// ====== HTML 表单 ======

var pages = template.Must(template.Must(template.New("form").Parse(formPage)).New("result").Parse(resultPage))

const formPage = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Room planner</title></head>
<body>
<h1>Plan a room</h1>
{{if .Errors}}<ul class="errors">{{range .Errors}}<li>{{.}}</li>{{end}}</ul>{{end}}
<form method="post" action="/layout">
  <label>Length (m) <input name="length" type="number" step="0.1" min="3" max="15" value="{{.Room.Length}}"></label>
  <label>Width (m) <input name="width" type="number" step="0.1" min="3" max="15" value="{{.Room.Width}}"></label>
  <label>Budget ($) <input name="budget" type="number" step="1" min="500" max="10000" value="{{.Room.Budget}}"></label>
  <button type="submit">Generate layout</button>
</form>
</body>
</html>`

// resultPage embeds the rendered chart document through srcdoc.
const resultPage = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Room layout</title></head>
<body>
<h1>Layout for a {{.Result.Room.Length}}m x {{.Result.Room.Width}}m room</h1>
<p class="summary">Total cost: ${{.Result.TotalCost}} of ${{.Result.Room.Budget}}, remaining budget: ${{.Result.RemainingBudget}}</p>
{{if .Result.Warnings}}<h2>Warnings</h2>
<ul class="warnings">{{range .Result.Warnings}}<li>{{.}}</li>{{end}}</ul>{{end}}
<h2>Placed furniture</h2>
<table>
<tr><th>Name</th><th>Category</th><th>X</th><th>Y</th><th>Width</th><th>Depth</th><th>Price</th></tr>
{{range .Result.Placed}}<tr><td>{{.Name}}</td><td>{{.Category}}</td><td>{{.X}}</td><td>{{.Y}}</td><td>{{.Width}}</td><td>{{.Depth}}</td><td>${{.Price}}</td></tr>
{{end}}</table>
<iframe title="layout chart" width="940" height="680" style="border:0" srcdoc="{{.Chart}}"></iframe>
<p><a href="/">Plan another room</a></p>
</body>
</html>`

type resultData struct {
	Result models.LayoutResult
	Chart  string
}

type formData struct {
	Room   models.RoomSpec
	Errors []string
}

func (s *Server) handleForm(c *gin.Context) {
	c.HTML(http.StatusOK, "form", formData{Room: models.RoomSpec{Length: 5, Width: 4, Budget: 3000}})
}

// handleFormLayout is the browser flow: invalid input re-renders the form,
// valid input returns the result page with summary, warnings and chart.
func (s *Server) handleFormLayout(c *gin.Context) {
	var room models.RoomSpec
	if err := c.ShouldBind(&room); err != nil {
		c.HTML(http.StatusBadRequest, "form", formData{Room: room, Errors: validationMessages(err)})
		return
	}
	items, err := s.catalog.List(c.Request.Context())
	if err != nil {
		c.HTML(http.StatusInternalServerError, "form", formData{Room: room, Errors: []string{err.Error()}})
		return
	}
	result := s.engine.Generate(room, items)
	var chart bytes.Buffer
	if err := render.Chart(&chart, result); err != nil {
		s.logger.Error("render layout", "err", err)
		c.HTML(http.StatusInternalServerError, "form", formData{Room: room, Errors: []string{err.Error()}})
		return
	}
	c.HTML(http.StatusOK, "result", resultData{Result: result, Chart: chart.String()})
}

// ====== 中间件 ======

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("requestID", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).Round(time.Microsecond),
			"id", c.GetString("requestID"),
		)
	}
}

func cors(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if origin == "" {
			c.Next()
			return
		}
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, "+requestIDHeader)
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
