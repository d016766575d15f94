package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	_ "github.com/joho/godotenv/autoload"

	"github.com/Zachkp/personal-page/internal/content"
	"github.com/Zachkp/personal-page/internal/storage"
	"github.com/Zachkp/personal-page/internal/timeline"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// server carries the dependencies shared by the handlers.
type server struct {
	cfg     serverConfig
	content *content.Loader
	store   *storage.Store
	layout  *timeline.Timeline
	mailer  mailer
	salt    string
}

// Pages of the single-page app: welcome, CV, projects, evangelist and
// contact. Each serves index.html and the client router takes over.
var views = []string{"/", "/cv", "/projects", "/evangelist", "/contact"}

func main() {
	cfg := loadServerConfig()

	tlConfig, err := timeline.LoadConfig(cfg.TimelineConfig)
	if err != nil {
		log.Fatal("Failed to load timeline config: ", err)
	}
	layout, err := timeline.New(tlConfig)
	if err != nil {
		log.Fatal("Failed to build timeline: ", err)
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to open database: ", err)
	}
	defer store.Close()

	s := &server{
		cfg:     cfg,
		content: content.NewLoader(cfg.DataDir),
		store:   store,
		layout:  layout,
		mailer:  newSMTPMailer(cfg),
		salt:    generateSalt(),
	}

	// Clean up old visitor data in the background
	go cleanupOldVisitorData(store, cfg.RetentionDays)

	r := newRouter(s)

	log.Printf("Serving content from %s, app from %s", cfg.DataDir, cfg.StaticDir)
	log.Println("Privacy: Visitor tracking enabled with hashed IP addresses")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

func newRouter(s *server) *gin.Engine {
	r := gin.Default()
	r.MaxMultipartMemory = maxCVSize

	r.Use(cors.Default())
	r.Use(visitorTrackingMiddleware(s.store, s.salt))

	r.Static("/assets", filepath.Join(s.cfg.StaticDir, "assets"))
	for _, path := range views {
		r.GET(path, s.serveApp)
	}

	setupAPIRoutes(r, s)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
	return r
}

func (s *server) serveApp(c *gin.Context) {
	index := filepath.Join(s.cfg.StaticDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		c.String(http.StatusServiceUnavailable, "frontend not built")
		return
	}
	c.File(index)
}
