package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/Zachkp/personal-page/internal/content"
	"github.com/Zachkp/personal-page/internal/particles"
	"github.com/Zachkp/personal-page/internal/storage"
	"github.com/Zachkp/personal-page/internal/timeline"
	"github.com/gin-gonic/gin"
)

const (
	maxParticles = 1000
	maxCVSize    = 10 << 20

	// Room for the multipart framing around the file.
	maxUploadBody = maxCVSize + 1<<20
)

func setupAPIRoutes(r *gin.Engine, s *server) {
	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Content
	api.GET("/profile", serveContent(s.content.Profile))
	api.GET("/cv", serveContent(s.content.CV))
	api.GET("/projects", serveContent(s.content.Projects))
	api.GET("/technologies", serveContent(s.content.Technologies))
	api.GET("/info-points", serveContent(s.content.InfoPoints))
	api.GET("/evangelist", serveContent(s.content.EvangelistPanels))

	api.GET("/cv/download", s.handleCVDownload)
	api.POST("/cv/upload", s.handleCVUpload)

	// Layout
	api.GET("/particles", handleParticles)
	api.GET("/timeline", s.handleTimeline)
	api.GET("/timeline/experience", s.handleExperienceTimeline)
	api.GET("/timeline/experience.svg", s.handleExperienceSVG)
	api.GET("/timeline/technologies", s.handleTechnologyTimeline)
	api.GET("/timeline/technologies.svg", s.handleTechnologySVG)

	api.POST("/contact", s.handleContact)
	api.GET("/stats", s.handleStats)
}

func serveContent[T any](load func() (T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, err := load()
		switch {
		case errors.Is(err, content.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case err != nil:
			log.Printf("Error loading content: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load content"})
		default:
			c.JSON(http.StatusOK, v)
		}
	}
}

// The newest upload wins over the CV.pdf shipped in the data directory.
func (s *server) handleCVDownload(c *gin.Context) {
	up, err := s.store.LatestCV(c.Request.Context())
	if err == nil {
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", s.cfg.CVFilename))
		c.Data(http.StatusOK, "application/pdf", up.Content)
		return
	}
	if !errors.Is(err, storage.ErrNotFound) {
		log.Printf("Error loading uploaded CV: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load CV"})
		return
	}

	path := s.content.Path(content.CVPDFFile)
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "CV not available"})
		return
	}
	c.FileAttachment(path, s.cfg.CVFilename)
}

func (s *server) handleCVUpload(c *gin.Context) {
	if c.Request.ContentLength > maxUploadBody {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBody)

	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if fh.Header.Get("Content-Type") != "application/pdf" {
		c.JSON(http.StatusBadRequest, gin.H{"error": UploadNotPDF})
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxCVSize+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(data) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": UploadEmpty})
		return
	}
	if len(data) > maxCVSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}

	up, err := s.store.SaveCV(c.Request.Context(), content.CVPDFFile, data, time.Now())
	if err != nil {
		log.Printf("Error saving CV upload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save CV"})
		return
	}

	log.Printf("CV uploaded (%d bytes) from %s", up.Size, hashIP(c.ClientIP(), s.salt))
	c.JSON(http.StatusOK, gin.H{"status": "uploaded", "filename": up.Filename, "id": up.ID})
}

// GET /api/particles?count=56&seed=0xa53a&format=css
func handleParticles(c *gin.Context) {
	count, err := strconv.Atoi(c.DefaultQuery("count", strconv.Itoa(particles.DefaultCount)))
	if err != nil || count > maxParticles {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("count must be an integer up to %d", maxParticles)})
		return
	}
	seed, err := strconv.ParseInt(c.DefaultQuery("seed", strconv.Itoa(particles.DefaultSeed)), 0, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "seed must be an integer"})
		return
	}

	field := particles.NewField(count, int(seed))
	if c.Query("format") == "css" {
		c.JSON(http.StatusOK, gin.H{"count": field.Count, "seed": field.Seed, "styles": field.CSS()})
		return
	}
	c.JSON(http.StatusOK, field)
}

func (s *server) handleTimeline(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"config":        s.layout.Config(),
		"path":          s.layout.PathData(),
		"pathWithArrow": s.layout.PathDataWithArrow(),
		"ticks":         s.layout.Ticks(),
	})
}

func (s *server) experience() []timeline.Positioned[content.Experience] {
	cv := content.LoadOr("cv", s.content.CV, content.CV{})
	return timeline.PositionExperience(s.layout, cv.Experience)
}

// technologies skips entries whose start date does not parse; their
// coordinates would be NaN, which JSON cannot carry.
func (s *server) technologies() []timeline.Group[content.Technology] {
	techs := content.LoadOr("technologies", s.content.Technologies, []content.Technology{})

	valid, skipped := timeline.Placeable(techs)
	for _, t := range skipped {
		log.Printf("Skipping technology %q with unreadable start %q", t.Name, t.Start)
	}
	return timeline.GroupTechnologies(s.layout, valid)
}

func (s *server) handleExperienceTimeline(c *gin.Context) {
	items := s.experience()
	if items == nil {
		items = []timeline.Positioned[content.Experience]{}
	}
	c.JSON(http.StatusOK, items)
}

func (s *server) handleTechnologyTimeline(c *gin.Context) {
	groups := s.technologies()
	if groups == nil {
		groups = []timeline.Group[content.Technology]{}
	}
	c.JSON(http.StatusOK, groups)
}

func (s *server) handleExperienceSVG(c *gin.Context) {
	markers := timeline.ExperienceMarkers(s.experience(),
		func(e content.Experience) string { return e.Company },
		func(e content.Experience) string { return e.Period() })
	c.Data(http.StatusOK, "image/svg+xml", []byte(timeline.Render(s.layout, markers, timeline.DefaultStyle())))
}

func (s *server) handleTechnologySVG(c *gin.Context) {
	markers := timeline.GroupMarkers(s.technologies(),
		func(t content.Technology) string { return t.Name })
	c.Data(http.StatusOK, "image/svg+xml", []byte(timeline.Render(s.layout, markers, timeline.DefaultStyle())))
}
