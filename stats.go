// stats.go - privacy-conscious visitor tracking
package main

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"net/http"
	"slices"
	"time"

	"github.com/Zachkp/personal-page/internal/storage"
	"github.com/gin-gonic/gin"
)

func generateSalt() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal("Failed to generate hashing salt:", err)
	}
	return hex.EncodeToString(bytes)
}

// Hash IP address for privacy (consistent per IP for one process lifetime)
func hashIP(ip, salt string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + salt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

func visitorTrackingMiddleware(store *storage.Store, salt string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.Method != http.MethodGet || !isTrackedPath(path) {
			c.Next()
			return
		}

		// Respect Do Not Track header
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		visit := storage.Visit{
			HashedIP:  hashIP(c.ClientIP(), salt),
			UserAgent: c.GetHeader("User-Agent"),
			Path:      path,
			Timestamp: time.Now(),
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := store.RecordVisit(ctx, visit); err != nil {
				log.Printf("Error recording visitor: %v", err)
			}
		}()
		c.Next()
	}
}

// Only the app's own pages count as visits. Anything else, including
// paths that 404, would let a visitor plant entries in the public stats.
func isTrackedPath(path string) bool {
	return slices.Contains(views, path)
}

// Delete visits older than the retention window
func cleanupOldVisitorData(store *storage.Store, retentionDays int) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	removed, err := store.CleanupVisits(ctx, time.Now().AddDate(0, 0, -retentionDays))
	if err != nil {
		log.Printf("Error cleaning up old visitor data: %v", err)
		return
	}
	if removed > 0 {
		log.Printf("Privacy cleanup: Removed %d visitor records older than %d days", removed, retentionDays)
	}
}

func (s *server) handleStats(c *gin.Context) {
	stats, err := s.store.Stats(c.Request.Context(), time.Now())
	if err != nil {
		log.Printf("Error loading stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load statistics"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
