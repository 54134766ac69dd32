package main

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"database/sql"
	"encoding/hex"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// Privacy-conscious visitor analytics with a token-protected admin surface.
// Raw IPs are never stored; each address is salted and hashed per process.

type VisitorMetric struct {
	ID        int       `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

type PathStat struct {
	Path   string `json:"path"`
	Visits int64  `json:"visits"`
}

type AdminStats struct {
	TotalVisitors    int64           `json:"total_visitors"`
	UniqueVisitors   int64           `json:"unique_visitors"`
	VisitorsToday    int64           `json:"visitors_today"`
	VisitorsThisWeek int64           `json:"visitors_this_week"`
	ChatMessages     int64           `json:"chat_messages"`
	TopPaths         []PathStat      `json:"top_paths"`
	RecentVisitors   []VisitorMetric `json:"recent_visitors"`
}

var (
	db          *sql.DB
	adminToken  string
	hashingSalt string
)

func initAnalytics(logger *zap.Logger) error {
	adminToken = randomToken(logger)
	hashingSalt = randomToken(logger)

	path := os.Getenv("ANALYTICS_DB")
	if path == "" {
		path = "portfolio.db"
	}

	var err error
	db, err = sql.Open("sqlite", path)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
	CREATE TABLE IF NOT EXISTS visitors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		hashed_ip TEXT NOT NULL,
		user_agent TEXT,
		path TEXT,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		return err
	}

	go cleanupOldVisitorData(logger)

	if gin.Mode() == gin.DebugMode {
		logger.Info("admin token (dev only)", zap.String("token", adminToken))
	}
	logger.Info("visitor tracking enabled with hashed IP addresses")
	return nil
}

func randomToken(logger *zap.Logger) string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		logger.Fatal("failed to generate token", zap.Error(err))
	}
	return hex.EncodeToString(bytes)
}

// hashIP salts and hashes an address so counts stay consistent within a
// process without retaining the raw IP.
func hashIP(ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + hashingSalt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

func adminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("admin_token")
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(adminToken)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func visitorTrackingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/static/") ||
			strings.HasPrefix(path, "/admin/") ||
			strings.HasPrefix(path, "/favicon") {
			c.Next()
			return
		}

		// Respect Do Not Track.
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		go trackVisitor(logger, c.ClientIP(), c.GetHeader("User-Agent"), path)
		c.Next()
	}
}

func trackVisitor(logger *zap.Logger, ip, userAgent, path string) {
	_, err := db.Exec(`
		INSERT INTO visitors (hashed_ip, user_agent, path, timestamp)
		VALUES (?, ?, ?, ?)
	`, hashIP(ip), userAgent, path, time.Now())
	if err != nil {
		logger.Error("failed to record visitor", zap.Error(err))
	}
}

// Visitor rows older than 12 months are dropped for privacy compliance.
func cleanupOldVisitorData(logger *zap.Logger) {
	result, err := db.Exec(`
		DELETE FROM visitors
		WHERE timestamp < datetime('now', '-12 months')
	`)
	if err != nil {
		logger.Error("failed to clean up old visitor data", zap.Error(err))
		return
	}
	if rows, _ := result.RowsAffected(); rows > 0 {
		logger.Info("privacy cleanup removed old visitor records", zap.Int64("rows", rows))
	}
}

func getAdminStats() (*AdminStats, error) {
	stats := &AdminStats{}

	if err := db.QueryRow("SELECT COUNT(*) FROM visitors").Scan(&stats.TotalVisitors); err != nil {
		return nil, err
	}
	if err := db.QueryRow("SELECT COUNT(DISTINCT hashed_ip) FROM visitors").Scan(&stats.UniqueVisitors); err != nil {
		return nil, err
	}
	if err := db.QueryRow(`
		SELECT COUNT(*) FROM visitors
		WHERE DATE(timestamp) = DATE('now')
	`).Scan(&stats.VisitorsToday); err != nil {
		return nil, err
	}
	if err := db.QueryRow(`
		SELECT COUNT(*) FROM visitors
		WHERE timestamp >= datetime('now', '-7 days')
	`).Scan(&stats.VisitorsThisWeek); err != nil {
		return nil, err
	}
	if err := db.QueryRow(`
		SELECT COUNT(*) FROM visitors
		WHERE path LIKE '/api/%chat'
	`).Scan(&stats.ChatMessages); err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT path, COUNT(*) as visits
		FROM visitors
		GROUP BY path
		ORDER BY visits DESC
		LIMIT 10
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var p PathStat
		if err := rows.Scan(&p.Path, &p.Visits); err != nil {
			continue
		}
		stats.TopPaths = append(stats.TopPaths, p)
	}

	rows, err = db.Query(`
		SELECT id, hashed_ip, user_agent, path, timestamp
		FROM visitors
		ORDER BY timestamp DESC
		LIMIT 50
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var v VisitorMetric
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &v.Timestamp); err != nil {
			continue
		}
		stats.RecentVisitors = append(stats.RecentVisitors, v)
	}

	return stats, nil
}

func setupAdminRoutes(r *gin.Engine, logger *zap.Logger) {
	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{
			"title": "Admin Login",
		})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		username := c.PostForm("username")
		password := c.PostForm("password")

		adminUsername := os.Getenv("ADMIN_USERNAME")
		adminPassword := os.Getenv("ADMIN_PASSWORD")
		if adminUsername == "" || adminPassword == "" {
			logger.Warn("admin credentials not configured, login disabled")
			c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
				"error": "Admin access is not configured",
			})
			return
		}

		if username == adminUsername && password == adminPassword {
			c.SetCookie("admin_token", adminToken, 3600*24, "/admin", "", false, true)
			logger.Info("admin login", zap.String("visitor", hashIP(c.ClientIP())))
			c.Redirect(http.StatusFound, "/admin/dashboard")
			return
		}

		logger.Warn("failed admin login attempt", zap.String("visitor", hashIP(c.ClientIP())))
		c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
			"error": "Invalid credentials",
		})
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie("admin_token", "", -1, "/admin", "", false, true)
		c.Redirect(http.StatusFound, "/admin/login")
	})

	adminGroup := r.Group("/admin")
	adminGroup.Use(adminAuthMiddleware())

	adminGroup.GET("/dashboard", func(c *gin.Context) {
		stats, err := getAdminStats()
		if err != nil {
			logger.Error("failed to load admin stats", zap.Error(err))
			c.HTML(http.StatusInternalServerError, "admin-login.html", gin.H{
				"error": "Failed to load statistics",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"stats": stats,
		})
	})

	adminGroup.GET("/api/stats", func(c *gin.Context) {
		stats, err := getAdminStats()
		if err != nil {
			logger.Error("failed to load admin stats", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
			return
		}
		c.JSON(http.StatusOK, stats)
	})
}
