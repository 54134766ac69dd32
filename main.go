package main

import (
	"fmt"
	"net/http"
	"net/smtp"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	if err := initAnalytics(logger); err != nil {
		logger.Fatal("failed to initialize analytics", zap.Error(err))
	}

	assistant, err := newAssistant(logger)
	if err != nil {
		// The site still works without the AI assistant; the chat widget
		// degrades to the strict command router.
		logger.Warn("assistant disabled", zap.Error(err))
	}

	r := gin.Default()
	r.LoadHTMLGlob("templates/*")
	r.Static("/static", "./static")

	r.Use(requestIDMiddleware())
	r.Use(visitorTrackingMiddleware(logger))

	// Pages
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{
			"about":    about,
			"featured": featuredProjects(),
		})
	})

	r.GET("/projects", func(c *gin.Context) {
		c.HTML(http.StatusOK, "projects.html", gin.H{
			"projects": projects,
		})
	})

	r.GET("/projects/:slug", func(c *gin.Context) {
		p, ok := projectBySlug(c.Param("slug"))
		if !ok {
			c.HTML(http.StatusNotFound, "not-found.html", gin.H{
				"slug": c.Param("slug"),
			})
			return
		}
		c.HTML(http.StatusOK, "project.html", gin.H{
			"project": p,
		})
	})

	r.GET("/contact", func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact.html", gin.H{
			"about": about,
		})
	})

	// Contact form submission returns HTML fragments for the inline form.
	r.POST("/contact", func(c *gin.Context) {
		name := c.PostForm("fullName")
		email := c.PostForm("email")
		message := c.PostForm("message")

		if err := sendContactEmail(logger, name, email, message); err != nil {
			c.HTML(http.StatusOK, "contact-error.html", gin.H{
				"error": "Sorry, there was an error sending your message. Please try again later.",
			})
			return
		}
		c.HTML(http.StatusOK, "contact-success.html", gin.H{
			"success": "Thank you for your message! I'll get back to you soon.",
		})
	})

	// Chat widget endpoints
	r.POST("/api/chat", handleChat)
	r.POST("/api/ai-chat", handleAIChat(assistant, logger))

	setupAdminRoutes(r, logger)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger() *zap.Logger {
	var logger *zap.Logger
	var err error
	if gin.Mode() == gin.DebugMode {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	return logger
}

func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

func sendContactEmail(logger *zap.Logger, name, email, message string) error {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")
	toEmail := os.Getenv("TO_EMAIL")

	if smtpHost == "" {
		smtpHost = "smtp.gmail.com"
	}
	if smtpPort == "" {
		smtpPort = "587"
	}
	if toEmail == "" {
		toEmail = about.Email
	}
	if smtpUser == "" || smtpPass == "" {
		return fmt.Errorf("SMTP credentials not configured")
	}

	subject := fmt.Sprintf("Portfolio Contact: %s", name)
	body := fmt.Sprintf(`
New contact form submission from the portfolio:

Name: %s
Email: %s
Message:
%s
`, name, email, message)

	msg := []byte("To: " + toEmail + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + smtpUser + "\r\n" +
		"Reply-To: " + email + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", smtpUser, smtpPass, smtpHost)
	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, smtpUser, []string{toEmail}, msg); err != nil {
		logger.Error("failed to send contact email", zap.Error(err))
		return err
	}

	logger.Info("contact email sent", zap.String("from", email))
	return nil
}
