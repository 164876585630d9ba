package main

import (
	"context"
	"embed"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tonmoystark/portfolio/internal/content"
	"github.com/tonmoystark/portfolio/internal/metrics"
	"github.com/tonmoystark/portfolio/internal/store"
	"github.com/tonmoystark/portfolio/internal/typewriter"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

type server struct {
	cfg      Config
	store    *store.Store
	metrics  *metrics.Metrics
	registry *prometheus.Registry
	mailer   Mailer

	// newScheduler supplies the clock for each hero stream's cycler.
	newScheduler func() typewriter.Scheduler

	adminToken  string
	hashingSalt string
}

func newServer(cfg Config, st *store.Store, mailer Mailer) *server {
	reg := prometheus.NewRegistry()
	return &server{
		cfg:          cfg,
		store:        st,
		metrics:      metrics.MustNew(reg),
		registry:     reg,
		mailer:       mailer,
		newScheduler: func() typewriter.Scheduler { return typewriter.RealScheduler{} },
		adminToken:   generateToken(),
		hashingSalt:  generateToken(),
	}
}

func (s *server) router() *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(template.Must(template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html")))

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		log.Fatal("Failed to load static assets:", err)
	}
	r.StaticFS("/static", http.FS(static))

	r.Use(s.visitorTrackingMiddleware())

	// Home page route
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{
			"name":          content.OwnerName,
			"roles":         s.cfg.Roles,
			"heroIntro":     content.HeroIntro,
			"aboutMe":       content.AboutMe,
			"skills":        content.Skills,
			"projects":      content.Projects,
			"email":         content.ContactEmail,
			"github":        content.GithubURL,
			"linkedin":      content.LinkedInURL,
			"resume":        content.ResumePath,
			"sections":      content.Sections,
			"loaderMs":      s.cfg.LoaderDuration.Milliseconds(),
			"typeDelayMs":   s.cfg.Hero.TypeDelay.Milliseconds(),
			"deleteDelayMs": s.cfg.Hero.DeleteDelay.Milliseconds(),
			"pauseDelayMs":  s.cfg.Hero.PauseDelay.Milliseconds(),
		})
	})

	r.GET("/hero/roles", s.handleHeroRoles)
	r.GET("/hero/stream", s.handleHeroStream)
	r.GET("/hero/ws", s.handleHeroWebSocket)

	// HTMX contact form fragment
	r.GET("/contact-form", func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact.html", gin.H{
			"title": "Contact Me",
		})
	})
	r.POST("/contact", s.handleContact)

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))

	s.setupAdminRoutes(r)
	return r
}

var templateFuncs = template.FuncMap{
	"join":  strings.Join,
	"lower": strings.ToLower,
}

func main() {
	cfg, err := loadConfig(os.Getenv)
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	ctx := context.Background()
	st, err := store.Open(ctx, cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to open database: ", err)
	}
	defer st.Close()

	if !cfg.SMTP.Enabled() {
		log.Println("Contact form email delivery disabled: set SMTP_USER and SMTP_PASS")
	}

	s := newServer(cfg, st, newSMTPMailer(cfg.SMTP))
	log.Printf("Admin access available at: /admin/login")
	if gin.Mode() == gin.DebugMode {
		log.Printf("Admin token (dev only): %s", s.adminToken)
	}
	log.Println("Privacy: Visitor tracking enabled with hashed IP addresses")

	// Clean up old visitor data for privacy compliance
	go s.cleanupOldVisitors(ctx)

	if err := s.router().Run(":" + cfg.Port); err != nil {
		log.Fatal("Server stopped: ", err)
	}
}
