package app

import (
	"database/sql"

	"github.com/indocarisinternational/admin-caris/internal/assignment"
	"github.com/indocarisinternational/admin-caris/internal/attachment"
	"github.com/indocarisinternational/admin-caris/internal/auth"
	"github.com/indocarisinternational/admin-caris/internal/authgate"
	"github.com/indocarisinternational/admin-caris/internal/blog"
	"github.com/indocarisinternational/admin-caris/internal/client"
	"github.com/indocarisinternational/admin-caris/internal/config"
	"github.com/indocarisinternational/admin-caris/internal/console"
	"github.com/indocarisinternational/admin-caris/internal/dashboard"
	"github.com/indocarisinternational/admin-caris/internal/email"
	"github.com/indocarisinternational/admin-caris/internal/employee"
	"github.com/indocarisinternational/admin-caris/internal/messaging/kafka"
	"github.com/indocarisinternational/admin-caris/internal/middleware"
	"github.com/indocarisinternational/admin-caris/internal/project"
	"github.com/indocarisinternational/admin-caris/internal/shared/counter"
	"github.com/indocarisinternational/admin-caris/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	store storage.Storage,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	assignmentRepo := assignment.NewRepository(gormDB)
	blogRepo := blog.NewRepository(gormDB)
	clientRepo := client.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	dashboardRepo := dashboard.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	projectRepo := project.NewRepository(gormDB)

	// --- Files ---
	orphans := kafka.NewOrphanRecorder(outboxRepo)
	photos := attachment.NewManager(store, orphans, storage.BucketEmployees, "photos", logger)
	images := attachment.NewManager(store, orphans, storage.BucketProjects, "images", logger)
	logos := attachment.NewManager(store, orphans, storage.BucketClients, "logos", logger)
	banners := attachment.NewManager(store, orphans, storage.BucketBlogs, "banners", logger)

	mailer := email.New(email.Options{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		User:     cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	}, logger)

	// --- Services ---
	authService := auth.NewService(authRepo, rdb, mailer, auth.Options{
		JWTSecret:  cfg.JWTSecret,
		SessionTTL: cfg.SessionTTL,
		BaseURL:    cfg.BaseURL,
	}, logger)
	assignmentService := assignment.NewService(db, assignmentRepo, logger)
	blogService := blog.NewService(db, blogRepo, banners, rdb, logger)
	clientService := client.NewService(db, clientRepo, logos, rdb, logger)
	dashboardService := dashboard.NewService(dashboardRepo, banners, photos, rdb, logger)
	employeeService := employee.NewService(db, employeeRepo, counterRepo, photos, rdb, logger)
	projectService := project.NewService(db, projectRepo, images, rdb, logger)

	gate := authgate.FromService(authService)
	requireToken := middleware.AuthMiddleware(authgate.Verifier(gate))

	// --- Handlers ---
	secure := cfg.IsProduction()
	authHandler := auth.NewHandler(authService, secure, logger)
	assignmentHandler := assignment.NewHandler(assignmentService, logger)
	blogHandler := blog.NewHandler(blogService, logger)
	clientHandler := client.NewHandler(clientService, logger)
	dashboardHandler := dashboard.NewHandler(dashboardService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	projectHandler := project.NewHandler(projectService, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, logger)
		assignment.RegisterRoutes(api, assignmentHandler, requireToken, rdb, logger)
		blog.RegisterRoutes(api, blogHandler, requireToken, rdb, logger)
		client.RegisterRoutes(api, clientHandler, requireToken, rdb, logger)
		dashboard.RegisterRoutes(api, dashboardHandler, requireToken, logger)
		employee.RegisterRoutes(api, employeeHandler, requireToken, rdb, logger)
		project.RegisterRoutes(api, projectHandler, requireToken, rdb, logger)
	}

	cs, err := console.New(console.Options{
		Auth:      authService,
		Gate:      gate,
		Dashboard: dashboardService,
		Resources: []console.Resource{
			console.EmployeeResource(employeeService),
			console.ProjectResource(projectService, clientService),
			console.ClientResource(clientService),
			console.BlogResource(blogService),
			console.AssignmentResource(assignmentService, employeeService, projectService),
		},
		SecureCookies: secure,
		Logger:        logger,
	})
	if err != nil {
		return err
	}
	cs.Register(router)

	return nil
}
