package routes

import (
	"net/http"

	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/configs"
	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/controllers"
	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/entity"
	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/middlewares"
	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/pkg/mailer"
	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/repository"
	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/services"
	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Deps are the long-lived pieces main builds once.
type Deps struct {
	DB       *gorm.DB
	Config   *configs.Config
	Composer *mailer.Composer
	Notifier services.Notifier
	Hub      *ws.ActivityHub
	Images   services.ImageStore
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigins))
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"message": "ok"}) })
	r.Static("/uploads", cfg.UploadDir)

	var events services.Publisher
	if d.Hub != nil {
		events = d.Hub
	}

	// Repositories
	userRepo := repository.NewUserRepository(d.DB)
	productRepo := repository.NewProductRepository(d.DB)
	orderRepo := repository.NewOrderRepository(d.DB)
	seqRepo := repository.NewSequenceRepository(d.DB)
	waitlistRepo := repository.NewWaitlistRepository(d.DB)

	// Services
	authSvc := services.NewAuthService(userRepo, waitlistRepo, d.Composer, d.Notifier, events, services.AuthOptions{
		JWTSecret:  cfg.JWTSecret,
		JWTTTL:     cfg.JWTTTL,
		AdminEmail: cfg.AdminEmail,
	})
	productSvc := services.NewProductService(productRepo, d.Images)
	orderSvc := services.NewOrderService(d.DB, orderRepo, seqRepo, userRepo, d.Composer, d.Notifier, events)
	adminSvc := services.NewAdminService(userRepo, orderRepo, waitlistRepo, d.Composer, d.Notifier)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	productCtrl := controllers.NewProductController(productSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	adminCtrl := controllers.NewAdminController(adminSvc)

	protect := middlewares.Protect(userRepo, cfg.JWTSecret)
	adminOnly := middlewares.RequireRole(entity.RoleAdmin)

	api := r.Group("/api")

	// User (public)
	u := api.Group("/user")
	{
		u.POST("/signup", authCtrl.SignUp)
		u.POST("/login", authCtrl.Login)
		u.POST("/waitlist", authCtrl.JoinWaitlist)
	}

	// Product: อ่านได้ทุกคน เขียนเฉพาะ admin
	p := api.Group("/product")
	{
		p.GET("/one-product/:id", productCtrl.GetOne)
		p.GET("/all-product", productCtrl.List)
		p.POST("/create-product", protect, adminOnly, productCtrl.Create)
		p.PUT("/update-product/:id", protect, adminOnly, productCtrl.Update)
		p.POST("/delete-product", protect, adminOnly, productCtrl.DeleteMany)
	}

	// Orders (login required)
	o := api.Group("/order", protect)
	{
		o.POST("/create-order", orderCtrl.Create)
		o.GET("/my-orders", orderCtrl.ListForMe)
		o.PUT("/status/:id", adminOnly, orderCtrl.UpdateStatus)
		o.GET("/all-order", adminOnly, orderCtrl.List)
	}

	// Admin
	api.POST("/admin/login", authCtrl.Login)
	a := api.Group("/admin", protect, adminOnly)
	{
		a.GET("/users", adminCtrl.Users)
		a.GET("/activity", adminCtrl.Activity)
		a.GET("/stats", adminCtrl.Stats)
		a.GET("/waitlist", adminCtrl.Waitlist)
		a.POST("/waitlist/send", adminCtrl.SendWaitlist)
		a.GET("/verify-token", authCtrl.VerifyToken)
	}

	// Live feed; browsers can't set headers on websockets so token may come in the query
	if d.Hub != nil {
		api.GET("/admin/ws", middlewares.WSAuth(userRepo, cfg.JWTSecret), adminOnly, d.Hub.HandleWebSocket)
	}
}
