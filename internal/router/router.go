package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"inkwell/internal/handlers"
	"inkwell/internal/middleware"
	"inkwell/internal/repository"
	"inkwell/internal/services"
)

// RegisterRoutes wires repositories, services and handlers onto the
// engine. Grant checks beyond login/admin gating live in the handlers.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, uploadDir string) {
	// Repositories
	articleRepo := repository.NewArticleRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	commentRepo := repository.NewCommentRepo(db)
	tagRepo := repository.NewTagRepo(db)
	userRepo := repository.NewUserRepo(db)

	// Services
	uploader := services.NewFileUploader(uploadDir)
	articleService := services.NewArticleService(articleRepo, uploader)
	categoryService := services.NewCategoryService(categoryRepo)
	commentService := services.NewCommentService(commentRepo)
	userService := services.NewUserService(userRepo)
	tagTransformer := services.NewTagTransformer(tagRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(userRepo, userService)
	articleHandler := handlers.NewArticleHandler(articleRepo, commentRepo, categoryRepo, articleService, tagTransformer)
	commentHandler := handlers.NewCommentHandler(articleRepo, commentRepo, commentService)
	categoryHandler := handlers.NewCategoryHandler(categoryRepo, articleRepo, categoryService)
	tagHandler := handlers.NewTagHandler(tagRepo, articleRepo)
	userHandler := handlers.NewUserHandler(userRepo, articleRepo, userService)

	r.Use(middleware.LoadUser(userRepo))

	// Public routes
	r.GET("/", articleHandler.Index)                // published articles, newest first
	r.GET("/a/:code", articleHandler.Show)          // article detail by slug
	r.GET("/categories", categoryHandler.Index)     // category list
	r.GET("/category/:name", categoryHandler.Show)  // articles in a category
	r.GET("/tag/:code", tagHandler.Show)            // articles carrying a tag

	r.GET("/register", authHandler.ShowRegister)
	r.POST("/register", authHandler.Register)
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// Authenticated routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/create", articleHandler.ShowCreate)
		authorized.POST("/create", articleHandler.Create)
		authorized.GET("/a/:code/edit", articleHandler.ShowEdit)
		authorized.POST("/a/:code/edit", articleHandler.Update)
		authorized.POST("/a/:code/delete", articleHandler.Delete)
		authorized.POST("/a/:code/thumbnail", articleHandler.UploadThumbnail)
		authorized.POST("/a/:code/thumbnail/delete", articleHandler.DeleteThumbnail)

		authorized.POST("/a/:code/comment", commentHandler.Create)
		authorized.POST("/comment/:id/delete", commentHandler.Delete)

		authorized.GET("/user/profile/:id", userHandler.Profile)
		authorized.GET("/user/change_email/:id", userHandler.ShowChangeEmail)
		authorized.POST("/user/change_email/:id", userHandler.ChangeEmail)
		authorized.GET("/user/change_password/:id", userHandler.ShowChangePassword)
		authorized.POST("/user/change_password/:id", userHandler.ChangePassword)
		authorized.GET("/user/block/:id", userHandler.ShowBlock)
		authorized.POST("/user/block/:id", userHandler.Block)
		authorized.POST("/user/permissions/:id", userHandler.Permissions)
	}

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
	{
		admin.GET("/users", userHandler.Index)

		admin.GET("/category/create", categoryHandler.ShowCreate)
		admin.POST("/category/create", categoryHandler.Create)
		admin.GET("/category/:id/edit", categoryHandler.ShowEdit)
		admin.POST("/category/:id/edit", categoryHandler.Update)
		admin.POST("/category/:id/delete", categoryHandler.Delete)

		admin.POST("/tag/:id/delete", tagHandler.Delete)
	}
}
