package main

import (
	"fmt"
	"html/template"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"inkwell/internal/db"
	"inkwell/internal/router"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading env vars from system")
	}

	db.Init()

	r := gin.Default()

	// Sessions
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "secret_key_change_me"
	}
	store := cookie.NewStore([]byte(secret))
	r.Use(sessions.Sessions("inkwell_session", store))

	// Templates and static assets
	r.HTMLRender = loadTemplates("./web/templates")
	r.Static("/static", "./web/static")

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./web/uploads"
	}
	r.Static("/uploads", uploadDir)

	router.RegisterRoutes(r, db.DB, uploadDir)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("inkwell server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

func loadTemplates(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	layouts, err := filepath.Glob(templatesDir + "/layouts/*.html")
	if err != nil {
		panic(err)
	}

	includes, err := filepath.Glob(templatesDir + "/includes/*.html")
	if err != nil {
		panic(err)
	}

	// Each view renders inside the shared layout and includes
	assemble := func(view string) []string {
		files := make([]string, 0, len(layouts)+len(includes)+1)
		files = append(files, layouts...)
		files = append(files, includes...)
		files = append(files, view)
		return files
	}

	funcMap := template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s)
		},
		"timeAgo": func(t interface{}) string {
			timeVal, ok := t.(time.Time)
			if !ok {
				return ""
			}

			seconds := int(time.Since(timeVal).Seconds())
			switch {
			case seconds < 60:
				return fmt.Sprintf("%ds ago", seconds)
			case seconds < 3600:
				return fmt.Sprintf("%dm ago", seconds/60)
			case seconds < 86400:
				return fmt.Sprintf("%dh ago", seconds/3600)
			default:
				return fmt.Sprintf("%dd ago", seconds/86400)
			}
		},
	}

	views := []string{
		"auth/login.html",
		"auth/register.html",
		"article/list.html",
		"article/show.html",
		"article/create.html",
		"article/edit.html",
		"category/list.html",
		"category/show.html",
		"category/create.html",
		"category/edit.html",
		"tag/show.html",
		"user/list.html",
		"user/profile.html",
		"user/change_email.html",
		"user/change_password.html",
		"user/block.html",
		"error.html",
	}
	for _, view := range views {
		r.AddFromFilesFuncs(view, funcMap, assemble(templatesDir+"/views/"+view)...)
	}

	return r
}
