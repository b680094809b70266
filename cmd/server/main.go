package main

import (
	"database/sql"
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/mukeshkumar286/chickegg/internal/database"
	"github.com/mukeshkumar286/chickegg/internal/repositories"
	"github.com/mukeshkumar286/chickegg/internal/router"
	"github.com/mukeshkumar286/chickegg/internal/services"
	"github.com/mukeshkumar286/chickegg/pkg/utils"
)

func main() {
	// Best effort; the file is optional and real deployments use the
	// process environment.
	_ = godotenv.Load()

	utils.InitLogger()

	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		utils.SetJWTSecret(secret)
	}

	dbHost := utils.Getenv("DB_HOST", "localhost")
	dbPort := utils.Getenv("DB_PORT", "5432")
	dbUser := utils.Getenv("DB_USER", "chickegg_user")
	dbPassword := utils.Getenv("DB_PASSWORD", "chickegg_password")
	dbName := utils.Getenv("DB_NAME", "chickegg_db")
	dbSSLMode := utils.Getenv("DB_SSLMODE", "disable")
	dbSchemaPath := utils.Getenv("DB_SCHEMA_PATH", "")

	db, err := database.Connect(dbHost, dbPort, dbUser, dbPassword, dbName, dbSSLMode)
	if err != nil {
		utils.LogError(err, "Failed to connect to database")
		os.Exit(1)
	}
	defer db.Close()

	if err := database.ApplySchema(db, dbSchemaPath); err != nil {
		utils.LogError(err, "Failed to apply database schema")
		os.Exit(1)
	}
	utils.LogInfo("Database initialized", map[string]interface{}{"host": dbHost, "name": dbName})

	seedAdminUser(db)

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(utils.GinLogger())

	var allowedOrigins []string
	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		allowedOrigins = strings.Split(raw, ",")
	} else {
		allowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = allowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.AllowCredentials = true
	engine.Use(cors.New(corsConfig))

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	router.Setup(engine, db)

	port := utils.Getenv("PORT", "8080")
	utils.LogInfo("Starting server", map[string]interface{}{"port": port})
	if err := engine.Run(":" + port); err != nil {
		utils.LogError(err, "Server exited with error")
		os.Exit(1)
	}
}

// seedAdminUser registers an initial account from ADMIN_USERNAME and
// ADMIN_PASSWORD. An already existing username is fine; anything else is
// logged and startup continues.
func seedAdminUser(db *sql.DB) {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		return
	}

	authService := services.NewAuthService(repositories.NewAuthRepository(db), db)
	_, err := authService.Register(services.RegisterRequest{Username: username, Password: password})
	if err != nil {
		if errors.Is(err, services.ErrUsernameExists) {
			return
		}
		utils.LogError(err, "Failed to seed admin user")
		return
	}
	utils.LogInfo("Seeded admin user", map[string]interface{}{"username": username})
}
