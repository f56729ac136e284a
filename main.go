package main

import (
	"net/http"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/velleta/heritage/app/cmd"
	"github.com/velleta/heritage/app/configs"
	"github.com/velleta/heritage/app/routes"
	"github.com/velleta/heritage/app/utils/sessions"
)

func main() {
	env := configs.LoadENV

	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	if env.JWTSecret == "" {
		log.Fatal("JWT_SECRET is empty! Please check your .env file.")
	}

	keys, err := configs.LoadSessionKeysFromEnv()
	if err != nil {
		log.Fatal("Session keys failed to load: ", err)
	}
	session := sessions.NewCookieSessionStore(keys.AuthKey, keys.EncKey)

	db, err := configs.OpenConnection()
	if err != nil {
		log.Fatal("DB connection failed: ", err)
	}
	log.Println("✅ Database connected.")

	router := routes.NewRouter(db, env, session)

	server := http.Server{
		Addr:    env.Port,
		Handler: router,
	}

	log.Printf("🚀 Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Server stopped: ", err)
	}
}
