package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"MindHub360/controllers"
	"MindHub360/jobs"
	"MindHub360/routes"
	"MindHub360/services"
	"MindHub360/sse"
	"MindHub360/store"
)

var (
	startServer = func(r *gin.Engine, addr string) error { return r.Run(addr) }
	isTest      = false
)

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func main() {
	run()
}

func run() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error in loading the ENV")
	}

	contentStore, err := store.NewFileStore(getenv("DATA_DIR", "data"))
	if err != nil {
		log.Fatal("cannot open content store:", err)
	}

	cache := store.NewRosterCache(os.Getenv("REDIS_ADDR"))

	remote, err := store.ConnectRemote(context.Background(), os.Getenv("MONGO_URI"), getenv("MONGO_DB", "mindhub"))
	if err != nil {
		// The remote mirror is optional; local-only keeps working.
		log.Println("remote content service unreachable, continuing local-only:", err)
		remote = nil
	}

	auth := &services.AuthService{Store: contentStore, Cache: cache}
	exercises := &services.ExerciseService{Store: contentStore}
	triage := &services.TriageService{Exercises: exercises, Auth: auth}
	therapy := &services.TherapyService{Store: contentStore, Auth: auth, Remote: remote, Broadcast: sse.Default.Broadcast}
	forum := &services.ForumService{Store: contentStore, Remote: remote, Broadcast: sse.Default.Broadcast}
	chat := services.NewConversation(triage, 1500*time.Millisecond)

	controllers.Init(auth, triage, exercises, therapy, forum, chat)

	if !isTest {
		remote.Watch(context.Background(), []string{
			store.KeyTherapyRequests, store.KeyPosts, store.KeyReplies, store.KeyPostLikes,
		}, sse.Default.Broadcast)

		jobs.StartDailyScheduler(contentStore, auth, cache)
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	routes.Routes(r)

	if isTest {
		return
	}
	if err := startServer(r, ":"+getenv("PORT", "8080")); err != nil {
		log.Fatal("server stopped:", err)
	}
}
