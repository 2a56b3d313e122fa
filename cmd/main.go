package main

import (
	"log"
	"os"

	"github.com/maverick001/EasyVocab/config"
	"github.com/maverick001/EasyVocab/controllers"
	"github.com/maverick001/EasyVocab/routes"
	"github.com/maverick001/EasyVocab/services"
	"github.com/maverick001/EasyVocab/utils"
)

func main() {
	config.InitDB()
	controllers.InitAuth()
	utils.InitS3()

	scheduler := services.NewScheduler(services.NewNotifyService())
	scheduler.Start()
	defer scheduler.Stop()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter()
	log.Printf("EasyVocab listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
