package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/lucasmoraes-dev/habitflow/internal/container"
	"github.com/lucasmoraes-dev/habitflow/internal/router"
)

func main() {
	_ = godotenv.Load()

	c := container.New()

	handler := router.New(router.RouterConfig{
		UserHandler:      c.UserContainer.Handler,
		HabitHandler:     c.HabitContainer.Handler,
		DashboardHandler: c.DashboardContainer.Handler,
		AITipHandler:     c.AITipContainer.Handler,
	})

	addr := ":" + c.Config.Port
	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
