package main

import (
	"fmt"

	"github.com/n1energy/wb-tech-blog/config"
	"github.com/n1energy/wb-tech-blog/internal/database"
	"github.com/n1energy/wb-tech-blog/internal/route"
)

func main() {
	config.MustLoad("config.yaml")
	database.InitDatabase()
	r := route.SetupRouter()

	r.Run(fmt.Sprintf(":%d", config.Conf.Server.Port))
}
