package main

import (
	"fmt"
	"os"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/liar/config"
	"github.com/ratel-online/liar/database"
	"github.com/ratel-online/liar/network"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	manager := database.NewManager(database.Options{
		Capacity:   cfg.RoomCapacity,
		SendBuffer: cfg.SendBuffer,
		Seed:       seed,
	})

	servers := make([]network.Network, 0, 2)
	if cfg.TcpAddr != "" {
		servers = append(servers, network.NewTcpServer(cfg.TcpAddr, manager))
	}
	if cfg.WsAddr != "" {
		servers = append(servers, network.NewWebsocketServer(cfg.WsAddr, manager))
	}
	errs := make(chan error, len(servers))
	for _, server := range servers {
		server := server
		async.Async(func() {
			errs <- server.Serve()
		})
	}
	log.Error(<-errs)
}
