package main

import "github.com/syedkashanabbas/bolt-dashboard-frontend/cmd/boltctl/cmd"

func main() {
	cmd.Execute()
}
