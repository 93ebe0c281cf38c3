package main

import (
	"os"

	_ "lostfound/docs"
)

// @title          Achados e Perdidos API
// @version        1.0
// @description    Lost and found portal: accounts, found items, claims, lost reports and password reset.
// @BasePath       /
// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name lf_session
func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
