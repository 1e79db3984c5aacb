// @title Blogs API
// @version 1.0
// @description Blog posts with search, pagination and likes.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import "blogs-api/cmd"

func main() {
	cmd.Execute()
}
