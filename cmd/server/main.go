package main

import "tourcrm/internal/app"

// @title           Tour CRM API
// @version         1.0
// @description     Leads, bookings, tours, inbox, team and workspace views of the tour CRM.
// @BasePath        /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	app.Run()
}
