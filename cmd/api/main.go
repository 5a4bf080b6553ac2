package main

import "pet-hub/cmd/api/commands"

// @title           Pet Hub
// @version         1.0
// @description     Gestión de mascotas: adopción, cruza y turnos veterinarios.
// @BasePath        /
// @securityDefinitions.apikey SessionCookie
// @in              cookie
// @name            pethub_session
func main() {
	commands.Execute()
}
