package models

// Destination is a screen the hosting shell can route to.
type Destination string

const (
	DestLogin      Destination = "login"
	DestSignup     Destination = "signup"
	DestForgot     Destination = "forgot"
	DestOnboarding Destination = "onboarding"
	DestDashboard  Destination = "dashboard"
)
