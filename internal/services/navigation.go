package services

import (
	log "github.com/sirupsen/logrus"

	"tourcrm/internal/models"
)

// Navigator asks the hosting shell to route somewhere. It never routes itself.
type Navigator interface {
	Navigate(dest models.Destination)
}

type NavigatorFunc func(dest models.Destination)

func (f NavigatorFunc) Navigate(dest models.Destination) { f(dest) }

// LogNavigator only records the request; the HTTP shell returns the
// destination to the client as "next".
func LogNavigator() Navigator {
	return NavigatorFunc(func(dest models.Destination) {
		log.Debugf("[nav] -> %s", dest)
	})
}

func navigate(n Navigator, dest models.Destination) models.Destination {
	if n != nil {
		n.Navigate(dest)
	}
	return dest
}
